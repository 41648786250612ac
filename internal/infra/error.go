package infra

import (
	"errors"

	"expert-booking/internal/pkg/errs"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type RepositoryErrorKind string

// Infrastructure-specific error kinds. Usecases branch on kinds via IsKind and
// translate them into the caller-facing taxonomy; raw storage errors never
// cross the usecase boundary.
const (
	KindNotFound           RepositoryErrorKind = "NOT_FOUND"
	KindDBFailure          RepositoryErrorKind = "DB_FAILURE"
	KindDuplicateKey       RepositoryErrorKind = "DUPLICATE_KEY"
	KindForeignKeyViolated RepositoryErrorKind = "FOREIGN_KEY_VIOLATED"
	KindUnavailable        RepositoryErrorKind = "UNAVAILABLE"
)

type RepositoryError struct {
	Kind RepositoryErrorKind
	msg  string
	err  error // wrapped low-level error
}

func (e RepositoryError) Error() string {
	if e.err != nil {
		return string(e.Kind) + ": " + e.msg + ": " + e.err.Error()
	}
	return string(e.Kind) + ": " + e.msg
}

func (e RepositoryError) Unwrap() error {
	return e.err
}

// WrapRepoErr classifies err when no explicit kind is given.
func WrapRepoErr(msg string, err error, kind ...RepositoryErrorKind) error {
	k := KindDBFailure
	if len(kind) > 0 {
		k = kind[0]
	} else if err != nil {
		k = classify(err)
	}

	if err != nil {
		err = errs.Wrap(err, msg)
	}

	return RepositoryError{Kind: k, msg: msg, err: err}
}

func IsKind(err error, kind RepositoryErrorKind) bool {
	var e RepositoryError
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}

// Postgres error classes (pgerrcode values used directly to avoid a dependency
// for three constants).
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
	pgClassConnection     = "08"
	pgClassOperator       = "57" // operator_intervention: shutdown, crash
)

func classify(err error) RepositoryErrorKind {
	if errors.Is(err, pgx.ErrNoRows) {
		return KindNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch {
		case pgErr.Code == pgUniqueViolation:
			return KindDuplicateKey
		case pgErr.Code == pgForeignKeyViolation:
			return KindForeignKeyViolated
		case len(pgErr.Code) >= 2 && (pgErr.Code[:2] == pgClassConnection || pgErr.Code[:2] == pgClassOperator):
			return KindUnavailable
		}
	}

	if pgconn.SafeToRetry(err) {
		return KindUnavailable
	}

	return KindDBFailure
}
