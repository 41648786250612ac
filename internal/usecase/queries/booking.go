package queries

import (
	"context"

	"expert-booking/internal/infra"
	"expert-booking/internal/pkg/errs"

	"github.com/google/uuid"
)

// BookingQueries are pure reads over the ledger; listings are ordered
// newest-first by the repository and perform no state change.
type BookingQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*BookingView, error)
	ListForClient(ctx context.Context, email string) ([]*BookingListItem, error)
	ListForProvider(ctx context.Context, providerID uuid.UUID) ([]*BookingListItem, error)
}

type BookingReadRepo interface {
	FindByID(ctx context.Context, id uuid.UUID) (*BookingView, error)
	ListByClientEmail(ctx context.Context, email string) ([]*BookingListItem, error)
	ListByProvider(ctx context.Context, providerID uuid.UUID) ([]*BookingListItem, error)
}

type bookingQueriesImpl struct {
	repo BookingReadRepo
}

func NewBookingQueries(repo BookingReadRepo) BookingQueries {
	return &bookingQueriesImpl{repo: repo}
}

func (q *bookingQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*BookingView, error) {
	view, err := q.repo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrBookingNotFound)
		}
		return nil, errs.Mark(err, errs.ErrStorageUnavailable)
	}
	return view, nil
}

func (q *bookingQueriesImpl) ListForClient(ctx context.Context, email string) ([]*BookingListItem, error) {
	items, err := q.repo.ListByClientEmail(ctx, email)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrStorageUnavailable)
	}
	return items, nil
}

func (q *bookingQueriesImpl) ListForProvider(ctx context.Context, providerID uuid.UUID) ([]*BookingListItem, error) {
	items, err := q.repo.ListByProvider(ctx, providerID)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrStorageUnavailable)
	}
	return items, nil
}
