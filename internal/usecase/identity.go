// Package usecase hosts cross-cutting application services that do not belong
// to a single command or query group.
package usecase

import (
	"context"

	"expert-booking/internal/domain/identity"
	"expert-booking/internal/infra"
	"expert-booking/internal/pkg/errs"
	"expert-booking/internal/pkg/jwt"
	"expert-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type TokenValidator interface {
	ValidateToken(tokenString string) (*jwt.Claims, error)
}

// AccountStore is one link in the identity chain. Stores are consulted in
// registration order; a NotFound moves resolution to the next link.
type AccountStore interface {
	FindAccount(ctx context.Context, id uuid.UUID) (*queries.AccountView, error)
}

// IdentityResolver turns a bearer token into a caller identity by walking the
// account stores. Adding a new principal type means appending a store, not
// touching the resolution logic.
type IdentityResolver interface {
	Resolve(ctx context.Context, token string) (identity.Identity, error)
}

type identityResolverImpl struct {
	tokens TokenValidator
	stores []AccountStore
}

func NewIdentityResolver(tokens TokenValidator, stores ...AccountStore) IdentityResolver {
	return &identityResolverImpl{
		tokens: tokens,
		stores: stores,
	}
}

func (r *identityResolverImpl) Resolve(ctx context.Context, token string) (identity.Identity, error) {
	claims, err := r.tokens.ValidateToken(token)
	if err != nil {
		return identity.Identity{}, errs.Mark(err, errs.ErrUnauthenticated)
	}

	for _, store := range r.stores {
		account, err := store.FindAccount(ctx, claims.AccountID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				continue
			}
			return identity.Identity{}, errs.Mark(err, errs.ErrStorageUnavailable)
		}

		role, err := identity.NewRole(account.Role)
		if err != nil {
			return identity.Identity{}, errs.Mark(err, errs.ErrUnauthenticated)
		}
		return identity.Identity{
			ID:    account.ID,
			Role:  role,
			Email: account.Email,
		}, nil
	}

	// A valid token whose account no longer exists in any store.
	return identity.Identity{}, errs.ErrUnauthenticated
}
