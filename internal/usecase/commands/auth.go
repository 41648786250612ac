package commands

import (
	"context"

	"expert-booking/internal/domain/identity"
	"expert-booking/internal/infra"
	"expert-booking/internal/pkg/errs"
	"expert-booking/internal/pkg/jwt"
	"expert-booking/internal/pkg/password"
	"expert-booking/internal/usecase/queries"
)

type LoginResult struct {
	Token   string
	Account *queries.AccountView
}

type AuthCommands interface {
	Login(ctx context.Context, email, rawPassword string) (*LoginResult, error)
}

// AccountFinder is one link in the login chain; stores are consulted in order
// and the first matching email wins.
type AccountFinder interface {
	FindAccountByEmail(ctx context.Context, email string) (*queries.AccountView, error)
}

type authCommandsImpl struct {
	stores []AccountFinder
	tokens *jwt.Service
}

// NewAuthCommands takes the account stores in resolution order (clients before
// providers).
func NewAuthCommands(tokens *jwt.Service, stores ...AccountFinder) AuthCommands {
	return &authCommandsImpl{
		stores: stores,
		tokens: tokens,
	}
}

func (a *authCommandsImpl) Login(ctx context.Context, email, rawPassword string) (*LoginResult, error) {
	account, err := a.findAccount(ctx, email)
	if err != nil {
		return nil, err
	}

	if err := password.ComparePassword(account.PasswordHash, rawPassword); err != nil {
		return nil, errs.ErrInvalidCredentials
	}

	role, err := identity.NewRole(account.Role)
	if err != nil {
		return nil, errs.Wrap(err, "account has invalid role")
	}

	token, err := a.tokens.GenerateToken(account.ID, role)
	if err != nil {
		return nil, errs.Wrap(err, "failed to generate token")
	}

	return &LoginResult{Token: token, Account: account}, nil
}

func (a *authCommandsImpl) findAccount(ctx context.Context, email string) (*queries.AccountView, error) {
	for _, store := range a.stores {
		account, err := store.FindAccountByEmail(ctx, email)
		if err == nil {
			return account, nil
		}
		if infra.IsKind(err, infra.KindNotFound) {
			continue
		}
		return nil, errs.Mark(err, errs.ErrStorageUnavailable)
	}
	// Same error as a wrong password so login does not leak which emails exist.
	return nil, errs.ErrInvalidCredentials
}
