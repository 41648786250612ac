//go:build unit

package usecase_test

import (
	"context"
	"testing"

	"expert-booking/internal/domain/identity"
	"expert-booking/internal/infra"
	"expert-booking/internal/pkg/errs"
	"expert-booking/internal/pkg/jwt"
	"expert-booking/internal/usecase"
	"expert-booking/tests/common/builder"
	usecasemock "expert-booking/tests/mock/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type resolverFixture struct {
	tokens    *usecasemock.MockTokenValidator
	clients   *usecasemock.MockAccountStore
	providers *usecasemock.MockAccountStore
	resolver  usecase.IdentityResolver
}

func newResolverFixture(t *testing.T) *resolverFixture {
	ctrl := gomock.NewController(t)
	tokens := usecasemock.NewMockTokenValidator(ctrl)
	clients := usecasemock.NewMockAccountStore(ctrl)
	providers := usecasemock.NewMockAccountStore(ctrl)
	return &resolverFixture{
		tokens:    tokens,
		clients:   clients,
		providers: providers,
		resolver:  usecase.NewIdentityResolver(tokens, clients, providers),
	}
}

func TestResolve(t *testing.T) {
	const token = "some-token"

	t.Run("account found in the first store", func(t *testing.T) {
		f := newResolverFixture(t)
		account := builder.NewAccountBuilder().BuildView()

		f.tokens.EXPECT().ValidateToken(token).Return(&jwt.Claims{AccountID: account.ID}, nil)
		f.clients.EXPECT().FindAccount(gomock.Any(), account.ID).Return(account, nil)
		// The second store must not be consulted.

		ident, err := f.resolver.Resolve(context.Background(), token)
		require.NoError(t, err)
		assert.Equal(t, account.ID, ident.ID)
		assert.Equal(t, identity.RoleClient, ident.Role)
		assert.Equal(t, account.Email, ident.Email)
	})

	t.Run("falls through to the next store on not found", func(t *testing.T) {
		f := newResolverFixture(t)
		account := builder.NewAccountBuilder().WithRole("provider").BuildView()

		f.tokens.EXPECT().ValidateToken(token).Return(&jwt.Claims{AccountID: account.ID}, nil)
		f.clients.EXPECT().FindAccount(gomock.Any(), account.ID).
			Return(nil, infra.WrapRepoErr("no rows", nil, infra.KindNotFound))
		f.providers.EXPECT().FindAccount(gomock.Any(), account.ID).Return(account, nil)

		ident, err := f.resolver.Resolve(context.Background(), token)
		require.NoError(t, err)
		assert.Equal(t, identity.RoleProvider, ident.Role)
	})

	t.Run("admin role carried from the client store", func(t *testing.T) {
		f := newResolverFixture(t)
		account := builder.NewAccountBuilder().WithRole("admin").BuildView()

		f.tokens.EXPECT().ValidateToken(token).Return(&jwt.Claims{AccountID: account.ID}, nil)
		f.clients.EXPECT().FindAccount(gomock.Any(), account.ID).Return(account, nil)

		ident, err := f.resolver.Resolve(context.Background(), token)
		require.NoError(t, err)
		assert.Equal(t, identity.RoleAdmin, ident.Role)
	})

	t.Run("invalid token", func(t *testing.T) {
		f := newResolverFixture(t)

		f.tokens.EXPECT().ValidateToken(token).Return(nil, jwt.ErrInvalidToken)

		_, err := f.resolver.Resolve(context.Background(), token)
		assert.ErrorIs(t, err, errs.ErrUnauthenticated)
	})

	t.Run("valid token with no matching account in any store", func(t *testing.T) {
		f := newResolverFixture(t)
		account := builder.NewAccountBuilder().BuildView()

		f.tokens.EXPECT().ValidateToken(token).Return(&jwt.Claims{AccountID: account.ID}, nil)
		f.clients.EXPECT().FindAccount(gomock.Any(), account.ID).
			Return(nil, infra.WrapRepoErr("no rows", nil, infra.KindNotFound))
		f.providers.EXPECT().FindAccount(gomock.Any(), account.ID).
			Return(nil, infra.WrapRepoErr("no rows", nil, infra.KindNotFound))

		_, err := f.resolver.Resolve(context.Background(), token)
		assert.ErrorIs(t, err, errs.ErrUnauthenticated)
	})

	t.Run("store failure is not swallowed as unauthenticated", func(t *testing.T) {
		f := newResolverFixture(t)
		account := builder.NewAccountBuilder().BuildView()

		f.tokens.EXPECT().ValidateToken(token).Return(&jwt.Claims{AccountID: account.ID}, nil)
		f.clients.EXPECT().FindAccount(gomock.Any(), account.ID).
			Return(nil, infra.WrapRepoErr("connection lost", nil, infra.KindUnavailable))

		_, err := f.resolver.Resolve(context.Background(), token)
		assert.ErrorIs(t, err, errs.ErrStorageUnavailable)
	})
}
