//go:build unit || e2e

package builder

import (
	reqdto "expert-booking/internal/handler/dto/request"
	"expert-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type AuthBuilder struct {
	Email    string
	Password string
}

func NewAuthBuilder() *AuthBuilder {
	return &AuthBuilder{
		Email:    "taro@example.com",
		Password: "password123",
	}
}

func (b *AuthBuilder) BuildDTO() reqdto.LoginRequest {
	return reqdto.LoginRequest{
		Email:    b.Email,
		Password: b.Password,
	}
}

type AccountBuilder struct {
	ID    uuid.UUID
	Name  string
	Email string
	Role  string
}

func NewAccountBuilder() *AccountBuilder {
	return &AccountBuilder{
		ID:    uuid.New(),
		Name:  "Taro Yamada",
		Email: "taro@example.com",
		Role:  "client",
	}
}

func (b *AccountBuilder) WithRole(role string) *AccountBuilder {
	b.Role = role
	return b
}

func (b *AccountBuilder) BuildView() *queries.AccountView {
	return &queries.AccountView{
		ID:    b.ID,
		Name:  b.Name,
		Email: b.Email,
		Role:  b.Role,
	}
}
