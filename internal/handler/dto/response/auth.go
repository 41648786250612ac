package response

import (
	"expert-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type AccountResponse struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Email string    `json:"email"`
	Role  string    `json:"role"`
}

type LoginResponse struct {
	AccessToken string          `json:"access_token"`
	Account     AccountResponse `json:"account"`
}

func FromAccountView(view *queries.AccountView) AccountResponse {
	return AccountResponse{
		ID:    view.ID,
		Name:  view.Name,
		Email: view.Email,
		Role:  view.Role,
	}
}
