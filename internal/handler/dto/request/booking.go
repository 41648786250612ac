package request

import "github.com/google/uuid"

type CreateBookingRequest struct {
	ProviderID uuid.UUID `json:"provider_id" binding:"required"`
	Date       string    `json:"date" binding:"required"`
	Time       string    `json:"time" binding:"required"`
	Name       string    `json:"name" binding:"required"`
	Email      string    `json:"email" binding:"required,email"`
	Phone      string    `json:"phone" binding:"required"`
	Notes      string    `json:"notes"`
}
