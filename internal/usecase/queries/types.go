package queries

import (
	"time"

	"github.com/google/uuid"
)

// Read models (DTO for read side)

type BookingView struct {
	ID          uuid.UUID `json:"id"`
	ProviderID  uuid.UUID `json:"provider_id"`
	Date        string    `json:"date"`
	Time        string    `json:"time"`
	ClientName  string    `json:"client_name"`
	ClientEmail string    `json:"client_email"`
	ClientPhone string    `json:"client_phone"`
	Notes       string    `json:"notes"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type BookingListItem struct {
	ID               uuid.UUID `json:"id"`
	ProviderID       uuid.UUID `json:"provider_id"`
	ProviderName     string    `json:"provider_name"`
	ProviderCategory string    `json:"provider_category"`
	Date             string    `json:"date"`
	Time             string    `json:"time"`
	ClientName       string    `json:"client_name"`
	ClientEmail      string    `json:"client_email"`
	Status           string    `json:"status"`
	CreatedAt        time.Time `json:"created_at"`
}

type ProviderView struct {
	ID       uuid.UUID `json:"id"`
	Name     string    `json:"name"`
	Category string    `json:"category"`
	Approved bool      `json:"approved"`
}

// AccountView is what the identity chain resolves against; it is shared by
// both backing stores (clients and providers).
type AccountView struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Role         string    `json:"role"`
	PasswordHash string    `json:"-"`
}
