package response

import (
	"time"

	"expert-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type BookingResponse struct {
	ID          uuid.UUID `json:"id"`
	ProviderID  uuid.UUID `json:"provider_id"`
	Date        string    `json:"date"`
	Time        string    `json:"time"`
	ClientName  string    `json:"client_name"`
	ClientEmail string    `json:"client_email"`
	ClientPhone string    `json:"client_phone"`
	Notes       string    `json:"notes,omitempty"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func FromBookingView(view *queries.BookingView) *BookingResponse {
	return &BookingResponse{
		ID:          view.ID,
		ProviderID:  view.ProviderID,
		Date:        view.Date,
		Time:        view.Time,
		ClientName:  view.ClientName,
		ClientEmail: view.ClientEmail,
		ClientPhone: view.ClientPhone,
		Notes:       view.Notes,
		Status:      view.Status,
		CreatedAt:   view.CreatedAt,
		UpdatedAt:   view.UpdatedAt,
	}
}

type BookingListResponse struct {
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

func FromBookingListItem(item *queries.BookingListItem) *BookingListResponse {
	return &BookingListResponse{
		ID:               item.ID,
		ProviderID:       item.ProviderID,
		ProviderName:     item.ProviderName,
		ProviderCategory: item.ProviderCategory,
		Date:             item.Date,
		Time:             item.Time,
		ClientName:       item.ClientName,
		ClientEmail:      item.ClientEmail,
		Status:           item.Status,
		CreatedAt:        item.CreatedAt,
	}
}
