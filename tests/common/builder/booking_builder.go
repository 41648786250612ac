//go:build unit || e2e

package builder

import (
	"time"

	"expert-booking/internal/domain/booking"
	"expert-booking/internal/domain/schedule"
	"expert-booking/internal/usecase/commands"
	"expert-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

// BookingBuilder produces claim parameters, domain entities and read views
// from one consistent fixture so tests only spell out what they change.
type BookingBuilder struct {
	ProviderID uuid.UUID
	Date       string
	Time       string
	Name       string
	Email      string
	Phone      string
	Notes      string
	Status     string
}

func NewBookingBuilder() *BookingBuilder {
	return &BookingBuilder{
		ProviderID: uuid.New(),
		Date:       "2030-06-15",
		Time:       "10:00",
		Name:       "Taro Yamada",
		Email:      "taro@example.com",
		Phone:      "090-0000-0000",
		Notes:      "first visit",
		Status:     booking.StatusPending.String(),
	}
}

func (b *BookingBuilder) WithProviderID(id uuid.UUID) *BookingBuilder {
	b.ProviderID = id
	return b
}

func (b *BookingBuilder) WithDate(date string) *BookingBuilder {
	b.Date = date
	return b
}

func (b *BookingBuilder) WithTime(t string) *BookingBuilder {
	b.Time = t
	return b
}

func (b *BookingBuilder) WithName(name string) *BookingBuilder {
	b.Name = name
	return b
}

func (b *BookingBuilder) WithEmail(email string) *BookingBuilder {
	b.Email = email
	return b
}

func (b *BookingBuilder) WithPhone(phone string) *BookingBuilder {
	b.Phone = phone
	return b
}

func (b *BookingBuilder) WithStatus(status string) *BookingBuilder {
	b.Status = status
	return b
}

func (b *BookingBuilder) BuildParams() commands.ClaimSlotParams {
	return commands.ClaimSlotParams{
		ProviderID:  b.ProviderID,
		Date:        b.Date,
		Time:        b.Time,
		ClientName:  b.Name,
		ClientEmail: b.Email,
		ClientPhone: b.Phone,
		Notes:       b.Notes,
	}
}

func (b *BookingBuilder) BuildDomain() (*booking.Booking, error) {
	date, err := schedule.NewDate(b.Date)
	if err != nil {
		return nil, err
	}
	client, err := booking.NewClientInfo(b.Name, b.Email, b.Phone)
	if err != nil {
		return nil, err
	}
	return booking.NewBooking(b.ProviderID, date, b.Time, client, booking.NewNote(b.Notes))
}

func (b *BookingBuilder) BuildView() *queries.BookingView {
	now := time.Now()
	return &queries.BookingView{
		ID:          uuid.New(),
		ProviderID:  b.ProviderID,
		Date:        b.Date,
		Time:        b.Time,
		ClientName:  b.Name,
		ClientEmail: b.Email,
		ClientPhone: b.Phone,
		Notes:       b.Notes,
		Status:      b.Status,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}
