package booking

import (
	"errors"
	"time"

	"expert-booking/internal/domain/schedule"

	"github.com/google/uuid"
)

var ErrInvalidTransition = errors.New("invalid status transition")

// Booking is the ledger's unit: one claim on a (provider, date, time) tuple.
// Rows are never deleted; cancellation is a terminal status that frees the
// tuple for future claims while preserving audit history.
type Booking struct {
	id         uuid.UUID
	providerID uuid.UUID
	date       schedule.Date
	timeLabel  string
	client     ClientInfo
	note       Note
	status     Status
	createdAt  time.Time
	updatedAt  time.Time
}

// NewBooking builds a claim candidate in pending state. createdAt is assigned
// by the storage layer on insert.
func NewBooking(
	providerID uuid.UUID,
	date schedule.Date,
	timeLabel string,
	client ClientInfo,
	note Note,
) (*Booking, error) {
	if timeLabel == "" {
		return nil, ErrEmptyTime
	}

	return &Booking{
		id:         uuid.New(),
		providerID: providerID,
		date:       date,
		timeLabel:  timeLabel,
		client:     client,
		note:       note,
		status:     StatusPending,
	}, nil
}

func ReconstructBooking(
	id, providerID uuid.UUID,
	date schedule.Date,
	timeLabel string,
	client ClientInfo,
	note Note,
	status Status,
	createdAt, updatedAt time.Time,
) *Booking {
	return &Booking{
		id:         id,
		providerID: providerID,
		date:       date,
		timeLabel:  timeLabel,
		client:     client,
		note:       note,
		status:     status,
		createdAt:  createdAt,
		updatedAt:  updatedAt,
	}
}

// Confirm is legal only from pending.
func (b *Booking) Confirm() error {
	if b.status != StatusPending {
		return ErrInvalidTransition
	}
	b.status = StatusConfirmed
	return nil
}

// Cancel is legal from pending or confirmed. Cancelled is terminal, so a
// second cancel is a transition violation at the entity level; the ledger's
// release operation treats it as a no-op instead (see usecase layer).
func (b *Booking) Cancel() error {
	if !b.status.IsActive() {
		return ErrInvalidTransition
	}
	b.status = StatusCancelled
	return nil
}

func (b *Booking) IsActive() bool {
	return b.status.IsActive()
}

func (b *Booking) ID() uuid.UUID         { return b.id }
func (b *Booking) ProviderID() uuid.UUID { return b.providerID }
func (b *Booking) Date() schedule.Date   { return b.date }
func (b *Booking) TimeLabel() string     { return b.timeLabel }
func (b *Booking) Client() ClientInfo    { return b.client }
func (b *Booking) Note() Note            { return b.note }
func (b *Booking) Status() Status        { return b.status }
func (b *Booking) CreatedAt() time.Time  { return b.createdAt }
func (b *Booking) UpdatedAt() time.Time  { return b.updatedAt }
