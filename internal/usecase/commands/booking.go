package commands

import (
	"context"
	"log/slog"

	"expert-booking/internal/domain/booking"
	"expert-booking/internal/domain/identity"
	"expert-booking/internal/domain/schedule"
	"expert-booking/internal/fanout"
	"expert-booking/internal/infra"
	"expert-booking/internal/pkg/clock"
	"expert-booking/internal/pkg/errs"
	"expert-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type ClaimSlotParams struct {
	ProviderID  uuid.UUID
	Date        string
	Time        string
	ClientName  string
	ClientEmail string
	ClientPhone string
	Notes       string
}

// BookingCommands owns every ledger mutation: the atomic claim plus the
// lifecycle transitions. No other component writes booking state.
type BookingCommands interface {
	ClaimSlot(ctx context.Context, params ClaimSlotParams) (*queries.BookingView, error)
	Confirm(ctx context.Context, bookingID uuid.UUID, actor identity.Identity) (*queries.BookingView, error)
	Cancel(ctx context.Context, bookingID uuid.UUID, actor identity.Identity) (*queries.BookingView, error)
}

type BookingLedger interface {
	Claim(ctx context.Context, b *booking.Booking) (*queries.BookingView, error)
	FindByID(ctx context.Context, id uuid.UUID) (*queries.BookingView, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, to booking.Status, allowedFrom []booking.Status) (*queries.BookingView, error)
}

type ProviderReader interface {
	FindByID(ctx context.Context, id uuid.UUID) (*queries.ProviderView, error)
}

type bookingCommandsImpl struct {
	ledger    BookingLedger
	directory ProviderReader
	publisher fanout.Publisher
	clock     clock.Clock
}

func NewBookingCommands(ledger BookingLedger, directory ProviderReader, publisher fanout.Publisher, clk clock.Clock) BookingCommands {
	return &bookingCommandsImpl{
		ledger:    ledger,
		directory: directory,
		publisher: publisher,
		clock:     clk,
	}
}

// ClaimSlot validates input, then hands the race to the ledger's atomic
// insert. There is deliberately no availability pre-check here: the old
// find-then-create pattern is the exact race the unique index closes, so
// reintroducing it would only widen the conflict window.
func (c *bookingCommandsImpl) ClaimSlot(ctx context.Context, params ClaimSlotParams) (*queries.BookingView, error) {
	date, err := schedule.NewDate(params.Date)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrValidation)
	}
	if date.IsBefore(c.clock.Now()) {
		return nil, errs.Mark(schedule.ErrInvalidDate, errs.ErrValidation)
	}

	client, err := booking.NewClientInfo(params.ClientName, params.ClientEmail, params.ClientPhone)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrValidation)
	}

	if _, err := c.directory.FindByID(ctx, params.ProviderID); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrProviderNotFound)
		}
		return nil, errs.Mark(err, errs.ErrStorageUnavailable)
	}

	entity, err := booking.NewBooking(params.ProviderID, date, params.Time, client, booking.NewNote(params.Notes))
	if err != nil {
		return nil, errs.Mark(err, errs.ErrValidation)
	}

	view, err := c.ledger.Claim(ctx, entity)
	if err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			// Expected outcome of a lost race; the caller re-resolves
			// availability and picks another slot.
			return nil, errs.Mark(err, errs.ErrSlotTaken)
		}
		return nil, errs.Mark(err, errs.ErrStorageUnavailable)
	}

	claimed := fanout.SlotClaimed(view.ProviderID, view.Date, view.Time)
	c.publisher.Publish(fanout.ProviderTopic(view.ProviderID), claimed)
	c.publisher.Publish(fanout.TopicAdmin, claimed)
	c.publisher.Publish(fanout.AvailabilityTopic(view.ProviderID, view.Date), claimed)

	slog.Info("slot claimed",
		"booking_id", view.ID, "provider_id", view.ProviderID,
		"date", view.Date, "time", view.Time)

	return view, nil
}

func (c *bookingCommandsImpl) Confirm(ctx context.Context, bookingID uuid.UUID, actor identity.Identity) (*queries.BookingView, error) {
	current, err := c.loadBooking(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	if !actor.CanManageProvider(current.ProviderID) {
		return nil, errs.ErrForbidden
	}

	entity, err := entityFromView(current)
	if err != nil {
		return nil, err
	}
	if err := entity.Confirm(); err != nil {
		return nil, errs.Mark(err, errs.ErrInvalidTransition)
	}

	view, err := c.ledger.UpdateStatus(ctx, bookingID, booking.StatusConfirmed, []booking.Status{booking.StatusPending})
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			// Lost a transition race; the state moved under us.
			return nil, errs.Mark(err, errs.ErrInvalidTransition)
		}
		return nil, errs.Mark(err, errs.ErrStorageUnavailable)
	}

	c.publishStatusChanged(view)
	return view, nil
}

func (c *bookingCommandsImpl) Cancel(ctx context.Context, bookingID uuid.UUID, actor identity.Identity) (*queries.BookingView, error) {
	current, err := c.loadBooking(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	if !c.mayCancel(actor, current) {
		return nil, errs.ErrForbidden
	}

	entity, err := entityFromView(current)
	if err != nil {
		return nil, err
	}
	if err := entity.Cancel(); err != nil {
		return nil, errs.Mark(err, errs.ErrInvalidTransition)
	}

	view, err := c.ledger.UpdateStatus(ctx, bookingID, booking.StatusCancelled,
		[]booking.Status{booking.StatusPending, booking.StatusConfirmed})
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrInvalidTransition)
		}
		return nil, errs.Mark(err, errs.ErrStorageUnavailable)
	}

	c.publishStatusChanged(view)

	// Cancellation releases the ledger entry, so date watchers learn the slot
	// is open again.
	released := fanout.SlotReleased(view.ProviderID, view.Date, view.Time)
	c.publisher.Publish(fanout.ProviderTopic(view.ProviderID), released)
	c.publisher.Publish(fanout.TopicAdmin, released)
	c.publisher.Publish(fanout.AvailabilityTopic(view.ProviderID, view.Date), released)

	return view, nil
}

// mayCancel: the owning provider or an admin may always cancel an active
// booking; the client who created it may withdraw it only while it is still
// pending (once the provider has confirmed, cancellation goes through them).
func (c *bookingCommandsImpl) mayCancel(actor identity.Identity, view *queries.BookingView) bool {
	if actor.CanManageProvider(view.ProviderID) {
		return true
	}
	return actor.IsBookingClient(view.ClientEmail) && view.Status == booking.StatusPending.String()
}

func (c *bookingCommandsImpl) loadBooking(ctx context.Context, id uuid.UUID) (*queries.BookingView, error) {
	view, err := c.ledger.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrBookingNotFound)
		}
		return nil, errs.Mark(err, errs.ErrStorageUnavailable)
	}
	return view, nil
}

func (c *bookingCommandsImpl) publishStatusChanged(view *queries.BookingView) {
	event := fanout.StatusChanged(view.ID, view.Status)
	c.publisher.Publish(fanout.ProviderTopic(view.ProviderID), event)
	c.publisher.Publish(fanout.TopicAdmin, event)

	slog.Info("booking status changed", "booking_id", view.ID, "status", view.Status)
}

func entityFromView(view *queries.BookingView) (*booking.Booking, error) {
	date, err := schedule.NewDate(view.Date)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrStorageUnavailable)
	}
	client, err := booking.NewClientInfo(view.ClientName, view.ClientEmail, view.ClientPhone)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrStorageUnavailable)
	}

	return booking.ReconstructBooking(
		view.ID, view.ProviderID, date, view.Time,
		client, booking.NewNote(view.Notes),
		booking.Status(view.Status),
		view.CreatedAt, view.UpdatedAt,
	), nil
}
