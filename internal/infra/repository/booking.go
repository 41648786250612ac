package repository

import (
	"context"
	"time"

	"expert-booking/internal/domain/booking"
	"expert-booking/internal/infra"
	"expert-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

// claimRetries bounds the automatic retry of the atomic insert; only
// storage-unavailable class failures are retried (a lost race is returned to
// the caller immediately, never retried).
const (
	claimRetries      = 3
	claimRetryBackoff = 50 * time.Millisecond
)

type BookingRepository struct {
	db infra.DBTX
}

func NewBookingRepository(db infra.DBTX) *BookingRepository {
	return &BookingRepository{db: db}
}

const claimSQL = `
INSERT INTO bookings (id, provider_id, slot_date, slot_time,
                      client_name, client_email, client_phone, notes, status)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
RETURNING created_at, updated_at`

// Claim performs the single atomic check-and-insert. The partial unique index
// on (provider_id, slot_date, slot_time) WHERE status <> 'cancelled' is the
// arbiter: exactly one concurrent claim per open tuple succeeds, the rest
// surface as KindDuplicateKey.
func (r *BookingRepository) Claim(ctx context.Context, b *booking.Booking) (*queries.BookingView, error) {
	var lastErr error

	for attempt := 0; attempt < claimRetries; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return nil, infra.WrapRepoErr("claim aborted", ctx.Err(), infra.KindUnavailable)
			case <-time.After(time.Duration(attempt) * claimRetryBackoff):
			}
		}

		var createdAt, updatedAt time.Time
		err := r.db.QueryRow(ctx, claimSQL,
			b.ID(), b.ProviderID(), b.Date().String(), b.TimeLabel(),
			b.Client().Name(), b.Client().Email(), b.Client().Phone(),
			b.Note().String(), b.Status().String(),
		).Scan(&createdAt, &updatedAt)
		if err == nil {
			view := viewFromEntity(b)
			view.CreatedAt = createdAt
			view.UpdatedAt = updatedAt
			return view, nil
		}

		lastErr = infra.WrapRepoErr("failed to claim slot", err)
		if !infra.IsKind(lastErr, infra.KindUnavailable) {
			return nil, lastErr
		}
	}

	return nil, lastErr
}

const findBookingSQL = `
SELECT id, provider_id, slot_date::text, slot_time,
       client_name, client_email, client_phone, notes, status,
       created_at, updated_at
FROM bookings
WHERE id = $1`

func (r *BookingRepository) FindByID(ctx context.Context, id uuid.UUID) (*queries.BookingView, error) {
	var v queries.BookingView
	err := r.db.QueryRow(ctx, findBookingSQL, id).Scan(
		&v.ID, &v.ProviderID, &v.Date, &v.Time,
		&v.ClientName, &v.ClientEmail, &v.ClientPhone, &v.Notes, &v.Status,
		&v.CreatedAt, &v.UpdatedAt,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find booking", err)
	}
	return &v, nil
}

const updateStatusSQL = `
UPDATE bookings
SET status = $2, updated_at = now()
WHERE id = $1 AND status = ANY($3)
RETURNING id, provider_id, slot_date::text, slot_time,
          client_name, client_email, client_phone, notes, status,
          created_at, updated_at`

// UpdateStatus transitions a booking only if its current status is still one
// of allowedFrom, making load-check-update linearizable: a concurrent
// transition leaves zero rows, reported as KindNotFound.
func (r *BookingRepository) UpdateStatus(ctx context.Context, id uuid.UUID, to booking.Status, allowedFrom []booking.Status) (*queries.BookingView, error) {
	from := make([]string, len(allowedFrom))
	for i, s := range allowedFrom {
		from[i] = s.String()
	}

	var v queries.BookingView
	err := r.db.QueryRow(ctx, updateStatusSQL, id, to.String(), from).Scan(
		&v.ID, &v.ProviderID, &v.Date, &v.Time,
		&v.ClientName, &v.ClientEmail, &v.ClientPhone, &v.Notes, &v.Status,
		&v.CreatedAt, &v.UpdatedAt,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to update booking status", err)
	}
	return &v, nil
}

const activeTimesSQL = `
SELECT slot_time
FROM bookings
WHERE provider_id = $1 AND slot_date = $2 AND status <> 'cancelled'`

// ActiveTimes returns the time labels currently claimed for a provider+date.
func (r *BookingRepository) ActiveTimes(ctx context.Context, providerID uuid.UUID, date string) ([]string, error) {
	rows, err := r.db.Query(ctx, activeTimesSQL, providerID, date)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load claimed times", err)
	}
	defer rows.Close()

	var times []string
	for rows.Next() {
		var t string
		if err := rows.Scan(&t); err != nil {
			return nil, infra.WrapRepoErr("failed to scan claimed time", err)
		}
		times = append(times, t)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read claimed times", err)
	}
	return times, nil
}

const listByClientSQL = `
SELECT b.id, b.provider_id, p.name, p.category, b.slot_date::text, b.slot_time,
       b.client_name, b.client_email, b.status, b.created_at
FROM bookings b
JOIN providers p ON p.id = b.provider_id
WHERE b.client_email = $1
ORDER BY b.created_at DESC`

func (r *BookingRepository) ListByClientEmail(ctx context.Context, email string) ([]*queries.BookingListItem, error) {
	return r.list(ctx, listByClientSQL, email)
}

const listByProviderSQL = `
SELECT b.id, b.provider_id, p.name, p.category, b.slot_date::text, b.slot_time,
       b.client_name, b.client_email, b.status, b.created_at
FROM bookings b
JOIN providers p ON p.id = b.provider_id
WHERE b.provider_id = $1
ORDER BY b.created_at DESC`

func (r *BookingRepository) ListByProvider(ctx context.Context, providerID uuid.UUID) ([]*queries.BookingListItem, error) {
	return r.list(ctx, listByProviderSQL, providerID)
}

func (r *BookingRepository) list(ctx context.Context, sql string, arg any) ([]*queries.BookingListItem, error) {
	rows, err := r.db.Query(ctx, sql, arg)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings", err)
	}
	defer rows.Close()

	var items []*queries.BookingListItem
	for rows.Next() {
		var item queries.BookingListItem
		if err := rows.Scan(
			&item.ID, &item.ProviderID, &item.ProviderName, &item.ProviderCategory,
			&item.Date, &item.Time, &item.ClientName, &item.ClientEmail,
			&item.Status, &item.CreatedAt,
		); err != nil {
			return nil, infra.WrapRepoErr("failed to scan booking row", err)
		}
		items = append(items, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read booking rows", err)
	}
	return items, nil
}

func viewFromEntity(b *booking.Booking) *queries.BookingView {
	return &queries.BookingView{
		ID:          b.ID(),
		ProviderID:  b.ProviderID(),
		Date:        b.Date().String(),
		Time:        b.TimeLabel(),
		ClientName:  b.Client().Name(),
		ClientEmail: b.Client().Email(),
		ClientPhone: b.Client().Phone(),
		Notes:       b.Note().String(),
		Status:      b.Status().String(),
	}
}
