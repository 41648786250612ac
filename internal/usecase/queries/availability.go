package queries

import (
	"context"

	"expert-booking/internal/domain/schedule"
	"expert-booking/internal/infra"
	"expert-booking/internal/pkg/errs"

	"github.com/google/uuid"
)

// AvailabilityQueries is the read path for the open/closed slot view. It holds
// no state of its own: every call recomputes from the directory templates and
// the ledger, so it is safe to call arbitrarily often and concurrently with
// claims.
type AvailabilityQueries interface {
	OpenSlots(ctx context.Context, providerID uuid.UUID, date schedule.Date) ([]schedule.CandidateSlot, error)
}

type ProviderDirectory interface {
	FindByID(ctx context.Context, id uuid.UUID) (*ProviderView, error)
	FindTemplate(ctx context.Context, providerID uuid.UUID, date string) ([]schedule.CandidateSlot, error)
}

type ClaimReader interface {
	ActiveTimes(ctx context.Context, providerID uuid.UUID, date string) ([]string, error)
}

type availabilityQueriesImpl struct {
	directory ProviderDirectory
	claims    ClaimReader
}

func NewAvailabilityQueries(directory ProviderDirectory, claims ClaimReader) AvailabilityQueries {
	return &availabilityQueriesImpl{
		directory: directory,
		claims:    claims,
	}
}

func (q *availabilityQueriesImpl) OpenSlots(ctx context.Context, providerID uuid.UUID, date schedule.Date) ([]schedule.CandidateSlot, error) {
	if _, err := q.directory.FindByID(ctx, providerID); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrProviderNotFound)
		}
		return nil, errs.Mark(err, errs.ErrStorageUnavailable)
	}

	times, err := q.directory.FindTemplate(ctx, providerID, date.String())
	if err != nil {
		return nil, errs.Mark(err, errs.ErrStorageUnavailable)
	}
	if times == nil {
		times = schedule.DefaultTimes()
	}

	claimed, err := q.claims.ActiveTimes(ctx, providerID, date.String())
	if err != nil {
		return nil, errs.Mark(err, errs.ErrStorageUnavailable)
	}

	return schedule.ApplyClaims(times, claimed), nil
}
