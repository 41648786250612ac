//go:build unit

package queries_test

import (
	"context"
	"testing"

	"expert-booking/internal/domain/schedule"
	"expert-booking/internal/infra"
	"expert-booking/internal/pkg/errs"
	"expert-booking/internal/usecase/queries"
	queriesmock "expert-booking/tests/mock/queries"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type availabilityFixture struct {
	directory *queriesmock.MockProviderDirectory
	claims    *queriesmock.MockClaimReader
	queries   queries.AvailabilityQueries
}

func newAvailabilityFixture(t *testing.T) *availabilityFixture {
	ctrl := gomock.NewController(t)
	directory := queriesmock.NewMockProviderDirectory(ctrl)
	claims := queriesmock.NewMockClaimReader(ctrl)
	return &availabilityFixture{
		directory: directory,
		claims:    claims,
		queries:   queries.NewAvailabilityQueries(directory, claims),
	}
}

func mustDate(t *testing.T, value string) schedule.Date {
	t.Helper()
	d, err := schedule.NewDate(value)
	require.NoError(t, err)
	return d
}

func TestOpenSlots(t *testing.T) {
	providerID := uuid.New()
	provider := &queries.ProviderView{ID: providerID, Name: "Dr. Sato", Category: "dentist", Approved: true}

	t.Run("template merged with active claims", func(t *testing.T) {
		f := newAvailabilityFixture(t)
		date := mustDate(t, "2030-06-15")
		template := []schedule.CandidateSlot{
			{Time: "09:00", Available: true},
			{Time: "10:00", Available: true},
			{Time: "11:00", Available: false},
		}

		f.directory.EXPECT().FindByID(gomock.Any(), providerID).Return(provider, nil)
		f.directory.EXPECT().FindTemplate(gomock.Any(), providerID, "2030-06-15").Return(template, nil)
		f.claims.EXPECT().ActiveTimes(gomock.Any(), providerID, "2030-06-15").Return([]string{"10:00"}, nil)

		got, err := f.queries.OpenSlots(context.Background(), providerID, date)
		require.NoError(t, err)

		want := []schedule.CandidateSlot{
			{Time: "09:00", Available: true},
			{Time: "10:00", Available: false},
			{Time: "11:00", Available: false},
		}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("slots mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("no template falls back to the default slots", func(t *testing.T) {
		f := newAvailabilityFixture(t)
		date := mustDate(t, "2030-06-15")

		f.directory.EXPECT().FindByID(gomock.Any(), providerID).Return(provider, nil)
		f.directory.EXPECT().FindTemplate(gomock.Any(), providerID, "2030-06-15").Return(nil, nil)
		f.claims.EXPECT().ActiveTimes(gomock.Any(), providerID, "2030-06-15").Return(nil, nil)

		got, err := f.queries.OpenSlots(context.Background(), providerID, date)
		require.NoError(t, err)
		if diff := cmp.Diff(schedule.DefaultTimes(), got); diff != "" {
			t.Errorf("slots mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("unknown provider", func(t *testing.T) {
		f := newAvailabilityFixture(t)
		date := mustDate(t, "2030-06-15")

		f.directory.EXPECT().FindByID(gomock.Any(), providerID).
			Return(nil, infra.WrapRepoErr("no rows", nil, infra.KindNotFound))

		_, err := f.queries.OpenSlots(context.Background(), providerID, date)
		assert.ErrorIs(t, err, errs.ErrProviderNotFound)
	})

	t.Run("ledger failure surfaces as storage unavailable", func(t *testing.T) {
		f := newAvailabilityFixture(t)
		date := mustDate(t, "2030-06-15")

		f.directory.EXPECT().FindByID(gomock.Any(), providerID).Return(provider, nil)
		f.directory.EXPECT().FindTemplate(gomock.Any(), providerID, "2030-06-15").Return(nil, nil)
		f.claims.EXPECT().ActiveTimes(gomock.Any(), providerID, "2030-06-15").
			Return(nil, infra.WrapRepoErr("connection lost", nil, infra.KindUnavailable))

		_, err := f.queries.OpenSlots(context.Background(), providerID, date)
		assert.ErrorIs(t, err, errs.ErrStorageUnavailable)
	})
}
