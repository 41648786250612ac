//go:build unit

package schedule_test

import (
	"testing"
	"time"

	"expert-booking/internal/domain/schedule"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDate(t *testing.T) {
	t.Run("valid date", func(t *testing.T) {
		d, err := schedule.NewDate("2030-06-15")
		require.NoError(t, err)
		assert.Equal(t, "2030-06-15", d.String())
		assert.False(t, d.IsZero())
	})

	cases := []string{"", "2030/06/15", "15-06-2030", "2030-13-01", "2030-06-32", "not-a-date"}
	for _, value := range cases {
		t.Run("rejects "+value, func(t *testing.T) {
			_, err := schedule.NewDate(value)
			assert.ErrorIs(t, err, schedule.ErrInvalidDate)
		})
	}
}

func TestDateIsBefore(t *testing.T) {
	now := time.Date(2030, 6, 15, 13, 45, 0, 0, time.UTC)

	past, _ := schedule.NewDate("2030-06-14")
	today, _ := schedule.NewDate("2030-06-15")
	future, _ := schedule.NewDate("2030-06-16")

	assert.True(t, past.IsBefore(now))
	assert.False(t, today.IsBefore(now), "same day is not before, regardless of time of day")
	assert.False(t, future.IsBefore(now))
}

func TestDefaultTimes(t *testing.T) {
	first := schedule.DefaultTimes()
	require.Len(t, first, 5)

	// Mutating one copy must not leak into the next.
	first[0].Available = false
	second := schedule.DefaultTimes()
	assert.True(t, second[0].Available)
}

func TestApplyClaims(t *testing.T) {
	template := []schedule.CandidateSlot{
		{Time: "09:00", Available: true},
		{Time: "10:00", Available: false},
		{Time: "11:00", Available: true},
		{Time: "14:00", Available: true},
	}

	t.Run("no claims leaves template as is", func(t *testing.T) {
		got := schedule.ApplyClaims(template, nil)
		if diff := cmp.Diff(template, got); diff != "" {
			t.Errorf("slots mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("claim overrides an open slot", func(t *testing.T) {
		got := schedule.ApplyClaims(template, []string{"09:00"})
		want := []schedule.CandidateSlot{
			{Time: "09:00", Available: false},
			{Time: "10:00", Available: false},
			{Time: "11:00", Available: true},
			{Time: "14:00", Available: true},
		}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("slots mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("claim on a template-closed slot stays closed", func(t *testing.T) {
		got := schedule.ApplyClaims(template, []string{"10:00"})
		assert.False(t, got[1].Available)
	})

	t.Run("claim for a time outside the template is ignored", func(t *testing.T) {
		got := schedule.ApplyClaims(template, []string{"23:00"})
		if diff := cmp.Diff(template, got); diff != "" {
			t.Errorf("slots mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("ordering is preserved", func(t *testing.T) {
		got := schedule.ApplyClaims(template, []string{"14:00", "09:00"})
		times := make([]string, len(got))
		for i, s := range got {
			times[i] = s.Time
		}
		assert.Equal(t, []string{"09:00", "10:00", "11:00", "14:00"}, times)
	})

	t.Run("input template is not mutated", func(t *testing.T) {
		_ = schedule.ApplyClaims(template, []string{"09:00"})
		assert.True(t, template[0].Available)
	})
}
