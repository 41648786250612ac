//go:build unit

package booking_test

import (
	"testing"

	"expert-booking/internal/domain/booking"
	"expert-booking/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBooking(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		actual, err := builder.NewBookingBuilder().BuildDomain()
		require.NoError(t, err)
		require.NotNil(t, actual)

		assert.NotEqual(t, uuid.Nil, actual.ID())
		assert.Equal(t, booking.StatusPending, actual.Status())
		assert.True(t, actual.IsActive())
		assert.Equal(t, "2030-06-15", actual.Date().String())
		assert.Equal(t, "10:00", actual.TimeLabel())
		assert.Equal(t, "Taro Yamada", actual.Client().Name())
	})

	t.Run("empty time is rejected", func(t *testing.T) {
		_, err := builder.NewBookingBuilder().WithTime("").BuildDomain()
		assert.ErrorIs(t, err, booking.ErrEmptyTime)
	})

	t.Run("UUID uniqueness", func(t *testing.T) {
		first, err := builder.NewBookingBuilder().BuildDomain()
		require.NoError(t, err)
		second, err := builder.NewBookingBuilder().BuildDomain()
		require.NoError(t, err)

		assert.NotEqual(t, first.ID(), second.ID())
	})
}

func TestClientInfo(t *testing.T) {
	cases := []struct {
		name  string
		cname string
		email string
		phone string
		errIs error
	}{
		{name: "valid info", cname: "Taro", email: "taro@example.com", phone: "090-0000-0000"},
		{name: "missing name", cname: "", email: "taro@example.com", phone: "090", errIs: booking.ErrEmptyName},
		{name: "whitespace name", cname: "   ", email: "taro@example.com", phone: "090", errIs: booking.ErrEmptyName},
		{name: "missing email", cname: "Taro", email: "", phone: "090", errIs: booking.ErrEmptyEmail},
		{name: "missing phone", cname: "Taro", email: "taro@example.com", phone: "", errIs: booking.ErrEmptyPhone},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			info, err := booking.NewClientInfo(tc.cname, tc.email, tc.phone)
			if tc.errIs != nil {
				assert.ErrorIs(t, err, tc.errIs)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.cname, info.Name())
		})
	}

	t.Run("trims whitespace", func(t *testing.T) {
		info, err := booking.NewClientInfo("  Taro  ", " taro@example.com ", " 090 ")
		require.NoError(t, err)
		assert.Equal(t, "Taro", info.Name())
		assert.Equal(t, "taro@example.com", info.Email())
		assert.Equal(t, "090", info.Phone())
	})
}

// Exhaustive status transition table. Confirm is legal only from pending;
// cancel is legal from pending or confirmed; nothing leaves cancelled.
func TestStatusTransitions(t *testing.T) {
	cases := []struct {
		name       string
		from       booking.Status
		transition func(*booking.Booking) error
		wantStatus booking.Status
		errIs      error
	}{
		{name: "pending to confirmed", from: booking.StatusPending, transition: (*booking.Booking).Confirm, wantStatus: booking.StatusConfirmed},
		{name: "pending to cancelled", from: booking.StatusPending, transition: (*booking.Booking).Cancel, wantStatus: booking.StatusCancelled},
		{name: "confirmed to cancelled", from: booking.StatusConfirmed, transition: (*booking.Booking).Cancel, wantStatus: booking.StatusCancelled},
		{name: "confirmed to confirmed is rejected", from: booking.StatusConfirmed, transition: (*booking.Booking).Confirm, errIs: booking.ErrInvalidTransition},
		{name: "cancelled to confirmed is rejected", from: booking.StatusCancelled, transition: (*booking.Booking).Confirm, errIs: booking.ErrInvalidTransition},
		{name: "cancelled to cancelled is rejected", from: booking.StatusCancelled, transition: (*booking.Booking).Cancel, errIs: booking.ErrInvalidTransition},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			b := buildWithStatus(t, tc.from)

			err := tc.transition(b)
			if tc.errIs != nil {
				assert.ErrorIs(t, err, tc.errIs)
				assert.Equal(t, tc.from, b.Status(), "failed transition must not change state")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.wantStatus, b.Status())
		})
	}
}

func TestStatusIsActive(t *testing.T) {
	assert.True(t, booking.StatusPending.IsActive())
	assert.True(t, booking.StatusConfirmed.IsActive())
	assert.False(t, booking.StatusCancelled.IsActive())
	assert.False(t, booking.Status("unknown").IsValid())
}

func buildWithStatus(t *testing.T, status booking.Status) *booking.Booking {
	t.Helper()

	b, err := builder.NewBookingBuilder().BuildDomain()
	require.NoError(t, err)

	switch status {
	case booking.StatusPending:
	case booking.StatusConfirmed:
		require.NoError(t, b.Confirm())
	case booking.StatusCancelled:
		require.NoError(t, b.Cancel())
	}
	return b
}
