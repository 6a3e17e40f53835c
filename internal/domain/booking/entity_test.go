//go:build unit

package booking_test

import (
	"testing"
	"time"

	"staymarket/internal/domain/booking"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBooking(t *testing.T, status booking.Status) *booking.Booking {
	t.Helper()
	r := stay(t, day(2026, 9, 1), day(2026, 9, 4))
	guests, err := booking.NewGuestCount(2)
	require.NoError(t, err)
	return booking.ReconstructBooking(
		uuid.New(), uuid.New(), uuid.New(),
		r, guests, status, 120.00, 360.00,
		time.Now(), time.Now(),
	)
}

func TestNewBooking(t *testing.T) {
	r := stay(t, day(2026, 9, 1), day(2026, 9, 4))
	guests, err := booking.NewGuestCount(2)
	require.NoError(t, err)

	b, err := booking.NewBooking(uuid.New(), uuid.New(), r, guests, 120.00, 360.00)
	require.NoError(t, err)
	assert.Equal(t, booking.StatusConfirmed, b.Status())
	assert.Equal(t, 3, b.Nights())

	_, err = booking.NewBooking(uuid.New(), uuid.New(), r, guests, -1, 360.00)
	assert.ErrorIs(t, err, booking.ErrNegativePrice)
}

func TestBooking_Cancel(t *testing.T) {
	cases := []struct {
		status booking.Status
		errIs  error
	}{
		{booking.StatusPending, nil},
		{booking.StatusConfirmed, nil},
		{booking.StatusCheckedIn, booking.ErrNotCancellable},
		{booking.StatusCheckedOut, booking.ErrNotCancellable},
		{booking.StatusCompleted, booking.ErrNotCancellable},
		{booking.StatusCancelled, booking.ErrAlreadyCancelled},
	}
	for _, tc := range cases {
		t.Run(string(tc.status), func(t *testing.T) {
			b := newBooking(t, tc.status)
			next, err := b.Cancel()
			if tc.errIs != nil {
				assert.ErrorIs(t, err, tc.errIs)
				// Cancel is pure: the entity keeps its status.
				assert.Equal(t, tc.status, b.Status())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, booking.StatusCancelled, next)
			assert.Equal(t, tc.status, b.Status())
		})
	}
}

func TestBooking_Transition(t *testing.T) {
	b := newBooking(t, booking.StatusConfirmed)

	next, err := b.Transition(booking.StatusCheckedIn)
	require.NoError(t, err)
	assert.Equal(t, booking.StatusCheckedIn, next)

	_, err = b.Transition(booking.StatusCompleted)
	assert.ErrorIs(t, err, booking.ErrInvalidTransition)

	_, err = b.Transition("teleported")
	assert.ErrorIs(t, err, booking.ErrInvalidStatus)
}

func TestStatus_BlocksAvailability(t *testing.T) {
	for _, s := range []booking.Status{
		booking.StatusPending, booking.StatusConfirmed, booking.StatusCheckedIn,
		booking.StatusCheckedOut, booking.StatusCompleted,
	} {
		assert.True(t, s.BlocksAvailability(), s)
	}
	assert.False(t, booking.StatusCancelled.BlocksAvailability())
}
