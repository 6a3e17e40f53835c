//go:build unit

package booking_test

import (
	"testing"
	"time"

	"staymarket/internal/domain/booking"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func stay(t *testing.T, in, out time.Time) booking.StayRange {
	t.Helper()
	r, err := booking.NewStayRange(in, out)
	require.NoError(t, err)
	return r
}

func TestNewStayRange(t *testing.T) {
	t.Run("valid range", func(t *testing.T) {
		r, err := booking.NewStayRange(day(2026, 9, 1), day(2026, 9, 4))
		require.NoError(t, err)
		assert.Equal(t, 3, r.Nights())
	})

	t.Run("zero-night range rejected", func(t *testing.T) {
		_, err := booking.NewStayRange(day(2026, 9, 1), day(2026, 9, 1))
		assert.ErrorIs(t, err, booking.ErrInvalidStayRange)
	})

	t.Run("inverted range rejected", func(t *testing.T) {
		_, err := booking.NewStayRange(day(2026, 9, 4), day(2026, 9, 1))
		assert.ErrorIs(t, err, booking.ErrInvalidStayRange)
	})

	t.Run("time-of-day is discarded", func(t *testing.T) {
		r, err := booking.NewStayRange(
			time.Date(2026, 9, 1, 15, 30, 0, 0, time.UTC),
			time.Date(2026, 9, 3, 10, 0, 0, 0, time.UTC),
		)
		require.NoError(t, err)
		assert.Equal(t, 2, r.Nights())
		assert.Equal(t, day(2026, 9, 1), r.CheckIn())
	})
}

func TestStayRange_Overlaps(t *testing.T) {
	a := stay(t, day(2026, 9, 1), day(2026, 9, 5))

	cases := []struct {
		name string
		b    booking.StayRange
		want bool
	}{
		{"identical", stay(t, day(2026, 9, 1), day(2026, 9, 5)), true},
		{"contained", stay(t, day(2026, 9, 2), day(2026, 9, 4)), true},
		{"straddles start", stay(t, day(2026, 8, 30), day(2026, 9, 2)), true},
		{"straddles end", stay(t, day(2026, 9, 4), day(2026, 9, 8)), true},
		{"surrounds", stay(t, day(2026, 8, 1), day(2026, 10, 1)), true},
		{"touches at checkout", stay(t, day(2026, 9, 5), day(2026, 9, 8)), false},
		{"touches at check-in", stay(t, day(2026, 8, 28), day(2026, 9, 1)), false},
		{"fully before", stay(t, day(2026, 8, 1), day(2026, 8, 10)), false},
		{"fully after", stay(t, day(2026, 9, 10), day(2026, 9, 12)), false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, a.Overlaps(tc.b))
			// Overlap is symmetric.
			assert.Equal(t, tc.want, tc.b.Overlaps(a))
		})
	}
}

func TestCalculateNights(t *testing.T) {
	n, err := booking.CalculateNights(day(2026, 9, 1), day(2026, 9, 8))
	require.NoError(t, err)
	assert.Equal(t, 7, n)

	_, err = booking.CalculateNights(day(2026, 9, 8), day(2026, 9, 8))
	assert.ErrorIs(t, err, booking.ErrInvalidStayRange)
}

func TestStayRange_EachNight(t *testing.T) {
	r := stay(t, day(2026, 9, 1), day(2026, 9, 4))
	nights := r.EachNight()
	require.Len(t, nights, 3)
	assert.Equal(t, day(2026, 9, 1), nights[0])
	assert.Equal(t, day(2026, 9, 3), nights[2])
}
