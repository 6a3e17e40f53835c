package booking

import (
	"errors"
	"fmt"
	"time"
)

// StayRange is a half-open date range [checkIn, checkOut): the checkout day
// itself is not occupied, so a checkout on day N never conflicts with a
// check-in on day N.
type StayRange struct {
	checkIn  time.Time
	checkOut time.Time
}

func NewStayRange(checkIn, checkOut time.Time) (StayRange, error) {
	in := truncateToDay(checkIn)
	out := truncateToDay(checkOut)

	if !out.After(in) {
		return StayRange{}, ErrInvalidStayRange
	}

	return StayRange{checkIn: in, checkOut: out}, nil
}

func (s StayRange) CheckIn() time.Time {
	return s.checkIn
}

func (s StayRange) CheckOut() time.Time {
	return s.checkOut
}

// Overlaps reports whether two half-open ranges share at least one night.
func (s StayRange) Overlaps(other StayRange) bool {
	return s.checkIn.Before(other.checkOut) && s.checkOut.After(other.checkIn)
}

func (s StayRange) Contains(date time.Time) bool {
	d := truncateToDay(date)
	return !d.Before(s.checkIn) && d.Before(s.checkOut)
}

// Nights returns the whole-day length of the stay. Valid ranges always have
// at least one night.
func (s StayRange) Nights() int {
	return int(s.checkOut.Sub(s.checkIn).Hours() / 24)
}

// EachNight yields the occupied dates in order, checkout day excluded.
func (s StayRange) EachNight() []time.Time {
	nights := make([]time.Time, 0, s.Nights())
	for d := s.checkIn; d.Before(s.checkOut); d = d.AddDate(0, 0, 1) {
		nights = append(nights, d)
	}
	return nights
}

func (s StayRange) String() string {
	return fmt.Sprintf("[%s,%s)", s.checkIn.Format(time.DateOnly), s.checkOut.Format(time.DateOnly))
}

// CalculateNights is the validated whole-day difference between two dates.
func CalculateNights(checkIn, checkOut time.Time) (int, error) {
	r, err := NewStayRange(checkIn, checkOut)
	if err != nil {
		return 0, err
	}
	return r.Nights(), nil
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

type GuestCount struct {
	value int
}

func NewGuestCount(value int) (GuestCount, error) {
	if value < 1 {
		return GuestCount{}, errors.New("guest count must be at least 1")
	}
	return GuestCount{value: value}, nil
}

func (g GuestCount) Value() int {
	return g.value
}
