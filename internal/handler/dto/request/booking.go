package request

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var ErrInvalidDate = errors.New("dates must be formatted as YYYY-MM-DD")

type CreateBookingRequest struct {
	PropertyID uuid.UUID `json:"property_id" binding:"required"`
	CheckIn    string    `json:"check_in" binding:"required"`
	CheckOut   string    `json:"check_out" binding:"required"`
	Guests     int       `json:"guests" binding:"required,min=1"`
}

func (r CreateBookingRequest) StayDates() (checkIn, checkOut time.Time, err error) {
	return ParseStayDates(r.CheckIn, r.CheckOut)
}

// ParseStayDates parses the date-only wire format shared by booking bodies
// and availability/quote query strings.
func ParseStayDates(checkIn, checkOut string) (time.Time, time.Time, error) {
	in, err := time.Parse(time.DateOnly, checkIn)
	if err != nil {
		return time.Time{}, time.Time{}, ErrInvalidDate
	}
	out, err := time.Parse(time.DateOnly, checkOut)
	if err != nil {
		return time.Time{}, time.Time{}, ErrInvalidDate
	}
	return in, out, nil
}
