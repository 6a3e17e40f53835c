package booking

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidStayRange  = errors.New("check-out must be after check-in")
	ErrNegativePrice     = errors.New("price cannot be negative")
	ErrInvalidStatus     = errors.New("invalid booking status")
	ErrNotCancellable    = errors.New("booking cannot be cancelled in its current status")
	ErrAlreadyCancelled  = errors.New("booking is already cancelled")
	ErrInvalidTransition = errors.New("invalid booking status transition")
)

type Booking struct {
	id            uuid.UUID
	propertyID    uuid.UUID
	guestID       uuid.UUID
	stay          StayRange
	guests        GuestCount
	status        Status
	pricePerNight float64
	total         float64
	createdAt     time.Time
	updatedAt     time.Time
}

func NewBooking(
	propertyID, guestID uuid.UUID,
	stay StayRange,
	guests GuestCount,
	pricePerNight, total float64,
) (*Booking, error) {
	if pricePerNight < 0 || total < 0 {
		return nil, ErrNegativePrice
	}

	return &Booking{
		id:            uuid.New(),
		propertyID:    propertyID,
		guestID:       guestID,
		stay:          stay,
		guests:        guests,
		status:        StatusConfirmed,
		pricePerNight: pricePerNight,
		total:         total,
	}, nil
}

func ReconstructBooking(
	id, propertyID, guestID uuid.UUID,
	stay StayRange,
	guests GuestCount,
	status Status,
	pricePerNight, total float64,
	createdAt, updatedAt time.Time,
) *Booking {
	return &Booking{
		id:            id,
		propertyID:    propertyID,
		guestID:       guestID,
		stay:          stay,
		guests:        guests,
		status:        status,
		pricePerNight: pricePerNight,
		total:         total,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
	}
}

// Cancel returns the status the booking transitions into. It never mutates
// the receiver; persisting the new status is the caller's concern.
func (b *Booking) Cancel() (Status, error) {
	if b.status == StatusCancelled {
		return b.status, ErrAlreadyCancelled
	}
	if !b.status.IsCancellable() {
		return b.status, ErrNotCancellable
	}
	return StatusCancelled, nil
}

// Transition validates a forward move through the stay lifecycle.
func (b *Booking) Transition(to Status) (Status, error) {
	if !to.IsValid() {
		return b.status, ErrInvalidStatus
	}

	allowed := map[Status][]Status{
		StatusPending:    {StatusConfirmed, StatusCancelled},
		StatusConfirmed:  {StatusCheckedIn, StatusCancelled},
		StatusCheckedIn:  {StatusCheckedOut},
		StatusCheckedOut: {StatusCompleted},
	}
	for _, s := range allowed[b.status] {
		if s == to {
			return to, nil
		}
	}
	return b.status, ErrInvalidTransition
}

func (b *Booking) BlocksAvailability() bool {
	return b.status.BlocksAvailability()
}

func (b *Booking) Nights() int {
	return b.stay.Nights()
}

func (b *Booking) ID() uuid.UUID          { return b.id }
func (b *Booking) PropertyID() uuid.UUID  { return b.propertyID }
func (b *Booking) GuestID() uuid.UUID     { return b.guestID }
func (b *Booking) Stay() StayRange        { return b.stay }
func (b *Booking) Guests() GuestCount     { return b.guests }
func (b *Booking) Status() Status         { return b.status }
func (b *Booking) PricePerNight() float64 { return b.pricePerNight }
func (b *Booking) Total() float64         { return b.total }
func (b *Booking) CreatedAt() time.Time   { return b.createdAt }
func (b *Booking) UpdatedAt() time.Time   { return b.updatedAt }
