//go:build unit || e2e

package builder

import (
	"time"

	dombooking "staymarket/internal/domain/booking"
	reqdto "staymarket/internal/handler/dto/request"
	"staymarket/internal/usecase/queries"

	"github.com/google/uuid"
)

type BookingBuilder struct {
	ID            uuid.UUID
	PropertyID    uuid.UUID
	PropertyName  string
	GuestID       uuid.UUID
	CheckIn       time.Time
	CheckOut      time.Time
	Guests        int
	Status        string
	PricePerNight float64
	Total         float64
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func NewBookingBuilder() *BookingBuilder {
	now := time.Now()
	checkIn := time.Date(now.Year()+1, time.June, 10, 0, 0, 0, 0, time.UTC)
	return &BookingBuilder{
		ID:            uuid.New(),
		PropertyID:    uuid.New(),
		PropertyName:  "Seaside Cottage",
		GuestID:       uuid.New(),
		CheckIn:       checkIn,
		CheckOut:      checkIn.AddDate(0, 0, 3),
		Guests:        2,
		Status:        string(dombooking.StatusConfirmed),
		PricePerNight: 120.0,
		Total:         360.0,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

func (b *BookingBuilder) With(mutate func(*BookingBuilder)) *BookingBuilder {
	mutate(b)
	return b
}

// Build methods
func (b *BookingBuilder) BuildDomain() (*dombooking.Booking, error) {
	stay, err := dombooking.NewStayRange(b.CheckIn, b.CheckOut)
	if err != nil {
		return nil, err
	}
	guests, err := dombooking.NewGuestCount(b.Guests)
	if err != nil {
		return nil, err
	}
	return dombooking.ReconstructBooking(
		b.ID, b.PropertyID, b.GuestID,
		stay, guests,
		dombooking.Status(b.Status),
		b.PricePerNight, b.Total,
		b.CreatedAt, b.UpdatedAt,
	), nil
}

func (b *BookingBuilder) BuildCreateRequestDTO() reqdto.CreateBookingRequest {
	return reqdto.CreateBookingRequest{
		PropertyID: b.PropertyID,
		CheckIn:    b.CheckIn.Format(time.DateOnly),
		CheckOut:   b.CheckOut.Format(time.DateOnly),
		Guests:     b.Guests,
	}
}

func (b *BookingBuilder) BuildView() *queries.BookingView {
	return &queries.BookingView{
		ID:            b.ID,
		PropertyID:    b.PropertyID,
		PropertyName:  b.PropertyName,
		GuestID:       b.GuestID,
		CheckIn:       b.CheckIn,
		CheckOut:      b.CheckOut,
		Nights:        int(b.CheckOut.Sub(b.CheckIn).Hours() / 24),
		Guests:        b.Guests,
		Status:        b.Status,
		PricePerNight: b.PricePerNight,
		Total:         b.Total,
		CreatedAt:     b.CreatedAt,
		UpdatedAt:     b.UpdatedAt,
	}
}

func (b *BookingBuilder) BuildListItem() *queries.BookingListItem {
	return &queries.BookingListItem{
		ID:         b.ID,
		PropertyID: b.PropertyID,
		CheckIn:    b.CheckIn,
		CheckOut:   b.CheckOut,
		Status:     b.Status,
		Total:      b.Total,
		CreatedAt:  b.CreatedAt,
	}
}
