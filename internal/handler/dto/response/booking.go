package response

import (
	"time"

	"staymarket/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type BookingResponse struct {
	ID            uuid.UUID `json:"id"`
	PropertyID    uuid.UUID `json:"propertyId"`
	PropertyName  string    `json:"propertyName"`
	GuestID       uuid.UUID `json:"guestId"`
	CheckIn       string    `json:"checkIn"`
	CheckOut      string    `json:"checkOut"`
	Nights        int       `json:"nights"`
	Guests        int       `json:"guests"`
	Status        string    `json:"status"`
	PricePerNight float64   `json:"pricePerNight"`
	Total         float64   `json:"total"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

type BookingListResponse struct {
	ID         uuid.UUID `json:"id"`
	PropertyID uuid.UUID `json:"propertyId"`
	CheckIn    string    `json:"checkIn"`
	CheckOut   string    `json:"checkOut"`
	Status     string    `json:"status"`
	Total      float64   `json:"total"`
	CreatedAt  time.Time `json:"createdAt"`
}

type AvailabilityResponse struct {
	PropertyID uuid.UUID `json:"propertyId"`
	CheckIn    string    `json:"checkIn"`
	CheckOut   string    `json:"checkOut"`
	Available  bool      `json:"available"`
}

func FromBookingView(v *queries.BookingView) *BookingResponse {
	var resp BookingResponse
	_ = copier.Copy(&resp, v)
	resp.CheckIn = v.CheckIn.Format(time.DateOnly)
	resp.CheckOut = v.CheckOut.Format(time.DateOnly)
	return &resp
}

func FromBookingListItem(v *queries.BookingListItem) *BookingListResponse {
	var resp BookingListResponse
	_ = copier.Copy(&resp, v)
	resp.CheckIn = v.CheckIn.Format(time.DateOnly)
	resp.CheckOut = v.CheckOut.Format(time.DateOnly)
	return &resp
}

func FromAvailabilityView(v *queries.AvailabilityView) *AvailabilityResponse {
	return &AvailabilityResponse{
		PropertyID: v.PropertyID,
		CheckIn:    v.CheckIn.Format(time.DateOnly),
		CheckOut:   v.CheckOut.Format(time.DateOnly),
		Available:  v.Available,
	}
}
