package queries

import (
	"time"

	"github.com/google/uuid"
)

// Read models (DTO for read side)
type BookingView struct {
	ID            uuid.UUID `json:"id"`
	PropertyID    uuid.UUID `json:"property_id"`
	PropertyName  string    `json:"property_name"`
	GuestID       uuid.UUID `json:"guest_id"`
	CheckIn       time.Time `json:"check_in"`
	CheckOut      time.Time `json:"check_out"`
	Nights        int       `json:"nights"`
	Guests        int       `json:"guests"`
	Status        string    `json:"status"`
	PricePerNight float64   `json:"price_per_night"`
	Total         float64   `json:"total"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

type BookingListItem struct {
	ID         uuid.UUID `json:"id"`
	PropertyID uuid.UUID `json:"property_id"`
	CheckIn    time.Time `json:"check_in"`
	CheckOut   time.Time `json:"check_out"`
	Status     string    `json:"status"`
	Total      float64   `json:"total"`
	CreatedAt  time.Time `json:"created_at"`
}

type PropertyView struct {
	ID        uuid.UUID `json:"id"`
	HostID    uuid.UUID `json:"host_id"`
	Name      string    `json:"name"`
	BaseRate  float64   `json:"base_rate"`
	MaxGuests int       `json:"max_guests"`
	MinNights int       `json:"min_nights"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type PricingRuleView struct {
	ID              uuid.UUID  `json:"id"`
	PropertyID      uuid.UUID  `json:"property_id"`
	Kind            string     `json:"kind"`
	StartDate       *time.Time `json:"start_date,omitempty"`
	EndDate         *time.Time `json:"end_date,omitempty"`
	DaysOfWeek      []int      `json:"days_of_week,omitempty"`
	AdjustmentKind  string     `json:"adjustment_kind"`
	AdjustmentValue float64    `json:"adjustment_value"`
	MinNights       *int       `json:"min_nights,omitempty"`
	MaxNights       *int       `json:"max_nights,omitempty"`
	Priority        int        `json:"priority"`
	IsActive        bool       `json:"is_active"`
	CreatedAt       time.Time  `json:"created_at"`
}

type SuggestionView struct {
	ID             uuid.UUID  `json:"id"`
	PropertyID     uuid.UUID  `json:"property_id"`
	WindowStart    time.Time  `json:"window_start"`
	WindowEnd      time.Time  `json:"window_end"`
	CurrentPrice   float64    `json:"current_price"`
	SuggestedPrice float64    `json:"suggested_price"`
	Confidence     float64    `json:"confidence"`
	Status         string     `json:"status"`
	DecidedAt      *time.Time `json:"decided_at,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
}

type AvailabilityView struct {
	PropertyID uuid.UUID `json:"property_id"`
	CheckIn    time.Time `json:"check_in"`
	CheckOut   time.Time `json:"check_out"`
	Available  bool      `json:"available"`
}

type NightPriceView struct {
	Date  time.Time `json:"date"`
	Price float64   `json:"price"`
}

type QuoteView struct {
	PropertyID uuid.UUID        `json:"property_id"`
	CheckIn    time.Time        `json:"check_in"`
	CheckOut   time.Time        `json:"check_out"`
	Nights     []NightPriceView `json:"nights"`
	Total      float64          `json:"total"`
	Average    float64          `json:"average"`
}
