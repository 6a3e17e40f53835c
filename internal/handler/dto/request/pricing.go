package request

import (
	"time"

	"staymarket/internal/usecase/commands"

	"github.com/google/uuid"
)

type CreatePricingRuleRequest struct {
	Kind            string   `json:"kind" binding:"required"`
	StartDate       *string  `json:"start_date,omitempty"`
	EndDate         *string  `json:"end_date,omitempty"`
	DaysOfWeek      []int    `json:"days_of_week,omitempty"`
	AdjustmentKind  string   `json:"adjustment_kind" binding:"required"`
	AdjustmentValue float64  `json:"adjustment_value"`
	MinNights       *int     `json:"min_nights,omitempty"`
	MaxNights       *int     `json:"max_nights,omitempty"`
	MinBookingValue *float64 `json:"min_booking_value,omitempty"`
	MaxBookingValue *float64 `json:"max_booking_value,omitempty"`
	LastMinuteDays  *int     `json:"last_minute_days,omitempty"`
	AdvanceDays     *int     `json:"advance_days,omitempty"`
	Priority        int      `json:"priority"`
}

func (r CreatePricingRuleRequest) ToParams(propertyID uuid.UUID) (commands.CreatePricingRuleParams, error) {
	startDate, err := parseDatePtr(r.StartDate)
	if err != nil {
		return commands.CreatePricingRuleParams{}, err
	}
	endDate, err := parseDatePtr(r.EndDate)
	if err != nil {
		return commands.CreatePricingRuleParams{}, err
	}

	return commands.CreatePricingRuleParams{
		PropertyID:      propertyID,
		Kind:            r.Kind,
		StartDate:       startDate,
		EndDate:         endDate,
		DaysOfWeek:      r.DaysOfWeek,
		AdjustmentKind:  r.AdjustmentKind,
		AdjustmentValue: r.AdjustmentValue,
		MinNights:       r.MinNights,
		MaxNights:       r.MaxNights,
		MinBookingValue: r.MinBookingValue,
		MaxBookingValue: r.MaxBookingValue,
		LastMinuteDays:  r.LastMinuteDays,
		AdvanceDays:     r.AdvanceDays,
		Priority:        r.Priority,
	}, nil
}

func parseDatePtr(s *string) (*time.Time, error) {
	if s == nil || *s == "" {
		return nil, nil
	}
	t, err := time.Parse(time.DateOnly, *s)
	if err != nil {
		return nil, ErrInvalidDate
	}
	return &t, nil
}
