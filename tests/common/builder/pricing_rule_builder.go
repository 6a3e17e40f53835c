//go:build unit || e2e

package builder

import (
	"time"

	dompricing "staymarket/internal/domain/pricing"
	reqdto "staymarket/internal/handler/dto/request"
	"staymarket/internal/usecase/queries"

	"github.com/google/uuid"
)

type PricingRuleBuilder struct {
	ID              uuid.UUID
	PropertyID      uuid.UUID
	Kind            string
	StartDate       *time.Time
	EndDate         *time.Time
	DaysOfWeek      []int
	AdjustmentKind  string
	AdjustmentValue float64
	MinNights       *int
	MaxNights       *int
	MinBookingValue *float64
	MaxBookingValue *float64
	LastMinuteDays  *int
	AdvanceDays     *int
	Priority        int
	Sequence        int64
	IsActive        bool
	CreatedAt       time.Time
}

func NewPricingRuleBuilder() *PricingRuleBuilder {
	return &PricingRuleBuilder{
		ID:              uuid.New(),
		PropertyID:      uuid.New(),
		Kind:            string(dompricing.KindWeekend),
		DaysOfWeek:      []int{5, 6},
		AdjustmentKind:  string(dompricing.AdjustPercentage),
		AdjustmentValue: 25.0,
		Priority:        10,
		Sequence:        1,
		IsActive:        true,
		CreatedAt:       time.Now(),
	}
}

func (b *PricingRuleBuilder) With(mutate func(*PricingRuleBuilder)) *PricingRuleBuilder {
	mutate(b)
	return b
}

// Build methods
func (b *PricingRuleBuilder) BuildSpec() dompricing.RuleSpec {
	return dompricing.RuleSpec{
		PropertyID:      b.PropertyID,
		Kind:            dompricing.Kind(b.Kind),
		StartDate:       b.StartDate,
		EndDate:         b.EndDate,
		DaysOfWeek:      b.DaysOfWeek,
		AdjustmentKind:  dompricing.AdjustmentKind(b.AdjustmentKind),
		AdjustmentValue: b.AdjustmentValue,
		MinNights:       b.MinNights,
		MaxNights:       b.MaxNights,
		MinBookingValue: b.MinBookingValue,
		MaxBookingValue: b.MaxBookingValue,
		LastMinuteDays:  b.LastMinuteDays,
		AdvanceDays:     b.AdvanceDays,
		Priority:        b.Priority,
	}
}

func (b *PricingRuleBuilder) BuildDomain() *dompricing.Rule {
	return dompricing.ReconstructRule(b.ID, b.BuildSpec(), b.Sequence, b.IsActive)
}

func (b *PricingRuleBuilder) BuildCreateRequestDTO() reqdto.CreatePricingRuleRequest {
	var startDate, endDate *string
	if b.StartDate != nil {
		s := b.StartDate.Format(time.DateOnly)
		startDate = &s
	}
	if b.EndDate != nil {
		s := b.EndDate.Format(time.DateOnly)
		endDate = &s
	}
	return reqdto.CreatePricingRuleRequest{
		Kind:            b.Kind,
		StartDate:       startDate,
		EndDate:         endDate,
		DaysOfWeek:      b.DaysOfWeek,
		AdjustmentKind:  b.AdjustmentKind,
		AdjustmentValue: b.AdjustmentValue,
		MinNights:       b.MinNights,
		MaxNights:       b.MaxNights,
		MinBookingValue: b.MinBookingValue,
		MaxBookingValue: b.MaxBookingValue,
		LastMinuteDays:  b.LastMinuteDays,
		AdvanceDays:     b.AdvanceDays,
		Priority:        b.Priority,
	}
}

func (b *PricingRuleBuilder) BuildView() *queries.PricingRuleView {
	return &queries.PricingRuleView{
		ID:              b.ID,
		PropertyID:      b.PropertyID,
		Kind:            b.Kind,
		StartDate:       b.StartDate,
		EndDate:         b.EndDate,
		DaysOfWeek:      b.DaysOfWeek,
		AdjustmentKind:  b.AdjustmentKind,
		AdjustmentValue: b.AdjustmentValue,
		MinNights:       b.MinNights,
		MaxNights:       b.MaxNights,
		Priority:        b.Priority,
		IsActive:        b.IsActive,
		CreatedAt:       b.CreatedAt,
	}
}
