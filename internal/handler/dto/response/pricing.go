package response

import (
	"time"

	"staymarket/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type PricingRuleResponse struct {
	ID              uuid.UUID `json:"id"`
	PropertyID      uuid.UUID `json:"propertyId"`
	Kind            string    `json:"kind"`
	StartDate       *string   `json:"startDate,omitempty"`
	EndDate         *string   `json:"endDate,omitempty"`
	DaysOfWeek      []int     `json:"daysOfWeek,omitempty"`
	AdjustmentKind  string    `json:"adjustmentKind"`
	AdjustmentValue float64   `json:"adjustmentValue"`
	MinNights       *int      `json:"minNights,omitempty"`
	MaxNights       *int      `json:"maxNights,omitempty"`
	Priority        int       `json:"priority"`
	IsActive        bool      `json:"isActive"`
	CreatedAt       time.Time `json:"createdAt"`
}

type NightPriceResponse struct {
	Date  string  `json:"date"`
	Price float64 `json:"price"`
}

type QuoteResponse struct {
	PropertyID uuid.UUID            `json:"propertyId"`
	CheckIn    string               `json:"checkIn"`
	CheckOut   string               `json:"checkOut"`
	Nights     []NightPriceResponse `json:"nights"`
	Total      float64              `json:"total"`
	Average    float64              `json:"average"`
}

func FromPricingRuleView(v *queries.PricingRuleView) *PricingRuleResponse {
	var resp PricingRuleResponse
	_ = copier.Copy(&resp, v)
	resp.StartDate = formatDatePtr(v.StartDate)
	resp.EndDate = formatDatePtr(v.EndDate)
	return &resp
}

func FromQuoteView(v *queries.QuoteView) *QuoteResponse {
	resp := &QuoteResponse{
		PropertyID: v.PropertyID,
		CheckIn:    v.CheckIn.Format(time.DateOnly),
		CheckOut:   v.CheckOut.Format(time.DateOnly),
		Total:      v.Total,
		Average:    v.Average,
	}
	for _, n := range v.Nights {
		resp.Nights = append(resp.Nights, NightPriceResponse{
			Date:  n.Date.Format(time.DateOnly),
			Price: n.Price,
		})
	}
	return resp
}

func formatDatePtr(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(time.DateOnly)
	return &s
}
