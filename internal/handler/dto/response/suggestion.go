package response

import (
	"time"

	"staymarket/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type SuggestionResponse struct {
	ID             uuid.UUID  `json:"id"`
	PropertyID     uuid.UUID  `json:"propertyId"`
	WindowStart    string     `json:"windowStart"`
	WindowEnd      string     `json:"windowEnd"`
	CurrentPrice   float64    `json:"currentPrice"`
	SuggestedPrice float64    `json:"suggestedPrice"`
	Confidence     float64    `json:"confidence"`
	Status         string     `json:"status"`
	DecidedAt      *time.Time `json:"decidedAt,omitempty"`
	CreatedAt      time.Time  `json:"createdAt"`
}

func FromSuggestionView(v *queries.SuggestionView) *SuggestionResponse {
	var resp SuggestionResponse
	_ = copier.Copy(&resp, v)
	resp.WindowStart = v.WindowStart.Format(time.DateOnly)
	resp.WindowEnd = v.WindowEnd.Format(time.DateOnly)
	return &resp
}
