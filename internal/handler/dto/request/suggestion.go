package request

import (
	"staymarket/internal/usecase/commands"

	"github.com/google/uuid"
)

type CreateSuggestionRequest struct {
	WindowStart    string  `json:"window_start" binding:"required"`
	WindowEnd      string  `json:"window_end" binding:"required"`
	SuggestedPrice float64 `json:"suggested_price" binding:"required"`
	Confidence     float64 `json:"confidence"`
}

func (r CreateSuggestionRequest) ToParams(propertyID uuid.UUID) (commands.CreateSuggestionParams, error) {
	start, end, err := ParseStayDates(r.WindowStart, r.WindowEnd)
	if err != nil {
		return commands.CreateSuggestionParams{}, err
	}
	return commands.CreateSuggestionParams{
		PropertyID:     propertyID,
		WindowStart:    start,
		WindowEnd:      end,
		SuggestedPrice: r.SuggestedPrice,
		Confidence:     r.Confidence,
	}, nil
}
