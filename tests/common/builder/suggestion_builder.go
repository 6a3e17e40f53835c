//go:build unit || e2e

package builder

import (
	"time"

	domsuggestion "staymarket/internal/domain/suggestion"
	reqdto "staymarket/internal/handler/dto/request"
	"staymarket/internal/usecase/queries"

	"github.com/google/uuid"
)

type SuggestionBuilder struct {
	ID             uuid.UUID
	PropertyID     uuid.UUID
	WindowStart    time.Time
	WindowEnd      time.Time
	CurrentPrice   float64
	SuggestedPrice float64
	Confidence     float64
	Status         string
	DecidedAt      *time.Time
	CreatedAt      time.Time
}

func NewSuggestionBuilder() *SuggestionBuilder {
	now := time.Now()
	windowStart := time.Date(now.Year()+1, time.July, 1, 0, 0, 0, 0, time.UTC)
	return &SuggestionBuilder{
		ID:             uuid.New(),
		PropertyID:     uuid.New(),
		WindowStart:    windowStart,
		WindowEnd:      windowStart.AddDate(0, 0, 14),
		CurrentPrice:   120.0,
		SuggestedPrice: 145.0,
		Confidence:     0.8,
		Status:         string(domsuggestion.StatusPending),
		CreatedAt:      now,
	}
}

func (b *SuggestionBuilder) With(mutate func(*SuggestionBuilder)) *SuggestionBuilder {
	mutate(b)
	return b
}

// Build methods
func (b *SuggestionBuilder) BuildDomain() *domsuggestion.PriceSuggestion {
	return domsuggestion.ReconstructPriceSuggestion(
		b.ID, b.PropertyID,
		b.WindowStart, b.WindowEnd,
		b.CurrentPrice, b.SuggestedPrice, b.Confidence,
		domsuggestion.Status(b.Status),
		b.DecidedAt, b.CreatedAt,
	)
}

func (b *SuggestionBuilder) BuildCreateRequestDTO() reqdto.CreateSuggestionRequest {
	return reqdto.CreateSuggestionRequest{
		WindowStart:    b.WindowStart.Format(time.DateOnly),
		WindowEnd:      b.WindowEnd.Format(time.DateOnly),
		SuggestedPrice: b.SuggestedPrice,
		Confidence:     b.Confidence,
	}
}

func (b *SuggestionBuilder) BuildView() *queries.SuggestionView {
	return &queries.SuggestionView{
		ID:             b.ID,
		PropertyID:     b.PropertyID,
		WindowStart:    b.WindowStart,
		WindowEnd:      b.WindowEnd,
		CurrentPrice:   b.CurrentPrice,
		SuggestedPrice: b.SuggestedPrice,
		Confidence:     b.Confidence,
		Status:         b.Status,
		DecidedAt:      b.DecidedAt,
		CreatedAt:      b.CreatedAt,
	}
}
