package suggestion

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidConfidence = errors.New("confidence must be within [0,1]")
	ErrInvalidWindow     = errors.New("suggestion window end must be after start")
	ErrNegativePrice     = errors.New("suggested price cannot be negative")
	ErrNotPending        = errors.New("suggestion is no longer pending")
)

type Status string

const (
	StatusPending  Status = "pending"
	StatusAccepted Status = "accepted"
	StatusRejected Status = "rejected"
	StatusExpired  Status = "expired"
)

func (s Status) String() string {
	return string(s)
}

// PriceSuggestion is advisory output from an external forecasting process.
// It is never authoritative: accepting one yields a new base rate that the
// caller persists onto the property.
type PriceSuggestion struct {
	id             uuid.UUID
	propertyID     uuid.UUID
	windowStart    time.Time
	windowEnd      time.Time
	currentPrice   float64
	suggestedPrice float64
	confidence     float64
	status         Status
	decidedAt      *time.Time
	createdAt      time.Time
}

func NewPriceSuggestion(
	propertyID uuid.UUID,
	windowStart, windowEnd time.Time,
	currentPrice, suggestedPrice, confidence float64,
) (*PriceSuggestion, error) {
	if !windowEnd.After(windowStart) {
		return nil, ErrInvalidWindow
	}
	if suggestedPrice < 0 {
		return nil, ErrNegativePrice
	}
	if confidence < 0 || confidence > 1 {
		return nil, ErrInvalidConfidence
	}

	return &PriceSuggestion{
		id:             uuid.New(),
		propertyID:     propertyID,
		windowStart:    windowStart,
		windowEnd:      windowEnd,
		currentPrice:   currentPrice,
		suggestedPrice: suggestedPrice,
		confidence:     confidence,
		status:         StatusPending,
	}, nil
}

func ReconstructPriceSuggestion(
	id, propertyID uuid.UUID,
	windowStart, windowEnd time.Time,
	currentPrice, suggestedPrice, confidence float64,
	status Status,
	decidedAt *time.Time,
	createdAt time.Time,
) *PriceSuggestion {
	return &PriceSuggestion{
		id:             id,
		propertyID:     propertyID,
		windowStart:    windowStart,
		windowEnd:      windowEnd,
		currentPrice:   currentPrice,
		suggestedPrice: suggestedPrice,
		confidence:     confidence,
		status:         status,
		decidedAt:      decidedAt,
		createdAt:      createdAt,
	}
}

// Decision is the state a suggestion transitions into plus the base rate the
// owning property should adopt (zero unless accepted).
type Decision struct {
	Status    Status
	NewRate   float64
	DecidedAt time.Time
}

func (s *PriceSuggestion) Accept(now time.Time) (Decision, error) {
	if s.status != StatusPending {
		return Decision{}, ErrNotPending
	}
	return Decision{Status: StatusAccepted, NewRate: s.suggestedPrice, DecidedAt: now}, nil
}

func (s *PriceSuggestion) Reject(now time.Time) (Decision, error) {
	if s.status != StatusPending {
		return Decision{}, ErrNotPending
	}
	return Decision{Status: StatusRejected, DecidedAt: now}, nil
}

// Expire is legal only for pending suggestions whose window has closed.
func (s *PriceSuggestion) Expire(now time.Time) (Decision, error) {
	if s.status != StatusPending {
		return Decision{}, ErrNotPending
	}
	if now.Before(s.windowEnd) {
		return Decision{}, ErrNotPending
	}
	return Decision{Status: StatusExpired, DecidedAt: now}, nil
}

func (s *PriceSuggestion) IsPending() bool {
	return s.status == StatusPending
}

func (s *PriceSuggestion) ID() uuid.UUID           { return s.id }
func (s *PriceSuggestion) PropertyID() uuid.UUID   { return s.propertyID }
func (s *PriceSuggestion) WindowStart() time.Time  { return s.windowStart }
func (s *PriceSuggestion) WindowEnd() time.Time    { return s.windowEnd }
func (s *PriceSuggestion) CurrentPrice() float64   { return s.currentPrice }
func (s *PriceSuggestion) SuggestedPrice() float64 { return s.suggestedPrice }
func (s *PriceSuggestion) Confidence() float64     { return s.confidence }
func (s *PriceSuggestion) Status() Status          { return s.status }
func (s *PriceSuggestion) DecidedAt() *time.Time   { return s.decidedAt }
func (s *PriceSuggestion) CreatedAt() time.Time    { return s.createdAt }
