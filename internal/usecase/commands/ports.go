package commands

import (
	"context"
	"time"

	"staymarket/internal/domain/booking"
	"staymarket/internal/domain/pricing"
	"staymarket/internal/domain/property"
	"staymarket/internal/domain/suggestion"
	"staymarket/internal/infra/db"

	"github.com/google/uuid"
)

// Write-side ports. Implementations run against any db.DBTX so commands can
// compose them inside a single transaction.

type BookingRepository interface {
	Create(ctx context.Context, tx db.DBTX, b *booking.Booking) (uuid.UUID, error)
	FindByID(ctx context.Context, tx db.DBTX, id uuid.UUID) (*booking.Booking, error)
	UpdateStatus(ctx context.Context, tx db.DBTX, id uuid.UUID, status booking.Status) error
	// HasBlockingOverlap must be evaluated under LockProperty when paired
	// with an insert, or two writers can both see a free range.
	HasBlockingOverlap(ctx context.Context, tx db.DBTX, propertyID uuid.UUID, stay booking.StayRange) (bool, error)
	// LockProperty takes a transaction-scoped advisory lock serializing all
	// booking writes for one property.
	LockProperty(ctx context.Context, tx db.DBTX, propertyID uuid.UUID) error
}

type PropertyRepository interface {
	Create(ctx context.Context, tx db.DBTX, p *property.Property) (uuid.UUID, error)
	FindByID(ctx context.Context, tx db.DBTX, id uuid.UUID) (*property.Property, error)
	UpdateBaseRate(ctx context.Context, tx db.DBTX, id uuid.UUID, rate float64) error
}

type PricingRuleRepository interface {
	Create(ctx context.Context, tx db.DBTX, rule *pricing.Rule) (uuid.UUID, error)
	FindByID(ctx context.Context, tx db.DBTX, id uuid.UUID) (*pricing.Rule, error)
	SetActive(ctx context.Context, tx db.DBTX, id uuid.UUID, active bool) error
	ActiveRulesByProperty(ctx context.Context, tx db.DBTX, propertyID uuid.UUID) ([]*pricing.Rule, error)
}

type SuggestionRepository interface {
	Create(ctx context.Context, tx db.DBTX, s *suggestion.PriceSuggestion) (uuid.UUID, error)
	FindByID(ctx context.Context, tx db.DBTX, id uuid.UUID) (*suggestion.PriceSuggestion, error)
	ListDuePending(ctx context.Context, tx db.DBTX, now time.Time, limit int32) ([]*suggestion.PriceSuggestion, error)
	ApplyDecision(ctx context.Context, tx db.DBTX, id uuid.UUID, d suggestion.Decision) error
}

// CacheInvalidator is the slice of the cache service commands need.
type CacheInvalidator interface {
	InvalidateByTags(ctx context.Context, tags ...string) error
}
