package commands

import (
	"context"
	"log/slog"
	"time"

	"staymarket/internal/domain/pricing"
	"staymarket/internal/infra/db"
	"staymarket/internal/infra/events"
	"staymarket/internal/pkg/errs"
	"staymarket/internal/usecase/queries"
	"staymarket/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type CreatePricingRuleParams struct {
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
}

type PricingRuleCommands interface {
	CreateRule(ctx context.Context, params CreatePricingRuleParams) (uuid.UUID, error)
	DeactivateRule(ctx context.Context, ruleID uuid.UUID) error
}

type pricingRuleCommandsImpl struct {
	ruleRepo     PricingRuleRepository
	propertyRepo PropertyRepository
	pool         *pgxpool.Pool
	cache        CacheInvalidator
	publisher    events.Publisher
	logger       *slog.Logger
}

func NewPricingRuleCommands(
	ruleRepo PricingRuleRepository,
	propertyRepo PropertyRepository,
	pool *pgxpool.Pool,
	cacheSvc CacheInvalidator,
	publisher events.Publisher,
	logger *slog.Logger,
) PricingRuleCommands {
	if logger == nil {
		logger = slog.Default()
	}
	return &pricingRuleCommandsImpl{
		ruleRepo:     ruleRepo,
		propertyRepo: propertyRepo,
		pool:         pool,
		cache:        cacheSvc,
		publisher:    publisher,
		logger:       logger,
	}
}

func (c *pricingRuleCommandsImpl) CreateRule(ctx context.Context, params CreatePricingRuleParams) (uuid.UUID, error) {
	rule, err := pricing.NewRule(pricing.RuleSpec{
		PropertyID:      params.PropertyID,
		Kind:            pricing.Kind(params.Kind),
		StartDate:       params.StartDate,
		EndDate:         params.EndDate,
		DaysOfWeek:      params.DaysOfWeek,
		AdjustmentKind:  pricing.AdjustmentKind(params.AdjustmentKind),
		AdjustmentValue: params.AdjustmentValue,
		MinNights:       params.MinNights,
		MaxNights:       params.MaxNights,
		MinBookingValue: params.MinBookingValue,
		MaxBookingValue: params.MaxBookingValue,
		LastMinuteDays:  params.LastMinuteDays,
		AdvanceDays:     params.AdvanceDays,
		Priority:        params.Priority,
	})
	if err != nil {
		return uuid.Nil, errs.Mark(err, errs.ErrInvalidPricingRule)
	}

	ruleID, err := shared.RunInTx(ctx, c.pool, func(tx db.DBTX) (uuid.UUID, error) {
		if _, err := c.propertyRepo.FindByID(ctx, tx, params.PropertyID); err != nil {
			return uuid.Nil, markNotFound(err, errs.ErrPropertyNotFound)
		}
		return c.ruleRepo.Create(ctx, tx, rule)
	})
	if err != nil {
		return uuid.Nil, err
	}

	c.afterRuleChange(ctx, params.PropertyID, ruleID)
	return ruleID, nil
}

func (c *pricingRuleCommandsImpl) DeactivateRule(ctx context.Context, ruleID uuid.UUID) error {
	propertyID, err := shared.RunInTx(ctx, c.pool, func(tx db.DBTX) (uuid.UUID, error) {
		rule, err := c.ruleRepo.FindByID(ctx, tx, ruleID)
		if err != nil {
			return uuid.Nil, markNotFound(err, errs.ErrPricingRuleNotFound)
		}
		if err := c.ruleRepo.SetActive(ctx, tx, ruleID, false); err != nil {
			return uuid.Nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		return rule.PropertyID(), nil
	})
	if err != nil {
		return err
	}

	c.afterRuleChange(ctx, propertyID, ruleID)
	return nil
}

// Quotes cached before a rule change are priced with stale rules; evict both
// pricing and property tags.
func (c *pricingRuleCommandsImpl) afterRuleChange(ctx context.Context, propertyID, ruleID uuid.UUID) {
	if err := c.cache.InvalidateByTags(ctx, queries.PricingTag(propertyID), queries.PropertyTag(propertyID)); err != nil {
		c.logger.Warn("failed to invalidate pricing cache", "property_id", propertyID, "error", err)
	}

	event, err := events.New(events.TypePricingRuleChanged, propertyID, map[string]any{"rule_id": ruleID})
	if err != nil {
		c.logger.Warn("failed to build event", "error", err)
		return
	}
	if err := c.publisher.Publish(ctx, event); err != nil {
		c.logger.Warn("failed to publish event", "type", events.TypePricingRuleChanged, "error", err)
	}
}
