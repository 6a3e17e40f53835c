package queries

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"staymarket/internal/domain/booking"
	"staymarket/internal/domain/pricing"
	"staymarket/internal/infra/cache"
	"staymarket/internal/pkg/clock"
	"staymarket/internal/pkg/config"
	"staymarket/internal/pkg/errs"

	"github.com/google/uuid"
)

type PricingQueries interface {
	// Quote prices each night of the stay with the property's active rules.
	Quote(ctx context.Context, propertyID uuid.UUID, checkIn, checkOut time.Time) (*QuoteView, error)
	ListRules(ctx context.Context, propertyID uuid.UUID) ([]*PricingRuleView, error)
}

type PricingRuleViewRepo interface {
	ActiveRulesByProperty(ctx context.Context, propertyID uuid.UUID) ([]*pricing.Rule, error)
	FindViewsByProperty(ctx context.Context, propertyID uuid.UUID) ([]*PricingRuleView, error)
}

type PropertyViewRepo interface {
	FindByID(ctx context.Context, id uuid.UUID) (*PropertyView, error)
}

type pricingQueriesImpl struct {
	ruleRepo     PricingRuleViewRepo
	propertyRepo PropertyViewRepo
	engine       *pricing.Engine
	cache        *cache.Service
	cacheCfg     config.CacheConfig
	clock        clock.Clock
	logger       *slog.Logger
}

func NewPricingQueries(
	ruleRepo PricingRuleViewRepo,
	propertyRepo PropertyViewRepo,
	engine *pricing.Engine,
	cacheSvc *cache.Service,
	cacheCfg config.CacheConfig,
	clk clock.Clock,
	logger *slog.Logger,
) PricingQueries {
	if logger == nil {
		logger = slog.Default()
	}
	return &pricingQueriesImpl{
		ruleRepo:     ruleRepo,
		propertyRepo: propertyRepo,
		engine:       engine,
		cache:        cacheSvc,
		cacheCfg:     cacheCfg,
		clock:        clk,
		logger:       logger,
	}
}

func (q *pricingQueriesImpl) Quote(ctx context.Context, propertyID uuid.UUID, checkIn, checkOut time.Time) (*QuoteView, error) {
	stay, err := booking.NewStayRange(checkIn, checkOut)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrInvalidStayRange)
	}

	key := quoteCacheKey(propertyID, stay)
	tags := []string{PropertyTag(propertyID), PricingTag(propertyID)}

	var view QuoteView
	err = q.cache.RememberAs(ctx, key, q.cacheCfg.QuoteTTL, tags, &view, func(ctx context.Context) (any, error) {
		return q.computeQuote(ctx, propertyID, stay)
	})
	if err == nil {
		return &view, nil
	}
	if errs.Is(err, cache.ErrLockTimeout) {
		// Cache is an accelerator, never a dependency: compute directly.
		q.logger.Warn("quote cache lock timed out, computing uncached", "property_id", propertyID)
		uncached, computeErr := q.computeQuote(ctx, propertyID, stay)
		if computeErr != nil {
			return nil, computeErr
		}
		return uncached, nil
	}
	return nil, err
}

func (q *pricingQueriesImpl) computeQuote(ctx context.Context, propertyID uuid.UUID, stay booking.StayRange) (*QuoteView, error) {
	prop, err := q.propertyRepo.FindByID(ctx, propertyID)
	if err != nil {
		return nil, err
	}

	rules, err := q.ruleRepo.ActiveRulesByProperty(ctx, propertyID)
	if err != nil {
		return nil, err
	}

	today := q.clock.Now()
	quote := q.engine.QuoteStay(prop.BaseRate, stay.CheckIn(), stay.CheckOut(), today, rules)

	view := &QuoteView{
		PropertyID: propertyID,
		CheckIn:    stay.CheckIn(),
		CheckOut:   stay.CheckOut(),
		Total:      quote.Total,
		Average:    quote.Average,
	}
	for _, n := range quote.Nights {
		view.Nights = append(view.Nights, NightPriceView{Date: n.Date, Price: n.Price})
	}
	return view, nil
}

func (q *pricingQueriesImpl) ListRules(ctx context.Context, propertyID uuid.UUID) ([]*PricingRuleView, error) {
	return q.ruleRepo.FindViewsByProperty(ctx, propertyID)
}

func quoteCacheKey(propertyID uuid.UUID, stay booking.StayRange) string {
	return fmt.Sprintf("quote:%s:%s:%s",
		propertyID,
		stay.CheckIn().Format(time.DateOnly),
		stay.CheckOut().Format(time.DateOnly),
	)
}

// Cache tag naming shared by queries and the commands that invalidate them.
func PropertyTag(propertyID uuid.UUID) string {
	return "property:" + propertyID.String()
}

func PricingTag(propertyID uuid.UUID) string {
	return "pricing:" + propertyID.String()
}
