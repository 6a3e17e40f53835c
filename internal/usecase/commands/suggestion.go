package commands

import (
	"context"
	"log/slog"
	"strconv"
	"time"

	"staymarket/internal/domain/suggestion"
	"staymarket/internal/infra/db"
	"staymarket/internal/infra/events"
	"staymarket/internal/pkg/clock"
	"staymarket/internal/pkg/errs"
	"staymarket/internal/pkg/settings"
	"staymarket/internal/usecase/queries"
	"staymarket/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	expireBatchSizeKey     = "suggestions.expire_batch_size"
	defaultExpireBatchSize = 100
)

type CreateSuggestionParams struct {
	PropertyID     uuid.UUID
	WindowStart    time.Time
	WindowEnd      time.Time
	SuggestedPrice float64
	Confidence     float64
}

type SuggestionCommands interface {
	// CreateSuggestion ingests a pending suggestion from the forecasting
	// pipeline, capturing the property's current rate for later comparison.
	CreateSuggestion(ctx context.Context, params CreateSuggestionParams) (uuid.UUID, error)
	// AcceptSuggestion applies the suggested rate as the property's new base
	// rate in the same transaction that records the decision.
	AcceptSuggestion(ctx context.Context, suggestionID uuid.UUID) error
	RejectSuggestion(ctx context.Context, suggestionID uuid.UUID) error
	// ExpireDueSuggestions bulk-expires pending suggestions whose window has
	// closed; returns how many were expired.
	ExpireDueSuggestions(ctx context.Context) (int, error)
}

type suggestionCommandsImpl struct {
	suggestionRepo SuggestionRepository
	propertyRepo   PropertyRepository
	pool           *pgxpool.Pool
	cache          CacheInvalidator
	publisher      events.Publisher
	clock          clock.Clock
	settings       settings.Store
	logger         *slog.Logger
}

func NewSuggestionCommands(
	suggestionRepo SuggestionRepository,
	propertyRepo PropertyRepository,
	pool *pgxpool.Pool,
	cacheSvc CacheInvalidator,
	publisher events.Publisher,
	clk clock.Clock,
	settingsStore settings.Store,
	logger *slog.Logger,
) SuggestionCommands {
	if logger == nil {
		logger = slog.Default()
	}
	return &suggestionCommandsImpl{
		suggestionRepo: suggestionRepo,
		propertyRepo:   propertyRepo,
		pool:           pool,
		cache:          cacheSvc,
		publisher:      publisher,
		clock:          clk,
		settings:       settingsStore,
		logger:         logger,
	}
}

func (c *suggestionCommandsImpl) CreateSuggestion(ctx context.Context, params CreateSuggestionParams) (uuid.UUID, error) {
	return shared.RunInTx(ctx, c.pool, func(tx db.DBTX) (uuid.UUID, error) {
		prop, err := c.propertyRepo.FindByID(ctx, tx, params.PropertyID)
		if err != nil {
			return uuid.Nil, markNotFound(err, errs.ErrPropertyNotFound)
		}

		s, err := suggestion.NewPriceSuggestion(
			prop.ID(),
			params.WindowStart, params.WindowEnd,
			prop.BaseRate(), params.SuggestedPrice, params.Confidence,
		)
		if err != nil {
			return uuid.Nil, errs.Mark(err, errs.ErrDomainValidation)
		}

		id, err := c.suggestionRepo.Create(ctx, tx, s)
		if err != nil {
			return uuid.Nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		return id, nil
	})
}

func (c *suggestionCommandsImpl) AcceptSuggestion(ctx context.Context, suggestionID uuid.UUID) error {
	type accepted struct {
		propertyID uuid.UUID
		newRate    float64
	}

	result, err := shared.RunInTx(ctx, c.pool, func(tx db.DBTX) (accepted, error) {
		s, err := c.suggestionRepo.FindByID(ctx, tx, suggestionID)
		if err != nil {
			return accepted{}, markNotFound(err, errs.ErrSuggestionNotFound)
		}

		decision, err := s.Accept(c.clock.Now())
		if err != nil {
			return accepted{}, errs.Mark(err, errs.ErrSuggestionDecided)
		}

		prop, err := c.propertyRepo.FindByID(ctx, tx, s.PropertyID())
		if err != nil {
			return accepted{}, markNotFound(err, errs.ErrPropertyNotFound)
		}
		newRate, err := prop.Reprice(decision.NewRate)
		if err != nil {
			return accepted{}, errs.Mark(err, errs.ErrDomainValidation)
		}

		if err := c.suggestionRepo.ApplyDecision(ctx, tx, suggestionID, decision); err != nil {
			return accepted{}, errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		if err := c.propertyRepo.UpdateBaseRate(ctx, tx, s.PropertyID(), newRate); err != nil {
			return accepted{}, errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		return accepted{propertyID: s.PropertyID(), newRate: newRate}, nil
	})
	if err != nil {
		return err
	}

	if err := c.cache.InvalidateByTags(ctx, queries.PropertyTag(result.propertyID), queries.PricingTag(result.propertyID)); err != nil {
		c.logger.Warn("failed to invalidate cache after repricing", "property_id", result.propertyID, "error", err)
	}
	event, err := events.New(events.TypePropertyRepriced, result.propertyID, map[string]any{
		"suggestion_id": suggestionID,
		"new_rate":      result.newRate,
	})
	if err == nil {
		if err := c.publisher.Publish(ctx, event); err != nil {
			c.logger.Warn("failed to publish event", "type", events.TypePropertyRepriced, "error", err)
		}
	}
	return nil
}

func (c *suggestionCommandsImpl) RejectSuggestion(ctx context.Context, suggestionID uuid.UUID) error {
	_, err := shared.RunInTx(ctx, c.pool, func(tx db.DBTX) (struct{}, error) {
		s, err := c.suggestionRepo.FindByID(ctx, tx, suggestionID)
		if err != nil {
			return struct{}{}, markNotFound(err, errs.ErrSuggestionNotFound)
		}

		decision, err := s.Reject(c.clock.Now())
		if err != nil {
			return struct{}{}, errs.Mark(err, errs.ErrSuggestionDecided)
		}
		if err := c.suggestionRepo.ApplyDecision(ctx, tx, suggestionID, decision); err != nil {
			return struct{}{}, errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		return struct{}{}, nil
	})
	return err
}

func (c *suggestionCommandsImpl) ExpireDueSuggestions(ctx context.Context) (int, error) {
	now := c.clock.Now()
	batch := c.expireBatchSize(ctx)

	return shared.RunInTx(ctx, c.pool, func(tx db.DBTX) (int, error) {
		due, err := c.suggestionRepo.ListDuePending(ctx, tx, now, batch)
		if err != nil {
			return 0, errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}

		expired := 0
		for _, s := range due {
			decision, err := s.Expire(now)
			if err != nil {
				// Raced with an operator decision; skip.
				continue
			}
			if err := c.suggestionRepo.ApplyDecision(ctx, tx, s.ID(), decision); err != nil {
				return 0, errs.Mark(err, errs.ErrDatabaseOperationFailed)
			}
			expired++
		}
		return expired, nil
	})
}

func (c *suggestionCommandsImpl) expireBatchSize(ctx context.Context) int32 {
	raw := c.settings.GetDefault(ctx, expireBatchSizeKey, "")
	if raw == "" {
		return defaultExpireBatchSize
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 {
		c.logger.Warn("ignoring malformed setting", "key", expireBatchSizeKey, "value", raw)
		return defaultExpireBatchSize
	}
	return int32(n)
}
