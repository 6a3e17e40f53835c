package queries

import (
	"context"
	"log/slog"

	"staymarket/internal/infra/cache"
	"staymarket/internal/pkg/config"
	"staymarket/internal/pkg/errs"

	"github.com/google/uuid"
)

type PropertyQueries interface {
	// GetDetail serves the property aggregate through the cache.
	GetDetail(ctx context.Context, id uuid.UUID) (*PropertyView, error)
}

type propertyQueriesImpl struct {
	repo     PropertyViewRepo
	cache    *cache.Service
	cacheCfg config.CacheConfig
	logger   *slog.Logger
}

func NewPropertyQueries(repo PropertyViewRepo, cacheSvc *cache.Service, cacheCfg config.CacheConfig, logger *slog.Logger) PropertyQueries {
	if logger == nil {
		logger = slog.Default()
	}
	return &propertyQueriesImpl{repo: repo, cache: cacheSvc, cacheCfg: cacheCfg, logger: logger}
}

func (q *propertyQueriesImpl) GetDetail(ctx context.Context, id uuid.UUID) (*PropertyView, error) {
	key := "property:detail:" + id.String()
	tags := []string{PropertyTag(id)}

	var view PropertyView
	err := q.cache.RememberAs(ctx, key, q.cacheCfg.PropertyTTL, tags, &view, func(ctx context.Context) (any, error) {
		return q.repo.FindByID(ctx, id)
	})
	if err == nil {
		return &view, nil
	}
	if errs.Is(err, cache.ErrLockTimeout) {
		q.logger.Warn("property cache lock timed out, reading store directly", "property_id", id)
		return q.repo.FindByID(ctx, id)
	}
	return nil, err
}
