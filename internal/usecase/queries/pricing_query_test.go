//go:build unit

package queries_test

import (
	"context"
	"testing"
	"time"

	"staymarket/internal/domain/pricing"
	"staymarket/internal/infra/cache"
	"staymarket/internal/pkg/clock"
	"staymarket/internal/pkg/config"
	"staymarket/internal/pkg/errs"
	"staymarket/internal/usecase/queries"
	"staymarket/tests/common/builder"
	queriesmock "staymarket/tests/mock/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestCache() (*cache.Service, config.CacheConfig) {
	svc := cache.NewService(cache.NewMemoryDriver(), cache.Options{
		LockTTL:     time.Second,
		LockRetries: 3,
		LockBackoff: time.Millisecond,
	}, nil)
	cfg := config.CacheConfig{
		PropertyTTL: time.Minute,
		QuoteTTL:    time.Minute,
	}
	return svc, cfg
}

func TestPricingQueries_Quote(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	propertyID := uuid.New()
	prop := builder.NewPropertyBuilder().With(func(b *builder.PropertyBuilder) {
		b.ID = propertyID
		b.BaseRate = 120.0
	}).BuildView()

	// +25% on Friday and Saturday nights
	weekendRule := builder.NewPricingRuleBuilder().With(func(b *builder.PricingRuleBuilder) {
		b.PropertyID = propertyID
	}).BuildDomain()

	ruleRepo := queriesmock.NewMockPricingRuleViewRepo(ctrl)
	propertyRepo := queriesmock.NewMockPropertyViewRepo(ctrl)
	cacheSvc, cacheCfg := newTestCache()
	clk := clock.NewMockClock(time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC))

	q := queries.NewPricingQueries(ruleRepo, propertyRepo, pricing.NewEngine(nil), cacheSvc, cacheCfg, clk, nil)

	// 2026-06-12 is a Friday; the two nights of the stay both hit the rule.
	checkIn := time.Date(2026, time.June, 12, 0, 0, 0, 0, time.UTC)
	checkOut := checkIn.AddDate(0, 0, 2)

	propertyRepo.EXPECT().FindByID(gomock.Any(), propertyID).Return(prop, nil).Times(1)
	ruleRepo.EXPECT().ActiveRulesByProperty(gomock.Any(), propertyID).
		Return([]*pricing.Rule{weekendRule}, nil).Times(1)

	view, err := q.Quote(ctx, propertyID, checkIn, checkOut)
	require.NoError(t, err)
	require.Len(t, view.Nights, 2)
	assert.Equal(t, 150.0, view.Nights[0].Price)
	assert.Equal(t, 150.0, view.Nights[1].Price)
	assert.Equal(t, 300.0, view.Total)
	assert.Equal(t, 150.0, view.Average)

	// Second identical request is served from the cache; the Times(1)
	// expectations above fail the test if the repos are hit again.
	cached, err := q.Quote(ctx, propertyID, checkIn, checkOut)
	require.NoError(t, err)
	assert.Equal(t, view.Total, cached.Total)
	assert.Len(t, cached.Nights, 2)
}

func TestPricingQueries_Quote_InvalidRange(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ruleRepo := queriesmock.NewMockPricingRuleViewRepo(ctrl)
	propertyRepo := queriesmock.NewMockPropertyViewRepo(ctrl)
	cacheSvc, cacheCfg := newTestCache()
	clk := clock.NewMockClock(time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC))

	q := queries.NewPricingQueries(ruleRepo, propertyRepo, pricing.NewEngine(nil), cacheSvc, cacheCfg, clk, nil)

	checkIn := time.Date(2026, time.June, 12, 0, 0, 0, 0, time.UTC)
	_, err := q.Quote(ctx, uuid.New(), checkIn, checkIn)
	require.Error(t, err)
	assert.True(t, errs.Is(err, errs.ErrInvalidStayRange))
}

func TestPricingQueries_QuoteInvalidatedByPricingTag(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	propertyID := uuid.New()
	prop := builder.NewPropertyBuilder().With(func(b *builder.PropertyBuilder) {
		b.ID = propertyID
	}).BuildView()

	ruleRepo := queriesmock.NewMockPricingRuleViewRepo(ctrl)
	propertyRepo := queriesmock.NewMockPropertyViewRepo(ctrl)
	cacheSvc, cacheCfg := newTestCache()
	clk := clock.NewMockClock(time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC))

	q := queries.NewPricingQueries(ruleRepo, propertyRepo, pricing.NewEngine(nil), cacheSvc, cacheCfg, clk, nil)

	checkIn := time.Date(2026, time.June, 15, 0, 0, 0, 0, time.UTC)
	checkOut := checkIn.AddDate(0, 0, 1)

	// Expect two full computations: one before and one after invalidation.
	propertyRepo.EXPECT().FindByID(gomock.Any(), propertyID).Return(prop, nil).Times(2)
	ruleRepo.EXPECT().ActiveRulesByProperty(gomock.Any(), propertyID).
		Return(nil, nil).Times(2)

	_, err := q.Quote(ctx, propertyID, checkIn, checkOut)
	require.NoError(t, err)

	// Rule changes drop every quote for the property through the pricing tag.
	require.NoError(t, cacheSvc.InvalidateByTags(ctx, queries.PricingTag(propertyID)))

	_, err = q.Quote(ctx, propertyID, checkIn, checkOut)
	require.NoError(t, err)
}

func TestPropertyQueries_GetDetail(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	view := builder.NewPropertyBuilder().BuildView()

	repo := queriesmock.NewMockPropertyViewRepo(ctrl)
	cacheSvc, cacheCfg := newTestCache()
	q := queries.NewPropertyQueries(repo, cacheSvc, cacheCfg, nil)

	repo.EXPECT().FindByID(gomock.Any(), view.ID).Return(view, nil).Times(1)

	got, err := q.GetDetail(ctx, view.ID)
	require.NoError(t, err)
	assert.Equal(t, view.ID, got.ID)
	assert.Equal(t, view.BaseRate, got.BaseRate)

	// Cached on the second read.
	cached, err := q.GetDetail(ctx, view.ID)
	require.NoError(t, err)
	assert.Equal(t, view.Name, cached.Name)

	// The property tag drops the detail view, forcing a reload.
	repo.EXPECT().FindByID(gomock.Any(), view.ID).Return(view, nil).Times(1)
	require.NoError(t, cacheSvc.InvalidateByTags(ctx, queries.PropertyTag(view.ID)))

	_, err = q.GetDetail(ctx, view.ID)
	require.NoError(t, err)
}
