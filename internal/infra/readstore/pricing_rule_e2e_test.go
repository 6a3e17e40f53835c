//go:build e2e

package readstore_test

import (
	"context"
	"testing"

	"staymarket/internal/infra/readstore"
	"staymarket/internal/infra/repository"
	"staymarket/tests/common/builder"
	"staymarket/tests/common/dbtest"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPricingRuleReadStore_Ordering(t *testing.T) {
	ctx := context.Background()
	pool := dbtest.NewTestPool(t)
	repo := repository.NewPricingRuleRepository()
	store := readstore.NewPricingRuleReadStore(pool)

	propertyID := dbtest.CreateTestProperty(t, pool, 100)

	// Created first with the higher priority; the sequence column still
	// records creation order.
	first := builder.NewPricingRuleBuilder().With(func(b *builder.PricingRuleBuilder) {
		b.PropertyID = propertyID
		b.Priority = 20
	}).BuildDomain()
	second := builder.NewPricingRuleBuilder().With(func(b *builder.PricingRuleBuilder) {
		b.PropertyID = propertyID
		b.Priority = 10
	}).BuildDomain()

	firstID, err := repo.Create(ctx, pool, first)
	require.NoError(t, err)
	secondID, err := repo.Create(ctx, pool, second)
	require.NoError(t, err)

	active, err := store.ActiveRulesByProperty(ctx, propertyID)
	require.NoError(t, err)
	require.Len(t, active, 2)
	assert.Equal(t, firstID, active[0].ID(), "active rules come back in creation order")
	assert.Equal(t, secondID, active[1].ID())

	views, err := store.FindViewsByProperty(ctx, propertyID)
	require.NoError(t, err)
	require.Len(t, views, 2)
	assert.Equal(t, secondID, views[0].ID, "rule views are sorted by priority")
	assert.Equal(t, firstID, views[1].ID)
}

func TestPricingRuleReadStore_ExcludesInactive(t *testing.T) {
	ctx := context.Background()
	pool := dbtest.NewTestPool(t)
	repo := repository.NewPricingRuleRepository()
	store := readstore.NewPricingRuleReadStore(pool)

	propertyID := dbtest.CreateTestProperty(t, pool, 100)

	rule := builder.NewPricingRuleBuilder().With(func(b *builder.PricingRuleBuilder) {
		b.PropertyID = propertyID
	}).BuildDomain()
	ruleID, err := repo.Create(ctx, pool, rule)
	require.NoError(t, err)

	require.NoError(t, repo.SetActive(ctx, pool, ruleID, false))

	active, err := store.ActiveRulesByProperty(ctx, propertyID)
	require.NoError(t, err)
	assert.Empty(t, active)

	// The full view listing still shows the deactivated rule.
	views, err := store.FindViewsByProperty(ctx, propertyID)
	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.False(t, views[0].IsActive)
}

func TestSettingsLoader(t *testing.T) {
	ctx := context.Background()
	pool := dbtest.NewTestPool(t)
	loader := readstore.NewSettingsLoader(pool)

	dbtest.SetSetting(t, pool, "suggestions.expire_batch_size", "25")

	value, err := loader(ctx, "suggestions.expire_batch_size")
	require.NoError(t, err)
	assert.Equal(t, "25", value)

	// Missing keys come back empty so callers can layer defaults.
	value, err = loader(ctx, "does.not.exist."+uuid.NewString())
	require.NoError(t, err)
	assert.Empty(t, value)
}
