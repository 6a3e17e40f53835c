//go:build unit

package suggestion_test

import (
	"testing"
	"time"

	"staymarket/internal/domain/suggestion"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	windowStart = time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC)
	windowEnd   = time.Date(2026, 7, 31, 0, 0, 0, 0, time.UTC)
)

func pendingSuggestion(t *testing.T) *suggestion.PriceSuggestion {
	t.Helper()
	s, err := suggestion.NewPriceSuggestion(uuid.New(), windowStart, windowEnd, 100.00, 118.00, 0.82)
	require.NoError(t, err)
	return s
}

func TestNewPriceSuggestion(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		s := pendingSuggestion(t)
		assert.Equal(t, suggestion.StatusPending, s.Status())
		assert.True(t, s.IsPending())
	})

	t.Run("inverted window", func(t *testing.T) {
		_, err := suggestion.NewPriceSuggestion(uuid.New(), windowEnd, windowStart, 100, 118, 0.8)
		assert.ErrorIs(t, err, suggestion.ErrInvalidWindow)
	})

	t.Run("confidence out of range", func(t *testing.T) {
		_, err := suggestion.NewPriceSuggestion(uuid.New(), windowStart, windowEnd, 100, 118, 1.2)
		assert.ErrorIs(t, err, suggestion.ErrInvalidConfidence)
	})

	t.Run("negative suggested price", func(t *testing.T) {
		_, err := suggestion.NewPriceSuggestion(uuid.New(), windowStart, windowEnd, 100, -1, 0.8)
		assert.ErrorIs(t, err, suggestion.ErrNegativePrice)
	})
}

func TestPriceSuggestion_Decisions(t *testing.T) {
	now := time.Date(2026, 6, 15, 12, 0, 0, 0, time.UTC)

	t.Run("accept yields the suggested rate", func(t *testing.T) {
		s := pendingSuggestion(t)
		d, err := s.Accept(now)
		require.NoError(t, err)
		assert.Equal(t, suggestion.StatusAccepted, d.Status)
		assert.InDelta(t, 118.00, d.NewRate, 1e-9)
		// The entity itself stays untouched; persistence happens at the boundary.
		assert.True(t, s.IsPending())
	})

	t.Run("reject carries no rate", func(t *testing.T) {
		s := pendingSuggestion(t)
		d, err := s.Reject(now)
		require.NoError(t, err)
		assert.Equal(t, suggestion.StatusRejected, d.Status)
		assert.Zero(t, d.NewRate)
	})

	t.Run("decided suggestions cannot be decided again", func(t *testing.T) {
		s := suggestion.ReconstructPriceSuggestion(
			uuid.New(), uuid.New(), windowStart, windowEnd,
			100, 118, 0.8, suggestion.StatusAccepted, &now, now,
		)
		_, err := s.Accept(now)
		assert.ErrorIs(t, err, suggestion.ErrNotPending)
		_, err = s.Reject(now)
		assert.ErrorIs(t, err, suggestion.ErrNotPending)
	})

	t.Run("expire requires a closed window", func(t *testing.T) {
		s := pendingSuggestion(t)
		_, err := s.Expire(now)
		assert.ErrorIs(t, err, suggestion.ErrNotPending)

		d, err := s.Expire(windowEnd.AddDate(0, 0, 1))
		require.NoError(t, err)
		assert.Equal(t, suggestion.StatusExpired, d.Status)
	})
}
