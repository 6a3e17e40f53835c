//go:build unit

package pricing_test

import (
	"log/slog"
	"testing"
	"time"

	"staymarket/internal/domain/pricing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	// 2026-07-11 is a Saturday.
	julySaturday = time.Date(2026, 7, 11, 0, 0, 0, 0, time.UTC)
	today        = time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)
)

func newRule(t *testing.T, mutate func(*pricing.RuleSpec)) *pricing.Rule {
	t.Helper()
	spec := pricing.RuleSpec{
		Kind:            pricing.KindSeasonal,
		AdjustmentKind:  pricing.AdjustPercentage,
		AdjustmentValue: 10,
		Priority:        1,
	}
	if mutate != nil {
		mutate(&spec)
	}
	rule, err := pricing.NewRule(spec)
	require.NoError(t, err)
	return rule
}

func datePtr(y int, m time.Month, d int) *time.Time {
	t := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return &t
}

func TestEngine_NightlyPrice(t *testing.T) {
	engine := pricing.NewEngine(slog.Default())

	t.Run("no rules returns rounded base price", func(t *testing.T) {
		got := engine.NightlyPrice(100.004, julySaturday, today, nil)
		assert.InDelta(t, 100.00, got, 1e-9)
	})

	t.Run("seasonal then weekend rule compound in priority order", func(t *testing.T) {
		seasonal := newRule(t, func(s *pricing.RuleSpec) {
			s.Kind = pricing.KindSeasonal
			s.AdjustmentKind = pricing.AdjustPercentage
			s.AdjustmentValue = 20
			s.StartDate = datePtr(2026, 6, 1)
			s.EndDate = datePtr(2026, 8, 31)
			s.Priority = 1
		})
		weekend := newRule(t, func(s *pricing.RuleSpec) {
			s.Kind = pricing.KindWeekend
			s.AdjustmentKind = pricing.AdjustFixed
			s.AdjustmentValue = 15
			s.DaysOfWeek = []int{5, 6}
			s.Priority = 2
		})

		got := engine.NightlyPrice(100.00, julySaturday, today, []*pricing.Rule{seasonal, weekend})
		assert.InDelta(t, 135.00, got, 1e-9)

		// Deterministic for any input order.
		reversed := engine.NightlyPrice(100.00, julySaturday, today, []*pricing.Rule{weekend, seasonal})
		assert.InDelta(t, got, reversed, 1e-9)
	})

	t.Run("lower priority feeds into higher priority percentage", func(t *testing.T) {
		fixed := newRule(t, func(s *pricing.RuleSpec) {
			s.AdjustmentKind = pricing.AdjustFixed
			s.AdjustmentValue = 10
			s.Priority = 1
		})
		percent := newRule(t, func(s *pricing.RuleSpec) {
			s.AdjustmentKind = pricing.AdjustPercentage
			s.AdjustmentValue = 20
			s.Priority = 2
		})

		// (100 + 10) * 1.20, not 100*1.20 + 10.
		got := engine.NightlyPrice(100.00, julySaturday, today, []*pricing.Rule{percent, fixed})
		assert.InDelta(t, 132.00, got, 1e-9)
	})

	t.Run("inactive rule contributes nothing", func(t *testing.T) {
		rule := newRule(t, func(s *pricing.RuleSpec) {
			s.AdjustmentKind = pricing.AdjustFixed
			s.AdjustmentValue = 50
		}).Deactivate()

		got := engine.NightlyPrice(80.00, julySaturday, today, []*pricing.Rule{rule})
		assert.InDelta(t, 80.00, got, 1e-9)
	})

	t.Run("date outside rule window contributes nothing", func(t *testing.T) {
		rule := newRule(t, func(s *pricing.RuleSpec) {
			s.StartDate = datePtr(2026, 12, 1)
			s.EndDate = datePtr(2026, 12, 31)
			s.AdjustmentKind = pricing.AdjustFixed
			s.AdjustmentValue = 50
		})

		got := engine.NightlyPrice(80.00, julySaturday, today, []*pricing.Rule{rule})
		assert.InDelta(t, 80.00, got, 1e-9)
	})

	t.Run("day-of-week mismatch contributes nothing", func(t *testing.T) {
		monTue := newRule(t, func(s *pricing.RuleSpec) {
			s.DaysOfWeek = []int{1, 2}
			s.AdjustmentKind = pricing.AdjustFixed
			s.AdjustmentValue = 50
		})

		got := engine.NightlyPrice(80.00, julySaturday, today, []*pricing.Rule{monTue})
		assert.InDelta(t, 80.00, got, 1e-9)
	})

	t.Run("negative result clamps to zero", func(t *testing.T) {
		rule := newRule(t, func(s *pricing.RuleSpec) {
			s.AdjustmentKind = pricing.AdjustFixed
			s.AdjustmentValue = -500
		})

		got := engine.NightlyPrice(100.00, julySaturday, today, []*pricing.Rule{rule})
		assert.Zero(t, got)
	})

	t.Run("rounding happens once at the end of the chain", func(t *testing.T) {
		// 100 * 1.333 = 133.33 only if intermediates keep full precision.
		a := newRule(t, func(s *pricing.RuleSpec) {
			s.AdjustmentKind = pricing.AdjustPercentage
			s.AdjustmentValue = 11.1
			s.Priority = 1
		})
		b := newRule(t, func(s *pricing.RuleSpec) {
			s.AdjustmentKind = pricing.AdjustPercentage
			s.AdjustmentValue = 19.98198198198198
			s.Priority = 2
		})

		got := engine.NightlyPrice(100.00, julySaturday, today, []*pricing.Rule{a, b})
		assert.InDelta(t, 133.30, got, 0.005)
	})

	t.Run("equal priority resolves by creation sequence", func(t *testing.T) {
		first := newRule(t, func(s *pricing.RuleSpec) {
			s.AdjustmentKind = pricing.AdjustFixed
			s.AdjustmentValue = 10
			s.Priority = 3
		})
		second := newRule(t, func(s *pricing.RuleSpec) {
			s.AdjustmentKind = pricing.AdjustPercentage
			s.AdjustmentValue = 50
			s.Priority = 3
		})
		first = pricing.ReconstructRule(first.ID(), pricing.RuleSpec{
			Kind: first.Kind(), AdjustmentKind: pricing.AdjustFixed, AdjustmentValue: 10, Priority: 3,
		}, 1, true)
		second = pricing.ReconstructRule(second.ID(), pricing.RuleSpec{
			Kind: second.Kind(), AdjustmentKind: pricing.AdjustPercentage, AdjustmentValue: 50, Priority: 3,
		}, 2, true)

		// (100 + 10) * 1.5 regardless of slice order.
		forward := engine.NightlyPrice(100.00, julySaturday, today, []*pricing.Rule{first, second})
		backward := engine.NightlyPrice(100.00, julySaturday, today, []*pricing.Rule{second, first})
		assert.InDelta(t, 165.00, forward, 1e-9)
		assert.InDelta(t, forward, backward, 1e-9)
	})
}

func TestEngine_AdvanceBookingGates(t *testing.T) {
	engine := pricing.NewEngine(slog.Default())

	lastMinute := func(days int) *pricing.Rule {
		return newRule(t, func(s *pricing.RuleSpec) {
			s.Kind = pricing.KindLastMinute
			s.LastMinuteDays = &days
			s.AdjustmentKind = pricing.AdjustPercentage
			s.AdjustmentValue = -30
		})
	}
	earlyBird := func(days int) *pricing.Rule {
		return newRule(t, func(s *pricing.RuleSpec) {
			s.Kind = pricing.KindEarlyBird
			s.AdvanceDays = &days
			s.AdjustmentKind = pricing.AdjustPercentage
			s.AdjustmentValue = -10
		})
	}

	t.Run("last minute applies inside threshold", func(t *testing.T) {
		date := today.AddDate(0, 0, 2)
		got := engine.NightlyPrice(100.00, date, today, []*pricing.Rule{lastMinute(3)})
		assert.InDelta(t, 70.00, got, 1e-9)
	})

	t.Run("last minute skipped outside threshold", func(t *testing.T) {
		date := today.AddDate(0, 0, 10)
		got := engine.NightlyPrice(100.00, date, today, []*pricing.Rule{lastMinute(3)})
		assert.InDelta(t, 100.00, got, 1e-9)
	})

	t.Run("early bird applies at or beyond threshold", func(t *testing.T) {
		date := today.AddDate(0, 0, 60)
		got := engine.NightlyPrice(100.00, date, today, []*pricing.Rule{earlyBird(60)})
		assert.InDelta(t, 90.00, got, 1e-9)
	})

	t.Run("early bird skipped inside threshold", func(t *testing.T) {
		date := today.AddDate(0, 0, 10)
		got := engine.NightlyPrice(100.00, date, today, []*pricing.Rule{earlyBird(60)})
		assert.InDelta(t, 100.00, got, 1e-9)
	})
}

func TestEngine_QuoteStay(t *testing.T) {
	engine := pricing.NewEngine(slog.Default())

	weekend := newRule(t, func(s *pricing.RuleSpec) {
		s.Kind = pricing.KindWeekend
		s.DaysOfWeek = []int{5, 6}
		s.AdjustmentKind = pricing.AdjustFixed
		s.AdjustmentValue = 20
	})

	// Thu 2026-07-09 .. Sun 2026-07-12: Thu, Fri, Sat nights.
	checkIn := time.Date(2026, 7, 9, 0, 0, 0, 0, time.UTC)
	checkOut := time.Date(2026, 7, 12, 0, 0, 0, 0, time.UTC)

	q := engine.QuoteStay(100.00, checkIn, checkOut, today, []*pricing.Rule{weekend})
	require.Len(t, q.Nights, 3)

	gotPrices := make([]float64, len(q.Nights))
	for i, n := range q.Nights {
		gotPrices[i] = n.Price
	}
	if diff := cmp.Diff([]float64{100.00, 120.00, 120.00}, gotPrices, cmpopts.EquateApprox(0, 1e-9)); diff != "" {
		t.Errorf("nightly prices mismatch (-want +got):\n%s", diff)
	}
	assert.InDelta(t, 340.00, q.Total, 1e-9)
	assert.InDelta(t, 113.33, q.Average, 1e-9)
}

func TestRule_AppliesToBooking(t *testing.T) {
	min2, max7 := 2, 7
	minVal, maxVal := 200.0, 2000.0

	rule := newRule(t, func(s *pricing.RuleSpec) {
		s.Kind = pricing.KindMinimumStay
		s.MinNights = &min2
		s.MaxNights = &max7
		s.MinBookingValue = &minVal
		s.MaxBookingValue = &maxVal
	})

	cases := []struct {
		name   string
		total  float64
		nights int
		want   bool
	}{
		{"all gates pass", 500, 3, true},
		{"too few nights", 500, 1, false},
		{"too many nights", 500, 8, false},
		{"value below minimum", 100, 3, false},
		{"value above maximum", 3000, 3, false},
		{"boundaries are inclusive", 200, 2, true},
		{"upper boundaries are inclusive", 2000, 7, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, rule.AppliesToBooking(tc.total, tc.nights))
		})
	}

	t.Run("unset gates do not constrain", func(t *testing.T) {
		open := newRule(t, nil)
		assert.True(t, open.AppliesToBooking(1, 1))
	})
}
