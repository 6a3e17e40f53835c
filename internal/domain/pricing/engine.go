package pricing

import (
	"log/slog"
	"math"
	"sort"
	"time"
)

// Engine folds a property's active pricing rules over a base nightly price.
// Rules apply lowest priority first, so a higher-priority percentage rule
// compounds on top of every adjustment before it. Ties resolve by sequence
// (creation order), then rule ID, which keeps the chain deterministic for
// any input order.
type Engine struct {
	logger *slog.Logger
}

func NewEngine(logger *slog.Logger) *Engine {
	if logger == nil {
		logger = slog.Default()
	}
	return &Engine{logger: logger}
}

// NightlyPrice computes the rate for one night. Intermediate arithmetic runs
// at full float precision; only the final result is rounded, half-up to two
// decimals, then clamped at zero. A rule carrying an unknown adjustment kind
// is skipped with a warning so a broken rule can never sink the quote.
func (e *Engine) NightlyPrice(basePrice float64, date, today time.Time, rules []*Rule) float64 {
	applicable := make([]*Rule, 0, len(rules))
	for _, r := range rules {
		if r.AppliesOn(date, today) {
			applicable = append(applicable, r)
		}
	}

	sort.SliceStable(applicable, func(i, j int) bool {
		a, b := applicable[i], applicable[j]
		if a.priority != b.priority {
			return a.priority < b.priority
		}
		if a.sequence != b.sequence {
			return a.sequence < b.sequence
		}
		return a.id.String() < b.id.String()
	})

	price := basePrice
	for _, r := range applicable {
		kind, value := r.Adjustment()
		switch kind {
		case AdjustPercentage:
			price += price * (value / 100)
		case AdjustFixed:
			price += value
		default:
			e.logger.Warn("skipping pricing rule with unknown adjustment kind",
				"rule_id", r.ID(), "adjustment_kind", string(kind))
		}
	}

	if price < 0 {
		price = 0
	}
	return roundHalfUp(price)
}

// Quote prices every night of a stay and totals the rounded nightly rates.
type Quote struct {
	Nights  []NightPrice
	Total   float64
	Average float64
}

type NightPrice struct {
	Date  time.Time
	Price float64
}

func (e *Engine) QuoteStay(basePrice float64, checkIn, checkOut, today time.Time, rules []*Rule) Quote {
	var q Quote
	for d := truncateToDay(checkIn); d.Before(truncateToDay(checkOut)); d = d.AddDate(0, 0, 1) {
		p := e.NightlyPrice(basePrice, d, today, rules)
		q.Nights = append(q.Nights, NightPrice{Date: d, Price: p})
		q.Total += p
	}
	q.Total = roundHalfUp(q.Total)
	if n := len(q.Nights); n > 0 {
		q.Average = roundHalfUp(q.Total / float64(n))
	}
	return q
}

// roundHalfUp rounds to two decimals. Inputs are clamped non-negative before
// rounding, so half-away-from-zero equals half-up here.
func roundHalfUp(v float64) float64 {
	return math.Floor(v*100+0.5) / 100
}
