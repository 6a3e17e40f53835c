package readstore

import (
	"context"

	"staymarket/internal/domain/pricing"
	"staymarket/internal/infra"
	"staymarket/internal/infra/repository"
	"staymarket/internal/pkg/pgconv"
	"staymarket/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PricingRuleReadStore struct {
	pool *pgxpool.Pool
}

func NewPricingRuleReadStore(pool *pgxpool.Pool) queries.PricingRuleViewRepo {
	return &PricingRuleReadStore{pool: pool}
}

const activeRulesSQL = `
SELECT id, property_id, kind, start_date, end_date, days_of_week,
       adjustment_kind, adjustment_value, min_nights, max_nights,
       min_booking_value, max_booking_value, last_minute_days, advance_days,
       priority, sequence, is_active
FROM pricing_rules
WHERE property_id = $1 AND is_active
ORDER BY sequence`

// ActiveRulesByProperty hydrates domain rules for the pricing engine. Order
// follows insertion so equal-priority ties resolve the same way every read.
func (s *PricingRuleReadStore) ActiveRulesByProperty(ctx context.Context, propertyID uuid.UUID) ([]*pricing.Rule, error) {
	rows, err := s.pool.Query(ctx, activeRulesSQL, propertyID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list active pricing rules", err)
	}
	defer rows.Close()

	var rules []*pricing.Rule
	for rows.Next() {
		rule, err := repository.ScanRule(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan pricing rule", err)
		}
		rules = append(rules, rule)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read pricing rules", err)
	}
	return rules, nil
}

const ruleViewsSQL = `
SELECT id, property_id, kind, start_date, end_date, days_of_week,
       adjustment_kind, adjustment_value, min_nights, max_nights,
       priority, is_active, created_at
FROM pricing_rules
WHERE property_id = $1
ORDER BY priority, sequence`

func (s *PricingRuleReadStore) FindViewsByProperty(ctx context.Context, propertyID uuid.UUID) ([]*queries.PricingRuleView, error) {
	rows, err := s.pool.Query(ctx, ruleViewsSQL, propertyID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list pricing rules", err)
	}
	defer rows.Close()

	var views []*queries.PricingRuleView
	for rows.Next() {
		var (
			v                    queries.PricingRuleView
			startDate, endDate   pgtype.Date
			daysOfWeek           []int32
			minNights, maxNights pgtype.Int4
			createdAt            pgtype.Timestamptz
		)
		if err := rows.Scan(&v.ID, &v.PropertyID, &v.Kind, &startDate, &endDate,
			&daysOfWeek, &v.AdjustmentKind, &v.AdjustmentValue,
			&minNights, &maxNights, &v.Priority, &v.IsActive, &createdAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan pricing rule view", err)
		}
		v.StartDate = pgconv.DatePtrFromPgtype(startDate)
		v.EndDate = pgconv.DatePtrFromPgtype(endDate)
		for _, d := range daysOfWeek {
			v.DaysOfWeek = append(v.DaysOfWeek, int(d))
		}
		v.MinNights = pgconv.IntPtrFromPgtype(minNights)
		v.MaxNights = pgconv.IntPtrFromPgtype(maxNights)
		v.CreatedAt = pgconv.TimeFromPgtype(createdAt)
		views = append(views, &v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read pricing rule views", err)
	}
	return views, nil
}
