package repository

import (
	"context"

	"staymarket/internal/domain/pricing"
	"staymarket/internal/infra"
	"staymarket/internal/infra/db"
	"staymarket/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

type PricingRuleRepository struct{}

func NewPricingRuleRepository() *PricingRuleRepository {
	return &PricingRuleRepository{}
}

const createRuleSQL = `
INSERT INTO pricing_rules (
    id, property_id, kind, start_date, end_date, days_of_week,
    adjustment_kind, adjustment_value, min_nights, max_nights,
    min_booking_value, max_booking_value, last_minute_days, advance_days,
    priority, is_active, created_at, updated_at
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, now(), now())
RETURNING id`

func (r *PricingRuleRepository) Create(ctx context.Context, tx db.DBTX, rule *pricing.Rule) (uuid.UUID, error) {
	days := make([]int32, 0, len(rule.DaysOfWeek()))
	for _, d := range rule.DaysOfWeek() {
		days = append(days, int32(d))
	}
	adjKind, adjValue := rule.Adjustment()

	var id uuid.UUID
	err := tx.QueryRow(ctx, createRuleSQL,
		rule.ID(), rule.PropertyID(), string(rule.Kind()),
		pgconv.DatePtrToPgtype(rule.StartDate()), pgconv.DatePtrToPgtype(rule.EndDate()),
		days,
		string(adjKind), adjValue,
		pgconv.IntPtrToPgtype(rule.MinNights()), pgconv.IntPtrToPgtype(rule.MaxNights()),
		pgconv.Float64PtrToPgtype(rule.MinBookingValue()), pgconv.Float64PtrToPgtype(rule.MaxBookingValue()),
		pgconv.IntPtrToPgtype(rule.LastMinuteDays()), pgconv.IntPtrToPgtype(rule.AdvanceDays()),
		rule.Priority(), rule.IsActive(),
	).Scan(&id)
	if err != nil {
		if pgconv.IsForeignKeyViolation(err) {
			return uuid.Nil, infra.WrapRepoErr("pricing rule references missing property", err, infra.KindForeignKeyViolated)
		}
		return uuid.Nil, infra.WrapRepoErr("failed to create pricing rule", err)
	}
	return id, nil
}

const ruleColumns = `
    id, property_id, kind, start_date, end_date, days_of_week,
    adjustment_kind, adjustment_value, min_nights, max_nights,
    min_booking_value, max_booking_value, last_minute_days, advance_days,
    priority, sequence, is_active`

func (r *PricingRuleRepository) FindByID(ctx context.Context, tx db.DBTX, id uuid.UUID) (*pricing.Rule, error) {
	row := tx.QueryRow(ctx, `SELECT`+ruleColumns+` FROM pricing_rules WHERE id = $1`, id)
	rule, err := ScanRule(row)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("pricing rule not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find pricing rule", err)
	}
	return rule, nil
}

func (r *PricingRuleRepository) SetActive(ctx context.Context, tx db.DBTX, id uuid.UUID, active bool) error {
	tag, err := tx.Exec(ctx,
		`UPDATE pricing_rules SET is_active = $2, updated_at = now() WHERE id = $1`,
		id, active)
	if err != nil {
		return infra.WrapRepoErr("failed to update pricing rule", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("pricing rule not found", nil, infra.KindNotFound)
	}
	return nil
}

// ActiveRulesByProperty returns rules ordered by creation so the engine's
// sequence tie-break is stable across reads.
func (r *PricingRuleRepository) ActiveRulesByProperty(ctx context.Context, tx db.DBTX, propertyID uuid.UUID) ([]*pricing.Rule, error) {
	rows, err := tx.Query(ctx,
		`SELECT`+ruleColumns+` FROM pricing_rules WHERE property_id = $1 AND is_active ORDER BY sequence`,
		propertyID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list pricing rules", err)
	}
	defer rows.Close()

	var rules []*pricing.Rule
	for rows.Next() {
		rule, err := ScanRule(rows)
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

// ScanRule rebuilds a domain rule from the ruleColumns projection. Readstore
// queries share it.
func ScanRule(row pgx.Row) (*pricing.Rule, error) {
	var (
		id, propertyID                   uuid.UUID
		kind, adjustmentKind             string
		startDate, endDate               pgtype.Date
		daysOfWeek                       []int32
		adjustmentValue                  float64
		minNights, maxNights             pgtype.Int4
		minBookingValue, maxBookingValue pgtype.Float8
		lastMinuteDays, advanceDays      pgtype.Int4
		priority                         int
		sequence                         int64
		active                           bool
	)
	err := row.Scan(&id, &propertyID, &kind, &startDate, &endDate, &daysOfWeek,
		&adjustmentKind, &adjustmentValue, &minNights, &maxNights,
		&minBookingValue, &maxBookingValue, &lastMinuteDays, &advanceDays,
		&priority, &sequence, &active)
	if err != nil {
		return nil, err
	}

	days := make([]int, 0, len(daysOfWeek))
	for _, d := range daysOfWeek {
		days = append(days, int(d))
	}

	spec := pricing.RuleSpec{
		PropertyID:      propertyID,
		Kind:            pricing.Kind(kind),
		StartDate:       pgconv.DatePtrFromPgtype(startDate),
		EndDate:         pgconv.DatePtrFromPgtype(endDate),
		DaysOfWeek:      days,
		AdjustmentKind:  pricing.AdjustmentKind(adjustmentKind),
		AdjustmentValue: adjustmentValue,
		MinNights:       pgconv.IntPtrFromPgtype(minNights),
		MaxNights:       pgconv.IntPtrFromPgtype(maxNights),
		MinBookingValue: pgconv.Float64PtrFromPgtype(minBookingValue),
		MaxBookingValue: pgconv.Float64PtrFromPgtype(maxBookingValue),
		LastMinuteDays:  pgconv.IntPtrFromPgtype(lastMinuteDays),
		AdvanceDays:     pgconv.IntPtrFromPgtype(advanceDays),
		Priority:        priority,
	}
	return pricing.ReconstructRule(id, spec, sequence, active), nil
}
