package repository

import (
	"context"
	"time"

	"staymarket/internal/domain/suggestion"
	"staymarket/internal/infra"
	"staymarket/internal/infra/db"
	"staymarket/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

type SuggestionRepository struct{}

func NewSuggestionRepository() *SuggestionRepository {
	return &SuggestionRepository{}
}

const createSuggestionSQL = `
INSERT INTO price_suggestions (
    id, property_id, window_start, window_end, current_price,
    suggested_price, confidence, status, created_at
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, now())
RETURNING id`

func (r *SuggestionRepository) Create(ctx context.Context, tx db.DBTX, s *suggestion.PriceSuggestion) (uuid.UUID, error) {
	var id uuid.UUID
	err := tx.QueryRow(ctx, createSuggestionSQL,
		s.ID(), s.PropertyID(),
		pgconv.DateToPgtype(s.WindowStart()), pgconv.DateToPgtype(s.WindowEnd()),
		s.CurrentPrice(), s.SuggestedPrice(), s.Confidence(), s.Status().String(),
	).Scan(&id)
	if err != nil {
		if pgconv.IsForeignKeyViolation(err) {
			return uuid.Nil, infra.WrapRepoErr("suggestion references missing property", err, infra.KindForeignKeyViolated)
		}
		return uuid.Nil, infra.WrapRepoErr("failed to create suggestion", err)
	}
	return id, nil
}

const suggestionColumns = `
    id, property_id, window_start, window_end, current_price,
    suggested_price, confidence, status, decided_at, created_at`

func (r *SuggestionRepository) FindByID(ctx context.Context, tx db.DBTX, id uuid.UUID) (*suggestion.PriceSuggestion, error) {
	row := tx.QueryRow(ctx, `SELECT`+suggestionColumns+` FROM price_suggestions WHERE id = $1`, id)
	s, err := scanSuggestion(row)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("suggestion not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find suggestion", err)
	}
	return s, nil
}

// ListDuePending rows are locked so concurrent expiry sweeps do not race a
// host's accept.
func (r *SuggestionRepository) ListDuePending(ctx context.Context, tx db.DBTX, now time.Time, limit int32) ([]*suggestion.PriceSuggestion, error) {
	rows, err := tx.Query(ctx,
		`SELECT`+suggestionColumns+`
         FROM price_suggestions
         WHERE status = 'pending' AND window_end <= $1
         ORDER BY window_end
         LIMIT $2
         FOR UPDATE SKIP LOCKED`,
		pgconv.DateToPgtype(now), limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list due suggestions", err)
	}
	defer rows.Close()

	var out []*suggestion.PriceSuggestion
	for rows.Next() {
		s, err := scanSuggestion(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan suggestion", err)
		}
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read suggestions", err)
	}
	return out, nil
}

// ApplyDecision moves a pending suggestion into a terminal status. The status
// guard in the predicate makes a lost race visible as KindConflict.
func (r *SuggestionRepository) ApplyDecision(ctx context.Context, tx db.DBTX, id uuid.UUID, d suggestion.Decision) error {
	tag, err := tx.Exec(ctx,
		`UPDATE price_suggestions
         SET status = $2, decided_at = $3
         WHERE id = $1 AND status = 'pending'`,
		id, d.Status.String(), pgconv.TimeToPgtype(d.DecidedAt))
	if err != nil {
		return infra.WrapRepoErr("failed to apply suggestion decision", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("suggestion already decided", nil, infra.KindConflict)
	}
	return nil
}

func scanSuggestion(row pgx.Row) (*suggestion.PriceSuggestion, error) {
	var (
		id, propertyID                           uuid.UUID
		windowStart, windowEnd                   pgtype.Date
		currentPrice, suggestedPrice, confidence float64
		status                                   string
		decidedAt                                pgtype.Timestamptz
		createdAt                                pgtype.Timestamptz
	)
	err := row.Scan(&id, &propertyID, &windowStart, &windowEnd,
		&currentPrice, &suggestedPrice, &confidence, &status, &decidedAt, &createdAt)
	if err != nil {
		return nil, err
	}

	return suggestion.ReconstructPriceSuggestion(
		id, propertyID,
		pgconv.DateFromPgtype(windowStart), pgconv.DateFromPgtype(windowEnd),
		currentPrice, suggestedPrice, confidence,
		suggestion.Status(status),
		pgconv.TimePtrFromPgtype(decidedAt),
		pgconv.TimeFromPgtype(createdAt),
	), nil
}
