package readstore

import (
	"context"

	"staymarket/internal/infra"
	"staymarket/internal/pkg/pgconv"
	"staymarket/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

type SuggestionReadStore struct {
	pool *pgxpool.Pool
}

func NewSuggestionReadStore(pool *pgxpool.Pool) queries.SuggestionViewRepo {
	return &SuggestionReadStore{pool: pool}
}

const suggestionViewsSQL = `
SELECT id, property_id, window_start, window_end, current_price,
       suggested_price, confidence, status, decided_at, created_at
FROM price_suggestions
WHERE property_id = $1 AND ($2 = false OR status = 'pending')
ORDER BY window_start DESC`

func (s *SuggestionReadStore) FindByProperty(ctx context.Context, propertyID uuid.UUID, onlyPending bool) ([]*queries.SuggestionView, error) {
	rows, err := s.pool.Query(ctx, suggestionViewsSQL, propertyID, onlyPending)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list suggestions", err)
	}
	defer rows.Close()

	var views []*queries.SuggestionView
	for rows.Next() {
		var (
			v                      queries.SuggestionView
			windowStart, windowEnd pgtype.Date
			decidedAt, createdAt   pgtype.Timestamptz
		)
		if err := rows.Scan(&v.ID, &v.PropertyID, &windowStart, &windowEnd,
			&v.CurrentPrice, &v.SuggestedPrice, &v.Confidence, &v.Status,
			&decidedAt, &createdAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan suggestion", err)
		}
		v.WindowStart = pgconv.DateFromPgtype(windowStart)
		v.WindowEnd = pgconv.DateFromPgtype(windowEnd)
		v.DecidedAt = pgconv.TimePtrFromPgtype(decidedAt)
		v.CreatedAt = pgconv.TimeFromPgtype(createdAt)
		views = append(views, &v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read suggestions", err)
	}
	return views, nil
}
