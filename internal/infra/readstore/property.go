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

type PropertyReadStore struct {
	pool *pgxpool.Pool
}

func NewPropertyReadStore(pool *pgxpool.Pool) queries.PropertyViewRepo {
	return &PropertyReadStore{pool: pool}
}

const propertyViewSQL = `
SELECT id, host_id, name, base_rate, max_guests, min_nights, is_active,
       created_at, updated_at
FROM properties
WHERE id = $1`

func (s *PropertyReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.PropertyView, error) {
	var (
		v                    queries.PropertyView
		createdAt, updatedAt pgtype.Timestamptz
	)
	err := s.pool.QueryRow(ctx, propertyViewSQL, id).Scan(
		&v.ID, &v.HostID, &v.Name, &v.BaseRate, &v.MaxGuests, &v.MinNights,
		&v.IsActive, &createdAt, &updatedAt)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("property not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find property", err)
	}
	v.CreatedAt = pgconv.TimeFromPgtype(createdAt)
	v.UpdatedAt = pgconv.TimeFromPgtype(updatedAt)
	return &v, nil
}
