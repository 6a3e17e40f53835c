package repository

import (
	"context"

	"staymarket/internal/domain/property"
	"staymarket/internal/infra"
	"staymarket/internal/infra/db"
	"staymarket/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type PropertyRepository struct{}

func NewPropertyRepository() *PropertyRepository {
	return &PropertyRepository{}
}

const findPropertySQL = `
SELECT id, host_id, name, base_rate, max_guests, min_nights, is_active,
       created_at, updated_at
FROM properties
WHERE id = $1`

func (r *PropertyRepository) FindByID(ctx context.Context, tx db.DBTX, id uuid.UUID) (*property.Property, error) {
	var (
		pid, hostID          uuid.UUID
		name                 string
		baseRate             float64
		maxGuests, minNights int
		active               bool
		createdAt, updatedAt pgtype.Timestamptz
	)
	err := tx.QueryRow(ctx, findPropertySQL, id).Scan(
		&pid, &hostID, &name, &baseRate, &maxGuests, &minNights, &active,
		&createdAt, &updatedAt)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("property not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find property", err)
	}

	return property.ReconstructProperty(
		pid, hostID, name, baseRate, maxGuests, minNights, active,
		pgconv.TimeFromPgtype(createdAt), pgconv.TimeFromPgtype(updatedAt),
	), nil
}

const createPropertySQL = `
INSERT INTO properties (
    id, host_id, name, base_rate, max_guests, min_nights, is_active,
    created_at, updated_at
) VALUES ($1, $2, $3, $4, $5, $6, $7, now(), now())
RETURNING id`

func (r *PropertyRepository) Create(ctx context.Context, tx db.DBTX, p *property.Property) (uuid.UUID, error) {
	var id uuid.UUID
	err := tx.QueryRow(ctx, createPropertySQL,
		p.ID(), p.HostID(), p.Name(), p.BaseRate(),
		p.MaxGuests(), p.MinNights(), p.IsActive(),
	).Scan(&id)
	if err != nil {
		if pgconv.IsUniqueViolation(err) {
			return uuid.Nil, infra.WrapRepoErr("property already exists", err, infra.KindDuplicateKey)
		}
		return uuid.Nil, infra.WrapRepoErr("failed to create property", err)
	}
	return id, nil
}

func (r *PropertyRepository) UpdateBaseRate(ctx context.Context, tx db.DBTX, id uuid.UUID, rate float64) error {
	tag, err := tx.Exec(ctx,
		`UPDATE properties SET base_rate = $2, updated_at = now() WHERE id = $1`,
		id, rate)
	if err != nil {
		return infra.WrapRepoErr("failed to update base rate", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("property not found", nil, infra.KindNotFound)
	}
	return nil
}
