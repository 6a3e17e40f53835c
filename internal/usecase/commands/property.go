package commands

import (
	"context"

	"staymarket/internal/domain/property"
	"staymarket/internal/infra/db"
	"staymarket/internal/pkg/errs"
	"staymarket/internal/usecase/queries"
	"staymarket/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type CreatePropertyParams struct {
	HostID    uuid.UUID
	Name      string
	BaseRate  float64
	MaxGuests int
	MinNights int
}

type PropertyCommands interface {
	CreateProperty(ctx context.Context, params CreatePropertyParams) (*queries.PropertyView, error)
}

type propertyCommandsImpl struct {
	propertyRepo  PropertyRepository
	propertyViews queries.PropertyViewRepo
	pool          *pgxpool.Pool
}

func NewPropertyCommands(
	propertyRepo PropertyRepository,
	propertyViews queries.PropertyViewRepo,
	pool *pgxpool.Pool,
) PropertyCommands {
	return &propertyCommandsImpl{
		propertyRepo:  propertyRepo,
		propertyViews: propertyViews,
		pool:          pool,
	}
}

func (c *propertyCommandsImpl) CreateProperty(ctx context.Context, params CreatePropertyParams) (*queries.PropertyView, error) {
	prop, err := property.NewProperty(params.HostID, params.Name, params.BaseRate, params.MaxGuests, params.MinNights)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	id, err := shared.RunInTx(ctx, c.pool, func(tx db.DBTX) (uuid.UUID, error) {
		id, err := c.propertyRepo.Create(ctx, tx, prop)
		if err != nil {
			return uuid.Nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		return id, nil
	})
	if err != nil {
		return nil, err
	}

	return c.propertyViews.FindByID(ctx, id)
}
