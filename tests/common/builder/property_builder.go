//go:build unit || e2e

package builder

import (
	"time"

	domproperty "staymarket/internal/domain/property"
	reqdto "staymarket/internal/handler/dto/request"
	"staymarket/internal/usecase/commands"
	"staymarket/internal/usecase/queries"

	"github.com/google/uuid"
)

type PropertyBuilder struct {
	ID        uuid.UUID
	HostID    uuid.UUID
	Name      string
	BaseRate  float64
	MaxGuests int
	MinNights int
	IsActive  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

func NewPropertyBuilder() *PropertyBuilder {
	now := time.Now()
	return &PropertyBuilder{
		ID:        uuid.New(),
		HostID:    uuid.New(),
		Name:      "Seaside Cottage",
		BaseRate:  120.0,
		MaxGuests: 4,
		MinNights: 1,
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func (b *PropertyBuilder) With(mutate func(*PropertyBuilder)) *PropertyBuilder {
	mutate(b)
	return b
}

// Build methods
func (b *PropertyBuilder) BuildDomain() *domproperty.Property {
	return domproperty.ReconstructProperty(
		b.ID, b.HostID, b.Name, b.BaseRate, b.MaxGuests, b.MinNights, b.IsActive, b.CreatedAt, b.UpdatedAt,
	)
}

func (b *PropertyBuilder) BuildCreateRequestDTO() reqdto.CreatePropertyRequest {
	return reqdto.CreatePropertyRequest{
		HostID:    b.HostID,
		Name:      b.Name,
		BaseRate:  b.BaseRate,
		MaxGuests: b.MaxGuests,
		MinNights: b.MinNights,
	}
}

func (b *PropertyBuilder) BuildCreateParams() commands.CreatePropertyParams {
	return commands.CreatePropertyParams{
		HostID:    b.HostID,
		Name:      b.Name,
		BaseRate:  b.BaseRate,
		MaxGuests: b.MaxGuests,
		MinNights: b.MinNights,
	}
}

func (b *PropertyBuilder) BuildView() *queries.PropertyView {
	return &queries.PropertyView{
		ID:        b.ID,
		HostID:    b.HostID,
		Name:      b.Name,
		BaseRate:  b.BaseRate,
		MaxGuests: b.MaxGuests,
		MinNights: b.MinNights,
		IsActive:  b.IsActive,
		CreatedAt: b.CreatedAt,
		UpdatedAt: b.UpdatedAt,
	}
}
