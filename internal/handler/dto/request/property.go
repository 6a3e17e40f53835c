package request

import (
	"staymarket/internal/usecase/commands"

	"github.com/google/uuid"
)

type CreatePropertyRequest struct {
	HostID    uuid.UUID `json:"host_id" binding:"required"`
	Name      string    `json:"name" binding:"required"`
	BaseRate  float64   `json:"base_rate" binding:"required"`
	MaxGuests int       `json:"max_guests" binding:"required,min=1"`
	MinNights int       `json:"min_nights"`
}

func (r CreatePropertyRequest) ToParams() commands.CreatePropertyParams {
	return commands.CreatePropertyParams{
		HostID:    r.HostID,
		Name:      r.Name,
		BaseRate:  r.BaseRate,
		MaxGuests: r.MaxGuests,
		MinNights: r.MinNights,
	}
}
