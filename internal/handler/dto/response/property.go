package response

import (
	"time"

	"staymarket/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type PropertyResponse struct {
	ID        uuid.UUID `json:"id"`
	HostID    uuid.UUID `json:"hostId"`
	Name      string    `json:"name"`
	BaseRate  float64   `json:"baseRate"`
	MaxGuests int       `json:"maxGuests"`
	MinNights int       `json:"minNights"`
	IsActive  bool      `json:"isActive"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func FromPropertyView(v *queries.PropertyView) *PropertyResponse {
	var resp PropertyResponse
	_ = copier.Copy(&resp, v)
	return &resp
}
