package property

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyName        = errors.New("property name cannot be empty")
	ErrNegativeRate     = errors.New("nightly rate cannot be negative")
	ErrInvalidOccupancy = errors.New("max guests must be at least 1")
)

// Property carries the subset of listing state the pricing and availability
// core reads: identity, the base nightly rate every rule chain starts from,
// and occupancy bounds.
type Property struct {
	id        uuid.UUID
	hostID    uuid.UUID
	name      string
	baseRate  float64
	maxGuests int
	minNights int
	active    bool
	createdAt time.Time
	updatedAt time.Time
}

func NewProperty(hostID uuid.UUID, name string, baseRate float64, maxGuests, minNights int) (*Property, error) {
	if name == "" {
		return nil, ErrEmptyName
	}
	if baseRate < 0 {
		return nil, ErrNegativeRate
	}
	if maxGuests < 1 {
		return nil, ErrInvalidOccupancy
	}
	if minNights < 1 {
		minNights = 1
	}

	return &Property{
		id:        uuid.New(),
		hostID:    hostID,
		name:      name,
		baseRate:  baseRate,
		maxGuests: maxGuests,
		minNights: minNights,
		active:    true,
	}, nil
}

func ReconstructProperty(
	id, hostID uuid.UUID,
	name string,
	baseRate float64,
	maxGuests, minNights int,
	active bool,
	createdAt, updatedAt time.Time,
) *Property {
	return &Property{
		id:        id,
		hostID:    hostID,
		name:      name,
		baseRate:  baseRate,
		maxGuests: maxGuests,
		minNights: minNights,
		active:    active,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

// Reprice returns the base rate the property transitions to; persisting it is
// the caller's concern.
func (p *Property) Reprice(newRate float64) (float64, error) {
	if newRate < 0 {
		return p.baseRate, ErrNegativeRate
	}
	return newRate, nil
}

func (p *Property) CanHost(guests int) bool {
	return guests >= 1 && guests <= p.maxGuests
}

func (p *Property) ID() uuid.UUID        { return p.id }
func (p *Property) HostID() uuid.UUID    { return p.hostID }
func (p *Property) Name() string         { return p.name }
func (p *Property) BaseRate() float64    { return p.baseRate }
func (p *Property) MaxGuests() int       { return p.maxGuests }
func (p *Property) MinNights() int       { return p.minNights }
func (p *Property) IsActive() bool       { return p.active }
func (p *Property) CreatedAt() time.Time { return p.createdAt }
func (p *Property) UpdatedAt() time.Time { return p.updatedAt }
