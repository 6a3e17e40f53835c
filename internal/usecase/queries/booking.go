package queries

import (
	"context"
	"time"

	"staymarket/internal/domain/booking"
	"staymarket/internal/pkg/errs"

	"github.com/google/uuid"
)

type BookingQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*BookingView, error)
	ListByProperty(ctx context.Context, propertyID uuid.UUID, limit int) ([]*BookingListItem, error)
	ListByGuest(ctx context.Context, guestID uuid.UUID, limit int) ([]*BookingListItem, error)
}

type AvailabilityQueries interface {
	IsAvailable(ctx context.Context, propertyID uuid.UUID, checkIn, checkOut time.Time) (*AvailabilityView, error)
}

type BookingViewRepo interface {
	FindByID(ctx context.Context, id uuid.UUID) (*BookingView, error)
	FindByProperty(ctx context.Context, propertyID uuid.UUID, limit int32) ([]*BookingListItem, error)
	FindByGuest(ctx context.Context, guestID uuid.UUID, limit int32) ([]*BookingListItem, error)
	// HasBlockingOverlap reports whether any non-cancelled booking overlaps
	// the half-open range.
	HasBlockingOverlap(ctx context.Context, propertyID uuid.UUID, stay booking.StayRange) (bool, error)
}

type bookingQueriesImpl struct {
	repo BookingViewRepo
}

func NewBookingQueries(repo BookingViewRepo) BookingQueries {
	return &bookingQueriesImpl{repo: repo}
}

func (q *bookingQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*BookingView, error) {
	return q.repo.FindByID(ctx, id)
}

func (q *bookingQueriesImpl) ListByProperty(ctx context.Context, propertyID uuid.UUID, limit int) ([]*BookingListItem, error) {
	return q.repo.FindByProperty(ctx, propertyID, normalizeLimit(limit))
}

func (q *bookingQueriesImpl) ListByGuest(ctx context.Context, guestID uuid.UUID, limit int) ([]*BookingListItem, error) {
	return q.repo.FindByGuest(ctx, guestID, normalizeLimit(limit))
}

// The bookings table is the single source of truth for availability: this
// query always hits the store directly and is never served from the cache.
type availabilityQueriesImpl struct {
	repo BookingViewRepo
}

func NewAvailabilityQueries(repo BookingViewRepo) AvailabilityQueries {
	return &availabilityQueriesImpl{repo: repo}
}

func (q *availabilityQueriesImpl) IsAvailable(ctx context.Context, propertyID uuid.UUID, checkIn, checkOut time.Time) (*AvailabilityView, error) {
	stay, err := booking.NewStayRange(checkIn, checkOut)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrInvalidStayRange)
	}

	overlap, err := q.repo.HasBlockingOverlap(ctx, propertyID, stay)
	if err != nil {
		return nil, err
	}

	return &AvailabilityView{
		PropertyID: propertyID,
		CheckIn:    stay.CheckIn(),
		CheckOut:   stay.CheckOut(),
		Available:  !overlap,
	}, nil
}

func normalizeLimit(limit int) int32 {
	if limit <= 0 || limit > 200 {
		return 50
	}
	return int32(limit)
}
