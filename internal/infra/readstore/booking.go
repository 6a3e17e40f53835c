package readstore

import (
	"context"

	"staymarket/internal/domain/booking"
	"staymarket/internal/infra"
	"staymarket/internal/pkg/pgconv"
	"staymarket/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

type BookingReadStore struct {
	pool *pgxpool.Pool
}

func NewBookingReadStore(pool *pgxpool.Pool) queries.BookingViewRepo {
	return &BookingReadStore{pool: pool}
}

const bookingViewSQL = `
SELECT b.id, b.property_id, p.name, b.guest_id, b.check_in, b.check_out,
       b.guests, b.status, b.price_per_night, b.total, b.created_at, b.updated_at
FROM bookings b
JOIN properties p ON p.id = b.property_id
WHERE b.id = $1`

func (s *BookingReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.BookingView, error) {
	var (
		v                    queries.BookingView
		checkIn, checkOut    pgtype.Date
		createdAt, updatedAt pgtype.Timestamptz
	)
	err := s.pool.QueryRow(ctx, bookingViewSQL, id).Scan(
		&v.ID, &v.PropertyID, &v.PropertyName, &v.GuestID, &checkIn, &checkOut,
		&v.Guests, &v.Status, &v.PricePerNight, &v.Total, &createdAt, &updatedAt)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find booking", err)
	}

	v.CheckIn = pgconv.DateFromPgtype(checkIn)
	v.CheckOut = pgconv.DateFromPgtype(checkOut)
	v.Nights = int(v.CheckOut.Sub(v.CheckIn).Hours() / 24)
	v.CreatedAt = pgconv.TimeFromPgtype(createdAt)
	v.UpdatedAt = pgconv.TimeFromPgtype(updatedAt)
	return &v, nil
}

func (s *BookingReadStore) FindByProperty(ctx context.Context, propertyID uuid.UUID, limit int32) ([]*queries.BookingListItem, error) {
	return s.list(ctx, "property_id", propertyID, limit)
}

func (s *BookingReadStore) FindByGuest(ctx context.Context, guestID uuid.UUID, limit int32) ([]*queries.BookingListItem, error) {
	return s.list(ctx, "guest_id", guestID, limit)
}

func (s *BookingReadStore) list(ctx context.Context, column string, id uuid.UUID, limit int32) ([]*queries.BookingListItem, error) {
	sql := `
SELECT id, property_id, check_in, check_out, status, total, created_at
FROM bookings
WHERE ` + column + ` = $1
ORDER BY check_in DESC
LIMIT $2`

	rows, err := s.pool.Query(ctx, sql, id, limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings", err)
	}
	defer rows.Close()

	var items []*queries.BookingListItem
	for rows.Next() {
		var (
			item              queries.BookingListItem
			checkIn, checkOut pgtype.Date
			createdAt         pgtype.Timestamptz
		)
		if err := rows.Scan(&item.ID, &item.PropertyID, &checkIn, &checkOut,
			&item.Status, &item.Total, &createdAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan booking", err)
		}
		item.CheckIn = pgconv.DateFromPgtype(checkIn)
		item.CheckOut = pgconv.DateFromPgtype(checkOut)
		item.CreatedAt = pgconv.TimeFromPgtype(createdAt)
		items = append(items, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read bookings", err)
	}
	return items, nil
}

const blockingOverlapSQL = `
SELECT EXISTS (
    SELECT 1
    FROM bookings
    WHERE property_id = $1
      AND status <> 'cancelled'
      AND check_in < $3
      AND check_out > $2
)`

func (s *BookingReadStore) HasBlockingOverlap(ctx context.Context, propertyID uuid.UUID, stay booking.StayRange) (bool, error) {
	var exists bool
	err := s.pool.QueryRow(ctx, blockingOverlapSQL,
		propertyID, stay.CheckIn(), stay.CheckOut()).Scan(&exists)
	if err != nil {
		return false, infra.WrapRepoErr("failed to check availability", err)
	}
	return exists, nil
}
