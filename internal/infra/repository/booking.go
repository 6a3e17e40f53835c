package repository

import (
	"context"

	"staymarket/internal/domain/booking"
	"staymarket/internal/infra"
	"staymarket/internal/infra/db"
	"staymarket/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

type BookingRepository struct{}

func NewBookingRepository() *BookingRepository {
	return &BookingRepository{}
}

const createBookingSQL = `
INSERT INTO bookings (
    id, property_id, guest_id, check_in, check_out, guests,
    status, price_per_night, total, created_at, updated_at
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, now(), now())
RETURNING id`

func (r *BookingRepository) Create(ctx context.Context, tx db.DBTX, b *booking.Booking) (uuid.UUID, error) {
	var id uuid.UUID
	err := tx.QueryRow(ctx, createBookingSQL,
		b.ID(), b.PropertyID(), b.GuestID(),
		b.Stay().CheckIn(), b.Stay().CheckOut(), b.Guests().Value(),
		b.Status().String(), b.PricePerNight(), b.Total(),
	).Scan(&id)
	if err != nil {
		if pgconv.IsUniqueViolation(err) {
			return uuid.Nil, infra.WrapRepoErr("booking already exists", err, infra.KindDuplicateKey)
		}
		if pgconv.IsForeignKeyViolation(err) {
			return uuid.Nil, infra.WrapRepoErr("booking references missing row", err, infra.KindForeignKeyViolated)
		}
		return uuid.Nil, infra.WrapRepoErr("failed to create booking", err)
	}
	return id, nil
}

const findBookingSQL = `
SELECT id, property_id, guest_id, check_in, check_out, guests,
       status, price_per_night, total, created_at, updated_at
FROM bookings
WHERE id = $1`

func (r *BookingRepository) FindByID(ctx context.Context, tx db.DBTX, id uuid.UUID) (*booking.Booking, error) {
	row := tx.QueryRow(ctx, findBookingSQL, id)
	entity, err := scanBooking(row)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find booking", err)
	}
	return entity, nil
}

func (r *BookingRepository) UpdateStatus(ctx context.Context, tx db.DBTX, id uuid.UUID, status booking.Status) error {
	tag, err := tx.Exec(ctx,
		`UPDATE bookings SET status = $2, updated_at = now() WHERE id = $1`,
		id, status.String())
	if err != nil {
		return infra.WrapRepoErr("failed to update booking status", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)
	}
	return nil
}

// Half-open overlap: an existing checkout on the requested check-in day does
// not block.
const overlapSQL = `
SELECT EXISTS (
    SELECT 1
    FROM bookings
    WHERE property_id = $1
      AND status <> 'cancelled'
      AND check_in < $3
      AND check_out > $2
)`

func (r *BookingRepository) HasBlockingOverlap(ctx context.Context, tx db.DBTX, propertyID uuid.UUID, stay booking.StayRange) (bool, error) {
	var exists bool
	err := tx.QueryRow(ctx, overlapSQL, propertyID, stay.CheckIn(), stay.CheckOut()).Scan(&exists)
	if err != nil {
		return false, infra.WrapRepoErr("failed to check booking overlap", err)
	}
	return exists, nil
}

// LockProperty serializes booking writes per property for the lifetime of
// the surrounding transaction.
func (r *BookingRepository) LockProperty(ctx context.Context, tx db.DBTX, propertyID uuid.UUID) error {
	_, err := tx.Exec(ctx,
		`SELECT pg_advisory_xact_lock(hashtextextended($1::text, 0))`,
		propertyID.String())
	if err != nil {
		return infra.WrapRepoErr("failed to acquire property lock", err)
	}
	return nil
}

func scanBooking(row pgx.Row) (*booking.Booking, error) {
	var (
		id, propertyID, guestID uuid.UUID
		checkIn, checkOut       pgtype.Date
		guests                  int
		status                  string
		pricePerNight, total    float64
		createdAt, updatedAt    pgtype.Timestamptz
	)
	err := row.Scan(&id, &propertyID, &guestID, &checkIn, &checkOut, &guests,
		&status, &pricePerNight, &total, &createdAt, &updatedAt)
	if err != nil {
		return nil, err
	}

	stay, err := booking.NewStayRange(pgconv.DateFromPgtype(checkIn), pgconv.DateFromPgtype(checkOut))
	if err != nil {
		return nil, err
	}
	guestCount, err := booking.NewGuestCount(guests)
	if err != nil {
		return nil, err
	}

	return booking.ReconstructBooking(
		id, propertyID, guestID,
		stay, guestCount, booking.Status(status),
		pricePerNight, total,
		pgconv.TimeFromPgtype(createdAt), pgconv.TimeFromPgtype(updatedAt),
	), nil
}
