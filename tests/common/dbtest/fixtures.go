//go:build unit || e2e

package dbtest

import (
	"context"
	"testing"
	"time"

	"staymarket/internal/infra/db"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func CreateTestProperty(t *testing.T, tx db.DBTX, baseRate float64) uuid.UUID {
	t.Helper()

	propertyID := uuid.New()
	ctx := context.Background()
	_, err := tx.Exec(ctx,
		`INSERT INTO properties (id, host_id, name, base_rate, max_guests, min_nights, is_active)
		 VALUES ($1, $2, $3, $4, 4, 1, true)`,
		propertyID, uuid.New(), "Test Property", baseRate)
	require.NoError(t, err)

	return propertyID
}

func CreateTestBooking(t *testing.T, tx db.DBTX, propertyID, guestID uuid.UUID, checkIn, checkOut time.Time, status string) uuid.UUID {
	t.Helper()

	bookingID := uuid.New()
	ctx := context.Background()
	_, err := tx.Exec(ctx,
		`INSERT INTO bookings (id, property_id, guest_id, check_in, check_out, guests, status, price_per_night, total)
		 VALUES ($1, $2, $3, $4, $5, 2, $6, 100, 100)`,
		bookingID, propertyID, guestID, checkIn, checkOut, status)
	require.NoError(t, err)

	return bookingID
}

func CreateTestSuggestion(t *testing.T, tx db.DBTX, propertyID uuid.UUID, windowStart, windowEnd time.Time, status string) uuid.UUID {
	t.Helper()

	suggestionID := uuid.New()
	ctx := context.Background()
	_, err := tx.Exec(ctx,
		`INSERT INTO price_suggestions (id, property_id, window_start, window_end, current_price, suggested_price, confidence, status)
		 VALUES ($1, $2, $3, $4, 100, 120, 0.9, $5)`,
		suggestionID, propertyID, windowStart, windowEnd, status)
	require.NoError(t, err)

	return suggestionID
}

func SetSetting(t *testing.T, tx db.DBTX, key, value string) {
	t.Helper()

	ctx := context.Background()
	_, err := tx.Exec(ctx,
		`INSERT INTO app_settings (key, value) VALUES ($1, $2)
		 ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value`,
		key, value)
	require.NoError(t, err)
}
