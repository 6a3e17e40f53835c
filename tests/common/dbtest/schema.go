//go:build unit || e2e

package dbtest

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Schema mirrors the production tables. Test databases are created per
// process, so the DDL lives here instead of a migration tool.
const Schema = `
CREATE TABLE IF NOT EXISTS properties (
    id uuid PRIMARY KEY,
    host_id uuid NOT NULL,
    name text NOT NULL,
    base_rate double precision NOT NULL,
    max_guests int NOT NULL,
    min_nights int NOT NULL DEFAULT 1,
    is_active boolean NOT NULL DEFAULT true,
    created_at timestamptz NOT NULL DEFAULT now(),
    updated_at timestamptz NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS bookings (
    id uuid PRIMARY KEY,
    property_id uuid NOT NULL REFERENCES properties(id),
    guest_id uuid NOT NULL,
    check_in date NOT NULL,
    check_out date NOT NULL,
    guests int NOT NULL,
    status text NOT NULL,
    price_per_night double precision NOT NULL,
    total double precision NOT NULL,
    created_at timestamptz NOT NULL DEFAULT now(),
    updated_at timestamptz NOT NULL DEFAULT now(),
    CHECK (check_out > check_in)
);
CREATE INDEX IF NOT EXISTS idx_bookings_property_dates ON bookings (property_id, check_in, check_out);
CREATE INDEX IF NOT EXISTS idx_bookings_guest ON bookings (guest_id, check_in DESC);

CREATE TABLE IF NOT EXISTS pricing_rules (
    id uuid PRIMARY KEY,
    property_id uuid NOT NULL REFERENCES properties(id),
    kind text NOT NULL,
    start_date date,
    end_date date,
    days_of_week int[],
    adjustment_kind text NOT NULL,
    adjustment_value double precision NOT NULL,
    min_nights int,
    max_nights int,
    min_booking_value double precision,
    max_booking_value double precision,
    last_minute_days int,
    advance_days int,
    priority int NOT NULL DEFAULT 0,
    sequence bigint GENERATED ALWAYS AS IDENTITY,
    is_active boolean NOT NULL DEFAULT true,
    created_at timestamptz NOT NULL DEFAULT now(),
    updated_at timestamptz NOT NULL DEFAULT now()
);
CREATE INDEX IF NOT EXISTS idx_pricing_rules_property ON pricing_rules (property_id, is_active, sequence);

CREATE TABLE IF NOT EXISTS price_suggestions (
    id uuid PRIMARY KEY,
    property_id uuid NOT NULL REFERENCES properties(id),
    window_start date NOT NULL,
    window_end date NOT NULL,
    current_price double precision NOT NULL,
    suggested_price double precision NOT NULL,
    confidence double precision NOT NULL DEFAULT 0,
    status text NOT NULL DEFAULT 'pending',
    decided_at timestamptz,
    created_at timestamptz NOT NULL DEFAULT now(),
    CHECK (window_end > window_start)
);
CREATE INDEX IF NOT EXISTS idx_price_suggestions_due ON price_suggestions (status, window_end);

CREATE TABLE IF NOT EXISTS app_settings (
    key text PRIMARY KEY,
    value text NOT NULL
);
`

func ApplySchema(ctx context.Context, pool *pgxpool.Pool) error {
	_, err := pool.Exec(ctx, Schema)
	return err
}
