package readstore

import (
	"context"

	"staymarket/internal/infra"
	"staymarket/internal/pkg/pgconv"
	"staymarket/internal/pkg/settings"

	"github.com/jackc/pgx/v5/pgxpool"
)

// NewSettingsLoader reads operational settings from the app_settings table.
// A missing key is an empty value, not an error, so callers can layer
// defaults on top.
func NewSettingsLoader(pool *pgxpool.Pool) settings.Loader {
	return func(ctx context.Context, key string) (string, error) {
		var value string
		err := pool.QueryRow(ctx,
			`SELECT value FROM app_settings WHERE key = $1`, key).Scan(&value)
		if err != nil {
			if pgconv.IsNoRows(err) {
				return "", nil
			}
			return "", infra.WrapRepoErr("failed to load setting", err)
		}
		return value, nil
	}
}
