//go:build e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/docker/go-connections/nat"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

const (
	testUser     = "test"
	testPassword = "testpass"

	postgresPort nat.Port = "5432/tcp"
)

var (
	postgresOnce      sync.Once
	postgresContainer testcontainers.Container
	postgresStartErr  error
)

// NewTestPool starts the shared PostgreSQL container once per process, then
// creates a dedicated database with the schema applied so parallel test
// packages never see each other's rows.
func NewTestPool(t *testing.T) *pgxpool.Pool {
	t.Helper()

	ctx := context.Background()
	host, port := startPostgres(t)

	dbName := "testdb_" + strings.ReplaceAll(uuid.New().String(), "-", "")

	adminDSN := fmt.Sprintf("postgres://%s:%s@%s:%s/postgres?sslmode=disable",
		testUser, testPassword, host, port)
	adminPool, err := pgxpool.New(ctx, adminDSN)
	require.NoError(t, err, "failed to open admin connection")
	defer adminPool.Close()

	_, err = adminPool.Exec(ctx, "CREATE DATABASE "+dbName)
	require.NoError(t, err, "failed to create test database")

	dsn := fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		testUser, testPassword, host, port, dbName)
	pool, err := pgxpool.New(ctx, dsn)
	require.NoError(t, err, "failed to connect to test database")

	require.NoError(t, ApplySchema(ctx, pool), "failed to apply schema")

	t.Cleanup(func() {
		pool.Close()

		cleanupCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		cleanupPool, err := pgxpool.New(cleanupCtx, adminDSN)
		if err != nil {
			return
		}
		defer cleanupPool.Close()
		_, _ = cleanupPool.Exec(cleanupCtx, "DROP DATABASE IF EXISTS "+dbName)
	})

	return pool
}

func startPostgres(t *testing.T) (host, port string) {
	t.Helper()

	ctx := context.Background()
	postgresOnce.Do(func() {
		req := testcontainers.ContainerRequest{
			Image:        "postgres:16-alpine",
			ExposedPorts: []string{string(postgresPort)},
			Env: map[string]string{
				"POSTGRES_USER":     testUser,
				"POSTGRES_PASSWORD": testPassword,
				"POSTGRES_DB":       "postgres",
			},
			WaitingFor: wait.ForListeningPort(postgresPort).WithStartupTimeout(60 * time.Second),
		}
		postgresContainer, postgresStartErr = testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
			ContainerRequest: req,
			Started:          true,
		})
	})
	require.NoError(t, postgresStartErr, "failed to start PostgreSQL container")

	h, err := postgresContainer.Host(ctx)
	require.NoError(t, err)
	p, err := postgresContainer.MappedPort(ctx, postgresPort)
	require.NoError(t, err)
	return h, p.Port()
}
