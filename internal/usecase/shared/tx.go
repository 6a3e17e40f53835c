package shared

import (
	"context"
	"errors"
	"log/slog"
	"math/rand/v2"
	"time"

	"staymarket/internal/infra/db"
	"staymarket/internal/pkg/errs"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	pgErrCodeSerializationFailure = "40001"
	pgErrCodeDeadlockDetected     = "40P01"
)

var (
	ErrTransactionBegin   = errs.New("failed to begin transaction")
	ErrTransactionCommit  = errs.New("failed to commit transaction")
	ErrMaxRetriesExceeded = errs.New("transaction failed after max retries")
)

func RunInTx[T any](ctx context.Context, pool *pgxpool.Pool, fn func(tx db.DBTX) (T, error)) (T, error) {
	var zero T

	tx, err := pool.Begin(ctx)
	if err != nil {
		return zero, errs.Mark(err, ErrTransactionBegin)
	}

	defer func() {
		if rollbackErr := tx.Rollback(ctx); rollbackErr != nil {
			// Only log rollback errors for uncommitted transactions
			if !errors.Is(rollbackErr, pgx.ErrTxClosed) {
				slog.Warn("failed to rollback transaction", "error", rollbackErr)
			}
		}
	}()

	result, err := fn(tx)
	if err != nil {
		return zero, err
	}

	if err = tx.Commit(ctx); err != nil {
		return zero, errs.Mark(err, ErrTransactionCommit)
	}

	return result, nil
}

// RunInTxWithRetry retries serialization failures and deadlocks with
// exponential backoff. Advisory-lock contention on hot properties shows up
// as deadlocks under load, so booking writes go through here.
func RunInTxWithRetry[T any](ctx context.Context, pool *pgxpool.Pool, maxRetries int, fn func(tx db.DBTX) (T, error)) (T, error) {
	var zero T
	base := 100 * time.Millisecond

	for attempt := 0; ; attempt++ {
		result, err := RunInTx(ctx, pool, fn)
		if err == nil {
			return result, nil
		}
		if !isRetryableError(err) {
			return zero, err
		}
		if attempt >= maxRetries {
			slog.Error("transaction failed after max retries", "attempts", attempt+1, "error", err.Error())
			return zero, errs.Mark(err, ErrMaxRetriesExceeded)
		}

		wait := backoff(base, attempt)
		slog.Warn("retrying transaction due to retryable error",
			"attempt", attempt+1, "wait_ms", wait.Milliseconds(), "error", err.Error())

		select {
		case <-ctx.Done():
			return zero, ctx.Err()
		case <-time.After(wait):
		}
	}
}

func backoff(base time.Duration, attempt int) time.Duration {
	wait := time.Duration(1<<attempt) * base
	jitter := time.Duration(rand.Int64N(int64(wait / 5)))
	return wait + jitter
}

func isRetryableError(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}

	switch pgErr.Code {
	case pgErrCodeSerializationFailure, pgErrCodeDeadlockDetected:
		return true
	default:
		return false
	}
}
