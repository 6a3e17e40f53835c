// Package cache wraps expensive read paths with tagged, TTL-bound
// memoization. Population is single-flight: one caller computes under a named
// lock while the others wait and reuse the stored result.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"math/rand/v2"
	"time"

	"staymarket/internal/pkg/errs"
)

var (
	// ErrLockTimeout is returned when the population lock could not be
	// acquired within the configured retry attempts. Callers should fall back to
	// computing without the cache.
	ErrLockTimeout = errors.New("cache lock acquisition timed out")

	errMiss = errors.New("cache miss")
)

// Driver is the minimal keyspace contract the service needs. redisDriver
// backs it in production; memoryDriver serves tests and single-node setups.
type Driver interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, keys ...string) error
	// SetNX stores the value only if the key is absent; true when acquired.
	SetNX(ctx context.Context, key string, value []byte, ttl time.Duration) (bool, error)
	AddToSet(ctx context.Context, set string, members ...string) error
	SetMembers(ctx context.Context, set string) ([]string, error)
}

type Options struct {
	LockTTL     time.Duration
	LockRetries int
	LockBackoff time.Duration
}

func (o Options) withDefaults() Options {
	if o.LockTTL <= 0 {
		o.LockTTL = 10 * time.Second
	}
	if o.LockRetries <= 0 {
		o.LockRetries = 5
	}
	if o.LockBackoff <= 0 {
		o.LockBackoff = 50 * time.Millisecond
	}
	return o
}

type Service struct {
	driver Driver
	opts   Options
	logger *slog.Logger
}

func NewService(driver Driver, opts Options, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{driver: driver, opts: opts.withDefaults(), logger: logger}
}

// Remember returns the cached JSON payload for key, computing and storing it
// on a miss. The lock retry loop is bounded: exhaustion surfaces
// ErrLockTimeout instead of recursing indefinitely under contention.
func (s *Service) Remember(ctx context.Context, key string, ttl time.Duration, tags []string, compute func(ctx context.Context) (any, error)) ([]byte, error) {
	if data, err := s.lookup(ctx, key); err == nil {
		return data, nil
	}

	lockKey := "lock:" + key
	for attempt := 0; attempt <= s.opts.LockRetries; attempt++ {
		acquired, err := s.driver.SetNX(ctx, lockKey, []byte("1"), s.opts.LockTTL)
		if err != nil {
			return nil, errs.Wrap(err, "failed to acquire cache lock")
		}
		if acquired {
			data, err := s.populate(ctx, key, ttl, tags, compute)
			if delErr := s.driver.Delete(ctx, lockKey); delErr != nil {
				s.logger.Warn("failed to release cache lock", "key", key, "error", delErr)
			}
			return data, err
		}

		// Another caller is populating; it usually finishes well within the
		// backoff window.
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(backoff(s.opts.LockBackoff, attempt)):
		}

		if data, err := s.lookup(ctx, key); err == nil {
			return data, nil
		}
	}

	return nil, errs.Wrap(ErrLockTimeout, "lock retries exhausted for "+key)
}

// RememberAs decodes the remembered payload into out.
func (s *Service) RememberAs(ctx context.Context, key string, ttl time.Duration, tags []string, out any, compute func(ctx context.Context) (any, error)) error {
	data, err := s.Remember(ctx, key, ttl, tags, compute)
	if err != nil {
		return err
	}
	return json.Unmarshal(data, out)
}

// InvalidateByTags drops every entry associated with any of the given tags.
func (s *Service) InvalidateByTags(ctx context.Context, tags ...string) error {
	for _, tag := range tags {
		setKey := tagSetKey(tag)
		members, err := s.driver.SetMembers(ctx, setKey)
		if err != nil {
			return errs.Wrap(err, "failed to read tag set "+tag)
		}
		keys := append(members, setKey)
		if err := s.driver.Delete(ctx, keys...); err != nil {
			return errs.Wrap(err, "failed to invalidate tag "+tag)
		}
	}
	return nil
}

// Forget removes a single entry.
func (s *Service) Forget(ctx context.Context, key string) error {
	return s.driver.Delete(ctx, key)
}

func (s *Service) lookup(ctx context.Context, key string) ([]byte, error) {
	data, ok, err := s.driver.Get(ctx, key)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, errMiss
	}
	return data, nil
}

func (s *Service) populate(ctx context.Context, key string, ttl time.Duration, tags []string, compute func(ctx context.Context) (any, error)) ([]byte, error) {
	// Double-checked: another caller may have populated the key while this
	// one waited for the lock.
	if data, err := s.lookup(ctx, key); err == nil {
		return data, nil
	}

	value, err := compute(ctx)
	if err != nil {
		return nil, err
	}

	data, err := json.Marshal(value)
	if err != nil {
		return nil, errs.Wrap(err, "failed to encode cache value")
	}

	if err := s.driver.Set(ctx, key, data, ttl); err != nil {
		return nil, errs.Wrap(err, "failed to store cache value")
	}
	for _, tag := range tags {
		if err := s.driver.AddToSet(ctx, tagSetKey(tag), key); err != nil {
			return nil, errs.Wrap(err, "failed to index cache tag "+tag)
		}
	}
	return data, nil
}

func tagSetKey(tag string) string {
	return "tag:" + tag
}

func backoff(base time.Duration, attempt int) time.Duration {
	wait := base << attempt
	jitter := time.Duration(rand.Int64N(int64(base)))
	return wait + jitter
}
