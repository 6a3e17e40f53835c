// Package settings provides an explicit, injectable configuration store.
// Values are read through a caller-supplied loader and memoized with a
// TTL-bound LRU; consumers invalidate keys explicitly after writes instead
// of relying on implicit model-lifecycle hooks.
package settings

import (
	"context"
	"time"

	lru "github.com/hashicorp/golang-lru/v2/expirable"
)

// Loader fetches the raw value for a key from the backing store.
type Loader func(ctx context.Context, key string) (string, error)

type Store interface {
	Get(ctx context.Context, key string) (string, error)
	GetDefault(ctx context.Context, key, fallback string) string
	Invalidate(key string)
	InvalidateAll()
}

type lruStore struct {
	cache  *lru.LRU[string, string]
	loader Loader
}

func NewStore(loader Loader, size int, ttl time.Duration) Store {
	if size <= 0 {
		size = 256
	}
	return &lruStore{
		cache:  lru.NewLRU[string, string](size, nil, ttl),
		loader: loader,
	}
}

func (s *lruStore) Get(ctx context.Context, key string) (string, error) {
	if v, ok := s.cache.Get(key); ok {
		return v, nil
	}

	v, err := s.loader(ctx, key)
	if err != nil {
		return "", err
	}
	s.cache.Add(key, v)
	return v, nil
}

func (s *lruStore) GetDefault(ctx context.Context, key, fallback string) string {
	v, err := s.Get(ctx, key)
	if err != nil || v == "" {
		return fallback
	}
	return v
}

func (s *lruStore) Invalidate(key string) {
	s.cache.Remove(key)
}

func (s *lruStore) InvalidateAll() {
	s.cache.Purge()
}
