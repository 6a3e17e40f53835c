package cache

import (
	"context"
	"sync"
	"time"
)

// memoryDriver is a process-local Driver for tests and single-node
// deployments where running Redis is not worth it.
type memoryDriver struct {
	mu      sync.Mutex
	entries map[string]memoryEntry
	sets    map[string]map[string]struct{}
}

type memoryEntry struct {
	value     []byte
	expiresAt time.Time // zero means no expiry
}

func NewMemoryDriver() Driver {
	return &memoryDriver{
		entries: make(map[string]memoryEntry),
		sets:    make(map[string]map[string]struct{}),
	}
}

func (d *memoryDriver) Get(_ context.Context, key string) ([]byte, bool, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	e, ok := d.entries[key]
	if !ok {
		return nil, false, nil
	}
	if !e.expiresAt.IsZero() && time.Now().After(e.expiresAt) {
		delete(d.entries, key)
		return nil, false, nil
	}
	return e.value, true, nil
}

func (d *memoryDriver) Set(_ context.Context, key string, value []byte, ttl time.Duration) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.entries[key] = newEntry(value, ttl)
	return nil
}

func (d *memoryDriver) Delete(_ context.Context, keys ...string) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	for _, k := range keys {
		delete(d.entries, k)
		delete(d.sets, k)
	}
	return nil
}

func (d *memoryDriver) SetNX(_ context.Context, key string, value []byte, ttl time.Duration) (bool, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if e, ok := d.entries[key]; ok {
		if e.expiresAt.IsZero() || time.Now().Before(e.expiresAt) {
			return false, nil
		}
	}
	d.entries[key] = newEntry(value, ttl)
	return true, nil
}

func (d *memoryDriver) AddToSet(_ context.Context, set string, members ...string) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	s, ok := d.sets[set]
	if !ok {
		s = make(map[string]struct{})
		d.sets[set] = s
	}
	for _, m := range members {
		s[m] = struct{}{}
	}
	return nil
}

func (d *memoryDriver) SetMembers(_ context.Context, set string) ([]string, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	members := make([]string, 0, len(d.sets[set]))
	for m := range d.sets[set] {
		members = append(members, m)
	}
	return members, nil
}

func newEntry(value []byte, ttl time.Duration) memoryEntry {
	e := memoryEntry{value: value}
	if ttl > 0 {
		e.expiresAt = time.Now().Add(ttl)
	}
	return e
}
