package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/aaravmahajanofficial/templatehub/internal/config"
)

type memoryEntry struct {
	data      []byte
	expiresAt time.Time
}

// memoryCache is used when Redis is not configured. Values are stored as JSON
// so callers observe the same copy semantics as with Redis.
type memoryCache struct {
	mu      sync.Mutex
	entries map[string]memoryEntry
	cfg     *config.CacheConfig
	now     func() time.Time
}

func NewMemoryCache(cfg *config.CacheConfig) Cache {
	return &memoryCache{
		entries: make(map[string]memoryEntry),
		cfg:     cfg,
		now:     time.Now,
	}
}

func (m *memoryCache) Get(_ context.Context, key string, value any) (bool, error) {
	m.mu.Lock()
	entry, ok := m.lookup(key)
	m.mu.Unlock()

	if !ok {
		return false, nil
	}

	if err := json.Unmarshal(entry.data, value); err != nil {
		return false, fmt.Errorf("failed to unmarshal cache data for key %s: %w", key, err)
	}

	return true, nil
}

func (m *memoryCache) Set(_ context.Context, key string, value any, ttl time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to marshal value for key %s: %w", key, err)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries[key] = memoryEntry{data: data, expiresAt: m.now().Add(m.ttl(ttl))}

	return nil
}

func (m *memoryCache) SetNX(_ context.Context, key string, value any, ttl time.Duration) (bool, error) {
	data, err := json.Marshal(value)
	if err != nil {
		return false, fmt.Errorf("failed to marshal value for key %s: %w", key, err)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.lookup(key); ok {
		return false, nil
	}
	m.entries[key] = memoryEntry{data: data, expiresAt: m.now().Add(m.ttl(ttl))}

	return true, nil
}

func (m *memoryCache) Delete(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.entries, key)
	return nil
}

func (m *memoryCache) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	clear(m.entries)
	return nil
}

// lookup must be called with mu held. Expired entries are dropped lazily.
func (m *memoryCache) lookup(key string) (memoryEntry, bool) {
	entry, ok := m.entries[key]
	if !ok {
		return memoryEntry{}, false
	}
	if !m.now().Before(entry.expiresAt) {
		delete(m.entries, key)
		return memoryEntry{}, false
	}
	return entry, true
}

func (m *memoryCache) ttl(ttl time.Duration) time.Duration {
	if ttl <= 0 {
		return m.cfg.DefaultTTL
	}
	return ttl
}
