package upstream

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"github.com/klauspost/compress/zstd"
	goredis "github.com/redis/go-redis/v9"

	"hd2api/internal/raw"
	"hd2api/internal/shared/errors"
	"hd2api/internal/shared/redis"
)

// Store holds encoded snapshots for a bounded time.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
}

// MemoryStore is the Store used when Redis is disabled.
type MemoryStore struct {
	mu      sync.Mutex
	entries map[string]memoryEntry
	now     func() time.Time
}

type memoryEntry struct {
	value   []byte
	expires time.Time
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{entries: make(map[string]memoryEntry), now: time.Now}
}

func (m *MemoryStore) Get(_ context.Context, key string) ([]byte, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	e, ok := m.entries[key]
	if !ok {
		return nil, false, nil
	}
	if !m.now().Before(e.expires) {
		delete(m.entries, key)
		return nil, false, nil
	}
	return e.value, true, nil
}

func (m *MemoryStore) Set(_ context.Context, key string, value []byte, ttl time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries[key] = memoryEntry{value: value, expires: m.now().Add(ttl)}
	return nil
}

// RedisStore keeps zstd-compressed snapshots in Redis.
type RedisStore struct {
	client  *redis.Client
	encoder *zstd.Encoder
	decoder *zstd.Decoder
}

func NewRedisStore(client *redis.Client) (*RedisStore, error) {
	enc, err := zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedDefault))
	if err != nil {
		return nil, errors.WrapInternal("failed to create zstd encoder", err)
	}
	dec, err := zstd.NewReader(nil)
	if err != nil {
		enc.Close()
		return nil, errors.WrapInternal("failed to create zstd decoder", err)
	}
	return &RedisStore{client: client, encoder: enc, decoder: dec}, nil
}

func (r *RedisStore) Get(ctx context.Context, key string) ([]byte, bool, error) {
	compressed, err := r.client.Get(ctx, key).Bytes()
	if err == goredis.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, errors.WrapExternal("redis get failed", err)
	}
	value, err := r.decoder.DecodeAll(compressed, nil)
	if err != nil {
		return nil, false, errors.WrapInternal("failed to decompress cached snapshot", err)
	}
	return value, true, nil
}

func (r *RedisStore) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	compressed := r.encoder.EncodeAll(value, nil)
	if err := r.client.Set(ctx, key, compressed, ttl).Err(); err != nil {
		return errors.WrapExternal("redis set failed", err)
	}
	return nil
}

// Cached serves snapshots from a Store for ttl before asking the wrapped
// provider again. Store failures degrade to a direct fetch.
type Cached struct {
	inner Provider
	store Store
	ttl   time.Duration
	mu    sync.Mutex
}

func NewCached(inner Provider, store Store, ttl time.Duration) *Cached {
	return &Cached{inner: inner, store: store, ttl: ttl}
}

func (c *Cached) Name() string { return c.inner.Name() }

func (c *Cached) key() string { return "hd2api:snapshot:" + c.inner.Name() }

func (c *Cached) Fetch(ctx context.Context) (*raw.Snapshot, error) {
	logger := slog.With("component", "upstream_cache", "operation", "fetch", "provider", c.inner.Name())

	// One fetch at a time.
	c.mu.Lock()
	defer c.mu.Unlock()

	data, ok, err := c.store.Get(ctx, c.key())
	if err != nil {
		logger.Warn("Snapshot cache read failed", "error", err)
	}
	if ok {
		var snap raw.Snapshot
		decodeErr := json.Unmarshal(data, &snap)
		if decodeErr == nil {
			logger.Debug("Snapshot served from cache")
			return &snap, nil
		}
		logger.Warn("Discarding undecodable cached snapshot", "error", decodeErr)
	}

	snap, err := c.inner.Fetch(ctx)
	if err != nil {
		return nil, err
	}

	encoded, err := json.Marshal(snap)
	if err != nil {
		logger.Warn("Failed to encode snapshot for cache", "error", err)
		return snap, nil
	}
	if err := c.store.Set(ctx, c.key(), encoded, c.ttl); err != nil {
		logger.Warn("Snapshot cache write failed", "error", err)
	}
	return snap, nil
}
