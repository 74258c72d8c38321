// Copyright (c) 2026 BAR HIK. All rights reserved.

// query.go provides a Valkey-backed cache for raw GraphQL `data` payloads.
// The CMS is the sole writer of the underlying content, so responses can be
// reused for a fixed revalidation window without any invalidation protocol:
// entries simply expire and the next request re-fetches.
package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	// queryKeyPrefix is the Valkey key prefix for cached GraphQL responses.
	queryKeyPrefix = "gql:"

	// DefaultQueryTTL is the revalidation lifetime for a fetched response.
	DefaultQueryTTL = time.Hour
)

// QueryCache stores raw GraphQL data payloads in Valkey, keyed by a digest
// of the query document and its variables. A nil *QueryCache is valid and
// behaves as a cache that never hits, so callers need no nil checks.
type QueryCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewQueryCache creates a query cache backed by the given Valkey client.
func NewQueryCache(client *redis.Client, ttl time.Duration) *QueryCache {
	if ttl == 0 {
		ttl = DefaultQueryTTL
	}
	return &QueryCache{client: client, ttl: ttl}
}

// Key derives the cache key for a query document and its variables.
// encoding/json sorts map keys, so equal variable sets produce equal keys
// regardless of construction order.
func Key(query string, variables map[string]any) string {
	h := sha256.New()
	h.Write([]byte(query))
	if len(variables) > 0 {
		vars, err := json.Marshal(variables)
		if err == nil {
			h.Write(vars)
		}
	}
	return hex.EncodeToString(h.Sum(nil))
}

// Get retrieves a cached data payload. Returns false on miss or any cache
// error; a broken cache must never break a fetch.
func (qc *QueryCache) Get(ctx context.Context, key string) ([]byte, bool) {
	if qc == nil || qc.client == nil {
		return nil, false
	}
	val, err := qc.client.Get(ctx, queryKeyPrefix+key).Bytes()
	if err == redis.Nil {
		return nil, false
	}
	if err != nil {
		slog.Warn("query cache get error", "key", key, "error", err)
		return nil, false
	}
	slog.Debug("query cache hit", "key", key)
	return val, true
}

// Set stores a data payload with the configured TTL.
func (qc *QueryCache) Set(ctx context.Context, key string, data []byte) {
	if qc == nil || qc.client == nil {
		return
	}
	if err := qc.client.Set(ctx, queryKeyPrefix+key, data, qc.ttl).Err(); err != nil {
		slog.Warn("query cache set error", "key", key, "error", err)
	}
}

// InvalidateAll removes every cached response by scanning for the prefix.
// Exposed for operational use when content must show up before the window
// expires (e.g. after a big CMS edit).
func (qc *QueryCache) InvalidateAll(ctx context.Context) {
	if qc == nil || qc.client == nil {
		return
	}
	var cursor uint64
	var deleted int
	for {
		keys, nextCursor, err := qc.client.Scan(ctx, cursor, queryKeyPrefix+"*", 100).Result()
		if err != nil {
			slog.Warn("query cache scan error", "error", err)
			return
		}
		if len(keys) > 0 {
			if err := qc.client.Del(ctx, keys...).Err(); err != nil {
				slog.Warn("query cache bulk delete error", "error", err)
			}
			deleted += len(keys)
		}
		cursor = nextCursor
		if cursor == 0 {
			break
		}
	}
	if deleted > 0 {
		slog.Info("query cache fully cleared", "deleted", deleted)
	}
}
