// Copyright (c) 2026 BAR HIK. All rights reserved.

package cache

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
)

// testValkeyClient returns a Redis client for tests.
// Skips if Valkey is unavailable.
func testValkeyClient(t *testing.T) *redis.Client {
	t.Helper()

	host := envOr("VALKEY_HOST", "localhost")
	port := envOr("VALKEY_PORT", "6379")
	password := os.Getenv("VALKEY_PASSWORD")

	client := redis.NewClient(&redis.Options{
		Addr:     host + ":" + port,
		Password: password,
		DB:       15, // Use DB 15 for tests.
	})

	ctx := context.Background()
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		t.Skipf("skipping integration test: Valkey not reachable: %v", err)
	}

	t.Cleanup(func() {
		keys, _ := client.Keys(ctx, "gql:*").Result()
		if len(keys) > 0 {
			client.Del(ctx, keys...)
		}
		client.Close()
	})

	return client
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func TestKeyDeterministic(t *testing.T) {
	a := Key("query A { x }", map[string]any{"slug": "gin", "first": 10})
	b := Key("query A { x }", map[string]any{"first": 10, "slug": "gin"})
	if a != b {
		t.Errorf("Key: same query+variables produced different keys: %q vs %q", a, b)
	}

	c := Key("query A { x }", map[string]any{"slug": "whisky"})
	if a == c {
		t.Error("Key: different variables produced the same key")
	}

	d := Key("query B { y }", nil)
	e := Key("query B { y }", map[string]any{})
	if d != e {
		t.Errorf("Key: nil and empty variables should match: %q vs %q", d, e)
	}
}

func TestNilQueryCacheIsSafe(t *testing.T) {
	var qc *QueryCache
	ctx := context.Background()

	if _, ok := qc.Get(ctx, "anything"); ok {
		t.Error("nil cache Get: expected miss")
	}
	// Must not panic.
	qc.Set(ctx, "anything", []byte(`{"posts":null}`))
	qc.InvalidateAll(ctx)
}

func TestQueryCacheSetAndGet(t *testing.T) {
	client := testValkeyClient(t)
	qc := NewQueryCache(client, 1*time.Minute)
	ctx := context.Background()

	key := Key("query { posts { nodes { slug } } }", nil)
	payload := []byte(`{"posts":{"nodes":[{"slug":"old-fashioned"}]}}`)

	if _, ok := qc.Get(ctx, key); ok {
		t.Fatal("Get before Set: expected miss")
	}

	qc.Set(ctx, key, payload)

	got, ok := qc.Get(ctx, key)
	if !ok {
		t.Fatal("Get after Set: expected hit")
	}
	if string(got) != string(payload) {
		t.Errorf("Get: got %q, want %q", got, payload)
	}
}

func TestQueryCacheInvalidateAll(t *testing.T) {
	client := testValkeyClient(t)
	qc := NewQueryCache(client, 1*time.Minute)
	ctx := context.Background()

	qc.Set(ctx, "one", []byte("1"))
	qc.Set(ctx, "two", []byte("2"))

	qc.InvalidateAll(ctx)

	if _, ok := qc.Get(ctx, "one"); ok {
		t.Error("Get after InvalidateAll: expected miss for key one")
	}
	if _, ok := qc.Get(ctx, "two"); ok {
		t.Error("Get after InvalidateAll: expected miss for key two")
	}
}
