// Copyright (c) 2026 BAR HIK. All rights reserved.

package graphql

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"
)

const testBackoff = time.Millisecond

func TestDoRetryStopsAfterMaxAttempts(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL)

	var out map[string]any
	err := c.DoRetry(context.Background(), testBackoff, "query { photoGalleryItems { nodes { title } } }", nil, &out)

	var te *TransportError
	if !errors.As(err, &te) {
		t.Fatalf("DoRetry: got %T (%v), want *TransportError after exhaustion", err, err)
	}
	if got := calls.Load(); got != maxFetchAttempts {
		t.Errorf("attempts: got %d, want %d", got, maxFetchAttempts)
	}
}

func TestDoRetryRecoversFromTransientFailure(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) < 3 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		w.Write([]byte(`{"data":{"ok":true}}`))
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL)

	var out struct {
		OK bool `json:"ok"`
	}
	if err := c.DoRetry(context.Background(), testBackoff, "query { ok }", nil, &out); err != nil {
		t.Fatalf("DoRetry: unexpected error: %v", err)
	}
	if !out.OK {
		t.Error("DoRetry: response not unmarshalled after recovery")
	}
	if got := calls.Load(); got != 3 {
		t.Errorf("attempts: got %d, want 3", got)
	}
}

func TestDoRetryDoesNotRetryAPIError(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.Write([]byte(`{"errors":[{"message":"Cannot query field \"nope\""}]}`))
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL)

	var out map[string]any
	err := c.DoRetry(context.Background(), testBackoff, "query { nope }", nil, &out)

	var ae *APIError
	if !errors.As(err, &ae) {
		t.Fatalf("DoRetry: got %T (%v), want *APIError", err, err)
	}
	if got := calls.Load(); got != 1 {
		t.Errorf("attempts: got %d, want 1 (malformed queries are not transient)", got)
	}
}

func TestDoRetryDoesNotRetryParseError(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.Write([]byte("not json"))
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL)

	var out map[string]any
	err := c.DoRetry(context.Background(), testBackoff, "query { ok }", nil, &out)

	var pe *ParseError
	if !errors.As(err, &pe) {
		t.Fatalf("DoRetry: got %T (%v), want *ParseError", err, err)
	}
	if got := calls.Load(); got != 1 {
		t.Errorf("attempts: got %d, want 1", got)
	}
}
