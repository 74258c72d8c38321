// Copyright (c) 2026 BAR HIK. All rights reserved.

// cms_test.go provides shared test infrastructure: a fake CMS endpoint
// that answers every GraphQL POST with a fixed body.
package cms

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/hikichi68/barhik/internal/graphql"
)

// newFakeCMS starts a server answering every request with body, and
// returns a Service pointed at it. The caller gets the server back to
// Close or inspect.
func newFakeCMS(t *testing.T, body string) (*Service, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)

	gql, err := graphql.New(srv.URL, nil)
	if err != nil {
		t.Fatalf("graphql.New: %v", err)
	}
	return &Service{gql: gql, retryBase: time.Millisecond}, srv
}

// newFailingCMS starts a server that always answers with the given HTTP
// status and returns a Service pointed at it.
func newFailingCMS(t *testing.T, status int) *Service {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(status)
	}))
	t.Cleanup(srv.Close)

	gql, err := graphql.New(srv.URL, nil)
	if err != nil {
		t.Fatalf("graphql.New: %v", err)
	}
	return &Service{gql: gql, retryBase: time.Millisecond}
}
