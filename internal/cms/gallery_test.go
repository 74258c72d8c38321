// Copyright (c) 2026 BAR HIK. All rights reserved.

package cms

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/hikichi68/barhik/internal/graphql"
)

const galleryBody = `{"data":{"photoGalleryItems":{"nodes":[
	{"databaseId": 1, "title": "Counter", "galleryDetails": {"imageField": {"node": {"sourceUrl": "https://cdn.example.com/counter.jpg", "altText": "the counter"}}}},
	{"databaseId": 2, "title": "Backbar", "galleryDetails": {"imageField": null}}
]}}}`

func TestAllGalleryItemsMaps(t *testing.T) {
	svc, _ := newFakeCMS(t, galleryBody)

	items, err := svc.AllGalleryItems(context.Background())
	if err != nil {
		t.Fatalf("AllGalleryItems: unexpected error: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("AllGalleryItems: got %d, want 2", len(items))
	}
	if items[0].Image.Alt != "the counter" {
		t.Errorf("image alt: got %q", items[0].Image.Alt)
	}
	if items[1].Image.URL != "" {
		t.Errorf("missing image field: got %q, want empty", items[1].Image.URL)
	}
}

func TestAllGalleryItemsRetriesTransientFailure(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) < 3 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		w.Write([]byte(galleryBody))
	}))
	defer srv.Close()

	gql, err := graphql.New(srv.URL, nil)
	if err != nil {
		t.Fatalf("graphql.New: %v", err)
	}
	svc := &Service{gql: gql, retryBase: time.Millisecond}

	items, err := svc.AllGalleryItems(context.Background())
	if err != nil {
		t.Fatalf("AllGalleryItems: unexpected error after recovery: %v", err)
	}
	if len(items) != 2 {
		t.Errorf("AllGalleryItems: got %d items, want 2", len(items))
	}
	if got := calls.Load(); got != 3 {
		t.Errorf("attempts: got %d, want 3", got)
	}
}

func TestAllGalleryItemsExhaustsRetries(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	gql, err := graphql.New(srv.URL, nil)
	if err != nil {
		t.Fatalf("graphql.New: %v", err)
	}
	svc := &Service{gql: gql, retryBase: time.Millisecond}

	if _, err := svc.AllGalleryItems(context.Background()); err == nil {
		t.Fatal("AllGalleryItems: expected error after exhausting retries")
	}
	if got := calls.Load(); got != 3 {
		t.Errorf("attempts: got %d, want 3", got)
	}
}
