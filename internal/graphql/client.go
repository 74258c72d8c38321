// Copyright (c) 2026 BAR HIK. All rights reserved.

// Package graphql implements the POST client used for every content read
// against the headless CMS. It classifies failures into transport, API,
// and parse errors so that callers can decide what is retryable, and it
// consults an optional Valkey-backed response cache so repeated queries
// within the revalidation window skip the network entirely.
package graphql

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/hikichi68/barhik/internal/cache"
)

// Client issues GraphQL POST requests to a single configured endpoint.
// The endpoint is validated at construction time, never read from ambient
// state inside request paths.
type Client struct {
	endpoint string
	http     *http.Client
	cache    *cache.QueryCache // nil disables caching
}

// New creates a Client for the given endpoint. qc may be nil, in which
// case every call hits the network.
func New(endpoint string, qc *cache.QueryCache) (*Client, error) {
	if endpoint == "" {
		return nil, fmt.Errorf("graphql: endpoint must be configured")
	}
	return &Client{
		endpoint: endpoint,
		http:     &http.Client{Timeout: 30 * time.Second},
		cache:    qc,
	}, nil
}

// request is the wire shape of a GraphQL POST body.
type request struct {
	Query     string         `json:"query"`
	Variables map[string]any `json:"variables"`
}

// envelope is the wire shape of a GraphQL response body.
type envelope struct {
	Data   json.RawMessage `json:"data"`
	Errors []struct {
		Message string `json:"message"`
	} `json:"errors"`
}

// Do executes a query with the given variables and unmarshals the response
// `data` object into out. A cached payload is used when available; fresh
// payloads are stored on success. Do never retries — that is the caller's
// choice (see DoRetry).
func (c *Client) Do(ctx context.Context, query string, variables map[string]any, out any) error {
	key := cache.Key(query, variables)
	if data, ok := c.cache.Get(ctx, key); ok {
		if err := json.Unmarshal(data, out); err == nil {
			return nil
		}
		// A stale entry that no longer matches the expected shape falls
		// through to a fresh fetch.
	}

	if variables == nil {
		variables = map[string]any{}
	}
	payload, err := json.Marshal(request{Query: query, Variables: variables})
	if err != nil {
		return fmt.Errorf("graphql: marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("graphql: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return &TransportError{Status: err.Error(), Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return &TransportError{StatusCode: resp.StatusCode, Status: resp.Status, Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &TransportError{StatusCode: resp.StatusCode, Status: http.StatusText(resp.StatusCode)}
	}

	var env envelope
	if err := json.Unmarshal(body, &env); err != nil {
		return &ParseError{Err: err}
	}

	if len(env.Errors) > 0 {
		msgs := make([]string, len(env.Errors))
		for i, e := range env.Errors {
			msgs[i] = e.Message
		}
		return &APIError{Messages: msgs}
	}

	if err := json.Unmarshal(env.Data, out); err != nil {
		return &ParseError{Err: err}
	}

	c.cache.Set(ctx, key, env.Data)
	return nil
}
