// Copyright (c) 2026 BAR HIK. All rights reserved.

package graphql

import (
	"context"
	"errors"
	"time"

	"github.com/sethvargo/go-retry"
)

const (
	// maxFetchAttempts bounds how many times a retried fetch runs in total.
	maxFetchAttempts = 3

	// DefaultBackoffBase is the first retry delay; it doubles per attempt.
	DefaultBackoffBase = 1 * time.Second
)

// DoRetry is Do wrapped in bounded exponential backoff. Only transport
// failures are retried: an APIError means the query itself is wrong and
// a ParseError means the endpoint is not speaking GraphQL, and repeating
// either changes nothing. base exists so tests can shrink the delays;
// pass 0 for the default.
func (c *Client) DoRetry(ctx context.Context, base time.Duration, query string, variables map[string]any, out any) error {
	if base <= 0 {
		base = DefaultBackoffBase
	}
	b := retry.WithMaxRetries(maxFetchAttempts-1, retry.NewExponential(base))
	return retry.Do(ctx, b, func(ctx context.Context) error {
		err := c.Do(ctx, query, variables, out)
		var te *TransportError
		if errors.As(err, &te) {
			return retry.RetryableError(err)
		}
		return err
	})
}
