// Copyright (c) 2026 BAR HIK. All rights reserved.

package graphql

import (
	"fmt"
	"strings"
)

// TransportError reports that the HTTP round-trip to the CMS failed:
// either the request never completed (StatusCode 0) or the endpoint
// answered with a non-2xx status. Transport failures are the only kind
// worth retrying.
type TransportError struct {
	StatusCode int    // 0 when the request never completed
	Status     string // HTTP status text, or the underlying error message
	Err        error  // underlying network error, if any
}

func (e *TransportError) Error() string {
	if e.StatusCode == 0 {
		return fmt.Sprintf("graphql: request failed: %s", e.Status)
	}
	return fmt.Sprintf("graphql: request failed: %d %s", e.StatusCode, e.Status)
}

func (e *TransportError) Unwrap() error { return e.Err }

// APIError reports that the CMS answered 2xx but the response carried a
// non-empty errors array. These are malformed-query or schema problems,
// not transient faults, and must not be retried.
type APIError struct {
	Messages []string
}

func (e *APIError) Error() string {
	return "graphql: api errors: " + strings.Join(e.Messages, ", ")
}

// ParseError reports a response body that could not be decoded as the
// expected GraphQL envelope.
type ParseError struct {
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("graphql: malformed response: %v", e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }
