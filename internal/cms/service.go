// Copyright (c) 2026 BAR HIK. All rights reserved.

// Package cms maps raw CMS responses into the typed view-models the
// template layer consumes. One method per entity family, each issuing a
// single fixed query. Mappers return errors; the degrade-to-empty policy
// lives at the handler boundary so callers (and tests) can tell a failed
// fetch from genuinely empty content.
package cms

import (
	"time"

	"github.com/hikichi68/barhik/internal/graphql"
)

// PlaceholderImageURL substitutes for a missing featured image on cards.
const PlaceholderImageURL = "https://placehold.co/600x400/png?text=No+Image"

// Service is the content-read facade over the GraphQL client.
type Service struct {
	gql       *graphql.Client
	retryBase time.Duration // backoff base for the retried fetches
}

// New creates a Service using the default retry backoff.
func New(gql *graphql.Client) *Service {
	return &Service{gql: gql, retryBase: graphql.DefaultBackoffBase}
}
