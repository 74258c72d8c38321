// Copyright (c) 2026 BAR HIK. All rights reserved.

// Package handlers contains the HTTP handlers for the public site and
// the JSON relay endpoints. Content handlers degrade to empty: when a
// CMS list fetch fails the page still renders with its empty state, and
// the failure is logged here at the boundary.
package handlers

import (
	"github.com/hikichi68/barhik/internal/cms"
	"github.com/hikichi68/barhik/internal/pages"
	"github.com/hikichi68/barhik/internal/relay"
	"github.com/hikichi68/barhik/internal/render"
)

// Handler bundles the dependencies shared by all site handlers.
type Handler struct {
	cms      *cms.Service
	renderer *render.Renderer
	pages    map[string]pages.Page
	contact  *relay.ContactClient // nil when the CF7 relay is not configured
	chat     *relay.ChatClient    // nil when the Dify relay is not configured
	baseURL  string
}

// New wires the handler set. contact and chat may be nil; their
// endpoints then answer 500 with a configuration error.
func New(
	cmsSvc *cms.Service,
	renderer *render.Renderer,
	staticPages map[string]pages.Page,
	contact *relay.ContactClient,
	chat *relay.ChatClient,
	siteBaseURL string,
) *Handler {
	return &Handler{
		cms:      cmsSvc,
		renderer: renderer,
		pages:    staticPages,
		contact:  contact,
		chat:     chat,
		baseURL:  siteBaseURL,
	}
}
