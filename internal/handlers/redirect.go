// Copyright (c) 2026 BAR HIK. All rights reserved.

package handlers

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
)

// AffiliateRedirect resolves /go/{slug} against the product slots of all
// posts and 302s to the destination. Unknown slugs and lookup failures
// both land on the homepage instead of a 404; a broken affiliate link
// should never strand the visitor.
func (h *Handler) AffiliateRedirect(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")

	url, err := h.cms.ResolveAffiliate(r.Context(), slug)
	if err != nil {
		slog.Error("affiliate: resolve failed", "slug", slug, "error", err)
	}
	if url == "" {
		http.Redirect(w, r, "/", http.StatusFound)
		return
	}
	http.Redirect(w, r, url, http.StatusFound)
}
