// Copyright (c) 2026 BAR HIK. All rights reserved.

package handlers

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/hikichi68/barhik/internal/models"
	"github.com/hikichi68/barhik/internal/render"
)

// Home renders the landing page: recommended menu items and recent posts.
func (h *Handler) Home(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	recommended, err := h.cms.RecommendedMenuItems(ctx)
	if err != nil {
		slog.Error("home: recommended menu fetch failed", "error", err)
		recommended = nil
	}
	recent, err := h.cms.RecentPosts(ctx)
	if err != nil {
		slog.Error("home: recent posts fetch failed", "error", err)
		recent = nil
	}

	h.renderer.Render(w, http.StatusOK, "home", &render.PageData{
		Description: "BAR HIK — a quiet counter bar in Tokyo. Cocktails, whisky, and the stories behind them.",
		Path:        r.URL.Path,
		Data: map[string]any{
			"Recommended": recommended,
			"RecentPosts": recent,
		},
	})
}

// BlogIndex renders the article card grid with the category sidebar.
func (h *Handler) BlogIndex(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	cards, err := h.cms.BlogCards(ctx)
	if err != nil {
		slog.Error("blog: card fetch failed", "error", err)
		cards = nil
	}
	categories, err := h.cms.AllCategories(ctx)
	if err != nil {
		slog.Error("blog: category fetch failed", "error", err)
		categories = nil
	}
	recent, err := h.cms.RecentPosts(ctx)
	if err != nil {
		slog.Error("blog: recent posts fetch failed", "error", err)
		recent = nil
	}

	h.renderer.Render(w, http.StatusOK, "blog", &render.PageData{
		Title: "Blog",
		Path:  r.URL.Path,
		Data: map[string]any{
			"Cards":      cards,
			"Categories": categories,
			"Recent":     recent,
		},
	})
}

// BlogPost renders one article. Unknown slugs get the 404 page; a failed
// fetch is treated the same way rather than serving an empty article.
func (h *Handler) BlogPost(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")

	post, err := h.cms.PostBySlug(r.Context(), slug)
	if err != nil {
		slog.Error("blog: post fetch failed", "slug", slug, "error", err)
	}
	if post == nil {
		h.NotFound(w, r)
		return
	}

	h.renderer.Render(w, http.StatusOK, "post", &render.PageData{
		Title:       post.Title,
		Description: string(post.Excerpt),
		Path:        r.URL.Path,
		Data:        map[string]any{"Post": post},
	})
}

// BlogCategory renders the article list for one category slug.
func (h *Handler) BlogCategory(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	slug := chi.URLParam(r, "slug")

	posts, err := h.cms.PostsByCategory(ctx, slug)
	if err != nil {
		slog.Error("blog: category posts fetch failed", "slug", slug, "error", err)
		posts = nil
	}

	// The display name comes from the category listing; fall back to the
	// slug when the term is unknown or the listing fetch fails.
	name := slug
	if categories, err := h.cms.AllCategories(ctx); err == nil {
		for _, c := range categories {
			if c.Slug == slug {
				name = c.Name
				break
			}
		}
	}

	h.renderer.Render(w, http.StatusOK, "category", &render.PageData{
		Title: name,
		Path:  r.URL.Path,
		Data: map[string]any{
			"CategoryName": name,
			"Posts":        posts,
		},
	})
}

// Menu renders the full menu with a category sidebar derived from the
// items themselves, in order of first appearance.
func (h *Handler) Menu(w http.ResponseWriter, r *http.Request) {
	items, err := h.cms.AllMenuItems(r.Context())
	if err != nil {
		slog.Error("menu: fetch failed", "error", err)
		items = nil
	}

	h.renderer.Render(w, http.StatusOK, "menu", &render.PageData{
		Title: "Menu",
		Path:  r.URL.Path,
		Data: map[string]any{
			"Items":      items,
			"Categories": menuCategories(items),
		},
	})
}

// MenuCategory renders the menu filtered to one category slug.
func (h *Handler) MenuCategory(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")

	items, err := h.cms.MenuItemsByCategory(r.Context(), slug)
	if err != nil {
		slog.Error("menu: category fetch failed", "slug", slug, "error", err)
		items = nil
	}

	name := slug
	for _, item := range items {
		for _, c := range item.Categories {
			if c.Slug == slug {
				name = c.Name
				break
			}
		}
	}

	h.renderer.Render(w, http.StatusOK, "menu_category", &render.PageData{
		Title: "Menu: " + name,
		Path:  r.URL.Path,
		Data: map[string]any{
			"CategoryName": name,
			"Items":        items,
		},
	})
}

// MenuDetail renders one menu item's page.
func (h *Handler) MenuDetail(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")

	item, err := h.cms.MenuItemBySlug(r.Context(), slug)
	if err != nil {
		slog.Error("menu: detail fetch failed", "slug", slug, "error", err)
	}
	if item == nil {
		h.NotFound(w, r)
		return
	}

	h.renderer.Render(w, http.StatusOK, "menu_detail", &render.PageData{
		Title: item.Title,
		Path:  r.URL.Path,
		Data:  map[string]any{"Item": item},
	})
}

// Gallery renders the photo gallery.
func (h *Handler) Gallery(w http.ResponseWriter, r *http.Request) {
	items, err := h.cms.AllGalleryItems(r.Context())
	if err != nil {
		slog.Error("gallery: fetch failed", "error", err)
		items = nil
	}

	h.renderer.Render(w, http.StatusOK, "gallery", &render.PageData{
		Title: "Gallery",
		Path:  r.URL.Path,
		Data:  map[string]any{"Items": items},
	})
}

// Search renders free-text search results. Result pages are noindexed.
func (h *Handler) Search(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")

	var results []models.SearchResult
	if query != "" {
		var err error
		results, err = h.cms.SearchPosts(r.Context(), query)
		if err != nil {
			slog.Error("search: fetch failed", "query", query, "error", err)
			results = nil
		}
	}

	h.renderer.Render(w, http.StatusOK, "search", &render.PageData{
		Title:   "Search",
		Path:    r.URL.Path,
		NoIndex: true,
		Data: map[string]any{
			"Query":   query,
			"Results": results,
		},
	})
}

// ContactPage renders the contact form.
func (h *Handler) ContactPage(w http.ResponseWriter, r *http.Request) {
	h.renderer.Render(w, http.StatusOK, "contact", &render.PageData{
		Title: "Contact",
		Path:  r.URL.Path,
		Data:  map[string]any{},
	})
}

// StaticPage serves one of the embedded Markdown pages by slug.
func (h *Handler) StaticPage(slug string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		page, ok := h.pages[slug]
		if !ok {
			h.NotFound(w, r)
			return
		}
		h.renderer.Render(w, http.StatusOK, "static", &render.PageData{
			Title: page.Title,
			Path:  r.URL.Path,
			Data:  map[string]any{"Body": page.Body},
		})
	}
}

// NotFound renders the site 404 page.
func (h *Handler) NotFound(w http.ResponseWriter, r *http.Request) {
	h.renderer.Render(w, http.StatusNotFound, "404", &render.PageData{
		Title: "Page not found",
		Path:  r.URL.Path,
		Data:  map[string]any{},
	})
}

// Health answers liveness probes.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("ok"))
}

// menuCategories collects the distinct categories across the items,
// keeping first-appearance order.
func menuCategories(items []models.MenuItem) []models.CategoryRef {
	seen := make(map[string]bool)
	var out []models.CategoryRef
	for _, item := range items {
		for _, c := range item.Categories {
			if seen[c.Slug] {
				continue
			}
			seen[c.Slug] = true
			out = append(out, c)
		}
	}
	return out
}
