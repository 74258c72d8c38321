// Copyright (c) 2026 BAR HIK. All rights reserved.

// Package router assembles the chi route table and middleware stack.
package router

import (
	"io/fs"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/hikichi68/barhik/internal/handlers"
	"github.com/hikichi68/barhik/internal/middleware"
)

// New builds the full route table. The rate limiter applies only to the
// /api relays; page traffic is unmetered.
func New(h *handlers.Handler, limiter *middleware.RateLimiter, staticFS fs.FS) chi.Router {
	r := chi.NewRouter()

	r.Use(middleware.Recoverer)
	r.Use(middleware.Logger)
	r.Use(middleware.SecureHeaders)

	r.Get("/health", h.Health)

	r.Get("/", h.Home)
	r.Get("/menu", h.Menu)
	r.Get("/menu/category/{slug}", h.MenuCategory)
	r.Get("/menu/detail/{slug}", h.MenuDetail)
	r.Get("/blog", h.BlogIndex)
	r.Get("/blog/category/{slug}", h.BlogCategory)
	r.Get("/blog/{slug}", h.BlogPost)
	r.Get("/gallery", h.Gallery)
	r.Get("/search", h.Search)
	r.Get("/contact", h.ContactPage)

	r.Get("/about", h.StaticPage("about"))
	r.Get("/access", h.StaticPage("access"))
	r.Get("/privacy-policy", h.StaticPage("privacy-policy"))
	r.Get("/terms-of-service", h.StaticPage("terms-of-service"))

	r.Get("/go/{slug}", h.AffiliateRedirect)

	r.Get("/sitemap.xml", h.Sitemap)
	r.Get("/robots.txt", h.Robots)

	r.Route("/api", func(api chi.Router) {
		if limiter != nil {
			api.Use(limiter.Middleware)
		}
		api.Post("/contact", h.Contact)
		api.Post("/chat", h.Chat)
	})

	r.Handle("/static/*", http.StripPrefix("/static/",
		http.FileServer(http.FS(staticFS))))

	r.NotFound(h.NotFound)

	return r
}
