// Copyright (c) 2026 BAR HIK. All rights reserved.

package handlers

import (
	"encoding/xml"
	"fmt"
	"log/slog"
	"net/http"
	"time"
)

// fixedRoutes are the crawlable pages that exist regardless of CMS
// content. Paths under /go/ are deliberately absent.
var fixedRoutes = []string{
	"/",
	"/menu",
	"/blog",
	"/gallery",
	"/contact",
	"/about",
	"/access",
	"/privacy-policy",
	"/terms-of-service",
}

type sitemapURL struct {
	Loc     string `xml:"loc"`
	LastMod string `xml:"lastmod,omitempty"`
}

type sitemapURLSet struct {
	XMLName xml.Name     `xml:"urlset"`
	Xmlns   string       `xml:"xmlns,attr"`
	URLs    []sitemapURL `xml:"url"`
}

// Sitemap emits sitemap.xml: the fixed routes plus one entry per post,
// dated by publish date. If the post listing fails the fixed routes are
// still served.
func (h *Handler) Sitemap(w http.ResponseWriter, r *http.Request) {
	set := sitemapURLSet{Xmlns: "http://www.sitemaps.org/schemas/sitemap/0.9"}

	now := time.Now().UTC().Format("2006-01-02")
	for _, route := range fixedRoutes {
		set.URLs = append(set.URLs, sitemapURL{Loc: h.baseURL + route, LastMod: now})
	}

	posts, err := h.cms.AllPostSlugs(r.Context())
	if err != nil {
		slog.Error("sitemap: post listing failed", "error", err)
	}
	for _, p := range posts {
		u := sitemapURL{Loc: h.baseURL + "/blog/" + p.Slug}
		if !p.Date.IsZero() {
			u.LastMod = p.Date.Format("2006-01-02")
		}
		set.URLs = append(set.URLs, u)
	}

	w.Header().Set("Content-Type", "application/xml; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	fmt.Fprint(w, xml.Header)
	if err := xml.NewEncoder(w).Encode(set); err != nil {
		slog.Error("sitemap: encode failed", "error", err)
	}
}

// Robots emits robots.txt. The affiliate redirects under /go/ must stay
// out of search indexes.
func (h *Handler) Robots(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	fmt.Fprintf(w, "User-agent: *\nAllow: /\nDisallow: /go/\n\nSitemap: %s/sitemap.xml\n", h.baseURL)
}
