// Copyright (c) 2026 BAR HIK. All rights reserved.

// Package render provides HTML template rendering for the public site.
// Every page template is paired with the shared base layout; both come
// from the embedded filesystem so the binary is self-contained.
package render

import (
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"log/slog"
	"net/http"
	"strings"
	"time"
)

//go:embed templates/site/*.html
var siteFS embed.FS

// PageData holds all data passed to site templates.
type PageData struct {
	Title       string         // Page title for the <title> tag
	Description string         // Meta description
	Path        string         // Request path, for nav highlighting
	NoIndex     bool           // Emit a robots noindex meta tag (search results)
	Data        map[string]any // Page-specific data
}

// Renderer handles template parsing and execution for site pages.
type Renderer struct {
	templates map[string]*template.Template
}

// New creates a Renderer by parsing all site templates from the embedded
// filesystem.
func New() (*Renderer, error) {
	funcMap := template.FuncMap{
		// formatDate renders a post date; zero times render empty rather
		// than 0001-01-01.
		"formatDate": func(t time.Time) string {
			if t.IsZero() {
				return ""
			}
			return t.Format("2006.01.02")
		},
		"yen": func(p float64) string {
			return fmt.Sprintf("¥%.0f", p)
		},
		// stars renders a 0-5 rating as filled and empty stars.
		"stars": func(r float64) string {
			full := int(r)
			if full > 5 {
				full = 5
			}
			if full < 0 {
				full = 0
			}
			return strings.Repeat("★", full) + strings.Repeat("☆", 5-full)
		},
		"activeClass": func(current, target string) string {
			if current == target || (target != "/" && strings.HasPrefix(current, target)) {
				return "active"
			}
			return ""
		},
	}

	entries, err := fs.ReadDir(siteFS, "templates/site")
	if err != nil {
		return nil, fmt.Errorf("read embedded templates: %w", err)
	}

	r := &Renderer{templates: make(map[string]*template.Template)}
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || name == "base.html" {
			continue
		}
		tmpl, err := template.New("base.html").Funcs(funcMap).ParseFS(siteFS,
			"templates/site/base.html",
			"templates/site/"+name,
		)
		if err != nil {
			return nil, fmt.Errorf("parse template %s: %w", name, err)
		}
		r.templates[strings.TrimSuffix(name, ".html")] = tmpl
	}

	return r, nil
}

// Render executes a page template with the base layout and writes the
// result. Template failures after headers are committed can only be
// logged.
func (r *Renderer) Render(w http.ResponseWriter, status int, page string, data *PageData) {
	tmpl, ok := r.templates[page]
	if !ok {
		slog.Error("unknown template", "page", page)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	if data == nil {
		data = &PageData{}
	}
	if data.Data == nil {
		data.Data = map[string]any{}
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := tmpl.ExecuteTemplate(w, "base.html", data); err != nil {
		slog.Error("render page failed", "page", page, "error", err)
	}
}
