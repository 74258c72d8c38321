// Copyright (c) 2026 BAR HIK. All rights reserved.

// Package pages serves the static site pages that are not CMS content:
// about, access, and the legal pages. They ship with the binary as
// Markdown and are converted once at startup.
package pages

import (
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"strings"

	"github.com/hikichi68/barhik/internal/markdown"
)

//go:embed content/*.md
var contentFS embed.FS

// Page is one rendered static page.
type Page struct {
	Slug  string
	Title string
	Body  template.HTML
}

// Load parses and converts every embedded page. The first top-level
// heading becomes the page title.
func Load() (map[string]Page, error) {
	entries, err := fs.ReadDir(contentFS, "content")
	if err != nil {
		return nil, fmt.Errorf("read embedded pages: %w", err)
	}

	out := make(map[string]Page, len(entries))
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".md") {
			continue
		}
		src, err := fs.ReadFile(contentFS, "content/"+e.Name())
		if err != nil {
			return nil, fmt.Errorf("read page %s: %w", e.Name(), err)
		}

		slug := strings.TrimSuffix(e.Name(), ".md")
		body, err := markdown.ToHTML(string(src))
		if err != nil {
			return nil, fmt.Errorf("render page %s: %w", e.Name(), err)
		}

		out[slug] = Page{
			Slug:  slug,
			Title: firstHeading(string(src), slug),
			Body:  template.HTML(body),
		}
	}
	return out, nil
}

// firstHeading returns the text of the first "# " heading, or the
// fallback when the page has none.
func firstHeading(src, fallback string) string {
	for _, line := range strings.Split(src, "\n") {
		line = strings.TrimSpace(line)
		if rest, ok := strings.CutPrefix(line, "# "); ok {
			return strings.TrimSpace(rest)
		}
	}
	return fallback
}
