package render

import (
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/hikichi68/barhik/internal/models"
)

func TestNewParsesAllTemplates(t *testing.T) {
	r, err := New()
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	for _, page := range []string{
		"home", "blog", "post", "category",
		"menu", "menu_category", "menu_detail",
		"gallery", "search", "contact", "static", "404",
	} {
		if _, ok := r.templates[page]; !ok {
			t.Errorf("template %q not parsed", page)
		}
	}
}

func TestRenderWritesStatusAndBody(t *testing.T) {
	r, err := New()
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	w := httptest.NewRecorder()
	r.Render(w, 200, "home", &PageData{
		Title: "BAR HIK",
		Path:  "/",
		Data: map[string]any{
			"Recommended": []*models.MenuItem{},
			"RecentPosts": []models.RecentPost{},
		},
	})

	if w.Code != 200 {
		t.Errorf("status = %d, want 200", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); !strings.Contains(ct, "text/html") {
		t.Errorf("Content-Type = %q, want text/html", ct)
	}
	body := w.Body.String()
	if !strings.Contains(body, "<title>BAR HIK | The Bartender's Memoir</title>") {
		t.Errorf("body missing title, got:\n%s", body)
	}
	if !strings.Contains(body, "No articles found.") {
		t.Error("empty post list should show the empty state")
	}
}

func TestRenderUnknownTemplate(t *testing.T) {
	r, err := New()
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	w := httptest.NewRecorder()
	r.Render(w, 200, "no-such-page", nil)
	if w.Code != 500 {
		t.Errorf("status = %d, want 500", w.Code)
	}
}

func TestRenderSearchNoIndex(t *testing.T) {
	r, err := New()
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	w := httptest.NewRecorder()
	r.Render(w, 200, "search", &PageData{
		Title:   "Search",
		NoIndex: true,
		Data: map[string]any{
			"Query":   "gin",
			"Results": []models.SearchResult{},
		},
	})
	if !strings.Contains(w.Body.String(), `name="robots" content="noindex"`) {
		t.Error("search page should carry a noindex meta tag")
	}
}

func TestFormatDateFunc(t *testing.T) {
	r, err := New()
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	w := httptest.NewRecorder()
	date := time.Date(2025, 3, 9, 12, 0, 0, 0, time.UTC)
	r.Render(w, 200, "category", &PageData{
		Title: "Category",
		Data: map[string]any{
			"CategoryName": "Cocktails",
			"Posts": []models.PostListItem{
				{Slug: "negroni", Title: "Negroni Week", Date: date},
			},
		},
	})
	if !strings.Contains(w.Body.String(), "2025.03.09") {
		t.Errorf("date not formatted, got:\n%s", w.Body.String())
	}
}
