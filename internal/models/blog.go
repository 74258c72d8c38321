// Copyright (c) 2026 BAR HIK. All rights reserved.

// Package models defines the typed view-models consumed by the template
// layer. Every value is an immutable snapshot of remote CMS state, mapped
// and sanitized by internal/cms; nothing here has a local write path.
// Fields typed template.HTML have already passed through the sanitizer.
package models

import (
	"html/template"
	"time"
)

// CategoryRef is a category membership reference carried on a post or
// menu item.
type CategoryRef struct {
	Name string
	Slug string
}

// Category is a blog category as shown in sidebars. Only categories with
// Count > 0 ever reach presentation.
type Category struct {
	Name  string
	Slug  string
	Count int
}

// Image is a URL + alt-text pair from the CMS media library.
type Image struct {
	URL string
	Alt string
}

// PostRef is a slug + date pair, enough to emit a sitemap entry.
type PostRef struct {
	Slug string
	Date time.Time
}

// RecentPost is the slim shape used by the recent-posts sidebar widget.
type RecentPost struct {
	Title      string
	Slug       string
	Date       time.Time
	AuthorName string
}

// PostListItem is one entry of a post listing (blog index, category page).
type PostListItem struct {
	ID            int
	Slug          string
	Title         string
	Date          time.Time
	AuthorName    string
	Excerpt       template.HTML
	CardExcerpt   template.HTML // defaults to Excerpt when the CMS field is empty
	FeaturedImage *Image
	Categories    []CategoryRef
}

// PostCard is the flattened shape used on card grids: defaulting has been
// applied (placeholder image, first category name).
type PostCard struct {
	ID           int
	Title        string
	Slug         string
	Date         time.Time
	AuthorName   string
	ImageURL     string
	CategoryName string // empty when the post has no category
}

// Product is one recommended-product slot from a post's review fields.
type Product struct {
	Name          string
	ImageURL      string
	LinkURL       string
	ImpressionTag string
	RedirectSlug  string
	CatchCopy     string
	Rating        float64
}

// KnowledgeFields carries the bar-knowledge extras some posts have.
type KnowledgeFields struct {
	ProOnePoint       string
	RecipeIngredients string
	OriginHistory     string
	AlcoholProof      string
}

// GlobalFields carries the per-post banner and card presentation extras.
type GlobalFields struct {
	BannerURL       string
	BannerImageURL  string
	CardExcerpt     string
	ExperienceLevel string
}

// PostDetail is the full shape rendered on a post page. Products holds
// only the review slots that are actually populated, in slot order.
type PostDetail struct {
	ID            int
	Slug          string
	Title         string
	Date          time.Time
	AuthorName    string
	Content       template.HTML
	Excerpt       template.HTML
	FeaturedImage *Image
	Categories    []CategoryRef
	Global        *GlobalFields
	Products      []Product
	Knowledge     *KnowledgeFields
}

// HasCategory reports whether the post belongs to the category with the
// given slug (exact match).
func (p *PostDetail) HasCategory(slug string) bool {
	for _, c := range p.Categories {
		if c.Slug == slug {
			return true
		}
	}
	return false
}

// SearchResult is one hit of the free-text search.
type SearchResult struct {
	Title    string
	Slug     string
	Date     time.Time
	ImageURL string // empty when the post has no featured image
}
