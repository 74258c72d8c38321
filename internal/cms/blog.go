// Copyright (c) 2026 BAR HIK. All rights reserved.

package cms

import (
	"context"
	"fmt"
	"html/template"
	"log/slog"

	"github.com/hikichi68/barhik/internal/models"
	"github.com/hikichi68/barhik/internal/sanitize"
)

// postsData is the envelope shared by every posts(...) query.
type postsData[T any] struct {
	Posts struct {
		Nodes []T `json:"nodes"`
	} `json:"posts"`
}

// AllPosts returns every published post, newest-first as the CMS orders
// them, with HTML fields sanitized and card defaults applied.
func (s *Service) AllPosts(ctx context.Context) ([]models.PostListItem, error) {
	var data postsData[rawPostListItem]
	if err := s.gql.Do(ctx, queryAllPosts, nil, &data); err != nil {
		return nil, fmt.Errorf("fetch all posts: %w", err)
	}
	items := make([]models.PostListItem, 0, len(data.Posts.Nodes))
	for _, raw := range data.Posts.Nodes {
		items = append(items, mapPostListItem(raw))
	}
	return items, nil
}

// PostBySlug returns the full post for a slug, or nil when the CMS has no
// post under it.
func (s *Service) PostBySlug(ctx context.Context, slug string) (*models.PostDetail, error) {
	var data struct {
		Post *rawPostDetail `json:"post"`
	}
	if err := s.gql.Do(ctx, queryPostBySlug, map[string]any{"slug": slug}, &data); err != nil {
		return nil, fmt.Errorf("fetch post %q: %w", slug, err)
	}
	if data.Post == nil {
		return nil, nil
	}
	detail := mapPostDetail(*data.Post)
	return &detail, nil
}

// AllPostSlugs returns the slug and publish date of every post, for the
// sitemap.
func (s *Service) AllPostSlugs(ctx context.Context) ([]models.PostRef, error) {
	var data postsData[struct {
		Slug string `json:"slug"`
		Date string `json:"date"`
	}]
	if err := s.gql.Do(ctx, queryAllPostSlugs, nil, &data); err != nil {
		return nil, fmt.Errorf("fetch post slugs: %w", err)
	}
	refs := make([]models.PostRef, 0, len(data.Posts.Nodes))
	for _, n := range data.Posts.Nodes {
		refs = append(refs, models.PostRef{Slug: n.Slug, Date: parseDate(n.Date)})
	}
	return refs, nil
}

// RecentPosts returns the five newest posts for the sidebar widget.
func (s *Service) RecentPosts(ctx context.Context) ([]models.RecentPost, error) {
	var data postsData[struct {
		Title  string     `json:"title"`
		Slug   string     `json:"slug"`
		Date   string     `json:"date"`
		Author authorNode `json:"author"`
	}]
	if err := s.gql.Do(ctx, queryRecentPosts, nil, &data); err != nil {
		return nil, fmt.Errorf("fetch recent posts: %w", err)
	}
	posts := make([]models.RecentPost, 0, len(data.Posts.Nodes))
	for _, n := range data.Posts.Nodes {
		posts = append(posts, models.RecentPost{
			Title:      n.Title,
			Slug:       n.Slug,
			Date:       parseDate(n.Date),
			AuthorName: n.Author.Node.Name,
		})
	}
	return posts, nil
}

// AllCategories returns the blog categories that have at least one post.
// The query already hides empty terms; the count filter stays here as a
// belt against CMS configurations that ignore hideEmpty.
func (s *Service) AllCategories(ctx context.Context) ([]models.Category, error) {
	var data struct {
		Categories termConn `json:"categories"`
	}
	if err := s.gql.Do(ctx, queryAllCategories, nil, &data); err != nil {
		return nil, fmt.Errorf("fetch categories: %w", err)
	}
	cats := make([]models.Category, 0, len(data.Categories.Nodes))
	for _, n := range data.Categories.Nodes {
		if n.Count <= 0 {
			continue
		}
		cats = append(cats, models.Category{Name: n.Name, Slug: n.Slug, Count: n.Count})
	}
	return cats, nil
}

// PostsByCategory returns the posts filed under a category slug.
func (s *Service) PostsByCategory(ctx context.Context, slug string) ([]models.PostListItem, error) {
	var data postsData[rawPostListItem]
	if err := s.gql.Do(ctx, queryPostsByCategory, map[string]any{"slug": slug}, &data); err != nil {
		return nil, fmt.Errorf("fetch posts for category %q: %w", slug, err)
	}
	items := make([]models.PostListItem, 0, len(data.Posts.Nodes))
	for _, raw := range data.Posts.Nodes {
		items = append(items, mapPostListItem(raw))
	}
	return items, nil
}

// BlogCards returns the flattened card shape for grid pages, applying the
// placeholder image and first-category defaults.
func (s *Service) BlogCards(ctx context.Context) ([]models.PostCard, error) {
	var data postsData[rawPostListItem]
	if err := s.gql.Do(ctx, queryAllPosts, nil, &data); err != nil {
		return nil, fmt.Errorf("fetch blog cards: %w", err)
	}
	cards := make([]models.PostCard, 0, len(data.Posts.Nodes))
	for _, raw := range data.Posts.Nodes {
		card := models.PostCard{
			ID:         raw.DatabaseID,
			Title:      raw.Title,
			Slug:       raw.Slug,
			Date:       parseDate(raw.Date),
			AuthorName: raw.Author.Node.Name,
			ImageURL:   PlaceholderImageURL,
		}
		if raw.FeaturedImage != nil && raw.FeaturedImage.Node.SourceURL != "" {
			card.ImageURL = raw.FeaturedImage.Node.SourceURL
		}
		if len(raw.Categories.Nodes) > 0 {
			card.CategoryName = raw.Categories.Nodes[0].Name
		}
		cards = append(cards, card)
	}
	return cards, nil
}

// SearchPosts returns posts matching a free-text term.
func (s *Service) SearchPosts(ctx context.Context, term string) ([]models.SearchResult, error) {
	var data postsData[rawSearchResult]
	if err := s.gql.Do(ctx, querySearchPosts, map[string]any{"searchTerm": term}, &data); err != nil {
		return nil, fmt.Errorf("search posts %q: %w", term, err)
	}
	results := make([]models.SearchResult, 0, len(data.Posts.Nodes))
	for _, n := range data.Posts.Nodes {
		r := models.SearchResult{Title: n.Title, Slug: n.Slug, Date: parseDate(n.Date)}
		if n.FeaturedImage != nil {
			r.ImageURL = n.FeaturedImage.Node.SourceURL
		}
		results = append(results, r)
	}
	return results, nil
}

// AffiliateIndex builds the redirect-slug → destination URL map from every
// post's product review slots. Posts are scanned in CMS fetch order and
// slots 1..3 within each post; the first slug wins and later duplicates
// are ignored.
func (s *Service) AffiliateIndex(ctx context.Context) (map[string]string, error) {
	var data postsData[struct {
		RevenueReviewFields *rawRevenueReviewFields `json:"revenueReviewFields"`
	}]
	if err := s.gql.Do(ctx, queryAllAffiliateLinks, nil, &data); err != nil {
		return nil, fmt.Errorf("fetch affiliate links: %w", err)
	}

	index := make(map[string]string)
	add := func(slug, url string) {
		if slug == "" || url == "" {
			return
		}
		if _, exists := index[slug]; exists {
			slog.Debug("duplicate affiliate redirect slug ignored", "slug", slug)
			return
		}
		index[slug] = url
	}

	for _, n := range data.Posts.Nodes {
		rev := n.RevenueReviewFields
		if rev == nil {
			continue
		}
		add(rev.Product1RedirectSlug, rev.Product1AffLinkURL)
		add(rev.Product2RedirectSlug, rev.Product2AffLinkURL)
		add(rev.Product3RedirectSlug, rev.Product3AffLinkURL)
	}
	return index, nil
}

// ResolveAffiliate looks up the destination URL for a redirect slug.
// Returns "" when no post's product slots carry the slug.
func (s *Service) ResolveAffiliate(ctx context.Context, slug string) (string, error) {
	index, err := s.AffiliateIndex(ctx)
	if err != nil {
		return "", err
	}
	return index[slug], nil
}

// mapPostListItem sanitizes HTML fields and applies card defaulting.
func mapPostListItem(raw rawPostListItem) models.PostListItem {
	item := models.PostListItem{
		ID:         raw.DatabaseID,
		Slug:       raw.Slug,
		Title:      raw.Title,
		Date:       parseDate(raw.Date),
		AuthorName: raw.Author.Node.Name,
		Excerpt:    template.HTML(sanitize.Fragment(raw.Excerpt)),
	}
	item.CardExcerpt = item.Excerpt
	if raw.GlobalFields != nil && raw.GlobalFields.CardExcerpt != "" {
		item.CardExcerpt = template.HTML(sanitize.Fragment(raw.GlobalFields.CardExcerpt))
	}
	if raw.FeaturedImage != nil && raw.FeaturedImage.Node.SourceURL != "" {
		item.FeaturedImage = &models.Image{
			URL: raw.FeaturedImage.Node.SourceURL,
			Alt: raw.FeaturedImage.Node.AltText,
		}
	}
	for _, c := range raw.Categories.Nodes {
		item.Categories = append(item.Categories, models.CategoryRef{Name: c.Name, Slug: c.Slug})
	}
	return item
}

// mapPostDetail sanitizes body HTML and unpacks the optional field groups.
func mapPostDetail(raw rawPostDetail) models.PostDetail {
	detail := models.PostDetail{
		ID:         raw.DatabaseID,
		Slug:       raw.Slug,
		Title:      raw.Title,
		Date:       parseDate(raw.Date),
		AuthorName: raw.Author.Node.Name,
		Content:    template.HTML(sanitize.Fragment(raw.Content)),
		Excerpt:    template.HTML(sanitize.Fragment(raw.Excerpt)),
	}
	if raw.FeaturedImage != nil && raw.FeaturedImage.Node.SourceURL != "" {
		detail.FeaturedImage = &models.Image{
			URL: raw.FeaturedImage.Node.SourceURL,
			Alt: raw.FeaturedImage.Node.AltText,
		}
	}
	for _, c := range raw.Categories.Nodes {
		detail.Categories = append(detail.Categories, models.CategoryRef{Name: c.Name, Slug: c.Slug})
	}

	if g := raw.GlobalFields; g != nil {
		global := models.GlobalFields{
			BannerURL:       g.AffBannerURL,
			CardExcerpt:     g.CardExcerpt,
			ExperienceLevel: g.ExperienceLevel,
		}
		if g.AffBannerImage != nil {
			global.BannerImageURL = g.AffBannerImage.Node.SourceURL
		}
		detail.Global = &global
	}

	if rev := raw.RevenueReviewFields; rev != nil {
		slots := []models.Product{
			{Name: rev.Product1Name, ImageURL: rev.Product1Image, LinkURL: rev.Product1AffLinkURL,
				ImpressionTag: rev.Product1ImpressionTag, RedirectSlug: rev.Product1RedirectSlug,
				CatchCopy: rev.Product1CatchCopy, Rating: rev.Product1Rating},
			{Name: rev.Product2Name, ImageURL: rev.Product2Image, LinkURL: rev.Product2AffLinkURL,
				ImpressionTag: rev.Product2ImpressionTag, RedirectSlug: rev.Product2RedirectSlug,
				CatchCopy: rev.Product2CatchCopy, Rating: rev.Product2Rating},
			{Name: rev.Product3Name, ImageURL: rev.Product3Image, LinkURL: rev.Product3AffLinkURL,
				ImpressionTag: rev.Product3ImpressionTag, RedirectSlug: rev.Product3RedirectSlug,
				CatchCopy: rev.Product3CatchCopy, Rating: rev.Product3Rating},
		}
		for _, p := range slots {
			if p.Name == "" && p.LinkURL == "" {
				continue
			}
			detail.Products = append(detail.Products, p)
		}
	}

	if k := raw.KnowledgeMannersFields; k != nil {
		detail.Knowledge = &models.KnowledgeFields{
			ProOnePoint:       k.ProOnePoint,
			RecipeIngredients: k.RecipeIngredients,
			OriginHistory:     k.OriginHistory,
			AlcoholProof:      k.AlcoholProof,
		}
	}

	return detail
}
