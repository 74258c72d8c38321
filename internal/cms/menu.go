// Copyright (c) 2026 BAR HIK. All rights reserved.

package cms

import (
	"context"
	"fmt"
	"html/template"

	"github.com/hikichi68/barhik/internal/models"
	"github.com/hikichi68/barhik/internal/sanitize"
)

// maxRecommendedItems caps the recommended block on the homepage.
const maxRecommendedItems = 3

// AllMenuItems returns every menu item.
func (s *Service) AllMenuItems(ctx context.Context) ([]models.MenuItem, error) {
	var data struct {
		FoodItems struct {
			Nodes []rawMenuItem `json:"nodes"`
		} `json:"foodItems"`
	}
	if err := s.gql.Do(ctx, queryAllMenuItems, nil, &data); err != nil {
		return nil, fmt.Errorf("fetch menu items: %w", err)
	}
	items := make([]models.MenuItem, 0, len(data.FoodItems.Nodes))
	for _, raw := range data.FoodItems.Nodes {
		items = append(items, mapMenuItem(raw))
	}
	return items, nil
}

// MenuItemsByCategory returns menu items whose category list contains an
// exact slug match. The CMS query used here cannot filter by menu
// category, so the full item set is fetched and scanned client-side;
// with the menu's size the repeated full fetch is absorbed by the query
// cache, but this is the first filter to push server-side if the menu
// grows past one page.
func (s *Service) MenuItemsByCategory(ctx context.Context, categorySlug string) ([]models.MenuItem, error) {
	all, err := s.AllMenuItems(ctx)
	if err != nil {
		return nil, err
	}
	var filtered []models.MenuItem
	for _, item := range all {
		if item.InCategory(categorySlug) {
			filtered = append(filtered, item)
		}
	}
	return filtered, nil
}

// RecommendedMenuItems returns up to three items flagged as recommended,
// for the homepage block.
func (s *Service) RecommendedMenuItems(ctx context.Context) ([]models.MenuItem, error) {
	all, err := s.AllMenuItems(ctx)
	if err != nil {
		return nil, err
	}
	var recommended []models.MenuItem
	for _, item := range all {
		if !item.Recommended {
			continue
		}
		recommended = append(recommended, item)
		if len(recommended) == maxRecommendedItems {
			break
		}
	}
	return recommended, nil
}

// MenuItemBySlug returns one menu item, or nil when the slug is unknown.
func (s *Service) MenuItemBySlug(ctx context.Context, slug string) (*models.MenuItem, error) {
	var data struct {
		FoodItem *rawMenuItem `json:"foodItem"`
	}
	if err := s.gql.Do(ctx, queryMenuDetail, map[string]any{"id": slug}, &data); err != nil {
		return nil, fmt.Errorf("fetch menu item %q: %w", slug, err)
	}
	if data.FoodItem == nil {
		return nil, nil
	}
	item := mapMenuItem(*data.FoodItem)
	return &item, nil
}

func mapMenuItem(raw rawMenuItem) models.MenuItem {
	item := models.MenuItem{
		ID:    raw.DatabaseID,
		Slug:  raw.Slug,
		Title: raw.Title,
		Body:  template.HTML(sanitize.Fragment(raw.Content)),
	}
	for _, c := range raw.MenuCategories.Nodes {
		item.Categories = append(item.Categories, models.CategoryRef{Name: c.Name, Slug: c.Slug})
	}
	if f := raw.MenuFields; f != nil {
		item.Price = f.Price
		item.Seasonal = bool(f.IsSeasonal)
		item.Recommended = bool(f.IsRecommended)
		item.Allergy = f.Allergy
		if f.MenuPhoto != nil && f.MenuPhoto.Node.SourceURL != "" {
			item.Photo = &models.Image{
				URL: f.MenuPhoto.Node.SourceURL,
				Alt: f.MenuPhoto.Node.AltText,
			}
		}
	}
	return item
}
