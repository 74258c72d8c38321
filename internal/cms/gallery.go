// Copyright (c) 2026 BAR HIK. All rights reserved.

package cms

import (
	"context"
	"fmt"

	"github.com/hikichi68/barhik/internal/models"
)

// AllGalleryItems returns the photo gallery. The gallery endpoint has a
// history of flaking under load, so this is the one read that goes
// through the retry wrapper.
func (s *Service) AllGalleryItems(ctx context.Context) ([]models.GalleryItem, error) {
	var data struct {
		PhotoGalleryItems struct {
			Nodes []rawGalleryItem `json:"nodes"`
		} `json:"photoGalleryItems"`
	}
	if err := s.gql.DoRetry(ctx, s.retryBase, queryAllGalleryItems, nil, &data); err != nil {
		return nil, fmt.Errorf("fetch gallery items: %w", err)
	}
	items := make([]models.GalleryItem, 0, len(data.PhotoGalleryItems.Nodes))
	for _, raw := range data.PhotoGalleryItems.Nodes {
		item := models.GalleryItem{ID: raw.DatabaseID, Title: raw.Title}
		if img := raw.GalleryDetails.ImageField; img != nil {
			item.Image = models.Image{URL: img.Node.SourceURL, Alt: img.Node.AltText}
		}
		items = append(items, item)
	}
	return items, nil
}
