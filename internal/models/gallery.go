// Copyright (c) 2026 BAR HIK. All rights reserved.

package models

// GalleryItem is one photo of the gallery page.
type GalleryItem struct {
	ID    int
	Title string
	Image Image
}
