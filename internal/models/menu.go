// Copyright (c) 2026 BAR HIK. All rights reserved.

package models

import "html/template"

// MenuItem is a food or drink offering from the CMS menu post type.
type MenuItem struct {
	ID          int
	Slug        string
	Title       string
	Body        template.HTML
	Price       float64
	Seasonal    bool
	Recommended bool
	Allergy     string
	Categories  []CategoryRef
	Photo       *Image
}

// InCategory reports whether the item belongs to the menu category with
// the given slug. Membership is an exact slug match against the item's
// category list.
func (m *MenuItem) InCategory(slug string) bool {
	for _, c := range m.Categories {
		if c.Slug == slug {
			return true
		}
	}
	return false
}
