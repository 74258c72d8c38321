// Copyright (c) 2026 BAR HIK. All rights reserved.

// types.go mirrors the raw WPGraphQL response shapes. The field names
// follow the ACF field keys exactly, quirks included (slot 1's rating key
// is camelCase where slots 2 and 3 are snake_case — that is how the
// fields are registered in the CMS).
package cms

import (
	"bytes"
	"time"
)

type imageNode struct {
	Node struct {
		SourceURL string `json:"sourceUrl"`
		AltText   string `json:"altText"`
	} `json:"node"`
}

type authorNode struct {
	Node struct {
		Name string `json:"name"`
	} `json:"node"`
}

type termConn struct {
	Nodes []struct {
		Name  string `json:"name"`
		Slug  string `json:"slug"`
		Count int    `json:"count"`
	} `json:"nodes"`
}

type rawGlobalFields struct {
	AffBannerURL    string     `json:"aff_banner_url"`
	AffBannerImage  *imageNode `json:"aff_banner_image"`
	CardExcerpt     string     `json:"card_excerpt"`
	ExperienceLevel string     `json:"experience_level"`
}

type rawRevenueReviewFields struct {
	Product1Name          string    `json:"product_1_name"`
	Product1Image         string    `json:"product_1_image"`
	Product1AffLinkURL    string    `json:"product_1_aff_link_url"`
	Product1ImpressionTag string    `json:"product_1_impression_tag"`
	Product1RedirectSlug  string    `json:"product_1_redirect_slug"`
	Product1CatchCopy     string    `json:"product_1_catch_copy"`
	Product1Rating        float64   `json:"product_1_recommendRating"`
	Product2Name          string    `json:"product_2_name"`
	Product2Image         string    `json:"product_2_image"`
	Product2AffLinkURL    string    `json:"product_2_aff_link_url"`
	Product2ImpressionTag string    `json:"product_2_impression_tag"`
	Product2RedirectSlug  string    `json:"product_2_redirect_slug"`
	Product2CatchCopy     string    `json:"product_2_catch_copy"`
	Product2Rating        float64   `json:"product_2_recommend_rating"`
	Product3Name          string    `json:"product_3_name"`
	Product3Image         string    `json:"product_3_image"`
	Product3AffLinkURL    string    `json:"product_3_aff_link_url"`
	Product3ImpressionTag string    `json:"product_3_impression_tag"`
	Product3RedirectSlug  string    `json:"product_3_redirect_slug"`
	Product3CatchCopy     string    `json:"product_3_catch_copy"`
	Product3Rating        float64   `json:"product_3_recommend_rating"`
}

type rawKnowledgeFields struct {
	ProOnePoint       string `json:"proOnePoint"`
	RecipeIngredients string `json:"recipeIngredients"`
	OriginHistory     string `json:"originHistory"`
	AlcoholProof      string `json:"alcohol_proof"`
}

type rawPostListItem struct {
	DatabaseID    int              `json:"databaseId"`
	Slug          string           `json:"slug"`
	Title         string           `json:"title"`
	Date          string           `json:"date"`
	Excerpt       string           `json:"excerpt"`
	Author        authorNode       `json:"author"`
	FeaturedImage *imageNode       `json:"featuredImage"`
	Categories    termConn         `json:"categories"`
	GlobalFields  *rawGlobalFields `json:"globalFields"`
}

type rawPostDetail struct {
	DatabaseID             int                     `json:"databaseId"`
	Slug                   string                  `json:"slug"`
	Title                  string                  `json:"title"`
	Date                   string                  `json:"date"`
	Content                string                  `json:"content"`
	Excerpt                string                  `json:"excerpt"`
	Author                 authorNode              `json:"author"`
	FeaturedImage          *imageNode              `json:"featuredImage"`
	Categories             termConn                `json:"categories"`
	GlobalFields           *rawGlobalFields        `json:"globalFields"`
	RevenueReviewFields    *rawRevenueReviewFields `json:"revenueReviewFields"`
	KnowledgeMannersFields *rawKnowledgeFields     `json:"knowledgeMannersFields"`
}

type rawSearchResult struct {
	Title         string     `json:"title"`
	Slug          string     `json:"slug"`
	Date          string     `json:"date"`
	FeaturedImage *imageNode `json:"featuredImage"`
}

// looseBool accepts the true/false, 1/0, and null spellings that ACF
// checkbox fields produce depending on how the value was saved.
type looseBool bool

func (b *looseBool) UnmarshalJSON(data []byte) error {
	switch string(bytes.TrimSpace(data)) {
	case "true", "1", `"1"`:
		*b = true
	default:
		*b = false
	}
	return nil
}

type rawMenuFields struct {
	Price         float64    `json:"price"`
	IsSeasonal    looseBool  `json:"isseasonal"`
	Allergy       string     `json:"allergy"`
	IsRecommended looseBool  `json:"isRecommended"`
	MenuPhoto     *imageNode `json:"menuphoto"`
}

type rawMenuItem struct {
	DatabaseID     int            `json:"databaseId"`
	Slug           string         `json:"slug"`
	Title          string         `json:"title"`
	Content        string         `json:"content"`
	MenuCategories termConn       `json:"menuCategories"`
	MenuFields     *rawMenuFields `json:"menuFields"`
}

type rawGalleryItem struct {
	DatabaseID     int    `json:"databaseId"`
	Title          string `json:"title"`
	GalleryDetails struct {
		ImageField *imageNode `json:"imageField"`
	} `json:"galleryDetails"`
}

// wpDateLayout is the timestamp format WPGraphQL emits for post dates
// (no zone designator; site-local time).
const wpDateLayout = "2006-01-02T15:04:05"

// parseDate parses a CMS timestamp, tolerating an RFC 3339 zone suffix.
// Unparseable input yields the zero time rather than an error: a bad date
// must not sink the whole listing.
func parseDate(s string) time.Time {
	if t, err := time.Parse(wpDateLayout, s); err == nil {
		return t
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t
	}
	return time.Time{}
}
