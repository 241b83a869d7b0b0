package models

import "time"

type TemplateCategory string

const (
	CategoryEcommerce  TemplateCategory = "ecommerce"
	CategoryPortfolio  TemplateCategory = "portfolio"
	CategorySaaS       TemplateCategory = "saas"
	CategoryRestaurant TemplateCategory = "restaurant"
	CategoryCorporate  TemplateCategory = "corporate"
	CategoryFitness    TemplateCategory = "fitness"
)

// TemplateCategories lists every category in display order.
var TemplateCategories = []TemplateCategory{
	CategoryEcommerce,
	CategoryPortfolio,
	CategorySaaS,
	CategoryRestaurant,
	CategoryCorporate,
	CategoryFitness,
}

func (c TemplateCategory) Valid() bool {
	for _, known := range TemplateCategories {
		if c == known {
			return true
		}
	}
	return false
}

type TemplateStatus string

const (
	TemplateStatusDraft     TemplateStatus = "draft"
	TemplateStatusPublished TemplateStatus = "published"
	TemplateStatusArchived  TemplateStatus = "archived"
)

func (s TemplateStatus) Valid() bool {
	switch s {
	case TemplateStatusDraft, TemplateStatusPublished, TemplateStatusArchived:
		return true
	}
	return false
}

type TemplateSort string

const (
	SortNewest    TemplateSort = "newest"
	SortOldest    TemplateSort = "oldest"
	SortPriceAsc  TemplateSort = "priceAsc"
	SortPriceDesc TemplateSort = "priceDesc"
	SortTitle     TemplateSort = "title"
)

// DefaultTemplateImage is used when a template has neither a hero image nor a gallery.
const DefaultTemplateImage = "https://images.unsplash.com/photo-1521737604893-d14cc237f11d?auto=format&fit=crop&w=1600&q=80"

type Template struct {
	ID            string           `json:"id"`
	Slug          string           `json:"slug"`
	Title         string           `json:"title"`
	Category      TemplateCategory `json:"category"`
	Price         float64          `json:"price"`
	Status        TemplateStatus   `json:"status"`
	Description   string           `json:"description"`
	HeroImage     string           `json:"heroImage"`
	GalleryImages []string         `json:"galleryImages"`
	VideoURL      *string          `json:"videoUrl"`
	LiveDemoURL   *string          `json:"liveDemoUrl"`
	FigmaURL      *string          `json:"figmaUrl"`
	Tags          []string         `json:"tags"`
	Features      []string         `json:"features"`
	CreatedAt     time.Time        `json:"createdAt"`
	UpdatedAt     time.Time        `json:"updatedAt"`
}

// TemplateSummary is the display subset embedded in cart and order lines.
type TemplateSummary struct {
	ID        string           `json:"id"`
	Slug      string           `json:"slug"`
	Title     string           `json:"title"`
	Category  TemplateCategory `json:"category"`
	Price     float64          `json:"price"`
	Status    TemplateStatus   `json:"status"`
	HeroImage string           `json:"heroImage"`
}

func (t *Template) Summary() TemplateSummary {
	return TemplateSummary{
		ID:        t.ID,
		Slug:      t.Slug,
		Title:     t.Title,
		Category:  t.Category,
		Price:     t.Price,
		Status:    t.Status,
		HeroImage: t.HeroImage,
	}
}

// Clone returns a deep copy so callers never share slices with the store.
func (t *Template) Clone() *Template {
	if t == nil {
		return nil
	}
	c := *t
	c.GalleryImages = append([]string{}, t.GalleryImages...)
	c.Tags = append([]string{}, t.Tags...)
	c.Features = append([]string{}, t.Features...)
	c.VideoURL = cloneString(t.VideoURL)
	c.LiveDemoURL = cloneString(t.LiveDemoURL)
	c.FigmaURL = cloneString(t.FigmaURL)
	return &c
}

func cloneString(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}

// TemplateFilters narrows ListTemplates. Zero values mean "no constraint".
type TemplateFilters struct {
	Search   string
	Category TemplateCategory
	Status   TemplateStatus
	MinPrice *float64
	MaxPrice *float64
	Sort     TemplateSort
}

type CreateTemplateRequest struct {
	Title         string           `json:"title" validate:"required,min=3"`
	Slug          *string          `json:"slug,omitempty" validate:"omitempty,min=1"`
	Category      TemplateCategory `json:"category" validate:"required,oneof=ecommerce portfolio saas restaurant corporate fitness"`
	Price         *float64         `json:"price" validate:"required,gte=0"`
	Status        *TemplateStatus  `json:"status,omitempty" validate:"omitempty,oneof=draft published archived"`
	Description   string           `json:"description" validate:"required,min=10"`
	HeroImage     *string          `json:"heroImage,omitempty" validate:"omitempty,urlorpath"`
	GalleryImages []string         `json:"galleryImages,omitempty" validate:"omitempty,dive,urlorpath"`
	VideoURL      *string          `json:"videoUrl,omitempty" validate:"omitempty,urlorpath"`
	LiveDemoURL   *string          `json:"liveDemoUrl,omitempty" validate:"omitempty,url"`
	FigmaURL      *string          `json:"figmaUrl,omitempty" validate:"omitempty,url"`
	Tags          []string         `json:"tags,omitempty"`
	Features      []string         `json:"features,omitempty"`
}

// UpdateTemplateRequest is a partial update: nil fields are left untouched.
type UpdateTemplateRequest struct {
	Title         *string           `json:"title,omitempty" validate:"omitempty,min=3"`
	Slug          *string           `json:"slug,omitempty" validate:"omitempty,min=1"`
	Category      *TemplateCategory `json:"category,omitempty" validate:"omitempty,oneof=ecommerce portfolio saas restaurant corporate fitness"`
	Price         *float64          `json:"price,omitempty" validate:"omitempty,gte=0"`
	Status        *TemplateStatus   `json:"status,omitempty" validate:"omitempty,oneof=draft published archived"`
	Description   *string           `json:"description,omitempty" validate:"omitempty,min=10"`
	HeroImage     *string           `json:"heroImage,omitempty" validate:"omitempty,urlorpath"`
	GalleryImages []string          `json:"galleryImages,omitempty" validate:"omitempty,dive,urlorpath"`
	VideoURL      *string           `json:"videoUrl,omitempty" validate:"omitempty,urlorpath"`
	LiveDemoURL   *string           `json:"liveDemoUrl,omitempty" validate:"omitempty,url"`
	FigmaURL      *string           `json:"figmaUrl,omitempty" validate:"omitempty,url"`
	Tags          []string          `json:"tags,omitempty"`
	Features      []string          `json:"features,omitempty"`
}
