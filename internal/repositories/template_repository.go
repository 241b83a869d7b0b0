package repository

import (
	"context"
	"errors"
	"slices"
	"strings"

	"github.com/aaravmahajanofficial/templatehub/internal/models"
)

var ErrTemplateNotFound = errors.New("template not found")

type TemplateRepository interface {
	ListTemplates(ctx context.Context, filters models.TemplateFilters) []*models.Template
	GetTemplate(ctx context.Context, id string) (*models.Template, bool)
	GetTemplateBySlug(ctx context.Context, slug string) (*models.Template, bool)
	CreateTemplate(ctx context.Context, req *models.CreateTemplateRequest) *models.Template
	UpdateTemplate(ctx context.Context, id string, req *models.UpdateTemplateRequest) (*models.Template, bool)
	DeleteTemplate(ctx context.Context, id string) bool
}

func (s *Store) ListTemplates(_ context.Context, filters models.TemplateFilters) []*models.Template {
	s.mu.Lock()
	defer s.mu.Unlock()

	matched := make([]*models.Template, 0, len(s.templates))
	for _, t := range s.templates {
		if matchesFilters(t, filters) {
			matched = append(matched, t.Clone())
		}
	}

	sortTemplates(matched, filters.Sort)

	return matched
}

func (s *Store) GetTemplate(_ context.Context, id string) (*models.Template, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	t, ok := s.templates[id]
	if !ok {
		return nil, false
	}

	return t.Clone(), true
}

// GetTemplateBySlug matches case-insensitively; stored slugs are always lowercase.
func (s *Store) GetTemplateBySlug(_ context.Context, slug string) (*models.Template, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	slug = strings.ToLower(slug)
	for _, t := range s.templates {
		if t.Slug == slug {
			return t.Clone(), true
		}
	}

	return nil, false
}

func (s *Store) CreateTemplate(_ context.Context, req *models.CreateTemplateRequest) *models.Template {
	s.mu.Lock()

	now := s.timestamp()

	base := req.Title
	if req.Slug != nil {
		base = *req.Slug
	}

	gallery := sanitizeStrings(req.GalleryImages)
	hero := models.DefaultTemplateImage
	switch {
	case optional(req.HeroImage) != nil:
		hero = *req.HeroImage
	case len(gallery) > 0:
		hero = gallery[0]
	}
	if len(gallery) == 0 {
		gallery = []string{hero}
	}

	price := 0.0
	if req.Price != nil {
		price = normalizePrice(*req.Price)
	}

	t := &models.Template{
		ID:            s.newID(),
		Slug:          s.uniqueSlug(Slugify(base), ""),
		Title:         req.Title,
		Category:      req.Category,
		Price:         price,
		Status:        normalizeStatus(req.Status),
		Description:   req.Description,
		HeroImage:     hero,
		GalleryImages: gallery,
		VideoURL:      optional(req.VideoURL),
		LiveDemoURL:   optional(req.LiveDemoURL),
		FigmaURL:      optional(req.FigmaURL),
		Tags:          sanitizeStrings(req.Tags),
		Features:      sanitizeStrings(req.Features),
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	s.templates[t.ID] = t
	out := t.Clone()
	s.mu.Unlock()

	s.notify(ChangeCatalog, out.ID)
	return out
}

// UpdateTemplate merges the non-nil fields of req into the template. The slug
// is recomputed only when the slug or title changes, and the media fallback
// chain only when the hero image or gallery changes.
func (s *Store) UpdateTemplate(_ context.Context, id string, req *models.UpdateTemplateRequest) (*models.Template, bool) {
	s.mu.Lock()

	existing, ok := s.templates[id]
	if !ok {
		s.mu.Unlock()
		return nil, false
	}

	merged := existing.Clone()

	if req.Title != nil {
		merged.Title = *req.Title
	}
	if req.Category != nil {
		merged.Category = *req.Category
	}
	if req.Price != nil {
		merged.Price = normalizePrice(*req.Price)
	}
	if req.Status != nil {
		merged.Status = normalizeStatus(req.Status)
	}
	if req.Description != nil {
		merged.Description = *req.Description
	}
	if v := optional(req.VideoURL); v != nil {
		merged.VideoURL = v
	}
	if v := optional(req.LiveDemoURL); v != nil {
		merged.LiveDemoURL = v
	}
	if v := optional(req.FigmaURL); v != nil {
		merged.FigmaURL = v
	}
	if req.Tags != nil {
		merged.Tags = sanitizeStrings(req.Tags)
	}
	if req.Features != nil {
		merged.Features = sanitizeStrings(req.Features)
	}

	if req.GalleryImages != nil || req.HeroImage != nil {
		gallery := merged.GalleryImages
		if req.GalleryImages != nil {
			gallery = sanitizeStrings(req.GalleryImages)
		}

		hero := existing.HeroImage
		switch {
		case optional(req.HeroImage) != nil:
			hero = *req.HeroImage
		case len(gallery) > 0:
			hero = gallery[0]
		}
		if hero == "" {
			hero = models.DefaultTemplateImage
		}
		if len(gallery) == 0 {
			gallery = []string{hero}
		}

		merged.HeroImage = hero
		merged.GalleryImages = gallery
	}

	if req.Slug != nil || req.Title != nil {
		base := merged.Title
		if req.Slug != nil {
			base = *req.Slug
		}
		merged.Slug = s.uniqueSlug(Slugify(base), id)
	}

	merged.UpdatedAt = s.timestamp()

	s.templates[id] = merged
	out := merged.Clone()
	s.mu.Unlock()

	s.notify(ChangeCatalog, id)
	return out, true
}

// DeleteTemplate removes the template. Cart lines and orders that reference it
// keep their embedded summaries.
func (s *Store) DeleteTemplate(_ context.Context, id string) bool {
	s.mu.Lock()
	_, ok := s.templates[id]
	delete(s.templates, id)
	s.mu.Unlock()

	if ok {
		s.notify(ChangeCatalog, id)
	}
	return ok
}

func matchesFilters(t *models.Template, f models.TemplateFilters) bool {
	if f.Category != "" && f.Category != "all" && t.Category != f.Category {
		return false
	}
	if f.Status != "" && f.Status != "all" && t.Status != f.Status {
		return false
	}
	if f.MinPrice != nil && t.Price < *f.MinPrice {
		return false
	}
	if f.MaxPrice != nil && t.Price > *f.MaxPrice {
		return false
	}

	if f.Search == "" {
		return true
	}

	query := strings.ToLower(f.Search)
	haystacks := make([]string, 0, 2+len(t.Tags)+len(t.Features))
	haystacks = append(haystacks, t.Title, t.Description)
	haystacks = append(haystacks, t.Tags...)
	haystacks = append(haystacks, t.Features...)

	return slices.ContainsFunc(haystacks, func(v string) bool {
		return strings.Contains(strings.ToLower(v), query)
	})
}

func sortTemplates(templates []*models.Template, sort models.TemplateSort) {
	var cmp func(a, b *models.Template) int

	switch sort {
	case models.SortPriceAsc:
		cmp = func(a, b *models.Template) int { return compareFloat(a.Price, b.Price) }
	case models.SortPriceDesc:
		cmp = func(a, b *models.Template) int { return compareFloat(b.Price, a.Price) }
	case models.SortTitle:
		cmp = func(a, b *models.Template) int {
			if c := strings.Compare(strings.ToLower(a.Title), strings.ToLower(b.Title)); c != 0 {
				return c
			}
			return strings.Compare(a.Title, b.Title)
		}
	case models.SortOldest:
		cmp = func(a, b *models.Template) int { return a.CreatedAt.Compare(b.CreatedAt) }
	default:
		cmp = func(a, b *models.Template) int { return b.CreatedAt.Compare(a.CreatedAt) }
	}

	// map iteration order is random; the id tie-break keeps results stable
	slices.SortFunc(templates, func(a, b *models.Template) int {
		if c := cmp(a, b); c != 0 {
			return c
		}
		return strings.Compare(a.ID, b.ID)
	})
}

func compareFloat(a, b float64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

func normalizeStatus(status *models.TemplateStatus) models.TemplateStatus {
	if status == nil || !status.Valid() {
		return models.TemplateStatusDraft
	}
	return *status
}

// optional copies a non-empty string pointer; nil and blank values become nil.
func optional(v *string) *string {
	if v == nil || strings.TrimSpace(*v) == "" {
		return nil
	}
	out := *v
	return &out
}
