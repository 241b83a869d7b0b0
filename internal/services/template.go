package service

import (
	"context"
	"html"
	"strings"

	"github.com/aaravmahajanofficial/templatehub/internal/errors"
	"github.com/aaravmahajanofficial/templatehub/internal/models"
	repository "github.com/aaravmahajanofficial/templatehub/internal/repositories"
	"github.com/google/uuid"
	"github.com/microcosm-cc/bluemonday"
)

type TemplateService interface {
	ListTemplates(ctx context.Context, filters models.TemplateFilters) ([]*models.Template, error)
	GetTemplate(ctx context.Context, idOrSlug string) (*models.Template, error)
	CreateTemplate(ctx context.Context, req *models.CreateTemplateRequest) (*models.Template, error)
	UpdateTemplate(ctx context.Context, idOrSlug string, req *models.UpdateTemplateRequest) (*models.Template, error)
	DeleteTemplate(ctx context.Context, idOrSlug string) error
}

type templateService struct {
	repo   repository.TemplateRepository
	policy *bluemonday.Policy
}

func NewTemplateService(repo repository.TemplateRepository) TemplateService {
	return &templateService{repo: repo, policy: bluemonday.StrictPolicy()}
}

func (s *templateService) ListTemplates(ctx context.Context, filters models.TemplateFilters) ([]*models.Template, error) {
	if filters.MinPrice != nil && filters.MaxPrice != nil && *filters.MinPrice > *filters.MaxPrice {
		return nil, errors.BadRequestError("minPrice cannot be greater than maxPrice")
	}

	if filters.Category != "" && filters.Category != "all" && !filters.Category.Valid() {
		return nil, errors.BadRequestError("Invalid category")
	}

	if filters.Status != "" && filters.Status != "all" && !filters.Status.Valid() {
		return nil, errors.BadRequestError("Invalid status")
	}

	switch filters.Sort {
	case "", models.SortNewest, models.SortOldest, models.SortPriceAsc, models.SortPriceDesc, models.SortTitle:
	default:
		return nil, errors.BadRequestError("Invalid sort")
	}

	return s.repo.ListTemplates(ctx, filters), nil
}

func (s *templateService) GetTemplate(ctx context.Context, idOrSlug string) (*models.Template, error) {
	template, ok := s.lookup(ctx, idOrSlug)
	if !ok {
		return nil, errors.NotFoundError("Template not found")
	}

	return template, nil
}

func (s *templateService) CreateTemplate(ctx context.Context, req *models.CreateTemplateRequest) (*models.Template, error) {
	clean := *req
	clean.Title = s.sanitize(req.Title)
	clean.Description = s.sanitize(req.Description)
	clean.Tags = s.sanitizeAll(req.Tags)
	clean.Features = s.sanitizeAll(req.Features)

	if clean.Title == "" {
		return nil, errors.ValidationError("Title cannot be empty")
	}

	return s.repo.CreateTemplate(ctx, &clean), nil
}

func (s *templateService) UpdateTemplate(ctx context.Context, idOrSlug string, req *models.UpdateTemplateRequest) (*models.Template, error) {
	existing, ok := s.lookup(ctx, idOrSlug)
	if !ok {
		return nil, errors.NotFoundError("Template not found")
	}

	clean := *req
	if req.Title != nil {
		title := s.sanitize(*req.Title)
		if title == "" {
			return nil, errors.ValidationError("Title cannot be empty")
		}
		clean.Title = &title
	}
	if req.Description != nil {
		description := s.sanitize(*req.Description)
		clean.Description = &description
	}
	if req.Tags != nil {
		clean.Tags = s.sanitizeAll(req.Tags)
	}
	if req.Features != nil {
		clean.Features = s.sanitizeAll(req.Features)
	}

	updated, ok := s.repo.UpdateTemplate(ctx, existing.ID, &clean)
	if !ok {
		return nil, errors.NotFoundError("Template not found")
	}

	return updated, nil
}

func (s *templateService) DeleteTemplate(ctx context.Context, idOrSlug string) error {
	existing, ok := s.lookup(ctx, idOrSlug)
	if !ok || !s.repo.DeleteTemplate(ctx, existing.ID) {
		return errors.NotFoundError("Template not found")
	}

	return nil
}

// lookup treats UUID-shaped keys as ids and everything else as a slug.
func (s *templateService) lookup(ctx context.Context, idOrSlug string) (*models.Template, bool) {
	if _, err := uuid.Parse(idOrSlug); err == nil {
		return s.repo.GetTemplate(ctx, idOrSlug)
	}
	return s.repo.GetTemplateBySlug(ctx, idOrSlug)
}

// sanitize strips markup; the policy escapes entities so they are decoded back.
func (s *templateService) sanitize(value string) string {
	return strings.TrimSpace(html.UnescapeString(s.policy.Sanitize(value)))
}

func (s *templateService) sanitizeAll(values []string) []string {
	if values == nil {
		return nil
	}
	out := make([]string, 0, len(values))
	for _, v := range values {
		out = append(out, s.sanitize(v))
	}
	return out
}
