package handlers

import (
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/aaravmahajanofficial/templatehub/internal/api/middleware"
	"github.com/aaravmahajanofficial/templatehub/internal/errors"
	"github.com/aaravmahajanofficial/templatehub/internal/models"
	service "github.com/aaravmahajanofficial/templatehub/internal/services"
	"github.com/aaravmahajanofficial/templatehub/internal/utils"
	"github.com/aaravmahajanofficial/templatehub/internal/utils/response"
	"github.com/go-playground/validator/v10"
)

type TemplateHandler struct {
	templateService service.TemplateService
	validator       *validator.Validate
}

func NewTemplateHandler(templateService service.TemplateService) *TemplateHandler {
	return &TemplateHandler{templateService: templateService, validator: utils.NewValidator()}
}

// ListTemplates godoc
//
//	@Summary		List templates
//	@Description	Lists catalog templates with optional search, filters and sorting.
//	@Tags			Templates
//	@Produce		json
//	@Param			search		query		string											false	"Case-insensitive match on title, description and tags"
//	@Param			category	query		string											false	"Category or 'all'"
//	@Param			status		query		string											false	"draft, published, archived or 'all'"
//	@Param			minPrice	query		number											false	"Minimum price (inclusive)"
//	@Param			maxPrice	query		number											false	"Maximum price (inclusive)"
//	@Param			sort		query		string											false	"newest, oldest, priceAsc, priceDesc or title"
//	@Success		200			{object}	models.ListResponse[models.Template]			"Templates"
//	@Failure		400			{object}	response.ErrorResponse							"Invalid filters"
//	@Router			/templates [get]
func (h *TemplateHandler) ListTemplates() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		filters, err := parseTemplateFilters(r)
		if err != nil {
			logger.Warn("Invalid template filters", slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		templates, err := h.templateService.ListTemplates(r.Context(), filters)
		if err != nil {
			logger.Warn("Failed to list templates", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		logger.Debug("Templates listed", slog.Int("count", len(templates)))
		response.Success(w, http.StatusOK, models.NewListResponse(templates))
	}
}

// GetTemplate godoc
//
//	@Summary		Get a template
//	@Description	Looks a template up by UUID, or by slug for any other value.
//	@Tags			Templates
//	@Produce		json
//	@Param			idOrSlug	path		string					true	"Template ID or slug"
//	@Success		200			{object}	models.Template			"Template"
//	@Failure		404			{object}	response.ErrorResponse	"Template not found"
//	@Router			/templates/{idOrSlug} [get]
func (h *TemplateHandler) GetTemplate() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())
		idOrSlug := r.PathValue("idOrSlug")

		template, err := h.templateService.GetTemplate(r.Context(), idOrSlug)
		if err != nil {
			logger.Warn("Template lookup failed", slog.String("idOrSlug", idOrSlug), slog.Any("error", err))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, template)
	}
}

// CreateTemplate godoc
//
//	@Summary		Create a template
//	@Tags			Templates
//	@Accept			json
//	@Produce		json
//	@Param			template	body		models.CreateTemplateRequest	true	"Template"
//	@Success		201			{object}	models.Template					"Created template"
//	@Failure		400			{object}	response.ErrorResponse			"Validation error"
//	@Failure		401			{object}	response.ErrorResponse			"Authentication required"
//	@Failure		403			{object}	response.ErrorResponse			"Admin access required"
//	@Security		BearerAuth
//	@Router			/templates [post]
func (h *TemplateHandler) CreateTemplate() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		var req models.CreateTemplateRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid create template input")
			return
		}

		template, err := h.templateService.CreateTemplate(r.Context(), &req)
		if err != nil {
			logger.Warn("Failed to create template", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		logger.Info("Template created", slog.String("templateId", template.ID), slog.String("slug", template.Slug))
		response.Success(w, http.StatusCreated, template)
	}
}

// UpdateTemplate godoc
//
//	@Summary		Update a template
//	@Description	Partial update; omitted fields keep their current value.
//	@Tags			Templates
//	@Accept			json
//	@Produce		json
//	@Param			idOrSlug	path		string							true	"Template ID or slug"
//	@Param			template	body		models.UpdateTemplateRequest	true	"Fields to change"
//	@Success		200			{object}	models.Template					"Updated template"
//	@Failure		400			{object}	response.ErrorResponse			"Validation error"
//	@Failure		404			{object}	response.ErrorResponse			"Template not found"
//	@Security		BearerAuth
//	@Router			/templates/{idOrSlug} [put]
func (h *TemplateHandler) UpdateTemplate() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())
		idOrSlug := r.PathValue("idOrSlug")
		logger = logger.With(slog.String("idOrSlug", idOrSlug))

		var req models.UpdateTemplateRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid update template input")
			return
		}

		template, err := h.templateService.UpdateTemplate(r.Context(), idOrSlug, &req)
		if err != nil {
			logger.Warn("Failed to update template", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		logger.Info("Template updated", slog.String("templateId", template.ID))
		response.Success(w, http.StatusOK, template)
	}
}

// DeleteTemplate godoc
//
//	@Summary	Delete a template
//	@Tags		Templates
//	@Param		idOrSlug	path	string	true	"Template ID or slug"
//	@Success	204
//	@Failure	404	{object}	response.ErrorResponse	"Template not found"
//	@Security	BearerAuth
//	@Router		/templates/{idOrSlug} [delete]
func (h *TemplateHandler) DeleteTemplate() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())
		idOrSlug := r.PathValue("idOrSlug")

		if err := h.templateService.DeleteTemplate(r.Context(), idOrSlug); err != nil {
			logger.Warn("Failed to delete template", slog.String("idOrSlug", idOrSlug), slog.Any("error", err))
			response.Error(w, err)
			return
		}

		logger.Info("Template deleted", slog.String("idOrSlug", idOrSlug))
		w.WriteHeader(http.StatusNoContent)
	}
}

func parseTemplateFilters(r *http.Request) (models.TemplateFilters, error) {
	q := r.URL.Query()

	filters := models.TemplateFilters{
		Search:   strings.TrimSpace(q.Get("search")),
		Category: models.TemplateCategory(q.Get("category")),
		Status:   models.TemplateStatus(q.Get("status")),
		Sort:     models.TemplateSort(q.Get("sort")),
	}

	var err error
	if filters.MinPrice, err = parsePrice(q.Get("minPrice")); err != nil {
		return filters, errors.BadRequestError("Invalid minPrice").WithError(err)
	}
	if filters.MaxPrice, err = parsePrice(q.Get("maxPrice")); err != nil {
		return filters, errors.BadRequestError("Invalid maxPrice").WithError(err)
	}

	return filters, nil
}

func parsePrice(raw string) (*float64, error) {
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, err
	}
	if v < 0 {
		return nil, strconv.ErrRange
	}
	return &v, nil
}
