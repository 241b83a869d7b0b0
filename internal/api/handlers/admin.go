package handlers

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/aaravmahajanofficial/templatehub/internal/api/middleware"
	"github.com/aaravmahajanofficial/templatehub/internal/models"
	service "github.com/aaravmahajanofficial/templatehub/internal/services"
	"github.com/aaravmahajanofficial/templatehub/internal/utils"
	"github.com/aaravmahajanofficial/templatehub/internal/utils/response"
	"github.com/go-playground/validator/v10"
)

const statsKeepAliveInterval = 25 * time.Second

// AdminHandler serves the dashboard. Routes are mounted behind the admin guard.
type AdminHandler struct {
	statsService service.StatsService
	orderService service.OrderService
	userService  service.UserService
	validator    *validator.Validate
	keepAlive    time.Duration
}

func NewAdminHandler(statsService service.StatsService, orderService service.OrderService, userService service.UserService) *AdminHandler {
	return &AdminHandler{
		statsService: statsService,
		orderService: orderService,
		userService:  userService,
		validator:    utils.NewValidator(),
		keepAlive:    statsKeepAliveInterval,
	}
}

// GetStats godoc
//
//	@Summary	Dashboard statistics
//	@Tags		Admin
//	@Produce	json
//	@Success	200	{object}	models.AdminStats		"Stats"
//	@Failure	401	{object}	response.ErrorResponse	"Authentication required"
//	@Failure	403	{object}	response.ErrorResponse	"Admin access required"
//	@Security	BearerAuth
//	@Router		/admin/stats [get]
func (h *AdminHandler) GetStats() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		response.Success(w, http.StatusOK, h.statsService.GetStats(r.Context()))
	}
}

// StreamStats godoc
//
//	@Summary		Live dashboard statistics
//	@Description	Server-sent events. The current stats are sent first, then one event per catalog or order change.
//	@Tags			Admin
//	@Produce		text/event-stream
//	@Success		200	{object}	models.AdminStats	"Stream of stats events"
//	@Security		BearerAuth
//	@Router			/admin/stats/stream [get]
func (h *AdminHandler) StreamStats() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())
		rc := http.NewResponseController(w)

		sub := h.statsService.Subscribe()
		defer sub.Unsubscribe()

		// The stream outlives the server's write timeout.
		_ = rc.SetWriteDeadline(time.Time{})

		header := w.Header()
		header.Set("Content-Type", "text/event-stream")
		header.Set("Cache-Control", "no-cache")
		header.Set("Connection", "keep-alive")
		header.Set("X-Accel-Buffering", "no")
		w.WriteHeader(http.StatusOK)

		if err := writeStatsEvent(w, h.statsService.GetStats(r.Context())); err != nil {
			logger.Warn("Failed to write initial stats event", slog.Any("error", err))
			return
		}
		if err := rc.Flush(); err != nil {
			logger.Error("Streaming not supported by response writer", slog.Any("error", err))
			return
		}

		logger.Info("Stats stream opened")
		defer logger.Info("Stats stream closed")

		ticker := time.NewTicker(h.keepAlive)
		defer ticker.Stop()

		for {
			var err error

			select {
			case <-r.Context().Done():
				return
			case stats, ok := <-sub.C:
				if !ok {
					return
				}
				err = writeStatsEvent(w, stats)
			case <-ticker.C:
				_, err = io.WriteString(w, ": keep-alive\n\n")
			}

			if err == nil {
				err = rc.Flush()
			}
			if err != nil {
				logger.Debug("Stats stream write failed", slog.Any("error", err))
				return
			}
		}
	}
}

func writeStatsEvent(w io.Writer, stats *models.AdminStats) error {
	payload, err := json.Marshal(stats)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "data: %s\n\n", payload)
	return err
}

// ListOrders godoc
//
//	@Summary	List orders
//	@Tags		Admin
//	@Produce	json
//	@Success	200	{object}	models.ListResponse[models.Order]	"Orders, newest first"
//	@Security	BearerAuth
//	@Router		/admin/orders [get]
func (h *AdminHandler) ListOrders() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		response.Success(w, http.StatusOK, h.orderService.ListOrders(r.Context()))
	}
}

// ListUsers godoc
//
//	@Summary	List users
//	@Tags		Admin
//	@Produce	json
//	@Success	200	{object}	models.ListResponse[models.User]	"Users, oldest first"
//	@Security	BearerAuth
//	@Router		/admin/users [get]
func (h *AdminHandler) ListUsers() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		response.Success(w, http.StatusOK, h.userService.ListUsers(r.Context()))
	}
}

// UpdatePremium godoc
//
//	@Summary		Set a user's premium status
//	@Description	premiumUntil is an RFC3339 timestamp or null.
//	@Tags			Admin
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string						true	"User ID"
//	@Param			premium	body		models.UpdatePremiumRequest	true	"Premium status"
//	@Success		200		{object}	models.User					"Updated user"
//	@Failure		400		{object}	response.ErrorResponse		"Validation error"
//	@Failure		404		{object}	response.ErrorResponse		"User not found"
//	@Security		BearerAuth
//	@Router			/admin/users/{id}/premium [patch]
func (h *AdminHandler) UpdatePremium() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())
		userID := r.PathValue("id")
		logger = logger.With(slog.String("userId", userID))

		var req models.UpdatePremiumRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid premium update input")
			return
		}

		user, err := h.userService.UpdatePremium(r.Context(), userID, &req)
		if err != nil {
			logger.Warn("Failed to update premium status", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		logger.Info("Premium status updated", slog.Bool("isPremium", user.IsPremium))
		response.Success(w, http.StatusOK, user)
	}
}
