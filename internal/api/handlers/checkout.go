package handlers

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/aaravmahajanofficial/templatehub/internal/api/middleware"
	"github.com/aaravmahajanofficial/templatehub/internal/models"
	service "github.com/aaravmahajanofficial/templatehub/internal/services"
	"github.com/aaravmahajanofficial/templatehub/internal/utils"
	"github.com/aaravmahajanofficial/templatehub/internal/utils/response"
	"github.com/go-playground/validator/v10"
)

type CheckoutHandler struct {
	checkoutService service.CheckoutService
	publicBaseURL   string
	validator       *validator.Validate
}

// NewCheckoutHandler takes the configured public base URL; when empty the
// redirect base is derived from each request.
func NewCheckoutHandler(checkoutService service.CheckoutService, publicBaseURL string) *CheckoutHandler {
	return &CheckoutHandler{
		checkoutService: checkoutService,
		publicBaseURL:   strings.TrimRight(publicBaseURL, "/"),
		validator:       utils.NewValidator(),
	}
}

// CreateCheckoutSession godoc
//
//	@Summary		Start a Stripe checkout
//	@Description	Creates a hosted checkout session for the session cart and returns its redirect URL.
//	@Tags			Checkout
//	@Produce		json
//	@Success		201	{object}	models.CheckoutSessionResponse	"Checkout session"
//	@Failure		400	{object}	response.ErrorResponse			"Cart is empty"
//	@Failure		500	{object}	response.ErrorResponse			"Payment processor error"
//	@Failure		503	{object}	response.ErrorResponse			"Stripe is not configured"
//	@Router			/cart/checkout [post]
func (h *CheckoutHandler) CreateCheckoutSession() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		id, ok := cartID(w, r)
		if !ok {
			return
		}
		logger = logger.With(slog.String("cartId", id))

		session, err := h.checkoutService.CreateCheckoutSession(r.Context(), id, h.baseURL(r))
		if err != nil {
			logger.Error("Failed to create checkout session", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		logger.Info("Checkout session created", slog.String("sessionId", session.SessionID))
		response.Success(w, http.StatusCreated, session)
	}
}

// CompleteCheckout godoc
//
//	@Summary		Complete a Stripe checkout
//	@Description	Verifies payment and turns the cart into an order. Safe to call more than once per session.
//	@Tags			Checkout
//	@Accept			json
//	@Produce		json
//	@Param			checkout	body		models.CompleteCheckoutRequest	true	"Checkout session"
//	@Success		200			{object}	models.CompleteCheckoutResponse	"Order and emptied cart"
//	@Failure		400			{object}	response.ErrorResponse			"Payment incomplete or session invalid"
//	@Failure		404			{object}	response.ErrorResponse			"No order for this session"
//	@Failure		503			{object}	response.ErrorResponse			"Stripe is not configured"
//	@Router			/cart/checkout/complete [post]
func (h *CheckoutHandler) CompleteCheckout() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		var req models.CompleteCheckoutRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid checkout completion input")
			return
		}
		logger = logger.With(slog.String("sessionId", req.SessionID))

		result, err := h.checkoutService.CompleteCheckout(r.Context(), req.SessionID)
		if err != nil {
			logger.Warn("Checkout completion failed", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		logger.Info("Checkout completed", slog.String("orderId", result.Order.ID))
		response.Success(w, http.StatusOK, result)
	}
}

// baseURL picks the configured public URL, then forwarded headers, then the
// request itself.
func (h *CheckoutHandler) baseURL(r *http.Request) string {
	if h.publicBaseURL != "" {
		return h.publicBaseURL
	}

	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	}
	if proto := firstHeaderValue(r, "X-Forwarded-Proto"); proto != "" {
		scheme = proto
	}

	host := r.Host
	if fwd := firstHeaderValue(r, "X-Forwarded-Host"); fwd != "" {
		host = fwd
	}

	return scheme + "://" + host
}

// firstHeaderValue returns the first entry of a comma separated proxy header.
func firstHeaderValue(r *http.Request, name string) string {
	value, _, _ := strings.Cut(r.Header.Get(name), ",")
	return strings.TrimSpace(value)
}
