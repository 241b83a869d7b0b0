package handlers

import (
	"log/slog"
	"net/http"

	"github.com/aaravmahajanofficial/templatehub/internal/api/middleware"
	"github.com/aaravmahajanofficial/templatehub/internal/errors"
	"github.com/aaravmahajanofficial/templatehub/internal/models"
	service "github.com/aaravmahajanofficial/templatehub/internal/services"
	"github.com/aaravmahajanofficial/templatehub/internal/utils"
	"github.com/aaravmahajanofficial/templatehub/internal/utils/response"
	"github.com/go-playground/validator/v10"
)

// CartHandler serves the session cart. Every route sits behind the
// CartSession middleware, which resolves the cart id from the cookie.
type CartHandler struct {
	cartService service.CartService
	validator   *validator.Validate
}

func NewCartHandler(cartService service.CartService) *CartHandler {
	return &CartHandler{cartService: cartService, validator: utils.NewValidator()}
}

// cartID returns the session cart id or writes an error.
func cartID(w http.ResponseWriter, r *http.Request) (string, bool) {
	id := middleware.CartIDFromContext(r.Context())
	if id == "" {
		middleware.LoggerFromContext(r.Context()).Error("Cart session missing from request context")
		response.Error(w, errors.InternalError("Cart session unavailable"))
		return "", false
	}
	return id, true
}

// GetCart godoc
//
//	@Summary		Get the session cart
//	@Description	Returns the cart bound to the templhub.cart cookie, creating it when needed.
//	@Tags			Cart
//	@Produce		json
//	@Success		200	{object}	models.Cart	"Cart"
//	@Router			/cart [get]
func (h *CartHandler) GetCart() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		id, ok := cartID(w, r)
		if !ok {
			return
		}

		response.Success(w, http.StatusOK, h.cartService.GetCart(r.Context(), id))
	}
}

// AddItem godoc
//
//	@Summary		Add a template to the cart
//	@Description	Adds quantity units (default 1); an existing line is incremented and re-priced.
//	@Tags			Cart
//	@Accept			json
//	@Produce		json
//	@Param			item	body		models.AddCartItemRequest	true	"Item"
//	@Success		201		{object}	models.Cart					"Updated cart"
//	@Failure		400		{object}	response.ErrorResponse		"Validation error"
//	@Failure		404		{object}	response.ErrorResponse		"Template not found"
//	@Router			/cart/items [post]
func (h *CartHandler) AddItem() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		id, ok := cartID(w, r)
		if !ok {
			return
		}
		logger = logger.With(slog.String("cartId", id))

		var req models.AddCartItemRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid add to cart input")
			return
		}

		cart, err := h.cartService.AddItem(r.Context(), id, &req)
		if err != nil {
			logger.Warn("Failed to add item to cart", slog.String("templateId", req.TemplateID), slog.Any("error", err))
			response.Error(w, err)
			return
		}

		logger.Info("Item added to cart", slog.String("templateId", req.TemplateID))
		response.Success(w, http.StatusCreated, cart)
	}
}

// UpdateItem godoc
//
//	@Summary		Change a cart line quantity
//	@Description	A quantity of zero or less removes the line.
//	@Tags			Cart
//	@Accept			json
//	@Produce		json
//	@Param			itemId	path		string							true	"Cart item ID"
//	@Param			item	body		models.UpdateCartItemRequest	true	"Quantity"
//	@Success		200		{object}	models.Cart						"Updated cart"
//	@Failure		400		{object}	response.ErrorResponse			"Validation error"
//	@Failure		404		{object}	response.ErrorResponse			"Cart item not found"
//	@Router			/cart/items/{itemId} [patch]
func (h *CartHandler) UpdateItem() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		id, ok := cartID(w, r)
		if !ok {
			return
		}
		itemID := r.PathValue("itemId")
		logger = logger.With(slog.String("cartId", id), slog.String("itemId", itemID))

		var req models.UpdateCartItemRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid cart item update input")
			return
		}

		cart, err := h.cartService.UpdateItem(r.Context(), id, itemID, &req)
		if err != nil {
			logger.Warn("Failed to update cart item", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, cart)
	}
}

// RemoveItem godoc
//
//	@Summary	Remove a cart line
//	@Tags		Cart
//	@Produce	json
//	@Param		itemId	path		string		true	"Cart item ID"
//	@Success	200		{object}	models.Cart	"Updated cart"
//	@Router		/cart/items/{itemId} [delete]
func (h *CartHandler) RemoveItem() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		id, ok := cartID(w, r)
		if !ok {
			return
		}

		response.Success(w, http.StatusOK, h.cartService.RemoveItem(r.Context(), id, r.PathValue("itemId")))
	}
}

// ClearCart godoc
//
//	@Summary	Empty the cart
//	@Tags		Cart
//	@Produce	json
//	@Success	200	{object}	models.Cart	"Empty cart"
//	@Router		/cart [delete]
func (h *CartHandler) ClearCart() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		id, ok := cartID(w, r)
		if !ok {
			return
		}

		response.Success(w, http.StatusOK, h.cartService.ClearCart(r.Context(), id))
	}
}
