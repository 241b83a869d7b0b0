package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/aaravmahajanofficial/templatehub/internal/api/middleware"
	"github.com/aaravmahajanofficial/templatehub/internal/errors"
	"github.com/aaravmahajanofficial/templatehub/internal/models"
	service "github.com/aaravmahajanofficial/templatehub/internal/services"
	"github.com/aaravmahajanofficial/templatehub/internal/utils"
	"github.com/aaravmahajanofficial/templatehub/internal/utils/response"
	"github.com/go-playground/validator/v10"
)

type AuthHandler struct {
	userService  service.UserService
	validator    *validator.Validate
	secureCookie bool
}

func NewAuthHandler(userService service.UserService, secureCookie bool) *AuthHandler {
	return &AuthHandler{userService: userService, validator: utils.NewValidator(), secureCookie: secureCookie}
}

// Register godoc
//
//	@Summary		Register a user
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			user	body		models.RegisterRequest	true	"Credentials"
//	@Success		201		{object}	models.User				"Created user"
//	@Failure		400		{object}	response.ErrorResponse	"Validation error"
//	@Failure		409		{object}	response.ErrorResponse	"Username already exists"
//	@Router			/auth/register [post]
func (h *AuthHandler) Register() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		var req models.RegisterRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid registration input")
			return
		}

		user, err := h.userService.Register(r.Context(), &req)
		if err != nil {
			logger.Warn("User registration failed", slog.String("username", req.Username), slog.Any("error", err))
			response.Error(w, err)
			return
		}

		logger.Info("User registered", slog.String("userId", user.ID))
		response.Success(w, http.StatusCreated, user)
	}
}

// Login godoc
//
//	@Summary		Log in
//	@Description	Returns a bearer token and also sets it as an HttpOnly cookie.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			credentials	body		models.LoginRequest		true	"Credentials"
//	@Success		200			{object}	models.LoginResponse	"Token and user"
//	@Failure		401			{object}	response.ErrorResponse	"Invalid username or password"
//	@Failure		429			{object}	response.ErrorResponse	"Too many login attempts"
//	@Router			/auth/login [post]
func (h *AuthHandler) Login() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		var req models.LoginRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid login input")
			return
		}

		resp, err := h.userService.Login(r.Context(), &req)
		if err != nil {
			logger.Warn("Login failed", slog.String("username", req.Username), slog.Any("error", err))
			response.Error(w, err)
			return
		}

		http.SetCookie(w, &http.Cookie{
			Name:     middleware.TokenCookieName,
			Value:    resp.Token,
			Path:     "/",
			MaxAge:   resp.ExpiresIn,
			HttpOnly: true,
			Secure:   h.secureCookie,
			SameSite: http.SameSiteLaxMode,
		})

		logger.Info("User logged in", slog.String("userId", resp.User.ID))
		response.Success(w, http.StatusOK, resp)
	}
}

// Logout godoc
//
//	@Summary	Log out
//	@Tags		Auth
//	@Success	204
//	@Router		/auth/logout [post]
func (h *AuthHandler) Logout() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		http.SetCookie(w, &http.Cookie{
			Name:     middleware.TokenCookieName,
			Value:    "",
			Path:     "/",
			MaxAge:   -1,
			Expires:  time.Unix(0, 0),
			HttpOnly: true,
			Secure:   h.secureCookie,
			SameSite: http.SameSiteLaxMode,
		})
		w.WriteHeader(http.StatusNoContent)
	}
}

// Me godoc
//
//	@Summary	Current user
//	@Tags		Auth
//	@Produce	json
//	@Success	200	{object}	models.User				"Authenticated user"
//	@Failure	401	{object}	response.ErrorResponse	"Authentication required"
//	@Security	BearerAuth
//	@Router		/auth/me [get]
func (h *AuthHandler) Me() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		claims, ok := middleware.ClaimsFromContext(r.Context())
		if !ok {
			logger.Warn("Unauthorized profile access attempt")
			response.Error(w, errors.UnauthorizedError("Authentication required"))
			return
		}

		user, err := h.userService.GetUserByID(r.Context(), claims.UserID)
		if err != nil {
			// A valid token for a deleted account is treated as logged out.
			logger.Warn("Token user not found", slog.String("userId", claims.UserID))
			response.Error(w, errors.UnauthorizedError("Authentication required"))
			return
		}

		response.Success(w, http.StatusOK, user)
	}
}
