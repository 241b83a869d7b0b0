// Package api assembles the HTTP surface: routes, guards and the middleware chain.
package api

import (
	"net/http"

	"github.com/aaravmahajanofficial/templatehub/internal/api/handlers"
	"github.com/aaravmahajanofficial/templatehub/internal/api/middleware"
	"github.com/aaravmahajanofficial/templatehub/internal/errors"
	"github.com/aaravmahajanofficial/templatehub/internal/metrics"
	"github.com/aaravmahajanofficial/templatehub/internal/utils/response"
	httpSwagger "github.com/swaggo/http-swagger"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

type Handlers struct {
	Auth      *handlers.AuthHandler
	Templates *handlers.TemplateHandler
	Cart      *handlers.CartHandler
	Checkout  *handlers.CheckoutHandler
	Admin     *handlers.AdminHandler
	Uploads   *handlers.UploadHandler
	Health    http.Handler
}

type Options struct {
	Auth         *middleware.AuthMiddleware
	CookieSecure bool
	ServiceName  string
}

func NewRouter(h *Handlers, opts Options) http.Handler {

	auth := opts.Auth
	cart := middleware.CartSession(opts.CookieSecure)
	admin := func(next http.HandlerFunc) http.Handler { return auth.Admin(next) }

	mux := http.NewServeMux()

	mux.Handle("GET /api/health", h.Health)
	mux.Handle("GET /metrics", metrics.Handler())
	mux.Handle("GET /swagger/", httpSwagger.WrapHandler)

	mux.HandleFunc("POST /api/auth/register", h.Auth.Register())
	mux.HandleFunc("POST /api/auth/login", h.Auth.Login())
	mux.HandleFunc("POST /api/auth/logout", h.Auth.Logout())
	mux.Handle("GET /api/auth/me", auth.Authenticate(h.Auth.Me()))

	mux.HandleFunc("GET /api/templates", h.Templates.ListTemplates())
	mux.HandleFunc("GET /api/templates/{idOrSlug}", h.Templates.GetTemplate())
	mux.Handle("POST /api/templates", admin(h.Templates.CreateTemplate()))
	mux.Handle("PUT /api/templates/{idOrSlug}", admin(h.Templates.UpdateTemplate()))
	mux.Handle("DELETE /api/templates/{idOrSlug}", admin(h.Templates.DeleteTemplate()))

	mux.Handle("GET /api/cart", cart(h.Cart.GetCart()))
	mux.Handle("DELETE /api/cart", cart(h.Cart.ClearCart()))
	mux.Handle("POST /api/cart/items", cart(h.Cart.AddItem()))
	mux.Handle("PATCH /api/cart/items/{itemId}", cart(h.Cart.UpdateItem()))
	mux.Handle("DELETE /api/cart/items/{itemId}", cart(h.Cart.RemoveItem()))
	mux.Handle("POST /api/cart/checkout", cart(h.Checkout.CreateCheckoutSession()))
	mux.HandleFunc("POST /api/cart/checkout/complete", h.Checkout.CompleteCheckout())

	mux.Handle("POST /api/uploads", admin(h.Uploads.UploadMedia()))
	mux.Handle("GET /uploads/", h.Uploads.ServeUploads())

	mux.Handle("GET /api/admin/stats", admin(h.Admin.GetStats()))
	mux.Handle("GET /api/admin/stats/stream", admin(h.Admin.StreamStats()))
	mux.Handle("GET /api/admin/orders", admin(h.Admin.ListOrders()))
	mux.Handle("GET /api/admin/users", admin(h.Admin.ListUsers()))
	mux.Handle("PATCH /api/admin/users/{id}/premium", admin(h.Admin.UpdatePremium()))

	mux.HandleFunc("/api/", func(w http.ResponseWriter, r *http.Request) {
		response.Error(w, errors.NotFoundError("No route for "+r.URL.Path))
	})

	// Middleware chaining
	var handler http.Handler = mux
	handler = metrics.Middleware(handler)
	handler = middleware.Logging(handler)
	handler = otelhttp.NewHandler(handler, opts.ServiceName)

	return handler
}
