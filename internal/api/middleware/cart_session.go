package middleware

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"
)

const (
	CartCookieName = "templhub.cart"
	cartCookieTTL  = 30 * 24 * time.Hour
)

const cartContextKey = contextKey("cart")

// CartSession gives each browser a stable cart id kept in a cookie. Unknown
// or malformed ids are replaced with a fresh one.
func CartSession(secure bool) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cartID := ""
			if cookie, err := r.Cookie(CartCookieName); err == nil {
				if _, err := uuid.Parse(cookie.Value); err == nil {
					cartID = cookie.Value
				}
			}

			if cartID == "" {
				cartID = uuid.NewString()
				http.SetCookie(w, &http.Cookie{
					Name:     CartCookieName,
					Value:    cartID,
					Path:     "/",
					MaxAge:   int(cartCookieTTL.Seconds()),
					HttpOnly: true,
					Secure:   secure,
					SameSite: http.SameSiteLaxMode,
				})
			}

			ctx := context.WithValue(r.Context(), cartContextKey, cartID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func CartIDFromContext(ctx context.Context) string {
	cartID, _ := ctx.Value(cartContextKey).(string)
	return cartID
}

// WithCartID is used by tests and internal callers that bypass the cookie.
func WithCartID(ctx context.Context, cartID string) context.Context {
	return context.WithValue(ctx, cartContextKey, cartID)
}
