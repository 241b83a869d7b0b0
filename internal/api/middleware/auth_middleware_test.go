package middleware_test

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/aaravmahajanofficial/templatehub/internal/api/middleware"
	"github.com/aaravmahajanofficial/templatehub/internal/models"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testJwtKey = []byte("test-secret-key-123456789012345")

func createTestToken(userID, username string, role models.UserRole, duration time.Duration, key []byte, method jwt.SigningMethod) (string, error) {
	claims := &models.Claims{
		UserID:   userID,
		Username: username,
		Role:     role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(duration)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			NotBefore: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
		},
	}
	token := jwt.NewWithClaims(method, claims)

	return token.SignedString(key)
}

func withTestLogger(req *http.Request) *http.Request {
	baseLogger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	ctx := context.WithValue(req.Context(), middleware.LoggerKey, baseLogger)
	return req.WithContext(ctx)
}

func TestAuthMiddleware(t *testing.T) {
	// Arrange
	authMiddleware := middleware.NewAuthMiddleware(testJwtKey)
	userID := uuid.NewString()
	username := "ada"

	validToken, err := createTestToken(userID, username, models.RoleUser, time.Hour, testJwtKey, jwt.SigningMethodHS256)
	require.NoError(t, err)

	mockNextHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.ClaimsFromContext(r.Context())
		require.True(t, ok, "User claims should be in context")
		assert.Equal(t, userID, claims.UserID)
		assert.Equal(t, username, claims.Username)

		require.NotNil(t, middleware.LoggerFromContext(r.Context()))

		w.WriteHeader(http.StatusOK)
		_, err := w.Write([]byte(`{"success": true}`))
		require.NoError(t, err)
	})

	tests := []struct {
		name           string
		authHeader     string
		cookie         string
		expectedStatus int
		expectedBody   string
	}{
		{
			name:           "Success - Valid Bearer Token",
			authHeader:     "Bearer " + validToken,
			expectedStatus: http.StatusOK,
			expectedBody:   `{"success": true}`,
		},
		{
			name:           "Success - Valid Cookie Token",
			cookie:         validToken,
			expectedStatus: http.StatusOK,
			expectedBody:   `{"success": true}`,
		},
		{
			name:           "Fail - No Credentials",
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   `{"success": false, "error": {"code": "UNAUTHORIZED", "message": "Authentication required"}}`,
		},
		{
			name:           "Fail - Invalid Authorization Header Format (No Bearer)",
			authHeader:     "InvalidTokenFormat",
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   `{"success": false, "error": {"code": "UNAUTHORIZED", "message": "Invalid authorization format"}}`,
		},
		{
			name:           "Fail - Invalid Authorization Header Format (Only Bearer)",
			authHeader:     "Bearer ",
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   `{"success": false, "error": {"code": "UNAUTHORIZED", "message": "Invalid authorization format"}}`,
		},
		{
			name:           "Fail - Invalid Token (Malformed)",
			authHeader:     "Bearer not.a.valid.token",
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   `{"success": false, "error": {"code": "UNAUTHORIZED", "message": "Invalid or expired token"}}`,
		},
		{
			name: "Fail - Invalid Token (Wrong Signing Key)",
			authHeader: func() string {
				token, err := createTestToken(userID, username, models.RoleUser, time.Hour, []byte("different-secret-key-0987654321"), jwt.SigningMethodHS256)
				require.NoError(t, err)
				return "Bearer " + token
			}(),
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   `{"success": false, "error": {"code": "UNAUTHORIZED", "message": "Invalid or expired token"}}`,
		},
		{
			name: "Fail - Invalid Token (Wrong Signing Method)",
			authHeader: func() string {
				token, err := createTestToken(userID, username, models.RoleUser, time.Hour, testJwtKey, jwt.SigningMethodHS512)
				require.NoError(t, err)
				return "Bearer " + token
			}(),
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   `{"success": false, "error": {"code": "UNAUTHORIZED", "message": "Invalid or expired token"}}`,
		},
		{
			name: "Fail - Expired Token",
			authHeader: func() string {
				token, err := createTestToken(userID, username, models.RoleUser, -time.Hour, testJwtKey, jwt.SigningMethodHS256)
				require.NoError(t, err)
				return "Bearer " + token
			}(),
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   `{"success": false, "error": {"code": "UNAUTHORIZED", "message": "Invalid or expired token"}}`,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			req := withTestLogger(httptest.NewRequest(http.MethodGet, "/", nil))
			if tc.authHeader != "" {
				req.Header.Set("Authorization", tc.authHeader)
			}
			if tc.cookie != "" {
				req.AddCookie(&http.Cookie{Name: middleware.TokenCookieName, Value: tc.cookie})
			}

			rr := httptest.NewRecorder()

			// Act
			authMiddleware.Authenticate(mockNextHandler).ServeHTTP(rr, req)

			// Assert
			assert.Equal(t, tc.expectedStatus, rr.Code, "Unexpected status code")
			assert.JSONEq(t, tc.expectedBody, rr.Body.String(), "Unexpected response body")
		})
	}
}

func TestRequireAdmin(t *testing.T) {
	authMiddleware := middleware.NewAuthMiddleware(testJwtKey)
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	t.Run("Admin passes", func(t *testing.T) {
		token, err := createTestToken(uuid.NewString(), "admin", models.RoleAdmin, time.Hour, testJwtKey, jwt.SigningMethodHS256)
		require.NoError(t, err)

		req := withTestLogger(httptest.NewRequest(http.MethodGet, "/api/admin/stats", nil))
		req.Header.Set("Authorization", "Bearer "+token)
		rr := httptest.NewRecorder()

		authMiddleware.Admin(next).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusNoContent, rr.Code)
	})

	t.Run("Regular user is forbidden", func(t *testing.T) {
		token, err := createTestToken(uuid.NewString(), "ada", models.RoleUser, time.Hour, testJwtKey, jwt.SigningMethodHS256)
		require.NoError(t, err)

		req := withTestLogger(httptest.NewRequest(http.MethodGet, "/api/admin/stats", nil))
		req.Header.Set("Authorization", "Bearer "+token)
		rr := httptest.NewRecorder()

		authMiddleware.Admin(next).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusForbidden, rr.Code)
		assert.Contains(t, rr.Body.String(), "FORBIDDEN")
	})

	t.Run("Missing claims", func(t *testing.T) {
		req := withTestLogger(httptest.NewRequest(http.MethodGet, "/api/admin/stats", nil))
		rr := httptest.NewRecorder()

		authMiddleware.RequireAdmin(next).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})
}

func TestNewAuthMiddleware(t *testing.T) {
	key := []byte("some-key")
	mw := middleware.NewAuthMiddleware(key)
	assert.NotNil(t, mw, "Middleware should not be nil")
}
