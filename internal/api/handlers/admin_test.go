package handlers_test

import (
	"bufio"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/aaravmahajanofficial/templatehub/internal/api/handlers"
	appErrors "github.com/aaravmahajanofficial/templatehub/internal/errors"
	"github.com/aaravmahajanofficial/templatehub/internal/events"
	"github.com/aaravmahajanofficial/templatehub/internal/models"
	"github.com/aaravmahajanofficial/templatehub/internal/services/mocks"
	"github.com/aaravmahajanofficial/templatehub/internal/testutils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newAdminHandler(t *testing.T) (*handlers.AdminHandler, *mocks.MockStatsService, *mocks.MockOrderService, *mocks.MockUserService) {
	stats := mocks.NewMockStatsService(t)
	orders := mocks.NewMockOrderService(t)
	users := mocks.NewMockUserService(t)
	return handlers.NewAdminHandler(stats, orders, users), stats, orders, users
}

// readEvent returns the JSON payload of the next data event, skipping comments.
func readEvent(t *testing.T, r *bufio.Reader) *models.AdminStats {
	t.Helper()
	for {
		line, err := r.ReadString('\n')
		require.NoError(t, err)
		payload, ok := strings.CutPrefix(line, "data: ")
		if !ok {
			continue
		}
		var stats models.AdminStats
		require.NoError(t, json.Unmarshal([]byte(strings.TrimSpace(payload)), &stats))
		return &stats
	}
}

func TestGetStats(t *testing.T) {
	handler, stats, _, _ := newAdminHandler(t)

	stats.On("GetStats", mock.Anything).Return(&models.AdminStats{
		TotalTemplates:     4,
		PublishedTemplates: 3,
		TotalOrders:        2,
		TotalRevenue:       120,
		RecentOrders:       []models.OrderSummary{},
	}).Once()

	req := testutils.CreateTestRequestWithContext(http.MethodGet, "/api/admin/stats", nil, testutils.AdminClaims(), nil)
	rr := httptest.NewRecorder()

	handler.GetStats().ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	got := decodeData[models.AdminStats](t, rr)
	assert.Equal(t, 3, got.PublishedTemplates)
	assert.Equal(t, 120.0, got.TotalRevenue)
}

func TestStreamStats(t *testing.T) {
	t.Run("Initial snapshot then published updates", func(t *testing.T) {
		// Arrange
		handler, stats, _, _ := newAdminHandler(t)
		broker := events.NewStatsBroker()
		t.Cleanup(broker.Close)

		stats.On("Subscribe").Return(broker.Subscribe).Once()
		stats.On("GetStats", mock.Anything).Return(&models.AdminStats{TotalTemplates: 1}).Once()

		server := httptest.NewServer(handler.StreamStats())
		t.Cleanup(server.Close)

		// Act
		resp, err := http.Get(server.URL)
		require.NoError(t, err)
		reader := bufio.NewReader(resp.Body)

		// Assert
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, "text/event-stream", resp.Header.Get("Content-Type"))
		assert.Equal(t, "no-cache", resp.Header.Get("Cache-Control"))
		assert.Equal(t, 1, readEvent(t, reader).TotalTemplates)

		broker.Publish(&models.AdminStats{TotalTemplates: 1, TotalOrders: 1, TotalRevenue: 39})
		next := readEvent(t, reader)
		assert.Equal(t, 1, next.TotalOrders)
		assert.Equal(t, 39.0, next.TotalRevenue)

		// Disconnecting the client releases the subscription.
		require.NoError(t, resp.Body.Close())
		assert.Eventually(t, func() bool { return broker.Subscribers() == 0 }, 2*time.Second, 10*time.Millisecond)
	})

	t.Run("Closed broker ends the stream", func(t *testing.T) {
		handler, stats, _, _ := newAdminHandler(t)
		broker := events.NewStatsBroker()

		stats.On("Subscribe").Return(broker.Subscribe).Once()
		stats.On("GetStats", mock.Anything).Return(&models.AdminStats{}).Once()

		server := httptest.NewServer(handler.StreamStats())
		t.Cleanup(server.Close)

		resp, err := http.Get(server.URL)
		require.NoError(t, err)
		defer resp.Body.Close()
		reader := bufio.NewReader(resp.Body)
		readEvent(t, reader)

		broker.Close()

		rest, err := io.ReadAll(reader)
		require.NoError(t, err)
		assert.NotContains(t, string(rest), "data:")
	})
}

func TestAdminListOrders(t *testing.T) {
	handler, _, orders, _ := newAdminHandler(t)

	orders.On("ListOrders", mock.Anything).Return(models.NewListResponse([]*models.Order{
		{ID: "order-2", Total: 20, Status: models.OrderStatusPaid},
		{ID: "order-1", Total: 10, Status: models.OrderStatusPaid},
	})).Once()

	req := testutils.CreateTestRequestWithContext(http.MethodGet, "/api/admin/orders", nil, testutils.AdminClaims(), nil)
	rr := httptest.NewRecorder()

	handler.ListOrders().ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	list := decodeData[models.ListResponse[models.Order]](t, rr)
	assert.Equal(t, 2, list.Meta.Total)
	assert.Equal(t, "order-2", list.Data[0].ID)
}

func TestAdminListUsers(t *testing.T) {
	handler, _, _, users := newAdminHandler(t)

	users.On("ListUsers", mock.Anything).Return(models.NewListResponse([]*models.User{
		{ID: "admin-id", Username: "admin", Role: models.RoleAdmin},
	})).Once()

	req := testutils.CreateTestRequestWithContext(http.MethodGet, "/api/admin/users", nil, testutils.AdminClaims(), nil)
	rr := httptest.NewRecorder()

	handler.ListUsers().ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	list := decodeData[models.ListResponse[models.User]](t, rr)
	assert.Equal(t, 1, list.Meta.Total)
	assert.Equal(t, models.RoleAdmin, list.Data[0].Role)
}

func TestUpdatePremium(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		// Arrange
		handler, _, _, users := newAdminHandler(t)
		until := time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC)

		users.On("UpdatePremium", mock.Anything, "user-1", mock.MatchedBy(func(req *models.UpdatePremiumRequest) bool {
			return *req.IsPremium && req.PremiumUntil != nil && req.PremiumUntil.Equal(until)
		})).Return(&models.User{ID: "user-1", IsPremium: true, PremiumUntil: &until}, nil).Once()

		req := testutils.CreateTestRequestWithContext(http.MethodPatch, "/api/admin/users/user-1/premium",
			jsonBody(t, map[string]any{"isPremium": true, "premiumUntil": "2030-01-01T00:00:00Z"}),
			testutils.AdminClaims(), map[string]string{"id": "user-1"})
		rr := httptest.NewRecorder()

		// Act
		handler.UpdatePremium().ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusOK, rr.Code)
		user := decodeData[models.User](t, rr)
		assert.True(t, user.IsPremium)
		require.NotNil(t, user.PremiumUntil)
		assert.True(t, user.PremiumUntil.Equal(until))
	})

	t.Run("Invalid Input - Missing isPremium", func(t *testing.T) {
		handler, _, _, _ := newAdminHandler(t)

		req := testutils.CreateTestRequestWithContext(http.MethodPatch, "/api/admin/users/user-1/premium",
			jsonBody(t, map[string]any{"premiumUntil": nil}), testutils.AdminClaims(), map[string]string{"id": "user-1"})
		rr := httptest.NewRecorder()

		handler.UpdatePremium().ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("Failure - Unknown user", func(t *testing.T) {
		handler, _, _, users := newAdminHandler(t)

		users.On("UpdatePremium", mock.Anything, "ghost", mock.Anything).Return(nil, appErrors.NotFoundError("User not found")).Once()

		req := testutils.CreateTestRequestWithContext(http.MethodPatch, "/api/admin/users/ghost/premium",
			jsonBody(t, map[string]any{"isPremium": false}), testutils.AdminClaims(), map[string]string{"id": "ghost"})
		rr := httptest.NewRecorder()

		handler.UpdatePremium().ServeHTTP(rr, req)

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})
}
