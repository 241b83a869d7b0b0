package repository

import (
	"context"
	"errors"
	"slices"
	"strings"

	"github.com/aaravmahajanofficial/templatehub/internal/models"
	"github.com/shopspring/decimal"
)

var ErrCartEmpty = errors.New("cart is empty")

const recentOrdersLimit = 5

type OrderRepository interface {
	CreateOrderFromCart(ctx context.Context, cartID string) (*models.Order, error)
	ListOrders(ctx context.Context) []*models.Order
	FindLatestOrderForCart(ctx context.Context, cartID string) (*models.Order, bool)
	GetAdminStats(ctx context.Context) *models.AdminStats
}

// CreateOrderFromCart freezes the cart's lines into a paid order and empties
// the cart. Payment must be confirmed by the caller beforehand.
func (s *Store) CreateOrderFromCart(_ context.Context, cartID string) (*models.Order, error) {
	s.mu.Lock()

	cart, ok := s.carts[cartID]
	if !ok || len(cart.Items) == 0 {
		s.mu.Unlock()
		return nil, ErrCartEmpty
	}

	order := &models.Order{
		ID:        s.newID(),
		CartID:    cart.ID,
		Items:     slices.Clone(cart.Items),
		Total:     cart.Subtotal,
		Status:    models.OrderStatusPaid,
		CreatedAt: s.timestamp(),
	}
	s.orders[order.ID] = order

	cart.Items = []models.CartItem{}
	cart.Subtotal = 0

	out := order.Clone()
	s.mu.Unlock()

	s.notify(ChangeCart, cartID)
	s.notify(ChangeOrder, out.ID)
	return out, nil
}

// ListOrders returns every order, newest first.
func (s *Store) ListOrders(_ context.Context) []*models.Order {
	s.mu.Lock()
	defer s.mu.Unlock()

	orders := s.sortedOrders()
	for i, o := range orders {
		orders[i] = o.Clone()
	}

	return orders
}

// FindLatestOrderForCart returns the newest order created from cartID.
func (s *Store) FindLatestOrderForCart(_ context.Context, cartID string) (*models.Order, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, o := range s.sortedOrders() {
		if o.CartID == cartID {
			return o.Clone(), true
		}
	}

	return nil, false
}

// GetAdminStats recomputes the dashboard projection from scratch. Revenue only
// counts paid orders.
func (s *Store) GetAdminStats(_ context.Context) *models.AdminStats {
	s.mu.Lock()
	defer s.mu.Unlock()

	stats := &models.AdminStats{
		TotalTemplates: len(s.templates),
		TotalOrders:    len(s.orders),
		RecentOrders:   []models.OrderSummary{},
	}

	for _, t := range s.templates {
		if t.Status == models.TemplateStatusPublished {
			stats.PublishedTemplates++
		}
	}

	revenue := decimal.Zero
	orders := s.sortedOrders()
	for _, o := range orders {
		if o.Status == models.OrderStatusPaid {
			revenue = revenue.Add(decimal.NewFromFloat(o.Total))
		}
	}
	stats.TotalRevenue = revenue.Round(2).InexactFloat64()

	for _, o := range orders[:min(recentOrdersLimit, len(orders))] {
		stats.RecentOrders = append(stats.RecentOrders, models.OrderSummary{
			ID:        o.ID,
			Total:     o.Total,
			Status:    o.Status,
			CreatedAt: o.CreatedAt,
		})
	}

	return stats
}

// must hold s.mu
func (s *Store) sortedOrders() []*models.Order {
	orders := make([]*models.Order, 0, len(s.orders))
	for _, o := range s.orders {
		orders = append(orders, o)
	}

	slices.SortFunc(orders, func(a, b *models.Order) int {
		if c := b.CreatedAt.Compare(a.CreatedAt); c != 0 {
			return c
		}
		return strings.Compare(a.ID, b.ID)
	})

	return orders
}
