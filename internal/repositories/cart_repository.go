package repository

import (
	"context"
	"errors"

	"github.com/aaravmahajanofficial/templatehub/internal/models"
)

var ErrCartItemNotFound = errors.New("cart item not found")

type CartRepository interface {
	GetOrCreateCart(ctx context.Context, cartID string) *models.Cart
	AddCartItem(ctx context.Context, cartID, templateID string, quantity int) (*models.Cart, error)
	UpdateCartItem(ctx context.Context, cartID, itemID string, quantity int) (*models.Cart, error)
	RemoveCartItem(ctx context.Context, cartID, itemID string) *models.Cart
	ClearCart(ctx context.Context, cartID string) *models.Cart
}

// GetOrCreateCart returns the cart with cartID, creating it empty when it does
// not exist. An empty cartID creates a cart with a fresh id.
func (s *Store) GetOrCreateCart(_ context.Context, cartID string) *models.Cart {
	s.mu.Lock()
	_, existed := s.carts[cartID]
	cart := s.cartRecord(cartID)
	out := cart.Clone()
	s.mu.Unlock()

	if !existed {
		s.notify(ChangeCart, out.ID)
	}
	return out
}

// AddCartItem adds quantity units of the template. An existing line for the
// same template is incremented and re-priced at the template's current price.
func (s *Store) AddCartItem(_ context.Context, cartID, templateID string, quantity int) (*models.Cart, error) {
	if quantity <= 0 {
		quantity = 1
	}

	s.mu.Lock()

	template, ok := s.templates[templateID]
	if !ok {
		s.mu.Unlock()
		return nil, ErrTemplateNotFound
	}

	cart := s.cartRecord(cartID)

	idx := -1
	for i := range cart.Items {
		if cart.Items[i].TemplateID == templateID {
			idx = i
			break
		}
	}

	if idx >= 0 {
		item := &cart.Items[idx]
		item.Quantity += quantity
		item.UnitPrice = template.Price
		item.Template = template.Summary()
	} else {
		cart.Items = append(cart.Items, models.CartItem{
			ID:         s.newID(),
			TemplateID: templateID,
			Quantity:   quantity,
			UnitPrice:  template.Price,
			AddedAt:    s.timestamp(),
			Template:   template.Summary(),
		})
	}

	recalculate(cart)
	out := cart.Clone()
	s.mu.Unlock()

	s.notify(ChangeCart, out.ID)
	return out, nil
}

// UpdateCartItem sets the line quantity; zero or less removes the line.
func (s *Store) UpdateCartItem(_ context.Context, cartID, itemID string, quantity int) (*models.Cart, error) {
	s.mu.Lock()

	// An unknown cart has no lines, so it is not created just to fail.
	cart, ok := s.carts[cartID]

	idx := -1
	if ok {
		for i := range cart.Items {
			if cart.Items[i].ID == itemID {
				idx = i
				break
			}
		}
	}

	if idx < 0 {
		s.mu.Unlock()
		return nil, ErrCartItemNotFound
	}

	if quantity <= 0 {
		cart.Items = append(cart.Items[:idx], cart.Items[idx+1:]...)
	} else {
		cart.Items[idx].Quantity = quantity
	}

	recalculate(cart)
	out := cart.Clone()
	s.mu.Unlock()

	s.notify(ChangeCart, out.ID)
	return out, nil
}

// RemoveCartItem is idempotent: removing a missing line returns the cart unchanged.
func (s *Store) RemoveCartItem(_ context.Context, cartID, itemID string) *models.Cart {
	s.mu.Lock()

	cart := s.cartRecord(cartID)
	before := len(cart.Items)
	cart.Items = removeItem(cart.Items, itemID)
	recalculate(cart)
	out := cart.Clone()
	s.mu.Unlock()

	if len(out.Items) != before {
		s.notify(ChangeCart, out.ID)
	}
	return out
}

func (s *Store) ClearCart(_ context.Context, cartID string) *models.Cart {
	s.mu.Lock()

	cart := s.cartRecord(cartID)
	cart.Items = []models.CartItem{}
	cart.Subtotal = 0
	out := cart.Clone()
	s.mu.Unlock()

	s.notify(ChangeCart, out.ID)
	return out
}

// cartRecord returns the live cart, creating it lazily.
// must hold s.mu
func (s *Store) cartRecord(cartID string) *models.Cart {
	if cartID == "" {
		cartID = s.newID()
	}

	cart, ok := s.carts[cartID]
	if !ok {
		cart = &models.Cart{ID: cartID, Items: []models.CartItem{}}
		s.carts[cartID] = cart
	}

	return cart
}

func recalculate(cart *models.Cart) {
	cart.Subtotal = sumItems(cart.Items)
}

func removeItem(items []models.CartItem, itemID string) []models.CartItem {
	out := items[:0]
	for _, item := range items {
		if item.ID != itemID {
			out = append(out, item)
		}
	}
	return out
}
