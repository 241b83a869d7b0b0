package service

import (
	"context"
	stdErrors "errors"

	"github.com/aaravmahajanofficial/templatehub/internal/errors"
	"github.com/aaravmahajanofficial/templatehub/internal/models"
	repository "github.com/aaravmahajanofficial/templatehub/internal/repositories"
)

type CartService interface {
	GetCart(ctx context.Context, cartID string) *models.Cart
	AddItem(ctx context.Context, cartID string, req *models.AddCartItemRequest) (*models.Cart, error)
	UpdateItem(ctx context.Context, cartID, itemID string, req *models.UpdateCartItemRequest) (*models.Cart, error)
	RemoveItem(ctx context.Context, cartID, itemID string) *models.Cart
	ClearCart(ctx context.Context, cartID string) *models.Cart
}

type cartService struct {
	repo repository.CartRepository
}

func NewCartService(repo repository.CartRepository) CartService {
	return &cartService{repo: repo}
}

func (s *cartService) GetCart(ctx context.Context, cartID string) *models.Cart {
	return s.repo.GetOrCreateCart(ctx, cartID)
}

func (s *cartService) AddItem(ctx context.Context, cartID string, req *models.AddCartItemRequest) (*models.Cart, error) {
	quantity := 1
	if req.Quantity != nil {
		quantity = *req.Quantity
	}

	cart, err := s.repo.AddCartItem(ctx, cartID, req.TemplateID, quantity)
	if err != nil {
		if stdErrors.Is(err, repository.ErrTemplateNotFound) {
			return nil, errors.NotFoundError("Template not found").WithError(err)
		}
		return nil, errors.InternalError("Failed to add item to cart").WithError(err)
	}

	return cart, nil
}

func (s *cartService) UpdateItem(ctx context.Context, cartID, itemID string, req *models.UpdateCartItemRequest) (*models.Cart, error) {
	cart, err := s.repo.UpdateCartItem(ctx, cartID, itemID, *req.Quantity)
	if err != nil {
		if stdErrors.Is(err, repository.ErrCartItemNotFound) {
			return nil, errors.NotFoundError("Cart item not found").WithError(err)
		}
		return nil, errors.InternalError("Failed to update cart item").WithError(err)
	}

	return cart, nil
}

func (s *cartService) RemoveItem(ctx context.Context, cartID, itemID string) *models.Cart {
	return s.repo.RemoveCartItem(ctx, cartID, itemID)
}

func (s *cartService) ClearCart(ctx context.Context, cartID string) *models.Cart {
	return s.repo.ClearCart(ctx, cartID)
}
