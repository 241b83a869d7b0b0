package service

import (
	"context"

	"github.com/aaravmahajanofficial/templatehub/internal/models"
	repository "github.com/aaravmahajanofficial/templatehub/internal/repositories"
)

type OrderService interface {
	ListOrders(ctx context.Context) models.ListResponse[*models.Order]
}

type orderService struct {
	repo repository.OrderRepository
}

func NewOrderService(repo repository.OrderRepository) OrderService {
	return &orderService{repo: repo}
}

// ListOrders returns every order, newest first.
func (s *orderService) ListOrders(ctx context.Context) models.ListResponse[*models.Order] {
	return models.NewListResponse(s.repo.ListOrders(ctx))
}
