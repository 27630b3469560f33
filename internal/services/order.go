package services

import (
	"context"

	"github.com/nefdev/ecommerce-api/internal/logger"
	"github.com/nefdev/ecommerce-api/internal/models"
)

// OrderReader retrieves orders from the database.
type OrderReader interface {
	ListByUserID(ctx context.Context, userID int64) ([]models.OrderDB, error)
}

// OrderService serves per-user order history.
type OrderService struct {
	readRepo OrderReader
}

// NewOrderService creates a new OrderService.
func NewOrderService(readRepo OrderReader) *OrderService {
	return &OrderService{readRepo: readRepo}
}

// GetOrders returns the orders belonging to the given user.
func (s *OrderService) GetOrders(ctx context.Context, userID int64) ([]models.OrderDB, error) {
	orders, err := s.readRepo.ListByUserID(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to list orders", "userID", userID, "error", err)
		return nil, err
	}
	return orders, nil
}
