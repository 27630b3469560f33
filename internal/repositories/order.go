package repositories

import (
	"context"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/nefdev/ecommerce-api/internal/logger"
	"github.com/nefdev/ecommerce-api/internal/models"
)

// OrderReadRepository handles order read operations.
type OrderReadRepository struct {
	db *sqlx.DB
}

func NewOrderReadRepository(db *sqlx.DB) *OrderReadRepository {
	return &OrderReadRepository{db: db}
}

// ListByUserID returns the orders belonging to a user, items included.
func (r *OrderReadRepository) ListByUserID(ctx context.Context, userID int64) ([]models.OrderDB, error) {
	const orderQuery = `
		SELECT order_id, user_id, address, city, country, created_at
		FROM orders
		WHERE user_id = $1
		ORDER BY order_id
	`

	var orders []models.OrderDB
	err := r.db.SelectContext(ctx, &orders, orderQuery, userID)

	logger.Log.Infow("order query",
		"query", strings.Join(strings.Fields(orderQuery), " "),
		"args", []any{userID},
		"count", len(orders),
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	if len(orders) == 0 {
		return orders, nil
	}

	const itemQuery = `
		SELECT i.item_id, i.order_id, i.product_id, i.quantity
		FROM order_items i
		JOIN orders o ON o.order_id = i.order_id
		WHERE o.user_id = $1
		ORDER BY i.item_id
	`

	var items []models.OrderItemDB
	if err := r.db.SelectContext(ctx, &items, itemQuery, userID); err != nil {
		logger.Log.Errorw("order items query failed", "error", err)
		return nil, err
	}

	byOrder := make(map[int64][]models.OrderItemDB, len(orders))
	for _, item := range items {
		byOrder[item.OrderID] = append(byOrder[item.OrderID], item)
	}
	for i := range orders {
		orders[i].Items = byOrder[orders[i].OrderID]
	}

	return orders, nil
}
