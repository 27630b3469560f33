package repositories

import (
	"context"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/nefdev/ecommerce-api/internal/logger"
	"github.com/nefdev/ecommerce-api/internal/models"
)

// ProductReadRepository handles product read operations.
type ProductReadRepository struct {
	db *sqlx.DB
}

func NewProductReadRepository(db *sqlx.DB) *ProductReadRepository {
	return &ProductReadRepository{db: db}
}

// List returns every product in the catalog.
func (r *ProductReadRepository) List(ctx context.Context) ([]models.ProductDB, error) {
	const query = `
		SELECT product_id, name, short_description, long_description, price
		FROM products
		ORDER BY product_id
	`

	var products []models.ProductDB
	err := r.db.SelectContext(ctx, &products, query)

	logger.Log.Infow("product query",
		"query", strings.Join(strings.Fields(query), " "),
		"count", len(products),
		"error", err,
	)

	if err != nil {
		return nil, err
	}

	return products, nil
}
