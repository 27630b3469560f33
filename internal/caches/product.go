package caches

import (
	"context"
	"encoding/json"
	"time"

	"github.com/nefdev/ecommerce-api/internal/logger"
	"github.com/nefdev/ecommerce-api/internal/models"
	"github.com/redis/go-redis/v9"
)

const productCatalogKey = "product:catalog"

// ProductCacheRepository caches the product catalog in Redis as a single
// JSON blob with a TTL.
type ProductCacheRepository struct {
	client *redis.Client
	exp    time.Duration // expiration duration for the cached catalog
}

// NewProductCacheRepository creates a new repository instance with the given TTL.
func NewProductCacheRepository(client *redis.Client, expiration time.Duration) *ProductCacheRepository {
	return &ProductCacheRepository{
		client: client,
		exp:    expiration,
	}
}

// GetProducts fetches the cached catalog. A cache miss is returned as an
// error so the caller falls through to the database.
func (r *ProductCacheRepository) GetProducts(ctx context.Context) ([]models.ProductDB, error) {
	val, err := r.client.Get(ctx, productCatalogKey).Result()
	if err != nil {
		logger.Log.Infow("product cache miss",
			"key", productCatalogKey,
			"error", err,
		)
		return nil, err
	}

	var products []models.ProductDB
	if err := json.Unmarshal([]byte(val), &products); err != nil {
		logger.Log.Errorw("product cache decode failed",
			"key", productCatalogKey,
			"error", err,
		)
		return nil, err
	}

	logger.Log.Infow("product cache hit",
		"key", productCatalogKey,
		"count", len(products),
	)

	return products, nil
}

// SetProducts stores the catalog in the cache.
func (r *ProductCacheRepository) SetProducts(ctx context.Context, products []models.ProductDB) error {
	data, err := json.Marshal(products)
	if err != nil {
		return err
	}

	err = r.client.Set(ctx, productCatalogKey, data, r.exp).Err()

	logger.Log.Infow("product cache set",
		"key", productCatalogKey,
		"count", len(products),
		"ttl", r.exp,
		"error", err,
	)

	return err
}
