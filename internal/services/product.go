package services

import (
	"context"

	"github.com/nefdev/ecommerce-api/internal/logger"
	"github.com/nefdev/ecommerce-api/internal/models"
)

// ProductReader retrieves the product catalog from the database.
type ProductReader interface {
	List(ctx context.Context) ([]models.ProductDB, error)
}

// ProductCacheReader caches the product catalog.
type ProductCacheReader interface {
	GetProducts(ctx context.Context) ([]models.ProductDB, error)
	SetProducts(ctx context.Context, products []models.ProductDB) error
}

// ProductService serves the product catalog with a cache in front of the
// database.
type ProductService struct {
	readRepo  ProductReader
	cacheRepo ProductCacheReader
}

// NewProductService creates a new ProductService.
func NewProductService(readRepo ProductReader, cacheRepo ProductCacheReader) *ProductService {
	return &ProductService{
		readRepo:  readRepo,
		cacheRepo: cacheRepo,
	}
}

// GetProducts returns the catalog, preferring the cache. A cache miss falls
// through to the database and repopulates the cache; a cache write failure
// is logged but does not fail the request.
func (s *ProductService) GetProducts(ctx context.Context) ([]models.ProductDB, error) {
	if s.cacheRepo != nil {
		products, err := s.cacheRepo.GetProducts(ctx)
		if err == nil {
			return products, nil
		}
	}

	products, err := s.readRepo.List(ctx)
	if err != nil {
		logger.Log.Errorw("failed to list products", "error", err)
		return nil, err
	}

	if s.cacheRepo != nil {
		if err := s.cacheRepo.SetProducts(ctx, products); err != nil {
			logger.Log.Errorw("failed to cache products", "error", err)
		}
	}

	return products, nil
}
