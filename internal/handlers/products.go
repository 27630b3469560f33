package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/nefdev/ecommerce-api/internal/logger"
	"github.com/nefdev/ecommerce-api/internal/models"
)

// ProductGetter defines the interface that the product service must implement.
type ProductGetter interface {
	GetProducts(ctx context.Context) ([]models.ProductDB, error)
}

// ProductsErrorResponse represents an error response for the product listing
// swagger:model ProductsErrorResponse
type ProductsErrorResponse struct {
	// Error message
	// example: Internal server error
	Error string `json:"error"`
}

// NewGetProductsHandler returns an HTTP handler for the product catalog.
// @Summary List products
// @Description Returns every product in the catalog.
// @Tags product
// @Produce json
// @Success 200 {array} models.ProductDB "Product catalog"
// @Failure 500 {object} handlers.ProductsErrorResponse "Internal server error"
// @Router /product [get]
func NewGetProductsHandler(svc ProductGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		products, err := svc.GetProducts(r.Context())
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(ProductsErrorResponse{
				Error: "Internal server error",
			})
			return
		}

		if products == nil {
			products = []models.ProductDB{}
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(products)
	}
}
