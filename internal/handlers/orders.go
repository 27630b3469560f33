package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/nefdev/ecommerce-api/internal/logger"
	"github.com/nefdev/ecommerce-api/internal/middlewares"
	"github.com/nefdev/ecommerce-api/internal/models"
)

// OrderGetter defines the interface that the order service must implement.
type OrderGetter interface {
	GetOrders(ctx context.Context, userID int64) ([]models.OrderDB, error)
}

// OrderUserReader resolves the authenticated username to a user record.
type OrderUserReader interface {
	GetByUsername(ctx context.Context, username string) (*models.UserDB, error)
}

// OrdersErrorResponse represents an error response for the order listing
// swagger:model OrdersErrorResponse
type OrdersErrorResponse struct {
	// Error message
	// example: Unauthorized
	Error string `json:"error"`
}

// NewGetOrdersHandler returns an HTTP handler for a user's order history.
// The route must sit behind the auth middleware, which stores the decoded
// username in the request context.
// @Summary List orders
// @Description Returns the orders belonging to the authenticated user.
// @Tags order
// @Produce json
// @Success 200 {array} models.OrderDB "Order history"
// @Failure 401 {object} handlers.OrdersErrorResponse "Unauthorized"
// @Failure 500 {object} handlers.OrdersErrorResponse "Internal server error"
// @Router /order [get]
// @Security BearerAuth
func NewGetOrdersHandler(svc OrderGetter, userReader OrderUserReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		username := middlewares.GetUsernameFromContext(ctx)
		if username == "" {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(OrdersErrorResponse{
				Error: "Unauthorized",
			})
			return
		}

		user, err := userReader.GetByUsername(ctx, username)
		if err != nil {
			logger.Log.Errorw("failed to resolve user", "username", username, "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(OrdersErrorResponse{
				Error: "Internal server error",
			})
			return
		}
		if user == nil {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(OrdersErrorResponse{
				Error: "Unauthorized",
			})
			return
		}

		orders, err := svc.GetOrders(ctx, user.UserID)
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(OrdersErrorResponse{
				Error: "Internal server error",
			})
			return
		}

		if orders == nil {
			orders = []models.OrderDB{}
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(orders)
	}
}
