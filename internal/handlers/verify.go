package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/nefdev/ecommerce-api/internal/logger"
)

// Verifier defines the interface that the verification service must implement.
type Verifier interface {
	Verify(ctx context.Context, token string) (bool, error)
}

// VerifyResponse represents a successful verification response
// swagger:model VerifyResponse
type VerifyResponse struct {
	// Success message
	// example: Account verified
	Message string `json:"message"`
}

// VerifyErrorResponse represents an error response for verification
// swagger:model VerifyErrorResponse
type VerifyErrorResponse struct {
	// Error message
	// example: Invalid or already used verification token
	Error string `json:"error"`
}

// NewVerifyHandler returns an HTTP handler for email verification.
// @Summary Verify an email address
// @Description Consumes a verification token, marks the account verified and invalidates every outstanding token for that user.
// @Tags auth
// @Produce json
// @Param token query string true "Verification token"
// @Success 200 {object} handlers.VerifyResponse "Account verified"
// @Failure 409 {object} handlers.VerifyErrorResponse "Invalid or already used verification token"
// @Failure 500 {object} handlers.VerifyErrorResponse "Internal server error"
// @Router /auth/verify [post]
func NewVerifyHandler(svc Verifier) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		token := r.URL.Query().Get("token")
		if token == "" {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(VerifyErrorResponse{
				Error: "token query parameter is required",
			})
			return
		}

		verified, err := svc.Verify(r.Context(), token)
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(VerifyErrorResponse{
				Error: "Internal server error",
			})
			return
		}

		if !verified {
			w.WriteHeader(http.StatusConflict)
			json.NewEncoder(w).Encode(VerifyErrorResponse{
				Error: "Invalid or already used verification token",
			})
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(VerifyResponse{
			Message: "Account verified",
		})
	}
}
