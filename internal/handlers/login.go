package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/nefdev/ecommerce-api/internal/logger"
	"github.com/nefdev/ecommerce-api/internal/services"
)

// Failure reasons reported to the client on a blocked login.
const (
	FailureReasonInvalidCredentials = "INVALID_CREDENTIALS"
	FailureReasonNotVerified        = "USER_NOT_VERIFIED"
	FailureReasonNotVerifiedResent  = "USER_NOT_VERIFIED_EMAIL_RESENT"
)

// Loginer defines the interface that the login service must implement.
type Loginer interface {
	Login(ctx context.Context, username, password string) (string, error)
}

// LoginRequest represents the JSON body for user login
// swagger:model LoginRequest
type LoginRequest struct {
	// Username
	// required: true
	// example: john_doe
	Username string `json:"username"`

	// Password
	// required: true
	// example: secret123
	Password string `json:"password"`
}

// LoginResponse represents the outcome of a login attempt
// swagger:model LoginResponse
type LoginResponse struct {
	// JWT session token, present on success
	// example: JWT_TOKEN
	Token string `json:"token,omitempty"`

	// Whether the login succeeded
	// example: true
	Success bool `json:"success"`

	// Machine-readable reason when the login was blocked
	// example: USER_NOT_VERIFIED_EMAIL_RESENT
	FailureReason string `json:"failure_reason,omitempty"`
}

// LoginErrorResponse represents an error response for login
// swagger:model LoginErrorResponse
type LoginErrorResponse struct {
	// Error message
	// example: Internal server error
	Error string `json:"error"`
}

// NewLoginHandler returns an HTTP handler for user login.
// @Summary User login
// @Description Authenticate a user and return a JWT session token. Unverified users are rejected and may trigger a verification email resend.
// @Tags auth
// @Accept json
// @Produce json
// @Param loginRequest body handlers.LoginRequest true "Login Request"
// @Success 200 {object} handlers.LoginResponse "JWT token returned"
// @Failure 400 {object} handlers.LoginErrorResponse "Invalid request body"
// @Failure 401 {object} handlers.LoginResponse "Invalid username or password"
// @Failure 403 {object} handlers.LoginResponse "Email address not verified"
// @Router /auth/login [post]
func NewLoginHandler(svc Loginer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req LoginRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(LoginErrorResponse{
				Error: "invalid request body",
			})
			return
		}

		token, err := svc.Login(r.Context(), req.Username, req.Password)
		if err != nil {
			var notVerified *services.UserNotVerifiedError
			switch {
			case errors.As(err, &notVerified):
				reason := FailureReasonNotVerified
				if notVerified.Resent {
					reason = FailureReasonNotVerifiedResent
				}
				w.WriteHeader(http.StatusForbidden)
				json.NewEncoder(w).Encode(LoginResponse{
					Success:       false,
					FailureReason: reason,
				})
			case errors.Is(err, services.ErrEmailSendFailure):
				logger.Log.Errorw("verification email failed", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(LoginErrorResponse{
					Error: "Verification email could not be sent",
				})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(LoginErrorResponse{
					Error: "Internal server error",
				})
			}
			return
		}

		// An empty token with no error means unknown user or wrong password.
		if token == "" {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(LoginResponse{
				Success:       false,
				FailureReason: FailureReasonInvalidCredentials,
			})
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(LoginResponse{
			Token:   token,
			Success: true,
		})
	}
}
