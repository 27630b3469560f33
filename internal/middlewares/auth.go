package middlewares

import (
	"context"
	"net/http"

	"github.com/nefdev/ecommerce-api/internal/logger"
)

// Tokener defines the minimal token operations needed by the middleware.
type Tokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	GetUsername(ctx context.Context, tokenString string) string
}

// AuthMiddleware returns a middleware that authenticates requests by their
// bearer token. An absent username claim means unauthenticated; the decoded
// username is stored in the request context for downstream handlers.
func AuthMiddleware(tokener Tokener) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			tokenString, err := tokener.GetTokenFromRequest(ctx, r)
			if err != nil {
				logger.Log.Errorw("authorization failed", "err", err)
				w.WriteHeader(http.StatusUnauthorized)
				return
			}

			username := tokener.GetUsername(ctx, tokenString)
			if username == "" {
				logger.Log.Errorw("authorization failed", "err", "no username claim")
				w.WriteHeader(http.StatusUnauthorized)
				return
			}

			ctx = SetUsernameToContext(ctx, username)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// usernameContextKey is an unexported type for username keys in context.
type usernameContextKey struct{}

var usernameKey = usernameContextKey{}

// SetUsernameToContext stores the authenticated username in the context.
func SetUsernameToContext(ctx context.Context, username string) context.Context {
	return context.WithValue(ctx, usernameKey, username)
}

// GetUsernameFromContext retrieves the authenticated username from the
// context. Returns an empty string if not present.
func GetUsernameFromContext(ctx context.Context) string {
	username, _ := ctx.Value(usernameKey).(string)
	return username
}
