package jwt

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claim keys carried by the issued tokens.
const (
	usernameKey = "USERNAME"
	emailKey    = "EMAIL"
)

// JWT issues and decodes signed tokens. The secret, issuer and expiration
// are set once at construction and never change afterwards.
type JWT struct {
	SecretKey string        // Secret key for signing tokens
	Issuer    string        // Issuer claim stamped on every token
	Exp       time.Duration // Token expiration duration
}

// New creates a new JWT instance.
func New(secretKey, issuer string, expiration time.Duration) *JWT {
	return &JWT{
		SecretKey: secretKey,
		Issuer:    issuer,
		Exp:       expiration,
	}
}

// GenerateAccessToken creates a session token carrying the username claim.
func (j *JWT) GenerateAccessToken(ctx context.Context, username string) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		usernameKey: username,
		"iss":       j.Issuer,
		"exp":       now.Add(j.Exp).Unix(),
		"iat":       now.Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(j.SecretKey))
}

// GenerateVerificationToken creates an email-verification token carrying the
// email claim. It deliberately has no username claim, so it can never be used
// as a session token.
func (j *JWT) GenerateVerificationToken(ctx context.Context, email string) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		emailKey: email,
		"iss":    j.Issuer,
		"exp":    now.Add(j.Exp).Unix(),
		"iat":    now.Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(j.SecretKey))
}

// GetUsername returns the username claim of a valid session token.
// Malformed, expired or tampered tokens, and tokens without a username claim
// (verification tokens), all yield an empty string. It never fails.
func (j *JWT) GetUsername(ctx context.Context, tokenString string) string {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(j.SecretKey), nil
	})
	if err != nil || !token.Valid {
		return ""
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return ""
	}

	username, _ := claims[usernameKey].(string)
	return username
}

// GetTokenFromRequest extracts the bearer token from the Authorization header.
func (j *JWT) GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error) {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return "", errors.New("authorization header missing")
	}

	parts := strings.Fields(authHeader)
	if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
		return "", errors.New("invalid authorization header format")
	}

	return parts[1], nil
}
