package models

import "time"

// VerificationTokenDB represents a single-use email verification token.
// A token belongs to exactly one user and every token for that user is
// deleted the moment the user becomes verified.
type VerificationTokenDB struct {
	TokenID   int64     `json:"id" db:"token_id"`       // Primary key
	Token     string    `json:"token" db:"token"`       // Signed opaque token string
	UserID    int64     `json:"user_id" db:"user_id"`   // Owning user
	CreatedAt time.Time `json:"created_at" db:"created_at"` // Creation timestamp
}
