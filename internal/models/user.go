package models

import "time"

// UserDB represents a user record in the database.
type UserDB struct {
	UserID        int64     `json:"id" db:"user_id"`                 // Primary key
	Username      string    `json:"username" db:"username"`          // Unique username (case-insensitive)
	Email         string    `json:"email" db:"email"`                // Unique email (case-insensitive)
	FirstName     string    `json:"first_name" db:"first_name"`      // First name
	LastName      string    `json:"last_name" db:"last_name"`        // Last name
	PasswordHash  string    `json:"-" db:"password_hash"`            // Hashed password
	EmailVerified bool      `json:"email_verified" db:"email_verified"` // Email verification flag
	CreatedAt     time.Time `json:"created_at" db:"created_at"`      // Creation timestamp
	UpdatedAt     time.Time `json:"updated_at" db:"updated_at"`      // Last update timestamp

	// VerificationTokens holds the user's outstanding verification tokens,
	// most recent first. Loaded on demand, not by every query.
	VerificationTokens []VerificationTokenDB `json:"-" db:"-"`
}
