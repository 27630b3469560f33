package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/nefdev/ecommerce-api/internal/logger"
	"github.com/nefdev/ecommerce-api/internal/models"
)

// VerificationTokenReadRepository handles verification token read operations.
type VerificationTokenReadRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewVerificationTokenReadRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *VerificationTokenReadRepository {
	return &VerificationTokenReadRepository{db: db, txGetter: txGetter}
}

func (r *VerificationTokenReadRepository) executor(ctx context.Context) sqlx.ExtContext {
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			return tx
		}
	}
	return r.db
}

// GetByToken returns the verification token with the given value.
// Returns nil when no token matches.
func (r *VerificationTokenReadRepository) GetByToken(ctx context.Context, token string) (*models.VerificationTokenDB, error) {
	const query = `
		SELECT token_id, token, user_id, created_at
		FROM verification_tokens
		WHERE token = $1
	`

	var vt models.VerificationTokenDB
	err := sqlx.GetContext(ctx, r.executor(ctx), &vt, query, token)

	logger.Log.Infow("verification token query",
		"query", strings.Join(strings.Fields(query), " "),
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &vt, nil
}

// ListByUserID returns all verification tokens for a user, most recent first.
func (r *VerificationTokenReadRepository) ListByUserID(ctx context.Context, userID int64) ([]models.VerificationTokenDB, error) {
	const query = `
		SELECT token_id, token, user_id, created_at
		FROM verification_tokens
		WHERE user_id = $1
		ORDER BY token_id DESC
	`

	var tokens []models.VerificationTokenDB
	err := sqlx.SelectContext(ctx, r.executor(ctx), &tokens, query, userID)

	logger.Log.Infow("verification token query",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID},
		"count", len(tokens),
		"error", err,
	)

	if err != nil {
		return nil, err
	}

	return tokens, nil
}

// VerificationTokenWriteRepository handles verification token write operations.
type VerificationTokenWriteRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewVerificationTokenWriteRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *VerificationTokenWriteRepository {
	return &VerificationTokenWriteRepository{db: db, txGetter: txGetter}
}

func (r *VerificationTokenWriteRepository) executor(ctx context.Context) sqlx.ExtContext {
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			return tx
		}
	}
	return r.db
}

// Save inserts a verification token and returns it with its id set.
func (r *VerificationTokenWriteRepository) Save(ctx context.Context, token *models.VerificationTokenDB) (*models.VerificationTokenDB, error) {
	const query = `
		INSERT INTO verification_tokens (token, user_id, created_at)
		VALUES ($1, $2, $3)
		RETURNING token_id
	`

	saved := *token
	err := sqlx.GetContext(ctx, r.executor(ctx), &saved.TokenID, query, token.Token, token.UserID, token.CreatedAt)

	logger.Log.Infow("verification token save",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{token.UserID, token.CreatedAt},
		"error", err,
	)

	if err != nil {
		return nil, err
	}

	return &saved, nil
}

// DeleteByUserID removes every verification token belonging to a user.
func (r *VerificationTokenWriteRepository) DeleteByUserID(ctx context.Context, userID int64) error {
	const query = `
		DELETE FROM verification_tokens
		WHERE user_id = $1
	`

	res, err := r.executor(ctx).ExecContext(ctx, query, userID)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow("verification token delete",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID},
		"result", rowsAffected,
		"error", err,
	)

	return err
}
