package services

import (
	"context"
	"errors"
	"time"

	"github.com/nefdev/ecommerce-api/internal/logger"
	"github.com/nefdev/ecommerce-api/internal/models"
	"golang.org/x/crypto/bcrypt"
)

// Error variables
var (
	ErrUserAlreadyExists = errors.New("username or email already exists")
	ErrEmailSendFailure  = errors.New("failed to send verification email")
)

// UserNotVerifiedError is returned by Login when the account exists and the
// password matches but the email address has not been verified yet. Resent
// tells the caller whether a fresh verification email was just sent.
type UserNotVerifiedError struct {
	Resent bool
}

func (e *UserNotVerifiedError) Error() string {
	if e.Resent {
		return "user not verified, verification email resent"
	}
	return "user not verified"
}

// resendCooldown is the minimum interval between automatic verification
// email resends for the same user.
const resendCooldown = 60 * time.Minute

// UserReader defines read-only operations for users.
type UserReader interface {
	GetByUsername(ctx context.Context, username string) (*models.UserDB, error)
	GetByEmail(ctx context.Context, email string) (*models.UserDB, error)
	GetByIDForUpdate(ctx context.Context, userID int64) (*models.UserDB, error)
}

// UserWriter defines write operations for users.
type UserWriter interface {
	Save(ctx context.Context, user *models.UserDB) (*models.UserDB, error)
}

// VerificationTokenReader defines read-only operations for verification tokens.
type VerificationTokenReader interface {
	GetByToken(ctx context.Context, token string) (*models.VerificationTokenDB, error)
	ListByUserID(ctx context.Context, userID int64) ([]models.VerificationTokenDB, error)
}

// VerificationTokenWriter defines write operations for verification tokens.
type VerificationTokenWriter interface {
	Save(ctx context.Context, token *models.VerificationTokenDB) (*models.VerificationTokenDB, error)
	DeleteByUserID(ctx context.Context, userID int64) error
}

// TokenGenerator defines an interface for minting signed tokens.
type TokenGenerator interface {
	GenerateAccessToken(ctx context.Context, username string) (string, error)
	GenerateVerificationToken(ctx context.Context, email string) (string, error)
}

// VerificationNotifier sends a verification message to a user.
type VerificationNotifier interface {
	SendVerification(ctx context.Context, user *models.UserDB, token string) error
}

// AuthService handles registration, login and email verification.
type AuthService struct {
	userReader  UserReader
	userWriter  UserWriter
	tokenReader VerificationTokenReader
	tokenWriter VerificationTokenWriter
	jwt         TokenGenerator
	notifier    VerificationNotifier
}

// NewAuthService creates a new AuthService instance.
func NewAuthService(
	userReader UserReader,
	userWriter UserWriter,
	tokenReader VerificationTokenReader,
	tokenWriter VerificationTokenWriter,
	jwt TokenGenerator,
	notifier VerificationNotifier,
) *AuthService {
	return &AuthService{
		userReader:  userReader,
		userWriter:  userWriter,
		tokenReader: tokenReader,
		tokenWriter: tokenWriter,
		jwt:         jwt,
		notifier:    notifier,
	}
}

// Register creates an unverified user account and sends the first
// verification email. The notification goes out before the user is
// persisted, so a notifier failure leaves no account behind.
func (svc *AuthService) Register(ctx context.Context, username, email, firstName, lastName, password string) (*models.UserDB, error) {
	existing, err := svc.userReader.GetByEmail(ctx, email)
	if err != nil {
		logger.Log.Errorw("failed to check email exists", "err", err)
		return nil, err
	}
	if existing == nil {
		existing, err = svc.userReader.GetByUsername(ctx, username)
		if err != nil {
			logger.Log.Errorw("failed to check username exists", "err", err)
			return nil, err
		}
	}
	if existing != nil {
		logger.Log.Errorw("user already exists", "username", username, "email", email)
		return nil, ErrUserAlreadyExists
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		logger.Log.Errorw("failed to hash password", "err", err)
		return nil, err
	}

	user := &models.UserDB{
		Username:     username,
		Email:        email,
		FirstName:    firstName,
		LastName:     lastName,
		PasswordHash: string(hashedPassword),
	}

	token, err := svc.createVerificationToken(ctx, user)
	if err != nil {
		logger.Log.Errorw("failed to create verification token", "err", err)
		return nil, err
	}

	if err := svc.notifier.SendVerification(ctx, user, token.Token); err != nil {
		logger.Log.Errorw("failed to send verification email", "email", email, "err", err)
		return nil, ErrEmailSendFailure
	}

	saved, err := svc.userWriter.Save(ctx, user)
	if err != nil {
		logger.Log.Errorw("failed to save user", "err", err)
		return nil, err
	}

	token.UserID = saved.UserID
	if _, err := svc.tokenWriter.Save(ctx, token); err != nil {
		logger.Log.Errorw("failed to save verification token", "err", err)
		return nil, err
	}

	saved.VerificationTokens = user.VerificationTokens
	return saved, nil
}

// createVerificationToken mints a verification token for the user, stamps
// the current time and appends it to the user's in-memory token collection.
// Pure construction: persistence and notification stay with the caller.
func (svc *AuthService) createVerificationToken(ctx context.Context, user *models.UserDB) (*models.VerificationTokenDB, error) {
	signed, err := svc.jwt.GenerateVerificationToken(ctx, user.Email)
	if err != nil {
		return nil, err
	}

	token := &models.VerificationTokenDB{
		Token:     signed,
		UserID:    user.UserID,
		CreatedAt: time.Now(),
	}
	user.VerificationTokens = append([]models.VerificationTokenDB{*token}, user.VerificationTokens...)
	return token, nil
}

// Login authenticates a user and returns a session token. An unknown
// username and a wrong password both return an empty token with no error,
// so callers cannot probe which usernames exist. An unverified user gets
// UserNotVerifiedError; when the newest outstanding token is older than the
// resend cooldown (or none exists) a fresh verification email goes out first.
func (svc *AuthService) Login(ctx context.Context, username, password string) (string, error) {
	user, err := svc.userReader.GetByUsername(ctx, username)
	if err != nil {
		logger.Log.Errorw("failed to get user", "err", err)
		return "", err
	}
	if user == nil {
		return "", nil
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", nil
	}

	if user.EmailVerified {
		token, err := svc.jwt.GenerateAccessToken(ctx, user.Username)
		if err != nil {
			logger.Log.Errorw("failed to generate session token", "err", err)
			return "", err
		}
		return token, nil
	}

	tokens, err := svc.tokenReader.ListByUserID(ctx, user.UserID)
	if err != nil {
		logger.Log.Errorw("failed to list verification tokens", "err", err)
		return "", err
	}

	resend := len(tokens) == 0 || tokens[0].CreatedAt.Before(time.Now().Add(-resendCooldown))
	if resend {
		token, err := svc.createVerificationToken(ctx, user)
		if err != nil {
			logger.Log.Errorw("failed to create verification token", "err", err)
			return "", err
		}
		if _, err := svc.tokenWriter.Save(ctx, token); err != nil {
			logger.Log.Errorw("failed to save verification token", "err", err)
			return "", err
		}
		if err := svc.notifier.SendVerification(ctx, user, token.Token); err != nil {
			logger.Log.Errorw("failed to resend verification email", "email", user.Email, "err", err)
			return "", ErrEmailSendFailure
		}
	}

	return "", &UserNotVerifiedError{Resent: resend}
}

// Verify flips the owner of the given verification token to verified and
// deletes every outstanding token for that user. Returns false for unknown
// tokens and for users that are already verified. Callers must run it inside
// a transaction; the owning user row is locked for the duration so racing
// verifications serialize and at most one reports true.
func (svc *AuthService) Verify(ctx context.Context, token string) (bool, error) {
	vt, err := svc.tokenReader.GetByToken(ctx, token)
	if err != nil {
		logger.Log.Errorw("failed to look up verification token", "err", err)
		return false, err
	}
	if vt == nil {
		return false, nil
	}

	user, err := svc.userReader.GetByIDForUpdate(ctx, vt.UserID)
	if err != nil {
		logger.Log.Errorw("failed to load token owner", "err", err)
		return false, err
	}
	if user == nil || user.EmailVerified {
		return false, nil
	}

	user.EmailVerified = true
	if _, err := svc.userWriter.Save(ctx, user); err != nil {
		logger.Log.Errorw("failed to save verified user", "err", err)
		return false, err
	}

	if err := svc.tokenWriter.DeleteByUserID(ctx, user.UserID); err != nil {
		logger.Log.Errorw("failed to delete verification tokens", "err", err)
		return false, err
	}

	logger.Log.Infow("user verified", "username", user.Username)
	return true, nil
}
