package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/nefdev/ecommerce-api/internal/models"
	"github.com/nefdev/ecommerce-api/internal/services"
	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
)

type authMocks struct {
	userReader  *services.MockUserReader
	userWriter  *services.MockUserWriter
	tokenReader *services.MockVerificationTokenReader
	tokenWriter *services.MockVerificationTokenWriter
	jwt         *services.MockTokenGenerator
	notifier    *services.MockVerificationNotifier
}

func newAuthService(ctrl *gomock.Controller) (*services.AuthService, authMocks) {
	m := authMocks{
		userReader:  services.NewMockUserReader(ctrl),
		userWriter:  services.NewMockUserWriter(ctrl),
		tokenReader: services.NewMockVerificationTokenReader(ctrl),
		tokenWriter: services.NewMockVerificationTokenWriter(ctrl),
		jwt:         services.NewMockTokenGenerator(ctrl),
		notifier:    services.NewMockVerificationNotifier(ctrl),
	}
	svc := services.NewAuthService(m.userReader, m.userWriter, m.tokenReader, m.tokenWriter, m.jwt, m.notifier)
	return svc, m
}

func TestAuthService_Register(t *testing.T) {
	ctx := context.Background()

	t.Run("successful registration", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		svc, m := newAuthService(ctrl)

		var notified *models.UserDB
		m.userReader.EXPECT().GetByEmail(gomock.Any(), "alice@example.com").Return(nil, nil)
		m.userReader.EXPECT().GetByUsername(gomock.Any(), "alice").Return(nil, nil)
		m.jwt.EXPECT().GenerateVerificationToken(gomock.Any(), "alice@example.com").Return("verification-token", nil)
		m.notifier.EXPECT().
			SendVerification(gomock.Any(), gomock.Any(), "verification-token").
			DoAndReturn(func(_ context.Context, user *models.UserDB, _ string) error {
				notified = user
				return nil
			})
		m.userWriter.EXPECT().
			Save(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, user *models.UserDB) (*models.UserDB, error) {
				saved := *user
				saved.UserID = 42
				return &saved, nil
			})
		m.tokenWriter.EXPECT().
			Save(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, token *models.VerificationTokenDB) (*models.VerificationTokenDB, error) {
				assert.Equal(t, int64(42), token.UserID)
				assert.Equal(t, "verification-token", token.Token)
				saved := *token
				saved.TokenID = 1
				return &saved, nil
			})

		user, err := svc.Register(ctx, "alice", "alice@example.com", "Alice", "Smith", "pass123")
		assert.NoError(t, err)
		assert.NotNil(t, user)
		assert.Equal(t, int64(42), user.UserID)
		assert.False(t, user.EmailVerified)
		assert.NotEqual(t, "pass123", user.PasswordHash)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("pass123")))
		assert.Len(t, user.VerificationTokens, 1)

		// Exactly one notification went out, addressed to the registered email.
		assert.NotNil(t, notified)
		assert.Equal(t, "alice@example.com", notified.Email)
	})

	t.Run("email already exists", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		svc, m := newAuthService(ctrl)

		m.userReader.EXPECT().GetByEmail(gomock.Any(), "bob@example.com").
			Return(&models.UserDB{UserID: 1, Email: "bob@example.com"}, nil)

		user, err := svc.Register(ctx, "bob2", "bob@example.com", "Bob", "Jones", "pass123")
		assert.Nil(t, user)
		assert.ErrorIs(t, err, services.ErrUserAlreadyExists)
	})

	t.Run("username already exists", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		svc, m := newAuthService(ctrl)

		m.userReader.EXPECT().GetByEmail(gomock.Any(), "other@example.com").Return(nil, nil)
		m.userReader.EXPECT().GetByUsername(gomock.Any(), "bob").
			Return(&models.UserDB{UserID: 1, Username: "bob"}, nil)

		user, err := svc.Register(ctx, "bob", "other@example.com", "Bob", "Jones", "pass123")
		assert.Nil(t, user)
		assert.ErrorIs(t, err, services.ErrUserAlreadyExists)
	})

	t.Run("reader error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		svc, m := newAuthService(ctrl)

		m.userReader.EXPECT().GetByEmail(gomock.Any(), "eve@example.com").Return(nil, errors.New("db error"))

		user, err := svc.Register(ctx, "eve", "eve@example.com", "Eve", "Adams", "pass123")
		assert.Nil(t, user)
		assert.EqualError(t, err, "db error")
	})

	t.Run("notifier failure aborts registration", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		svc, m := newAuthService(ctrl)

		m.userReader.EXPECT().GetByEmail(gomock.Any(), "carol@example.com").Return(nil, nil)
		m.userReader.EXPECT().GetByUsername(gomock.Any(), "carol").Return(nil, nil)
		m.jwt.EXPECT().GenerateVerificationToken(gomock.Any(), "carol@example.com").Return("verification-token", nil)
		m.notifier.EXPECT().
			SendVerification(gomock.Any(), gomock.Any(), "verification-token").
			Return(errors.New("smtp down"))
		// No Save expectations: nothing may be persisted when the email fails.

		user, err := svc.Register(ctx, "carol", "carol@example.com", "Carol", "King", "pass123")
		assert.Nil(t, user)
		assert.ErrorIs(t, err, services.ErrEmailSendFailure)
	})

	t.Run("writer error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		svc, m := newAuthService(ctrl)

		m.userReader.EXPECT().GetByEmail(gomock.Any(), "dan@example.com").Return(nil, nil)
		m.userReader.EXPECT().GetByUsername(gomock.Any(), "dan").Return(nil, nil)
		m.jwt.EXPECT().GenerateVerificationToken(gomock.Any(), "dan@example.com").Return("verification-token", nil)
		m.notifier.EXPECT().SendVerification(gomock.Any(), gomock.Any(), "verification-token").Return(nil)
		m.userWriter.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil, errors.New("save error"))

		user, err := svc.Register(ctx, "dan", "dan@example.com", "Dan", "Brown", "pass123")
		assert.Nil(t, user)
		assert.EqualError(t, err, "save error")
	})
}

func TestAuthService_Login(t *testing.T) {
	ctx := context.Background()

	password := "secret"
	hashed, _ := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)

	verifiedUser := &models.UserDB{
		UserID:        1,
		Username:      "alice",
		Email:         "alice@example.com",
		PasswordHash:  string(hashed),
		EmailVerified: true,
	}
	unverifiedUser := &models.UserDB{
		UserID:       2,
		Username:     "bob",
		Email:        "bob@example.com",
		PasswordHash: string(hashed),
	}

	t.Run("unknown user returns empty token", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		svc, m := newAuthService(ctrl)

		m.userReader.EXPECT().GetByUsername(gomock.Any(), "nobody").Return(nil, nil)

		token, err := svc.Login(ctx, "nobody", password)
		assert.NoError(t, err)
		assert.Empty(t, token)
	})

	t.Run("wrong password is indistinguishable from unknown user", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		svc, m := newAuthService(ctrl)

		m.userReader.EXPECT().GetByUsername(gomock.Any(), "alice").Return(verifiedUser, nil)

		token, err := svc.Login(ctx, "alice", "wrongpass")
		assert.NoError(t, err)
		assert.Empty(t, token)
	})

	t.Run("verified user gets session token", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		svc, m := newAuthService(ctrl)

		m.userReader.EXPECT().GetByUsername(gomock.Any(), "alice").Return(verifiedUser, nil)
		m.jwt.EXPECT().GenerateAccessToken(gomock.Any(), "alice").Return("session-token", nil)

		token, err := svc.Login(ctx, "alice", password)
		assert.NoError(t, err)
		assert.Equal(t, "session-token", token)
	})

	t.Run("unverified user with no tokens triggers resend", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		svc, m := newAuthService(ctrl)

		m.userReader.EXPECT().GetByUsername(gomock.Any(), "bob").Return(unverifiedUser, nil)
		m.tokenReader.EXPECT().ListByUserID(gomock.Any(), int64(2)).Return(nil, nil)
		m.jwt.EXPECT().GenerateVerificationToken(gomock.Any(), "bob@example.com").Return("fresh-token", nil)
		m.tokenWriter.EXPECT().
			Save(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, token *models.VerificationTokenDB) (*models.VerificationTokenDB, error) {
				assert.Equal(t, int64(2), token.UserID)
				return token, nil
			})
		m.notifier.EXPECT().SendVerification(gomock.Any(), gomock.Any(), "fresh-token").Return(nil)

		token, err := svc.Login(ctx, "bob", password)
		assert.Empty(t, token)

		var notVerified *services.UserNotVerifiedError
		assert.ErrorAs(t, err, &notVerified)
		assert.True(t, notVerified.Resent)
	})

	t.Run("unverified user within cooldown does not resend", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		svc, m := newAuthService(ctrl)

		recent := []models.VerificationTokenDB{
			{TokenID: 9, Token: "recent-token", UserID: 2, CreatedAt: time.Now().Add(-10 * time.Minute)},
		}
		m.userReader.EXPECT().GetByUsername(gomock.Any(), "bob").Return(unverifiedUser, nil)
		m.tokenReader.EXPECT().ListByUserID(gomock.Any(), int64(2)).Return(recent, nil)
		// No token save, no notification: the cooldown window is still open.

		token, err := svc.Login(ctx, "bob", password)
		assert.Empty(t, token)

		var notVerified *services.UserNotVerifiedError
		assert.ErrorAs(t, err, &notVerified)
		assert.False(t, notVerified.Resent)
	})

	t.Run("unverified user past cooldown resends", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		svc, m := newAuthService(ctrl)

		stale := []models.VerificationTokenDB{
			{TokenID: 9, Token: "stale-token", UserID: 2, CreatedAt: time.Now().Add(-2 * time.Hour)},
		}
		m.userReader.EXPECT().GetByUsername(gomock.Any(), "bob").Return(unverifiedUser, nil)
		m.tokenReader.EXPECT().ListByUserID(gomock.Any(), int64(2)).Return(stale, nil)
		m.jwt.EXPECT().GenerateVerificationToken(gomock.Any(), "bob@example.com").Return("fresh-token", nil)
		m.tokenWriter.EXPECT().Save(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, token *models.VerificationTokenDB) (*models.VerificationTokenDB, error) {
				return token, nil
			})
		m.notifier.EXPECT().SendVerification(gomock.Any(), gomock.Any(), "fresh-token").Return(nil)

		_, err := svc.Login(ctx, "bob", password)

		var notVerified *services.UserNotVerifiedError
		assert.ErrorAs(t, err, &notVerified)
		assert.True(t, notVerified.Resent)
	})

	t.Run("resend notifier failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		svc, m := newAuthService(ctrl)

		m.userReader.EXPECT().GetByUsername(gomock.Any(), "bob").Return(unverifiedUser, nil)
		m.tokenReader.EXPECT().ListByUserID(gomock.Any(), int64(2)).Return(nil, nil)
		m.jwt.EXPECT().GenerateVerificationToken(gomock.Any(), "bob@example.com").Return("fresh-token", nil)
		m.tokenWriter.EXPECT().Save(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, token *models.VerificationTokenDB) (*models.VerificationTokenDB, error) {
				return token, nil
			})
		m.notifier.EXPECT().SendVerification(gomock.Any(), gomock.Any(), "fresh-token").Return(errors.New("smtp down"))

		token, err := svc.Login(ctx, "bob", password)
		assert.Empty(t, token)
		assert.ErrorIs(t, err, services.ErrEmailSendFailure)
	})

	t.Run("reader error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		svc, m := newAuthService(ctrl)

		m.userReader.EXPECT().GetByUsername(gomock.Any(), "alice").Return(nil, errors.New("db error"))

		token, err := svc.Login(ctx, "alice", password)
		assert.Empty(t, token)
		assert.EqualError(t, err, "db error")
	})
}

func TestAuthService_Verify(t *testing.T) {
	ctx := context.Background()

	t.Run("unknown token returns false", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		svc, m := newAuthService(ctrl)

		m.tokenReader.EXPECT().GetByToken(gomock.Any(), "bad-token").Return(nil, nil)

		verified, err := svc.Verify(ctx, "bad-token")
		assert.NoError(t, err)
		assert.False(t, verified)
	})

	t.Run("already verified user returns false", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		svc, m := newAuthService(ctrl)

		m.tokenReader.EXPECT().GetByToken(gomock.Any(), "old-token").
			Return(&models.VerificationTokenDB{TokenID: 3, Token: "old-token", UserID: 7}, nil)
		m.userReader.EXPECT().GetByIDForUpdate(gomock.Any(), int64(7)).
			Return(&models.UserDB{UserID: 7, Username: "carl", EmailVerified: true}, nil)

		verified, err := svc.Verify(ctx, "old-token")
		assert.NoError(t, err)
		assert.False(t, verified)
	})

	t.Run("valid token verifies and clears all tokens", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		svc, m := newAuthService(ctrl)

		m.tokenReader.EXPECT().GetByToken(gomock.Any(), "good-token").
			Return(&models.VerificationTokenDB{TokenID: 3, Token: "good-token", UserID: 7}, nil)
		m.userReader.EXPECT().GetByIDForUpdate(gomock.Any(), int64(7)).
			Return(&models.UserDB{UserID: 7, Username: "carl"}, nil)
		m.userWriter.EXPECT().
			Save(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, user *models.UserDB) (*models.UserDB, error) {
				assert.True(t, user.EmailVerified)
				return user, nil
			})
		m.tokenWriter.EXPECT().DeleteByUserID(gomock.Any(), int64(7)).Return(nil)

		verified, err := svc.Verify(ctx, "good-token")
		assert.NoError(t, err)
		assert.True(t, verified)
	})

	t.Run("save error propagates", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		svc, m := newAuthService(ctrl)

		m.tokenReader.EXPECT().GetByToken(gomock.Any(), "good-token").
			Return(&models.VerificationTokenDB{TokenID: 3, Token: "good-token", UserID: 7}, nil)
		m.userReader.EXPECT().GetByIDForUpdate(gomock.Any(), int64(7)).
			Return(&models.UserDB{UserID: 7, Username: "carl"}, nil)
		m.userWriter.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil, errors.New("db error"))

		verified, err := svc.Verify(ctx, "good-token")
		assert.False(t, verified)
		assert.EqualError(t, err, "db error")
	})
}
