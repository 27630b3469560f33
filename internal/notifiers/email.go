package notifiers

import (
	"context"
	"encoding/json"

	"github.com/nefdev/ecommerce-api/internal/logger"
	"github.com/nefdev/ecommerce-api/internal/models"
	"github.com/segmentio/kafka-go"
)

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error // Writes messages to Kafka
	Close() error                                                   // Closes the Kafka writer
}

// VerificationEmailEvent is the message published for every verification
// email request. The mailer service consumes the topic and delivers the
// actual email.
type VerificationEmailEvent struct {
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	Token     string `json:"token"`
}

// EmailNotifier publishes verification email requests to Kafka.
type EmailNotifier struct {
	writer KafkaWriter
}

// NewEmailNotifier creates a new EmailNotifier.
func NewEmailNotifier(writer KafkaWriter) *EmailNotifier {
	return &EmailNotifier{writer: writer}
}

// SendVerification publishes a verification email request for the user.
// A publish failure means the user cannot receive the verification link,
// so the error is returned to the caller rather than swallowed.
func (n *EmailNotifier) SendVerification(ctx context.Context, user *models.UserDB, token string) error {
	event := VerificationEmailEvent{
		Email:     user.Email,
		FirstName: user.FirstName,
		Token:     token,
	}

	data, err := json.Marshal(event)
	if err != nil {
		logger.Log.Errorw("failed to marshal verification email event", "email", user.Email, "error", err)
		return err
	}

	msg := kafka.Message{
		Key:   []byte(user.Email),
		Value: data,
	}

	if err := n.writer.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("failed to publish verification email event", "email", user.Email, "error", err)
		return err
	}

	logger.Log.Infow("verification email event published", "email", user.Email)
	return nil
}
