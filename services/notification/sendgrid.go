package notification

import (
	"context"
	"fmt"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
	"go.uber.org/zap"
)

// SendGridSender delivers email through the SendGrid v3 API.
type SendGridSender struct {
	client *sendgrid.Client
	from   *mail.Email
	logger *zap.Logger
}

// NewSendGridSender returns a sender for apiKey. With no key configured it returns a
// LogSender so development setups still run end to end.
func NewSendGridSender(apiKey, fromAddress, fromName string, logger *zap.Logger) EmailSender {
	if apiKey == "" || fromAddress == "" {
		logger.Warn("EMAIL_SENDER_KEY or EMAIL_SENDER not set, appointment emails will only be logged")
		return &LogSender{Logger: logger}
	}
	return &SendGridSender{
		client: sendgrid.NewSendClient(apiKey),
		from:   mail.NewEmail(fromName, fromAddress),
		logger: logger,
	}
}

func (s *SendGridSender) Send(ctx context.Context, msg EmailMessage) error {
	to := mail.NewEmail(msg.ToName, msg.To)
	message := mail.NewSingleEmail(s.from, msg.Subject, to, msg.Text, msg.HTML)

	resp, err := s.client.SendWithContext(ctx, message)
	if err != nil {
		return fmt.Errorf("sendgrid request failed: %w", err)
	}
	if resp.StatusCode >= 300 {
		return fmt.Errorf("sendgrid rejected message: status %d: %s", resp.StatusCode, resp.Body)
	}
	s.logger.Info("Message sent", zap.String("to", msg.To), zap.Int("status", resp.StatusCode))
	return nil
}

// LogSender only logs messages.
type LogSender struct {
	Logger *zap.Logger
}

func (s *LogSender) Send(_ context.Context, msg EmailMessage) error {
	s.Logger.Info("Email delivery disabled, dropping message",
		zap.String("to", msg.To), zap.String("subject", msg.Subject))
	return nil
}
