package notify

import (
	"context"
	"fmt"

	"github.com/resend/resend-go/v2"
	"go.uber.org/zap"
)

// ResendSender delivers through the Resend API.
type ResendSender struct {
	client *resend.Client
	from   string
	log    *zap.Logger
}

func NewResendSender(apiKey, from string, log *zap.Logger) *ResendSender {
	return &ResendSender{
		client: resend.NewClient(apiKey),
		from:   from,
		log:    log.With(zap.String("sender", "resend")),
	}
}

func (s *ResendSender) Send(ctx context.Context, msg Message) error {
	params := &resend.SendEmailRequest{
		From:    s.from,
		To:      msg.To,
		Subject: msg.Subject,
		Html:    msg.HTML,
	}
	if msg.ReplyTo != "" {
		params.ReplyTo = msg.ReplyTo
	}

	sent, err := s.client.Emails.SendWithContext(ctx, params)
	if err != nil {
		s.log.Error("Failed to send email", zap.Error(err), zap.String("subject", msg.Subject))
		return fmt.Errorf("resend send: %w", err)
	}

	s.log.Info("Email sent", zap.String("message_id", sent.Id), zap.String("subject", msg.Subject))
	return nil
}

// LogSender only logs; it is used when no API key is configured.
type LogSender struct {
	log *zap.Logger
}

func NewLogSender(log *zap.Logger) *LogSender {
	return &LogSender{log: log.With(zap.String("sender", "log"))}
}

func (s *LogSender) Send(_ context.Context, msg Message) error {
	s.log.Info("Email delivery disabled, notification dropped",
		zap.Strings("to", msg.To),
		zap.String("subject", msg.Subject),
	)
	return nil
}
