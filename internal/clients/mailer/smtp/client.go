package mailer_smtp

import (
	"context"
	"log/slog"
	"time"

	"github.com/wneessen/go-mail"

	mailer_client "blogd/internal/clients/mailer"
	"blogd/internal/custom_errors"
	"blogd/internal/infrastructure/config"
	"blogd/internal/logger"
)

type MailerClient struct {
	client *mail.Client
	log    *logger.Logger
}

func NewMailerClient(cfg config.SMTP, log *logger.Logger) (*MailerClient, error) {
	opts := []mail.Option{
		mail.WithPort(cfg.Port),
		mail.WithTimeout(time.Duration(cfg.TimeoutSeconds) * time.Second),
	}
	if cfg.Username != "" {
		opts = append(opts,
			mail.WithSMTPAuth(mail.SMTPAuthPlain),
			mail.WithUsername(cfg.Username),
			mail.WithPassword(cfg.Password),
		)
	}

	client, err := mail.NewClient(cfg.Host, opts...)
	if err != nil {
		return nil, err
	}

	return &MailerClient{client: client, log: log}, nil
}

func (c *MailerClient) Send(ctx context.Context, msg mailer_client.Message) error {
	m := mail.NewMsg()
	if err := m.From(msg.From); err != nil {
		c.log.Error("Invalid sender address", slog.String("from", msg.From), slog.String("error", err.Error()))
		return custom_errors.ErrMailDelivery
	}
	if err := m.To(msg.To); err != nil {
		c.log.Error("Invalid recipient address", slog.String("to", msg.To), slog.String("error", err.Error()))
		return custom_errors.ErrMailDelivery
	}
	m.Subject(msg.Subject)
	m.SetBodyString(mail.TypeTextPlain, msg.Body)

	if err := c.client.DialAndSendWithContext(ctx, m); err != nil {
		c.log.Error("Failed to send mail",
			slog.String("to", msg.To),
			slog.String("error", err.Error()))
		return custom_errors.ErrMailDelivery
	}

	c.log.Debug("Mail sent", slog.String("to", msg.To), slog.String("subject", msg.Subject))
	return nil
}
