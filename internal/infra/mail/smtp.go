package mail

import (
	"context"

	"restaurant-booking/internal/pkg/config"
	"restaurant-booking/internal/pkg/errs"
	"restaurant-booking/internal/usecase/notify"

	"gopkg.in/gomail.v2"
)

// SMTPGateway delivers confirmation mails through a plain SMTP relay.
type SMTPGateway struct {
	dialer *gomail.Dialer
	sender string
}

func NewSMTPGateway(cfg config.MailConfig) *SMTPGateway {
	return &SMTPGateway{
		dialer: gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password),
		sender: cfg.Sender,
	}
}

func (g *SMTPGateway) Send(ctx context.Context, msg notify.EmailMessage) error {
	m := gomail.NewMessage()
	m.SetHeader("From", g.sender)
	m.SetHeader("Reply-To", g.sender)
	m.SetHeader("To", msg.To)
	m.SetHeader("Subject", msg.Subject)
	m.SetBody("text/html", msg.HTMLBody)

	// gomail has no context support; honor cancellation around the dial.
	done := make(chan error, 1)
	go func() {
		done <- g.dialer.DialAndSend(m)
	}()

	select {
	case err := <-done:
		if err != nil {
			return errs.Wrap(err, "smtp delivery failed")
		}
		return nil
	case <-ctx.Done():
		return errs.Wrap(ctx.Err(), "smtp delivery canceled")
	}
}
