package notify

import (
	"context"
	"log/slog"
	"time"

	"restaurant-booking/internal/pkg/config"
	"restaurant-booking/internal/usecase/queries"
)

type EmailGateway interface {
	Send(ctx context.Context, msg EmailMessage) error
}

type SMSGateway interface {
	// Send returns the provider's message identifier on success.
	Send(ctx context.Context, msg SMSMessage) (string, error)
}

// Dispatcher sends the confirmation email and SMS for a stored reservation.
// Dispatch returns immediately; delivery runs in its own goroutine, bounded
// by the configured timeout, and its outcome is only ever logged. The two
// steps run sequentially but independently: a failed email does not block
// the SMS, and nothing is retried.
type Dispatcher interface {
	Dispatch(res *queries.ReservationView)
}

type dispatcher struct {
	email   EmailGateway
	sms     SMSGateway
	timeout time.Duration
	logger  *slog.Logger
}

func NewDispatcher(email EmailGateway, sms SMSGateway, cfg config.NotifyConfig, logger *slog.Logger) Dispatcher {
	return &dispatcher{
		email:   email,
		sms:     sms,
		timeout: cfg.Timeout,
		logger:  logger,
	}
}

func (d *dispatcher) Dispatch(res *queries.ReservationView) {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), d.timeout)
		defer cancel()

		d.sendEmail(ctx, res)
		d.sendSMS(ctx, res)
	}()
}

func (d *dispatcher) sendEmail(ctx context.Context, res *queries.ReservationView) {
	msg := buildEmailMessage(res)

	if err := d.email.Send(ctx, msg); err != nil {
		d.logger.Error("failed to send confirmation email",
			"reservation_id", res.ID, "email", res.Email, "error", err)
		return
	}

	d.logger.Info("confirmation email sent", "reservation_id", res.ID, "email", res.Email)
}

func (d *dispatcher) sendSMS(ctx context.Context, res *queries.ReservationView) {
	msg := buildSMSMessage(res)

	sid, err := d.sms.Send(ctx, msg)
	if err != nil {
		d.logger.Error("failed to send confirmation SMS",
			"reservation_id", res.ID, "phone", res.Phone, "error", err)
		return
	}

	d.logger.Info("confirmation SMS sent", "reservation_id", res.ID, "phone", res.Phone, "sid", sid)
}
