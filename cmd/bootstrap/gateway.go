package bootstrap

import (
	"restaurant-booking/internal/infra/mail"
	"restaurant-booking/internal/infra/sms"
	"restaurant-booking/internal/pkg/config"
	"restaurant-booking/internal/usecase/notify"

	"go.uber.org/fx"
)

// GatewayModule wires the outbound notification providers. Both are
// process-wide singletons shared across requests.
var GatewayModule = fx.Module("gateway",
	fx.Provide(
		fx.Annotate(
			NewMailGateway,
			fx.As(new(notify.EmailGateway)),
		),
		fx.Annotate(
			NewSMSGateway,
			fx.As(new(notify.SMSGateway)),
		),
	),
)

func NewMailGateway(cfg config.Config) *mail.SMTPGateway {
	return mail.NewSMTPGateway(cfg.Mail)
}

func NewSMSGateway(cfg config.Config) *sms.TwilioGateway {
	return sms.NewTwilioGateway(cfg.SMS)
}
