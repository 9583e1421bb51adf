package components

import (
	"log/slog"

	"restaurant-booking/internal/pkg/config"
	"restaurant-booking/internal/usecase/commands"
	"restaurant-booking/internal/usecase/notify"
	"restaurant-booking/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	fx.Provide(
		NewDispatcher,
		commands.NewReservationCommands,
		queries.NewReservationQueries,
	),
)

func NewDispatcher(email notify.EmailGateway, sms notify.SMSGateway, cfg config.Config, logger *slog.Logger) notify.Dispatcher {
	return notify.NewDispatcher(email, sms, cfg.Notify, logger)
}
