package components

import (
	"facility-booking/internal/handler"
	"facility-booking/internal/handler/api"
	"facility-booking/internal/handler/middleware"
	"facility-booking/internal/usecase/commands"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewBookingHandler,
		api.NewResourceHandler,
		NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)

func NewAuthMiddleware(tokenValidator *commands.TokenValidator) *middleware.AuthMiddleware {
	return middleware.NewAuthMiddleware(tokenValidator)
}
