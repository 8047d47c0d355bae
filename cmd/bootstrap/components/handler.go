package components

import (
	"printcanvas/internal/handler"
	"printcanvas/internal/handler/api"
	"printcanvas/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewCustomerHandler,
		api.NewCouponHandler,
		api.NewDesignHandler,
		api.NewOrderHandler,
		api.NewWebhookHandler,
		middleware.NewAuthMiddleware,
		newHandlers,
	),
	fx.Invoke(handler.NewRouter),
)

func newHandlers(
	auth *api.AuthHandler,
	customer *api.CustomerHandler,
	coupon *api.CouponHandler,
	design *api.DesignHandler,
	order *api.OrderHandler,
	webhook *api.WebhookHandler,
) handler.Handlers {
	return handler.Handlers{
		Auth:     auth,
		Customer: customer,
		Coupon:   coupon,
		Design:   design,
		Order:    order,
		Webhook:  webhook,
	}
}
