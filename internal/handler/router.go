package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"printcanvas/internal/handler/api"
	"printcanvas/internal/handler/middleware"
	"printcanvas/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Auth     *api.AuthHandler
	Customer *api.CustomerHandler
	Coupon   *api.CouponHandler
	Design   *api.DesignHandler
	Order    *api.OrderHandler
	Webhook  *api.WebhookHandler
}

func NewRouter(engine *gin.Engine, cfg config.Config, handlers Handlers, authMiddleware *middleware.AuthMiddleware) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, handlers, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		auth := apiGroup.Group("/auth")
		{
			addRoutes(auth, []route{
				{Method: http.MethodPost, Path: "/login", Handler: h.Auth.Login},
			})

			authRequired := auth.Group("")
			authRequired.Use(authMiddleware.RequireMerchantAuth())
			addRoutes(authRequired, []route{
				{Method: http.MethodPost, Path: "/logout", Handler: h.Auth.Logout},
				{Method: http.MethodGet, Path: "/me", Handler: h.Auth.Me},
			})
		}

		storefront := apiGroup.Group("")
		storefront.Use(authMiddleware.RequireStorefrontAuth())
		{
			addRoutes(storefront, []route{
				{Method: http.MethodGet, Path: "/customer", Handler: h.Customer.GetCustomer},
				{Method: http.MethodPost, Path: "/credits/purchase", Handler: h.Customer.PurchaseCredits},
				{Method: http.MethodGet, Path: "/credits/history", Handler: h.Customer.GetCreditHistory},
				{Method: http.MethodPost, Path: "/coupons/redeem", Handler: h.Coupon.Redeem},
				{Method: http.MethodPost, Path: "/designs/generate", Handler: h.Design.Generate},
				{Method: http.MethodGet, Path: "/designs", Handler: h.Design.List},
				{Method: http.MethodGet, Path: "/designs/:id", Handler: h.Design.Get},
				{Method: http.MethodDelete, Path: "/designs/:id", Handler: h.Design.Delete},
				{Method: http.MethodPost, Path: "/orders", Handler: h.Order.PlaceOrder},
				{Method: http.MethodGet, Path: "/orders", Handler: h.Order.List},
				{Method: http.MethodGet, Path: "/orders/:id", Handler: h.Order.Get},
			})
		}

		admin := apiGroup.Group("/admin")
		admin.Use(authMiddleware.RequireMerchantAuth())
		{
			addRoutes(admin, []route{
				{Method: http.MethodPost, Path: "/coupons", Handler: h.Coupon.Create},
				{Method: http.MethodGet, Path: "/coupons", Handler: h.Coupon.List},
				{Method: http.MethodDelete, Path: "/coupons/:id", Handler: h.Coupon.Deactivate},
			})
		}

		addRoutes(apiGroup, []route{
			{Method: http.MethodPost, Path: "/webhooks/printify", Handler: h.Webhook.Printify},
		})
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
