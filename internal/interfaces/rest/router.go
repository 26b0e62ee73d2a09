package rest

import (
	"github.com/WitAqua/website/internal/config"
	"github.com/WitAqua/website/internal/interfaces/rest/handler"
	"github.com/WitAqua/website/internal/middleware"
	"github.com/WitAqua/website/internal/view"
	"github.com/WitAqua/website/internal/wire"
	"github.com/bytedance/sonic"
	"github.com/gofiber/contrib/fiberzap/v2"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

const BodyLimit = 64 * 1024

func NewRouter(conf *config.Config) *fiber.App {

	router := fiber.New(fiber.Config{
		AppName:     "witaqua-website",
		BodyLimit:   BodyLimit,
		ProxyHeader: fiber.HeaderXForwardedFor,

		JSONEncoder: sonic.Marshal,
		JSONDecoder: sonic.Unmarshal,

		Views:       view.NewEngine(conf),
		ViewsLayout: view.Layout,

		ErrorHandler: handler.Error,
	})

	return router
}

func InitRoutes(router *fiber.App, conf *config.Config, handlerSet *wire.HandlerSet) {

	router.Use(middleware.NewRequestID())

	router.Use(fiberzap.New(fiberzap.Config{
		Logger: zap.L(),
		Fields: []string{"requestId", "latency", "status", "method", "url", "ip"},
		SkipURIs: []string{
			"/metrics",
			"/health",
		},
	}))

	router.Use(middleware.NewRequestTimeout(conf.Server.RequestTimeout))
	router.Use(middleware.NewPreferences(conf))

	r := router.Group("/")

	handlerSet.MetricsHandler.Register(r)

	handlerSet.HeathCheckHandler.Register(r)

	handlerSet.PreferenceHandler.Register(r)

	handlerSet.DeviceHandler.Register(r)

	handlerSet.PageHandler.Register(r)
}
