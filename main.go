package main

import (
	"context"

	"github.com/WitAqua/website/internal/application"
	"github.com/WitAqua/website/internal/config"
	"github.com/WitAqua/website/internal/interfaces/rest"
	"github.com/WitAqua/website/internal/logger"
	"github.com/WitAqua/website/internal/pkg/restserver"
	"github.com/WitAqua/website/internal/wire"
	"go.uber.org/zap"

	_ "github.com/WitAqua/website/internal/banner"
)

func main() {

	conf := setUpConfigAndLog()

	defer func() {
		_ = zap.L().Sync()
	}()

	var (
		router     = rest.NewRouter(conf)
		handlerSet = wire.NewHandlerSet(zap.L(), conf)
	)

	rest.InitRoutes(router, conf, handlerSet)

	app := application.New()
	app.AddAdapter(restserver.NewAdapter(router, conf.Server.Port))

	zap.L().Info("starting server",
		zap.Int("port", conf.Server.Port),
		zap.String("changelog mode", conf.Upstream.ChangelogMode),
	)

	if err := app.Run(context.Background()); err != nil {
		zap.L().Fatal("failed to start server",
			zap.Error(err),
		)
	}
}

func setUpConfigAndLog() *config.Config {
	conf := config.New()
	zap.ReplaceGlobals(logger.New(conf))
	return conf
}
