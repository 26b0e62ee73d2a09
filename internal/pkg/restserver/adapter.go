package restserver

import (
	"context"
	"fmt"

	"github.com/WitAqua/website/internal/application"
	"github.com/gofiber/fiber/v2"
)

func NewAdapter(restServer *fiber.App, port int) application.Adapter {
	return &Adapter{
		restServer: restServer,
		port:       port,
	}
}

type Adapter struct {
	restServer *fiber.App
	port       int
}

func (a Adapter) Start(ctx context.Context) error {

	addr := fmt.Sprintf(":%d", a.port)
	return a.restServer.Listen(addr)
}

func (a Adapter) Stop(ctx context.Context) error {

	return a.restServer.ShutdownWithContext(ctx)
}
