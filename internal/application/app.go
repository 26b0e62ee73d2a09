package application

import (
	"context"
	"errors"
	"time"

	"github.com/WitAqua/website/internal/pkg/shutdown"
	"go.uber.org/zap"
)

type Adapter interface {
	Start(ctx context.Context) error
	Stop(ctx context.Context) error
}

type App struct {
	adapters        []Adapter
	shutdownTimeout time.Duration
}

func New() *App {
	return &App{
		shutdownTimeout: 5 * time.Second,
	}
}

func (a *App) AddAdapter(adapters ...Adapter) {
	a.adapters = append(a.adapters, adapters...)
}

func (a *App) WithShutdownTimeout(timeout time.Duration) {
	a.shutdownTimeout = timeout
}

// Run starts every adapter and blocks until a signal arrives, ctx is cancelled or an adapter
// fails to start. The first start failure is returned after all adapters were stopped.
func (a *App) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	startErr := make(chan error, len(a.adapters))
	for _, adapter := range a.adapters {
		go func(adapter Adapter) {
			if err := adapter.Start(ctx); err != nil {
				zap.L().Error("adapter start failed", zap.Error(err))
				startErr <- err
				cancel()
			}
		}(adapter)
	}

	shutdown.Wait(ctx)

	a.stop(context.WithoutCancel(ctx))

	select {
	case err := <-startErr:
		return err
	default:
		return nil
	}
}

func (a *App) stop(ctx context.Context) {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, a.shutdownTimeout)
	defer cancel()

	zap.L().Info("shutting down...")

	errCh := make(chan error, len(a.adapters))

	for _, adapter := range a.adapters {
		go func(adapter Adapter) {
			errCh <- adapter.Stop(ctxWithTimeout)
		}(adapter)
	}

	var errs []error
	for i := 0; i < len(a.adapters); i++ {
		if err := <-errCh; err != nil {
			errs = append(errs, err)
		}
	}
	if err := errors.Join(errs...); err != nil {
		zap.L().Error("shutdown failed", zap.Error(err))
		return
	}

	zap.L().Info("graceful stopped")
}
