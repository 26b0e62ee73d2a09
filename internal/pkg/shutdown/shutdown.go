package shutdown

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"
)

// Wait blocks until an interrupt signal arrives or ctx is done. A second signal while the caller
// is still shutting down terminates the process.
func Wait(ctx context.Context) {
	signalChan := make(chan os.Signal, 1)
	signal.Notify(
		signalChan,
		syscall.SIGHUP,
		syscall.SIGINT,
		syscall.SIGTERM,
		syscall.SIGQUIT,
	)

	select {
	case <-signalChan:
		zap.L().Info("os.Interrupt - shutting down...")
	case <-ctx.Done():
		signal.Stop(signalChan)
		return
	}

	go func() {
		<-signalChan
		zap.L().Fatal("os.Kill - terminating...")
	}()
}
