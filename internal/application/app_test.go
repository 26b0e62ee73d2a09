package application

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

type fakeAdapter struct {
	startErr error
	started  atomic.Bool
	stopped  atomic.Bool
}

func (f *fakeAdapter) Start(ctx context.Context) error {
	f.started.Store(true)
	if f.startErr != nil {
		return f.startErr
	}
	<-ctx.Done()
	return nil
}

func (f *fakeAdapter) Stop(ctx context.Context) error {
	f.stopped.Store(true)
	return nil
}

func TestRunStopsAdaptersOnCancel(t *testing.T) {
	var (
		a       = New()
		adapter = &fakeAdapter{}
	)
	a.AddAdapter(adapter)

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(20 * time.Millisecond)
		cancel()
	}()

	require.NoError(t, a.Run(ctx))
	require.True(t, adapter.started.Load())
	require.True(t, adapter.stopped.Load())
}

func TestRunReturnsStartFailure(t *testing.T) {
	var (
		a       = New()
		failing = &fakeAdapter{startErr: errors.New("address already in use")}
		healthy = &fakeAdapter{}
	)
	a.AddAdapter(failing, healthy)

	err := a.Run(context.Background())

	require.EqualError(t, err, "address already in use")
	require.True(t, healthy.stopped.Load())
}
