//go:build wireinject
// +build wireinject

package wire

import (
	"github.com/WitAqua/website/internal/config"
	"github.com/WitAqua/website/internal/provider"
	"github.com/google/wire"
	"go.uber.org/zap"
)

func NewHandlerSet(
	logger *zap.Logger,
	conf *config.Config,
) *HandlerSet {
	panic(wire.Build(
		provider.UpstreamSet,
		provider.ServiceSet,
		provider.HandlerSet,
		wire.Struct(new(HandlerSet), "*"),
	))
}
