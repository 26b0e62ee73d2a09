package provider

import (
	"github.com/WitAqua/website/internal/interfaces/rest/handler"
	"github.com/google/wire"
)

var HandlerSet = wire.NewSet(
	handler.NewPageHandler,
	handler.NewDeviceHandler,
	handler.NewPreferenceHandler,
	handler.NewMetricsHandler,
	handler.NewHeathCheckHandler,
)
