package wire

import "github.com/WitAqua/website/internal/interfaces/rest/handler"

type HandlerSet struct {
	PageHandler       *handler.PageHandler
	DeviceHandler     *handler.DeviceHandler
	PreferenceHandler *handler.PreferenceHandler
	MetricsHandler    *handler.MetricsHandler
	HeathCheckHandler *handler.HeathCheckHandler
}
