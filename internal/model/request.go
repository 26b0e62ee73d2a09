package model

type DeviceListRequest struct {
	Query string `query:"q" validate:"max=64"`
}

type DeviceRequest struct {
	Codename string `params:"codename" validate:"required,max=64,slug"`
}

type SwitchLocaleRequest struct {
	Locale string `params:"locale" validate:"required,max=8"`
	From   string `query:"from" validate:"omitempty,startswith=/,max=2048"`
}

type SwitchThemeRequest struct {
	Theme string `params:"theme" validate:"required,max=8"`
	From  string `query:"from" validate:"omitempty,startswith=/,max=2048"`
}
