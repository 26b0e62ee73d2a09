package model

import "github.com/WitAqua/website/internal/catalog"

type DeviceListResponseData struct {
	List  []catalog.Device `json:"list"`
	Total int              `json:"total"`
	Query string           `json:"query,omitempty"`
}

type ChangelogResponseData struct {
	Codename string `json:"codename"`
	Text     string `json:"text"`
	// NoChanges is set when the feed has nothing newer than the installed build.
	NoChanges bool `json:"no_changes"`
	// Failed is set when Text carries the load failure message instead of a changelog.
	Failed bool `json:"failed"`
}
