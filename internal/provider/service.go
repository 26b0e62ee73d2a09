package provider

import (
	"github.com/WitAqua/website/internal/catalog"
	"github.com/WitAqua/website/internal/changelog"
	"github.com/WitAqua/website/internal/interfaces/rest/handler"
	"github.com/WitAqua/website/internal/upstream"
	"github.com/google/wire"
)

var UpstreamSet = wire.NewSet(
	upstream.NewClient,
	wire.Bind(new(catalog.JSONFetcher), new(*upstream.Client)),
	wire.Bind(new(changelog.Fetcher), new(*upstream.Client)),
)

var ServiceSet = wire.NewSet(
	catalog.NewBuilder,
	changelog.NewService,
	wire.Bind(new(handler.DeviceSource), new(*catalog.Builder)),
	wire.Bind(new(handler.ChangelogSource), new(*changelog.Service)),
)
