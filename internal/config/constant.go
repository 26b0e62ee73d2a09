package config

import "time"

const (
	DefaultPort            = 8000
	DefaultConfigName      = "config"
	DefaultConfigType      = "yaml"
	DefaultRequestTimeout  = 15 * time.Second
	DefaultUpstreamTimeout = 10 * time.Second

	EnvPrefix = "WITAQUA"

	ServerPortKey           = "server.port"
	ServerRequestTimeoutKey = "server.request_timeout"
	LogLevelKey             = "log.level"
)

const (
	DefaultOemsURL            = "https://api.witaqua.org/api/v2/oems"
	DefaultBuildsURL          = "https://download.witaqua.org/builds/builds.json"
	DefaultChangesURL         = "https://api.witaqua.org/api/v2/changes"
	DefaultLegacyChangelogURL = "https://raw.githubusercontent.com/WitAqua/WitAquaOTA/refs/heads/main/changelog"
	DefaultDownloadBase       = "https://download.witaqua.org"
	DefaultWikiBase           = "https://wiki.witaqua.org"
	DefaultGsiReleasesURL     = "https://github.com/Doze-off/WitAqua_treble/releases"
	DefaultScreenshotBase     = "https://witaqua.org"
	DefaultLocale             = "en"
	DefaultTheme              = "system"
)

const (
	ChangelogModeChanges = "changes"
	ChangelogModeLegacy  = "legacy"
	DefaultChangelogMode = ChangelogModeChanges
)
