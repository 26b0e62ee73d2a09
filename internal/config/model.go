package config

import "time"

type (
	Config struct {
		Server   ServerConfig   `mapstructure:"server"`
		Log      LogConfig      `mapstructure:"log"`
		Upstream UpstreamConfig `mapstructure:"upstream"`
		Site     SiteConfig     `mapstructure:"site"`
	}
	ServerConfig struct {
		Port           int           `mapstructure:"port"`
		RequestTimeout time.Duration `mapstructure:"request_timeout"`
		// ReloadViews re-parses templates on every render, for local development.
		ReloadViews bool `mapstructure:"reload_views"`
	}

	LogConfig struct {
		Level      string `mapstructure:"level"`
		File       string `mapstructure:"file"`
		MaxSize    int    `mapstructure:"max_size"`
		MaxBackups int    `mapstructure:"max_backups"`
		MaxAge     int    `mapstructure:"max_age"`
		Compress   bool   `mapstructure:"compress"`
	}

	UpstreamConfig struct {
		OemsURL            string        `mapstructure:"oems_url"`
		BuildsURL          string        `mapstructure:"builds_url"`
		ChangesURL         string        `mapstructure:"changes_url"`
		LegacyChangelogURL string        `mapstructure:"legacy_changelog_url"`
		ChangelogMode      string        `mapstructure:"changelog_mode"`
		Timeout            time.Duration `mapstructure:"timeout"`
	}

	SiteConfig struct {
		DownloadBase   string `mapstructure:"download_base"`
		WikiBase       string `mapstructure:"wiki_base"`
		GsiReleasesURL string `mapstructure:"gsi_releases_url"`
		ScreenshotBase string `mapstructure:"screenshot_base"`
		DefaultLocale  string `mapstructure:"default_locale"`
		DefaultTheme   string `mapstructure:"default_theme"`
	}
)
