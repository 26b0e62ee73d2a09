package config

import (
	"errors"
	"log"
	"strings"

	"github.com/fsnotify/fsnotify"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// New loads .env, config.yaml and WITAQUA_* overrides and starts watching the config file.
// Components keep the returned value; on reload only registered key listeners see new values.
func New() *Config {
	_ = godotenv.Load()

	v := newViper()
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			log.Fatalf("Failed to read config file, %v", err)
		}
		log.Println("config file not found, using defaults and environment")
	}

	c, err := unmarshal(v)
	if err != nil {
		log.Fatalf("Failed to unmarshal config file, %v", err)
	}

	watch(v)
	return c
}

// Default returns the configuration made only of defaults, without touching disk or env.
func Default() *Config {
	v := viper.New()
	setDefaults(v)
	c, _ := unmarshal(v)
	return c
}

func newViper() *viper.Viper {
	v := viper.New()
	setDefaults(v)
	v.SetConfigName(DefaultConfigName)
	v.SetConfigType(DefaultConfigType)
	v.AddConfigPath(".")
	v.AddConfigPath("config")
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

func setDefaults(v *viper.Viper) {
	v.SetDefault(ServerPortKey, DefaultPort)
	v.SetDefault(ServerRequestTimeoutKey, DefaultRequestTimeout)
	v.SetDefault("server.reload_views", false)

	v.SetDefault(LogLevelKey, "info")
	v.SetDefault("log.max_size", 100)
	v.SetDefault("log.max_backups", 5)
	v.SetDefault("log.max_age", 30)

	v.SetDefault("upstream.oems_url", DefaultOemsURL)
	v.SetDefault("upstream.builds_url", DefaultBuildsURL)
	v.SetDefault("upstream.changes_url", DefaultChangesURL)
	v.SetDefault("upstream.legacy_changelog_url", DefaultLegacyChangelogURL)
	v.SetDefault("upstream.changelog_mode", DefaultChangelogMode)
	v.SetDefault("upstream.timeout", DefaultUpstreamTimeout)

	v.SetDefault("site.download_base", DefaultDownloadBase)
	v.SetDefault("site.wiki_base", DefaultWikiBase)
	v.SetDefault("site.gsi_releases_url", DefaultGsiReleasesURL)
	v.SetDefault("site.screenshot_base", DefaultScreenshotBase)
	v.SetDefault("site.default_locale", DefaultLocale)
	v.SetDefault("site.default_theme", DefaultTheme)
}

func unmarshal(v *viper.Viper) (*Config, error) {
	var c = new(Config)
	if err := v.Unmarshal(c); err != nil {
		return nil, err
	}
	c.Site.DownloadBase = strings.TrimSuffix(c.Site.DownloadBase, "/")
	c.Site.WikiBase = strings.TrimSuffix(c.Site.WikiBase, "/")
	c.Site.ScreenshotBase = strings.TrimSuffix(c.Site.ScreenshotBase, "/")
	c.Upstream.LegacyChangelogURL = strings.TrimSuffix(c.Upstream.LegacyChangelogURL, "/")
	return c, nil
}

func watch(v *viper.Viper) {
	if v.ConfigFileUsed() == "" {
		return
	}
	before := snapshot(v.Get)
	v.OnConfigChange(func(e fsnotify.Event) {
		if _, err := unmarshal(v); err != nil {
			log.Printf("failed to dynamic update config file, %v\n", err)
			return
		}
		notify(v.Get, before)
		before = snapshot(v.Get)
		log.Println("Config Update", e.Name)
	})
	v.WatchConfig()
}
