// Package view renders the site pages from the templates embedded in the binary.
package view

import (
	"embed"
	"io/fs"
	"net/http"
	"time"

	"github.com/WitAqua/website/internal/catalog"
	"github.com/WitAqua/website/internal/config"
	"github.com/WitAqua/website/internal/i18n"
	"github.com/dustin/go-humanize"
	"github.com/gofiber/template/html/v2"
)

const (
	Layout = "layouts/main"

	PageHome     = "home"
	PageAbout    = "about"
	PageDevices  = "devices"
	PageDevice   = "device"
	PageError    = "error"
	PageNotFound = "notfound"

	// GsiCodename is listed like a device but released from its own repository.
	GsiCodename = "gsi"
)

//go:embed templates
var templates embed.FS

func NewEngine(conf *config.Config) *html.Engine {
	sub, err := fs.Sub(templates, "templates")
	if err != nil {
		panic(err)
	}

	engine := html.NewFileSystem(http.FS(sub), ".html")
	engine.Reload(conf.Server.ReloadViews)

	engine.AddFuncMap(Funcs(conf.Site))

	return engine
}

// Funcs are the helpers every template may call. Helpers taking Preferences render for the
// locale of the current request.
func Funcs(site config.SiteConfig) map[string]any {
	return map[string]any{
		"t": func(p i18n.Preferences, key string) string {
			return p.T(i18n.Key(key))
		},
		"link": func(p i18n.Preferences, path string) string {
			return i18n.Link(p.Locale, path)
		},
		"filesize": FileSize,
		"buildDate": func(p i18n.Preferences, d catalog.Device) string {
			return i18n.FormatDate(p.Locale, d.BuildTime())
		},
		"shortDate": func(p i18n.Preferences, d catalog.Device) string {
			return i18n.FormatShortDate(p.Locale, d.BuildTime())
		},
		"deviceHref": func(p i18n.Preferences, d catalog.Device) string {
			return DeviceHref(site, p.Locale, d)
		},
		"isExternal": func(d catalog.Device) bool {
			return d.Codename == GsiCodename
		},
		"wikiUrl": func() string {
			return site.WikiBase
		},
		"screenshots": func() []string {
			return Screenshots(site)
		},
		"year": func() int {
			return time.Now().Year()
		},
	}
}

// DeviceHref is where a device list item leads. It is empty for a device without builds.
func DeviceHref(site config.SiteConfig, l i18n.Locale, d catalog.Device) string {
	if d.Codename == GsiCodename {
		return site.GsiReleasesURL
	}
	if !d.HasBuild() {
		return ""
	}
	return i18n.Link(l, "/devices/"+d.Codename)
}

// FileSize renders a build size in GB computed with binary units, to two significant digits:
// 1288490189 is "1.2 GB", 512 MiB is "0.50 GB".
func FileSize(size int64) string {
	if size <= 0 {
		return "0.0 GB"
	}
	gb := float64(size) / (1 << 30)
	format := "#.#"
	switch {
	case gb >= 10:
		format = "#."
	case gb < 1:
		format = "#.##"
	}
	return humanize.FormatFloat(format, gb) + " GB"
}
