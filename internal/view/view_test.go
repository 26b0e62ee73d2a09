package view

import (
	"testing"

	"github.com/WitAqua/website/internal/catalog"
	"github.com/WitAqua/website/internal/config"
	"github.com/WitAqua/website/internal/i18n"
	"github.com/stretchr/testify/require"
)

func TestDeviceHref(t *testing.T) {
	site := config.Default().Site

	testCases := []struct {
		Name     string
		Locale   i18n.Locale
		Device   catalog.Device
		Expected string
	}{
		{"with build", i18n.English, catalog.Device{Codename: "raven", Datetime: 1}, "/devices/raven"},
		{"with build ja", i18n.Japanese, catalog.Device{Codename: "raven", Datetime: 1}, "/ja/devices/raven"},
		{"without build", i18n.English, catalog.Device{Codename: "oriole"}, ""},
		{"gsi", i18n.Japanese, catalog.Device{Codename: GsiCodename}, site.GsiReleasesURL},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			require.Equal(t, tc.Expected, DeviceHref(site, tc.Locale, tc.Device))
		})
	}
}

func TestFileSize(t *testing.T) {
	testCases := []struct {
		Name     string
		Size     int64
		Expected string
	}{
		{Name: "empty", Size: 0, Expected: "0.0 GB"},
		{Name: "typical build", Size: 1288490189, Expected: "1.2 GB"},
		{Name: "under one", Size: 512 * 1024 * 1024, Expected: "0.50 GB"},
		{Name: "two digits", Size: 13207024435, Expected: "12 GB"},
	}

	filesize := Funcs(config.Default().Site)["filesize"].(func(int64) string)
	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			require.Equal(t, tc.Expected, filesize(tc.Size))
		})
	}
}

func TestGallery(t *testing.T) {
	site := config.Default().Site
	site.ScreenshotBase = "https://cdn.example.org"

	shots := Screenshots(site)
	require.Len(t, shots, 7)
	require.Equal(t, "https://cdn.example.org/screenshot-1.png", shots[0])
	require.Equal(t, "https://cdn.example.org/screenshot-7.png", shots[6])

	require.Len(t, Highlights, 6)
	for _, h := range Highlights {
		require.NotEqual(t, string(h.Title), i18n.T(i18n.Japanese, h.Title))
		require.NotEqual(t, string(h.Description), i18n.T(i18n.English, h.Description))
	}
}

func TestEngineLoads(t *testing.T) {
	engine := NewEngine(config.Default())
	require.NoError(t, engine.Load())
}

func TestTeamLinks(t *testing.T) {
	m := Member{Github: "toufune", Twitter: "toufu14271"}
	require.Equal(t, "https://github.com/toufune", m.GithubURL())
	require.Equal(t, "https://x.com/toufu14271", m.TwitterURL())
	require.Empty(t, m.TelegramURL())
	require.Empty(t, m.WebsiteURL())
}
