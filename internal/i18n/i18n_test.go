package i18n

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestSwitchPath(t *testing.T) {
	tests := []struct {
		path string
		to   Locale
		want string
	}{
		{"/", Japanese, "/ja"},
		{"", Japanese, "/ja"},
		{"/devices", Japanese, "/ja/devices"},
		{"/devices/", Japanese, "/ja/devices"},
		{"/ja/devices", Japanese, "/ja/devices"},
		{"/ja", Japanese, "/ja"},
		{"/ja", English, "/"},
		{"/ja/", English, "/"},
		{"/ja/devices/raven", English, "/devices/raven"},
		{"/about", English, "/about"},
		{"/jabber", English, "/jabber"},
		{"/jabber", Japanese, "/ja/jabber"},
		{"/devices?q=pixel", Japanese, "/ja/devices?q=pixel"},
		{"/ja/devices/?q=pixel", English, "/devices?q=pixel"},
		{"/ja?q=", English, "/?q="},
	}
	for _, tt := range tests {
		t.Run(tt.path+"->"+tt.to.String(), func(t *testing.T) {
			require.Equal(t, tt.want, SwitchPath(tt.path, tt.to))
		})
	}
}

func TestResolve(t *testing.T) {
	tests := []struct {
		name     string
		path     string
		cookie   string
		accept   string
		fallback Locale
		want     Locale
	}{
		{"path prefix wins", "/ja/devices", "en", "en-US", English, Japanese},
		{"cookie", "/devices", "ja", "", English, Japanese},
		{"cookie beats header", "/", "en", "ja-JP,ja;q=0.9", Japanese, English},
		{"accept language", "/", "", "ja-JP,ja;q=0.9", English, Japanese},
		{"unknown cookie ignored", "/", "fr", "", English, English},
		{"fallback", "/", "", "de", Japanese, Japanese},
		{"empty fallback", "/", "", "", "", English},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, Resolve(tt.path, tt.cookie, tt.accept, tt.fallback))
		})
	}
}

func TestFormatDate(t *testing.T) {
	ts := time.Date(2025, time.March, 3, 10, 0, 0, 0, time.UTC)
	require.Equal(t, "Monday, March 3, 2025", FormatDate(English, ts))
	require.Equal(t, "2025年3月3日 月曜日", FormatDate(Japanese, ts))
	require.Equal(t, "3/3/2025", FormatShortDate(English, ts))
	require.Equal(t, "2025/3/3", FormatShortDate(Japanese, ts))
}

func TestT(t *testing.T) {
	require.Equal(t, "Devices", T(English, NavDevices))
	require.Equal(t, "デバイス", T(Japanese, NavDevices))
	require.Equal(t, "Devices", T(Locale("fr"), NavDevices))
	require.Equal(t, "missingKey", T(Japanese, Key("missingKey")))
	require.Equal(t, "デバイス", Preferences{Locale: Japanese}.T(NavDevices))
}

func TestDictionariesComplete(t *testing.T) {
	for key := range dictionary[English] {
		_, ok := dictionary[Japanese][key]
		require.True(t, ok, "missing ja entry for %s", key)
	}
	require.Len(t, dictionary[Japanese], len(dictionary[English]))
}

func TestParseTheme(t *testing.T) {
	th, ok := ParseTheme(" Dark ")
	require.True(t, ok)
	require.Equal(t, ThemeDark, th)

	_, ok = ParseTheme("sepia")
	require.False(t, ok)
}
