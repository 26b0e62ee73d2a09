package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	c := Default()

	require.Equal(t, DefaultPort, c.Server.Port)
	require.Equal(t, DefaultRequestTimeout, c.Server.RequestTimeout)
	require.Equal(t, "info", c.Log.Level)
	require.Equal(t, DefaultOemsURL, c.Upstream.OemsURL)
	require.Equal(t, DefaultBuildsURL, c.Upstream.BuildsURL)
	require.Equal(t, ChangelogModeChanges, c.Upstream.ChangelogMode)
	require.Equal(t, 10*time.Second, c.Upstream.Timeout)
	require.Equal(t, "https://download.witaqua.org", c.Site.DownloadBase)
	require.Equal(t, "en", c.Site.DefaultLocale)
}

func TestNotifyChangedKeysOnly(t *testing.T) {
	listeners = nil
	t.Cleanup(func() { listeners = nil })

	var got []any
	RegisterKeyListener(KeyListener{Key: "a", Listener: func(v any) { got = append(got, v) }})
	RegisterKeyListener(KeyListener{Key: "b", Listener: func(v any) { got = append(got, v) }})

	values := map[string]any{"a": "debug", "b": 1}
	before := snapshot(func(k string) any { return values[k] })

	values["a"] = "warn"
	notify(func(k string) any { return values[k] }, before)

	require.Equal(t, []any{"warn"}, got)
}
