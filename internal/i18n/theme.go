package i18n

import "strings"

type Theme string

const (
	ThemeLight  Theme = "light"
	ThemeDark   Theme = "dark"
	ThemeSystem Theme = "system"

	ThemeCookieName = "theme"
)

func ParseTheme(s string) (Theme, bool) {
	switch Theme(strings.ToLower(strings.TrimSpace(s))) {
	case ThemeLight:
		return ThemeLight, true
	case ThemeDark:
		return ThemeDark, true
	case ThemeSystem:
		return ThemeSystem, true
	default:
		return "", false
	}
}

// Preferences is resolved once per request and handed to every view.
type Preferences struct {
	Locale Locale
	Theme  Theme
}

func (p Preferences) T(key Key) string {
	return T(p.Locale, key)
}
