// Package i18n holds the site's two static string tables and the rules for picking one.
package i18n

import (
	"fmt"
	"strings"
	"time"
)

type Locale string

const (
	English  Locale = "en"
	Japanese Locale = "ja"

	// PathPrefix marks Japanese pages, "/ja/devices" vs "/devices".
	PathPrefix = "/ja"
	CookieName = "lang"
)

var Locales = []Locale{English, Japanese}

func (l Locale) String() string {
	return string(l)
}

// ParseLocale accepts "en" and "ja" in any case.
func ParseLocale(s string) (Locale, bool) {
	switch Locale(strings.ToLower(strings.TrimSpace(s))) {
	case English:
		return English, true
	case Japanese:
		return Japanese, true
	default:
		return "", false
	}
}

// HasPrefix reports whether path belongs to the Japanese tree.
func HasPrefix(path string) bool {
	return path == PathPrefix || strings.HasPrefix(path, PathPrefix+"/")
}

// Resolve picks the locale for a request: the /ja path prefix wins, then the lang cookie, then
// an Accept-Language header starting with ja, then fallback.
func Resolve(path, cookie, acceptLanguage string, fallback Locale) Locale {
	if HasPrefix(path) {
		return Japanese
	}
	if l, ok := ParseLocale(cookie); ok {
		return l
	}
	if strings.HasPrefix(strings.ToLower(strings.TrimSpace(acceptLanguage)), "ja") {
		return Japanese
	}
	if fallback == "" {
		return English
	}
	return fallback
}

// SwitchPath rewrites path into the tree of locale: "/devices" <-> "/ja/devices", "/" <-> "/ja".
// A trailing slash is dropped first; a query string is kept as is.
func SwitchPath(path string, to Locale) string {
	if p, query, ok := strings.Cut(path, "?"); ok {
		return SwitchPath(p, to) + "?" + query
	}
	if path == "" {
		path = "/"
	}
	if path != "/" && strings.HasSuffix(path, "/") {
		path = strings.TrimRight(path, "/")
		if path == "" {
			path = "/"
		}
	}

	stripped := path
	if HasPrefix(path) {
		stripped = strings.TrimPrefix(path, PathPrefix)
	}
	if stripped == "" {
		stripped = "/"
	}

	if to == English {
		return stripped
	}
	if stripped == "/" {
		return PathPrefix
	}
	return PathPrefix + stripped
}

// Link prefixes an English site path for locale.
func Link(l Locale, path string) string {
	return SwitchPath(path, l)
}

var japaneseWeekdays = [...]string{"日曜日", "月曜日", "火曜日", "水曜日", "木曜日", "金曜日", "土曜日"}

// FormatDate renders a long date, "Monday, January 2, 2006" or "2006年1月2日 月曜日".
func FormatDate(l Locale, t time.Time) string {
	if l == Japanese {
		return fmt.Sprintf("%d年%d月%d日 %s", t.Year(), int(t.Month()), t.Day(), japaneseWeekdays[t.Weekday()])
	}
	return t.Format("Monday, January 2, 2006")
}

// FormatShortDate renders a compact date for list rows.
func FormatShortDate(l Locale, t time.Time) string {
	if l == Japanese {
		return t.Format("2006/1/2")
	}
	return t.Format("1/2/2006")
}
