package middleware

import (
	"github.com/WitAqua/website/internal/config"
	"github.com/WitAqua/website/internal/i18n"
	"github.com/gofiber/fiber/v2"
)

const preferencesKey = "preferences"

// NewPreferences resolves locale and theme once per request and stores them in the locals.
func NewPreferences(conf *config.Config) fiber.Handler {
	fallbackLocale, ok := i18n.ParseLocale(conf.Site.DefaultLocale)
	if !ok {
		fallbackLocale = i18n.English
	}
	fallbackTheme, ok := i18n.ParseTheme(conf.Site.DefaultTheme)
	if !ok {
		fallbackTheme = i18n.ThemeSystem
	}

	return func(c *fiber.Ctx) error {
		p := i18n.Preferences{
			Locale: i18n.Resolve(
				c.Path(),
				c.Cookies(i18n.CookieName),
				c.Get(fiber.HeaderAcceptLanguage),
				fallbackLocale,
			),
			Theme: fallbackTheme,
		}
		if th, ok := i18n.ParseTheme(c.Cookies(i18n.ThemeCookieName)); ok {
			p.Theme = th
		}
		c.Locals(preferencesKey, p)
		return c.Next()
	}
}

// Preferences returns what NewPreferences stored, or English with the system theme when the
// middleware did not run.
func Preferences(c *fiber.Ctx) i18n.Preferences {
	if p, ok := c.Locals(preferencesKey).(i18n.Preferences); ok {
		return p
	}
	return i18n.Preferences{Locale: i18n.English, Theme: i18n.ThemeSystem}
}
