package handler

import (
	"strings"

	"github.com/WitAqua/website/internal/i18n"
	"github.com/WitAqua/website/internal/middleware"
	"github.com/gofiber/fiber/v2"
)

// render fills in the data every page shares and renders name inside the main layout.
func render(c *fiber.Ctx, status int, name, title string, data fiber.Map) error {
	p := middleware.Preferences(c)

	if data == nil {
		data = fiber.Map{}
	}
	data["prefs"] = p
	data["title"] = title
	data["from"] = c.OriginalURL()
	data["otherLocale"] = otherLocale(p.Locale)

	return c.Status(status).Render(name, data)
}

func otherLocale(l i18n.Locale) i18n.Locale {
	if l == i18n.Japanese {
		return i18n.English
	}
	return i18n.Japanese
}

func isAPI(c *fiber.Ctx) bool {
	path := c.Path()
	return path == "/api" || strings.HasPrefix(path, "/api/")
}

// safeRedirect keeps redirects on this site.
func safeRedirect(from string) string {
	if from == "" || !strings.HasPrefix(from, "/") || strings.HasPrefix(from, "//") || strings.Contains(from, "\\") {
		return "/"
	}
	return from
}
