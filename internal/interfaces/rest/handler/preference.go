package handler

import (
	"time"

	"github.com/WitAqua/website/internal/i18n"
	"github.com/WitAqua/website/internal/model"
	"github.com/WitAqua/website/internal/pkg/errs"
	"github.com/WitAqua/website/internal/pkg/validator"
	"github.com/gofiber/fiber/v2"
)

const preferenceCookieAge = 365 * 24 * time.Hour

// PreferenceHandler stores the visitor's language and theme choice in cookies.
type PreferenceHandler struct {
}

func NewPreferenceHandler() *PreferenceHandler {
	return &PreferenceHandler{}
}

func (h *PreferenceHandler) Register(r fiber.Router) {
	r.Get("/lang/:locale", h.SwitchLocale)
	r.Get("/theme/:theme", h.SwitchTheme)
}

// SwitchLocale moves the visitor to the same page in the other language tree.
func (h *PreferenceHandler) SwitchLocale(c *fiber.Ctx) error {
	var req model.SwitchLocaleRequest
	if err := validator.ValidateRequest(c, &req); err != nil {
		return err
	}

	l, ok := i18n.ParseLocale(req.Locale)
	if !ok {
		return errs.ErrUnsupportedLocale.WithDetails(fiber.Map{
			"locale":    req.Locale,
			"supported": i18n.Locales,
		})
	}

	setPreferenceCookie(c, i18n.CookieName, l.String())
	return c.Redirect(i18n.SwitchPath(safeRedirect(req.From), l), fiber.StatusSeeOther)
}

func (h *PreferenceHandler) SwitchTheme(c *fiber.Ctx) error {
	var req model.SwitchThemeRequest
	if err := validator.ValidateRequest(c, &req); err != nil {
		return err
	}

	th, ok := i18n.ParseTheme(req.Theme)
	if !ok {
		return errs.ErrUnsupportedTheme.WithDetails(fiber.Map{
			"theme": req.Theme,
		})
	}

	setPreferenceCookie(c, i18n.ThemeCookieName, string(th))
	return c.Redirect(safeRedirect(req.From), fiber.StatusSeeOther)
}

func setPreferenceCookie(c *fiber.Ctx, name, value string) {
	c.Cookie(&fiber.Cookie{
		Name:     name,
		Value:    value,
		Path:     "/",
		MaxAge:   int(preferenceCookieAge.Seconds()),
		SameSite: fiber.CookieSameSiteLaxMode,
	})
}
