package handler

import (
	"errors"

	"github.com/WitAqua/website/internal/catalog"
	"github.com/WitAqua/website/internal/i18n"
	"github.com/WitAqua/website/internal/middleware"
	"github.com/WitAqua/website/internal/model"
	"github.com/WitAqua/website/internal/pkg/errs"
	"github.com/WitAqua/website/internal/pkg/validator"
	"github.com/WitAqua/website/internal/view"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type PageHandler struct {
	logger    *zap.Logger
	devices   DeviceSource
	changelog ChangelogSource
}

func NewPageHandler(logger *zap.Logger, devices DeviceSource, changelog ChangelogSource) *PageHandler {
	return &PageHandler{
		logger:    logger,
		devices:   devices,
		changelog: changelog,
	}
}

func (h *PageHandler) Register(r fiber.Router) {
	for _, prefix := range []string{"", i18n.PathPrefix} {
		g := r.Group(prefix)
		g.Get("/", h.Home)
		g.Get("/about", h.About)
		g.Get("/devices", h.Devices)
		g.Get("/devices/:codename/changelog", h.Changelog)
		g.Get("/devices/:codename", h.Device)
	}
}

func (h *PageHandler) Home(c *fiber.Ctx) error {
	return render(c, fiber.StatusOK, view.PageHome, "", fiber.Map{
		"highlights": view.Highlights,
	})
}

func (h *PageHandler) About(c *fiber.Ctx) error {
	p := middleware.Preferences(c)
	return render(c, fiber.StatusOK, view.PageAbout, p.T(i18n.NavAbout), fiber.Map{
		"team": view.Team,
	})
}

func (h *PageHandler) Devices(c *fiber.Ctx) error {
	var req model.DeviceListRequest
	if err := validator.ValidateRequest(c, &req); err != nil {
		return err
	}

	p := middleware.Preferences(c)
	title := p.T(i18n.NavDevices)

	devices, err := h.devices.Fetch(c.UserContext())
	if err != nil {
		// the list page reports feed failures inline
		return render(c, fiber.StatusBadGateway, view.PageDevices, title, fiber.Map{
			"query": req.Query,
			"error": true,
		})
	}

	return render(c, fiber.StatusOK, view.PageDevices, title, fiber.Map{
		"query":  req.Query,
		"groups": catalog.GroupByBrand(catalog.Filter(devices, req.Query), req.Query),
	})
}

func (h *PageHandler) Device(c *fiber.Ctx) error {
	d, err := h.findDevice(c)
	if err != nil {
		return err
	}
	return render(c, fiber.StatusOK, view.PageDevice, d.Name, fiber.Map{
		"device": d,
	})
}

// Changelog serves the changelog as plain text, the content of the detail page's changelog link.
// Changelog feed failures are text with status 200; without device data there is no device to
// name, so that case answers 502.
func (h *PageHandler) Changelog(c *fiber.Ctx) error {
	d, err := h.findDevice(c)
	if err != nil {
		if !errors.Is(err, errs.ErrFetchDeviceData) {
			return err
		}
		p := middleware.Preferences(c)
		return c.Status(fiber.StatusBadGateway).SendString(p.T(i18n.DeviceDataFailed))
	}

	data := changelogText(c.UserContext(), h.logger, h.changelog, middleware.Preferences(c), d)
	return c.SendString(data.Text)
}

// findDevice reports a malformed codename as an unknown device, pages have no use for the
// validation details.
func (h *PageHandler) findDevice(c *fiber.Ctx) (catalog.Device, error) {
	d, err := findDevice(c, h.devices)
	if errors.Is(err, errs.ErrInvalidParams) {
		return d, errs.ErrDeviceNotFound.Wrap(err)
	}
	return d, err
}
