package handler

import (
	"github.com/WitAqua/website/internal/catalog"
	"github.com/WitAqua/website/internal/middleware"
	"github.com/WitAqua/website/internal/model"
	"github.com/WitAqua/website/internal/pkg/restserver/response"
	"github.com/WitAqua/website/internal/pkg/validator"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type DeviceHandler struct {
	logger    *zap.Logger
	devices   DeviceSource
	changelog ChangelogSource
}

func NewDeviceHandler(logger *zap.Logger, devices DeviceSource, changelog ChangelogSource) *DeviceHandler {
	return &DeviceHandler{
		logger:    logger,
		devices:   devices,
		changelog: changelog,
	}
}

func (h *DeviceHandler) Register(r fiber.Router) {
	api := r.Group("/api")
	api.Get("/devices", h.List)
	api.Get("/devices/:codename", h.Get)
	api.Get("/devices/:codename/changelog", h.Changelog)
}

func (h *DeviceHandler) List(c *fiber.Ctx) error {
	var req model.DeviceListRequest
	if err := validator.ValidateRequest(c, &req); err != nil {
		return err
	}

	devices, err := h.devices.Fetch(c.UserContext())
	if err != nil {
		return err
	}

	list := catalog.Filter(devices, req.Query)
	return c.JSON(response.Success(model.DeviceListResponseData{
		List:  list,
		Total: len(list),
		Query: req.Query,
	}))
}

func (h *DeviceHandler) Get(c *fiber.Ctx) error {
	d, err := findDevice(c, h.devices)
	if err != nil {
		return err
	}
	return c.JSON(response.Success(d))
}

func (h *DeviceHandler) Changelog(c *fiber.Ctx) error {
	d, err := findDevice(c, h.devices)
	if err != nil {
		return err
	}

	data := changelogText(c.UserContext(), h.logger, h.changelog, middleware.Preferences(c), d)
	return c.JSON(response.Success(data))
}
