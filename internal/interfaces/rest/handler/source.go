package handler

import (
	"context"

	"github.com/WitAqua/website/internal/catalog"
	"github.com/WitAqua/website/internal/model"
	"github.com/WitAqua/website/internal/pkg/errs"
	"github.com/WitAqua/website/internal/pkg/validator"
	"github.com/gofiber/fiber/v2"
)

// DeviceSource rebuilds the device catalog, once per call.
type DeviceSource interface {
	Fetch(ctx context.Context) ([]catalog.Device, error)
}

type ChangelogSource interface {
	ForDevice(ctx context.Context, d catalog.Device) (string, error)
}

// findDevice looks up the :codename route param in a freshly built catalog.
func findDevice(c *fiber.Ctx, devices DeviceSource) (catalog.Device, error) {
	var req model.DeviceRequest
	if err := validator.ValidateRequest(c, &req); err != nil {
		return catalog.Device{}, err
	}

	list, err := devices.Fetch(c.UserContext())
	if err != nil {
		return catalog.Device{}, err
	}

	d, ok := catalog.FindByCodename(list, req.Codename)
	if !ok {
		return catalog.Device{}, errs.ErrDeviceNotFound.WithDetails(fiber.Map{
			"codename": req.Codename,
		})
	}
	return d, nil
}
