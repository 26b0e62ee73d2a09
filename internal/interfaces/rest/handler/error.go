package handler

import (
	"errors"

	"github.com/WitAqua/website/internal/i18n"
	"github.com/WitAqua/website/internal/middleware"
	"github.com/WitAqua/website/internal/pkg/errs"
	"github.com/WitAqua/website/internal/pkg/restserver/response"
	"github.com/WitAqua/website/internal/view"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Error answers /api routes with the JSON envelope and every other route with an error page.
func Error(c *fiber.Ctx, err error) error {
	if err == nil {
		return nil
	}
	if isAPI(c) {
		return apiError(c, err)
	}
	if renderErr := pageError(c, err); renderErr != nil {
		zap.L().Error("failed to render error page",
			zap.Error(renderErr),
			zap.String("path", c.Path()),
			zap.String("requestId", middleware.RequestID(c)),
		)
		return c.Status(fiber.StatusInternalServerError).SendString(fiber.ErrInternalServerError.Message)
	}
	return nil
}

func apiError(c *fiber.Ctx, err error) error {

	switch e := err.(type) {

	case *fiber.Error:
		return c.Status(e.Code).JSON(response.BusinessError(e.Message, nil))

	case *errs.Error:
		resp := response.BusinessError(
			e.Message(),
			e.Details(),
		).With(e.BizCode())
		return c.Status(e.HTTPCode()).JSON(resp)

	default:
		logUnexpected(c, err)
		resp := response.UnexpectedError()
		return c.Status(fiber.StatusInternalServerError).JSON(resp)
	}
}

func pageError(c *fiber.Ctx, err error) error {
	p := middleware.Preferences(c)

	var fe *fiber.Error
	if errors.As(err, &fe) {
		if fe.Code == fiber.StatusNotFound {
			return render(c, fe.Code, view.PageNotFound, p.T(i18n.PageNotFound), fiber.Map{
				"message": p.T(i18n.PageNotFound),
			})
		}
		return render(c, fe.Code, view.PageError, fe.Message, fiber.Map{
			"message": fe.Message,
		})
	}

	var e *errs.Error
	if !errors.As(err, &e) {
		logUnexpected(c, err)
		return render(c, fiber.StatusInternalServerError, view.PageError, p.T(i18n.Error), fiber.Map{
			"message": p.T(i18n.FailedToLoad),
		})
	}

	switch {
	case errors.Is(e, errs.ErrDeviceNotFound):
		return render(c, fiber.StatusNotFound, view.PageNotFound, p.T(i18n.DeviceNotFound), fiber.Map{
			"message": p.T(i18n.DeviceNotFound),
		})
	case errors.Is(e, errs.ErrFetchDeviceData):
		return render(c, e.HTTPCode(), view.PageError, p.T(i18n.Error), fiber.Map{
			"message": p.T(i18n.FailedToLoad),
		})
	default:
		return render(c, e.HTTPCode(), view.PageError, p.T(i18n.Error), fiber.Map{
			"message": e.Message(),
		})
	}
}

func logUnexpected(c *fiber.Ctx, err error) {
	zap.L().Error("unexpected error",
		zap.Error(err),
		zap.String("method", c.Method()),
		zap.String("path", c.Path()),
		zap.String("requestId", middleware.RequestID(c)),
	)
}
