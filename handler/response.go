package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"medical-barcode-api/middleware"
	"medical-barcode-api/model"
	"medical-barcode-api/render"
)

const invalidParameters = "Invalid request parameters"

func sendImage(c *fiber.Ctx, img *render.Image) error {
	middleware.ObserveGeneration(img.Format, middleware.OutcomeSuccess)

	c.Set(fiber.HeaderContentType, img.ContentType)
	c.Set(fiber.HeaderContentDisposition, img.ContentDisposition)
	return c.Status(fiber.StatusOK).Send(img.Bytes)
}

// sendError answers validation and render failures with 400. Anything else
// goes to the application error handler.
func sendError(c *fiber.Ctx, format string, err error) error {
	var (
		verr *model.ValidationError
		rerr *render.Error
	)

	switch {
	case errors.As(err, &verr):
		middleware.ObserveGeneration(format, middleware.OutcomeInvalid)
		return c.Status(fiber.StatusBadRequest).JSON(model.ErrorResponse{
			Error:  invalidParameters,
			Detail: verr.Error(),
			Errors: verr.Errors,
		})
	case errors.As(err, &rerr):
		middleware.ObserveGeneration(format, middleware.OutcomeRenderFailure)
		logrus.Warnf("%s render failed (request %v)", rerr.Format, c.Locals("requestid"))
		return c.Status(fiber.StatusBadRequest).JSON(model.ErrorResponse{
			Error:  rerr.Error(),
			Detail: rerr.Err.Error(),
		})
	default:
		return err
	}
}

// parseQuery fills out from the query string. Values that cannot be
// converted to the field type are reported as a validation failure.
func parseQuery(c *fiber.Ctx, out interface{}) error {
	if err := c.QueryParser(out); err != nil {
		return model.NewFieldError("query", "type", err.Error())
	}
	return nil
}
