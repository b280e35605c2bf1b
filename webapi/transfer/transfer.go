// Package transfer exposes the two-step transfer endpoints.
package transfer

import (
	"github.com/gibraltarbank/gibraltar/pkg/config"
	"github.com/gibraltarbank/gibraltar/pkg/middleware"
	transfersvc "github.com/gibraltarbank/gibraltar/pkg/service/transfer"
	"github.com/gibraltarbank/gibraltar/webapi/common"
	"github.com/gofiber/fiber/v2"
)

// Routes registers the transfer endpoints.
func Routes(
	app *fiber.App,
	transferSvc *transfersvc.Service,
	cfg *config.App,
) {
	protected := middleware.JwtProtected(cfg.Auth.Jwt)
	app.Post("/dashboard/transfers/preview", protected, Preview(transferSvc))
	app.Post("/dashboard/transfers", protected, Submit(transferSvc))
}

// Preview validates the transfer and returns the confirmation recap.
// @Summary Preview transfer
// @Tags transfers
// @Accept json
// @Produce json
// @Param request body transfersvc.Input true "Transfer details"
// @Success 200 {object} common.Response
// @Failure 400 {object} common.ProblemDetails
// @Failure 401 {object} common.ProblemDetails
// @Failure 404 {object} common.ProblemDetails
// @Router /dashboard/transfers/preview [post]
// @Security Bearer
func Preview(transferSvc *transfersvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := common.CurrentUserID(c)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Unauthorized", err)
		}
		input, err := common.BindAndValidate[transfersvc.Input](c)
		if input == nil {
			return err
		}
		preview, fieldErrs, err := transferSvc.PreviewTransfer(
			c.Context(), userID, input)
		if err != nil {
			return common.ProblemDetailsJSON(
				c, "Failed to preview transfer", err)
		}
		if len(fieldErrs) > 0 {
			return common.ProblemDetailsJSON(
				c, "Validation failed", nil, fieldErrs,
				fiber.StatusBadRequest)
		}
		return common.SuccessResponseJSON(
			c, fiber.StatusOK, "Transfer preview", preview)
	}
}

// Submit records a confirmed transfer.
// @Summary Submit transfer
// @Tags transfers
// @Accept json
// @Produce json
// @Param request body transfersvc.Input true "Transfer details"
// @Success 201 {object} common.Response
// @Failure 400 {object} common.ProblemDetails
// @Failure 401 {object} common.ProblemDetails
// @Failure 404 {object} common.ProblemDetails
// @Failure 422 {object} common.ProblemDetails
// @Router /dashboard/transfers [post]
// @Security Bearer
func Submit(transferSvc *transfersvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := common.CurrentUserID(c)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Unauthorized", err)
		}
		input, err := common.BindAndValidate[transfersvc.Input](c)
		if input == nil {
			return err
		}
		result, fieldErrs, err := transferSvc.Submit(c.Context(), userID, input)
		if err != nil {
			return common.ProblemDetailsJSON(
				c, "Failed to submit transfer", err)
		}
		if len(fieldErrs) > 0 {
			return common.ProblemDetailsJSON(
				c, "Validation failed", nil, fieldErrs,
				fiber.StatusBadRequest)
		}
		return common.SuccessResponseJSON(
			c, fiber.StatusCreated, "Transfer submitted", result)
	}
}
