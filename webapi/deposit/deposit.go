// Package deposit exposes the mobile check deposit endpoints.
package deposit

import (
	"io"
	"mime/multipart"

	"github.com/gibraltarbank/gibraltar/pkg/config"
	"github.com/gibraltarbank/gibraltar/pkg/middleware"
	depositsvc "github.com/gibraltarbank/gibraltar/pkg/service/deposit"
	"github.com/gibraltarbank/gibraltar/webapi/common"
	"github.com/gofiber/fiber/v2"
)

// Routes registers the deposit endpoints.
func Routes(
	app *fiber.App,
	depositSvc *depositsvc.Service,
	cfg *config.App,
) {
	protected := middleware.JwtProtected(cfg.Auth.Jwt)
	app.Post("/dashboard/deposits", protected, Submit(depositSvc))
	app.Get("/dashboard/deposits", protected, List(depositSvc))
}

// Submit accepts a multipart deposit: amount, account_id, and both check
// images.
// @Summary Submit check deposit
// @Tags deposits
// @Accept multipart/form-data
// @Produce json
// @Param amount formData string true "Deposit amount"
// @Param account_id formData string true "Target account ID"
// @Param front_image formData file true "Front of check"
// @Param back_image formData file true "Back of check"
// @Success 201 {object} common.Response
// @Failure 400 {object} common.ProblemDetails
// @Failure 401 {object} common.ProblemDetails
// @Failure 404 {object} common.ProblemDetails
// @Router /dashboard/deposits [post]
// @Security Bearer
func Submit(depositSvc *depositsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := common.CurrentUserID(c)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Unauthorized", err)
		}

		input := &depositsvc.Input{
			AccountID: c.FormValue("account_id"),
			Amount:    c.FormValue("amount"),
		}
		if front, err := c.FormFile("front_image"); err == nil {
			if input.FrontImage, err = readImage(front); err != nil {
				return common.ProblemDetailsJSON(
					c, "Failed to read front image", err,
					fiber.StatusBadRequest)
			}
		}
		if back, err := c.FormFile("back_image"); err == nil {
			if input.BackImage, err = readImage(back); err != nil {
				return common.ProblemDetailsJSON(
					c, "Failed to read back image", err,
					fiber.StatusBadRequest)
			}
		}

		result, fieldErrs, err := depositSvc.Submit(c.Context(), userID, input)
		if err != nil {
			return common.ProblemDetailsJSON(
				c, "Failed to submit deposit", err)
		}
		if len(fieldErrs) > 0 {
			return common.ProblemDetailsJSON(
				c, "Validation failed", nil, fieldErrs,
				fiber.StatusBadRequest)
		}
		return common.SuccessResponseJSON(
			c, fiber.StatusCreated, "Deposit submitted", result)
	}
}

// List returns the client's deposit history.
// @Summary List deposits
// @Tags deposits
// @Produce json
// @Success 200 {object} common.Response
// @Failure 401 {object} common.ProblemDetails
// @Router /dashboard/deposits [get]
// @Security Bearer
func List(depositSvc *depositsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := common.CurrentUserID(c)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Unauthorized", err)
		}
		deposits, err := depositSvc.Deposits(c.Context(), userID)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Failed to load deposits", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Deposits", deposits)
	}
}

func readImage(header *multipart.FileHeader) (*depositsvc.CheckImage, error) {
	f, err := header.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close() //nolint:errcheck
	content, err := io.ReadAll(f)
	if err != nil {
		return nil, err
	}
	return &depositsvc.CheckImage{
		Filename: header.Filename,
		Content:  content,
	}, nil
}
