// Package admin exposes the back office update utility endpoints. They are
// deliberately unauthenticated, matching the deployment where the utility
// runs on an operator-only network.
package admin

import (
	"math"

	"github.com/gibraltarbank/gibraltar/pkg/domain"
	"github.com/gibraltarbank/gibraltar/pkg/dto"
	"github.com/gibraltarbank/gibraltar/pkg/money"
	adminsvc "github.com/gibraltarbank/gibraltar/pkg/service/admin"
	"github.com/gibraltarbank/gibraltar/webapi/common"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// BalanceInput sets a new account balance, in dollars.
type BalanceInput struct {
	Balance float64 `json:"balance"`
}

// StatusInput sets a new transaction status.
type StatusInput struct {
	Status string `json:"status" validate:"required"`
}

// Routes registers the update utility endpoints.
func Routes(app *fiber.App, adminSvc *adminsvc.Service) {
	app.Get("/admin/update-utility/profiles", SearchProfiles(adminSvc))
	app.Get("/admin/update-utility/users/:id", UserDetail(adminSvc))
	app.Put("/admin/update-utility/profiles/:id", UpdateProfile(adminSvc))
	app.Put("/admin/update-utility/accounts/:id/balance", UpdateBalance(adminSvc))
	app.Put("/admin/update-utility/transactions/:id/status", UpdateTransactionStatus(adminSvc))
}

// SearchProfiles matches profiles by user id or email substring.
// @Summary Search profiles
// @Tags admin
// @Produce json
// @Param q query string false "User id or email substring"
// @Success 200 {object} common.Response
// @Router /admin/update-utility/profiles [get]
func SearchProfiles(adminSvc *adminsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		profiles, err := adminSvc.SearchProfiles(c.Context(), c.Query("q"))
		if err != nil {
			return common.ProblemDetailsJSON(
				c, "Failed to search profiles", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Profiles", profiles)
	}
}

// UserDetail returns a client's profile, accounts and pending transactions.
// @Summary User detail
// @Tags admin
// @Produce json
// @Param id path string true "Profile ID"
// @Success 200 {object} common.Response
// @Failure 404 {object} common.ProblemDetails
// @Router /admin/update-utility/users/{id} [get]
func UserDetail(adminSvc *adminsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		profileID, err := uuid.Parse(c.Params("id"))
		if err != nil {
			return common.ProblemDetailsJSON(
				c, "Invalid profile ID", err, fiber.StatusBadRequest)
		}
		detail, err := adminSvc.Detail(c.Context(), profileID)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Failed to load user", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "User detail", detail)
	}
}

// UpdateProfile applies a partial profile edit.
// @Summary Update profile
// @Tags admin
// @Accept json
// @Produce json
// @Param id path string true "Profile ID"
// @Param request body dto.ProfileUpdate true "Fields to change"
// @Success 200 {object} common.Response
// @Failure 400 {object} common.ProblemDetails
// @Failure 404 {object} common.ProblemDetails
// @Router /admin/update-utility/profiles/{id} [put]
func UpdateProfile(adminSvc *adminsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		profileID, err := uuid.Parse(c.Params("id"))
		if err != nil {
			return common.ProblemDetailsJSON(
				c, "Invalid profile ID", err, fiber.StatusBadRequest)
		}
		input, err := common.BindAndValidate[dto.ProfileUpdate](c)
		if input == nil {
			return err
		}
		profile, err := adminSvc.UpdateProfile(c.Context(), profileID, input)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Failed to update profile", err)
		}
		return common.SuccessResponseJSON(
			c, fiber.StatusOK, "Profile updated", profile)
	}
}

// UpdateBalance sets an account balance outright.
// @Summary Update balance
// @Tags admin
// @Accept json
// @Produce json
// @Param id path string true "Account ID"
// @Param request body BalanceInput true "New balance in dollars"
// @Success 200 {object} common.Response
// @Failure 400 {object} common.ProblemDetails
// @Failure 404 {object} common.ProblemDetails
// @Router /admin/update-utility/accounts/{id}/balance [put]
func UpdateBalance(adminSvc *adminsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		accountID, err := uuid.Parse(c.Params("id"))
		if err != nil {
			return common.ProblemDetailsJSON(
				c, "Invalid account ID", err, fiber.StatusBadRequest)
		}
		input, err := common.BindAndValidate[BalanceInput](c)
		if input == nil {
			return err
		}
		// Zero is a legal balance here, so this rounds instead of going
		// through the strictly-positive amount parser.
		balance := money.Amount(math.Round(input.Balance * 100))
		acct, err := adminSvc.UpdateBalance(c.Context(), accountID, balance)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Failed to update balance", err)
		}
		return common.SuccessResponseJSON(
			c, fiber.StatusOK, "Balance updated", acct)
	}
}

// UpdateTransactionStatus sets a transaction's status, crediting the
// account when a check deposit completes.
// @Summary Update transaction status
// @Tags admin
// @Accept json
// @Produce json
// @Param id path string true "Transaction ID"
// @Param request body StatusInput true "New status"
// @Success 200 {object} common.Response
// @Failure 400 {object} common.ProblemDetails
// @Failure 404 {object} common.ProblemDetails
// @Router /admin/update-utility/transactions/{id}/status [put]
func UpdateTransactionStatus(adminSvc *adminsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		transactionID, err := uuid.Parse(c.Params("id"))
		if err != nil {
			return common.ProblemDetailsJSON(
				c, "Invalid transaction ID", err, fiber.StatusBadRequest)
		}
		input, err := common.BindAndValidate[StatusInput](c)
		if input == nil {
			return err
		}
		txn, err := adminSvc.UpdateTransactionStatus(
			c.Context(), transactionID,
			domain.TransactionStatus(input.Status))
		if err != nil {
			return common.ProblemDetailsJSON(c, "Failed to update status", err)
		}
		return common.SuccessResponseJSON(
			c, fiber.StatusOK, "Status updated", txn)
	}
}
