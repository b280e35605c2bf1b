// Package account exposes the dashboard account, transaction and statement
// endpoints.
package account

import (
	"fmt"
	"time"

	"github.com/gibraltarbank/gibraltar/pkg/config"
	"github.com/gibraltarbank/gibraltar/pkg/middleware"
	accountsvc "github.com/gibraltarbank/gibraltar/pkg/service/account"
	statementsvc "github.com/gibraltarbank/gibraltar/pkg/service/statement"
	"github.com/gibraltarbank/gibraltar/webapi/common"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// Routes registers the dashboard endpoints.
func Routes(
	app *fiber.App,
	accountSvc *accountsvc.Service,
	statementSvc *statementsvc.Service,
	cfg *config.App,
) {
	protected := middleware.JwtProtected(cfg.Auth.Jwt)
	app.Get("/dashboard/accounts", protected, GetAccounts(accountSvc))
	app.Get("/dashboard/accounts/:id", protected, GetAccount(accountSvc))
	app.Get("/dashboard/transactions", protected, GetTransactions(accountSvc))
	app.Get("/dashboard/transactions/:id", protected, GetTransaction(accountSvc))
	app.Get("/dashboard/statement", protected, DownloadStatement(statementSvc))
}

// GetAccounts lists the client's accounts with masked numbers and the
// aggregate balance.
// @Summary List accounts
// @Tags dashboard
// @Produce json
// @Success 200 {object} common.Response
// @Failure 401 {object} common.ProblemDetails
// @Router /dashboard/accounts [get]
// @Security Bearer
func GetAccounts(accountSvc *accountsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := common.CurrentUserID(c)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Unauthorized", err)
		}
		accounts, err := accountSvc.Accounts(c.Context(), userID)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Failed to load accounts", err)
		}
		total, err := accountSvc.TotalBalance(c.Context(), userID)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Failed to load accounts", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Accounts", fiber.Map{
			"accounts":      accounts,
			"total_balance": float64(total) / 100,
		})
	}
}

// GetAccount returns one account owned by the client.
// @Summary Get account
// @Tags dashboard
// @Produce json
// @Param id path string true "Account ID"
// @Success 200 {object} common.Response
// @Failure 401 {object} common.ProblemDetails
// @Failure 404 {object} common.ProblemDetails
// @Router /dashboard/accounts/{id} [get]
// @Security Bearer
func GetAccount(accountSvc *accountsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := common.CurrentUserID(c)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Unauthorized", err)
		}
		accountID, err := uuid.Parse(c.Params("id"))
		if err != nil {
			return common.ProblemDetailsJSON(
				c, "Invalid account ID", err, fiber.StatusBadRequest)
		}
		a, err := accountSvc.Account(c.Context(), userID, accountID)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Failed to load account", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Account", a)
	}
}

// GetTransactions returns one page of the client's history.
// @Summary List transactions
// @Tags dashboard
// @Produce json
// @Param page query int false "Page number, starting at 1"
// @Success 200 {object} common.Response
// @Failure 401 {object} common.ProblemDetails
// @Router /dashboard/transactions [get]
// @Security Bearer
func GetTransactions(accountSvc *accountsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := common.CurrentUserID(c)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Unauthorized", err)
		}
		page := c.QueryInt("page", 1)
		result, err := accountSvc.Transactions(c.Context(), userID, page)
		if err != nil {
			return common.ProblemDetailsJSON(
				c, "Failed to load transactions", err)
		}
		return common.SuccessResponseJSON(
			c, fiber.StatusOK, "Transactions", result)
	}
}

// GetTransaction returns one ledger entry owned by the client.
// @Summary Get transaction
// @Tags dashboard
// @Produce json
// @Param id path string true "Transaction ID"
// @Success 200 {object} common.Response
// @Failure 401 {object} common.ProblemDetails
// @Failure 404 {object} common.ProblemDetails
// @Router /dashboard/transactions/{id} [get]
// @Security Bearer
func GetTransaction(accountSvc *accountsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := common.CurrentUserID(c)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Unauthorized", err)
		}
		transactionID, err := uuid.Parse(c.Params("id"))
		if err != nil {
			return common.ProblemDetailsJSON(
				c, "Invalid transaction ID", err, fiber.StatusBadRequest)
		}
		t, err := accountSvc.Transaction(c.Context(), userID, transactionID)
		if err != nil {
			return common.ProblemDetailsJSON(
				c, "Failed to load transaction", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Transaction", t)
	}
}

// DownloadStatement streams the transaction history PDF.
// @Summary Download statement
// @Tags dashboard
// @Produce application/pdf
// @Success 200 {file} binary
// @Failure 401 {object} common.ProblemDetails
// @Router /dashboard/statement [get]
// @Security Bearer
func DownloadStatement(statementSvc *statementsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := common.CurrentUserID(c)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Unauthorized", err)
		}
		pdf, err := statementSvc.Render(c.Context(), userID)
		if err != nil {
			return common.ProblemDetailsJSON(
				c, "Failed to render statement", err)
		}
		c.Set(fiber.HeaderContentType, "application/pdf")
		c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(
			"attachment; filename=%q", statementsvc.Filename(time.Now())))
		return c.Send(pdf)
	}
}
