// Package webapi provides HTTP handlers and API endpoints for the client
// web application. It is organized into sub-packages for different domains:
// - auth: Enrollment and login endpoints
// - profile: Client profile endpoint
// - account: Accounts, transactions and statement endpoints
// - transfer: Two-step transfer endpoints
// - deposit: Mobile check deposit endpoints
// - support: Support chat endpoints
// - admin: Back office update utility endpoints
package webapi

import (
	"errors"
	"strings"

	"github.com/gibraltarbank/gibraltar/pkg/app"
	accountweb "github.com/gibraltarbank/gibraltar/webapi/account"
	adminweb "github.com/gibraltarbank/gibraltar/webapi/admin"
	authweb "github.com/gibraltarbank/gibraltar/webapi/auth"
	"github.com/gibraltarbank/gibraltar/webapi/common"
	depositweb "github.com/gibraltarbank/gibraltar/webapi/deposit"
	profileweb "github.com/gibraltarbank/gibraltar/webapi/profile"
	supportweb "github.com/gibraltarbank/gibraltar/webapi/support"
	transferweb "github.com/gibraltarbank/gibraltar/webapi/transfer"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/gofiber/swagger"
)

// SetupApp initializes Fiber with custom configuration.
func SetupApp(app *app.App) *fiber.App {
	fiberApp := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			return common.ProblemDetailsJSON(c, "Internal Server Error", err)
		},
	})
	fiberApp.Get("/swagger/*", swagger.New(swagger.Config{
		TryItOutEnabled:      true,
		WithCredentials:      true,
		PersistAuthorization: true,
		OAuth2RedirectUrl:    "/auth/login",
	}))

	// Configure rate limiting middleware
	// Uses X-Forwarded-For header when behind a proxy
	// Falls back to X-Real-IP or direct IP if needed
	fiberApp.Use(limiter.New(limiter.Config{
		Max:        app.Config.RateLimit.MaxRequests,
		Expiration: app.Config.RateLimit.Window,
		KeyGenerator: func(c *fiber.Ctx) string {
			if forwardedFor := c.Get("X-Forwarded-For"); forwardedFor != "" {
				if commaIndex := strings.Index(forwardedFor, ","); commaIndex != -1 {
					return strings.TrimSpace(forwardedFor[:commaIndex])
				}
				return strings.TrimSpace(forwardedFor)
			}
			if realIP := c.Get("X-Real-IP"); realIP != "" {
				return realIP
			}
			return c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			return common.ProblemDetailsJSON(
				c,
				"Too Many Requests",
				errors.New("rate limit exceeded"),
				fiber.StatusTooManyRequests,
			)
		},
	}))
	fiberApp.Use(recover.New())
	fiberApp.Use(logger.New())

	// Health check endpoint
	fiberApp.Get(
		"/",
		func(c *fiber.Ctx) error {
			return c.SendString("Gibraltar Private Bank & Trust API is running")
		},
	)

	authweb.Routes(fiberApp, app.AuthService)
	profileweb.Routes(fiberApp, app.AccountService, app.Config)
	accountweb.Routes(
		fiberApp, app.AccountService, app.StatementService, app.Config)
	transferweb.Routes(fiberApp, app.TransferService, app.Config)
	depositweb.Routes(fiberApp, app.DepositService, app.Config)
	supportweb.Routes(fiberApp, app.SupportService, app.Config)
	adminweb.Routes(fiberApp, app.AdminService)
	return fiberApp
}
