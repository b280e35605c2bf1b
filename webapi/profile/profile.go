// Package profile exposes the client profile endpoint.
package profile

import (
	"github.com/gibraltarbank/gibraltar/pkg/config"
	"github.com/gibraltarbank/gibraltar/pkg/middleware"
	accountsvc "github.com/gibraltarbank/gibraltar/pkg/service/account"
	"github.com/gibraltarbank/gibraltar/webapi/common"
	"github.com/gofiber/fiber/v2"
)

// Routes registers the profile endpoint.
func Routes(
	app *fiber.App,
	accountSvc *accountsvc.Service,
	cfg *config.App,
) {
	app.Get(
		"/dashboard/profile",
		middleware.JwtProtected(cfg.Auth.Jwt),
		GetProfile(accountSvc),
	)
}

// GetProfile returns the authenticated client's profile.
// @Summary Get profile
// @Tags dashboard
// @Produce json
// @Success 200 {object} common.Response
// @Failure 401 {object} common.ProblemDetails
// @Failure 404 {object} common.ProblemDetails
// @Router /dashboard/profile [get]
// @Security Bearer
func GetProfile(accountSvc *accountsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := common.CurrentUserID(c)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Unauthorized", err)
		}
		p, err := accountSvc.Profile(c.Context(), userID)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Failed to load profile", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Profile", p)
	}
}
