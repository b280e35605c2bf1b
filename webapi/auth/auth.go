// Package auth exposes the enrollment and login endpoints.
package auth

import (
	"errors"

	"github.com/gibraltarbank/gibraltar/pkg/domain"
	authsvc "github.com/gibraltarbank/gibraltar/pkg/service/auth"
	"github.com/gibraltarbank/gibraltar/webapi/common"
	"github.com/gofiber/fiber/v2"
)

// LoginInput carries the three login factors.
type LoginInput struct {
	Email      string `json:"email" validate:"required,email"`
	Password   string `json:"password" validate:"required"`
	AccessCode string `json:"access_code" validate:"required"`
}

// Routes registers the auth endpoints.
func Routes(app *fiber.App, authSvc *authsvc.Service) {
	app.Post("/auth/signup", Signup(authSvc))
	app.Post("/auth/login", Login(authSvc))
	app.Post("/auth/logout", Logout())
}

// Signup enrolls a new client and returns the one-time access code.
// @Summary Client enrollment
// @Description Create a login identity, profile and first checking account
// @Tags auth
// @Accept json
// @Produce json
// @Param request body authsvc.SignupInput true "Enrollment details"
// @Success 201 {object} common.Response
// @Failure 400 {object} common.ProblemDetails
// @Failure 409 {object} common.ProblemDetails
// @Failure 500 {object} common.ProblemDetails
// @Router /auth/signup [post]
func Signup(authSvc *authsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, err := common.BindAndValidate[authsvc.SignupInput](c)
		if input == nil {
			return err
		}
		result, err := authSvc.Signup(c.Context(), input)
		if err != nil {
			if errors.Is(err, domain.ErrUserExists) {
				return common.ProblemDetailsJSON(
					c, "Email already registered", err)
			}
			return common.ProblemDetailsJSON(c, "Internal Server Error", err)
		}
		return common.SuccessResponseJSON(
			c, fiber.StatusCreated, "Enrollment complete", result)
	}
}

// Login authenticates a client and returns a JWT token.
// @Summary Client login
// @Description Authenticate with email, password and access code
// @Tags auth
// @Accept json
// @Produce json
// @Param request body LoginInput true "Login credentials"
// @Success 200 {object} common.Response
// @Failure 400 {object} common.ProblemDetails
// @Failure 401 {object} common.ProblemDetails
// @Failure 429 {object} common.ProblemDetails
// @Failure 500 {object} common.ProblemDetails
// @Router /auth/login [post]
func Login(authSvc *authsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, err := common.BindAndValidate[LoginInput](c)
		if input == nil {
			return err
		}
		user, err := authSvc.Login(
			c.Context(), input.Email, input.Password, input.AccessCode)
		if err != nil {
			if errors.Is(err, domain.ErrUserUnauthorized) {
				return common.ProblemDetailsJSON(
					c, "Invalid credentials or access code", nil,
					"Invalid credentials or access code",
					fiber.StatusUnauthorized)
			}
			return common.ProblemDetailsJSON(c, "Internal Server Error", err)
		}
		token, err := authSvc.GenerateToken(user)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Internal Server Error", err)
		}
		return common.SuccessResponseJSON(
			c, fiber.StatusOK, "Success login", fiber.Map{"token": token})
	}
}

// Logout acknowledges a logout. Tokens are stateless; the client discards
// its copy.
// @Summary Client logout
// @Tags auth
// @Produce json
// @Success 200 {object} common.Response
// @Router /auth/logout [post]
func Logout() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return common.SuccessResponseJSON(
			c, fiber.StatusOK, "Logged out", nil)
	}
}
