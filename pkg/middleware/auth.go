// Package middleware provides HTTP middleware shared across routes.
package middleware

import (
	"errors"

	jwtware "github.com/gofiber/contrib/jwt"
	"github.com/gofiber/fiber/v2"

	"github.com/gibraltarbank/gibraltar/pkg/config"
)

// JwtProtected guards a route with JWT bearer auth. The verified token is
// stored in c.Locals("user") for handlers to read the claims.
func JwtProtected(cfg *config.Jwt) fiber.Handler {
	return jwtware.New(jwtware.Config{
		SigningKey: jwtware.SigningKey{Key: []byte(cfg.Secret)},
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			status := fiber.StatusUnauthorized
			detail := "Invalid or expired JWT"
			if errors.Is(err, jwtware.ErrJWTMissingOrMalformed) {
				status = fiber.StatusBadRequest
				detail = "Missing or malformed JWT"
			}
			c.Set(fiber.HeaderContentType, "application/problem+json")
			return c.Status(status).JSON(fiber.Map{
				"type":   "about:blank",
				"title":  "Unauthorized",
				"status": status,
				"detail": detail,
			})
		},
	})
}
