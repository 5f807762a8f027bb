package auth

import (
	"strings"

	"stock-tracker-backend/internal/config"
	"stock-tracker-backend/internal/respond"

	"github.com/gofiber/fiber/v2"
)

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// POST /api/auth/login
func LoginHandler(cfg *config.Config, verifier CredentialVerifier) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body LoginRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}

		body.Username = strings.TrimSpace(body.Username)
		if body.Username == "" || body.Password == "" {
			return fiber.NewError(fiber.StatusBadRequest, "Username and password are required")
		}

		identity, ok := verifier.Verify(body.Username, body.Password)
		if !ok {
			return fiber.NewError(fiber.StatusUnauthorized, "Invalid username or password")
		}

		token, err := GenerateToken(cfg.JWTSecret, identity)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Token could not be generated")
		}

		return respond.OK(c, fiber.Map{
			"token": token,
			"user":  fiber.Map{"username": identity.Username},
		})
	}
}
