package product

import (
	"strings"

	"stock-tracker-backend/internal/auth"
	"stock-tracker-backend/internal/respond"

	"github.com/gofiber/fiber/v2"
)

type CreateProductRequest struct {
	Name string `json:"name"`
}

// POST /api/products
func CreateHandler(svc *Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body CreateProductRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}

		created, err := svc.Create(c.Context(), strings.TrimSpace(body.Name), auth.Username(c))
		if err != nil {
			return err
		}
		return respond.Created(c, created, "Product created successfully")
	}
}

// GET /api/products/:id
func GetHandler(svc *Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := c.ParamsInt("id")
		if err != nil || id <= 0 {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid product ID")
		}

		p, err := svc.Get(c.Context(), uint(id))
		if err != nil {
			return err
		}
		return respond.OK(c, p)
	}
}
