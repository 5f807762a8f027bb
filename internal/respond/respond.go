// Package respond implements the JSON envelope every endpoint answers with
// and the central fiber error handler that maps apperror kinds to statuses.
package respond

import (
	"log"

	"stock-tracker-backend/internal/apperror"

	"github.com/gofiber/fiber/v2"
)

type Envelope struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
	Message string `json:"message,omitempty"`
}

func OK(c *fiber.Ctx, data any) error {
	return c.JSON(Envelope{Success: true, Data: data})
}

func OKMessage(c *fiber.Ctx, data any, message string) error {
	return c.JSON(Envelope{Success: true, Data: data, Message: message})
}

func Created(c *fiber.Ctx, data any, message string) error {
	return c.Status(fiber.StatusCreated).JSON(Envelope{Success: true, Data: data, Message: message})
}

// ErrorHandler is installed in fiber.Config. Service errors arrive tagged
// with a Kind; store causes are logged here and replaced by the generic
// message so raw database errors never leak to the client.
func ErrorHandler(c *fiber.Ctx, err error) error {
	if e := apperror.From(err); e != nil {
		status := fiber.StatusInternalServerError
		switch e.Kind {
		case apperror.KindValidation, apperror.KindConflict:
			status = fiber.StatusBadRequest
		case apperror.KindNotFound:
			status = fiber.StatusNotFound
		case apperror.KindStore:
			log.Printf("[ERROR] %s %s: %v", c.Method(), c.Path(), e)
		}
		return c.Status(status).JSON(Envelope{Success: false, Error: e.Message})
	}

	if e, ok := err.(*fiber.Error); ok {
		return c.Status(e.Code).JSON(Envelope{Success: false, Error: e.Message})
	}

	log.Printf("[ERROR] %s %s: unexpected: %v", c.Method(), c.Path(), err)
	return c.Status(fiber.StatusInternalServerError).JSON(Envelope{
		Success: false,
		Error:   "Internal server error",
	})
}
