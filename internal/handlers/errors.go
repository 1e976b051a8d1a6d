package handlers

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/example/stylehub/internal/config"
)

// NewErrorHandler builds the app-wide fiber error handler. Handlers return
// errors instead of writing failure responses themselves; everything funnels
// through here and comes out as {"success": false, "message": ...}.
func NewErrorHandler(cfg *config.Config) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError
		message := "internal server error"

		var fe *fiber.Error
		switch {
		case errors.As(err, &fe):
			code = fe.Code
			message = fe.Message
		case errors.Is(err, gorm.ErrRecordNotFound):
			code = fiber.StatusNotFound
			message = "resource not found"
		case errors.Is(err, gorm.ErrDuplicatedKey):
			code = fiber.StatusBadRequest
			message = "duplicate value"
		}

		if code == fiber.StatusInternalServerError {
			log.Printf("unhandled error on %s %s: %v", c.Method(), c.Path(), err)
			if cfg.Development() {
				message = err.Error()
			}
		}

		return c.Status(code).JSON(fiber.Map{
			"success": false,
			"message": message,
		})
	}
}
