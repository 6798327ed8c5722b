package handler

import (
	"naplan-prep/internal/domain"
	"naplan-prep/internal/validation"

	"github.com/gofiber/fiber/v2"
)

var requestValidator = validation.NewValidator()

// parseBody decodes the JSON body into req and validates its tags.
func parseBody(c *fiber.Ctx, req interface{}) error {
	if err := c.BodyParser(req); err != nil {
		return domain.ValidationErrors{domain.NewInvalidFormatError("body", nil)}
	}
	if errs := requestValidator.Struct(req); len(errs) > 0 {
		return errs
	}
	return nil
}
