package middleware

import (
	"strconv"

	"naplan-prep/internal/domain"
	"naplan-prep/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// Locals keys written by the validation middleware.
const (
	ValidatedYearKey = "validated_year"
	ValidatedIDKey   = "validated_id"
)

// ValidationMiddleware provides request validation middleware
type ValidationMiddleware struct {
	validator *validation.Validator
}

// NewValidationMiddleware creates a new validation middleware instance
func NewValidationMiddleware() *ValidationMiddleware {
	return &ValidationMiddleware{
		validator: validation.NewValidator(),
	}
}

// ValidateYearQuery validates the optional year query parameter and stores
// it as an int (0 when absent).
func (vm *ValidationMiddleware) ValidateYearQuery() fiber.Handler {
	return func(c *fiber.Ctx) error {
		year := 0
		if raw := c.Query("year"); raw != "" {
			parsed, err := strconv.Atoi(raw)
			if err != nil {
				return domain.ValidationErrors{domain.NewInvalidFormatError("year", raw)}
			}
			year = parsed
		}

		if errors := vm.validator.ValidateYearLevel("year", year); len(errors) > 0 {
			return errors // This will be handled by ErrorHandler middleware
		}

		c.Locals(ValidatedYearKey, year)
		return c.Next()
	}
}

// ValidateIDParam validates the named path parameter.
func (vm *ValidationMiddleware) ValidateIDParam(name string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params(name)
		if errors := vm.validator.ValidateID(name, id); len(errors) > 0 {
			return errors
		}
		c.Locals(ValidatedIDKey, id)
		return c.Next()
	}
}
