package http

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/KarenButarello/CRUD-Hotel/internal/domain"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// respondError translates the domain error taxonomy into HTTP status codes:
// NotFound → 404, business-rule violations → 400, anything else → 500 with a
// generic message that never leaks internals.
func respondError(c *fiber.Ctx, err error) error {
	switch {
	case domain.IsNotFound(err):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message": err.Error(),
		})
	case domain.IsValidation(err), domain.IsUnavailable(err), domain.IsDuplicate(err):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": err.Error(),
		})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "internal server error",
		})
	}
}

// respondBadRequest reports a malformed request body or parameter.
func respondBadRequest(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"message": message,
	})
}

// urlParam reads a path parameter, decoding any percent escapes (guest names
// may contain spaces).
func urlParam(c *fiber.Ctx, name string) (string, error) {
	raw := c.Params(name)
	decoded, err := url.PathUnescape(raw)
	if err != nil {
		return "", err
	}
	return decoded, nil
}

// validateRequest runs struct validation and flattens the failures into one
// message.
func validateRequest(req any) error {
	err := validate.Struct(req)
	if err == nil {
		return nil
	}

	var failures validator.ValidationErrors
	if !errors.As(err, &failures) {
		return domain.Validation("invalid request")
	}

	fields := make([]string, 0, len(failures))
	for _, failure := range failures {
		fields = append(fields, fmt.Sprintf("%s is missing or invalid", failure.Field()))
	}
	return domain.Validation("%s", strings.Join(fields, "; "))
}
