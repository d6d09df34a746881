// Package handlers wires the storefront services to Fiber routes.
// Error bodies are a single {"error": message} object; the status code
// comes from the apperrors taxonomy.
package handlers

import (
	"errors"

	"dailydose/internal/apperrors"

	"github.com/gofiber/fiber/v2"
)

func errorStatus(err error) int {
	switch {
	case errors.Is(err, apperrors.ErrNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, apperrors.ErrValidation):
		return fiber.StatusBadRequest
	case errors.Is(err, apperrors.ErrDuplicate):
		return fiber.StatusBadRequest
	default:
		return fiber.StatusInternalServerError
	}
}

// jsonError writes the error as a JSON body with the mapped status.
func jsonError(c *fiber.Ctx, err error) error {
	return c.Status(errorStatus(err)).JSON(fiber.Map{
		"error": err.Error(),
	})
}

// paramID parses the :id route parameter as an unsigned integer.
// A malformed or non-positive id can never name a row, so it reads as
// a missing resource rather than a bad request.
func paramID(c *fiber.Ctx) (uint, error) {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return 0, apperrors.NotFoundf("no resource with id %q", c.Params("id"))
	}
	return uint(id), nil
}
