// Package common carries the shared response envelope and request
// binding helpers for the HTTP handlers.
package common

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/vuelasur/booking/pkg/domain"
)

// genericMessage replaces the underlying error text when the debug
// flag is off, so internals never leak to travelers.
const genericMessage = "An error occurred processing your request"

// ErrorBody is the error envelope for every non-2xx response.
type ErrorBody struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// ErrorResponseJSON writes the error envelope. Message carries the
// underlying error text only when debug is set.
func ErrorResponseJSON(
	c *fiber.Ctx,
	status int,
	title string,
	err error,
	debug bool,
) error {
	message := genericMessage
	if debug && err != nil {
		message = err.Error()
	}
	return c.Status(status).JSON(ErrorBody{
		Error:   title,
		Message: message,
	})
}

// ErrorToStatusCode maps domain errors to HTTP status codes.
func ErrorToStatusCode(err error) int {
	switch {
	case errors.Is(err, domain.ErrInvalidRequest):
		return fiber.StatusBadRequest
	case errors.Is(err, domain.ErrNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, domain.ErrDuplicateOrderRef):
		return fiber.StatusConflict
	default:
		return fiber.StatusInternalServerError
	}
}

// ErrorToTitle returns the envelope's error field for a domain error.
func ErrorToTitle(err error) string {
	switch {
	case errors.Is(err, domain.ErrInvalidRequest):
		return "Invalid request"
	case errors.Is(err, domain.ErrNotFound):
		return "Not found"
	case errors.Is(err, domain.ErrDuplicateOrderRef):
		return "Duplicate order reference"
	case errors.Is(err, domain.ErrGatewayUnavailable),
		errors.Is(err, domain.ErrGatewayProtocol):
		return "Payment gateway error"
	default:
		return "Internal server error"
	}
}

// BindAndValidate parses the request body and validates it using
// go-playground/validator. On failure it writes the 400 envelope and
// returns the parse or validation error.
func BindAndValidate[T any](c *fiber.Ctx, debug bool) (*T, error) {
	var input T
	if err := c.BodyParser(&input); err != nil {
		return nil, ErrorResponseJSON(
			c, fiber.StatusBadRequest, "Invalid request body", err, debug)
	}
	validate := validator.New()
	if err := validate.Struct(input); err != nil {
		return nil, ErrorResponseJSON(
			c, fiber.StatusBadRequest, "Validation failed", err, debug)
	}
	return &input, nil
}
