// Package common holds the response envelope and error translation shared by
// all webapi handlers.
package common

import (
	"github.com/amirasaad/banking/pkg/domain"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"
)

// Response defines the standard API response structure for success cases.
type Response struct {
	Status  int    `json:"status"`         // HTTP status code
	Message string `json:"message"`        // Human-readable explanation
	Data    any    `json:"data,omitempty"` // Response data
}

// ProblemDetails follows RFC 9457 Problem Details for HTTP APIs.
type ProblemDetails struct {
	Type     string `json:"type,omitempty"`     // URI reference identifying the problem type
	Title    string `json:"title"`              // Short, human-readable summary
	Status   int    `json:"status"`             // HTTP status code
	Detail   string `json:"detail,omitempty"`   // Human-readable explanation
	Instance string `json:"instance,omitempty"` // URI reference for this occurrence
	Errors   any    `json:"errors,omitempty"`   // Optional additional error details
}

// SuccessResponseJSON writes a wrapped success response.
func SuccessResponseJSON(c *fiber.Ctx, status int, message string, data any) error {
	return c.Status(status).JSON(Response{
		Status:  status,
		Message: message,
		Data:    data,
	})
}

// ErrorResponseJSON writes a problem+json response.
func ErrorResponseJSON(c *fiber.Ctx, status int, title string, detail any) error {
	pd := ProblemDetails{
		Type:   "about:blank",
		Title:  title,
		Status: status,
	}
	if detail != nil {
		if s, ok := detail.(string); ok {
			pd.Detail = s
		} else {
			pd.Errors = detail
		}
	}
	pd.Instance = c.OriginalURL()
	c.Set(fiber.HeaderContentType, "application/problem+json")

	return c.Status(status).JSON(pd)
}

// ErrorToStatusCode maps a domain error kind to an HTTP status code. The
// switch is exhaustive over the closed set of kinds; unclassified errors fall
// through to 500.
func ErrorToStatusCode(err error) int {
	switch domain.KindOf(err) {
	case domain.ErrorKindNotFound:
		return fiber.StatusNotFound
	case domain.ErrorKindInsufficientFunds:
		return fiber.StatusUnprocessableEntity
	default:
		return fiber.StatusInternalServerError
	}
}

// ErrorJSON writes the problem response for a service error, deriving the
// status from the error kind. Unclassified errors are reported with a generic
// detail so internals never leak to the client.
func ErrorJSON(c *fiber.Ctx, err error) error {
	status := ErrorToStatusCode(err)
	detail := err.Error()
	if status == fiber.StatusInternalServerError {
		detail = "an unknown error has occurred"
	}
	return ErrorResponseJSON(c, status, utils.StatusMessage(status), detail)
}

// BindAndValidate parses the request body and validates it using
// go-playground/validator. On failure the error response is already written
// and a nil struct is returned.
func BindAndValidate[T any](c *fiber.Ctx) (*T, error) {
	var input T
	if err := c.BodyParser(&input); err != nil {
		return nil, ErrorResponseJSON(c, fiber.StatusBadRequest, "Invalid request body", err.Error())
	}
	validate := validator.New()
	if err := validate.Struct(input); err != nil {
		return nil, ErrorResponseJSON(c, fiber.StatusBadRequest, "Validation failed", err.Error())
	}
	return &input, nil
}
