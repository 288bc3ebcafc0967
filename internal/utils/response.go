package utils

import (
	"encoding/json"

	"github.com/gofiber/fiber/v2"
)

// ErrorResponse is the body of a failed request.
type ErrorResponse struct {
	Error string `json:"error"`
}

// EmailFailure is the body of a failed email request; clients branch on success.
type EmailFailure struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

// SendJSON sends payload as JSON with the given status, defaulting to 200.
func SendJSON(c *fiber.Ctx, status int, payload interface{}) error {
	if status == 0 {
		status = fiber.StatusOK
	}

	return c.Status(status).JSON(payload)
}

// SendRawJSON writes an already encoded JSON document without re-encoding it, so model output
// reaches the client byte for byte.
func SendRawJSON(c *fiber.Ctx, status int, payload json.RawMessage) error {
	if status == 0 {
		status = fiber.StatusOK
	}

	c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	return c.Status(status).Send(payload)
}

// SendError sends an {"error": message} body with the given status code.
func SendError(c *fiber.Ctx, status int, message string) error {
	if message == "" {
		message = "error"
	}

	return c.Status(status).JSON(ErrorResponse{Error: message})
}

// SendEmailFailure sends a {"success": false, "error": message} body.
func SendEmailFailure(c *fiber.Ctx, status int, message string) error {
	if message == "" {
		message = "error"
	}

	return c.Status(status).JSON(EmailFailure{Success: false, Error: message})
}
