package utils

import "github.com/gofiber/fiber/v2"

// API error codes returned alongside HTTP statuses.
const (
	CodeUnauthorized      = "UNAUTHORIZED"
	CodeMissingFile       = "MISSING_FILE"
	CodeUnsupportedFormat = "UNSUPPORTED_FORMAT"
	CodeEmptyFile         = "EMPTY_FILE"
	CodeParseError        = "PARSE_ERROR"
	CodeNotFound          = "NOT_FOUND"
	CodeInternal          = "INTERNAL_ERROR"
)

func SuccessResponse(c *fiber.Ctx, status int, data interface{}) error {
	return c.Status(status).JSON(fiber.Map{
		"success": true,
		"data":    data,
	})
}

func ErrorResponse(c *fiber.Ctx, status int, code, message string) error {
	return c.Status(status).JSON(fiber.Map{
		"success": false,
		"code":    code,
		"message": message,
	})
}
