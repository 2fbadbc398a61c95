package response

import "github.com/gofiber/fiber/v3"

const (
	MessageSuccess      = "success"
	MessageCreated      = "created"
	MessageBadRequest   = "bad request"
	MessageUnauthorized = "unauthorized"
	MessageForbidden    = "forbidden"
	MessageNotFound     = "not found"
	MessageConflict     = "conflict"
	MessageInternal     = "internal server error"
)

// SemanticResponse is the envelope every handler writes.
type SemanticResponse struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

func Success(c fiber.Ctx, status int, message string, data any) error {
	return c.Status(status).JSON(SemanticResponse{
		Status:  status,
		Message: message,
		Data:    data,
	})
}

func Error(c fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(SemanticResponse{
		Status:  status,
		Message: message,
	})
}
