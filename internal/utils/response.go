package utils

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/socialgraph/friendsdb/internal/types"
)

// SuccessResponse sends a standard success response
func SuccessResponse(c *fiber.Ctx, data interface{}, status int) error {
	return c.Status(status).JSON(data)
}

// ErrorResponse sends a standard error envelope
func ErrorResponse(c *fiber.Ctx, message string, status int, errorType string) error {
	return c.Status(status).JSON(fiber.Map{
		"status":    status,
		"message":   message,
		"ok":        false,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"url":       c.OriginalURL(),
		"type":      errorType,
	})
}

// NotFoundResponse sends a 404 not found response
func NotFoundResponse(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
		"status":    fiber.StatusNotFound,
		"message":   message,
		"ok":        false,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"url":       c.OriginalURL(),
	})
}

// DomainErrorResponse maps a graph-service domain error onto the standard
// error envelope: validation problems are 400s, missing records 404s, and
// every invariant conflict (duplicate name, already linked, live edges,
// storage race) a 409.
func DomainErrorResponse(c *fiber.Ctx, err error) error {
	de, ok := err.(*types.DomainError)
	if !ok {
		return ErrorResponse(c, err.Error(), fiber.StatusInternalServerError, "internal")
	}

	status := fiber.StatusInternalServerError
	switch de.Kind {
	case types.KindValidationFailed, types.KindSelfLink:
		status = fiber.StatusBadRequest
	case types.KindNotFound:
		status = fiber.StatusNotFound
	case types.KindDuplicateName, types.KindAlreadyLinked,
		types.KindHasActiveEdges, types.KindConflict:
		status = fiber.StatusConflict
	}

	resp := fiber.Map{
		"status":    status,
		"message":   de.Message,
		"ok":        false,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"url":       c.OriginalURL(),
		"type":      string(de.Kind),
	}
	if de.Field != "" {
		resp["field"] = de.Field
	}
	return c.Status(status).JSON(resp)
}

// ErrorResponseStruct defines the schema for error responses
type ErrorResponseStruct struct {
	Status    int    `json:"status"`
	Message   string `json:"message"`
	Ok        bool   `json:"ok"`
	Timestamp string `json:"timestamp"`
	URL       string `json:"url"`
	Type      string `json:"type,omitempty"`
	Field     string `json:"field,omitempty"`
}
