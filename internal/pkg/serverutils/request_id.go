package serverutils

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

const (
	LocalRequestId  = "request_id"
	HeaderRequestId = "X-Request-Id"
)

// RequestIdMiddleware tags each request with an id, honoring one supplied
// by the client, and echoes it back on the response.
func RequestIdMiddleware(ctx *fiber.Ctx) error {
	requestId := ctx.Get(HeaderRequestId)
	if requestId == "" {
		requestId = uuid.New().String()
	}

	ctx.Locals(LocalRequestId, requestId)
	ctx.Set(HeaderRequestId, requestId)
	return ctx.Next()
}

// RequestId reads the id placed by RequestIdMiddleware.
func RequestId(ctx *fiber.Ctx) string {
	if id, ok := ctx.Locals(LocalRequestId).(string); ok {
		return id
	}
	return ""
}
