package serverutils

import (
	"errors"

	"collabnotes-be/internal/apperror"
	"collabnotes-be/internal/pkg/logger"

	"github.com/gofiber/fiber/v2"
)

func statusForKind(kind apperror.Kind) int {
	switch kind {
	case apperror.KindValidation:
		return fiber.StatusBadRequest
	case apperror.KindUnauthorized:
		return fiber.StatusUnauthorized
	case apperror.KindForbidden:
		return fiber.StatusForbidden
	case apperror.KindNotFound:
		return fiber.StatusNotFound
	case apperror.KindConflict:
		return fiber.StatusConflict
	default:
		return fiber.StatusInternalServerError
	}
}

// ErrorHandlerMiddleware maps service errors to transport status codes.
// Internal error detail only reaches the response body outside production.
func ErrorHandlerMiddleware(log logger.ILogger, isProd bool) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		err := ctx.Next()
		if err == nil {
			return nil
		}

		requestId, _ := ctx.Locals(LocalRequestId).(string)

		var appErr *apperror.AppError
		if errors.As(err, &appErr) {
			status := statusForKind(appErr.Kind)
			message := appErr.Message

			details := map[string]interface{}{
				"request_id": requestId,
				"method":     ctx.Method(),
				"path":       ctx.Path(),
				"kind":       appErr.Kind.String(),
			}
			if appErr.Err != nil {
				details["error"] = appErr.Err.Error()
			}

			if status >= fiber.StatusInternalServerError {
				log.Error("http", appErr.Message, details)
				if isProd {
					message = "internal server error"
				}
			} else {
				log.Warn("http", appErr.Message, details)
			}

			return ctx.Status(status).JSON(ErrorResponse(status, message))
		}

		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) {
			return ctx.Status(fiberErr.Code).JSON(ErrorResponse(fiberErr.Code, fiberErr.Message))
		}

		log.Error("http", "unhandled error", map[string]interface{}{
			"request_id": requestId,
			"method":     ctx.Method(),
			"path":       ctx.Path(),
			"error":      err.Error(),
		})

		message := "internal server error"
		if !isProd {
			message = err.Error()
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(ErrorResponse(fiber.StatusInternalServerError, message))
	}
}
