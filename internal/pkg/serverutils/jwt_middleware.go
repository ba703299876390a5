package serverutils

import (
	"strings"

	"collabnotes-be/internal/apperror"
	"collabnotes-be/internal/token"

	"github.com/gofiber/fiber/v2"
)

const (
	LocalUserId    = "user_id"
	LocalUserEmail = "user_email"
)

// NewJwtMiddleware verifies the bearer token and stores the identity in the
// request locals for the controllers.
func NewJwtMiddleware(tokenService token.IService) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		authHeader := ctx.Get("Authorization")
		if authHeader == "" {
			return apperror.Unauthorized("missing authorization header")
		}
		if len(authHeader) < 7 || !strings.EqualFold(authHeader[:7], "Bearer ") {
			return apperror.Unauthorized("invalid authorization header format")
		}

		identity, err := tokenService.Verify(authHeader[7:])
		if err != nil {
			return err
		}

		ctx.Locals(LocalUserId, identity.Id)
		ctx.Locals(LocalUserEmail, identity.Email)
		return ctx.Next()
	}
}

// UserId reads the authenticated user id placed by the jwt middleware.
func UserId(ctx *fiber.Ctx) uint {
	if id, ok := ctx.Locals(LocalUserId).(uint); ok {
		return id
	}
	return 0
}
