package middlewares

import (
	"context"
	"crypto/subtle"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/millbrook-logistics/dispatchd/internal/constant"
	"github.com/millbrook-logistics/dispatchd/internal/pkg/apperr"
)

// SessionValidator reports whether a staff session token is live.
type SessionValidator interface {
	Valid(ctx context.Context, token string) bool
}

// SessionToken reads the staff session token from the session header or
// from an Authorization bearer value.
func SessionToken(c *fiber.Ctx) string {
	token := c.Get(constant.SessionTokenHeader)
	if token == "" {
		token = bearerToken(c)
	}
	return token
}

// Session guards a router group behind a staff session token.
func Session(v SessionValidator) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := SessionToken(c)
		if token == "" || !v.Valid(c.UserContext(), token) {
			return apperr.ErrUnauthorized
		}
		return c.Next()
	}
}

// AdminKey guards the admin group behind the configured admin key.
func AdminKey(key string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if key == "" {
			return apperr.ErrUnauthorized.Msg("admin API is disabled: no admin key configured")
		}
		token := bearerToken(c)
		if subtle.ConstantTimeCompare([]byte(token), []byte(key)) != 1 {
			return apperr.ErrUnauthorized
		}
		return c.Next()
	}
}

func bearerToken(c *fiber.Ctx) string {
	value := c.Get(fiber.HeaderAuthorization)
	if value == "" {
		return ""
	}
	parts := strings.SplitN(value, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], constant.AdminAuthorizationRealm) {
		return ""
	}
	return strings.TrimSpace(parts[1])
}
