package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/ibiraza1077-pixel/job-tracker/internal/auth/service"
	autherror "github.com/ibiraza1077-pixel/job-tracker/internal/errors"
)

const identityKey = "identity"

// RequireAuth gates a route group behind a bearer token. A missing or
// malformed header is 401; a token that fails signature or expiry checks is
// 403. No database lookup happens here — the token is the proof of identity
// for its validity window.
func RequireAuth(tokens service.TokenGenerator) fiber.Handler {
	return func(c *fiber.Ctx) error {
		header := c.Get(fiber.HeaderAuthorization)
		if header == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": autherror.ErrMissingToken.Error(),
			})
		}

		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || strings.TrimSpace(parts[1]) == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": autherror.ErrMissingToken.Error(),
			})
		}

		claims, err := tokens.Verify(strings.TrimSpace(parts[1]))
		if err != nil {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"error": autherror.ErrInvalidToken.Error(),
			})
		}

		c.Locals(identityKey, claims)

		return c.Next()
	}
}

// Identity returns the verified claims set by RequireAuth.
func Identity(c *fiber.Ctx) (*service.JWTCustomClaims, bool) {
	claims, ok := c.Locals(identityKey).(*service.JWTCustomClaims)
	return claims, ok
}
