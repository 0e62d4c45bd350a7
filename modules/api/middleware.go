package api

import (
	"strings"

	"github.com/example/task-manager-api/modules/auth"
	"github.com/gofiber/fiber/v2"
)

// IdentityContextKey is the key under which the caller's verified email is
// stored in the Fiber context.
const IdentityContextKey = "identity"

// IdentityMiddleware extracts and validates a bearer token, binding the
// resulting identity to the request context. It never short-circuits: a
// missing, malformed, or invalid token leaves the request anonymous and the
// protected handlers answer 403 themselves. Public routes such as login run
// through it unharmed.
func IdentityMiddleware(authPort auth.AuthPort) fiber.Handler {
	return func(c *fiber.Ctx) error {
		header := c.Get("Authorization")
		if strings.HasPrefix(header, "Bearer ") {
			token := strings.TrimPrefix(header, "Bearer ")
			if token != "" {
				if claims, err := authPort.ValidateToken(c.UserContext(), token); err == nil {
					c.Locals(IdentityContextKey, claims.Email)
				}
			}
		}
		return c.Next()
	}
}

// identityFromContext returns the verified caller email, if any.
func identityFromContext(c *fiber.Ctx) (string, bool) {
	email, ok := c.Locals(IdentityContextKey).(string)
	if !ok || email == "" {
		return "", false
	}
	return email, true
}
