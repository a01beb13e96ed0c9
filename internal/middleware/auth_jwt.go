package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"

	"meetspace-admin/internal/services"
)

// RequireJWT validates a bearer token and stores the caller's identity
// in locals. Requests without a valid token are rejected.
func RequireJWT(secret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		auth := c.Get("Authorization")
		if auth == "" || !strings.HasPrefix(strings.ToLower(auth), "bearer ") {
			return fiber.NewError(fiber.StatusUnauthorized, "missing bearer token")
		}

		tokenStr := strings.TrimSpace(auth[7:])
		var claims services.AuthClaims

		token, err := jwt.ParseWithClaims(
			tokenStr,
			&claims,
			func(t *jwt.Token) (any, error) {
				if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
					return nil, fiber.NewError(fiber.StatusUnauthorized, "unsupported alg")
				}
				return []byte(secret), nil
			},
			jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		)
		if err != nil || !token.Valid {
			return fiber.NewError(fiber.StatusUnauthorized, "invalid token")
		}

		uid := claims.UID
		if uid == "" {
			uid = claims.Subject
		}
		if uid == "" {
			return fiber.NewError(fiber.StatusUnauthorized, "missing uid")
		}

		c.Locals("user_id", uid)
		c.Locals("user_email", claims.Email)
		c.Locals("user_role", claims.Role)
		return c.Next()
	}
}

// RequireRole gates a route group to callers whose token carries one of
// the given roles. Must run after RequireJWT.
func RequireRole(roles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role, _ := c.Locals("user_role").(string)
		for _, allowed := range roles {
			if role == allowed {
				return c.Next()
			}
		}
		return fiber.NewError(fiber.StatusForbidden, "insufficient role")
	}
}
