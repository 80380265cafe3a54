package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"parcel-booking/models/user"
	"parcel-booking/services/token"
	"parcel-booking/types"
)

const userLocalKey = "user"

// Protected verifies the Bearer token (with a fallback to the "access"
// cookie) and stores the decoded claims in c.Locals("user") for controllers.
func Protected(tokenService *token.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenString := extractToken(c)
		if tokenString == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(types.ApiResponse{
				Message: "Authorization token missing",
				Status:  fiber.StatusUnauthorized,
			})
		}

		claims, err := tokenService.Parse(tokenString)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(types.ApiResponse{
				Message: "Invalid token",
				Status:  fiber.StatusUnauthorized,
			})
		}
		if tokenService.IsExpired(tokenString) {
			return c.Status(fiber.StatusUnauthorized).JSON(types.ApiResponse{
				Message: "Token expired",
				Status:  fiber.StatusUnauthorized,
			})
		}

		c.Locals(userLocalKey, claims)
		return c.Next()
	}
}

// RequireRole gates a route to one role. Must run after Protected.
func RequireRole(role user.Role) fiber.Handler {
	return func(c *fiber.Ctx) error {
		claims := ClaimsFromContext(c)
		if claims == nil {
			return c.Status(fiber.StatusUnauthorized).JSON(types.ApiResponse{
				Message: "Authorization required",
				Status:  fiber.StatusUnauthorized,
			})
		}
		if claims.Role != role {
			return c.Status(fiber.StatusForbidden).JSON(types.ApiResponse{
				Message: "Access denied for this role",
				Status:  fiber.StatusForbidden,
			})
		}
		return c.Next()
	}
}

// ClaimsFromContext returns the claims set by Protected, or nil.
func ClaimsFromContext(c *fiber.Ctx) *token.Claims {
	claims, ok := c.Locals(userLocalKey).(*token.Claims)
	if !ok {
		return nil
	}
	return claims
}

func extractToken(c *fiber.Ctx) string {
	authHeader := c.Get("Authorization")
	if authHeader != "" {
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
			return strings.TrimSpace(parts[1])
		}
		return ""
	}
	return c.Cookies("access")
}
