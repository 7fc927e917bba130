package middleware

import (
	"strings"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	jwtpkg "github.com/minh-swinburne/ridelink/internal/pkg/jwt"
	"github.com/minh-swinburne/ridelink/internal/pkg/models"
	"github.com/minh-swinburne/ridelink/internal/utils"
)

// Context keys set by the JWT middleware
const (
	ContextKeyUserID = "user_id"
	ContextKeyRole   = "role"
)

// JWTAuthMiddleware creates a middleware for JWT bearer authentication.
// On success the caller's user id and role are stored on the echo context.
func JWTAuthMiddleware(config models.JWTConfig) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return utils.UnauthorizedResponse(c, "Authorization header is required")
			}

			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || parts[0] != "Bearer" {
				return utils.UnauthorizedResponse(c, "Invalid authorization format")
			}

			claims, err := jwtpkg.ValidateToken(parts[1], config.Secret)
			if err != nil {
				return utils.UnauthorizedResponse(c, "Invalid token")
			}

			userIDRaw, ok := (*claims)["user_id"]
			if !ok {
				return utils.UnauthorizedResponse(c, "Invalid token: missing user_id claim")
			}
			userIDStr, ok := userIDRaw.(string)
			if !ok {
				return utils.UnauthorizedResponse(c, "Invalid token: malformed user_id claim")
			}
			userID, err := uuid.Parse(userIDStr)
			if err != nil {
				return utils.UnauthorizedResponse(c, "Invalid token: malformed user_id claim")
			}

			role, _ := (*claims)["role"].(string)

			c.Set(ContextKeyUserID, userID)
			c.Set(ContextKeyRole, role)

			return next(c)
		}
	}
}
