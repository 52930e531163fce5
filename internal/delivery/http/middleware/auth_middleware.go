// Package middleware contains HTTP middleware for the delivery layer.
package middleware

import (
	"net/http"
	"slices"
	"strings"

	"tesotunes/internal/domain/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// Context keys set by Authenticate for downstream handlers.
const (
	ContextKeyUserID = "userID"
	ContextKeyRoles  = "roles"
)

// AuthMiddleware provides middleware for JWT authentication and authorization.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// Authenticate is the core middleware function that validates the JWT access token.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Authorization header is missing"})
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Invalid token format, must be Bearer token"})
		}

		claims, err := m.tokenSvc.ValidateToken(tokenString)
		if err != nil {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Invalid or expired token"})
		}

		// Refresh tokens must never be accepted on protected endpoints.
		if claims.Type != "access" {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Token is not an access token"})
		}

		// Set user info on the context for handlers to use
		c.Set(ContextKeyUserID, claims.UserID)
		c.Set(ContextKeyRoles, claims.Roles)

		return next(c)
	}
}

// RequireRole is a middleware factory that checks if the user has a specific role.
// It must be used AFTER the Authenticate middleware.
func (m *AuthMiddleware) RequireRole(requiredRole string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			rolesVal := c.Get(ContextKeyRoles)
			roles, ok := rolesVal.([]string)
			if !ok {
				return c.JSON(http.StatusForbidden, map[string]string{"error": "Permission denied: role information missing"})
			}

			if !slices.Contains(roles, requiredRole) {
				return c.JSON(http.StatusForbidden, map[string]string{"error": "Permission denied: require '" + requiredRole + "' role"})
			}

			return next(c)
		}
	}
}

// RequireAnyRole is like RequireRole but passes when the user holds at
// least one of the given roles. It must be used AFTER the Authenticate
// middleware.
func (m *AuthMiddleware) RequireAnyRole(requiredRoles ...string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			rolesVal := c.Get(ContextKeyRoles)
			roles, ok := rolesVal.([]string)
			if !ok {
				return c.JSON(http.StatusForbidden, map[string]string{"error": "Permission denied: role information missing"})
			}

			for _, required := range requiredRoles {
				if slices.Contains(roles, required) {
					return next(c)
				}
			}

			return c.JSON(http.StatusForbidden, map[string]string{"error": "Permission denied: require one of [" + strings.Join(requiredRoles, ", ") + "]"})
		}
	}
}

// HasRole reports whether the authenticated user carries the given
// role. It returns false when Authenticate did not run.
func HasRole(c echo.Context, role string) bool {
	roles, ok := c.Get(ContextKeyRoles).([]string)

	return ok && slices.Contains(roles, role)
}

// UserID extracts the authenticated user's ID from the echo context.
// It returns uuid.Nil when Authenticate did not run.
func UserID(c echo.Context) uuid.UUID {
	if id, ok := c.Get(ContextKeyUserID).(uuid.UUID); ok {
		return id
	}

	return uuid.Nil
}
