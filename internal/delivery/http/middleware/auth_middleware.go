package middleware

import (
	"net/http"
	"strings"

	"bazaar/internal/domain/service"

	"github.com/labstack/echo/v4"
)

// Echo context keys populated by the staff authentication middleware.
const (
	ContextKeyStaffClaims = "staff_claims"
	ContextKeyStaffToken  = "staff_token"
)

// AuthMiddleware provides middleware for staff token authentication.
type AuthMiddleware struct {
	staffTokens service.StaffTokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(staffTokens service.StaffTokenService) *AuthMiddleware {
	return &AuthMiddleware{staffTokens: staffTokens}
}

// Authenticate validates the staff bearer token and stores the claims and
// the raw token on the request context. The raw token travels on so
// downstream signing of order adjustments uses the caller's own credential.
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

		claims, err := m.staffTokens.Verify(tokenString)
		if err != nil {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Invalid or expired token"})
		}

		c.Set(ContextKeyStaffClaims, claims)
		c.Set(ContextKeyStaffToken, tokenString)

		return next(c)
	}
}

// StaffClaims extracts the verified claims stored by Authenticate.
func StaffClaims(c echo.Context) *service.StaffClaims {
	claims, _ := c.Get(ContextKeyStaffClaims).(*service.StaffClaims)

	return claims
}

// StaffToken extracts the raw bearer token stored by Authenticate.
func StaffToken(c echo.Context) string {
	token, _ := c.Get(ContextKeyStaffToken).(string)

	return token
}
