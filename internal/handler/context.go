package handler

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"fitgoals/internal/auth"
)

// callerID extracts the authenticated user ID attached by the JWT
// middleware.
func callerID(c echo.Context) (uint, error) {
	claims, ok := c.Get("user").(*auth.Claims)
	if !ok {
		return 0, echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
	}
	return claims.UserID, nil
}

// bearerToken returns the raw token from the Authorization header.
func bearerToken(c echo.Context) string {
	header := c.Request().Header.Get(echo.HeaderAuthorization)
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}
