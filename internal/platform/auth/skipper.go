package auth

import (
	"github.com/labstack/echo/v4"
)

// publicPaths lists URL paths that bypass authentication: infrastructure
// endpoints and the credential endpoints themselves.
var publicPaths = map[string]bool{
	"/health":            true,
	"/health/db":         true,
	"/api/auth/register": true,
	"/api/auth/login":    true,
}

// Skipper returns true for requests whose path should skip authentication.
// Pass it to Middleware so health checks and the login/registration flow stay
// reachable without a bearer token.
func Skipper(c echo.Context) bool {
	return publicPaths[c.Request().URL.Path]
}
