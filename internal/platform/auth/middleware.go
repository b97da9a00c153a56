package auth

import (
	"context"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
)

type contextKey string

const (
	StaffIDKey   contextKey = "staff_id"
	StaffNameKey contextKey = "staff_name"
)

// Middleware returns echo middleware that requires a valid bearer token on
// every request, except those the skipper exempts. On success the staff
// identity is placed on the request context for handlers and the audit log.
func Middleware(issuer *TokenIssuer, skipper func(echo.Context) bool) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if skipper != nil && skipper(c) {
				return next(c)
			}

			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization format")
			}

			claims, err := issuer.Verify(parts[1])
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid or expired token")
			}

			ctx := c.Request().Context()
			ctx = context.WithValue(ctx, StaffIDKey, claims.Subject)
			ctx = context.WithValue(ctx, StaffNameKey, claims.FullName)
			c.SetRequest(c.Request().WithContext(ctx))

			return next(c)
		}
	}
}

func StaffIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(StaffIDKey).(string)
	return id
}

func StaffNameFromContext(ctx context.Context) string {
	name, _ := ctx.Value(StaffNameKey).(string)
	return name
}
