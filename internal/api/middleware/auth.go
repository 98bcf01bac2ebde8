package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/playgrid/leaderboard-system/internal/core/ports"
)

// HandleKey is the echo context key under which Auth stores the verified
// token claim's handle.
const HandleKey = "handle"

// Auth validates the bearer token and injects the claim handle into the
// request context. A missing header, a malformed header, and a token that
// fails verification all produce the same generic 401.
func Auth(tokens ports.TokenService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}

			claim, err := tokens.Verify(parts[1])
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}

			c.Set(HandleKey, claim.Handle)

			return next(c)
		}
	}
}
