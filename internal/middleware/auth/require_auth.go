package auth

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/Skotchmaster/workshop/internal/logging"
	"github.com/Skotchmaster/workshop/internal/tokens"
)

const (
	CtxUserID = "user_id"
	CtxEmail  = "email"
)

// RequireAuth accepts requests carrying a valid HS256 bearer access token
// and stores the caller's id and email on the echo context.
func RequireAuth(secret []byte) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			l := logging.FromContext(c.Request().Context())

			raw, ok := bearerToken(c.Request().Header.Get(echo.HeaderAuthorization))
			if !ok {
				l.Warn("auth_failed", "status", 401, "reason", "missing bearer token")
				return echo.NewHTTPError(http.StatusUnauthorized, "missing bearer token")
			}

			claims, err := tokens.AccessClaimsFromToken(raw, secret)
			if err != nil {
				l.Warn("auth_failed", "status", 401, "reason", "invalid token", "error", err)
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}
			uid, err := claims.UserID()
			if err != nil {
				l.Warn("auth_failed", "status", 401, "reason", "invalid subject", "error", err)
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}

			c.Set(CtxUserID, uid)
			c.Set(CtxEmail, claims.Email)
			return next(c)
		}
	}
}

// Optional returns RequireAuth when a secret is configured and a pass-through
// middleware otherwise.
func Optional(secret []byte) echo.MiddlewareFunc {
	if len(secret) == 0 {
		return func(next echo.HandlerFunc) echo.HandlerFunc { return next }
	}
	return RequireAuth(secret)
}

func bearerToken(header string) (string, bool) {
	const prefix = "bearer "
	if len(header) <= len(prefix) || !strings.EqualFold(header[:len(prefix)], prefix) {
		return "", false
	}
	tok := strings.TrimSpace(header[len(prefix):])
	return tok, tok != ""
}
