package middleware

import (
	"strings"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/johnquangdev/meeting-notes/errors"
	"github.com/johnquangdev/meeting-notes/internal/usecase/auth"
	"github.com/johnquangdev/meeting-notes/pkg/config"
)

// PrincipalKey is the echo context key holding *auth.Principal
const PrincipalKey = "principal"

// EchoAuth returns an Echo middleware that verifies bearer tokens according
// to mode:
//   - enforced: a valid token is required
//   - optional: a token is verified when present, invalid tokens are rejected
//   - disabled: tokens are ignored and every caller is anonymous
func EchoAuth(authn auth.Authenticator, mode string, logger *zap.Logger) echo.MiddlewareFunc {
	if logger == nil {
		logger = zap.NewNop()
	}
	if mode == config.AuthModeDisabled {
		logger.Warn("⚠️  bearer token verification is DISABLED, all API callers are anonymous")
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if mode == config.AuthModeDisabled {
				c.Set(PrincipalKey, auth.Anonymous())
				return next(c)
			}

			token := extractToken(c)
			if token == "" {
				if mode == config.AuthModeOptional {
					c.Set(PrincipalKey, auth.Anonymous())
					return next(c)
				}
				return errors.ErrUnauthenticated()
			}

			principal, err := authn.Authenticate(c.Request().Context(), token)
			if err != nil {
				logger.Info("auth.rejected",
					zap.String("path", c.Path()),
					zap.String("request_id", c.Request().Header.Get(echo.HeaderXRequestID)),
					zap.Error(err),
				)
				return err
			}

			c.Set(PrincipalKey, principal)
			return next(c)
		}
	}
}

// PrincipalFrom returns the caller set by EchoAuth
func PrincipalFrom(c echo.Context) (*auth.Principal, bool) {
	p, ok := c.Get(PrincipalKey).(*auth.Principal)
	return p, ok && p != nil
}

// extractToken reads "Authorization: Bearer <token>"
func extractToken(c echo.Context) string {
	authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
	if authHeader == "" {
		return ""
	}
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) == 2 && strings.EqualFold(parts[0], "bearer") {
		return strings.TrimSpace(parts[1])
	}
	return ""
}
