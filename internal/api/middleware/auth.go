package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/sellerhub/sellerhub-api/internal/api/metrics"
	"github.com/sellerhub/sellerhub-api/internal/core/domain"
	"github.com/sellerhub/sellerhub-api/internal/core/ports"
)

// principalKey is the echo context key the authenticated principal lives
// under for the duration of a single request.
const principalKey = "principal"

// TokenVerifier is the slice of the token service the middleware needs.
type TokenVerifier interface {
	Verify(token string) (ports.TokenPayload, error)
}

// Auth extracts and verifies the bearer token from the Authorization header
// and attaches the resulting principal to the request context. On any
// rejection the protected handler is never invoked.
//
// Verification failures deliberately collapse into one outward message so a
// caller cannot distinguish an expired token from a tampered one.
func Auth(tokens TokenVerifier) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get("Authorization")
			if header == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "Authorization header is missing")
			}

			scheme, credential, _ := strings.Cut(header, " ")
			if scheme != "Bearer" || credential == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "Invalid token format. Use: Bearer <token>")
			}

			payload, err := tokens.Verify(credential)
			if err != nil {
				metrics.TokenVerificationsTotal.WithLabelValues("rejected").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "Invalid or expired token")
			}
			metrics.TokenVerificationsTotal.WithLabelValues("ok").Inc()

			// Only identity and role travel into the request scope; iat/exp
			// stay behind in the token.
			c.Set(principalKey, domain.Principal{UserID: payload.UserID, Role: payload.Role})
			return next(c)
		}
	}
}

// PrincipalFrom returns the principal attached by Auth, if any.
func PrincipalFrom(c echo.Context) (domain.Principal, bool) {
	p, ok := c.Get(principalKey).(domain.Principal)
	return p, ok
}
