package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// RequireRoles enforces that the authenticated principal's role is one of
// allowedRoles. The set is fixed at route registration. Comparison is exact
// and case-sensitive; there is no role hierarchy.
//
// Must be registered after Auth. The missing-principal check stays anyway:
// it is the contract for direct invocation, not dead code.
func RequireRoles(allowedRoles ...string) echo.MiddlewareFunc {
	allowed := make(map[string]struct{}, len(allowedRoles))
	for _, r := range allowedRoles {
		allowed[r] = struct{}{}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			principal, ok := PrincipalFrom(c)
			if !ok {
				return echo.NewHTTPError(http.StatusUnauthorized, "Authentication required")
			}

			if _, ok := allowed[principal.Role]; !ok {
				return echo.NewHTTPError(http.StatusForbidden, "Insufficient permissions")
			}

			return next(c)
		}
	}
}
