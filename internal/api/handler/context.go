package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/sellerhub/sellerhub-api/internal/api/middleware"
	"github.com/sellerhub/sellerhub-api/internal/core/domain"
)

// ctxPrincipal extracts the principal injected by the Auth middleware. Its
// absence means the route was wired without authentication; handlers treat
// that as an unauthenticated request rather than a server bug.
func ctxPrincipal(c echo.Context) (domain.Principal, error) {
	principal, ok := middleware.PrincipalFrom(c)
	if !ok {
		return domain.Principal{}, echo.NewHTTPError(http.StatusUnauthorized, "Authentication required")
	}
	return principal, nil
}
