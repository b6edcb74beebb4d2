package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/sellerhub/sellerhub-api/internal/core/domain"
)

// UserHandler exposes the identity endpoints backed purely by the request
// principal; it performs no persistence calls.
type UserHandler struct{}

func NewUserHandler() *UserHandler {
	return &UserHandler{}
}

type adminOnlyResponse struct {
	Message string           `json:"message"`
	User    domain.Principal `json:"user"`
}

// Me returns the authenticated principal for the current request.
//
// @Summary      Current user identity
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  domain.Principal
// @Failure      401  {object}  map[string]any
// @Router       /users/me [get]
func (h *UserHandler) Me(c echo.Context) error {
	principal, err := ctxPrincipal(c)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, principal)
}

// AdminOnly is reachable only through RequireRoles(domain.RoleAdmin).
//
// @Summary      Admin-only endpoint
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  adminOnlyResponse
// @Failure      401  {object}  map[string]any
// @Failure      403  {object}  map[string]any
// @Router       /users/admin [get]
func (h *UserHandler) AdminOnly(c echo.Context) error {
	principal, err := ctxPrincipal(c)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, adminOnlyResponse{
		Message: "This is an admin-only endpoint",
		User:    principal,
	})
}
