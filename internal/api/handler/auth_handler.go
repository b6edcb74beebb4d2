package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/sellerhub/sellerhub-api/internal/api/metrics"
	"github.com/sellerhub/sellerhub-api/internal/core/domain"
	"github.com/sellerhub/sellerhub-api/internal/core/ports"
)

type AuthHandler struct {
	authService ports.AuthService
}

func NewAuthHandler(authService ports.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

type registerRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	Name     string `json:"name"     validate:"required"`
}

type loginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type loginResponse struct {
	User  *domain.User `json:"user"`
	Token string       `json:"token"`
}

// Register creates a new seller account with the default USER role.
//
// @Summary      Register a new seller account
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      registerRequest  true  "Registration details"
// @Success      201   {object}  domain.User
// @Failure      400   {object}  map[string]any
// @Failure      409   {object}  map[string]any
// @Failure      422   {object}  map[string]any
// @Router       /auth/register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	user, err := h.authService.Register(c.Request().Context(), ports.RegisterInput{
		Email:    req.Email,
		Password: req.Password,
		Name:     req.Name,
	})
	if err != nil {
		return err
	}

	metrics.RegistrationsTotal.Inc()
	// PasswordHash is json:"-"; the created record goes out without it.
	return c.JSON(http.StatusCreated, user)
}

// Login authenticates a seller and returns the user plus a bearer token.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  loginResponse
// @Failure      400   {object}  map[string]any
// @Failure      401   {object}  map[string]any
// @Failure      429   {object}  map[string]any
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	token, user, err := h.authService.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrTooManyLoginAttempts):
			metrics.LoginsTotal.WithLabelValues("throttled").Inc()
		case errors.Is(err, domain.ErrInvalidCredentials):
			metrics.LoginsTotal.WithLabelValues("rejected").Inc()
		}
		return err
	}

	metrics.LoginsTotal.WithLabelValues("ok").Inc()
	return c.JSON(http.StatusOK, loginResponse{User: user, Token: token})
}
