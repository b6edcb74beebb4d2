package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/sellerhub/sellerhub-api/internal/core/domain"
)

// errorEnvelope is the canonical error body for all API failures.
type errorEnvelope struct {
	Status     string `json:"status"`
	StatusCode int    `json:"statusCode"`
	Message    string `json:"message"`
}

// NewHTTPErrorHandler returns the single echo.HTTPErrorHandler through which
// every failure in the application is rendered:
//   - Maps known domain errors to their HTTP status codes and messages.
//   - Logs unexpected errors server-side without leaking details to the client.
//   - Renders a consistent envelope: {"status":"error","statusCode":N,"message":"..."}.
//
// The handler is idempotent (committed responses are left alone) and never
// raises on its own.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code, msg := resolveError(err, log, c)
		_ = c.JSON(code, errorEnvelope{Status: "error", StatusCode: code, Message: msg})
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context) (int, string) {
	// Echo's own errors: middleware rejections, bind failures, router 404s.
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code, fmt.Sprintf("%v", he.Message)
	}

	// Duplicate email carries the offending address in its message.
	var dup *domain.DuplicateEmailError
	if errors.As(err, &dup) {
		return http.StatusConflict, dup.Error()
	}

	// Known domain errors → deterministic codes and messages.
	switch {
	case errors.Is(err, domain.ErrInvalidCredentials):
		return http.StatusUnauthorized, "Invalid email or password"
	case errors.Is(err, domain.ErrInvalidToken):
		return http.StatusUnauthorized, "Invalid or expired token"
	case errors.Is(err, domain.ErrTooManyLoginAttempts):
		return http.StatusTooManyRequests, "Too many login attempts, try again later"
	case errors.Is(err, domain.ErrProductNotFound):
		return http.StatusNotFound, "Product not found"
	case errors.Is(err, domain.ErrUserNotFound):
		return http.StatusNotFound, "User not found"
	}

	// Everything else, including domain.ErrCrypto, collapses to a generic
	// 500. The real cause is logged, never returned.
	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("unhandled error")

	return http.StatusInternalServerError, "Something went wrong"
}
