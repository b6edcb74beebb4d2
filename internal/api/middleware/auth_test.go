package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/sellerhub/sellerhub-api/internal/core/domain"
	"github.com/sellerhub/sellerhub-api/internal/core/ports"
	"github.com/sellerhub/sellerhub-api/internal/core/service"
)

func issueToken(t *testing.T, secret, userID, role string) string {
	t.Helper()
	token, err := service.NewJWTTokenService(secret, time.Hour).Issue(ports.TokenPayload{UserID: userID, Role: role})
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}
	return token
}

func newAuthContext(header string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func rejection(t *testing.T, err error) *echo.HTTPError {
	t.Helper()
	var he *echo.HTTPError
	if !errors.As(err, &he) {
		t.Fatalf("expected *echo.HTTPError, got %v", err)
	}
	return he
}

func TestAuth_ValidToken(t *testing.T) {
	tokens := service.NewJWTTokenService("secret", time.Hour)
	token := issueToken(t, "secret", "user_1", domain.RoleAdmin)

	c, rec := newAuthContext("Bearer " + token)

	called := false
	handler := Auth(tokens)(func(c echo.Context) error {
		called = true
		p, ok := PrincipalFrom(c)
		if !ok {
			t.Fatalf("principal not attached")
		}
		if p.UserID != "user_1" || p.Role != domain.RoleAdmin {
			t.Fatalf("unexpected principal: %+v", p)
		}
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called {
		t.Fatalf("next not called")
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestAuth_MissingHeader(t *testing.T) {
	tokens := service.NewJWTTokenService("secret", time.Hour)
	c, _ := newAuthContext("")

	handler := Auth(tokens)(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})

	he := rejection(t, handler(c))
	if he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", he.Code)
	}
	if he.Message != "Authorization header is missing" {
		t.Fatalf("unexpected message: %v", he.Message)
	}
}

func TestAuth_MalformedHeader(t *testing.T) {
	tokens := service.NewJWTTokenService("secret", time.Hour)

	for _, header := range []string{
		"foo bar",
		"Bearer",
		"Bearer ",
		"bearer abc", // scheme comparison is exact, not case-insensitive
	} {
		c, _ := newAuthContext(header)
		handler := Auth(tokens)(func(c echo.Context) error {
			t.Fatalf("should not reach next for %q", header)
			return nil
		})

		he := rejection(t, handler(c))
		if he.Code != http.StatusUnauthorized {
			t.Fatalf("%q: expected 401, got %d", header, he.Code)
		}
		if he.Message != "Invalid token format. Use: Bearer <token>" {
			t.Fatalf("%q: unexpected message: %v", header, he.Message)
		}
	}
}

// Tampered, expired, and garbage tokens all produce the same opaque message.
func TestAuth_InvalidOrExpiredToken(t *testing.T) {
	tokens := service.NewJWTTokenService("secret", time.Hour)
	expired := func() string {
		svc := service.NewJWTTokenService("secret", time.Nanosecond)
		token, err := svc.Issue(ports.TokenPayload{UserID: "user_1", Role: domain.RoleUser})
		if err != nil {
			t.Fatalf("issue token: %v", err)
		}
		time.Sleep(2 * time.Millisecond)
		return token
	}()

	for name, credential := range map[string]string{
		"garbage":      "not-a-token",
		"wrong secret": issueToken(t, "other-secret", "user_1", domain.RoleUser),
		"expired":      expired,
	} {
		c, _ := newAuthContext("Bearer " + credential)
		handler := Auth(tokens)(func(c echo.Context) error {
			t.Fatalf("%s: should not reach next", name)
			return nil
		})

		he := rejection(t, handler(c))
		if he.Code != http.StatusUnauthorized {
			t.Fatalf("%s: expected 401, got %d", name, he.Code)
		}
		if he.Message != "Invalid or expired token" {
			t.Fatalf("%s: unexpected message: %v", name, he.Message)
		}
	}
}
