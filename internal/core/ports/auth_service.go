package ports

import (
	"context"

	"github.com/sellerhub/sellerhub-api/internal/core/domain"
)

// RegisterInput carries the data needed to create a seller account.
type RegisterInput struct {
	Email    string
	Password string
	Name     string
}

type AuthService interface {
	Register(ctx context.Context, input RegisterInput) (*domain.User, error)
	// Login returns the bearer token and the authenticated user. Unknown
	// email and wrong password are indistinguishable to the caller.
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
}
