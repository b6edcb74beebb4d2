package ports

import (
	"context"

	"github.com/sellerhub/sellerhub-api/internal/core/domain"
)

// UserRepository defines the interface for seller account persistence.
type UserRepository interface {
	// FindByEmail returns domain.ErrUserNotFound when no account matches.
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	// Create persists a new account. A unique-email violation is reported
	// as *domain.DuplicateEmailError.
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
}
