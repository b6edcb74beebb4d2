package ports

import (
	"context"

	"github.com/sellerhub/sellerhub-api/internal/core/domain"
)

// CreateProductInput carries the data for a new catalog entry.
type CreateProductInput struct {
	UserID      string
	Name        string
	Description string
	Price       float64
	Stock       int
	Category    string
	ImageURL    string
}

type ProductService interface {
	List(ctx context.Context, userID string) ([]domain.Product, error)
	Get(ctx context.Context, id, userID string) (*domain.Product, error)
	Create(ctx context.Context, input CreateProductInput) (*domain.Product, error)
	Update(ctx context.Context, id, userID string, update ProductUpdate) (*domain.Product, error)
	Delete(ctx context.Context, id, userID string) error
	Search(ctx context.Context, userID string, query ProductQuery) (*ProductPage, error)
}
