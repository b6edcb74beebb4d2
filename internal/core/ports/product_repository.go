package ports

import (
	"context"

	"github.com/sellerhub/sellerhub-api/internal/core/domain"
)

// ProductUpdate holds a partial update; nil fields are left untouched.
type ProductUpdate struct {
	Name        *string
	Description *string
	Price       *float64
	Stock       *int
	Category    *string
	ImageURL    *string
}

// Stock filter values accepted by ProductQuery.
const (
	StockFilterIn  = "inStock"
	StockFilterOut = "outOfStock"
	StockFilterAll = "all"
)

// ProductQuery describes a catalog search. Zero values mean "no filter";
// defaults for sorting and pagination are applied by the service.
type ProductQuery struct {
	Search      string
	Category    string
	MinPrice    *float64
	MaxPrice    *float64
	StockFilter string
	SortBy      string
	SortOrder   string
	Page        int64
	Limit       int64
}

// ProductPage is one page of search results plus pagination metadata.
type ProductPage struct {
	Items      []domain.Product
	Total      int64
	Page       int64
	Limit      int64
	TotalPages int64
}

// ProductRepository defines the interface for catalog persistence. Every
// method takes the owning seller's userID; rows belonging to other sellers
// are invisible (reported as domain.ErrProductNotFound, never as forbidden).
type ProductRepository interface {
	FindAllByUser(ctx context.Context, userID string) ([]domain.Product, error)
	FindByID(ctx context.Context, id, userID string) (*domain.Product, error)
	Create(ctx context.Context, product *domain.Product) (*domain.Product, error)
	Update(ctx context.Context, id, userID string, update ProductUpdate) (*domain.Product, error)
	Delete(ctx context.Context, id, userID string) error
	Search(ctx context.Context, userID string, query ProductQuery) ([]domain.Product, int64, error)
}
