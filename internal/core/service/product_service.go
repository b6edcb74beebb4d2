package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/sellerhub/sellerhub-api/internal/core/domain"
	"github.com/sellerhub/sellerhub-api/internal/core/ports"
)

const (
	defaultPageSize = 10
	defaultSortBy   = "createdAt"
)

type ProductService struct {
	repo ports.ProductRepository
	log  zerolog.Logger
}

func NewProductService(repo ports.ProductRepository, log zerolog.Logger) *ProductService {
	return &ProductService{repo: repo, log: log}
}

func (s *ProductService) List(ctx context.Context, userID string) ([]domain.Product, error) {
	return s.repo.FindAllByUser(ctx, userID)
}

func (s *ProductService) Get(ctx context.Context, id, userID string) (*domain.Product, error) {
	return s.repo.FindByID(ctx, id, userID)
}

func (s *ProductService) Create(ctx context.Context, input ports.CreateProductInput) (*domain.Product, error) {
	now := time.Now().UTC()
	product := &domain.Product{
		UserID:      input.UserID,
		Name:        input.Name,
		Description: input.Description,
		Price:       input.Price,
		Stock:       input.Stock,
		Category:    input.Category,
		ImageURL:    input.ImageURL,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	created, err := s.repo.Create(ctx, product)
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("product_id", created.ID).Str("user_id", input.UserID).Msg("product created")
	return created, nil
}

func (s *ProductService) Update(ctx context.Context, id, userID string, update ports.ProductUpdate) (*domain.Product, error) {
	// Existence and ownership check first; the repo hides other sellers'
	// rows so a foreign id reads as not found.
	if _, err := s.repo.FindByID(ctx, id, userID); err != nil {
		return nil, err
	}
	return s.repo.Update(ctx, id, userID, update)
}

func (s *ProductService) Delete(ctx context.Context, id, userID string) error {
	if _, err := s.repo.FindByID(ctx, id, userID); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id, userID)
}

// Search applies sort and pagination defaults, then returns one page of the
// seller's catalog plus pagination metadata.
func (s *ProductService) Search(ctx context.Context, userID string, query ports.ProductQuery) (*ports.ProductPage, error) {
	if query.SortBy == "" {
		query.SortBy = defaultSortBy
	}
	if query.SortOrder == "" {
		query.SortOrder = "desc"
	}
	if query.Page < 1 {
		query.Page = 1
	}
	if query.Limit < 1 {
		query.Limit = defaultPageSize
	}

	items, total, err := s.repo.Search(ctx, userID, query)
	if err != nil {
		return nil, err
	}

	totalPages := total / query.Limit
	if total%query.Limit != 0 {
		totalPages++
	}

	return &ports.ProductPage{
		Items:      items,
		Total:      total,
		Page:       query.Page,
		Limit:      query.Limit,
		TotalPages: totalPages,
	}, nil
}
