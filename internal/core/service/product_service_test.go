package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/sellerhub/sellerhub-api/internal/core/domain"
	"github.com/sellerhub/sellerhub-api/internal/core/ports"
)

type stubProductRepo struct {
	products  map[string]*domain.Product
	nextID    int
	lastQuery ports.ProductQuery
}

func newStubProductRepo() *stubProductRepo {
	return &stubProductRepo{products: make(map[string]*domain.Product)}
}

func (r *stubProductRepo) FindAllByUser(_ context.Context, userID string) ([]domain.Product, error) {
	out := []domain.Product{}
	for _, p := range r.products {
		if p.UserID == userID {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (r *stubProductRepo) FindByID(_ context.Context, id, userID string) (*domain.Product, error) {
	p, ok := r.products[id]
	if !ok || p.UserID != userID {
		return nil, domain.ErrProductNotFound
	}
	clone := *p
	return &clone, nil
}

func (r *stubProductRepo) Create(_ context.Context, product *domain.Product) (*domain.Product, error) {
	r.nextID++
	clone := *product
	clone.ID = "prod_" + string(rune('0'+r.nextID))
	r.products[clone.ID] = &clone
	out := clone
	return &out, nil
}

func (r *stubProductRepo) Update(_ context.Context, id, userID string, update ports.ProductUpdate) (*domain.Product, error) {
	p, ok := r.products[id]
	if !ok || p.UserID != userID {
		return nil, domain.ErrProductNotFound
	}
	if update.Name != nil {
		p.Name = *update.Name
	}
	if update.Price != nil {
		p.Price = *update.Price
	}
	clone := *p
	return &clone, nil
}

func (r *stubProductRepo) Delete(_ context.Context, id, userID string) error {
	p, ok := r.products[id]
	if !ok || p.UserID != userID {
		return domain.ErrProductNotFound
	}
	delete(r.products, id)
	return nil
}

func (r *stubProductRepo) Search(_ context.Context, userID string, query ports.ProductQuery) ([]domain.Product, int64, error) {
	r.lastQuery = query
	items, _ := r.FindAllByUser(context.Background(), userID)
	return items, int64(len(items)), nil
}

func TestProductService_CreateAndGet(t *testing.T) {
	repo := newStubProductRepo()
	svc := NewProductService(repo, zerolog.Nop())

	created, err := svc.Create(context.Background(), ports.CreateProductInput{
		UserID: "user_1",
		Name:   "Widget",
		Price:  9.99,
		Stock:  3,
	})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if created.ID == "" {
		t.Fatalf("expected assigned id")
	}
	if created.CreatedAt.IsZero() || created.UpdatedAt.IsZero() {
		t.Fatalf("expected timestamps to be set")
	}

	got, err := svc.Get(context.Background(), created.ID, "user_1")
	if err != nil {
		t.Fatalf("Get returned error: %v", err)
	}
	if got.Name != "Widget" {
		t.Fatalf("unexpected product: %+v", got)
	}
}

// Another seller's id must read as not found, not as forbidden.
func TestProductService_TenantIsolation(t *testing.T) {
	repo := newStubProductRepo()
	svc := NewProductService(repo, zerolog.Nop())

	created, err := svc.Create(context.Background(), ports.CreateProductInput{UserID: "user_1", Name: "Widget"})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	if _, err := svc.Get(context.Background(), created.ID, "user_2"); !errors.Is(err, domain.ErrProductNotFound) {
		t.Fatalf("expected ErrProductNotFound for foreign seller, got %v", err)
	}
	name := "Stolen"
	if _, err := svc.Update(context.Background(), created.ID, "user_2", ports.ProductUpdate{Name: &name}); !errors.Is(err, domain.ErrProductNotFound) {
		t.Fatalf("expected ErrProductNotFound on foreign update, got %v", err)
	}
	if err := svc.Delete(context.Background(), created.ID, "user_2"); !errors.Is(err, domain.ErrProductNotFound) {
		t.Fatalf("expected ErrProductNotFound on foreign delete, got %v", err)
	}
}

func TestProductService_SearchDefaults(t *testing.T) {
	repo := newStubProductRepo()
	svc := NewProductService(repo, zerolog.Nop())

	page, err := svc.Search(context.Background(), "user_1", ports.ProductQuery{})
	if err != nil {
		t.Fatalf("Search returned error: %v", err)
	}
	if page.Page != 1 || page.Limit != 10 {
		t.Fatalf("expected default pagination 1/10, got %d/%d", page.Page, page.Limit)
	}
	if repo.lastQuery.SortBy != "createdAt" || repo.lastQuery.SortOrder != "desc" {
		t.Fatalf("expected default sort createdAt/desc, got %s/%s", repo.lastQuery.SortBy, repo.lastQuery.SortOrder)
	}
}

func TestProductService_SearchTotalPages(t *testing.T) {
	repo := newStubProductRepo()
	svc := NewProductService(repo, zerolog.Nop())

	for i := 0; i < 7; i++ {
		if _, err := svc.Create(context.Background(), ports.CreateProductInput{UserID: "user_1", Name: "P"}); err != nil {
			t.Fatalf("Create returned error: %v", err)
		}
	}

	page, err := svc.Search(context.Background(), "user_1", ports.ProductQuery{Limit: 3})
	if err != nil {
		t.Fatalf("Search returned error: %v", err)
	}
	if page.Total != 7 {
		t.Fatalf("expected total 7, got %d", page.Total)
	}
	if page.TotalPages != 3 {
		t.Fatalf("expected 3 pages for 7 items at limit 3, got %d", page.TotalPages)
	}
}
