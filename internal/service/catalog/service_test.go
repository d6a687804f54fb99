package catalog

import (
	"context"
	"errors"
	"testing"

	"storefront-api/internal/domain"
	productrepo "storefront-api/internal/repository/product"
)

type memoryProducts struct {
	byID  map[int64]domain.Product
	views map[int64]int64
}

func (r *memoryProducts) List(_ context.Context, _ productrepo.ListFilter) ([]domain.Product, error) {
	out := make([]domain.Product, 0, len(r.byID))
	for _, p := range r.byID {
		out = append(out, p)
	}
	return out, nil
}

func (r *memoryProducts) GetByID(_ context.Context, id int64) (*domain.Product, error) {
	p, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	clone := p
	return &clone, nil
}

func (r *memoryProducts) GetAndCountView(ctx context.Context, id int64) (*domain.Product, error) {
	p, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	r.views[id]++
	p.ViewsCount = r.views[id]
	return p, nil
}

func (r *memoryProducts) ListRelated(_ context.Context, categoryID, excludeID int64, limit int) ([]domain.Product, error) {
	var out []domain.Product
	for _, p := range r.byID {
		if p.CategoryID == categoryID && p.ID != excludeID {
			out = append(out, p)
		}
		if limit > 0 && len(out) == limit {
			break
		}
	}
	return out, nil
}

func (r *memoryProducts) ListByIDs(_ context.Context, ids []int64) ([]domain.Product, error) {
	var out []domain.Product
	for _, id := range ids {
		if p, ok := r.byID[id]; ok {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *memoryProducts) PricesByIDs(_ context.Context, ids []int64) (map[int64]domain.Cents, error) {
	out := make(map[int64]domain.Cents)
	for _, id := range ids {
		if p, ok := r.byID[id]; ok {
			out[id] = p.PriceCents
		}
	}
	return out, nil
}

type memoryCategories struct {
	byID   map[int64]domain.Category
	facets map[int64][]domain.MetadataFacet
}

func (r *memoryCategories) GetBySlug(_ context.Context, slug string) (*domain.Category, error) {
	for _, c := range r.byID {
		if c.Slug == slug {
			clone := c
			return &clone, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *memoryCategories) GetByID(_ context.Context, id int64) (*domain.Category, error) {
	c, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	clone := c
	return &clone, nil
}

func (r *memoryCategories) ListFacets(_ context.Context, categoryID int64) ([]domain.MetadataFacet, error) {
	return r.facets[categoryID], nil
}

type memoryBanners struct {
	banners []domain.Banner
}

func (r *memoryBanners) List(_ context.Context) ([]domain.Banner, error) {
	return r.banners, nil
}

func newTestService() (*Service, *memoryProducts) {
	products := &memoryProducts{
		byID: map[int64]domain.Product{
			1: {ID: 1, Label: "Galaxy S24", PriceCents: 349900, CategoryID: 1},
			2: {ID: 2, Label: "iPhone 15", PriceCents: 499900, CategoryID: 1},
			3: {ID: 3, Label: "ThinkPad E14", PriceCents: 429900, CategoryID: 2},
		},
		views: make(map[int64]int64),
	}
	categories := &memoryCategories{
		byID: map[int64]domain.Category{
			1: {ID: 1, Name: "Smartphones", Slug: "smartphones"},
			2: {ID: 2, Name: "Notebooks", Slug: "notebooks"},
		},
		facets: map[int64][]domain.MetadataFacet{
			1: {{ID: "smartphones-brand", Name: "Brand", Values: []domain.MetadataValue{{ID: "brand-apple", Label: "Apple"}}}},
		},
	}
	return New(products, categories, &memoryBanners{}), products
}

func TestProductDetail_CountsView(t *testing.T) {
	svc, products := newTestService()
	ctx := context.Background()

	p, c, err := svc.ProductDetail(ctx, 1)
	if err != nil {
		t.Fatalf("detail: %v", err)
	}
	if p.ViewsCount != 1 {
		t.Fatalf("views = %d after first view, want 1", p.ViewsCount)
	}
	if c.Slug != "smartphones" {
		t.Fatalf("unexpected category %+v", c)
	}

	p, _, err = svc.ProductDetail(ctx, 1)
	if err != nil {
		t.Fatalf("second detail: %v", err)
	}
	if p.ViewsCount != 2 {
		t.Fatalf("views = %d after second view, want 2", p.ViewsCount)
	}
	if products.views[2] != 0 {
		t.Fatalf("other product's views touched: %d", products.views[2])
	}
}

func TestProductDetail_NotFound(t *testing.T) {
	svc, _ := newTestService()

	_, _, err := svc.ProductDetail(context.Background(), 999)
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestRelatedProducts_SameCategoryExcludingSelf(t *testing.T) {
	svc, _ := newTestService()

	related, c, err := svc.RelatedProducts(context.Background(), 1, 0)
	if err != nil {
		t.Fatalf("related: %v", err)
	}
	if c.ID != 1 {
		t.Fatalf("unexpected category %+v", c)
	}
	if len(related) != 1 || related[0].ID != 2 {
		t.Fatalf("unexpected related products %+v", related)
	}
}

func TestCategoryMetadata(t *testing.T) {
	svc, _ := newTestService()

	c, facets, err := svc.CategoryMetadata(context.Background(), "smartphones")
	if err != nil {
		t.Fatalf("metadata: %v", err)
	}
	if c.ID != 1 || len(facets) != 1 || facets[0].Name != "Brand" {
		t.Fatalf("unexpected result category=%+v facets=%+v", c, facets)
	}

	if _, _, err := svc.CategoryMetadata(context.Background(), "missing"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
