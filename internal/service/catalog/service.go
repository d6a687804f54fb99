package catalog

import (
	"context"

	"storefront-api/internal/domain"
	bannerrepo "storefront-api/internal/repository/banner"
	categoryrepo "storefront-api/internal/repository/category"
	productrepo "storefront-api/internal/repository/product"
)

// Service exposes catalog reads: product listings, detail with view counting,
// related products, category metadata facets and banners.
type Service struct {
	products   productrepo.Repository
	categories categoryrepo.Repository
	banners    bannerrepo.Repository
}

func New(products productrepo.Repository, categories categoryrepo.Repository, banners bannerrepo.Repository) *Service {
	return &Service{products: products, categories: categories, banners: banners}
}

func (s *Service) ListBanners(ctx context.Context) ([]domain.Banner, error) {
	return s.banners.List(ctx)
}

func (s *Service) ListProducts(ctx context.Context, f productrepo.ListFilter) ([]domain.Product, error) {
	return s.products.List(ctx, f)
}

// ProductDetail returns the product with its category; the lookup increments
// the product's view counter as an observable side effect.
func (s *Service) ProductDetail(ctx context.Context, id int64) (*domain.Product, *domain.Category, error) {
	p, err := s.products.GetAndCountView(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	c, err := s.categories.GetByID(ctx, p.CategoryID)
	if err != nil {
		return nil, nil, err
	}
	return p, c, nil
}

// RelatedProducts lists products sharing the category, excluding the product
// itself.
func (s *Service) RelatedProducts(ctx context.Context, id int64, limit int) ([]domain.Product, *domain.Category, error) {
	p, err := s.products.GetByID(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	c, err := s.categories.GetByID(ctx, p.CategoryID)
	if err != nil {
		return nil, nil, err
	}
	related, err := s.products.ListRelated(ctx, p.CategoryID, p.ID, limit)
	if err != nil {
		return nil, nil, err
	}
	return related, c, nil
}

// CategoryMetadata returns the category identified by slug together with its
// filterable facets and their values.
func (s *Service) CategoryMetadata(ctx context.Context, slug string) (*domain.Category, []domain.MetadataFacet, error) {
	c, err := s.categories.GetBySlug(ctx, slug)
	if err != nil {
		return nil, nil, err
	}
	facets, err := s.categories.ListFacets(ctx, c.ID)
	if err != nil {
		return nil, nil, err
	}
	return c, facets, nil
}
