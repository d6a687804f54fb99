package category

import (
	"context"

	"storefront-api/internal/domain"
)

type Repository interface {
	GetBySlug(ctx context.Context, slug string) (*domain.Category, error)
	GetByID(ctx context.Context, id int64) (*domain.Category, error)
	ListFacets(ctx context.Context, categoryID int64) ([]domain.MetadataFacet, error)
}
