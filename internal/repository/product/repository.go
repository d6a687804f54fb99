package product

import (
	"context"

	"storefront-api/internal/domain"
)

// ListFilter narrows and orders the product listing. OrderBy accepts the
// client vocabulary (views, selling, price); anything else falls back to id.
type ListFilter struct {
	OrderBy  string
	Limit    int
	Metadata map[string]string
}

type Repository interface {
	List(ctx context.Context, f ListFilter) ([]domain.Product, error)
	GetByID(ctx context.Context, id int64) (*domain.Product, error)
	GetAndCountView(ctx context.Context, id int64) (*domain.Product, error)
	ListRelated(ctx context.Context, categoryID, excludeID int64, limit int) ([]domain.Product, error)
	ListByIDs(ctx context.Context, ids []int64) ([]domain.Product, error)
	PricesByIDs(ctx context.Context, ids []int64) (map[int64]domain.Cents, error)
}
