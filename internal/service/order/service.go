package order

import (
	"context"

	"storefront-api/internal/domain"
	orderrepo "storefront-api/internal/repository/order"
	productrepo "storefront-api/internal/repository/product"
)

// Service reads orders scoped to their owner. Order creation lives in the
// cart service; status transitions belong to an external collaborator.
type Service struct {
	orders   orderrepo.Repository
	products productrepo.Repository
}

func New(orders orderrepo.Repository, products productrepo.Repository) *Service {
	return &Service{orders: orders, products: products}
}

func (s *Service) List(ctx context.Context, userID int64) ([]domain.Order, error) {
	return s.orders.ListByUser(ctx, userID)
}

// Get returns the order with its items plus current product summaries for
// display. Item prices stay the purchase-time snapshot regardless of what the
// products cost now.
func (s *Service) Get(ctx context.Context, id, userID int64) (*domain.Order, map[int64]domain.Product, error) {
	o, err := s.orders.GetForUser(ctx, id, userID)
	if err != nil {
		return nil, nil, err
	}

	ids := make([]int64, 0, len(o.Items))
	for _, it := range o.Items {
		ids = append(ids, it.ProductID)
	}
	byID := make(map[int64]domain.Product, len(ids))
	if len(ids) > 0 {
		products, err := s.products.ListByIDs(ctx, ids)
		if err != nil {
			return nil, nil, err
		}
		for _, p := range products {
			byID[p.ID] = p
		}
	}
	return o, byID, nil
}
