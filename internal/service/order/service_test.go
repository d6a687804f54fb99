package order

import (
	"context"
	"errors"
	"testing"

	"storefront-api/internal/domain"
	orderrepo "storefront-api/internal/repository/order"
	productrepo "storefront-api/internal/repository/product"
)

type memoryOrders struct {
	orders []domain.Order
}

func (r *memoryOrders) CreateWithItems(_ context.Context, _ orderrepo.CreateInput) (*domain.Order, error) {
	return nil, errors.New("not used")
}

func (r *memoryOrders) ListByUser(_ context.Context, userID int64) ([]domain.Order, error) {
	var out []domain.Order
	for _, o := range r.orders {
		if o.UserID == userID {
			out = append(out, o)
		}
	}
	return out, nil
}

func (r *memoryOrders) GetForUser(_ context.Context, id, userID int64) (*domain.Order, error) {
	for _, o := range r.orders {
		if o.ID == id && o.UserID == userID {
			clone := o
			return &clone, nil
		}
	}
	return nil, domain.ErrNotFound
}

type stubProducts struct {
	byID map[int64]domain.Product
}

func (r *stubProducts) List(_ context.Context, _ productrepo.ListFilter) ([]domain.Product, error) {
	return nil, nil
}

func (r *stubProducts) GetByID(_ context.Context, _ int64) (*domain.Product, error) {
	return nil, domain.ErrNotFound
}

func (r *stubProducts) GetAndCountView(_ context.Context, _ int64) (*domain.Product, error) {
	return nil, domain.ErrNotFound
}

func (r *stubProducts) ListRelated(_ context.Context, _, _ int64, _ int) ([]domain.Product, error) {
	return nil, nil
}

func (r *stubProducts) ListByIDs(_ context.Context, ids []int64) ([]domain.Product, error) {
	var out []domain.Product
	for _, id := range ids {
		if p, ok := r.byID[id]; ok {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *stubProducts) PricesByIDs(_ context.Context, _ []int64) (map[int64]domain.Cents, error) {
	return nil, nil
}

func newTestService() *Service {
	orders := &memoryOrders{orders: []domain.Order{
		{
			ID: 1, UserID: 7, Status: domain.StatusPending, TotalCents: 12500,
			Items: []domain.OrderItem{
				{ID: 1, OrderID: 1, ProductID: 1, Quantity: 2, PriceCents: 5000},
				{ID: 2, OrderID: 1, ProductID: 99, Quantity: 1, PriceCents: 2500},
			},
		},
		{ID: 2, UserID: 8, Status: domain.StatusShipped, TotalCents: 9900},
	}}
	products := &stubProducts{byID: map[int64]domain.Product{
		1: {ID: 1, Label: "Galaxy S24", PriceCents: 349900},
	}}
	return New(orders, products)
}

func TestList_ScopedToUser(t *testing.T) {
	svc := newTestService()

	mine, err := svc.List(context.Background(), 7)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(mine) != 1 || mine[0].ID != 1 {
		t.Fatalf("unexpected orders %+v", mine)
	}
}

func TestGet_ReturnsSnapshotPricesAndSummaries(t *testing.T) {
	svc := newTestService()

	o, products, err := svc.Get(context.Background(), 1, 7)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	// item price stays the purchase-time value, not the current catalog price
	if o.Items[0].PriceCents != 5000 {
		t.Fatalf("item price = %d, want snapshot 5000", o.Items[0].PriceCents)
	}
	if products[1].Label != "Galaxy S24" {
		t.Fatalf("missing product summary: %+v", products)
	}
	// product 99 no longer exists in the catalog; the order still renders
	if _, ok := products[99]; ok {
		t.Fatalf("deleted product should have no summary")
	}
}

func TestGet_OtherUsersOrderIsNotFound(t *testing.T) {
	svc := newTestService()

	if _, _, err := svc.Get(context.Background(), 2, 7); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound for foreign order, got %v", err)
	}
	if _, _, err := svc.Get(context.Background(), 999, 7); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound for missing order, got %v", err)
	}
}
