package order

import (
	"context"

	"storefront-api/internal/domain"
)

// ItemInput is one resolved cart line: product, quantity and the unit price
// captured at resolution time.
type ItemInput struct {
	ProductID  int64
	Quantity   int
	PriceCents domain.Cents
}

type CreateInput struct {
	UserID     int64
	TotalCents domain.Cents
	Shipping   domain.ShippingSnapshot
	Items      []ItemInput
}

type Repository interface {
	// CreateWithItems persists the order row and all item rows inside a
	// single transaction. Any failure leaves no order and no items behind.
	CreateWithItems(ctx context.Context, in CreateInput) (*domain.Order, error)
	ListByUser(ctx context.Context, userID int64) ([]domain.Order, error)
	GetForUser(ctx context.Context, id, userID int64) (*domain.Order, error)
}
