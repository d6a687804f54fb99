package address

import (
	"context"

	"storefront-api/internal/domain"
)

type Repository interface {
	Create(ctx context.Context, a domain.Address) (*domain.Address, error)
	ListByUser(ctx context.Context, userID int64) ([]domain.Address, error)
	// GetForUser scopes the lookup to the owner; an address belonging to
	// another user is domain.ErrNotFound, not an authorization error.
	GetForUser(ctx context.Context, id, userID int64) (*domain.Address, error)
}
