package banner

import (
	"context"

	"storefront-api/internal/domain"
)

type Repository interface {
	List(ctx context.Context) ([]domain.Banner, error)
}
