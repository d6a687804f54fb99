package httpserver

import (
	"context"
	"log"

	"storefront-api/internal/domain"
	productrepo "storefront-api/internal/repository/product"
	cartsvc "storefront-api/internal/service/cart"
	usersvc "storefront-api/internal/service/user"
)

type catalogService interface {
	ListProducts(ctx context.Context, f productrepo.ListFilter) ([]domain.Product, error)
	ProductDetail(ctx context.Context, id int64) (*domain.Product, *domain.Category, error)
	RelatedProducts(ctx context.Context, id int64, limit int) ([]domain.Product, *domain.Category, error)
	CategoryMetadata(ctx context.Context, slug string) (*domain.Category, []domain.MetadataFacet, error)
	ListBanners(ctx context.Context) ([]domain.Banner, error)
}

type cartService interface {
	Mount(ctx context.Context, ids []int64) ([]domain.Product, error)
	Checkout(ctx context.Context, user domain.User, in cartsvc.CheckoutInput) (*cartsvc.CheckoutResult, error)
}

type userService interface {
	Register(ctx context.Context, in usersvc.RegisterInput) (*domain.User, error)
	Login(ctx context.Context, email, password string) (*domain.User, string, error)
	LookupByToken(ctx context.Context, token string) (*domain.User, error)
	AddAddress(ctx context.Context, userID int64, in usersvc.AddressInput) (*domain.Address, error)
	ListAddresses(ctx context.Context, userID int64) ([]domain.Address, error)
}

type orderService interface {
	List(ctx context.Context, userID int64) ([]domain.Order, error)
	Get(ctx context.Context, id, userID int64) (*domain.Order, map[int64]domain.Product, error)
}

type shippingService interface {
	Quote(ctx context.Context, zipcode string) (domain.Cents, int, error)
}

type handlers struct {
	deps   Deps
	f      failer
	logger *log.Logger
}
