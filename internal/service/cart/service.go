package cart

import (
	"context"
	"errors"
	"fmt"

	"storefront-api/internal/domain"
	orderrepo "storefront-api/internal/repository/order"

	"github.com/google/uuid"
)

// ErrEmptyCart rejects a checkout with no lines.
var ErrEmptyCart = errors.New("cart must contain at least one item")

type productRepo interface {
	ListByIDs(ctx context.Context, ids []int64) ([]domain.Product, error)
	PricesByIDs(ctx context.Context, ids []int64) (map[int64]domain.Cents, error)
}

type orderRepo interface {
	CreateWithItems(ctx context.Context, in orderrepo.CreateInput) (*domain.Order, error)
}

type addressRepo interface {
	GetForUser(ctx context.Context, id, userID int64) (*domain.Address, error)
}

type shippingQuoter interface {
	Quote(ctx context.Context, zipcode string) (domain.Cents, int, error)
}

// Service owns the order-placement workflow: cart resolution against
// authoritative catalog prices, total computation in minor units, and
// transactional order materialization.
type Service struct {
	products        productRepo
	orders          orderRepo
	addresses       addressRepo
	shipping        shippingQuoter
	checkoutBaseURL string
}

func New(products productRepo, orders orderRepo, addresses addressRepo, shipping shippingQuoter, checkoutBaseURL string) *Service {
	return &Service{
		products:        products,
		orders:          orders,
		addresses:       addresses,
		shipping:        shipping,
		checkoutBaseURL: checkoutBaseURL,
	}
}

// Line is a transient cart entry. It carries no price: prices come from the
// catalog only.
type Line struct {
	ProductID int64 `json:"productId"`
	Quantity  int   `json:"quantity"`
}

type CheckoutInput struct {
	Cart      []Line `json:"cart"`
	AddressID int64  `json:"addressId"`
}

type CheckoutResult struct {
	Order       *domain.Order
	CheckoutURL string
}

// Checkout places an order for the authenticated user. Every validation
// happens before the first write; the write itself is one transaction.
func (s *Service) Checkout(ctx context.Context, user domain.User, in CheckoutInput) (*CheckoutResult, error) {
	if len(in.Cart) == 0 {
		return nil, ErrEmptyCart
	}
	for _, line := range in.Cart {
		if line.Quantity <= 0 {
			return nil, &domain.InvalidQuantityError{ProductID: line.ProductID, Quantity: line.Quantity}
		}
	}

	addr, err := s.addresses.GetForUser(ctx, in.AddressID, user.ID)
	if err != nil {
		return nil, err
	}

	resolved, total, err := s.Resolve(ctx, in.Cart)
	if err != nil {
		return nil, err
	}

	cost, days, err := s.shipping.Quote(ctx, addr.Zipcode)
	if err != nil {
		return nil, err
	}

	created, err := s.orders.CreateWithItems(ctx, orderrepo.CreateInput{
		UserID:     user.ID,
		TotalCents: total,
		Shipping:   domain.SnapshotFromAddress(*addr, cost, days),
		Items:      resolved,
	})
	if err != nil {
		return nil, err
	}

	return &CheckoutResult{
		Order:       created,
		CheckoutURL: fmt.Sprintf("%s/pay/cs_%s", s.checkoutBaseURL, uuid.NewString()),
	}, nil
}

// Resolve looks up authoritative unit prices for the cart lines in a single
// batched read and computes the order total in integer minor units. A line
// whose product id is absent fails the whole cart.
func (s *Service) Resolve(ctx context.Context, lines []Line) ([]orderrepo.ItemInput, domain.Cents, error) {
	ids := make([]int64, 0, len(lines))
	seen := make(map[int64]bool, len(lines))
	for _, line := range lines {
		if !seen[line.ProductID] {
			seen[line.ProductID] = true
			ids = append(ids, line.ProductID)
		}
	}

	prices, err := s.products.PricesByIDs(ctx, ids)
	if err != nil {
		return nil, 0, err
	}

	items := make([]orderrepo.ItemInput, 0, len(lines))
	var total domain.Cents
	for _, line := range lines {
		price, ok := prices[line.ProductID]
		if !ok {
			return nil, 0, &domain.UnknownProductError{ProductID: line.ProductID}
		}
		items = append(items, orderrepo.ItemInput{
			ProductID:  line.ProductID,
			Quantity:   line.Quantity,
			PriceCents: price,
		})
		total += price * domain.Cents(line.Quantity)
	}
	return items, total, nil
}

// Mount resolves authoritative product data for the given ids, for the
// client-side cart view. Unknown ids are simply not in the result.
func (s *Service) Mount(ctx context.Context, ids []int64) ([]domain.Product, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	return s.products.ListByIDs(ctx, ids)
}
