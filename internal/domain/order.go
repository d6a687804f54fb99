package domain

import "time"

// OrderStatus is the order lifecycle state. Orders are created as
// StatusPending; every later transition belongs to an external collaborator,
// never to this service.
type OrderStatus string

const (
	StatusPending    OrderStatus = "pending"
	StatusProcessing OrderStatus = "processing"
	StatusShipped    OrderStatus = "shipped"
	StatusDelivered  OrderStatus = "delivered"
	StatusCancelled  OrderStatus = "cancelled"
)

// Valid reports whether s is one of the known lifecycle states.
func (s OrderStatus) Valid() bool {
	switch s {
	case StatusPending, StatusProcessing, StatusShipped, StatusDelivered, StatusCancelled:
		return true
	}
	return false
}

// ShippingSnapshot is the denormalized copy of the delivery address stored on
// an order at creation time. Orders keep these fields even if the source
// address is later edited or deleted.
type ShippingSnapshot struct {
	CostCents  Cents  `json:"shippingCost"`
	Days       int    `json:"shippingDays"`
	Zipcode    string `json:"shippingZipcode"`
	Street     string `json:"shippingStreet"`
	Number     string `json:"shippingNumber"`
	City       string `json:"shippingCity"`
	State      string `json:"shippingState"`
	Country    string `json:"shippingCountry"`
	Complement string `json:"shippingComplement,omitempty"`
}

// SnapshotFromAddress copies the address fields that must survive on the order.
func SnapshotFromAddress(a Address, cost Cents, days int) ShippingSnapshot {
	return ShippingSnapshot{
		CostCents:  cost,
		Days:       days,
		Zipcode:    a.Zipcode,
		Street:     a.Street,
		Number:     a.Number,
		City:       a.City,
		State:      a.State,
		Country:    a.Country,
		Complement: a.Complement,
	}
}

type Order struct {
	ID         int64            `json:"id"`
	Status     OrderStatus      `json:"status"`
	TotalCents Cents            `json:"totalCents"`
	Shipping   ShippingSnapshot `json:"shipping"`
	UserID     int64            `json:"-"`
	Items      []OrderItem      `json:"items,omitempty"`
	CreatedAt  time.Time        `json:"createdAt"`
}

// OrderItem records quantity and unit price at purchase time. It never tracks
// the product's current price.
type OrderItem struct {
	ID         int64 `json:"id"`
	OrderID    int64 `json:"-"`
	ProductID  int64 `json:"productId"`
	Quantity   int   `json:"quantity"`
	PriceCents Cents `json:"priceCents"`
}
