package order

import (
	"context"
	"errors"
	"io"
	"log"

	"storefront-api/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type postgresRepo struct {
	pool   *pgxpool.Pool
	logger *log.Logger
}

func NewPostgres(pool *pgxpool.Pool, logger *log.Logger) Repository {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &postgresRepo{pool: pool, logger: logger}
}

const orderColumns = `id, status, total_cents, shipping_cost_cents, shipping_days,
shipping_zipcode, shipping_street, shipping_number, shipping_city, shipping_state,
shipping_country, COALESCE(shipping_complement, ''), user_id, created_at`

// CreateWithItems writes the order and its items in one transaction. The order
// row is inserted first so every item can reference its id; a failure on any
// item rolls back the whole order.
func (r *postgresRepo) CreateWithItems(ctx context.Context, in CreateInput) (*domain.Order, error) {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	const orderQ = `
INSERT INTO orders (status, total_cents, shipping_cost_cents, shipping_days,
	shipping_zipcode, shipping_street, shipping_number, shipping_city,
	shipping_state, shipping_country, shipping_complement, user_id)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, NULLIF($11, ''), $12)
RETURNING id, created_at
`
	o := domain.Order{
		Status:     domain.StatusPending,
		TotalCents: in.TotalCents,
		Shipping:   in.Shipping,
		UserID:     in.UserID,
	}
	err = tx.QueryRow(ctx, orderQ,
		domain.StatusPending,
		in.TotalCents,
		in.Shipping.CostCents,
		in.Shipping.Days,
		in.Shipping.Zipcode,
		in.Shipping.Street,
		in.Shipping.Number,
		in.Shipping.City,
		in.Shipping.State,
		in.Shipping.Country,
		in.Shipping.Complement,
		in.UserID,
	).Scan(&o.ID, &o.CreatedAt)
	if err != nil {
		r.logger.Printf("order repo: insert order user_id=%d error=%v", in.UserID, err)
		return nil, err
	}

	const itemQ = `
INSERT INTO order_items (order_id, product_id, quantity, price_cents)
VALUES ($1, $2, $3, $4)
RETURNING id
`
	for _, it := range in.Items {
		item := domain.OrderItem{
			OrderID:    o.ID,
			ProductID:  it.ProductID,
			Quantity:   it.Quantity,
			PriceCents: it.PriceCents,
		}
		if err := tx.QueryRow(ctx, itemQ, o.ID, it.ProductID, it.Quantity, it.PriceCents).Scan(&item.ID); err != nil {
			r.logger.Printf("order repo: insert item order_id=%d product_id=%d error=%v", o.ID, it.ProductID, err)
			return nil, err
		}
		o.Items = append(o.Items, item)

		if _, err := tx.Exec(ctx, `UPDATE products SET sales_count = sales_count + $1 WHERE id = $2`, it.Quantity, it.ProductID); err != nil {
			return nil, err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}
	r.logger.Printf("order repo: created id=%d user_id=%d items=%d total_cents=%d", o.ID, in.UserID, len(o.Items), in.TotalCents)
	return &o, nil
}

func (r *postgresRepo) ListByUser(ctx context.Context, userID int64) ([]domain.Order, error) {
	const q = `SELECT ` + orderColumns + ` FROM orders WHERE user_id = $1 ORDER BY created_at DESC`
	rows, err := r.pool.Query(ctx, q, userID)
	if err != nil {
		r.logger.Printf("order repo: list user_id=%d error=%v", userID, err)
		return nil, err
	}
	defer rows.Close()

	var result []domain.Order
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, o)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *postgresRepo) GetForUser(ctx context.Context, id, userID int64) (*domain.Order, error) {
	const q = `SELECT ` + orderColumns + ` FROM orders WHERE id = $1 AND user_id = $2`
	var o domain.Order
	err := r.pool.QueryRow(ctx, q, id, userID).Scan(
		&o.ID, &o.Status, &o.TotalCents, &o.Shipping.CostCents, &o.Shipping.Days,
		&o.Shipping.Zipcode, &o.Shipping.Street, &o.Shipping.Number, &o.Shipping.City,
		&o.Shipping.State, &o.Shipping.Country, &o.Shipping.Complement, &o.UserID, &o.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}

	const itemsQ = `
SELECT id, order_id, product_id, quantity, price_cents
FROM order_items
WHERE order_id = $1
ORDER BY id
`
	irows, err := r.pool.Query(ctx, itemsQ, o.ID)
	if err != nil {
		return nil, err
	}
	defer irows.Close()

	for irows.Next() {
		var it domain.OrderItem
		if err := irows.Scan(&it.ID, &it.OrderID, &it.ProductID, &it.Quantity, &it.PriceCents); err != nil {
			return nil, err
		}
		o.Items = append(o.Items, it)
	}
	if err := irows.Err(); err != nil {
		return nil, err
	}
	return &o, nil
}

func scanOrder(rows pgx.Rows) (domain.Order, error) {
	var o domain.Order
	err := rows.Scan(
		&o.ID, &o.Status, &o.TotalCents, &o.Shipping.CostCents, &o.Shipping.Days,
		&o.Shipping.Zipcode, &o.Shipping.Street, &o.Shipping.Number, &o.Shipping.City,
		&o.Shipping.State, &o.Shipping.Country, &o.Shipping.Complement, &o.UserID, &o.CreatedAt,
	)
	return o, err
}
