package product

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"strings"

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

const productColumns = `id, label, COALESCE(description, ''), price_cents, views_count, sales_count, category_id, created_at`

func (r *postgresRepo) List(ctx context.Context, f ListFilter) ([]domain.Product, error) {
	var b strings.Builder
	b.WriteString(`SELECT ` + productColumns + ` FROM products p`)

	var args []interface{}
	// One EXISTS subquery per metadata facet/value pair.
	var conds []string
	for facetID, valueID := range f.Metadata {
		args = append(args, facetID, valueID)
		conds = append(conds, fmt.Sprintf(`EXISTS (
SELECT 1 FROM product_metadata pm
WHERE pm.product_id = p.id AND pm.category_metadata_id = $%d AND pm.metadata_value_id = $%d)`, len(args)-1, len(args)))
	}
	if len(conds) > 0 {
		b.WriteString(" WHERE " + strings.Join(conds, " AND "))
	}

	switch f.OrderBy {
	case "views":
		b.WriteString(" ORDER BY views_count DESC")
	case "selling":
		b.WriteString(" ORDER BY sales_count DESC")
	case "price":
		b.WriteString(" ORDER BY price_cents DESC")
	default:
		b.WriteString(" ORDER BY id ASC")
	}
	if f.Limit > 0 {
		args = append(args, f.Limit)
		fmt.Fprintf(&b, " LIMIT $%d", len(args))
	}

	rows, err := r.pool.Query(ctx, b.String(), args...)
	if err != nil {
		r.logger.Printf("product repo: list error=%v", err)
		return nil, err
	}
	products, err := scanProducts(rows)
	if err != nil {
		return nil, err
	}
	if err := r.loadImages(ctx, products); err != nil {
		return nil, err
	}
	return products, nil
}

func (r *postgresRepo) GetByID(ctx context.Context, id int64) (*domain.Product, error) {
	const q = `SELECT ` + productColumns + ` FROM products WHERE id = $1`
	return r.getOne(ctx, q, id)
}

// GetAndCountView fetches the product and bumps its view counter in a single
// statement, so two concurrent detail requests each count.
func (r *postgresRepo) GetAndCountView(ctx context.Context, id int64) (*domain.Product, error) {
	const q = `
UPDATE products
SET views_count = views_count + 1
WHERE id = $1
RETURNING ` + productColumns
	return r.getOne(ctx, q, id)
}

func (r *postgresRepo) getOne(ctx context.Context, q string, id int64) (*domain.Product, error) {
	var p domain.Product
	err := r.pool.QueryRow(ctx, q, id).Scan(
		&p.ID, &p.Label, &p.Description, &p.PriceCents, &p.ViewsCount, &p.SalesCount, &p.CategoryID, &p.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		r.logger.Printf("product repo: get id=%d error=%v", id, err)
		return nil, err
	}
	list := []domain.Product{p}
	if err := r.loadImages(ctx, list); err != nil {
		return nil, err
	}
	return &list[0], nil
}

func (r *postgresRepo) ListRelated(ctx context.Context, categoryID, excludeID int64, limit int) ([]domain.Product, error) {
	q := `SELECT ` + productColumns + ` FROM products WHERE category_id = $1 AND id <> $2 ORDER BY id ASC`
	args := []interface{}{categoryID, excludeID}
	if limit > 0 {
		args = append(args, limit)
		q += fmt.Sprintf(" LIMIT $%d", len(args))
	}
	rows, err := r.pool.Query(ctx, q, args...)
	if err != nil {
		r.logger.Printf("product repo: related category_id=%d error=%v", categoryID, err)
		return nil, err
	}
	products, err := scanProducts(rows)
	if err != nil {
		return nil, err
	}
	if err := r.loadImages(ctx, products); err != nil {
		return nil, err
	}
	return products, nil
}

func (r *postgresRepo) ListByIDs(ctx context.Context, ids []int64) ([]domain.Product, error) {
	const q = `SELECT ` + productColumns + ` FROM products WHERE id = ANY($1) ORDER BY id ASC`
	rows, err := r.pool.Query(ctx, q, ids)
	if err != nil {
		r.logger.Printf("product repo: list by ids error=%v", err)
		return nil, err
	}
	products, err := scanProducts(rows)
	if err != nil {
		return nil, err
	}
	if err := r.loadImages(ctx, products); err != nil {
		return nil, err
	}
	return products, nil
}

// PricesByIDs resolves authoritative unit prices in one batched read.
func (r *postgresRepo) PricesByIDs(ctx context.Context, ids []int64) (map[int64]domain.Cents, error) {
	const q = `SELECT id, price_cents FROM products WHERE id = ANY($1)`
	rows, err := r.pool.Query(ctx, q, ids)
	if err != nil {
		r.logger.Printf("product repo: prices error=%v", err)
		return nil, err
	}
	defer rows.Close()

	prices := make(map[int64]domain.Cents, len(ids))
	for rows.Next() {
		var id int64
		var price domain.Cents
		if err := rows.Scan(&id, &price); err != nil {
			return nil, err
		}
		prices[id] = price
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return prices, nil
}

func (r *postgresRepo) loadImages(ctx context.Context, products []domain.Product) error {
	if len(products) == 0 {
		return nil
	}
	ids := make([]int64, len(products))
	byID := make(map[int64]*domain.Product, len(products))
	for i := range products {
		ids[i] = products[i].ID
		byID[products[i].ID] = &products[i]
	}

	const q = `
SELECT id, product_id, url, position
FROM product_images
WHERE product_id = ANY($1)
ORDER BY product_id, position, id
`
	rows, err := r.pool.Query(ctx, q, ids)
	if err != nil {
		r.logger.Printf("product repo: load images error=%v", err)
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var img domain.ProductImage
		if err := rows.Scan(&img.ID, &img.ProductID, &img.URL, &img.Position); err != nil {
			return err
		}
		if p, ok := byID[img.ProductID]; ok {
			p.Images = append(p.Images, img)
		}
	}
	return rows.Err()
}

func scanProducts(rows pgx.Rows) ([]domain.Product, error) {
	defer rows.Close()
	var result []domain.Product
	for rows.Next() {
		var p domain.Product
		if err := rows.Scan(&p.ID, &p.Label, &p.Description, &p.PriceCents, &p.ViewsCount, &p.SalesCount, &p.CategoryID, &p.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}
