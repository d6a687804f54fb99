package category

import (
	"context"
	"errors"

	"storefront-api/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type postgresRepo struct {
	pool *pgxpool.Pool
}

func NewPostgres(pool *pgxpool.Pool) Repository {
	return &postgresRepo{pool: pool}
}

func (r *postgresRepo) GetBySlug(ctx context.Context, slug string) (*domain.Category, error) {
	const q = `SELECT id, name, slug, created_at FROM categories WHERE slug = $1`
	return r.getOne(ctx, q, slug)
}

func (r *postgresRepo) GetByID(ctx context.Context, id int64) (*domain.Category, error) {
	const q = `SELECT id, name, slug, created_at FROM categories WHERE id = $1`
	return r.getOne(ctx, q, id)
}

func (r *postgresRepo) getOne(ctx context.Context, q string, arg interface{}) (*domain.Category, error) {
	var c domain.Category
	err := r.pool.QueryRow(ctx, q, arg).Scan(&c.ID, &c.Name, &c.Slug, &c.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &c, nil
}

// ListFacets returns the category's metadata facets with their values, values
// grouped under their facet in a single pass over two ordered queries.
func (r *postgresRepo) ListFacets(ctx context.Context, categoryID int64) ([]domain.MetadataFacet, error) {
	const facetsQ = `
SELECT id, category_id, name
FROM category_metadata
WHERE category_id = $1
ORDER BY id
`
	rows, err := r.pool.Query(ctx, facetsQ, categoryID)
	if err != nil {
		return nil, err
	}

	var facets []domain.MetadataFacet
	byID := map[string]int{}
	for rows.Next() {
		var f domain.MetadataFacet
		if err := rows.Scan(&f.ID, &f.CategoryID, &f.Name); err != nil {
			rows.Close()
			return nil, err
		}
		f.Values = []domain.MetadataValue{}
		byID[f.ID] = len(facets)
		facets = append(facets, f)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(facets) == 0 {
		return facets, nil
	}

	const valuesQ = `
SELECT v.id, v.category_metadata_id, v.label
FROM metadata_values v
JOIN category_metadata m ON m.id = v.category_metadata_id
WHERE m.category_id = $1
ORDER BY v.id
`
	vrows, err := r.pool.Query(ctx, valuesQ, categoryID)
	if err != nil {
		return nil, err
	}
	defer vrows.Close()

	for vrows.Next() {
		var v domain.MetadataValue
		if err := vrows.Scan(&v.ID, &v.FacetID, &v.Label); err != nil {
			return nil, err
		}
		if idx, ok := byID[v.FacetID]; ok {
			facets[idx].Values = append(facets[idx].Values, v)
		}
	}
	if err := vrows.Err(); err != nil {
		return nil, err
	}
	return facets, nil
}
