package seed

import (
	"context"
	"fmt"
	"log"

	"github.com/jackc/pgx/v5/pgxpool"
)

type categorySeed struct {
	Name   string
	Slug   string
	Facets []facetSeed
}

type facetSeed struct {
	ID     string
	Name   string
	Values []valueSeed
}

type valueSeed struct {
	ID    string
	Label string
}

type productSeed struct {
	Label        string
	Description  string
	PriceCents   int64
	CategorySlug string
	Images       []string
	Metadata     map[string]string
}

type bannerSeed struct {
	FilePath string
	Link     string
}

// Run inserts demo catalog data for manual testing. It is idempotent: rows
// keyed by slug or id use ON CONFLICT, products and banners are looked up
// before insert.
func Run(ctx context.Context, pool *pgxpool.Pool, logger *log.Logger) error {
	categories := []categorySeed{
		{
			Name: "Smartphones", Slug: "smartphones",
			Facets: []facetSeed{
				{
					ID: "smartphones-brand", Name: "Brand",
					Values: []valueSeed{
						{ID: "brand-apple", Label: "Apple"},
						{ID: "brand-samsung", Label: "Samsung"},
						{ID: "brand-motorola", Label: "Motorola"},
					},
				},
				{
					ID: "smartphones-storage", Name: "Storage",
					Values: []valueSeed{
						{ID: "storage-64", Label: "64 GB"},
						{ID: "storage-128", Label: "128 GB"},
						{ID: "storage-256", Label: "256 GB"},
					},
				},
			},
		},
		{
			Name: "Notebooks", Slug: "notebooks",
			Facets: []facetSeed{
				{
					ID: "notebooks-ram", Name: "Memory",
					Values: []valueSeed{
						{ID: "ram-8", Label: "8 GB"},
						{ID: "ram-16", Label: "16 GB"},
					},
				},
			},
		},
		{Name: "Accessories", Slug: "accessories"},
	}

	products := []productSeed{
		{
			Label:        "Galaxy S24",
			Description:  "6.2 inch display, 50MP camera",
			PriceCents:   349900,
			CategorySlug: "smartphones",
			Images:       []string{"products/galaxy-s24-front.jpg", "products/galaxy-s24-back.jpg"},
			Metadata:     map[string]string{"smartphones-brand": "brand-samsung", "smartphones-storage": "storage-128"},
		},
		{
			Label:        "iPhone 15",
			Description:  "A16 Bionic, USB-C",
			PriceCents:   499900,
			CategorySlug: "smartphones",
			Images:       []string{"products/iphone-15.jpg"},
			Metadata:     map[string]string{"smartphones-brand": "brand-apple", "smartphones-storage": "storage-128"},
		},
		{
			Label:        "Moto G84",
			Description:  "5000mAh battery, 256GB",
			PriceCents:   129900,
			CategorySlug: "smartphones",
			Images:       []string{"products/moto-g84.jpg"},
			Metadata:     map[string]string{"smartphones-brand": "brand-motorola", "smartphones-storage": "storage-256"},
		},
		{
			Label:        "ThinkPad E14",
			Description:  "Ryzen 7, 16GB RAM, 512GB SSD",
			PriceCents:   429900,
			CategorySlug: "notebooks",
			Images:       []string{"products/thinkpad-e14.jpg"},
			Metadata:     map[string]string{"notebooks-ram": "ram-16"},
		},
		{
			Label:        "USB-C Charger 65W",
			Description:  "GaN fast charger",
			PriceCents:   14900,
			CategorySlug: "accessories",
		},
	}

	banners := []bannerSeed{
		{FilePath: "banners/spring-sale.jpg", Link: "/category/smartphones"},
		{FilePath: "banners/notebooks.jpg", Link: "/category/notebooks"},
	}

	categoryIDs := make(map[string]int64, len(categories))
	for _, c := range categories {
		id, err := ensureCategory(ctx, pool, c)
		if err != nil {
			return fmt.Errorf("ensure category %s: %w", c.Slug, err)
		}
		categoryIDs[c.Slug] = id
	}

	for _, p := range products {
		if err := ensureProduct(ctx, pool, categoryIDs[p.CategorySlug], p); err != nil {
			return fmt.Errorf("ensure product %s: %w", p.Label, err)
		}
	}

	for _, b := range banners {
		if err := ensureBanner(ctx, pool, b); err != nil {
			return fmt.Errorf("ensure banner %s: %w", b.FilePath, err)
		}
	}

	logger.Printf("seeded %d categories, %d products, %d banners", len(categories), len(products), len(banners))
	return nil
}

func ensureCategory(ctx context.Context, pool *pgxpool.Pool, c categorySeed) (int64, error) {
	const q = `
INSERT INTO categories (name, slug)
VALUES ($1, $2)
ON CONFLICT (slug) DO UPDATE SET name = EXCLUDED.name
RETURNING id
`
	var id int64
	if err := pool.QueryRow(ctx, q, c.Name, c.Slug).Scan(&id); err != nil {
		return 0, err
	}

	for _, f := range c.Facets {
		const fq = `
INSERT INTO category_metadata (id, category_id, name)
VALUES ($1, $2, $3)
ON CONFLICT (id) DO UPDATE SET name = EXCLUDED.name
`
		if _, err := pool.Exec(ctx, fq, f.ID, id, f.Name); err != nil {
			return 0, fmt.Errorf("facet %s: %w", f.ID, err)
		}
		for _, v := range f.Values {
			const vq = `
INSERT INTO metadata_values (id, category_metadata_id, label)
VALUES ($1, $2, $3)
ON CONFLICT (id) DO UPDATE SET label = EXCLUDED.label
`
			if _, err := pool.Exec(ctx, vq, v.ID, f.ID, v.Label); err != nil {
				return 0, fmt.Errorf("value %s: %w", v.ID, err)
			}
		}
	}
	return id, nil
}

func ensureProduct(ctx context.Context, pool *pgxpool.Pool, categoryID int64, p productSeed) error {
	var id int64
	err := pool.QueryRow(ctx,
		`SELECT id FROM products WHERE label = $1 AND category_id = $2`,
		p.Label, categoryID,
	).Scan(&id)
	if err != nil {
		err = pool.QueryRow(ctx, `
INSERT INTO products (label, description, price_cents, category_id)
VALUES ($1, $2, $3, $4)
RETURNING id
`, p.Label, p.Description, p.PriceCents, categoryID).Scan(&id)
		if err != nil {
			return err
		}
		for i, url := range p.Images {
			if _, err := pool.Exec(ctx,
				`INSERT INTO product_images (product_id, url, position) VALUES ($1, $2, $3)`,
				id, url, i,
			); err != nil {
				return fmt.Errorf("image %s: %w", url, err)
			}
		}
	}

	for facetID, valueID := range p.Metadata {
		const mq = `
INSERT INTO product_metadata (product_id, category_metadata_id, metadata_value_id)
VALUES ($1, $2, $3)
ON CONFLICT (product_id, category_metadata_id) DO UPDATE SET metadata_value_id = EXCLUDED.metadata_value_id
`
		if _, err := pool.Exec(ctx, mq, id, facetID, valueID); err != nil {
			return fmt.Errorf("metadata %s: %w", facetID, err)
		}
	}
	return nil
}

func ensureBanner(ctx context.Context, pool *pgxpool.Pool, b bannerSeed) error {
	var exists bool
	if err := pool.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM banners WHERE file_path = $1)`, b.FilePath,
	).Scan(&exists); err != nil {
		return err
	}
	if exists {
		return nil
	}
	_, err := pool.Exec(ctx,
		`INSERT INTO banners (file_path, link) VALUES ($1, $2)`,
		b.FilePath, b.Link,
	)
	return err
}
