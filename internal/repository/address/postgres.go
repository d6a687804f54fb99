package address

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

const addressColumns = `id, user_id, zipcode, street, number, city, state, country, COALESCE(complement, '')`

func (r *postgresRepo) Create(ctx context.Context, a domain.Address) (*domain.Address, error) {
	const q = `
INSERT INTO addresses (user_id, zipcode, street, number, city, state, country, complement)
VALUES ($1, $2, $3, $4, $5, $6, $7, NULLIF($8, ''))
RETURNING id
`
	res := a
	err := r.pool.QueryRow(ctx, q, a.UserID, a.Zipcode, a.Street, a.Number, a.City, a.State, a.Country, a.Complement).Scan(&res.ID)
	if err != nil {
		return nil, err
	}
	return &res, nil
}

func (r *postgresRepo) ListByUser(ctx context.Context, userID int64) ([]domain.Address, error) {
	const q = `SELECT ` + addressColumns + ` FROM addresses WHERE user_id = $1 ORDER BY id`
	rows, err := r.pool.Query(ctx, q, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.Address
	for rows.Next() {
		var a domain.Address
		if err := rows.Scan(&a.ID, &a.UserID, &a.Zipcode, &a.Street, &a.Number, &a.City, &a.State, &a.Country, &a.Complement); err != nil {
			return nil, err
		}
		result = append(result, a)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *postgresRepo) GetForUser(ctx context.Context, id, userID int64) (*domain.Address, error) {
	const q = `SELECT ` + addressColumns + ` FROM addresses WHERE id = $1 AND user_id = $2`
	var a domain.Address
	err := r.pool.QueryRow(ctx, q, id, userID).Scan(&a.ID, &a.UserID, &a.Zipcode, &a.Street, &a.Number, &a.City, &a.State, &a.Country, &a.Complement)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &a, nil
}
