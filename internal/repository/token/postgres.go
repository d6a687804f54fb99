package token

import (
	"context"
	"errors"

	"storefront-api/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type postgresRepo struct {
	pool *pgxpool.Pool
}

func NewPostgres(pool *pgxpool.Pool) Repository {
	return &postgresRepo{pool: pool}
}

func (r *postgresRepo) Create(ctx context.Context, t Token) error {
	const q = `INSERT INTO tokens (token, user_id, expires_at) VALUES ($1, $2, $3)`
	_, err := r.pool.Exec(ctx, q, t.Token, t.UserID, t.ExpiresAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return domain.ErrAlreadyExists
		}
		return err
	}
	return nil
}

func (r *postgresRepo) Get(ctx context.Context, tok string) (*Token, error) {
	const q = `SELECT token, user_id, expires_at FROM tokens WHERE token = $1`
	var t Token
	err := r.pool.QueryRow(ctx, q, tok).Scan(&t.Token, &t.UserID, &t.ExpiresAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &t, nil
}

func (r *postgresRepo) Delete(ctx context.Context, tok string) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM tokens WHERE token = $1`, tok)
	return err
}

func (r *postgresRepo) DeleteByUser(ctx context.Context, userID int64) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM tokens WHERE user_id = $1`, userID)
	return err
}
