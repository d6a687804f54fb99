package token

import (
	"context"
	"time"
)

type Token struct {
	Token     string
	UserID    int64
	ExpiresAt time.Time
}

type Repository interface {
	Create(ctx context.Context, t Token) error
	Get(ctx context.Context, token string) (*Token, error)
	Delete(ctx context.Context, token string) error
	// DeleteByUser revokes every token the user holds; login calls this so a
	// fresh login invalidates older sessions.
	DeleteByUser(ctx context.Context, userID int64) error
}
