package user

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"time"

	"storefront-api/internal/domain"
	tokenrepo "storefront-api/internal/repository/token"
)

type tokenRepo interface {
	Create(ctx context.Context, t tokenrepo.Token) error
	Get(ctx context.Context, token string) (*tokenrepo.Token, error)
	Delete(ctx context.Context, token string) error
	DeleteByUser(ctx context.Context, userID int64) error
}

type tokenManager struct {
	repo tokenRepo
}

func newTokenManager(repo tokenRepo) *tokenManager {
	return &tokenManager{repo: repo}
}

func (m *tokenManager) Issue(ctx context.Context, userID int64, ttl time.Duration) (string, error) {
	expiresAt := time.Now().Add(ttl)
	for i := 0; i < 5; i++ {
		tok, err := randomToken()
		if err != nil {
			return "", err
		}
		err = m.repo.Create(ctx, tokenrepo.Token{
			Token:     tok,
			UserID:    userID,
			ExpiresAt: expiresAt,
		})
		if err == nil {
			return tok, nil
		}
		if errors.Is(err, domain.ErrAlreadyExists) {
			continue
		}
		return "", err
	}
	return "", errors.New("token collision")
}

func (m *tokenManager) Validate(ctx context.Context, tok string) (int64, bool) {
	meta, err := m.repo.Get(ctx, tok)
	if err != nil {
		return 0, false
	}
	if time.Now().After(meta.ExpiresAt) {
		_ = m.repo.Delete(ctx, tok)
		return 0, false
	}
	return meta.UserID, true
}

func (m *tokenManager) RevokeAll(ctx context.Context, userID int64) error {
	return m.repo.DeleteByUser(ctx, userID)
}

func randomToken() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}
