package user

import (
	"context"
	"errors"
	"testing"
	"time"

	"storefront-api/internal/domain"
	tokenrepo "storefront-api/internal/repository/token"
)

// memoryRepo is a lightweight in-memory user repository for tests.
type memoryRepo struct {
	byEmail map[string]domain.User
	nextID  int64
}

func newMemoryRepo() *memoryRepo {
	return &memoryRepo{byEmail: make(map[string]domain.User)}
}

func (r *memoryRepo) Create(_ context.Context, u domain.User) (*domain.User, error) {
	if _, exists := r.byEmail[u.Email]; exists {
		return nil, domain.ErrAlreadyExists
	}
	r.nextID++
	u.ID = r.nextID
	r.byEmail[u.Email] = u
	clone := u
	return &clone, nil
}

func (r *memoryRepo) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	if u, ok := r.byEmail[email]; ok {
		clone := u
		return &clone, nil
	}
	return nil, domain.ErrNotFound
}

func (r *memoryRepo) GetByID(_ context.Context, id int64) (*domain.User, error) {
	for _, u := range r.byEmail {
		if u.ID == id {
			clone := u
			return &clone, nil
		}
	}
	return nil, domain.ErrNotFound
}

type memoryAddressRepo struct {
	addresses []domain.Address
	nextID    int64
}

func (r *memoryAddressRepo) Create(_ context.Context, a domain.Address) (*domain.Address, error) {
	r.nextID++
	a.ID = r.nextID
	r.addresses = append(r.addresses, a)
	clone := a
	return &clone, nil
}

func (r *memoryAddressRepo) ListByUser(_ context.Context, userID int64) ([]domain.Address, error) {
	var out []domain.Address
	for _, a := range r.addresses {
		if a.UserID == userID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (r *memoryAddressRepo) GetForUser(_ context.Context, id, userID int64) (*domain.Address, error) {
	for _, a := range r.addresses {
		if a.ID == id && a.UserID == userID {
			clone := a
			return &clone, nil
		}
	}
	return nil, domain.ErrNotFound
}

type memoryTokenRepo struct {
	tokens map[string]tokenrepo.Token
}

func newMemoryTokenRepo() *memoryTokenRepo {
	return &memoryTokenRepo{tokens: make(map[string]tokenrepo.Token)}
}

func (r *memoryTokenRepo) Create(_ context.Context, t tokenrepo.Token) error {
	if _, exists := r.tokens[t.Token]; exists {
		return domain.ErrAlreadyExists
	}
	r.tokens[t.Token] = t
	return nil
}

func (r *memoryTokenRepo) Get(_ context.Context, token string) (*tokenrepo.Token, error) {
	t, ok := r.tokens[token]
	if !ok {
		return nil, domain.ErrNotFound
	}
	clone := t
	return &clone, nil
}

func (r *memoryTokenRepo) Delete(_ context.Context, token string) error {
	delete(r.tokens, token)
	return nil
}

func (r *memoryTokenRepo) DeleteByUser(_ context.Context, userID int64) error {
	for tok, t := range r.tokens {
		if t.UserID == userID {
			delete(r.tokens, tok)
		}
	}
	return nil
}

func newTestService() (*Service, *memoryTokenRepo) {
	tokens := newMemoryTokenRepo()
	return New(newMemoryRepo(), &memoryAddressRepo{}, tokens), tokens
}

func TestRegisterAndLogin(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	u, err := svc.Register(ctx, RegisterInput{
		Name:     "Test User",
		Email:    "User@Example.com",
		Password: "secret-pass",
	})
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if u.Email != "user@example.com" {
		t.Fatalf("email not normalized: %q", u.Email)
	}

	logged, token, err := svc.Login(ctx, "user@example.com", "secret-pass")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if logged.ID != u.ID || token == "" {
		t.Fatalf("unexpected login result user=%+v token=%q", logged, token)
	}

	found, err := svc.LookupByToken(ctx, token)
	if err != nil {
		t.Fatalf("lookup by token: %v", err)
	}
	if found.ID != u.ID {
		t.Fatalf("token resolved to user %d, want %d", found.ID, u.ID)
	}
}

func TestLogin_PasswordWithWhitespaceRoundTrips(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	password := "  padded-pass  "
	if _, err := svc.Register(ctx, RegisterInput{
		Name: "A", Email: "a@example.com", Password: password,
	}); err != nil {
		t.Fatalf("register: %v", err)
	}

	if _, _, err := svc.Login(ctx, "a@example.com", password); err != nil {
		t.Fatalf("login with the registered password: %v", err)
	}
	if _, _, err := svc.Login(ctx, "a@example.com", "padded-pass"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for trimmed variant, got %v", err)
	}
}

func TestRegister_EmailTaken(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	in := RegisterInput{Name: "A", Email: "dup@example.com", Password: "secret-pass"}
	if _, err := svc.Register(ctx, in); err != nil {
		t.Fatalf("first register: %v", err)
	}
	if _, err := svc.Register(ctx, in); !errors.Is(err, ErrEmailTaken) {
		t.Fatalf("expected ErrEmailTaken, got %v", err)
	}
}

func TestRegister_ShortPassword(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.Register(context.Background(), RegisterInput{
		Name:     "A",
		Email:    "a@example.com",
		Password: "short",
	})
	if err == nil {
		t.Fatalf("expected error for short password")
	}
}

func TestLogin_InvalidCredentials(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	if _, err := svc.Register(ctx, RegisterInput{
		Name: "A", Email: "a@example.com", Password: "secret-pass",
	}); err != nil {
		t.Fatalf("register: %v", err)
	}

	if _, _, err := svc.Login(ctx, "a@example.com", "wrongpass"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
	if _, _, err := svc.Login(ctx, "missing@example.com", "secret-pass"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for missing user, got %v", err)
	}
}

func TestLogin_RevokesPreviousTokens(t *testing.T) {
	svc, tokens := newTestService()
	ctx := context.Background()

	if _, err := svc.Register(ctx, RegisterInput{
		Name: "A", Email: "a@example.com", Password: "secret-pass",
	}); err != nil {
		t.Fatalf("register: %v", err)
	}

	_, first, err := svc.Login(ctx, "a@example.com", "secret-pass")
	if err != nil {
		t.Fatalf("first login: %v", err)
	}
	_, second, err := svc.Login(ctx, "a@example.com", "secret-pass")
	if err != nil {
		t.Fatalf("second login: %v", err)
	}

	if _, err := svc.LookupByToken(ctx, first); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected first token revoked, got %v", err)
	}
	if _, err := svc.LookupByToken(ctx, second); err != nil {
		t.Fatalf("second token should be valid: %v", err)
	}
	if len(tokens.tokens) != 1 {
		t.Fatalf("expected exactly one live token, got %d", len(tokens.tokens))
	}
}

func TestLookupByToken_Expired(t *testing.T) {
	svc, tokens := newTestService()
	ctx := context.Background()

	u, err := svc.Register(ctx, RegisterInput{
		Name: "A", Email: "a@example.com", Password: "secret-pass",
	})
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	tokens.tokens["stale"] = tokenrepo.Token{
		Token:     "stale",
		UserID:    u.ID,
		ExpiresAt: time.Now().Add(-time.Minute),
	}

	if _, err := svc.LookupByToken(ctx, "stale"); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken for expired token, got %v", err)
	}
	if _, ok := tokens.tokens["stale"]; ok {
		t.Fatalf("expired token should be deleted on validation")
	}
}

func TestAddresses(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	a, err := svc.AddAddress(ctx, 7, AddressInput{
		Zipcode: " 01310100 ",
		Street:  "Av Paulista",
		Number:  "1000",
		City:    "Sao Paulo",
		State:   "SP",
		Country: "BR",
	})
	if err != nil {
		t.Fatalf("add address: %v", err)
	}
	if a.Zipcode != "01310100" {
		t.Fatalf("zipcode not trimmed: %q", a.Zipcode)
	}

	mine, err := svc.ListAddresses(ctx, 7)
	if err != nil {
		t.Fatalf("list addresses: %v", err)
	}
	if len(mine) != 1 || mine[0].ID != a.ID {
		t.Fatalf("unexpected addresses %+v", mine)
	}

	other, err := svc.ListAddresses(ctx, 8)
	if err != nil {
		t.Fatalf("list addresses other user: %v", err)
	}
	if len(other) != 0 {
		t.Fatalf("addresses leaked across users: %+v", other)
	}
}
