package user

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"storefront-api/internal/domain"
	addressrepo "storefront-api/internal/repository/address"
	userrepo "storefront-api/internal/repository/user"

	"golang.org/x/crypto/bcrypt"
)

var (
	// ErrInvalidCredentials is returned when email/password do not match.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrInvalidToken indicates the provided token could not be validated.
	ErrInvalidToken = errors.New("invalid token")
	// ErrEmailTaken indicates the email is already registered.
	ErrEmailTaken = errors.New("email already registered")
)

// Service handles registration, login and address management.
type Service struct {
	repo        userrepo.Repository
	addresses   addressrepo.Repository
	tokens      *tokenManager
	tokenTTL    time.Duration
	passwordMin int
}

// New creates a Service with sane defaults.
func New(repo userrepo.Repository, addresses addressrepo.Repository, tokens tokenRepo) *Service {
	return &Service{
		repo:        repo,
		addresses:   addresses,
		tokens:      newTokenManager(tokens),
		tokenTTL:    7 * 24 * time.Hour,
		passwordMin: 8,
	}
}

// RegisterInput captures fields expected by the register endpoint.
type RegisterInput struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Register creates a user with a bcrypt-hashed password.
func (s *Service) Register(ctx context.Context, in RegisterInput) (*domain.User, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, errors.New("name required")
	}
	email := strings.TrimSpace(strings.ToLower(in.Email))
	if email == "" {
		return nil, errors.New("email required")
	}
	// The password is hashed exactly as provided; trimming here would break
	// login, which compares the raw input.
	if len(in.Password) < s.passwordMin {
		return nil, fmt.Errorf("password must be at least %d characters", s.passwordMin)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	u, err := s.repo.Create(ctx, domain.User{
		Name:         name,
		Email:        email,
		PasswordHash: string(hashed),
	})
	if err != nil {
		if errors.Is(err, domain.ErrAlreadyExists) {
			return nil, ErrEmailTaken
		}
		return nil, err
	}
	return u, nil
}

// Login validates credentials, revokes any previous tokens and issues a fresh
// one with a 7-day lifetime.
func (s *Service) Login(ctx context.Context, email, password string) (*domain.User, string, error) {
	email = strings.TrimSpace(strings.ToLower(email))
	u, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, "", ErrInvalidCredentials
		}
		return nil, "", err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return nil, "", ErrInvalidCredentials
	}

	if err := s.tokens.RevokeAll(ctx, u.ID); err != nil {
		return nil, "", err
	}
	tok, err := s.tokens.Issue(ctx, u.ID, s.tokenTTL)
	if err != nil {
		return nil, "", err
	}
	return u, tok, nil
}

// LookupByToken returns the user bound to a valid, unexpired token.
func (s *Service) LookupByToken(ctx context.Context, tok string) (*domain.User, error) {
	userID, ok := s.tokens.Validate(ctx, tok)
	if !ok {
		return nil, ErrInvalidToken
	}
	u, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, ErrInvalidToken
		}
		return nil, err
	}
	return u, nil
}

// AddressInput mirrors incoming address payloads.
type AddressInput struct {
	Zipcode    string `json:"zipcode"`
	Street     string `json:"street"`
	Number     string `json:"number"`
	City       string `json:"city"`
	State      string `json:"state"`
	Country    string `json:"country"`
	Complement string `json:"complement"`
}

// AddAddress stores a new address owned by the user.
func (s *Service) AddAddress(ctx context.Context, userID int64, in AddressInput) (*domain.Address, error) {
	return s.addresses.Create(ctx, domain.Address{
		UserID:     userID,
		Zipcode:    strings.TrimSpace(in.Zipcode),
		Street:     strings.TrimSpace(in.Street),
		Number:     strings.TrimSpace(in.Number),
		City:       strings.TrimSpace(in.City),
		State:      strings.TrimSpace(in.State),
		Country:    strings.TrimSpace(in.Country),
		Complement: strings.TrimSpace(in.Complement),
	})
}

// ListAddresses returns the user's addresses.
func (s *Service) ListAddresses(ctx context.Context, userID int64) ([]domain.Address, error) {
	return s.addresses.ListByUser(ctx, userID)
}
