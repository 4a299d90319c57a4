package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/Domenick1991/airport-ops/internal/domain"
	"github.com/Domenick1991/airport-ops/internal/repository"
	"golang.org/x/crypto/bcrypt"
)

type AuthUseCase interface {
	Register(ctx context.Context, creds domain.Credentials) (*domain.User, error)
	Login(ctx context.Context, creds domain.Credentials) (*domain.User, error)
	GetUser(ctx context.Context, id int64) (*domain.User, error)
}

type AuthService struct {
	users repository.UserRepository
	cost  int
}

// NewAuthService hashes passwords with the given bcrypt cost; out of range
// values fall back to bcrypt.DefaultCost.
func NewAuthService(users repository.UserRepository, cost int) *AuthService {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &AuthService{users: users, cost: cost}
}

func HashPassword(plain string, cost int) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), cost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}

func VerifyPassword(hash, plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}

func (s *AuthService) Register(ctx context.Context, creds domain.Credentials) (*domain.User, error) {
	if err := creds.Validate(); err != nil {
		return nil, err
	}
	existing, err := s.users.GetByUsername(ctx, creds.Username)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.NewValidationError("username", "already exists")
	}
	hash, err := HashPassword(creds.Password, s.cost)
	if err != nil {
		return nil, err
	}
	return s.users.Create(ctx, creds.Username, hash)
}

func (s *AuthService) Login(ctx context.Context, creds domain.Credentials) (*domain.User, error) {
	user, err := s.users.GetByUsername(ctx, creds.Username)
	if err != nil {
		return nil, err
	}
	if user == nil || !VerifyPassword(user.PasswordHash, creds.Password) {
		return nil, domain.ErrInvalidCredentials
	}
	return user, nil
}

func (s *AuthService) GetUser(ctx context.Context, id int64) (*domain.User, error) {
	return s.users.GetByID(ctx, id)
}

// IsInvalidCredentials reports whether err is a failed login.
func IsInvalidCredentials(err error) bool {
	return errors.Is(err, domain.ErrInvalidCredentials)
}

var _ AuthUseCase = (*AuthService)(nil)
