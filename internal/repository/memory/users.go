package memory

import (
	"context"

	"github.com/Domenick1991/airport-ops/internal/domain"
	"github.com/Domenick1991/airport-ops/internal/repository"
)

type userRepo struct {
	s *Store
}

func (r *userRepo) GetByID(_ context.Context, id int64) (*domain.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return getOne(r.s.users, id), nil
}

func (r *userRepo) GetByUsername(_ context.Context, username string) (*domain.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	for _, u := range r.s.users {
		if u.Username == username {
			return &u, nil
		}
	}
	return nil, nil
}

func (r *userRepo) Create(_ context.Context, username, passwordHash string) (*domain.User, error) {
	if username == "" {
		return nil, domain.NewValidationError("username", "is required")
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, u := range r.s.users {
		if u.Username == username {
			return nil, domain.NewValidationError("username", "already exists")
		}
	}
	u := domain.User{ID: r.s.nextUser, Username: username, PasswordHash: passwordHash}
	r.s.nextUser++
	r.s.users[u.ID] = u
	return &u, nil
}

var _ repository.UserRepository = (*userRepo)(nil)
