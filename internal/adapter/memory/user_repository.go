package memory

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"adsight/internal/core/domain"
	"adsight/internal/core/port"
)

// UserRepository implements port.UserRepository.
type UserRepository struct {
	mu         sync.RWMutex
	byID       map[uuid.UUID]domain.User
	byEmail    map[string]uuid.UUID
	byUsername map[string]uuid.UUID
}

// NewUserRepository returns an empty store.
func NewUserRepository() *UserRepository {
	return &UserRepository{
		byID:       make(map[uuid.UUID]domain.User),
		byEmail:    make(map[string]uuid.UUID),
		byUsername: make(map[string]uuid.UUID),
	}
}

// Create checks both unique keys and inserts under one lock, so two
// concurrent registrations with the same email cannot both succeed.
func (r *UserRepository) Create(_ context.Context, u *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byEmail[u.Email]; ok {
		return port.ErrDuplicateEmail
	}
	if _, ok := r.byUsername[u.Username]; ok {
		return port.ErrDuplicateUsername
	}
	r.byID[u.ID] = *u
	r.byEmail[u.Email] = u.ID
	r.byUsername[u.Username] = u.ID
	return nil
}

// GetByID returns (nil, nil) for an unknown id.
func (r *UserRepository) GetByID(_ context.Context, id uuid.UUID) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.get(id), nil
}

// GetByEmail looks a user up by normalised email.
func (r *UserRepository) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	id, ok := r.byEmail[email]
	if !ok {
		return nil, nil
	}
	return r.get(id), nil
}

// GetByUsername looks a user up by username.
func (r *UserRepository) GetByUsername(_ context.Context, username string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	id, ok := r.byUsername[username]
	if !ok {
		return nil, nil
	}
	return r.get(id), nil
}

func (r *UserRepository) get(id uuid.UUID) *domain.User {
	u, ok := r.byID[id]
	if !ok {
		return nil
	}
	return &u
}
