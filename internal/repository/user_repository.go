package repository

import (
	"context"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/dnu-connect/tutorconnect/internal/models"
)

// UserRepository is the authoritative registry of all users, keyed by id.
type UserRepository struct {
	mu    sync.RWMutex
	users map[uuid.UUID]models.User
	order []uuid.UUID
}

// NewUserRepository creates an empty user registry.
func NewUserRepository() *UserRepository {
	return &UserRepository{users: make(map[uuid.UUID]models.User)}
}

// Create inserts a new user record.
func (r *UserRepository) Create(ctx context.Context, user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.users[user.ID] = user.Clone()
	r.order = append(r.order, user.ID)
	return nil
}

// FindByID returns an independent copy of the user.
func (r *UserRepository) FindByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	user, ok := r.users[id]
	if !ok {
		return nil, ErrNotFound
	}
	clone := user.Clone()
	return &clone, nil
}

// FindByEmail returns the earliest-registered user whose email matches
// case-insensitively. Duplicate emails are permitted, so later registrations
// with the same address are shadowed here.
func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, id := range r.order {
		user := r.users[id]
		if strings.EqualFold(user.Email, email) {
			clone := user.Clone()
			return &clone, nil
		}
	}
	return nil, ErrNotFound
}

// Update replaces a stored user record.
func (r *UserRepository) Update(ctx context.Context, user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.users[user.ID]; !ok {
		return ErrNotFound
	}
	r.users[user.ID] = user.Clone()
	return nil
}

// List returns copies of all users in registration order.
func (r *UserRepository) List(ctx context.Context) ([]models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]models.User, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.users[id].Clone())
	}
	return out, nil
}

// ListByRole returns copies of all users with the given role, in
// registration order.
func (r *UserRepository) ListByRole(ctx context.Context, role models.UserRole) ([]models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []models.User
	for _, id := range r.order {
		if user := r.users[id]; user.Role == role {
			out = append(out, user.Clone())
		}
	}
	return out, nil
}
