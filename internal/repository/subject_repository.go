package repository

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/dnu-connect/tutorconnect/internal/models"
)

// SubjectRepository is the deduplicated subject catalog. Names are unique
// ignoring case; the registry never holds two case-equal entries.
type SubjectRepository struct {
	mu       sync.RWMutex
	subjects map[uuid.UUID]models.Subject
	byName   map[string]uuid.UUID
	order    []uuid.UUID
}

// NewSubjectRepository creates an empty subject catalog.
func NewSubjectRepository() *SubjectRepository {
	return &SubjectRepository{
		subjects: make(map[uuid.UUID]models.Subject),
		byName:   make(map[string]uuid.UUID),
	}
}

// Create inserts a subject, failing when a case-equal name already exists.
func (r *SubjectRepository) Create(ctx context.Context, subject *models.Subject) error {
	key := strings.ToLower(subject.Name)
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, taken := r.byName[key]; taken {
		return fmt.Errorf("subject %q: %w", subject.Name, ErrConflict)
	}
	r.subjects[subject.ID] = *subject
	r.byName[key] = subject.ID
	r.order = append(r.order, subject.ID)
	return nil
}

// FindByID returns a subject by id.
func (r *SubjectRepository) FindByID(ctx context.Context, id uuid.UUID) (*models.Subject, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	subject, ok := r.subjects[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &subject, nil
}

// FindByName looks up a subject case-insensitively.
func (r *SubjectRepository) FindByName(ctx context.Context, name string) (*models.Subject, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	id, ok := r.byName[strings.ToLower(name)]
	if !ok {
		return nil, ErrNotFound
	}
	subject := r.subjects[id]
	return &subject, nil
}

// List returns all subjects in creation order.
func (r *SubjectRepository) List(ctx context.Context) ([]models.Subject, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]models.Subject, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.subjects[id])
	}
	return out, nil
}

// Count returns the number of live subjects.
func (r *SubjectRepository) Count(ctx context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.subjects), nil
}
