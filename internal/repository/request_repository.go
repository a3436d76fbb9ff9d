package repository

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/dnu-connect/tutorconnect/internal/models"
)

// RequestRepository is the learning-request board. Per-student request lists
// are derived by filtering here, never stored on the student record.
type RequestRepository struct {
	mu       sync.RWMutex
	requests map[uuid.UUID]models.LearningRequest
	order    []uuid.UUID
}

// NewRequestRepository creates an empty request board.
func NewRequestRepository() *RequestRepository {
	return &RequestRepository{requests: make(map[uuid.UUID]models.LearningRequest)}
}

// Create posts a request onto the board.
func (r *RequestRepository) Create(ctx context.Context, request *models.LearningRequest) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.requests[request.ID] = *request
	r.order = append(r.order, request.ID)
	return nil
}

// FindByID returns a request by id.
func (r *RequestRepository) FindByID(ctx context.Context, id uuid.UUID) (*models.LearningRequest, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	request, ok := r.requests[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &request, nil
}

// SetStatus updates the request status.
func (r *RequestRepository) SetStatus(ctx context.Context, id uuid.UUID, status models.RequestStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	request, ok := r.requests[id]
	if !ok {
		return ErrNotFound
	}
	request.Status = status
	r.requests[id] = request
	return nil
}

// ListByStudent returns the student's requests in posting order.
func (r *RequestRepository) ListByStudent(ctx context.Context, studentID uuid.UUID) ([]models.LearningRequest, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []models.LearningRequest
	for _, id := range r.order {
		if request := r.requests[id]; request.StudentID == studentID {
			out = append(out, request)
		}
	}
	return out, nil
}
