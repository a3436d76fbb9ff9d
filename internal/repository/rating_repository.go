package repository

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/dnu-connect/tutorconnect/internal/models"
)

// RatingRepository stores submitted ratings indexed by tutor. Averages are
// recomputed on demand so a read always reflects every rating added so far.
type RatingRepository struct {
	mu      sync.RWMutex
	byTutor map[uuid.UUID][]models.Rating
}

// NewRatingRepository creates an empty rating store.
func NewRatingRepository() *RatingRepository {
	return &RatingRepository{byTutor: make(map[uuid.UUID][]models.Rating)}
}

// Create appends a rating to the tutor's received list.
func (r *RatingRepository) Create(ctx context.Context, rating *models.Rating) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.byTutor[rating.TutorID] = append(r.byTutor[rating.TutorID], *rating)
	return nil
}

// ListByTutor returns the tutor's received ratings in submission order.
func (r *RatingRepository) ListByTutor(ctx context.Context, tutorID uuid.UUID) ([]models.Rating, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	ratings := r.byTutor[tutorID]
	out := make([]models.Rating, len(ratings))
	copy(out, ratings)
	return out, nil
}

// AverageByTutor returns the arithmetic mean of the tutor's scores, or 0
// when the tutor has no ratings yet.
func (r *RatingRepository) AverageByTutor(ctx context.Context, tutorID uuid.UUID) (float64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	ratings := r.byTutor[tutorID]
	if len(ratings) == 0 {
		return 0, nil
	}
	sum := 0
	for _, rating := range ratings {
		sum += rating.Score
	}
	return float64(sum) / float64(len(ratings)), nil
}
