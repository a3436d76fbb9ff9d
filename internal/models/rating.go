package models

import (
	"time"

	"github.com/google/uuid"

	apperrors "github.com/dnu-connect/tutorconnect/pkg/errors"
)

// Rating score bounds.
const (
	MinScore = 1
	MaxScore = 5
)

// Rating is a student's scored feedback for a tutor.
type Rating struct {
	ID        uuid.UUID `json:"id"`
	StudentID uuid.UUID `json:"student_id"`
	TutorID   uuid.UUID `json:"tutor_id"`
	Score     int       `json:"score"`
	Comment   string    `json:"comment"`
	CreatedAt time.Time `json:"created_at"`
}

// NewRating constructs a rating dated now, rejecting scores outside [1,5].
func NewRating(studentID, tutorID uuid.UUID, score int, comment string) (*Rating, error) {
	if score < MinScore || score > MaxScore {
		return nil, apperrors.Clone(apperrors.ErrValidation, "rating score must be between 1 and 5")
	}
	return &Rating{
		ID:        uuid.New(),
		StudentID: studentID,
		TutorID:   tutorID,
		Score:     score,
		Comment:   comment,
		CreatedAt: time.Now(),
	}, nil
}
