package service

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/dnu-connect/tutorconnect/internal/models"
	apperrors "github.com/dnu-connect/tutorconnect/pkg/errors"
)

// AddRatingRequest is a student's scored feedback for a tutor.
type AddRatingRequest struct {
	StudentID uuid.UUID `validate:"required"`
	TutorID   uuid.UUID `validate:"required"`
	Score     int       `validate:"gte=1,lte=5"`
	Comment   string
}

// AddRating records feedback dated at submission time. Scores outside [1,5]
// are rejected.
func (s *MarketplaceService) AddRating(ctx context.Context, req AddRatingRequest) (*models.Rating, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrValidation.Code, "invalid rating")
	}
	if _, err := s.requireRole(ctx, req.StudentID, models.RoleStudent); err != nil {
		return nil, err
	}
	if _, err := s.requireRole(ctx, req.TutorID, models.RoleTutor); err != nil {
		return nil, err
	}

	rating, err := models.NewRating(req.StudentID, req.TutorID, req.Score, req.Comment)
	if err != nil {
		return nil, err
	}
	if err := s.ratings.Create(ctx, rating); err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrInternal.Code, "failed to store rating")
	}

	s.metrics.RecordRating()
	s.logger.Info("rating added",
		zap.String("tutor_id", req.TutorID.String()),
		zap.Int("score", req.Score),
	)
	return rating, nil
}

// AverageRating returns the arithmetic mean of the tutor's scores, 0 when
// the tutor is unrated. The value is recomputed on every call so it always
// reflects the latest submissions.
func (s *MarketplaceService) AverageRating(ctx context.Context, tutorID uuid.UUID) (float64, error) {
	if _, err := s.requireRole(ctx, tutorID, models.RoleTutor); err != nil {
		return 0, err
	}
	avg, err := s.ratings.AverageByTutor(ctx, tutorID)
	if err != nil {
		return 0, apperrors.Wrap(err, apperrors.ErrInternal.Code, "failed to average ratings")
	}
	return avg, nil
}

// ListTutorRatings returns the tutor's received ratings in submission order.
func (s *MarketplaceService) ListTutorRatings(ctx context.Context, tutorID uuid.UUID) ([]models.Rating, error) {
	if _, err := s.requireRole(ctx, tutorID, models.RoleTutor); err != nil {
		return nil, err
	}
	ratings, err := s.ratings.ListByTutor(ctx, tutorID)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrInternal.Code, "failed to list ratings")
	}
	return ratings, nil
}
