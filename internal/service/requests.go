package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/dnu-connect/tutorconnect/internal/models"
	apperrors "github.com/dnu-connect/tutorconnect/pkg/errors"
)

// PostLearningRequest puts an OPEN request on the board for the student.
func (s *MarketplaceService) PostLearningRequest(ctx context.Context, studentID, subjectID uuid.UUID, description string) (*models.LearningRequest, error) {
	if _, err := s.requireRole(ctx, studentID, models.RoleStudent); err != nil {
		return nil, err
	}
	if _, err := s.subjects.FindByID(ctx, subjectID); err != nil {
		return nil, notFound(err, "subject not found")
	}

	request := &models.LearningRequest{
		ID:          uuid.New(),
		StudentID:   studentID,
		SubjectID:   subjectID,
		Description: description,
		Status:      models.RequestOpen,
		CreatedAt:   time.Now(),
	}
	if err := s.requests.Create(ctx, request); err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrInternal.Code, "failed to post request")
	}

	s.logger.Info("learning request posted",
		zap.String("request_id", request.ID.String()),
		zap.String("student_id", studentID.String()),
	)
	return request, nil
}

// SetRequestStatus moves a request between OPEN, MATCHED and CLOSED. No
// booking workflow calls this automatically; it exists for explicit callers.
func (s *MarketplaceService) SetRequestStatus(ctx context.Context, requestID uuid.UUID, status models.RequestStatus) error {
	if !status.Valid() {
		return apperrors.Clone(apperrors.ErrValidation, "unknown request status")
	}
	if err := s.requests.SetStatus(ctx, requestID, status); err != nil {
		return notFound(err, "learning request not found")
	}
	return nil
}

// ListRequestsByStudent returns the student's posted requests, derived from
// the board rather than a list held on the student record.
func (s *MarketplaceService) ListRequestsByStudent(ctx context.Context, studentID uuid.UUID) ([]models.LearningRequest, error) {
	if _, err := s.requireRole(ctx, studentID, models.RoleStudent); err != nil {
		return nil, err
	}
	requests, err := s.requests.ListByStudent(ctx, studentID)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrInternal.Code, "failed to list requests")
	}
	return requests, nil
}
