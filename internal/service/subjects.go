package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/dnu-connect/tutorconnect/internal/models"
	"github.com/dnu-connect/tutorconnect/internal/repository"
	apperrors "github.com/dnu-connect/tutorconnect/pkg/errors"
)

// CreateOrGetSubject returns the existing subject whose name matches
// case-insensitively, or creates one. The catalog never holds two subjects
// whose names are equal ignoring case; subjects are never deleted.
func (s *MarketplaceService) CreateOrGetSubject(ctx context.Context, name string) (*models.Subject, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, apperrors.Clone(apperrors.ErrValidation, "subject name must not be empty")
	}

	existing, err := s.subjects.FindByName(ctx, name)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return nil, apperrors.Wrap(err, apperrors.ErrInternal.Code, "failed to look up subject")
	}

	subject := &models.Subject{ID: uuid.New(), Name: name, CreatedAt: time.Now()}
	if err := s.subjects.Create(ctx, subject); err != nil {
		// Lost a race with a concurrent insert of the same name.
		if errors.Is(err, repository.ErrConflict) {
			return s.subjects.FindByName(ctx, name)
		}
		return nil, apperrors.Wrap(err, apperrors.ErrInternal.Code, "failed to create subject")
	}

	s.logger.Info("subject created",
		zap.String("subject_id", subject.ID.String()),
		zap.String("name", subject.Name),
	)
	return subject, nil
}

// AddTutorSubject puts a subject into the tutor's taught set. Adding a
// subject twice is a no-op.
func (s *MarketplaceService) AddTutorSubject(ctx context.Context, tutorID, subjectID uuid.UUID) error {
	tutor, err := s.requireRole(ctx, tutorID, models.RoleTutor)
	if err != nil {
		return err
	}
	if _, err := s.subjects.FindByID(ctx, subjectID); err != nil {
		return notFound(err, "subject not found")
	}

	tutor.Tutor.Subjects[subjectID] = struct{}{}
	if err := s.users.Update(ctx, tutor); err != nil {
		return apperrors.Wrap(err, apperrors.ErrInternal.Code, "failed to update tutor subjects")
	}
	return nil
}

// ListSubjects returns the subject catalog in creation order.
func (s *MarketplaceService) ListSubjects(ctx context.Context) ([]models.Subject, error) {
	subjects, err := s.subjects.List(ctx)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrInternal.Code, "failed to list subjects")
	}
	return subjects, nil
}
