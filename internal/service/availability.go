package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/dnu-connect/tutorconnect/internal/models"
	apperrors "github.com/dnu-connect/tutorconnect/pkg/errors"
)

// AddAvailability appends a slot to the tutor's list for the given calendar
// day. Overlapping slots may coexist and past dates never expire; conflict
// detection is out of scope.
func (s *MarketplaceService) AddAvailability(ctx context.Context, tutorID uuid.UUID, date time.Time, slot models.TimeSlot) error {
	tutor, err := s.requireRole(ctx, tutorID, models.RoleTutor)
	if err != nil {
		return err
	}

	key := models.DateKey(date)
	tutor.Tutor.Availability[key] = append(tutor.Tutor.Availability[key], slot)
	if err := s.users.Update(ctx, tutor); err != nil {
		return apperrors.Wrap(err, apperrors.ErrInternal.Code, "failed to update availability")
	}
	return nil
}

// TutorAvailability returns a copy of the tutor's date-keyed availability.
func (s *MarketplaceService) TutorAvailability(ctx context.Context, tutorID uuid.UUID) (map[string][]models.TimeSlot, error) {
	tutor, err := s.requireRole(ctx, tutorID, models.RoleTutor)
	if err != nil {
		return nil, err
	}
	// requireRole already returned a deep copy of the stored record.
	return tutor.Tutor.Availability, nil
}
