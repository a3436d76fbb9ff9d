package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/dnu-connect/tutorconnect/internal/models"
	apperrors "github.com/dnu-connect/tutorconnect/pkg/errors"
)

// CreateBookingRequest captures a lesson agreement between one student and
// one tutor.
type CreateBookingRequest struct {
	StudentID       uuid.UUID `validate:"required"`
	TutorID         uuid.UUID `validate:"required"`
	SubjectID       uuid.UUID `validate:"required"`
	ScheduledAt     time.Time
	DurationMinutes int       `validate:"gt=0"`
}

// CreateBooking registers a PENDING booking. The booking registry is the sole
// owner; the student's and tutor's booking views both reflect it immediately.
// No conflict check is made against availability or other bookings.
func (s *MarketplaceService) CreateBooking(ctx context.Context, req CreateBookingRequest) (*models.Booking, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrValidation.Code, "invalid booking")
	}
	if _, err := s.requireRole(ctx, req.StudentID, models.RoleStudent); err != nil {
		return nil, err
	}
	if _, err := s.requireRole(ctx, req.TutorID, models.RoleTutor); err != nil {
		return nil, err
	}
	if _, err := s.subjects.FindByID(ctx, req.SubjectID); err != nil {
		return nil, notFound(err, "subject not found")
	}

	booking := &models.Booking{
		ID:              uuid.New(),
		StudentID:       req.StudentID,
		TutorID:         req.TutorID,
		SubjectID:       req.SubjectID,
		ScheduledAt:     req.ScheduledAt,
		DurationMinutes: req.DurationMinutes,
		Status:          models.BookingPending,
		CreatedAt:       time.Now(),
	}
	if err := s.bookings.Create(ctx, booking); err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrInternal.Code, "failed to create booking")
	}

	s.metrics.RecordBookingStatus(models.BookingPending)
	s.logger.Info("booking created",
		zap.String("booking_id", booking.ID.String()),
		zap.String("student_id", req.StudentID.String()),
		zap.String("tutor_id", req.TutorID.String()),
	)
	return booking, nil
}

// ConfirmBooking moves a PENDING booking to CONFIRMED.
func (s *MarketplaceService) ConfirmBooking(ctx context.Context, bookingID uuid.UUID) error {
	return s.transitionBooking(ctx, bookingID, models.BookingConfirmed)
}

// CompleteBooking moves a CONFIRMED booking to DONE.
func (s *MarketplaceService) CompleteBooking(ctx context.Context, bookingID uuid.UUID) error {
	return s.transitionBooking(ctx, bookingID, models.BookingDone)
}

// CancelBooking moves a booking to CANCELLED from any state. No refund is
// triggered and no availability is released; those are caller concerns.
func (s *MarketplaceService) CancelBooking(ctx context.Context, bookingID uuid.UUID) error {
	return s.transitionBooking(ctx, bookingID, models.BookingCancelled)
}

func (s *MarketplaceService) transitionBooking(ctx context.Context, bookingID uuid.UUID, next models.BookingStatus) error {
	booking, err := s.bookings.FindByID(ctx, bookingID)
	if err != nil {
		return notFound(err, "booking not found")
	}
	if !booking.Status.CanTransitionTo(next) {
		return apperrors.Clone(apperrors.ErrInvalidTransition,
			"booking cannot move from "+string(booking.Status)+" to "+string(next))
	}
	if err := s.bookings.SetStatus(ctx, bookingID, next); err != nil {
		return notFound(err, "booking not found")
	}

	s.metrics.RecordBookingStatus(next)
	s.logger.Info("booking status changed",
		zap.String("booking_id", bookingID.String()),
		zap.String("from", string(booking.Status)),
		zap.String("to", string(next)),
	)
	return nil
}

// GetBooking returns a copy of a booking by id.
func (s *MarketplaceService) GetBooking(ctx context.Context, bookingID uuid.UUID) (*models.Booking, error) {
	booking, err := s.bookings.FindByID(ctx, bookingID)
	if err != nil {
		return nil, notFound(err, "booking not found")
	}
	return booking, nil
}

// ListBookingsByStudent returns the student's bookings, derived from the
// booking registry.
func (s *MarketplaceService) ListBookingsByStudent(ctx context.Context, studentID uuid.UUID) ([]models.Booking, error) {
	if _, err := s.requireRole(ctx, studentID, models.RoleStudent); err != nil {
		return nil, err
	}
	bookings, err := s.bookings.ListByStudent(ctx, studentID)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrInternal.Code, "failed to list bookings")
	}
	return bookings, nil
}

// ListBookingsByTutor returns the tutor's bookings, derived from the booking
// registry.
func (s *MarketplaceService) ListBookingsByTutor(ctx context.Context, tutorID uuid.UUID) ([]models.Booking, error) {
	if _, err := s.requireRole(ctx, tutorID, models.RoleTutor); err != nil {
		return nil, err
	}
	bookings, err := s.bookings.ListByTutor(ctx, tutorID)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrInternal.Code, "failed to list bookings")
	}
	return bookings, nil
}

// ListAllBookings returns an independent snapshot of the booking registry.
func (s *MarketplaceService) ListAllBookings(ctx context.Context) ([]models.Booking, error) {
	bookings, err := s.bookings.List(ctx)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrInternal.Code, "failed to list bookings")
	}
	return bookings, nil
}
