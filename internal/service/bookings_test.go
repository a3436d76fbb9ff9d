package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dnu-connect/tutorconnect/internal/models"
	apperrors "github.com/dnu-connect/tutorconnect/pkg/errors"
)

func seedBooking(t *testing.T, svc *MarketplaceService) (*models.Booking, *models.User, *models.User) {
	t.Helper()
	ctx := context.Background()
	student := seedStudent(t, svc, "Nguyen Minh A", "alice@dnu.edu.vn")
	tutor := seedTutor(t, svc, "Tran Van B", "bob@dnu.edu.vn", 150000)
	subject := seedSubject(t, svc, "Java Programming")
	require.NoError(t, svc.AddTutorSubject(ctx, tutor.ID, subject.ID))

	booking, err := svc.CreateBooking(ctx, CreateBookingRequest{
		StudentID:       student.ID,
		TutorID:         tutor.ID,
		SubjectID:       subject.ID,
		ScheduledAt:     time.Now().Add(24 * time.Hour),
		DurationMinutes: 90,
	})
	require.NoError(t, err)
	return booking, student, tutor
}

func TestCreateBookingStartsPending(t *testing.T) {
	svc := newTestService(t)
	booking, _, _ := seedBooking(t, svc)

	assert.Equal(t, models.BookingPending, booking.Status)
	assert.Nil(t, booking.TransactionID)
}

func TestCreateBookingRejectsNonPositiveDuration(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()
	student := seedStudent(t, svc, "Nguyen Minh A", "alice@dnu.edu.vn")
	tutor := seedTutor(t, svc, "Tran Van B", "bob@dnu.edu.vn", 150000)
	subject := seedSubject(t, svc, "Math")

	_, err := svc.CreateBooking(ctx, CreateBookingRequest{
		StudentID: student.ID, TutorID: tutor.ID, SubjectID: subject.ID,
		ScheduledAt: time.Now(), DurationMinutes: 0,
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestBookingLifecycle(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()
	booking, _, _ := seedBooking(t, svc)

	require.NoError(t, svc.ConfirmBooking(ctx, booking.ID))
	current, err := svc.GetBooking(ctx, booking.ID)
	require.NoError(t, err)
	assert.Equal(t, models.BookingConfirmed, current.Status)

	require.NoError(t, svc.CompleteBooking(ctx, booking.ID))
	current, err = svc.GetBooking(ctx, booking.ID)
	require.NoError(t, err)
	assert.Equal(t, models.BookingDone, current.Status)

	// Cancellation is reachable from any state, DONE included.
	require.NoError(t, svc.CancelBooking(ctx, booking.ID))
	current, err = svc.GetBooking(ctx, booking.ID)
	require.NoError(t, err)
	assert.Equal(t, models.BookingCancelled, current.Status)
}

func TestBookingGuardsOutOfOrderTransitions(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()
	booking, _, _ := seedBooking(t, svc)

	err := svc.CompleteBooking(ctx, booking.ID)
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrInvalidTransition)

	require.NoError(t, svc.ConfirmBooking(ctx, booking.ID))
	err = svc.ConfirmBooking(ctx, booking.ID)
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrInvalidTransition)

	require.NoError(t, svc.CancelBooking(ctx, booking.ID))
	err = svc.ConfirmBooking(ctx, booking.ID)
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrInvalidTransition)
}

func TestBookingTransitionUnknownID(t *testing.T) {
	svc := newTestService(t)

	err := svc.ConfirmBooking(context.Background(), uuid.New())
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestBookingAppearsInBothDerivedViews(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()
	booking, student, tutor := seedBooking(t, svc)

	byStudent, err := svc.ListBookingsByStudent(ctx, student.ID)
	require.NoError(t, err)
	require.Len(t, byStudent, 1)
	assert.Equal(t, booking.ID, byStudent[0].ID)

	byTutor, err := svc.ListBookingsByTutor(ctx, tutor.ID)
	require.NoError(t, err)
	require.Len(t, byTutor, 1)
	assert.Equal(t, booking.ID, byTutor[0].ID)
}

func TestListAllBookingsReturnsSnapshot(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()
	seedBooking(t, svc)

	bookings, err := svc.ListAllBookings(ctx)
	require.NoError(t, err)
	require.Len(t, bookings, 1)

	bookings[0].Status = models.BookingDone

	again, err := svc.ListAllBookings(ctx)
	require.NoError(t, err)
	require.Len(t, again, 1)
	assert.Equal(t, models.BookingPending, again[0].Status)
}
