package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dnu-connect/tutorconnect/internal/models"
	apperrors "github.com/dnu-connect/tutorconnect/pkg/errors"
)

func TestAddAvailabilityAllowsOverlappingSlots(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()
	tutor := seedTutor(t, svc, "Tran Van B", "bob@dnu.edu.vn", 150000)

	date := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	start := date.Add(18 * time.Hour)
	first, err := models.NewTimeSlot(start, start.Add(2*time.Hour))
	require.NoError(t, err)
	second, err := models.NewTimeSlot(start.Add(time.Hour), start.Add(3*time.Hour))
	require.NoError(t, err)

	require.NoError(t, svc.AddAvailability(ctx, tutor.ID, date, first))
	require.NoError(t, svc.AddAvailability(ctx, tutor.ID, date, second))

	availability, err := svc.TutorAvailability(ctx, tutor.ID)
	require.NoError(t, err)
	slots := availability[models.DateKey(date)]
	require.Len(t, slots, 2)
	assert.Equal(t, first, slots[0])
	assert.Equal(t, second, slots[1])
}

func TestAddAvailabilityRejectsNonTutor(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()
	student := seedStudent(t, svc, "Nguyen Minh A", "alice@dnu.edu.vn")

	slot, err := models.NewTimeSlot(time.Now(), time.Now().Add(time.Hour))
	require.NoError(t, err)
	err = svc.AddAvailability(ctx, student.ID, time.Now(), slot)
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestTutorAvailabilityReturnsCopy(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()
	tutor := seedTutor(t, svc, "Tran Van B", "bob@dnu.edu.vn", 150000)

	date := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	slot, err := models.NewTimeSlot(date.Add(9*time.Hour), date.Add(10*time.Hour))
	require.NoError(t, err)
	require.NoError(t, svc.AddAvailability(ctx, tutor.ID, date, slot))

	availability, err := svc.TutorAvailability(ctx, tutor.ID)
	require.NoError(t, err)
	delete(availability, models.DateKey(date))

	again, err := svc.TutorAvailability(ctx, tutor.ID)
	require.NoError(t, err)
	assert.Len(t, again[models.DateKey(date)], 1)
}
