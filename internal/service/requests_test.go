package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dnu-connect/tutorconnect/internal/models"
	apperrors "github.com/dnu-connect/tutorconnect/pkg/errors"
)

func TestPostLearningRequestStartsOpen(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()
	student := seedStudent(t, svc, "Nguyen Minh A", "alice@dnu.edu.vn")
	subject := seedSubject(t, svc, "Java Programming")

	request, err := svc.PostLearningRequest(ctx, student.ID, subject.ID, "Need OOP help")
	require.NoError(t, err)
	assert.Equal(t, models.RequestOpen, request.Status)
	assert.Equal(t, student.ID, request.StudentID)

	listed, err := svc.ListRequestsByStudent(ctx, student.ID)
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.Equal(t, request.ID, listed[0].ID)
}

func TestPostLearningRequestRequiresStudentAndSubject(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()
	student := seedStudent(t, svc, "Nguyen Minh A", "alice@dnu.edu.vn")
	tutor := seedTutor(t, svc, "Tran Van B", "bob@dnu.edu.vn", 150000)
	subject := seedSubject(t, svc, "Math")

	_, err := svc.PostLearningRequest(ctx, tutor.ID, subject.ID, "x")
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrValidation)

	_, err = svc.PostLearningRequest(ctx, student.ID, uuid.New(), "x")
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestSetRequestStatus(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()
	student := seedStudent(t, svc, "Nguyen Minh A", "alice@dnu.edu.vn")
	subject := seedSubject(t, svc, "Math")
	request, err := svc.PostLearningRequest(ctx, student.ID, subject.ID, "x")
	require.NoError(t, err)

	require.NoError(t, svc.SetRequestStatus(ctx, request.ID, models.RequestMatched))
	listed, err := svc.ListRequestsByStudent(ctx, student.ID)
	require.NoError(t, err)
	assert.Equal(t, models.RequestMatched, listed[0].Status)

	err = svc.SetRequestStatus(ctx, request.ID, models.RequestStatus("BOGUS"))
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrValidation)

	err = svc.SetRequestStatus(ctx, uuid.New(), models.RequestClosed)
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}
