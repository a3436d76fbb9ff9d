package service

import (
	"context"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/dnu-connect/tutorconnect/internal/models"
)

func newTestService(t *testing.T) *MarketplaceService {
	t.Helper()
	return NewMarketplaceService(NewRepositories(), validator.New(), zap.NewNop(), nil)
}

func seedStudent(t *testing.T, svc *MarketplaceService, name, email string) *models.User {
	t.Helper()
	student, err := svc.RegisterStudent(context.Background(), RegisterUserRequest{
		Name: name, Email: email, Phone: "0900000000",
	})
	require.NoError(t, err)
	return student
}

func seedTutor(t *testing.T, svc *MarketplaceService, name, email string, feePerHour float64) *models.User {
	t.Helper()
	tutor, err := svc.RegisterTutor(context.Background(), RegisterTutorRequest{
		Name: name, Email: email, Phone: "0900000001", FeePerHour: feePerHour, Bio: "bio",
	})
	require.NoError(t, err)
	return tutor
}

func seedSubject(t *testing.T, svc *MarketplaceService, name string) *models.Subject {
	t.Helper()
	subject, err := svc.CreateOrGetSubject(context.Background(), name)
	require.NoError(t, err)
	return subject
}

func seedRating(t *testing.T, svc *MarketplaceService, student, tutor *models.User, score int) {
	t.Helper()
	_, err := svc.AddRating(context.Background(), AddRatingRequest{
		StudentID: student.ID, TutorID: tutor.ID, Score: score, Comment: "ok",
	})
	require.NoError(t, err)
}
