package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func floatPtr(v float64) *float64 { return &v }

func TestSearchTutorsRanksByAverageRatingDescending(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()
	student := seedStudent(t, svc, "Nguyen Minh A", "alice@dnu.edu.vn")
	subject := seedSubject(t, svc, "Java Programming")

	a := seedTutor(t, svc, "Tutor A", "a@dnu.edu.vn", 100)
	b := seedTutor(t, svc, "Tutor B", "b@dnu.edu.vn", 90)
	c := seedTutor(t, svc, "Tutor C", "c@dnu.edu.vn", 200)
	require.NoError(t, svc.AddTutorSubject(ctx, a.ID, subject.ID))
	require.NoError(t, svc.AddTutorSubject(ctx, b.ID, subject.ID))
	require.NoError(t, svc.AddTutorSubject(ctx, c.ID, subject.ID))

	// A averages 4.0, B and C both 4.5.
	seedRating(t, svc, student, a, 4)
	seedRating(t, svc, student, b, 4)
	seedRating(t, svc, student, b, 5)
	seedRating(t, svc, student, c, 4)
	seedRating(t, svc, student, c, 5)

	listings, err := svc.SearchTutors(ctx, SearchTutorsRequest{SubjectID: subject.ID})
	require.NoError(t, err)
	require.Len(t, listings, 3)

	// Ties resolve to registration order, so B precedes C.
	assert.Equal(t, b.ID, listings[0].Tutor.ID)
	assert.Equal(t, c.ID, listings[1].Tutor.ID)
	assert.Equal(t, a.ID, listings[2].Tutor.ID)
	assert.InDelta(t, 4.5, listings[0].AverageRating, 1e-9)
	assert.InDelta(t, 4.0, listings[2].AverageRating, 1e-9)
}

func TestSearchTutorsAppliesMaxFee(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()
	subject := seedSubject(t, svc, "Java Programming")
	cheap := seedTutor(t, svc, "Cheap", "cheap@dnu.edu.vn", 90)
	pricey := seedTutor(t, svc, "Pricey", "pricey@dnu.edu.vn", 200)
	require.NoError(t, svc.AddTutorSubject(ctx, cheap.ID, subject.ID))
	require.NoError(t, svc.AddTutorSubject(ctx, pricey.ID, subject.ID))

	listings, err := svc.SearchTutors(ctx, SearchTutorsRequest{SubjectID: subject.ID, MaxFee: floatPtr(150)})
	require.NoError(t, err)
	require.Len(t, listings, 1)
	assert.Equal(t, cheap.ID, listings[0].Tutor.ID)
}

func TestSearchTutorsMinRatingAndUnratedTutors(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()
	student := seedStudent(t, svc, "Nguyen Minh A", "alice@dnu.edu.vn")
	subject := seedSubject(t, svc, "Math")
	rated := seedTutor(t, svc, "Rated", "rated@dnu.edu.vn", 100)
	unrated := seedTutor(t, svc, "Unrated", "unrated@dnu.edu.vn", 100)
	require.NoError(t, svc.AddTutorSubject(ctx, rated.ID, subject.ID))
	require.NoError(t, svc.AddTutorSubject(ctx, unrated.ID, subject.ID))
	seedRating(t, svc, student, rated, 3)

	// An unrated tutor averages 0, so a zero floor keeps them.
	listings, err := svc.SearchTutors(ctx, SearchTutorsRequest{SubjectID: subject.ID, MinRating: floatPtr(0)})
	require.NoError(t, err)
	assert.Len(t, listings, 2)

	// Any positive floor excludes them.
	listings, err = svc.SearchTutors(ctx, SearchTutorsRequest{SubjectID: subject.ID, MinRating: floatPtr(1)})
	require.NoError(t, err)
	require.Len(t, listings, 1)
	assert.Equal(t, rated.ID, listings[0].Tutor.ID)
}

func TestSearchTutorsSkipsTutorsWithoutSubject(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()
	subject := seedSubject(t, svc, "English")
	other := seedSubject(t, svc, "Math")
	tutor := seedTutor(t, svc, "Tutor", "tutor@dnu.edu.vn", 100)
	require.NoError(t, svc.AddTutorSubject(ctx, tutor.ID, other.ID))

	listings, err := svc.SearchTutors(ctx, SearchTutorsRequest{SubjectID: subject.ID})
	require.NoError(t, err)
	assert.Empty(t, listings)
}
