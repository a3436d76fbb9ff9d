package service

import (
	"context"
	"sort"

	"github.com/google/uuid"

	"github.com/dnu-connect/tutorconnect/internal/models"
	apperrors "github.com/dnu-connect/tutorconnect/pkg/errors"
)

// SearchTutorsRequest filters the tutor listing. Nil means "no bound".
type SearchTutorsRequest struct {
	SubjectID uuid.UUID `validate:"required"`
	MaxFee    *float64
	MinRating *float64
}

// TutorListing is a search result: the tutor plus their average rating at
// the time of the search.
type TutorListing struct {
	Tutor         models.User `json:"tutor"`
	AverageRating float64     `json:"average_rating"`
}

// SearchTutors returns tutors teaching the subject, optionally capped by fee
// and floored by average rating, sorted by average rating descending. A tutor
// without ratings averages 0, so only a positive MinRating excludes unrated
// tutors. The sort is stable over registration-ordered traversal, so ties
// resolve to registration order.
func (s *MarketplaceService) SearchTutors(ctx context.Context, req SearchTutorsRequest) ([]TutorListing, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrValidation.Code, "invalid search")
	}

	tutors, err := s.users.ListByRole(ctx, models.RoleTutor)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrInternal.Code, "failed to list tutors")
	}

	var listings []TutorListing
	for _, tutor := range tutors {
		if !tutor.Tutor.Teaches(req.SubjectID) {
			continue
		}
		if req.MaxFee != nil && tutor.Tutor.FeePerHour > *req.MaxFee {
			continue
		}
		avg, err := s.ratings.AverageByTutor(ctx, tutor.ID)
		if err != nil {
			return nil, apperrors.Wrap(err, apperrors.ErrInternal.Code, "failed to average ratings")
		}
		if req.MinRating != nil && avg < *req.MinRating {
			continue
		}
		listings = append(listings, TutorListing{Tutor: tutor, AverageRating: avg})
	}

	sort.SliceStable(listings, func(i, j int) bool {
		return listings[i].AverageRating > listings[j].AverageRating
	})
	return listings, nil
}
