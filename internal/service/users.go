package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/dnu-connect/tutorconnect/internal/models"
	apperrors "github.com/dnu-connect/tutorconnect/pkg/errors"
)

// RegisterUserRequest captures the shared fields for student and admin
// registration. Email format and duplicates are intentionally not checked.
type RegisterUserRequest struct {
	Name  string `json:"name" validate:"required"`
	Email string `json:"email" validate:"required"`
	Phone string `json:"phone"`
}

// RegisterTutorRequest adds the tutor-only attributes.
type RegisterTutorRequest struct {
	Name       string  `json:"name" validate:"required"`
	Email      string  `json:"email" validate:"required"`
	Phone      string  `json:"phone"`
	FeePerHour float64 `json:"fee_per_hour" validate:"gte=0"`
	Bio        string  `json:"bio"`
}

// RegisterStudent adds a student to the user registry.
func (s *MarketplaceService) RegisterStudent(ctx context.Context, req RegisterUserRequest) (*models.User, error) {
	return s.registerUser(ctx, req, models.RoleStudent, nil)
}

// RegisterAdmin adds an admin to the user registry.
func (s *MarketplaceService) RegisterAdmin(ctx context.Context, req RegisterUserRequest) (*models.User, error) {
	return s.registerUser(ctx, req, models.RoleAdmin, nil)
}

// RegisterTutor adds a tutor with an empty subject set and availability map.
func (s *MarketplaceService) RegisterTutor(ctx context.Context, req RegisterTutorRequest) (*models.User, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrValidation.Code, "invalid tutor registration")
	}
	base := RegisterUserRequest{Name: req.Name, Email: req.Email, Phone: req.Phone}
	return s.registerUser(ctx, base, models.RoleTutor, models.NewTutorProfile(req.FeePerHour, req.Bio))
}

func (s *MarketplaceService) registerUser(ctx context.Context, req RegisterUserRequest, role models.UserRole, profile *models.TutorProfile) (*models.User, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrValidation.Code, "invalid registration")
	}

	user := &models.User{
		ID:        uuid.New(),
		Name:      req.Name,
		Email:     req.Email,
		Phone:     req.Phone,
		Role:      role,
		Tutor:     profile,
		CreatedAt: time.Now(),
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrInternal.Code, "failed to register user")
	}

	s.metrics.RecordRegistration(role)
	s.logger.Info("user registered",
		zap.String("user_id", user.ID.String()),
		zap.String("role", string(role)),
	)
	return user, nil
}

// FindUserByEmail returns the earliest-registered case-insensitive match.
func (s *MarketplaceService) FindUserByEmail(ctx context.Context, email string) (*models.User, error) {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return nil, notFound(err, "no user with that email")
	}
	return user, nil
}

// ListAllUsers returns an independent snapshot of the user registry in
// registration order.
func (s *MarketplaceService) ListAllUsers(ctx context.Context) ([]models.User, error) {
	users, err := s.users.List(ctx)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrInternal.Code, "failed to list users")
	}
	return users, nil
}
