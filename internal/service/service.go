// Package service implements the marketplace facade. MarketplaceService owns
// every registry and is the only mutation path, so the cross-registry
// invariants (subject dedup, booking lifecycle, rating bounds, ledger links)
// are enforced in one place.
package service

import (
	"context"
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/dnu-connect/tutorconnect/internal/models"
	"github.com/dnu-connect/tutorconnect/internal/repository"
	apperrors "github.com/dnu-connect/tutorconnect/pkg/errors"
)

type userRepository interface {
	Create(ctx context.Context, user *models.User) error
	FindByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	Update(ctx context.Context, user *models.User) error
	List(ctx context.Context) ([]models.User, error)
	ListByRole(ctx context.Context, role models.UserRole) ([]models.User, error)
}

type subjectRepository interface {
	Create(ctx context.Context, subject *models.Subject) error
	FindByID(ctx context.Context, id uuid.UUID) (*models.Subject, error)
	FindByName(ctx context.Context, name string) (*models.Subject, error)
	List(ctx context.Context) ([]models.Subject, error)
}

type requestRepository interface {
	Create(ctx context.Context, request *models.LearningRequest) error
	FindByID(ctx context.Context, id uuid.UUID) (*models.LearningRequest, error)
	SetStatus(ctx context.Context, id uuid.UUID, status models.RequestStatus) error
	ListByStudent(ctx context.Context, studentID uuid.UUID) ([]models.LearningRequest, error)
}

type bookingRepository interface {
	Create(ctx context.Context, booking *models.Booking) error
	FindByID(ctx context.Context, id uuid.UUID) (*models.Booking, error)
	SetStatus(ctx context.Context, id uuid.UUID, status models.BookingStatus) error
	SetTransaction(ctx context.Context, id, transactionID uuid.UUID) error
	List(ctx context.Context) ([]models.Booking, error)
	ListByStudent(ctx context.Context, studentID uuid.UUID) ([]models.Booking, error)
	ListByTutor(ctx context.Context, tutorID uuid.UUID) ([]models.Booking, error)
}

type ratingRepository interface {
	Create(ctx context.Context, rating *models.Rating) error
	ListByTutor(ctx context.Context, tutorID uuid.UUID) ([]models.Rating, error)
	AverageByTutor(ctx context.Context, tutorID uuid.UUID) (float64, error)
}

type transactionRepository interface {
	Create(ctx context.Context, transaction *models.Transaction) error
	List(ctx context.Context) ([]models.Transaction, error)
}

// MarketplaceService coordinates all marketplace operations.
type MarketplaceService struct {
	users        userRepository
	subjects     subjectRepository
	requests     requestRepository
	bookings     bookingRepository
	ratings      ratingRepository
	transactions transactionRepository

	validator *validator.Validate
	logger    *zap.Logger
	metrics   *Metrics
}

// Repositories bundles the registries owned by the service.
type Repositories struct {
	Users        userRepository
	Subjects     subjectRepository
	Requests     requestRepository
	Bookings     bookingRepository
	Ratings      ratingRepository
	Transactions transactionRepository
}

// NewRepositories wires up a fresh set of in-memory registries.
func NewRepositories() Repositories {
	return Repositories{
		Users:        repository.NewUserRepository(),
		Subjects:     repository.NewSubjectRepository(),
		Requests:     repository.NewRequestRepository(),
		Bookings:     repository.NewBookingRepository(),
		Ratings:      repository.NewRatingRepository(),
		Transactions: repository.NewTransactionRepository(),
	}
}

// NewMarketplaceService creates the facade over the given registries.
func NewMarketplaceService(repos Repositories, validate *validator.Validate, logger *zap.Logger, metrics *Metrics) *MarketplaceService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &MarketplaceService{
		users:        repos.Users,
		subjects:     repos.Subjects,
		requests:     repos.Requests,
		bookings:     repos.Bookings,
		ratings:      repos.Ratings,
		transactions: repos.Transactions,
		validator:    validate,
		logger:       logger,
		metrics:      metrics,
	}
}

// notFound translates a repository miss into the typed domain error.
func notFound(err error, message string) error {
	if errors.Is(err, repository.ErrNotFound) {
		return apperrors.Clone(apperrors.ErrNotFound, message)
	}
	return apperrors.Wrap(err, apperrors.ErrInternal.Code, message)
}

// requireRole loads a user and checks its role tag.
func (s *MarketplaceService) requireRole(ctx context.Context, id uuid.UUID, role models.UserRole) (*models.User, error) {
	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		return nil, notFound(err, "user not found")
	}
	if user.Role != role {
		return nil, apperrors.Clone(apperrors.ErrValidation, "user does not have role "+string(role))
	}
	return user, nil
}
