package repository

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/dnu-connect/tutorconnect/internal/models"
)

// BookingRepository is the sole owner of booking records. Student and tutor
// booking lists are derived views over this registry, which removes the
// consistency drift of keeping duplicated per-user lists in sync.
type BookingRepository struct {
	mu       sync.RWMutex
	bookings map[uuid.UUID]models.Booking
	order    []uuid.UUID
}

// NewBookingRepository creates an empty booking registry.
func NewBookingRepository() *BookingRepository {
	return &BookingRepository{bookings: make(map[uuid.UUID]models.Booking)}
}

// Create registers a booking.
func (r *BookingRepository) Create(ctx context.Context, booking *models.Booking) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.bookings[booking.ID] = booking.Clone()
	r.order = append(r.order, booking.ID)
	return nil
}

// FindByID returns an independent copy of the booking.
func (r *BookingRepository) FindByID(ctx context.Context, id uuid.UUID) (*models.Booking, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	booking, ok := r.bookings[id]
	if !ok {
		return nil, ErrNotFound
	}
	clone := booking.Clone()
	return &clone, nil
}

// SetStatus moves a booking into the given lifecycle state.
func (r *BookingRepository) SetStatus(ctx context.Context, id uuid.UUID, status models.BookingStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	booking, ok := r.bookings[id]
	if !ok {
		return ErrNotFound
	}
	booking.Status = status
	r.bookings[id] = booking
	return nil
}

// SetTransaction links a booking to its most recent payment, replacing any
// previous link.
func (r *BookingRepository) SetTransaction(ctx context.Context, id, transactionID uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	booking, ok := r.bookings[id]
	if !ok {
		return ErrNotFound
	}
	booking.TransactionID = &transactionID
	r.bookings[id] = booking
	return nil
}

// List returns copies of all bookings in creation order.
func (r *BookingRepository) List(ctx context.Context) ([]models.Booking, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]models.Booking, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.bookings[id].Clone())
	}
	return out, nil
}

// ListByStudent returns the student's bookings in creation order.
func (r *BookingRepository) ListByStudent(ctx context.Context, studentID uuid.UUID) ([]models.Booking, error) {
	return r.listBy(func(b models.Booking) bool { return b.StudentID == studentID })
}

// ListByTutor returns the tutor's bookings in creation order.
func (r *BookingRepository) ListByTutor(ctx context.Context, tutorID uuid.UUID) ([]models.Booking, error) {
	return r.listBy(func(b models.Booking) bool { return b.TutorID == tutorID })
}

func (r *BookingRepository) listBy(match func(models.Booking) bool) ([]models.Booking, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []models.Booking
	for _, id := range r.order {
		if booking := r.bookings[id]; match(booking) {
			out = append(out, booking.Clone())
		}
	}
	return out, nil
}
