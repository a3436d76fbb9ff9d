package models

import (
	"time"

	"github.com/google/uuid"
)

// UserRole tags the marketplace role of a user record.
type UserRole string

const (
	RoleStudent UserRole = "STUDENT"
	RoleTutor   UserRole = "TUTOR"
	RoleAdmin   UserRole = "ADMIN"
)

// User represents a marketplace participant. Role-specific data lives on the
// attached profile record instead of a subclass, so collections hold plain
// User values regardless of role.
type User struct {
	ID        uuid.UUID     `json:"id"`
	Name      string        `json:"name"`
	Email     string        `json:"email"`
	Phone     string        `json:"phone"`
	Role      UserRole      `json:"role"`
	Tutor     *TutorProfile `json:"tutor,omitempty"`
	CreatedAt time.Time     `json:"created_at"`
}

// TutorProfile carries the tutor-only attributes: taught subjects, hourly fee,
// profile text and per-date availability. Bookings, requests and ratings are
// derived from their own registries, never duplicated here.
type TutorProfile struct {
	FeePerHour   float64                `json:"fee_per_hour"`
	Bio          string                 `json:"bio"`
	Subjects     map[uuid.UUID]struct{} `json:"-"`
	Availability map[string][]TimeSlot  `json:"availability"`
}

// NewTutorProfile initialises an empty profile with the given fee and bio.
func NewTutorProfile(feePerHour float64, bio string) *TutorProfile {
	return &TutorProfile{
		FeePerHour:   feePerHour,
		Bio:          bio,
		Subjects:     make(map[uuid.UUID]struct{}),
		Availability: make(map[string][]TimeSlot),
	}
}

// Teaches reports whether the subject is in the tutor's subject set.
func (p *TutorProfile) Teaches(subjectID uuid.UUID) bool {
	if p == nil {
		return false
	}
	_, ok := p.Subjects[subjectID]
	return ok
}

// Clone deep-copies the profile so registry snapshots cannot be mutated
// through shared maps.
func (p *TutorProfile) Clone() *TutorProfile {
	if p == nil {
		return nil
	}
	clone := &TutorProfile{
		FeePerHour:   p.FeePerHour,
		Bio:          p.Bio,
		Subjects:     make(map[uuid.UUID]struct{}, len(p.Subjects)),
		Availability: make(map[string][]TimeSlot, len(p.Availability)),
	}
	for id := range p.Subjects {
		clone.Subjects[id] = struct{}{}
	}
	for date, slots := range p.Availability {
		copied := make([]TimeSlot, len(slots))
		copy(copied, slots)
		clone.Availability[date] = copied
	}
	return clone
}

// Clone returns an independent copy of the user record.
func (u User) Clone() User {
	clone := u
	clone.Tutor = u.Tutor.Clone()
	return clone
}
