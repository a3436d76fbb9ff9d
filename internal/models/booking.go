package models

import (
	"time"

	"github.com/google/uuid"
)

// BookingStatus tracks a lesson booking through its lifecycle.
type BookingStatus string

const (
	BookingPending   BookingStatus = "PENDING"
	BookingConfirmed BookingStatus = "CONFIRMED"
	BookingDone      BookingStatus = "DONE"
	BookingCancelled BookingStatus = "CANCELLED"
)

// CanTransitionTo encodes the booking state machine: PENDING -> CONFIRMED ->
// DONE, with CANCELLED reachable from any state. The original system left
// transitions unguarded; confirm and complete are strict here, cancellation
// stays permissive.
func (s BookingStatus) CanTransitionTo(next BookingStatus) bool {
	if next == BookingCancelled {
		return true
	}
	switch s {
	case BookingPending:
		return next == BookingConfirmed
	case BookingConfirmed:
		return next == BookingDone
	}
	return false
}

// Booking is a scheduled lesson linking one student, one tutor and one
// subject. The booking registry is the sole owner; per-user booking lists are
// derived views. TransactionID points at the most recent payment, older
// payments remain in the ledger.
type Booking struct {
	ID              uuid.UUID     `json:"id"`
	StudentID       uuid.UUID     `json:"student_id"`
	TutorID         uuid.UUID     `json:"tutor_id"`
	SubjectID       uuid.UUID     `json:"subject_id"`
	ScheduledAt     time.Time     `json:"scheduled_at"`
	DurationMinutes int           `json:"duration_minutes"`
	Status          BookingStatus `json:"status"`
	TransactionID   *uuid.UUID    `json:"transaction_id,omitempty"`
	CreatedAt       time.Time     `json:"created_at"`
}

// Clone returns an independent copy of the booking record.
func (b Booking) Clone() Booking {
	clone := b
	if b.TransactionID != nil {
		id := *b.TransactionID
		clone.TransactionID = &id
	}
	return clone
}
