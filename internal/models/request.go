package models

import (
	"time"

	"github.com/google/uuid"
)

// RequestStatus tracks a learning request on the board.
type RequestStatus string

const (
	RequestOpen    RequestStatus = "OPEN"
	RequestMatched RequestStatus = "MATCHED"
	RequestClosed  RequestStatus = "CLOSED"
)

// Valid reports whether the status is one of the known request states.
func (s RequestStatus) Valid() bool {
	switch s {
	case RequestOpen, RequestMatched, RequestClosed:
		return true
	}
	return false
}

// LearningRequest is a student's open solicitation for tutoring in a subject.
// Status changes only through an explicit service call; no booking workflow
// advances it automatically.
type LearningRequest struct {
	ID          uuid.UUID     `json:"id"`
	StudentID   uuid.UUID     `json:"student_id"`
	SubjectID   uuid.UUID     `json:"subject_id"`
	Description string        `json:"description"`
	Status      RequestStatus `json:"status"`
	CreatedAt   time.Time     `json:"created_at"`
}
