package models

import (
	"time"

	apperrors "github.com/dnu-connect/tutorconnect/pkg/errors"
)

// DateLayout keys availability maps by calendar day.
const DateLayout = "2006-01-02"

// DateKey normalises a timestamp to its availability-map key.
func DateKey(t time.Time) string {
	return t.Format(DateLayout)
}

// TimeSlot is a half-open interval of tutor availability within one day.
type TimeSlot struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// NewTimeSlot builds a slot, rejecting intervals that end before they start.
// Zero-length slots are allowed.
func NewTimeSlot(start, end time.Time) (TimeSlot, error) {
	if end.Before(start) {
		return TimeSlot{}, apperrors.Clone(apperrors.ErrValidation, "time slot ends before it starts")
	}
	return TimeSlot{Start: start, End: end}, nil
}
