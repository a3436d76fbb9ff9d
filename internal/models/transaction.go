package models

import (
	"time"

	"github.com/google/uuid"
)

// TransactionStatus is the outcome of a payment. Payments are recorded after
// the fact, so every created transaction starts (and currently stays) PAID.
type TransactionStatus string

const (
	TransactionPaid     TransactionStatus = "PAID"
	TransactionRefunded TransactionStatus = "REFUNDED"
	TransactionFailed   TransactionStatus = "FAILED"
)

// Transaction is an append-only payment record tied to exactly one booking.
type Transaction struct {
	ID        uuid.UUID         `json:"id"`
	BookingID uuid.UUID         `json:"booking_id"`
	Amount    float64           `json:"amount"`
	Method    string            `json:"method"`
	Status    TransactionStatus `json:"status"`
	CreatedAt time.Time         `json:"created_at"`
}

// LessonPrice computes the conventional price of a lesson: hourly fee scaled
// by duration. Callers pass the result to RecordPayment; the ledger itself
// never recomputes or checks it.
func LessonPrice(feePerHour float64, durationMinutes int) float64 {
	return feePerHour * float64(durationMinutes) / 60.0
}
