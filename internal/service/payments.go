package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/dnu-connect/tutorconnect/internal/models"
	apperrors "github.com/dnu-connect/tutorconnect/pkg/errors"
)

// RecordPaymentRequest captures a payment for a booking. The amount is
// caller-supplied; models.LessonPrice computes the conventional fee but the
// ledger never verifies it.
type RecordPaymentRequest struct {
	BookingID uuid.UUID `validate:"required"`
	Amount    float64
	Method    string
}

// RecordPayment appends a PAID transaction to the ledger and points the
// booking at it. Paying a booking again leaves the earlier transaction in the
// ledger and moves the booking's link to the new one.
func (s *MarketplaceService) RecordPayment(ctx context.Context, req RecordPaymentRequest) (*models.Transaction, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrValidation.Code, "invalid payment")
	}
	if _, err := s.bookings.FindByID(ctx, req.BookingID); err != nil {
		return nil, notFound(err, "booking not found")
	}

	transaction := &models.Transaction{
		ID:        uuid.New(),
		BookingID: req.BookingID,
		Amount:    req.Amount,
		Method:    req.Method,
		Status:    models.TransactionPaid,
		CreatedAt: time.Now(),
	}
	if err := s.transactions.Create(ctx, transaction); err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrInternal.Code, "failed to record transaction")
	}
	if err := s.bookings.SetTransaction(ctx, req.BookingID, transaction.ID); err != nil {
		return nil, notFound(err, "booking not found")
	}

	s.metrics.RecordPayment(req.Amount)
	s.logger.Info("payment recorded",
		zap.String("transaction_id", transaction.ID.String()),
		zap.String("booking_id", req.BookingID.String()),
		zap.Float64("amount", req.Amount),
	)
	return transaction, nil
}

// ListAllTransactions returns an independent snapshot of the ledger in
// recording order.
func (s *MarketplaceService) ListAllTransactions(ctx context.Context) ([]models.Transaction, error) {
	transactions, err := s.transactions.List(ctx)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrInternal.Code, "failed to list transactions")
	}
	return transactions, nil
}
