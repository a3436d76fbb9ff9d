package service

import (
	"context"
	"strconv"
	"time"

	"github.com/dnu-connect/tutorconnect/pkg/export"
)

// Admin export column sets.
var (
	ledgerHeaders  = []string{"ID", "Booking", "Amount", "Method", "Status", "Recorded At"}
	bookingHeaders = []string{"ID", "Student", "Tutor", "Subject", "Scheduled At", "Duration (min)", "Status"}
)

// LedgerDataset renders the transaction ledger as a tabular dataset for the
// admin export formats.
func (s *MarketplaceService) LedgerDataset(ctx context.Context) (export.Dataset, error) {
	transactions, err := s.ListAllTransactions(ctx)
	if err != nil {
		return export.Dataset{}, err
	}

	rows := make([]map[string]string, 0, len(transactions))
	for _, t := range transactions {
		rows = append(rows, map[string]string{
			"ID":          t.ID.String(),
			"Booking":     t.BookingID.String(),
			"Amount":      strconv.FormatFloat(t.Amount, 'f', 2, 64),
			"Method":      t.Method,
			"Status":      string(t.Status),
			"Recorded At": t.CreatedAt.Format(time.RFC3339),
		})
	}
	return export.Dataset{Headers: ledgerHeaders, Rows: rows}, nil
}

// BookingsDataset renders the booking registry as a tabular dataset.
func (s *MarketplaceService) BookingsDataset(ctx context.Context) (export.Dataset, error) {
	bookings, err := s.ListAllBookings(ctx)
	if err != nil {
		return export.Dataset{}, err
	}

	rows := make([]map[string]string, 0, len(bookings))
	for _, b := range bookings {
		rows = append(rows, map[string]string{
			"ID":             b.ID.String(),
			"Student":        b.StudentID.String(),
			"Tutor":          b.TutorID.String(),
			"Subject":        b.SubjectID.String(),
			"Scheduled At":   b.ScheduledAt.Format(time.RFC3339),
			"Duration (min)": strconv.Itoa(b.DurationMinutes),
			"Status":         string(b.Status),
		})
	}
	return export.Dataset{Headers: bookingHeaders, Rows: rows}, nil
}
