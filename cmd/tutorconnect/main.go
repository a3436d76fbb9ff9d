package main

import (
	"context"
	"log"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/dnu-connect/tutorconnect/internal/models"
	"github.com/dnu-connect/tutorconnect/internal/service"
	"github.com/dnu-connect/tutorconnect/pkg/config"
	"github.com/dnu-connect/tutorconnect/pkg/export"
	"github.com/dnu-connect/tutorconnect/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logr, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logr.Sync() //nolint:errcheck

	metrics := service.NewMetrics()
	svc := service.NewMarketplaceService(service.NewRepositories(), validator.New(), logr, metrics)

	if !cfg.Demo.Seed {
		logr.Info("demo seed disabled, nothing to do")
		return
	}
	if err := runDemo(context.Background(), svc, cfg, logr); err != nil {
		logr.Sugar().Fatalw("demo run failed", "error", err)
	}
}

// runDemo walks the marketplace through a full lesson lifecycle: catalog and
// registration, availability, a learning request, a search, a paid booking
// confirmed and completed, a rating, and the admin views exported to disk.
func runDemo(ctx context.Context, svc *service.MarketplaceService, cfg *config.Config, logr *zap.Logger) error {
	math, err := svc.CreateOrGetSubject(ctx, "Math")
	if err != nil {
		return err
	}
	java, err := svc.CreateOrGetSubject(ctx, "Java Programming")
	if err != nil {
		return err
	}
	english, err := svc.CreateOrGetSubject(ctx, "English")
	if err != nil {
		return err
	}

	alice, err := svc.RegisterStudent(ctx, service.RegisterUserRequest{
		Name: "Nguyen Minh A", Email: "alice@dnu.edu.vn", Phone: "0901000100",
	})
	if err != nil {
		return err
	}
	bob, err := svc.RegisterTutor(ctx, service.RegisterTutorRequest{
		Name: "Tran Van B", Email: "bob@dnu.edu.vn", Phone: "0902000200",
		FeePerHour: 150000, Bio: "Senior software engineering student",
	})
	if err != nil {
		return err
	}
	carol, err := svc.RegisterTutor(ctx, service.RegisterTutorRequest{
		Name: "Le Thi C", Email: "carol@dnu.edu.vn", Phone: "0903000300",
		FeePerHour: 100000, Bio: "Visiting lecturer, TOEIC coach",
	})
	if err != nil {
		return err
	}
	if _, err := svc.RegisterAdmin(ctx, service.RegisterUserRequest{
		Name: "Admin DNU", Email: "admin@dnu.edu.vn", Phone: "0904000400",
	}); err != nil {
		return err
	}

	for _, assignment := range []struct {
		tutor   *models.User
		subject *models.Subject
	}{
		{bob, math}, {bob, java}, {carol, english},
	} {
		if err := svc.AddTutorSubject(ctx, assignment.tutor.ID, assignment.subject.ID); err != nil {
			return err
		}
	}

	tomorrow := time.Now().AddDate(0, 0, 1)
	slotStart := time.Date(tomorrow.Year(), tomorrow.Month(), tomorrow.Day(), 18, 0, 0, 0, time.Local)
	slot, err := models.NewTimeSlot(slotStart, slotStart.Add(2*time.Hour))
	if err != nil {
		return err
	}
	if err := svc.AddAvailability(ctx, bob.ID, tomorrow, slot); err != nil {
		return err
	}

	if _, err := svc.PostLearningRequest(ctx, alice.ID, java.ID,
		"Need Java OOP help for a term project, prefer a tutor with industry experience."); err != nil {
		return err
	}

	listings, err := svc.SearchTutors(ctx, service.SearchTutorsRequest{SubjectID: java.ID})
	if err != nil {
		return err
	}
	for _, listing := range listings {
		logr.Sugar().Infow("tutor found",
			"name", listing.Tutor.Name,
			"fee_per_hour", listing.Tutor.Tutor.FeePerHour,
			"average_rating", listing.AverageRating,
		)
	}

	booking, err := svc.CreateBooking(ctx, service.CreateBookingRequest{
		StudentID:       alice.ID,
		TutorID:         bob.ID,
		SubjectID:       java.ID,
		ScheduledAt:     slotStart.Add(30 * time.Minute),
		DurationMinutes: 90,
	})
	if err != nil {
		return err
	}

	amount := models.LessonPrice(bob.Tutor.FeePerHour, booking.DurationMinutes)
	if _, err := svc.RecordPayment(ctx, service.RecordPaymentRequest{
		BookingID: booking.ID, Amount: amount, Method: "internal wallet",
	}); err != nil {
		return err
	}

	if err := svc.ConfirmBooking(ctx, booking.ID); err != nil {
		return err
	}
	if err := svc.CompleteBooking(ctx, booking.ID); err != nil {
		return err
	}

	if _, err := svc.AddRating(ctx, service.AddRatingRequest{
		StudentID: alice.ID, TutorID: bob.ID, Score: 5,
		Comment: "Very patient, explains clearly!",
	}); err != nil {
		return err
	}
	avg, err := svc.AverageRating(ctx, bob.ID)
	if err != nil {
		return err
	}
	logr.Sugar().Infow("tutor rated", "tutor", bob.Name, "average_rating", avg)

	users, err := svc.ListAllUsers(ctx)
	if err != nil {
		return err
	}
	transactions, err := svc.ListAllTransactions(ctx)
	if err != nil {
		return err
	}
	logr.Sugar().Infow("admin view", "users", len(users), "transactions", len(transactions))

	ledger, err := svc.LedgerDataset(ctx)
	if err != nil {
		return err
	}
	bookingsData, err := svc.BookingsDataset(ctx)
	if err != nil {
		return err
	}
	for _, renderer := range []export.Renderer{export.NewCSVRenderer(), export.NewPDFRenderer()} {
		path, err := export.WriteFile(renderer, ledger, "Transaction Ledger", cfg.Export.Dir, "transactions")
		if err != nil {
			return err
		}
		logr.Sugar().Infow("ledger exported", "path", path)
		if path, err = export.WriteFile(renderer, bookingsData, "Bookings", cfg.Export.Dir, "bookings"); err != nil {
			return err
		}
		logr.Sugar().Infow("bookings exported", "path", path)
	}

	return nil
}
