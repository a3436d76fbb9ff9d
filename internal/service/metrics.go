package service

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/dnu-connect/tutorconnect/internal/models"
)

// Metrics encapsulates Prometheus instrumentation for marketplace
// operations. All methods are nil-safe so callers can run without metrics.
type Metrics struct {
	registry           *prometheus.Registry
	registrations      *prometheus.CounterVec
	bookingTransitions *prometheus.CounterVec
	ratingsSubmitted   prometheus.Counter
	paymentsRecorded   prometheus.Counter
	paymentVolume      prometheus.Counter
}

// NewMetrics registers the marketplace collectors on a fresh registry.
func NewMetrics() *Metrics {
	registry := prometheus.NewRegistry()

	registrations := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "marketplace_registrations_total",
		Help: "Total user registrations by role",
	}, []string{"role"})

	bookingTransitions := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "marketplace_booking_transitions_total",
		Help: "Total booking lifecycle transitions by resulting status",
	}, []string{"status"})

	ratingsSubmitted := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "marketplace_ratings_submitted_total",
		Help: "Total ratings accepted",
	})

	paymentsRecorded := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "marketplace_payments_recorded_total",
		Help: "Total transactions appended to the ledger",
	})

	paymentVolume := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "marketplace_payment_volume_total",
		Help: "Sum of recorded payment amounts",
	})

	registry.MustRegister(registrations, bookingTransitions, ratingsSubmitted, paymentsRecorded, paymentVolume)

	return &Metrics{
		registry:           registry,
		registrations:      registrations,
		bookingTransitions: bookingTransitions,
		ratingsSubmitted:   ratingsSubmitted,
		paymentsRecorded:   paymentsRecorded,
		paymentVolume:      paymentVolume,
	}
}

// Gatherer exposes the underlying registry for scraping or snapshots.
func (m *Metrics) Gatherer() prometheus.Gatherer {
	if m == nil {
		return prometheus.NewRegistry()
	}
	return m.registry
}

// RecordRegistration counts a registration by role.
func (m *Metrics) RecordRegistration(role models.UserRole) {
	if m == nil {
		return
	}
	m.registrations.WithLabelValues(string(role)).Inc()
}

// RecordBookingStatus counts a lifecycle transition by resulting status.
func (m *Metrics) RecordBookingStatus(status models.BookingStatus) {
	if m == nil {
		return
	}
	m.bookingTransitions.WithLabelValues(string(status)).Inc()
}

// RecordRating counts an accepted rating.
func (m *Metrics) RecordRating() {
	if m == nil {
		return
	}
	m.ratingsSubmitted.Inc()
}

// RecordPayment counts a ledger append and adds its amount to the volume.
func (m *Metrics) RecordPayment(amount float64) {
	if m == nil {
		return
	}
	m.paymentsRecorded.Inc()
	if amount > 0 {
		m.paymentVolume.Add(amount)
	}
}
