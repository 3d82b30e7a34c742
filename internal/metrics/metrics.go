package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fitbook_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "fitbook_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	BookingsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "fitbook_bookings_total",
			Help: "Total number of bookings created",
		},
	)

	BookingCancellationsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "fitbook_booking_cancellations_total",
			Help: "Total number of booking cancellations",
		},
	)

	BookingConflictsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fitbook_booking_conflicts_total",
			Help: "Booking attempts rejected by a state invariant",
		},
		[]string{"reason"},
	)

	SlotsCreatedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fitbook_time_slots_created_total",
			Help: "Total number of time slots created",
		},
		[]string{"category"},
	)

	SlotCancellationsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "fitbook_time_slot_cancellations_total",
			Help: "Total number of time slot cancellations",
		},
	)

	EmailsSentTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fitbook_emails_sent_total",
			Help: "Total number of emails sent",
		},
		[]string{"type", "status"},
	)

	EmailQueueLength = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "fitbook_email_queue_length",
			Help: "Current length of email queue",
		},
	)
)

func RecordHTTPRequest(method, path, status string, duration float64) {
	HTTPRequestsTotal.WithLabelValues(method, path, status).Inc()
	HTTPRequestDuration.WithLabelValues(method, path).Observe(duration)
}

func RecordBooking() {
	BookingsTotal.Inc()
}

func RecordBookingCancellation() {
	BookingCancellationsTotal.Inc()
}

func RecordBookingConflict(reason string) {
	BookingConflictsTotal.WithLabelValues(reason).Inc()
}

func RecordSlotCreated(category string) {
	SlotsCreatedTotal.WithLabelValues(category).Inc()
}

func RecordSlotCancellation() {
	SlotCancellationsTotal.Inc()
}

func RecordEmail(emailType, status string) {
	EmailsSentTotal.WithLabelValues(emailType, status).Inc()
}
