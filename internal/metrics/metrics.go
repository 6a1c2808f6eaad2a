package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gymclass_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "gymclass_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	RegistrationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gymclass_registrations_total",
			Help: "Total number of class registrations by assigned status",
		},
		[]string{"status"},
	)

	RegistrationCancellationsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "gymclass_registration_cancellations_total",
			Help: "Total number of registration cancellations",
		},
	)

	OccurrencesCreatedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gymclass_occurrences_created_total",
			Help: "Total number of class occurrences created",
		},
		[]string{"mode"},
	)

	ReschedulesTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "gymclass_reschedules_total",
			Help: "Total number of occurrence reschedules",
		},
	)

	EmailsSentTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gymclass_emails_sent_total",
			Help: "Total number of emails sent",
		},
		[]string{"type", "status"},
	)

	EmailQueueLength = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "gymclass_email_queue_length",
			Help: "Current length of email queue",
		},
	)
)

func RecordHTTPRequest(method, path, status string, duration float64) {
	HTTPRequestsTotal.WithLabelValues(method, path, status).Inc()
	HTTPRequestDuration.WithLabelValues(method, path).Observe(duration)
}

func RecordRegistration(status string) {
	RegistrationsTotal.WithLabelValues(status).Inc()
}

func RecordCancellation() {
	RegistrationCancellationsTotal.Inc()
}

func RecordOccurrencesCreated(mode string, n int) {
	OccurrencesCreatedTotal.WithLabelValues(mode).Add(float64(n))
}

func RecordReschedule() {
	ReschedulesTotal.Inc()
}

func RecordEmail(emailType, status string) {
	EmailsSentTotal.WithLabelValues(emailType, status).Inc()
}
