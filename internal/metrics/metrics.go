package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fitcenter_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "fitcenter_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	AppointmentsCreatedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "fitcenter_appointments_created_total",
			Help: "Total number of appointments booked",
		},
	)

	AppointmentCancellationsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "fitcenter_appointment_cancellations_total",
			Help: "Total number of appointments cancelled by members",
		},
	)

	AppointmentTransitionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fitcenter_appointment_transitions_total",
			Help: "Total number of admin status transitions",
		},
		[]string{"status"},
	)

	EmailsSentTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fitcenter_emails_sent_total",
			Help: "Total number of emails sent",
		},
		[]string{"type", "status"},
	)

	EmailQueueLength = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "fitcenter_email_queue_length",
			Help: "Current length of email queue",
		},
	)

	RecommendationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fitcenter_recommendations_total",
			Help: "Total number of workout recommendations generated",
		},
		[]string{"source"},
	)
)

func RecordHTTPRequest(method, path, status string, duration float64) {
	HTTPRequestsTotal.WithLabelValues(method, path, status).Inc()
	HTTPRequestDuration.WithLabelValues(method, path).Observe(duration)
}

func RecordAppointmentCreated() {
	AppointmentsCreatedTotal.Inc()
}

func RecordAppointmentCancellation() {
	AppointmentCancellationsTotal.Inc()
}

func RecordAppointmentTransition(status string) {
	AppointmentTransitionsTotal.WithLabelValues(status).Inc()
}

func RecordEmail(emailType, status string) {
	EmailsSentTotal.WithLabelValues(emailType, status).Inc()
}

func RecordRecommendation(source string) {
	RecommendationsTotal.WithLabelValues(source).Inc()
}
