package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestRecordHTTPRequest(t *testing.T) {
	HTTPRequestsTotal.Reset()
	HTTPRequestDuration.Reset()

	RecordHTTPRequest("GET", "/api/appointments", "200", 0.5)

	count := testutil.ToFloat64(HTTPRequestsTotal.WithLabelValues("GET", "/api/appointments", "200"))
	assert.Equal(t, float64(1), count)
}

func TestRecordHTTPRequestMultiple(t *testing.T) {
	HTTPRequestsTotal.Reset()

	RecordHTTPRequest("POST", "/api/login", "200", 0.1)
	RecordHTTPRequest("POST", "/api/login", "200", 0.2)
	RecordHTTPRequest("POST", "/api/login", "401", 0.05)

	successCount := testutil.ToFloat64(HTTPRequestsTotal.WithLabelValues("POST", "/api/login", "200"))
	failCount := testutil.ToFloat64(HTTPRequestsTotal.WithLabelValues("POST", "/api/login", "401"))

	assert.Equal(t, float64(2), successCount)
	assert.Equal(t, float64(1), failCount)
}

func TestRecordAppointmentCreated(t *testing.T) {
	testCounter := prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "fitcenter_appointments_created_total_test",
			Help: "Total number of appointments booked",
		},
	)

	oldCounter := AppointmentsCreatedTotal
	AppointmentsCreatedTotal = testCounter
	defer func() { AppointmentsCreatedTotal = oldCounter }()

	RecordAppointmentCreated()
	RecordAppointmentCreated()

	count := testutil.ToFloat64(testCounter)
	assert.Equal(t, float64(2), count)
}

func TestRecordAppointmentCancellation(t *testing.T) {
	testCounter := prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "fitcenter_appointment_cancellations_total_test",
			Help: "Total number of appointments cancelled by members",
		},
	)

	oldCounter := AppointmentCancellationsTotal
	AppointmentCancellationsTotal = testCounter
	defer func() { AppointmentCancellationsTotal = oldCounter }()

	RecordAppointmentCancellation()

	count := testutil.ToFloat64(testCounter)
	assert.Equal(t, float64(1), count)
}

func TestRecordAppointmentTransition(t *testing.T) {
	AppointmentTransitionsTotal.Reset()

	RecordAppointmentTransition("approved")
	RecordAppointmentTransition("approved")
	RecordAppointmentTransition("rejected")

	approved := testutil.ToFloat64(AppointmentTransitionsTotal.WithLabelValues("approved"))
	rejected := testutil.ToFloat64(AppointmentTransitionsTotal.WithLabelValues("rejected"))

	assert.Equal(t, float64(2), approved)
	assert.Equal(t, float64(1), rejected)
}

func TestRecordEmail(t *testing.T) {
	EmailsSentTotal.Reset()

	RecordEmail("appointment_created", "success")
	RecordEmail("appointment_created", "failed")
	RecordEmail("appointment_status", "success")

	createdSuccess := testutil.ToFloat64(EmailsSentTotal.WithLabelValues("appointment_created", "success"))
	createdFailed := testutil.ToFloat64(EmailsSentTotal.WithLabelValues("appointment_created", "failed"))
	statusSuccess := testutil.ToFloat64(EmailsSentTotal.WithLabelValues("appointment_status", "success"))

	assert.Equal(t, float64(1), createdSuccess)
	assert.Equal(t, float64(1), createdFailed)
	assert.Equal(t, float64(1), statusSuccess)
}

func TestRecordRecommendation(t *testing.T) {
	RecommendationsTotal.Reset()

	RecordRecommendation("gemini")
	RecordRecommendation("rules")
	RecordRecommendation("rules")

	geminiCount := testutil.ToFloat64(RecommendationsTotal.WithLabelValues("gemini"))
	rulesCount := testutil.ToFloat64(RecommendationsTotal.WithLabelValues("rules"))

	assert.Equal(t, float64(1), geminiCount)
	assert.Equal(t, float64(2), rulesCount)
}

func TestEmailQueueLength(t *testing.T) {
	EmailQueueLength.Set(10)
	assert.Equal(t, float64(10), testutil.ToFloat64(EmailQueueLength))

	EmailQueueLength.Set(0)
	assert.Equal(t, float64(0), testutil.ToFloat64(EmailQueueLength))
}

func TestMetricsIntegration(t *testing.T) {
	HTTPRequestsTotal.Reset()
	AppointmentTransitionsTotal.Reset()
	EmailsSentTotal.Reset()

	RecordHTTPRequest("POST", "/api/appointments", "201", 0.25)
	RecordAppointmentTransition("completed")
	RecordEmail("appointment_status", "success")

	httpCount := testutil.ToFloat64(HTTPRequestsTotal.WithLabelValues("POST", "/api/appointments", "201"))
	transitionCount := testutil.ToFloat64(AppointmentTransitionsTotal.WithLabelValues("completed"))
	emailCount := testutil.ToFloat64(EmailsSentTotal.WithLabelValues("appointment_status", "success"))

	assert.Equal(t, float64(1), httpCount)
	assert.Equal(t, float64(1), transitionCount)
	assert.Equal(t, float64(1), emailCount)
}
