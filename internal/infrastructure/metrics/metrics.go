package metrics

import (
	"time"

	"insurance_backoffice/internal/domain/entities"
	"insurance_backoffice/internal/usecase/interfaces"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics provides observability for the back office.
type Metrics struct {
	// Records created by kind
	EntitiesCreated *prometheus.CounterVec

	// Claim status changes by from/to
	ClaimTransitions *prometheus.CounterVec

	// Rejected writes by kind and reason
	OperationsRejected *prometheus.CounterVec

	// HTTP latency by method, route and status
	RequestDuration *prometheus.HistogramVec
}

var _ interfaces.IMetricsRecorder = (*Metrics)(nil)

// New registers every metric on reg.
func New(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		EntitiesCreated: f.NewCounterVec(prometheus.CounterOpts{
			Name: "backoffice_entities_created_total",
			Help: "Total records created by kind",
		}, []string{"kind"}),

		ClaimTransitions: f.NewCounterVec(prometheus.CounterOpts{
			Name: "backoffice_claim_transitions_total",
			Help: "Total claim status changes by source and target status",
		}, []string{"from", "to"}),

		OperationsRejected: f.NewCounterVec(prometheus.CounterOpts{
			Name: "backoffice_operations_rejected_total",
			Help: "Total rejected writes by kind and reason",
		}, []string{"kind", "reason"}), // reason: "validation", "transition", "integrity", "not_found"

		RequestDuration: f.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "backoffice_http_request_duration_seconds",
			Help:    "Duration of HTTP requests",
			Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
		}, []string{"method", "route", "status"}),
	}
}

func (m *Metrics) EntityCreated(kind entities.Kind) {
	if m != nil {
		m.EntitiesCreated.WithLabelValues(string(kind)).Inc()
	}
}

func (m *Metrics) ClaimTransitioned(from, to entities.ClaimStatus) {
	if m != nil {
		m.ClaimTransitions.WithLabelValues(string(from), string(to)).Inc()
	}
}

func (m *Metrics) OperationRejected(kind entities.Kind, reason string) {
	if m != nil {
		m.OperationsRejected.WithLabelValues(string(kind), reason).Inc()
	}
}

// ObserveRequest records the duration of one HTTP request.
func (m *Metrics) ObserveRequest(method, route, status string, d time.Duration) {
	if m != nil {
		m.RequestDuration.WithLabelValues(method, route, status).Observe(d.Seconds())
	}
}
