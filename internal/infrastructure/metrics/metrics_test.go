package metrics

import (
	"testing"
	"time"

	"insurance_backoffice/internal/domain/entities"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCounters(t *testing.T) {
	m := New(prometheus.NewRegistry())

	m.EntityCreated(entities.KindCustomer)
	m.EntityCreated(entities.KindCustomer)
	m.ClaimTransitioned(entities.ClaimStatusPending, entities.ClaimStatusApproved)
	m.OperationRejected(entities.KindClaim, "transition")

	assert.Equal(t, 2.0, testutil.ToFloat64(m.EntitiesCreated.WithLabelValues("customer")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.ClaimTransitions.WithLabelValues("PENDING", "APPROVED")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.OperationsRejected.WithLabelValues("claim", "transition")))
}

func TestObserveRequest(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := New(reg)

	m.ObserveRequest("GET", "/v1/ping", "200", 3*time.Millisecond)

	n, err := testutil.GatherAndCount(reg, "backoffice_http_request_duration_seconds")
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestNilMetricsIsSafe(t *testing.T) {
	var m *Metrics
	m.EntityCreated(entities.KindPolicy)
	m.ClaimTransitioned(entities.ClaimStatusApproved, entities.ClaimStatusSettled)
	m.OperationRejected(entities.KindPolicy, "validation")
	m.ObserveRequest("GET", "/", "200", time.Millisecond)
}
