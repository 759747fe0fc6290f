package metrics

import (
	"net/http"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestEntityMetrics(t *testing.T) {
	m := NewEntityMetrics("metrics_test_contact")

	m.RecordMutation("create")
	m.RecordMutation("create")
	m.RecordValidationFailure()

	assert.Equal(t, 2.0, testutil.ToFloat64(EntityMutationsTotal.WithLabelValues("metrics_test_contact", "create")))
	assert.Equal(t, 1.0, testutil.ToFloat64(ValidationFailuresTotal.WithLabelValues("metrics_test_contact")))
}

func TestRecordRequest(t *testing.T) {
	RecordRequest(http.MethodGet, "/metrics-test/:id", http.StatusNotFound, 15*time.Millisecond)

	assert.Equal(t, 1.0, testutil.ToFloat64(HTTPRequestsTotal.WithLabelValues(http.MethodGet, "/metrics-test/:id", "404")))
	assert.GreaterOrEqual(t, testutil.CollectAndCount(HTTPRequestDuration), 1)
}

func TestRecordReport(t *testing.T) {
	RecordReport("metrics-test-stock", "csv")
	assert.Equal(t, 1.0, testutil.ToFloat64(ReportsGeneratedTotal.WithLabelValues("metrics-test-stock", "csv")))
}
