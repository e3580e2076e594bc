package metrics

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollectorRecordsRequests(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := NewCollector(reg, func() float64 { return 3 })

	c.RecordRequest("GET", "/api/flags", 200, 25*time.Millisecond)
	c.RecordRequest("GET", "/api/flags", 200, 30*time.Millisecond)
	c.RecordRequest("POST", "/api/flags", 400, 1*time.Millisecond)

	families, err := reg.Gather()
	require.NoError(t, err)

	byName := map[string]bool{}
	for _, mf := range families {
		byName[mf.GetName()] = true
		if mf.GetName() == "database_connections_active" {
			require.Len(t, mf.GetMetric(), 1)
			assert.Equal(t, float64(3), mf.GetMetric()[0].GetGauge().GetValue())
		}
	}
	assert.True(t, byName["http_requests_total"])
	assert.True(t, byName["http_request_duration_seconds"])
	assert.True(t, byName["database_connections_active"])
}

func TestHandlerServesMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := NewCollector(reg, func() float64 { return 0 })
	c.RecordRequest("GET", "/api/stats", 200, time.Millisecond)

	req := httptest.NewRequest("GET", "/metrics", nil)
	rec := httptest.NewRecorder()
	Handler(reg).ServeHTTP(rec, req)

	assert.Equal(t, 200, rec.Code)
	assert.Contains(t, rec.Body.String(), "http_requests_total")
}
