// Package metrics collects and exposes Prometheus metrics for the HTTP
// surface and the database pool.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Collector registers and records the service metrics. It takes an explicit
// Registerer so tests can use an isolated registry.
type Collector struct {
	requestsTotal   *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
	dbConnections   prometheus.GaugeFunc
}

// NewCollector creates a Collector and registers its metrics. activeConns
// reports the database pool's open connection count at scrape time.
func NewCollector(reg prometheus.Registerer, activeConns func() float64) *Collector {
	c := &Collector{
		requestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total HTTP requests",
		}, []string{"method", "endpoint", "status"}),
		requestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "endpoint"}),
		dbConnections: prometheus.NewGaugeFunc(prometheus.GaugeOpts{
			Name: "database_connections_active",
			Help: "Active database connections",
		}, activeConns),
	}

	reg.MustRegister(
		c.requestsTotal,
		c.requestDuration,
		c.dbConnections,
	)

	return c
}

// RecordRequest records one completed HTTP request.
func (c *Collector) RecordRequest(method, endpoint string, status int, duration time.Duration) {
	c.requestsTotal.WithLabelValues(method, endpoint, strconv.Itoa(status)).Inc()
	c.requestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

// Handler returns the scrape endpoint handler for the given gatherer.
func Handler(gatherer prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})
}
