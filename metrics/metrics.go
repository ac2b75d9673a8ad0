// Package metrics collects and exposes Prometheus metrics.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Collector struct {
	httpRequests *prometheus.CounterVec
	httpLatency  prometheus.Histogram
	ledgerEvents *prometheus.CounterVec
}

func NewCollector(reg prometheus.Registerer) *Collector {
	c := &Collector{
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "bikerental_http_requests_total",
			Help: "HTTP requests by method, path and status code",
		}, []string{"method", "path", "status"}),
		httpLatency: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "bikerental_http_request_duration_seconds",
			Help:    "HTTP request latency in seconds",
			Buckets: prometheus.DefBuckets,
		}),
		ledgerEvents: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "bikerental_ledger_events_total",
			Help: "Rental ledger events by kind",
		}, []string{"kind"}),
	}

	reg.MustRegister(c.httpRequests, c.httpLatency, c.ledgerEvents)
	return c
}

func (c *Collector) ObserveHTTPRequest(method, path string, status int, dur time.Duration) {
	c.httpRequests.WithLabelValues(method, path, strconv.Itoa(status)).Inc()
	c.httpLatency.Observe(dur.Seconds())
}

func (c *Collector) RecordLedgerEvent(kind string) {
	c.ledgerEvents.WithLabelValues(kind).Inc()
}

// Handler returns the scrape endpoint handler for the given gatherer.
func Handler(gatherer prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})
}
