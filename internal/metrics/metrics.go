package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/cfelipe-app/Route/internal/capacity"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the Prometheus collectors of the listing service.
// Every instance uses its own registry so several services may coexist in one process.
type Metrics struct {
	registry         *prometheus.Registry
	listingRequests  *prometheus.CounterVec
	listingDuration  *prometheus.HistogramVec
	listingTotal     *prometheus.HistogramVec
	capacityRequests *prometheus.GaugeVec
}

// New creates and registers the collectors of the listing service
func New() *Metrics {
	metrics := &Metrics{
		registry: prometheus.NewRegistry(),
		listingRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "route",
			Name:      "listing_requests_total",
			Help:      "Total number of paged listing requests by entity and HTTP status code.",
		}, []string{"entity", "code"}),
		listingDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "route",
			Name:      "listing_duration_seconds",
			Help:      "Duration of paged listing requests by entity.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"entity"}),
		listingTotal: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "route",
			Name:      "listing_matches",
			Help:      "Amount of records matching the filters of successful paged listing requests.",
			Buckets:   prometheus.ExponentialBuckets(1, 4, 8),
		}, []string{"entity"}),
		capacityRequests: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: "route",
			Name:      "capacity_requests",
			Help:      "Current number of capacity requests by status.",
		}, []string{"status"}),
	}

	metrics.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		metrics.listingRequests,
		metrics.listingDuration,
		metrics.listingTotal,
		metrics.capacityRequests,
	)
	return metrics
}

// ObserveListing records a finished paged listing request.
// total is only recorded for successful requests.
func (metrics *Metrics) ObserveListing(entity string, code int, took time.Duration, total uint64) {
	metrics.listingRequests.WithLabelValues(entity, strconv.Itoa(code)).Inc()
	metrics.listingDuration.WithLabelValues(entity).Observe(took.Seconds())
	if code == http.StatusOK {
		metrics.listingTotal.WithLabelValues(entity).Observe(float64(total))
	}
}

// SetCapacitySummary publishes the current amount of capacity requests per status
func (metrics *Metrics) SetCapacitySummary(summary *capacity.Summary) {
	for status, n := range summary.ByStatus {
		metrics.capacityRequests.WithLabelValues(string(status)).Set(float64(n))
	}
}

// Handler returns the HTTP handler exposing the registered collectors
func (metrics *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(metrics.registry, promhttp.HandlerOpts{})
}
