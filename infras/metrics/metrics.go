// Package metrics holds the Prometheus collectors for the conversion engine and the HTTP layer.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "tzform"

// Metrics holds all Prometheus collectors for the service
type Metrics struct {
	// HTTP request metrics
	HTTPRequestsTotal    *prometheus.CounterVec
	HTTPRequestDuration  *prometheus.HistogramVec
	HTTPRequestsInFlight prometheus.Gauge

	// Resolver memo
	ResolverLookupsTotal *prometheus.CounterVec

	// Decode outcomes
	DecodeResolutionsTotal *prometheus.CounterVec
	DecodeIterations       prometheus.Histogram

	// Network zone detection
	DetectionsTotal   *prometheus.CounterVec
	DetectionDuration prometheus.Histogram

	// Form clock streams
	ClockStreamsActive prometheus.Gauge
}

// NewRegistry returns a registry carrying the Go runtime and process collectors.
func NewRegistry() *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return reg
}

// New creates the collectors and registers them with reg.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	m := &Metrics{}

	m.HTTPRequestsTotal = factory.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests",
		},
		[]string{"method", "route", "status"},
	)

	m.HTTPRequestDuration = factory.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "Duration of HTTP requests in seconds",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)

	m.HTTPRequestsInFlight = factory.NewGauge(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "http_requests_in_flight",
			Help:      "Number of HTTP requests currently being processed",
		},
	)

	m.ResolverLookupsTotal = factory.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "resolver_lookups_total",
			Help:      "Offset lookups served by the resolver, by memo result",
		},
		[]string{"result"},
	)

	m.DecodeResolutionsTotal = factory.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "decode_resolutions_total",
			Help:      "Civil readings decoded, by resolution kind",
		},
		[]string{"kind"},
	)

	m.DecodeIterations = factory.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "decode_iterations",
			Help:      "Fixed-point iterations spent per decode",
			Buckets:   []float64{1, 2, 3, 4, 5},
		},
	)

	m.DetectionsTotal = factory.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "zone_detections_total",
			Help:      "Network zone detection attempts, by outcome",
		},
		[]string{"outcome"},
	)

	m.DetectionDuration = factory.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "zone_detection_duration_seconds",
			Help:      "Duration of network zone detection requests",
			Buckets:   []float64{.05, .1, .25, .5, 1, 2, 3, 5},
		},
	)

	m.ClockStreamsActive = factory.NewGauge(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "clock_streams_active",
			Help:      "Open form clock websocket streams",
		},
	)

	return m
}

// RecordHTTPRequest records a finished HTTP request.
func (m *Metrics) RecordHTTPRequest(method, route, status string, duration time.Duration) {
	if m == nil {
		return
	}

	m.HTTPRequestsTotal.WithLabelValues(method, route, status).Inc()
	m.HTTPRequestDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}

// RecordResolverLookup counts a memo hit or miss.
func (m *Metrics) RecordResolverLookup(hit bool) {
	if m == nil {
		return
	}

	result := "miss"
	if hit {
		result = "hit"
	}

	m.ResolverLookupsTotal.WithLabelValues(result).Inc()
}

// RecordDecode counts a decode outcome.
func (m *Metrics) RecordDecode(kind string, iterations int) {
	if m == nil {
		return
	}

	m.DecodeResolutionsTotal.WithLabelValues(kind).Inc()
	m.DecodeIterations.Observe(float64(iterations))
}

// RecordDetection counts a detection attempt.
func (m *Metrics) RecordDetection(outcome string, duration time.Duration) {
	if m == nil {
		return
	}

	m.DetectionsTotal.WithLabelValues(outcome).Inc()
	m.DetectionDuration.Observe(duration.Seconds())
}

// TrackClockStream marks a clock stream as open until the returned func is called.
func (m *Metrics) TrackClockStream() func() {
	if m == nil {
		return func() {}
	}

	m.ClockStreamsActive.Inc()

	return m.ClockStreamsActive.Dec
}
