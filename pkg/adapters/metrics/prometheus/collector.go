package prometheus

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Collector records happy number checks and HTTP traffic using Prometheus
type Collector struct {
	checks        *prometheus.CounterVec
	checkSteps    prometheus.Histogram
	checkDuration prometheus.Histogram

	httpRequests *prometheus.CounterVec
	httpDuration *prometheus.HistogramVec
}

// NewCollector creates a new Prometheus metrics collector registered with reg
func NewCollector(reg prometheus.Registerer) *Collector {
	factory := promauto.With(reg)

	return &Collector{
		checks: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "happy_checks_total",
				Help: "Total number of happy number checks",
			},
			[]string{"result"},
		),
		checkSteps: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "happy_check_steps",
				Help:    "Digit-square-sum transforms applied per check",
				Buckets: []float64{0, 1, 2, 3, 5, 8, 12, 16, 20},
			},
		),
		checkDuration: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "happy_check_duration_seconds",
				Help:    "Happy number check duration in seconds",
				Buckets: []float64{0.000001, 0.000005, 0.00001, 0.00005, 0.0001, 0.001},
			},
		),
		httpRequests: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "happy_http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "route", "status"},
		),
		httpDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "happy_http_request_duration_seconds",
				Help:    "HTTP request duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "route"},
		),
	}
}

// RecordCheck records the outcome of a happy number check
func (c *Collector) RecordCheck(isHappy bool, steps int, duration time.Duration) {
	result := "unhappy"
	if isHappy {
		result = "happy"
	}
	c.checks.WithLabelValues(result).Inc()
	c.checkSteps.Observe(float64(steps))
	c.checkDuration.Observe(duration.Seconds())
}

// RecordRequest records a served HTTP request.
// route is the matched route template, or empty when no route matched.
func (c *Collector) RecordRequest(method, route string, status int, duration time.Duration) {
	if route == "" {
		route = "unmatched"
	}
	c.httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	c.httpDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}
