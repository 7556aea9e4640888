// Package observability registers the Prometheus collectors for the API.
package observability

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	requestsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "planfit",
		Subsystem: "http",
		Name:      "requests_total",
		Help:      "Number of HTTP requests processed, partitioned by method, route and status code.",
	}, []string{"method", "route", "status"})

	requestDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "planfit",
		Subsystem: "http",
		Name:      "request_duration_seconds",
		Help:      "HTTP request latency in seconds, partitioned by method and route.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method", "route"})

	plansGeneratedTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "planfit",
		Subsystem: "engine",
		Name:      "plans_generated_total",
		Help:      "Number of workout plans generated, partitioned by goal.",
	}, []string{"goal"})

	challengesGeneratedTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "planfit",
		Subsystem: "engine",
		Name:      "challenges_generated_total",
		Help:      "Number of daily challenges generated, including batch requests.",
	})
)

func init() {
	prometheus.MustRegister(requestsTotal, requestDuration, plansGeneratedTotal, challengesGeneratedTotal)
}

// ObserveRequest records one handled HTTP request.
func ObserveRequest(method, route, status string, elapsed time.Duration) {
	requestsTotal.WithLabelValues(method, route, status).Inc()
	requestDuration.WithLabelValues(method, route).Observe(elapsed.Seconds())
}

// RecordPlanGenerated counts a generated workout plan.
func RecordPlanGenerated(goal string) {
	plansGeneratedTotal.WithLabelValues(goal).Inc()
}

// RecordChallengesGenerated counts n generated daily challenges.
func RecordChallengesGenerated(n int) {
	challengesGeneratedTotal.Add(float64(n))
}
