package metrics

import (
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	RepositoryOperations = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "data_repository_operations_total", Help: "Total repository operations by outcome"},
		[]string{"repository", "operation", "outcome"},
	)
	RepositoryDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "data_repository_operation_duration_seconds",
			Help:    "Duration of repository operations, one unit of work each",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"repository", "operation"},
	)
	PublishedEvents = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "data_events_published_total", Help: "Total change events handed to the publisher"},
		[]string{"topic", "outcome"},
	)
	HTTPRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "data_http_requests_total", Help: "Total HTTP requests by route and status"},
		[]string{"method", "route", "status"},
	)
	HTTPDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "data_http_request_duration_seconds",
			Help:    "Duration of HTTP requests",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)
)

var registerOnce sync.Once

// Register adds the collectors to the default registry. Safe to call more than once.
func Register() {
	registerOnce.Do(func() {
		prometheus.MustRegister(RepositoryOperations, RepositoryDuration, PublishedEvents, HTTPRequests, HTTPDuration)
	})
}

// ObserveOperation records the outcome and latency of one repository call
func ObserveOperation(repository, operation string, start time.Time, err error) {
	RepositoryOperations.WithLabelValues(repository, operation, Outcome(err)).Inc()
	RepositoryDuration.WithLabelValues(repository, operation).Observe(time.Since(start).Seconds())
}

// ObserveHTTP records one served request. route is the matched pattern, not the raw path.
func ObserveHTTP(method, route, status string, d time.Duration) {
	HTTPRequests.WithLabelValues(method, route, status).Inc()
	HTTPDuration.WithLabelValues(method, route).Observe(d.Seconds())
}

func Outcome(err error) string {
	if err != nil {
		return "error"
	}
	return "ok"
}
