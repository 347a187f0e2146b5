package services

import (
	"sync/atomic"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	bootTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "fastos_boot_total",
			Help: "Total completed boot sequences",
		},
	)

	bootDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "fastos_boot_duration_seconds",
			Help:    "Wall time of boot sequences",
			Buckets: prometheus.DefBuckets,
		},
	)

	shutdownTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "fastos_shutdown_total",
			Help: "Total completed shutdown sequences",
		},
	)

	shutdownDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "fastos_shutdown_duration_seconds",
			Help:    "Wall time of shutdown sequences",
			Buckets: prometheus.DefBuckets,
		},
	)

	commandTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fastos_command_total",
			Help: "Total interpreted console commands",
		},
		[]string{"command"},
	)

	requestCount = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fastos_request_total",
			Help: "Total HTTP API requests",
		},
		[]string{"path"},
	)

	requestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "fastos_request_duration_seconds",
			Help:    "Duration of HTTP API requests",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"path"},
	)
)

// Local counters mirror the prometheus ones for the healthz endpoint, which
// reports plain totals without scraping the registry.
var (
	totalRequests int64
	totalErrors   int64
)

func init() {
	prometheus.MustRegister(bootTotal)
	prometheus.MustRegister(bootDuration)
	prometheus.MustRegister(shutdownTotal)
	prometheus.MustRegister(shutdownDuration)
	prometheus.MustRegister(commandTotal)
	prometheus.MustRegister(requestCount)
	prometheus.MustRegister(requestDuration)
}

func RecordBoot(elapsed time.Duration) {
	bootTotal.Inc()
	bootDuration.Observe(elapsed.Seconds())
}

func RecordShutdown(elapsed time.Duration) {
	shutdownTotal.Inc()
	shutdownDuration.Observe(elapsed.Seconds())
}

func RecordCommand(command string) {
	commandTotal.WithLabelValues(command).Inc()
}

func IncrementRequestCount(path string) {
	requestCount.WithLabelValues(path).Inc()
	atomic.AddInt64(&totalRequests, 1)
}

func RecordRequestDuration(path string, seconds float64) {
	requestDuration.WithLabelValues(path).Observe(seconds)
}

func IncrementErrorCount(path string) {
	atomic.AddInt64(&totalErrors, 1)
}

func GetTotalRequestCount() int64 {
	return atomic.LoadInt64(&totalRequests)
}

func GetTotalErrorCount() int64 {
	return atomic.LoadInt64(&totalErrors)
}
