package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Counts bws invocations by resource, operation and result.
	CommandsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "bws_commands_total",
			Help: "Total number of bws CLI invocations.",
		},
		[]string{"resource", "operation", "result"}, // result = "ok" | "cli_error" | "exec_error" | "bad_output"
	)

	// Measures how long the bws process ran.
	CommandDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "bws_command_duration_seconds",
			Help:    "Duration of bws CLI invocations in seconds.",
			Buckets: prometheus.ExponentialBuckets(0.01, 2, 12), // 10ms → ~40s
		},
		[]string{"resource", "operation"},
	)

	// Requests rejected before any command ran.
	RejectedRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "bws_rejected_requests_total",
			Help: "Requests rejected before a bws command was run.",
		},
		[]string{"resource", "reason"}, // reason = "missing_auth" | "bad_payload"
	)
)

// ObserveCommand records the outcome and duration of one invocation
func ObserveCommand(resource, operation, result string, d time.Duration) {
	CommandsTotal.WithLabelValues(resource, operation, result).Inc()
	CommandDuration.WithLabelValues(resource, operation).Observe(d.Seconds())
}
