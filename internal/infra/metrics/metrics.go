package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var phaseTransitionsTotal = promauto.With(prometheus.DefaultRegisterer).NewCounterVec(
	prometheus.CounterOpts{
		Name: "kubedev_workspace_phase_transitions_total",
		Help: "Total number of workspace phase transitions.",
	},
	[]string{"from", "to"},
)

var provisionDurationSeconds = promauto.With(prometheus.DefaultRegisterer).NewHistogram(
	prometheus.HistogramOpts{
		Name:    "kubedev_workspace_provision_duration_seconds",
		Help:    "Time spent creating the dependent resources of a workspace.",
		Buckets: prometheus.ExponentialBuckets(0.05, 2, 10),
	},
)

var provisionFailuresTotal = promauto.With(prometheus.DefaultRegisterer).NewCounterVec(
	prometheus.CounterOpts{
		Name: "kubedev_workspace_provision_failures_total",
		Help: "Total number of provisioning failures by failing step.",
	},
	[]string{"step"},
)

var readinessOutcomesTotal = promauto.With(prometheus.DefaultRegisterer).NewCounterVec(
	prometheus.CounterOpts{
		Name: "kubedev_workspace_readiness_outcomes_total",
		Help: "Total number of finished readiness polls by outcome.",
	},
	[]string{"outcome"},
)

var sweepDeletionsTotal = promauto.With(prometheus.DefaultRegisterer).NewCounter(
	prometheus.CounterOpts{
		Name: "kubedev_workspace_sweep_deletions_total",
		Help: "Total number of expired workspaces deleted by the expiry sweep.",
	},
)

var activeJobs = promauto.With(prometheus.DefaultRegisterer).NewGauge(
	prometheus.GaugeOpts{
		Name: "kubedev_background_jobs_active",
		Help: "Number of background jobs (readiness polls, restarts) currently running.",
	},
)

var healthCheckUp = promauto.With(prometheus.DefaultRegisterer).NewGaugeVec(
	prometheus.GaugeOpts{
		Name: "kubedev_health_check_up",
		Help: "Result of the last dependency health check (1 ok, 0 failed).",
	},
	[]string{"check"},
)

var healthCheckDurationSeconds = promauto.With(prometheus.DefaultRegisterer).NewHistogramVec(
	prometheus.HistogramOpts{
		Name:    "kubedev_health_check_duration_seconds",
		Help:    "Latency of dependency health checks.",
		Buckets: prometheus.ExponentialBuckets(0.001, 4, 8),
	},
	[]string{"check"},
)

var apiRequestsTotal = promauto.With(prometheus.DefaultRegisterer).NewCounterVec(
	prometheus.CounterOpts{
		Name: "kubedev_api_requests_total",
		Help: "Total number of lifecycle API requests by route and status code.",
	},
	[]string{"method", "route", "code"},
)

var apiRequestDurationSeconds = promauto.With(prometheus.DefaultRegisterer).NewHistogramVec(
	prometheus.HistogramOpts{
		Name:    "kubedev_api_request_duration_seconds",
		Help:    "Latency of lifecycle API requests by route.",
		Buckets: prometheus.DefBuckets,
	},
	[]string{"method", "route"},
)

// RecordTransition counts a phase change of a workspace.
func RecordTransition(from, to string) {
	if from == "" {
		from = "Pending"
	}

	phaseTransitionsTotal.WithLabelValues(from, to).Inc()
}

// ObserveProvisionDuration records the time a successful provisioning took.
func ObserveProvisionDuration(d time.Duration) {
	provisionDurationSeconds.Observe(d.Seconds())
}

// RecordProvisionFailure counts a provisioning failure at step.
func RecordProvisionFailure(step string) {
	provisionFailuresTotal.WithLabelValues(step).Inc()
}

// RecordReadinessOutcome counts a finished readiness poll.
func RecordReadinessOutcome(outcome string) {
	readinessOutcomesTotal.WithLabelValues(outcome).Inc()
}

// RecordSweepDeletion counts one workspace removed by the expiry sweep.
func RecordSweepDeletion() {
	sweepDeletionsTotal.Inc()
}

// SetActiveJobs sets the number of running background jobs.
func SetActiveJobs(n int) {
	activeJobs.Set(float64(n))
}

// RecordHealthCheck stores the outcome of one dependency health check.
func RecordHealthCheck(check string, ok bool, latency time.Duration) {
	up := 0.0
	if ok {
		up = 1
	}

	healthCheckUp.WithLabelValues(check).Set(up)
	healthCheckDurationSeconds.WithLabelValues(check).Observe(latency.Seconds())
}

// ObserveAPIRequest records one served lifecycle API request. route is the
// matched route pattern, never the raw path.
func ObserveAPIRequest(method, route string, code int, d time.Duration) {
	apiRequestsTotal.WithLabelValues(method, route, strconv.Itoa(code)).Inc()
	apiRequestDurationSeconds.WithLabelValues(method, route).Observe(d.Seconds())
}
