// Package metrics defines the custom Prometheus metrics for the attendance
// API. It is the single source of truth for metric names, labels, and help
// strings. Metrics registered here use the default registry, which the
// router exposes on /metrics alongside the per-request HTTP metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "attendance"

// StudentOpsTotal counts record mutations.
// Labels:
//   - op: "create", "update" or "delete"
//   - result: "success" or "failure"
var StudentOpsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "student_ops_total",
		Help:      "Total number of student record mutations, by operation and result.",
	},
	[]string{"op", "result"},
)

// LoginAttemptsTotal counts token requests.
// Label:
//   - result: "success" or "failure"
var LoginAttemptsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "login_attempts_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// RegistrationsTotal counts successful user registrations.
var RegistrationsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "registrations_total",
		Help:      "Total number of successfully registered users.",
	},
)
