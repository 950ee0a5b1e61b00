// Package metrics defines all custom Prometheus metrics for the storefront
// client engine. It is the single source of truth for metric names, labels,
// and help strings.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "storefront"

// AuthAttemptsTotal counts credential exchanges.
// Labels:
//   - op: "login" or "register"
//   - outcome: "ok", "rejected", "transport", "local"
var AuthAttemptsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "auth_attempts_total",
		Help:      "Total number of login/register attempts, by operation and outcome.",
	},
	[]string{"op", "outcome"},
)

// OrdersSubmittedTotal counts order submissions.
// Label:
//   - outcome: "ok", "rejected", "transport", "local"
var OrdersSubmittedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "orders_submitted_total",
		Help:      "Total number of order submissions, by outcome.",
	},
	[]string{"outcome"},
)

// MessagesShownTotal counts transient messages rendered to the user.
// Label:
//   - kind: "success" or "error"
var MessagesShownTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "messages_shown_total",
		Help:      "Total number of transient messages shown, by kind.",
	},
	[]string{"kind"},
)

// BackendRequestDuration measures one round trip to the storefront API.
// Labels:
//   - endpoint: "login", "register", "order", "orders"
//   - outcome: "ok", "rejected", "transport"
var BackendRequestDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "backend_request_duration_seconds",
		Help:      "Duration of backend API round trips, by endpoint and outcome.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"endpoint", "outcome"},
)
