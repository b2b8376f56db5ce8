// Package metrics defines and registers the portal's custom Prometheus
// metrics. It is the single source of truth for metric names, labels, and
// help strings; promauto registers everything with the default registry at
// package load.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "portal"

// LoginsTotal counts login attempts by outcome.
// Labels:
//   - outcome: "success", "invalid_credentials", "pending", "throttled"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by outcome.",
	},
	[]string{"outcome"},
)

// SessionsIssuedTotal counts session cookies issued.
// Label:
//   - kind: "login" or "refresh"
var SessionsIssuedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "sessions_issued_total",
		Help:      "Total number of session tokens issued.",
	},
	[]string{"kind"},
)

// AuthzDenialsTotal counts authorization-gate denials.
// Label:
//   - reason: "unauthenticated" or "forbidden"
var AuthzDenialsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "authz_denials_total",
		Help:      "Total number of requests denied by the authorization gate.",
	},
	[]string{"reason"},
)

// RequestDecisionsTotal counts account-request decisions.
// Label:
//   - decision: "approved" or "denied"
var RequestDecisionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "request_decisions_total",
		Help:      "Total number of account-request decisions.",
	},
	[]string{"decision"},
)

// UploadsTotal counts accepted file uploads.
var UploadsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "uploads_total",
		Help:      "Total number of accepted file uploads.",
	},
)

// MessagesSentTotal counts delivered direct messages.
var MessagesSentTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "messages_sent_total",
		Help:      "Total number of direct messages delivered.",
	},
)

// CompetitionsClosedTotal counts competitions closed by the deadline worker.
var CompetitionsClosedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "competitions_closed_total",
		Help:      "Total number of competitions closed after their deadline.",
	},
)
