// Package metrics defines and registers all custom Prometheus metrics for
// the SellerHub API. It is the single source of truth for metric names,
// labels, and help strings.
//
// Metrics register themselves with the default Prometheus registry via
// promauto; the /metrics endpoint exposes them.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "sellerhub"

// ── Auth metrics ──────────────────────────────────────────────────────────────

// RegistrationsTotal counts successfully created seller accounts.
var RegistrationsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "registrations_total",
		Help:      "Total number of seller accounts registered.",
	},
)

// LoginsTotal counts login attempts by outcome.
// Label:
//   - result: "ok", "rejected", or "throttled"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, labelled by result.",
	},
	[]string{"result"},
)

// TokenVerificationsTotal counts bearer token verifications at the auth
// middleware.
// Label:
//   - result: "ok" or "rejected"
var TokenVerificationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "token_verifications_total",
		Help:      "Total number of bearer token verifications, labelled by result.",
	},
	[]string{"result"},
)

// ── Catalog metrics ───────────────────────────────────────────────────────────

// ProductsCreatedTotal counts newly created catalog entries.
var ProductsCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "products_created_total",
		Help:      "Total number of products created.",
	},
)
