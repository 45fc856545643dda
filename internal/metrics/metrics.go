package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTPRequestsTotal counts handled requests by method, path and status.
var HTTPRequestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "notebook_http_requests_total",
		Help: "Total HTTP requests processed, labeled by method, path and status.",
	},
	[]string{"method", "path", "status"},
)

// AuthOutcomesTotal counts authentication attempts by outcome. The
// account-state reasons live here for auditing; they are never exposed
// in HTTP responses.
var AuthOutcomesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "notebook_auth_outcomes_total",
		Help: "Authentication outcomes, labeled by internal reason.",
	},
	[]string{"outcome"},
)

// AuthzDeniedTotal counts authorization denials by requirement kind.
var AuthzDeniedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "notebook_authz_denied_total",
		Help: "Authorization denials, labeled by the failed requirement.",
	},
	[]string{"requirement"},
)
