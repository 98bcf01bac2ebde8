// Package metrics defines and registers all custom Prometheus metrics for
// the leaderboard API. It is the single source of truth for metric names,
// labels, and help strings. Metrics register with the default registry at
// package init via promauto and are exposed on GET /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "leaderboard"

// SignupsTotal counts registration attempts.
// Label:
//   - outcome: "created", "conflict", or "invalid"
var SignupsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "signups_total",
		Help:      "Total number of account registration attempts.",
	},
	[]string{"outcome"},
)

// LoginsTotal counts login attempts.
// Label:
//   - outcome: "success", "rejected", or "invalid"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts.",
	},
	[]string{"outcome"},
)

// ScoreSubmissionsTotal counts score submissions that reached the handler.
// Label:
//   - outcome: "created", "unauthorized", "forbidden", or "invalid"
var ScoreSubmissionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "score_submissions_total",
		Help:      "Total number of score submission attempts.",
	},
	[]string{"outcome"},
)

// ScoreQueriesTotal counts leaderboard reads.
var ScoreQueriesTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "score_queries_total",
		Help:      "Total number of leaderboard list queries.",
	},
)
