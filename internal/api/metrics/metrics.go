// Package metrics defines and registers all custom Prometheus metrics for the
// publishing API. It is the single source of truth for metric names, labels,
// and help strings.
//
// Metrics register themselves with the default registry via promauto at
// package init; exposing them only requires mounting the /metrics handler.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "publishing"

// ── Engagement metrics ────────────────────────────────────────────────────────

// ArticlesCreatedTotal counts successfully published articles.
var ArticlesCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "articles_created_total",
		Help:      "Total number of articles published.",
	},
)

// CommentsCreatedTotal counts comments attached to articles.
var CommentsCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "comments_created_total",
		Help:      "Total number of comments created and attached.",
	},
)

// LikesTotal counts accepted likes (first-time likes only).
var LikesTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "likes_total",
		Help:      "Total number of likes recorded.",
	},
)

// LikeConflictsTotal counts like attempts rejected because the user had
// already liked the article.
var LikeConflictsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "like_conflicts_total",
		Help:      "Total number of duplicate like attempts rejected.",
	},
)

// ── Auth metrics ──────────────────────────────────────────────────────────────

// AuthFailuresTotal counts rejected authentication attempts.
// Label:
//   - reason: "missing_token", "malformed_header" or "invalid_token"
var AuthFailuresTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "auth_failures_total",
		Help:      "Total number of requests rejected at the authentication gate.",
	},
	[]string{"reason"},
)

// ── Activity trail metrics ────────────────────────────────────────────────────

// ActivityQueueDepth tracks the number of events waiting in each activity
// dispatcher worker channel.
// Label:
//   - worker_id: numeric worker index (e.g. "0", "1", …)
var ActivityQueueDepth = promauto.NewGaugeVec(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "activity_queue_depth",
		Help:      "Current number of activity events pending per dispatcher worker.",
	},
	[]string{"worker_id"},
)

// ActivityEventsTotal counts activity trail writes by outcome.
// Label:
//   - result: "ok" or "error"
var ActivityEventsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "activity_events_total",
		Help:      "Total number of activity events processed, by result.",
	},
	[]string{"result"},
)
