// Package metrics defines and registers all custom Prometheus metrics for
// the intake API. It is the single source of truth for metric names,
// labels, and help strings.
//
// Metrics register with the default Prometheus registry at package init;
// the /metrics endpoint is mounted by the router.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "intake"

// ── Submission metrics ────────────────────────────────────────────────────────

// RequestsSubmittedTotal counts archived submissions.
// Label:
//   - kind: "simple", "lead" or "advanced"
var RequestsSubmittedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "requests_submitted_total",
		Help:      "Total number of work requests archived, by kind.",
	},
	[]string{"kind"},
)

// ── Overlay metrics ───────────────────────────────────────────────────────────

// StatusUpdatesTotal counts overlay upserts.
// Label:
//   - status: the value written ("new" or "in_progress")
var StatusUpdatesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "status_updates_total",
		Help:      "Total number of per-artisan status upserts, by written value.",
	},
	[]string{"status"},
)

// ── Feed metrics ──────────────────────────────────────────────────────────────

// FeedCacheTotal counts feed cache lookups.
// Label:
//   - result: "hit" (served from cache) or "miss" (assembled from storage)
var FeedCacheTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "feed_cache_total",
		Help:      "Total number of feed cache lookups, labelled by result (hit/miss).",
	},
	[]string{"result"},
)

// FeedAssemblyDuration measures how long a full three-archive merge takes.
var FeedAssemblyDuration = promauto.NewHistogram(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "feed_assembly_duration_seconds",
		Help:      "Duration of feed assembly (archive reads, overlay join, sort).",
		Buckets:   prometheus.DefBuckets,
	},
)

// ── Auth metrics ──────────────────────────────────────────────────────────────

// ArtisanLoginsTotal counts artisan login attempts.
// Label:
//   - result: "ok" or "failed"
var ArtisanLoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "artisan_logins_total",
		Help:      "Total number of artisan login attempts, by result.",
	},
	[]string{"result"},
)
