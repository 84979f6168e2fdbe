package analysis

import "github.com/prometheus/client_golang/prometheus"

// Registry is the package-level Prometheus registry the Analysis
// Service registers its collectors on. The core never serves this
// itself — spec.md keeps the compiler core free of any server
// lifecycle — an embedding process (CLI, LSP, MCP) that wants a
// /metrics endpoint scrapes this registry on its own HTTP server.
var Registry = prometheus.NewRegistry()

var (
	analysesTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "yuho_analyses_total",
		Help: "Count of AnalyzeSource/AnalyzeFile calls by outcome.",
	}, []string{"outcome"})

	stageDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "yuho_analysis_stage_duration_seconds",
		Help:    "Per-stage duration of an analysis run, in seconds.",
		Buckets: prometheus.DefBuckets,
	}, []string{"stage"})
)

func init() {
	Registry.MustRegister(analysesTotal, stageDuration)
}

// recordOutcome increments the outcome counter for a completed
// analysis run. Valid outcomes: "ok", "parse_error", "ast_error",
// "semantic_error".
func recordOutcome(outcome string) {
	analysesTotal.WithLabelValues(outcome).Inc()
}

// recordStageDuration observes a stage's duration in seconds. Valid
// stages: "parse", "ast", "semantic", "total".
func recordStageDuration(stage string, seconds float64) {
	stageDuration.WithLabelValues(stage).Observe(seconds)
}
