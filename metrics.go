package linkage

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Query names used as metric labels.
const (
	QueryClusterProduct = "cluster_product"
	QueryBottleneck     = "bottleneck"
)

// Metrics holds the Prometheus collectors updated by Analyze. A nil
// *Metrics is valid and records nothing.
type Metrics struct {
	edgesBuilt    prometheus.Counter
	buildDuration prometheus.Histogram
	unions        *prometheus.CounterVec
	queryDuration *prometheus.HistogramVec
}

// NewMetrics creates the collectors and registers them with reg. A nil reg
// creates unregistered collectors.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		edgesBuilt: factory.NewCounter(prometheus.CounterOpts{
			Name: "linkage_edges_built_total",
			Help: "Total edges added to edge catalogs",
		}),
		buildDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "linkage_edge_build_duration_seconds",
			Help:    "Edge catalog construction and sort duration in seconds",
			Buckets: prometheus.ExponentialBuckets(0.0001, 4, 10), // 0.1ms to ~26s
		}),
		unions: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "linkage_unions_total",
			Help: "Union calls by query and outcome",
		}, []string{"query", "merged"}),
		queryDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "linkage_query_duration_seconds",
			Help:    "Query duration in seconds",
			Buckets: prometheus.ExponentialBuckets(0.0001, 4, 10),
		}, []string{"query"}),
	}
}

func (m *Metrics) observeBuild(edges int, d time.Duration) {
	if m == nil {
		return
	}
	m.edgesBuilt.Add(float64(edges))
	m.buildDuration.Observe(d.Seconds())
}

func (m *Metrics) observeQuery(query string, merged, skipped int, d time.Duration) {
	if m == nil {
		return
	}
	m.unions.WithLabelValues(query, "true").Add(float64(merged))
	m.unions.WithLabelValues(query, "false").Add(float64(skipped))
	m.queryDuration.WithLabelValues(query).Observe(d.Seconds())
}
