package linkage

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"runtime"
	"slices"
	"time"

	"golang.org/x/sync/errgroup"
)

// ErrInvalidConfig is wrapped by every configuration validation error.
var ErrInvalidConfig = errors.New("linkage: invalid config")

// Config controls an Analyze run.
// Start with [DefaultConfig] and override the fields you need.
type Config struct {
	// PrefixLimit is how many of the shortest edges the cluster-product
	// query consumes. The effective prefix is min(PrefixLimit, edges).
	// Must be >= 0. Default: 1000.
	PrefixLimit int `yaml:"prefix_limit" json:"prefix_limit"`

	// TopComponents is how many of the largest components are multiplied
	// together. Must be >= 1. Default: 3.
	TopComponents int `yaml:"top_components" json:"top_components"`

	// Workers controls the number of goroutines used to build the edge
	// catalog. Values > 1 also run the two queries concurrently.
	// 0 means use runtime.NumCPU(). Default: 0 (auto).
	Workers int `yaml:"workers" json:"workers"`

	// Logger receives debug records for each stage. nil discards them.
	Logger *slog.Logger `yaml:"-" json:"-"`

	// Metrics, if non-nil, is updated with catalog and query measurements.
	Metrics *Metrics `yaml:"-" json:"-"`
}

// Result contains the output of Analyze.
type Result struct {
	// Points is the number of input points and Edges the catalog size.
	Points int `json:"points"`
	Edges  int `json:"edges"`

	// Prefix is the number of edges the cluster-product query consumed.
	Prefix int `json:"prefix"`

	// ClusterProduct is the product of the TopComponents largest component
	// sizes after uniting the first Prefix edges.
	ClusterProduct Value `json:"cluster_product"`

	// ComponentSizes lists every component size after the prefix, largest
	// first. Singletons are included.
	ComponentSizes []int `json:"component_sizes"`

	// Stats summarizes ComponentSizes.
	Stats Stats `json:"stats"`

	// Bottleneck is the edge whose union connected all points, and
	// BottleneckValue the product of its endpoints' X coordinates. Both are
	// nil when fewer than two points were given.
	Bottleneck      *Edge  `json:"bottleneck,omitempty"`
	BottleneckValue *Value `json:"bottleneck_value,omitempty"`
}

// DefaultConfig returns a Config with reasonable defaults.
func DefaultConfig() Config {
	return Config{
		PrefixLimit:   DefaultPrefixLimit,
		TopComponents: DefaultTopComponents,
	}
}

// validateConfig checks that cfg fields are valid and returns a descriptive error if not.
func validateConfig(cfg *Config) error {
	if cfg.PrefixLimit < 0 {
		return fmt.Errorf("%w: PrefixLimit must be >= 0, got %d", ErrInvalidConfig, cfg.PrefixLimit)
	}
	if cfg.TopComponents < 1 {
		return fmt.Errorf("%w: TopComponents must be >= 1, got %d", ErrInvalidConfig, cfg.TopComponents)
	}
	if cfg.Workers < 0 {
		return fmt.Errorf("%w: Workers must be >= 0, got %d", ErrInvalidConfig, cfg.Workers)
	}
	return nil
}

// applyDefaults fills in zero-valued config fields with their defaults.
// PrefixLimit is left alone: 0 is a valid prefix.
func applyDefaults(cfg *Config) {
	if cfg.TopComponents == 0 {
		cfg.TopComponents = DefaultTopComponents
	}
	if cfg.Workers == 0 {
		cfg.Workers = runtime.NumCPU()
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
}

// Analyze builds the edge catalog for points once and answers both
// connectivity queries over it. Each query owns a fresh UnionFind, so with
// Workers > 1 they run concurrently without sharing mutable state.
//
// Fewer than two points is not an error: ClusterProduct is 1 and the
// bottleneck fields are nil.
func Analyze(points []Point, cfg Config) (*Result, error) {
	applyDefaults(&cfg)
	if err := validateConfig(&cfg); err != nil {
		return nil, err
	}
	logger := cfg.Logger
	n := len(points)

	start := time.Now()
	edges, err := BuildEdgesParallel(points, cfg.Workers)
	if err != nil {
		return nil, err
	}
	cfg.Metrics.observeBuild(len(edges), time.Since(start))
	logger.Debug("edge catalog built",
		"points", n, "edges", len(edges), "workers", cfg.Workers,
		"elapsed", time.Since(start))

	result := &Result{
		Points: n,
		Edges:  len(edges),
		Prefix: min(cfg.PrefixLimit, len(edges)),
	}

	clusterQuery := func() error {
		start := time.Now()
		sizes := ComponentSizes(edges, n, cfg.PrefixLimit)
		result.ComponentSizes = sizes
		result.Stats = SizeStats(sizes)
		if n <= 1 {
			result.ClusterProduct = NewValue(1)
		} else {
			result.ClusterProduct = productOfLargest(sizes, cfg.TopComponents)
		}

		merged := n - len(sizes)
		cfg.Metrics.observeQuery(QueryClusterProduct, merged, result.Prefix-merged, time.Since(start))
		logger.Debug("cluster product computed",
			"prefix", result.Prefix, "components", len(sizes),
			"product", result.ClusterProduct.String(),
			"wide", !result.ClusterProduct.IsInt64())
		return nil
	}

	bottleneckQuery := func() error {
		start := time.Now()
		e, ok := BottleneckEdge(edges, n)
		if !ok {
			cfg.Metrics.observeQuery(QueryBottleneck, 0, 0, time.Since(start))
			logger.Debug("bottleneck undefined", "points", n)
			return nil
		}
		v := BottleneckValue(points, e)
		result.Bottleneck = &e
		result.BottleneckValue = &v

		scanned, _ := slices.BinarySearchFunc(edges, e, Edge.Compare)
		scanned++
		cfg.Metrics.observeQuery(QueryBottleneck, n-1, scanned-(n-1), time.Since(start))
		logger.Debug("bottleneck edge found",
			"edge", e.String(), "scanned", scanned,
			"value", v.String(), "wide", !v.IsInt64())
		return nil
	}

	if cfg.Workers > 1 {
		var g errgroup.Group
		g.Go(clusterQuery)
		g.Go(bottleneckQuery)
		if err := g.Wait(); err != nil {
			return nil, err
		}
	} else {
		if err := clusterQuery(); err != nil {
			return nil, err
		}
		if err := bottleneckQuery(); err != nil {
			return nil, err
		}
	}

	return result, nil
}
