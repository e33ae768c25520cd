// Command linkage reads 3-D integer points ("x,y,z" per line) and prints the
// cluster product and bottleneck value computed by package linkage.
//
// Usage:
//
//	linkage points.txt
//	linkage --limit 10 --json points.txt
//	cat points.txt | linkage
//	linkage tree points.txt
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/TrevorS/linkage"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
)

type options struct {
	configPath string
	limit      int
	top        int
	workers    int
	json       bool
	logLevel   string
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &options{}
	root := &cobra.Command{
		Use:   "linkage [points-file]",
		Short: "Cluster 3-D points by shortest pairwise connections",
		Long: `Builds every pairwise squared distance between the input points, unites the
shortest --limit edges and prints the product of the --top largest components.
It then keeps uniting edges until all points are connected and prints the
product of the X coordinates of the edge that completed the connection.

Reads standard input when no file (or "-") is given.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAnalyze(cmd, opts, args)
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&opts.configPath, "config", "", "YAML config file (prefix_limit, top_components, workers)")
	flags.IntVar(&opts.workers, "workers", 0, "goroutines for edge construction (0 = all CPUs)")
	flags.StringVar(&opts.logLevel, "log-level", "warn", "log level: debug, info, warn, error")
	flags.BoolVar(&opts.json, "json", false, "print results as JSON")
	root.Flags().IntVar(&opts.limit, "limit", linkage.DefaultPrefixLimit, "number of shortest edges to unite for the cluster product")
	root.Flags().IntVar(&opts.top, "top", linkage.DefaultTopComponents, "number of largest components to multiply")

	root.AddCommand(newTreeCmd(opts))
	return root
}

// loadConfig layers explicitly set flags over the config file (if any) over
// the library defaults.
func loadConfig(cmd *cobra.Command, opts *options) (linkage.Config, error) {
	cfg := linkage.DefaultConfig()
	if opts.configPath != "" {
		var err error
		if cfg, err = linkage.LoadConfig(opts.configPath); err != nil {
			return cfg, err
		}
	}
	if f := cmd.Flags().Lookup("limit"); f != nil && f.Changed {
		cfg.PrefixLimit = opts.limit
	}
	if f := cmd.Flags().Lookup("top"); f != nil && f.Changed {
		cfg.TopComponents = opts.top
	}
	if cmd.Flags().Changed("workers") {
		cfg.Workers = opts.workers
	}

	logger, err := newLogger(cmd.ErrOrStderr(), opts.logLevel)
	if err != nil {
		return cfg, err
	}
	cfg.Logger = logger
	return cfg, nil
}

func newLogger(w io.Writer, level string) (*slog.Logger, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(strings.ToUpper(level))); err != nil {
		return nil, fmt.Errorf("invalid --log-level %q", level)
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl})), nil
}

func readPoints(cmd *cobra.Command, args []string) ([]linkage.Point, error) {
	if len(args) == 0 || args[0] == "-" {
		return linkage.ParsePoints(cmd.InOrStdin())
	}
	return linkage.ReadPointsFile(args[0])
}

func runAnalyze(cmd *cobra.Command, opts *options, args []string) error {
	cfg, err := loadConfig(cmd, opts)
	if err != nil {
		return report(cmd, err)
	}
	points, err := readPoints(cmd, args)
	if err != nil {
		return report(cmd, err)
	}

	reg := prometheus.NewRegistry()
	cfg.Metrics = linkage.NewMetrics(reg)

	result, err := linkage.Analyze(points, cfg)
	if err != nil {
		return report(cmd, err)
	}
	logMetrics(cfg.Logger, reg)

	if opts.json {
		return writeJSON(cmd.OutOrStdout(), result)
	}
	return writeText(cmd.OutOrStdout(), result)
}

// report prints err and hands it back so main exits non-zero.
func report(cmd *cobra.Command, err error) error {
	fmt.Fprintln(cmd.ErrOrStderr(), "Error:", err)
	return err
}

// logMetrics writes every gathered sample at debug level.
func logMetrics(logger *slog.Logger, reg *prometheus.Registry) {
	families, err := reg.Gather()
	if err != nil {
		logger.Warn("gathering metrics failed", "error", err)
		return
	}
	for _, mf := range families {
		for _, m := range mf.GetMetric() {
			attrs := []any{"metric", mf.GetName()}
			for _, lp := range m.GetLabel() {
				attrs = append(attrs, lp.GetName(), lp.GetValue())
			}
			switch {
			case m.GetCounter() != nil:
				attrs = append(attrs, "value", m.GetCounter().GetValue())
			case m.GetHistogram() != nil:
				attrs = append(attrs,
					"count", m.GetHistogram().GetSampleCount(),
					"sum", m.GetHistogram().GetSampleSum())
			}
			logger.Debug("metric", attrs...)
		}
	}
}
