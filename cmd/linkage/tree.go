package main

import (
	"encoding/json"
	"fmt"
	"io"
	"runtime"

	"github.com/TrevorS/linkage"
	"github.com/spf13/cobra"
)

func newTreeCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "tree [points-file]",
		Short: "Print the minimum spanning tree and single-linkage dendrogram",
		Long: `Prints the edges Kruskal's algorithm accepts, in acceptance order, followed by
the single-linkage merges they induce. Merged cluster ids start at the number
of points.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, opts)
			if err != nil {
				return report(cmd, err)
			}
			points, err := readPoints(cmd, args)
			if err != nil {
				return report(cmd, err)
			}
			workers := cfg.Workers
			if workers == 0 {
				workers = runtime.NumCPU()
			}
			edges, err := linkage.BuildEdgesParallel(points, workers)
			if err != nil {
				return report(cmd, err)
			}

			tree := linkage.SpanningTree(edges, len(points))
			merges := linkage.Linkage(tree, len(points))
			cfg.Logger.Debug("spanning tree built", "points", len(points), "tree_edges", len(tree))

			if opts.json {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(struct {
					Tree   []linkage.Edge  `json:"tree"`
					Merges []linkage.Merge `json:"merges"`
				}{tree, merges})
			}
			return writeTree(cmd.OutOrStdout(), tree, merges)
		},
	}
}

func writeTree(w io.Writer, tree []linkage.Edge, merges []linkage.Merge) error {
	for _, e := range tree {
		if _, err := fmt.Fprintf(w, "edge %d %d %d\n", e.A, e.B, e.Dist2); err != nil {
			return err
		}
	}
	for _, m := range merges {
		if _, err := fmt.Fprintf(w, "merge %d %d %d %d\n", m.Left, m.Right, m.Dist2, m.Size); err != nil {
			return err
		}
	}
	return nil
}
