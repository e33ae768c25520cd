package linkage

import "golang.org/x/sync/errgroup"

// BuildEdgesParallel computes the same sorted catalog as BuildEdges using
// up to numWorkers goroutines. If numWorkers <= 1, it falls back to
// single-threaded BuildEdges.
//
// Rows of the upper triangle are split into contiguous ranges. Each row owns
// a fixed window of the output slice (see rowOffset), so no synchronization
// is needed for writes. The final sort runs on the calling goroutine.
func BuildEdgesParallel(points []Point, numWorkers int) ([]Edge, error) {
	n := len(points)
	if numWorkers <= 1 || n <= 1 {
		return BuildEdges(points)
	}

	edges := make([]Edge, EdgeCount(n))

	var g errgroup.Group
	g.SetLimit(numWorkers)

	// Later rows are shorter, so use more chunks than workers to keep the
	// limit saturated.
	chunks := numWorkers * 4
	rowsPerChunk := (n + chunks - 1) / chunks

	for start := 0; start < n; start += rowsPerChunk {
		start := start
		end := min(start+rowsPerChunk, n)
		g.Go(func() error {
			for i := start; i < end; i++ {
				if err := fillRow(edges, points, i); err != nil {
					return err
				}
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	SortEdges(edges)
	return edges, nil
}
