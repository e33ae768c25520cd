package linkage

import (
	"cmp"
	"errors"
	"fmt"
	"slices"
)

// ErrDistanceOverflow is returned when the squared distance between two
// points does not fit in 64 bits.
var ErrDistanceOverflow = errors.New("linkage: squared distance overflows uint64")

// Edge is an unordered pair of node ids with their squared distance.
// A < B always holds for edges produced by BuildEdges.
type Edge struct {
	Dist2 uint64 `json:"dist2"`
	A     int    `json:"a"`
	B     int    `json:"b"`
}

// Compare orders edges by ascending Dist2, then A, then B. It is a strict
// total order on distinct edges, so any sort with it is deterministic.
func (e Edge) Compare(o Edge) int {
	if c := cmp.Compare(e.Dist2, o.Dist2); c != 0 {
		return c
	}
	if c := cmp.Compare(e.A, o.A); c != 0 {
		return c
	}
	return cmp.Compare(e.B, o.B)
}

func (e Edge) String() string {
	return fmt.Sprintf("(%d,%d d²=%d)", e.A, e.B, e.Dist2)
}

// EdgeCount returns the number of unordered pairs over n nodes.
func EdgeCount(n int) int {
	if n < 2 {
		return 0
	}
	return n * (n - 1) / 2
}

// rowOffset returns the position of edge (i, i+1) in row-major order over
// the strict upper triangle of an n×n matrix.
func rowOffset(i, n int) int {
	return i*(2*n-i-1)/2
}

// IsSorted reports whether edges respect the (Dist2, A, B) order.
func IsSorted(edges []Edge) bool {
	return slices.IsSortedFunc(edges, Edge.Compare)
}

// SortEdges sorts edges in place under Edge.Compare.
func SortEdges(edges []Edge) {
	slices.SortFunc(edges, Edge.Compare)
}

// BuildEdges computes every pair (i, j) with i < j and returns the catalog
// sorted under Edge.Compare. n <= 1 yields an empty, non-nil catalog.
func BuildEdges(points []Point) ([]Edge, error) {
	n := len(points)
	edges := make([]Edge, EdgeCount(n))
	for i := 0; i < n; i++ {
		if err := fillRow(edges, points, i); err != nil {
			return nil, err
		}
	}
	SortEdges(edges)
	return edges, nil
}

// fillRow writes the edges (i, j) for all j > i into their slots.
func fillRow(edges []Edge, points []Point, i int) error {
	n := len(points)
	k := rowOffset(i, n)
	for j := i + 1; j < n; j++ {
		d, ok := SquaredDistance(points[i], points[j])
		if !ok {
			return fmt.Errorf("%w: points %d and %d", ErrDistanceOverflow, i, j)
		}
		edges[k] = Edge{Dist2: d, A: i, B: j}
		k++
	}
	return nil
}
