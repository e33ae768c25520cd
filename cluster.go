package linkage

import (
	"cmp"
	"slices"
)

const (
	// DefaultPrefixLimit is the number of shortest edges consumed by the
	// cluster-product query.
	DefaultPrefixLimit = 1000

	// DefaultTopComponents is the number of largest components multiplied
	// together by the cluster-product query.
	DefaultTopComponents = 3
)

// ComponentSizes unites the first min(limit, len(edges)) edges on a fresh
// UnionFind over n nodes and returns every component size in descending
// order. Singletons are included, so the sizes always sum to n.
// edges must be sorted (see BuildEdges).
func ComponentSizes(edges []Edge, n, limit int) []int {
	uf := NewUnionFind(n)
	for _, e := range edges[:min(max(limit, 0), len(edges))] {
		// Repeated unions inside the prefix are expected.
		uf.Union(e.A, e.B)
	}
	sizes := uf.Sizes()
	slices.SortFunc(sizes, func(a, b int) int { return cmp.Compare(b, a) })
	return sizes
}

// ClusterProduct returns the product of the top largest component sizes
// after consuming the first limit edges. Missing components count as 1, and
// n <= 1 yields 1.
func ClusterProduct(edges []Edge, n, limit, top int) Value {
	if n <= 1 {
		return NewValue(1)
	}
	return productOfLargest(ComponentSizes(edges, n, limit), top)
}

// productOfLargest multiplies the first top entries of sizes (sorted
// descending), padding with 1 when there are fewer than top entries.
func productOfLargest(sizes []int, top int) Value {
	factors := make([]int64, max(top, 0))
	for i := range factors {
		factors[i] = 1
		if i < len(sizes) && sizes[i] > 0 {
			factors[i] = int64(sizes[i])
		}
	}
	return Product(factors...)
}
