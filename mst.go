package linkage

// SpanningTree runs Kruskal's algorithm over sorted edges and returns the
// accepted edges in acceptance order. For a connected input this is a
// minimum spanning tree with n-1 edges whose last edge is the bottleneck
// edge; otherwise it is a minimum spanning forest.
func SpanningTree(edges []Edge, n int) []Edge {
	if n <= 1 {
		return nil
	}
	uf := NewUnionFind(n)
	tree := make([]Edge, 0, n-1)
	for _, e := range edges {
		if !uf.Union(e.A, e.B) {
			continue
		}
		tree = append(tree, e)
		if uf.Components() == 1 {
			break
		}
	}
	return tree
}
