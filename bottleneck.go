package linkage

// BottleneckEdge consumes sorted edges on a fresh UnionFind over n nodes
// until a single component remains, and returns the edge whose union made
// that happen. This is the last edge Kruskal's algorithm accepts.
//
// It reports false when n <= 1 (there is no edge to report) or when the
// edges never connect all n nodes.
func BottleneckEdge(edges []Edge, n int) (Edge, bool) {
	if n <= 1 {
		return Edge{}, false
	}
	uf := NewUnionFind(n)
	for _, e := range edges {
		if uf.Union(e.A, e.B) && uf.Components() == 1 {
			return e, true
		}
	}
	return Edge{}, false
}

// BottleneckValue returns the product of the X coordinates of e's endpoints.
func BottleneckValue(points []Point, e Edge) Value {
	return Product(points[e.A].X, points[e.B].X)
}
