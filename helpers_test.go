package linkage

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/graph/topo"
)

func randomPoints(rng *rand.Rand, n int, span int64) []Point {
	points := make([]Point, n)
	for i := range points {
		points[i] = Point{
			X: rng.Int63n(span),
			Y: rng.Int63n(span),
			Z: rng.Int63n(span),
		}
	}
	return points
}

func mustBuildEdges(t testing.TB, points []Point) []Edge {
	t.Helper()
	edges, err := BuildEdges(points)
	require.NoError(t, err)
	return edges
}

// componentsOf returns, for every node, the index of its connected
// component as computed by gonum over the given pairs.
func componentsOf(n int, pairs [][2]int) []int {
	g := simple.NewUndirectedGraph()
	for i := 0; i < n; i++ {
		g.AddNode(simple.Node(i))
	}
	for _, p := range pairs {
		if p[0] == p[1] {
			continue
		}
		g.SetEdge(simple.Edge{F: simple.Node(p[0]), T: simple.Node(p[1])})
	}
	comp := make([]int, n)
	for c, nodes := range topo.ConnectedComponents(g) {
		for _, node := range nodes {
			comp[node.ID()] = c
		}
	}
	return comp
}
