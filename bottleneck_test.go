package linkage

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBottleneckEdge_Degenerate(t *testing.T) {
	for _, points := range [][]Point{nil, {}, {{3, 4, 5}}} {
		edges := mustBuildEdges(t, points)
		e, ok := BottleneckEdge(edges, len(points))
		assert.False(t, ok, "n=%d", len(points))
		assert.Equal(t, Edge{}, e)
	}
}

func TestBottleneckEdge_Path(t *testing.T) {
	// A path 0-1-2-3 along X with gaps 1, 2 and 4. All six squared
	// distances (1, 4, 9, 16, 36, 49) differ, the MST is the path and the
	// gap of 4 is accepted last.
	points := []Point{{2, 0, 0}, {3, 0, 0}, {5, 0, 0}, {9, 0, 0}}
	edges := mustBuildEdges(t, points)

	e, ok := BottleneckEdge(edges, len(points))
	require.True(t, ok)
	assert.Equal(t, Edge{Dist2: 16, A: 2, B: 3}, e)

	v := BottleneckValue(points, e)
	got, ok := v.Int64()
	require.True(t, ok)
	assert.Equal(t, int64(5*9), got)
}

func TestBottleneckEdge_TwoPoints(t *testing.T) {
	points := []Point{{-7, 1, 1}, {6, 2, 2}}
	edges := mustBuildEdges(t, points)

	e, ok := BottleneckEdge(edges, 2)
	require.True(t, ok)
	assert.Equal(t, 0, e.A)
	assert.Equal(t, 1, e.B)
	assert.Equal(t, "-42", BottleneckValue(points, e).String())
}

func TestBottleneckEdge_TieUsesCatalogOrder(t *testing.T) {
	// Two far-apart pairs joined by two equally long bridges. The bridge
	// with the smaller (A, B) is consumed first and completes connectivity.
	points := []Point{
		{0, 0, 0}, {0, 1, 0},
		{10, 0, 0}, {10, 1, 0},
	}
	edges := mustBuildEdges(t, points)

	e, ok := BottleneckEdge(edges, len(points))
	require.True(t, ok)
	assert.Equal(t, Edge{Dist2: 100, A: 0, B: 2}, e)
}

func TestBottleneckEdge_Disconnected(t *testing.T) {
	// A partial catalog that never connects node 2.
	edges := []Edge{{1, 0, 1}}
	_, ok := BottleneckEdge(edges, 3)
	assert.False(t, ok)
}

func TestBottleneckValue_Wide(t *testing.T) {
	points := []Point{{3037000500, 0, 0}, {3037000501, 0, 0}, {3037000500, 5, 0}}
	edges := mustBuildEdges(t, points)

	e, ok := BottleneckEdge(edges, len(points))
	require.True(t, ok)
	assert.Equal(t, Edge{Dist2: 25, A: 0, B: 2}, e)

	// 3037000500² is just above math.MaxInt64.
	v := BottleneckValue(points, e)
	assert.False(t, v.IsInt64())
	assert.Equal(t, "9223372037000250000", v.String())

	v = BottleneckValue(points, Edge{A: 0, B: 1})
	assert.Equal(t, "9223372040037250500", v.String())
}

func TestBottleneckEdge_IsLastSpanningTreeEdge(t *testing.T) {
	rng := rand.New(rand.NewSource(99))
	for trial := 0; trial < 10; trial++ {
		points := randomPoints(rng, 2+rng.Intn(60), 40)
		edges := mustBuildEdges(t, points)

		e, ok := BottleneckEdge(edges, len(points))
		require.True(t, ok)
		tree := SpanningTree(edges, len(points))
		require.Len(t, tree, len(points)-1)
		assert.Equal(t, tree[len(tree)-1], e)

		// No accepted edge is longer than the bottleneck.
		for _, te := range tree {
			assert.LessOrEqual(t, te.Dist2, e.Dist2)
		}
	}
}
