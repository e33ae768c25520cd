package linkage

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// threePairs returns six points forming three pairs at squared distance 1,
// with at least 100 between pairs.
func threePairs() []Point {
	return []Point{
		{0, 0, 0}, {1, 0, 0},
		{100, 0, 0}, {100, 1, 0},
		{0, 200, 0}, {0, 200, 1},
	}
}

func TestClusterProduct_Trivial(t *testing.T) {
	for _, points := range [][]Point{nil, {{5, 5, 5}}} {
		edges := mustBuildEdges(t, points)
		v := ClusterProduct(edges, len(points), DefaultPrefixLimit, DefaultTopComponents)
		assert.Equal(t, "1", v.String())
	}
}

func TestClusterProduct_ThreePairs(t *testing.T) {
	points := threePairs()
	edges := mustBuildEdges(t, points)

	// The three shortest edges are the in-pair edges.
	v := ClusterProduct(edges, len(points), 3, 3)
	got, ok := v.Int64()
	require.True(t, ok)
	assert.Equal(t, int64(8), got)
	assert.Equal(t, []int{2, 2, 2}, ComponentSizes(edges, len(points), 3))
}

func TestClusterProduct_FewerComponentsThanTop(t *testing.T) {
	points := threePairs()
	edges := mustBuildEdges(t, points)

	// Everything merged: one component of 6, padded with 1s.
	assert.Equal(t, "6", ClusterProduct(edges, len(points), len(edges), 3).String())

	// Two points, one edge: a single component of 2.
	two := points[:2]
	assert.Equal(t, "2", ClusterProduct(mustBuildEdges(t, two), 2, 1000, 3).String())
}

func TestClusterProduct_ZeroPrefix(t *testing.T) {
	points := threePairs()
	edges := mustBuildEdges(t, points)

	sizes := ComponentSizes(edges, len(points), 0)
	assert.Equal(t, []int{1, 1, 1, 1, 1, 1}, sizes)
	assert.Equal(t, "1", ClusterProduct(edges, len(points), 0, 3).String())
}

func TestClusterProduct_PrefixRespectsTieBreak(t *testing.T) {
	// Edges (0,1), (0,2) and (0,3) all have squared distance 1; only the
	// index tie-break decides which two enter a prefix of 2.
	points := []Point{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}, {0, 0, 1}}
	edges := mustBuildEdges(t, points)
	require.Equal(t, Edge{1, 0, 1}, edges[0])
	require.Equal(t, Edge{1, 0, 2}, edges[1])

	assert.Equal(t, []int{3, 1}, ComponentSizes(edges, len(points), 2))
	assert.Equal(t, "3", ClusterProduct(edges, len(points), 2, 3).String())
}

func TestComponentSizes_SumToN(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	points := randomPoints(rng, 80, 1000)
	edges := mustBuildEdges(t, points)

	for _, limit := range []int{0, 1, 10, 79, 500, len(edges), len(edges) + 10} {
		sizes := ComponentSizes(edges, len(points), limit)
		total := 0
		for i, s := range sizes {
			total += s
			if i > 0 {
				assert.LessOrEqual(t, s, sizes[i-1], "descending")
			}
		}
		assert.Equal(t, len(points), total, "limit=%d", limit)
	}
}

func TestComponentSizes_MatchesGraphComponents(t *testing.T) {
	rng := rand.New(rand.NewSource(12))
	points := randomPoints(rng, 60, 500)
	edges := mustBuildEdges(t, points)
	const limit = 40

	pairs := make([][2]int, limit)
	for i, e := range edges[:limit] {
		pairs[i] = [2]int{e.A, e.B}
	}
	comp := componentsOf(len(points), pairs)
	count := map[int]int{}
	for _, c := range comp {
		count[c]++
	}
	var want []int
	for _, c := range count {
		want = append(want, c)
	}

	assert.ElementsMatch(t, want, ComponentSizes(edges, len(points), limit))
}

func TestProductOfLargest(t *testing.T) {
	tests := []struct {
		name  string
		sizes []int
		top   int
		want  string
	}{
		{"three", []int{5, 4, 2, 2, 1}, 3, "40"},
		{"padded", []int{7}, 3, "7"},
		{"empty", nil, 3, "1"},
		{"top one", []int{9, 3}, 1, "9"},
		{"top zero", []int{9, 3}, 0, "1"},
		// Sizes this large cannot come from a materialized catalog, but the
		// product path must still be exact.
		{"wide", []int{3000000000, 3000000000, 3000000000, 2}, 3, "27000000000000000000000000000"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, productOfLargest(tt.sizes, tt.top).String())
		})
	}

	v := productOfLargest([]int{3000000000, 3000000000, 3000000000}, 3)
	assert.False(t, v.IsInt64(), "must be reported via the extended path")
}
