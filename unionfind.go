package linkage

// UnionFind implements a disjoint-set data structure over node ids 0..n-1
// with path compression and union by rank. Storage is two flat arrays, so
// compression never needs to follow pointers.
type UnionFind struct {
	parent []int
	rank   []uint8
	// components is the number of disjoint sets, decremented by each
	// successful Union.
	components int
}

// NewUnionFind creates a UnionFind in which every element is its own set.
func NewUnionFind(n int) *UnionFind {
	parent := make([]int, n)
	for i := range parent {
		parent[i] = i
	}
	return &UnionFind{
		parent:     parent,
		rank:       make([]uint8, n),
		components: n,
	}
}

// Len returns the number of elements.
func (uf *UnionFind) Len() int { return len(uf.parent) }

// Components returns the current number of disjoint sets.
func (uf *UnionFind) Components() int { return uf.components }

// Find returns the root of the set containing x, with path compression.
func (uf *UnionFind) Find(x int) int {
	// Walk to the root.
	root := x
	for uf.parent[root] != root {
		root = uf.parent[root]
	}
	// Path compression: point all nodes along the path directly to root.
	for uf.parent[x] != root {
		x, uf.parent[x] = uf.parent[x], root
	}
	return root
}

// Union merges the sets containing x and y. It reports false if they were
// already in the same set. The lower-rank root is attached under the
// higher-rank root; on equal ranks y's root goes under x's root and x's root
// gains one rank.
func (uf *UnionFind) Union(x, y int) bool {
	rootX := uf.Find(x)
	rootY := uf.Find(y)
	if rootX == rootY {
		return false
	}

	switch {
	case uf.rank[rootX] < uf.rank[rootY]:
		uf.parent[rootX] = rootY
	case uf.rank[rootX] > uf.rank[rootY]:
		uf.parent[rootY] = rootX
	default:
		uf.parent[rootY] = rootX
		uf.rank[rootX]++
	}
	uf.components--
	return true
}

// Connected reports whether x and y are in the same set.
func (uf *UnionFind) Connected(x, y int) bool {
	return uf.Find(x) == uf.Find(y)
}

// Sizes returns the size of every set, in no particular order. The table is
// recomputed from Find on each call.
func (uf *UnionFind) Sizes() []int {
	count := make([]int, len(uf.parent))
	for i := range uf.parent {
		count[uf.Find(i)]++
	}
	sizes := make([]int, 0, uf.components)
	for _, c := range count {
		if c > 0 {
			sizes = append(sizes, c)
		}
	}
	return sizes
}
