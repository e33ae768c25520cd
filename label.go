package linkage

// Merge is one row of a single-linkage dendrogram. Left and Right are
// cluster ids: ids below n are original points, ids n, n+1, ... are the
// clusters created by earlier rows, in row order.
type Merge struct {
	Left  int    `json:"left"`
	Right int    `json:"right"`
	Dist2 uint64 `json:"dist2"`
	Size  int    `json:"size"`
}

// Linkage converts spanning tree edges, in ascending order, into a
// single-linkage dendrogram using the same cluster-id scheme as scipy's
// linkage output.
func Linkage(tree []Edge, n int) []Merge {
	if len(tree) == 0 {
		return nil
	}

	// label[r] is the dendrogram id currently carried by UnionFind root r.
	uf := NewUnionFind(n)
	label := make([]int, n)
	size := make([]int, n)
	for i := range label {
		label[i] = i
		size[i] = 1
	}

	result := make([]Merge, 0, len(tree))
	next := n
	for _, e := range tree {
		ra, rb := uf.Find(e.A), uf.Find(e.B)
		if ra == rb {
			continue
		}
		merged := size[ra] + size[rb]
		result = append(result, Merge{
			Left:  label[ra],
			Right: label[rb],
			Dist2: e.Dist2,
			Size:  merged,
		})

		uf.Union(ra, rb)
		root := uf.Find(ra)
		label[root] = next
		size[root] = merged
		next++
	}

	return result
}
