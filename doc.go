// Package linkage implements a batch Euclidean clustering and connectivity
// engine over points in 3-D integer space.
//
// The engine builds the complete graph of pairwise squared distances,
// orders the edges by (distance, lower index, higher index) and consumes
// them Kruskal-style with a union-find structure to answer two queries:
//
//   - Cluster product: unite the K shortest edges (default 1000) and
//     multiply the sizes of the three largest components.
//   - Bottleneck edge: unite edges until every point is in one component
//     and report the edge that completed it, together with the product of
//     its endpoints' X coordinates.
//
// Basic usage:
//
//	points, err := linkage.ReadPointsFile("points.txt")
//	result, err := linkage.Analyze(points, linkage.DefaultConfig())
//	// result.ClusterProduct is the cluster product
//	// result.Bottleneck is nil when fewer than two points were given
//
// Products are computed with arbitrary precision. [Value.IsInt64] reports
// whether a result fits the normal int64 width; [Value.String] is always
// exact.
//
// The lower-level pieces are exported for callers that want a single
// query: [BuildEdges], [ComponentSizes], [ClusterProduct], [BottleneckEdge],
// [SpanningTree] and [Linkage].
package linkage
