package catalog

import "github.com/rigidkit/pebblegame/graph"

// K returns the complete simple graph on n vertices, "0".."n-1", with
// every unordered pair {i,j}, i<j, emitted exactly once in
// lexicographic order.
func K(n int) *graph.Graph {
	vertices := intVertices(n)
	edges := make([][2]graph.Vertex, 0, n*(n-1)/2)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			edges = append(edges, [2]graph.Vertex{itoa(i), itoa(j)})
		}
	}
	return mustBuild(vertices, edges)
}
