package catalog

import "github.com/rigidkit/pebblegame/graph"

// Path returns the n-vertex simple path P_n, n >= 1, with edges
// i -> i+1 for i=0..n-2.
func Path(n int) *graph.Graph {
	vertices := intVertices(n)
	edges := make([][2]graph.Vertex, 0, n-1)
	for i := 0; i+1 < n; i++ {
		edges = append(edges, [2]graph.Vertex{itoa(i), itoa(i + 1)})
	}
	return mustBuild(vertices, edges)
}
