package catalog

import "github.com/rigidkit/pebblegame/graph"

// Cycle returns the n-vertex simple cycle C_n, n >= 3, with edges
// i -> (i+1) mod n emitted in increasing i order.
func Cycle(n int) *graph.Graph {
	vertices := intVertices(n)
	edges := make([][2]graph.Vertex, 0, n)
	for i := 0; i < n; i++ {
		edges = append(edges, [2]graph.Vertex{itoa(i), itoa((i + 1) % n)})
	}
	return mustBuild(vertices, edges)
}
