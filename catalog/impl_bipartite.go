package catalog

import "github.com/rigidkit/pebblegame/graph"

// CompleteBipartite returns K_{m,n}: the left part is vertices
// "0".."m-1", the right part "m".."m+n-1", with every left-right pair
// joined and no edges within a part.
func CompleteBipartite(m, n int) *graph.Graph {
	vertices := intVertices(m + n)
	edges := make([][2]graph.Vertex, 0, m*n)
	for i := 0; i < m; i++ {
		for j := m; j < m+n; j++ {
			edges = append(edges, [2]graph.Vertex{itoa(i), itoa(j)})
		}
	}
	return mustBuild(vertices, edges)
}
