package catalog

import (
	"strconv"

	"github.com/rigidkit/pebblegame/graph"
)

func intVertices(n int) []graph.Vertex {
	ids := make([]graph.Vertex, n)
	for i := 0; i < n; i++ {
		ids[i] = itoa(i)
	}
	return ids
}

func itoa(i int) graph.Vertex {
	return strconv.Itoa(i)
}

// mustBuild panics on a construction error, which only fires when this
// package itself hands FromVerticesAndEdges a malformed edge list — a
// programmer error in catalog, never a caller input error.
func mustBuild(vertices []graph.Vertex, edges [][2]graph.Vertex) *graph.Graph {
	g, err := graph.FromVerticesAndEdges(vertices, edges)
	if err != nil {
		panic("catalog: " + err.Error())
	}
	return g
}
