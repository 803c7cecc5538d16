package flow

import (
	"math"

	"github.com/rigidkit/pebblegame/gerr"
	"github.com/rigidkit/pebblegame/graph"
)

// infiniteCapacity stands in for "unbounded" on arcs that must never
// be the bottleneck of a vertex-split min cut: the in->out arc of s
// and t themselves, and every arc derived from an original graph edge.
// Only the K unit in->out arcs of the non-terminal vertices are ever
// meant to saturate.
const infiniteCapacity = 1e9

func splitCapMap(g *graph.Graph, s, t graph.Vertex) map[string]map[string]float64 {
	cap := make(map[string]map[string]float64)
	for _, v := range g.Vertices() {
		in, out := inNode(v), outNode(v)
		cap[in] = map[string]float64{}
		cap[out] = map[string]float64{}
		if v == s || v == t {
			cap[in][out] = infiniteCapacity
		} else {
			cap[in][out] = 1
		}
	}
	for _, e := range g.Edges() {
		cap[outNode(e.U)][inNode(e.V)] = infiniteCapacity
		cap[outNode(e.V)][inNode(e.U)] = infiniteCapacity
	}
	return cap
}

func inNode(v graph.Vertex) string  { return v + "#in" }
func outNode(v graph.Vertex) string { return v + "#out" }

// MinVertexCut returns the size of the minimum vertex cut separating
// the non-adjacent vertices s and t: the number of internally
// vertex-disjoint s-t paths, by Menger's theorem equal to the max flow
// through the vertex-split gadget from s's out-node to t's in-node.
func MinVertexCut(g *graph.Graph, s, t graph.Vertex) (int, error) {
	if !g.HasVertex(s) || !g.HasVertex(t) {
		return 0, gerr.ErrVertexNotFound
	}
	if s == t {
		return 0, gerr.ErrSelfLoop
	}
	cap := splitCapMap(g, s, t)
	value, err := Dinic(cap, outNode(s), inNode(t), FlowOptions{})
	if err != nil {
		return 0, err
	}
	return int(math.Round(value)), nil
}

// VertexConnectivity returns the global vertex connectivity of g: the
// minimum number of vertices whose removal disconnects g or reduces it
// to a single vertex. For a complete graph this is n-1 by convention
// (no pair of vertices is non-adjacent to probe); otherwise it is the
// minimum, over every non-adjacent vertex pair, of MinVertexCut.
func VertexConnectivity(g *graph.Graph) (int, error) {
	vertices := g.Vertices()
	n := len(vertices)
	if n < 2 {
		return 0, nil
	}

	min := n - 1
	sawNonAdjacentPair := false
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			u, v := vertices[i], vertices[j]
			if g.HasEdge(u, v) {
				continue
			}
			sawNonAdjacentPair = true
			cut, err := MinVertexCut(g, u, v)
			if err != nil {
				return 0, err
			}
			if cut < min {
				min = cut
			}
		}
	}
	if !sawNonAdjacentPair {
		return n - 1, nil
	}
	return min, nil
}
