package rigidity

import (
	"github.com/rigidkit/pebblegame/flow"
	"github.com/rigidkit/pebblegame/gerr"
	"github.com/rigidkit/pebblegame/graph"
	"github.com/rigidkit/pebblegame/sparsity"
)

func hasLoop(g *graph.Graph) bool {
	for _, e := range g.Edges() {
		if e.U == e.V {
			return true
		}
	}
	return false
}

func checkDim(dim int) error {
	if dim != 1 && dim != 2 {
		return gerr.ErrUnsupportedDimension
	}
	return nil
}

// IsRigid reports whether g is generically rigid in dimension dim.
// dim=1 reduces to connectivity; dim=2 computes the edge-count
// deficiency d = |E| - (2|V|-3) and, if d >= 0, searches for a
// d-subset of edges whose removal leaves a (2,3)-tight graph.
func IsRigid(g *graph.Graph, dim int) (bool, error) {
	if hasLoop(g) {
		return false, gerr.ErrGraphHasLoop
	}
	if err := checkDim(dim); err != nil {
		return false, err
	}
	if dim == 1 {
		return g.Connected(), nil
	}

	n := g.VertexCount()
	d := g.EdgeCount() - (2*n - 3)
	if d < 0 {
		return false, nil
	}

	edges := g.Edges()
	found := false
	forEachCombination(len(edges), d, func(indices []int) bool {
		sub := cloneWithoutEdges(g, edges, indices)
		if sparsity.IsTight(sub, 2, 3) {
			found = true
			return true
		}
		return false
	})
	return found, nil
}

// IsMinRigid reports whether g is minimally rigid: rigid, and would
// stop being rigid if any single edge were removed. Combinatorially
// this is exactly (2,3)-tightness at dim=2, or being a tree at dim=1.
func IsMinRigid(g *graph.Graph, dim int) (bool, error) {
	if hasLoop(g) {
		return false, gerr.ErrGraphHasLoop
	}
	if err := checkDim(dim); err != nil {
		return false, err
	}
	if dim == 1 {
		return g.IsTree(), nil
	}
	return sparsity.IsTight(g, 2, 3), nil
}

// IsRedundantlyRigid reports whether g remains rigid after the removal
// of any single edge.
func IsRedundantlyRigid(g *graph.Graph, dim int) (bool, error) {
	if hasLoop(g) {
		return false, gerr.ErrGraphHasLoop
	}
	if err := checkDim(dim); err != nil {
		return false, err
	}
	if g.EdgeCount() == 0 {
		return false, nil
	}
	for _, e := range g.Edges() {
		sub := g.InducedSubgraph(g.Vertices())
		if err := sub.RemoveEdge(e.U, e.V); err != nil {
			return false, err
		}
		rigid, err := IsRigid(sub, dim)
		if err != nil {
			return false, err
		}
		if !rigid {
			return false, nil
		}
	}
	return true, nil
}

// IsKRedundantlyRigid reports whether g remains rigid after the
// removal of any k edges simultaneously.
func IsKRedundantlyRigid(g *graph.Graph, dim, k int) (bool, error) {
	if hasLoop(g) {
		return false, gerr.ErrGraphHasLoop
	}
	if err := checkDim(dim); err != nil {
		return false, err
	}
	edges := g.Edges()
	if k > len(edges) {
		return false, nil
	}
	allRigid := true
	var innerErr error
	forEachCombination(len(edges), k, func(indices []int) bool {
		sub := cloneWithoutEdges(g, edges, indices)
		rigid, err := IsRigid(sub, dim)
		if err != nil {
			innerErr = err
			allRigid = false
			return true
		}
		if !rigid {
			allRigid = false
			return true
		}
		return false
	})
	return allRigid, innerErr
}

// IsKVertexRedundantlyRigid reports whether g remains rigid after the
// removal of any k vertices (and their incident edges) simultaneously.
func IsKVertexRedundantlyRigid(g *graph.Graph, dim, k int) (bool, error) {
	if hasLoop(g) {
		return false, gerr.ErrGraphHasLoop
	}
	if err := checkDim(dim); err != nil {
		return false, err
	}
	vertices := g.Vertices()
	if k >= len(vertices) {
		return false, nil
	}
	allRigid := true
	var innerErr error
	forEachCombination(len(vertices), k, func(indices []int) bool {
		remaining := complementVertices(vertices, indices)
		sub := g.InducedSubgraph(remaining)
		rigid, err := IsRigid(sub, dim)
		if err != nil {
			innerErr = err
			allRigid = false
			return true
		}
		if !rigid {
			allRigid = false
			return true
		}
		return false
	})
	return allRigid, innerErr
}

// IsGloballyRigid reports whether g is globally rigid: every generic
// realization in dimension dim is the unique one up to isometry.
// Graphs with at most dim+1 vertices are the degenerate case where the
// Jackson-Jordan redundant-rigidity-plus-connectivity characterization
// does not apply (there are too few vertices for a third independent
// path between any pair); there, global rigidity holds iff the graph
// is complete. Above that threshold, dim=1 reduces to
// 2-vertex-connectivity and dim=2 to redundant rigidity combined with
// 3-vertex-connectivity.
func IsGloballyRigid(g *graph.Graph, dim int) (bool, error) {
	if hasLoop(g) {
		return false, gerr.ErrGraphHasLoop
	}
	if err := checkDim(dim); err != nil {
		return false, err
	}

	if g.VertexCount() <= dim+1 {
		return isComplete(g), nil
	}

	conn, err := flow.VertexConnectivity(g)
	if err != nil {
		return false, err
	}
	if dim == 1 {
		return conn >= 2, nil
	}

	redundant, err := IsRedundantlyRigid(g, 2)
	if err != nil {
		return false, err
	}
	return redundant && conn >= 3, nil
}

func cloneWithoutEdges(g *graph.Graph, edges []graph.Edge, drop []int) *graph.Graph {
	sub := g.InducedSubgraph(g.Vertices())
	for _, i := range drop {
		_ = sub.RemoveEdge(edges[i].U, edges[i].V)
	}
	return sub
}

func isComplete(g *graph.Graph) bool {
	n := g.VertexCount()
	return g.EdgeCount() == n*(n-1)/2
}

func complementVertices(all []graph.Vertex, drop []int) []graph.Vertex {
	dropped := make(map[int]bool, len(drop))
	for _, i := range drop {
		dropped[i] = true
	}
	out := make([]graph.Vertex, 0, len(all)-len(drop))
	for i, v := range all {
		if !dropped[i] {
			out = append(out, v)
		}
	}
	return out
}

// forEachCombination calls f once for every size-k subset of
// {0, ..., n-1}, passing the subset as ascending indices. It stops
// early the first time f returns true.
func forEachCombination(n, k int, f func(indices []int) bool) {
	if k < 0 || k > n {
		return
	}
	if k == 0 {
		f(nil)
		return
	}
	indices := make([]int, k)
	var recurse func(start, depth int) bool
	recurse = func(start, depth int) bool {
		if depth == k {
			return f(append([]int(nil), indices...))
		}
		for i := start; i <= n-(k-depth); i++ {
			indices[depth] = i
			if recurse(i+1, depth+1) {
				return true
			}
		}
		return false
	}
	recurse(0, 0)
}
