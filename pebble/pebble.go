package pebble

import (
	"sort"

	"github.com/rigidkit/pebblegame/gerr"
)

// dfsFindPebble walks the witness digraph from start, looking for a
// vertex other than u or v with spare out-degree (a free pebble). It
// is iterative rather than recursive so the search depth is bounded by
// heap space rather than goroutine stack space.
//
// visited is shared across both halves of a single pebble search (the
// walk from u and, if that fails, the walk from v): it is seeded by
// the caller and mutated in place as vertices are discovered, and is
// never unmarked on backtrack. The returned path lists the arcs walked
// from start to the vertex found, in traversal order, for the caller
// to reverse. A failed search leaves visited populated with everything
// reachable, and the arc slice it builds internally is only ever
// truncated when a branch dead-ends — never when a branch succeeds.
func (d *PebbleDigraph) dfsFindPebble(start, u, v int, visited map[int]bool) (bool, []arc) {
	type frame struct {
		vertex  int
		nextIdx int
	}

	visited[start] = true
	stack := []frame{{vertex: start}}
	path := make([]arc, 0)

	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		here := top.vertex

		if here != u && here != v && d.outDegree(here) < d.k {
			return true, path
		}

		advanced := false
		out := d.vertices[here].out
		for top.nextIdx < len(out) {
			head := out[top.nextIdx]
			top.nextIdx++
			if visited[head] {
				continue
			}
			visited[head] = true
			path = append(path, arc{tail: here, head: head})
			stack = append(stack, frame{vertex: head})
			advanced = true
			break
		}

		if !advanced {
			stack = stack[:len(stack)-1]
			if len(path) > 0 {
				path = path[:len(path)-1]
			}
		}
	}

	return false, nil
}

// fundamentalCircuitIdx runs the pebble search for the pair (u, v)
// until either their combined out-degree drops to within the (K, L)
// pair bound (independent: the edge {u, v} can be accepted) or no more
// free pebbles can be found by reversal (dependent: visited is the
// fundamental circuit's vertex set).
func (d *PebbleDigraph) fundamentalCircuitIdx(u, v int) (visited map[int]bool, independent bool) {
	bound := 2*d.k - d.l - 1

	for d.outDegree(u)+d.outDegree(v) > bound {
		visited = map[int]bool{u: true, v: true}

		if ok, path := d.dfsFindPebble(u, u, v, visited); ok {
			d.reversePath(path)
			continue
		}
		if ok, path := d.dfsFindPebble(v, u, v, visited); ok {
			d.reversePath(path)
			continue
		}
		break
	}

	if d.outDegree(u)+d.outDegree(v) <= bound {
		return nil, true
	}
	return visited, false
}

// FundamentalCircuit reports the fundamental circuit of the candidate
// edge {u, v}: the set of vertices spanned by a maximal (K, L)-sparse
// subgraph containing every edge whose orientation forced {u, v} to be
// rejected. It returns a nil slice when {u, v} is independent of the
// current witness (no circuit). Both u and v must already be present
// in the digraph.
func (d *PebbleDigraph) FundamentalCircuit(u, v Vertex) ([]Vertex, error) {
	if u == v {
		return nil, gerr.ErrSelfLoop
	}
	ui, ok := d.index[u]
	if !ok {
		return nil, gerr.ErrVertexNotFound
	}
	vi, ok := d.index[v]
	if !ok {
		return nil, gerr.ErrVertexNotFound
	}

	visited, independent := d.fundamentalCircuitIdx(ui, vi)
	if independent {
		return nil, nil
	}

	out := make([]Vertex, 0, len(visited))
	for i := range visited {
		out = append(out, d.vertices[i].id)
	}
	sort.Strings(out)
	return out, nil
}

// CanAddEdge reports whether {u, v} could be accepted as (K, L)-sparse
// right now, without adding it. If either endpoint is absent from the
// digraph the edge is trivially acceptable under the bootstrap rule
// that AddEdgeMaintainingDigraph applies. Note that, like the pebble
// search it delegates to, this can still mutate existing out-edge
// orientations via path reversal even though it leaves the accepted
// edge set unchanged.
func (d *PebbleDigraph) CanAddEdge(u, v Vertex) (bool, error) {
	if u == v {
		return false, gerr.ErrSelfLoop
	}
	ui, uOk := d.index[u]
	vi, vOk := d.index[v]
	if !uOk || !vOk {
		return true, nil
	}
	_, independent := d.fundamentalCircuitIdx(ui, vi)
	return independent, nil
}

// AddEdgeMaintainingDigraph attempts to accept {u, v} into the witness
// digraph, returning whether it was accepted. Edges are never rejected
// for structural reasons other than dependence on the current witness:
// a self-loop is the one input this rejects outright.
//
// If either endpoint is missing, it is inserted with out-degree 0 and
// the new edge is oriented from the absent endpoint toward the one
// already present (or, if both are absent, from u toward v), and is
// unconditionally accepted — this bootstrap step never runs the pebble
// search. Otherwise the edge is accepted only if the pebble search
// finds {u, v} independent of the current witness, and is then
// oriented from whichever endpoint has the smaller out-degree toward
// the other, from u toward v on a tie.
func (d *PebbleDigraph) AddEdgeMaintainingDigraph(u, v Vertex) (bool, error) {
	if u == v {
		return false, gerr.ErrSelfLoop
	}

	ui, uOk := d.index[u]
	vi, vOk := d.index[v]

	if !uOk {
		ui = d.ensureVertex(u)
		if !vOk {
			vi = d.ensureVertex(v)
		}
		d.addArc(ui, vi)
		return true, nil
	}
	if !vOk {
		vi = d.ensureVertex(v)
		d.addArc(vi, ui)
		return true, nil
	}

	_, independent := d.fundamentalCircuitIdx(ui, vi)
	if !independent {
		return false, nil
	}

	if d.outDegree(ui) <= d.outDegree(vi) {
		d.addArc(ui, vi)
	} else {
		d.addArc(vi, ui)
	}
	return true, nil
}

// AddEdgesMaintainingDigraph feeds a sequence of candidate edges
// through AddEdgeMaintainingDigraph in order, returning the acceptance
// outcome of each. It stops and returns the error immediately if any
// edge is malformed (a self-loop); edges already processed remain
// committed to the digraph.
func (d *PebbleDigraph) AddEdgesMaintainingDigraph(edges [][2]Vertex) ([]bool, error) {
	accepted := make([]bool, 0, len(edges))
	for _, e := range edges {
		ok, err := d.AddEdgeMaintainingDigraph(e[0], e[1])
		if err != nil {
			return accepted, err
		}
		accepted = append(accepted, ok)
	}
	return accepted, nil
}
