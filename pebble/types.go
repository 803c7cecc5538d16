package pebble

import "github.com/rigidkit/pebblegame/gerr"

// Vertex is the opaque identity type shared with package graph.
type Vertex = string

// vertexRecord tracks a single vertex's ordered out-adjacency. Out
// edges are kept in the order they became outgoing from this vertex,
// whether by original insertion or by a later reversal, so replaying
// the DFS deterministically reproduces the same search order.
type vertexRecord struct {
	id  Vertex
	out []int
}

// PebbleDigraph is the oriented witness of a (K, L)-sparsity search in
// progress: a directed multigraph over a growing vertex set, with at
// most K out-edges per vertex at any time.
type PebbleDigraph struct {
	k, l int

	index    map[Vertex]int
	vertices []vertexRecord
}

// NewPebbleDigraph constructs an empty witness digraph for the given
// sparsity parameters. K must be at least 1 and L must satisfy
// 0 <= L < 2K, matching the (K, L)-sparsity matroid's domain of
// definition.
func NewPebbleDigraph(k, l int) (*PebbleDigraph, error) {
	if err := validateKL(k, l); err != nil {
		return nil, err
	}
	return &PebbleDigraph{k: k, l: l, index: make(map[Vertex]int)}, nil
}

func validateKL(k, l int) error {
	if k < 1 {
		return gerr.ErrBadK
	}
	if l < 0 || l >= 2*k {
		return gerr.ErrBadL
	}
	return nil
}

// SetKL changes the sparsity parameters. Per the Design Notes this
// invalidates every orientation currently held: the digraph is reset
// to empty rather than left in a state that mixes witnesses computed
// under two different (K, L) values.
func (d *PebbleDigraph) SetKL(k, l int) error {
	if err := validateKL(k, l); err != nil {
		return err
	}
	d.k = k
	d.l = l
	d.index = make(map[Vertex]int)
	d.vertices = nil
	return nil
}

// K returns the current pebble-per-vertex bound.
func (d *PebbleDigraph) K() int { return d.k }

// L returns the current sparsity offset.
func (d *PebbleDigraph) L() int { return d.l }

// HasVertex reports whether v has been inserted into the digraph,
// either explicitly or as a side effect of accepting an edge.
func (d *PebbleDigraph) HasVertex(v Vertex) bool {
	_, ok := d.index[v]
	return ok
}

// OutDegree returns the number of pebbles currently assigned away from
// v, i.e. the number of out-edges of v in the witness digraph.
func (d *PebbleDigraph) OutDegree(v Vertex) (int, error) {
	i, ok := d.index[v]
	if !ok {
		return 0, gerr.ErrVertexNotFound
	}
	return len(d.vertices[i].out), nil
}

// Vertices returns the vertex set of the digraph, in insertion order.
func (d *PebbleDigraph) Vertices() []Vertex {
	out := make([]Vertex, len(d.vertices))
	for i, rec := range d.vertices {
		out[i] = rec.id
	}
	return out
}

func (d *PebbleDigraph) ensureVertex(v Vertex) int {
	if i, ok := d.index[v]; ok {
		return i
	}
	i := len(d.vertices)
	d.vertices = append(d.vertices, vertexRecord{id: v})
	d.index[v] = i
	return i
}

func (d *PebbleDigraph) outDegree(i int) int {
	return len(d.vertices[i].out)
}

func (d *PebbleDigraph) addArc(tail, head int) {
	d.vertices[tail].out = append(d.vertices[tail].out, head)
}

// debugAssertions enables internal consistency checks that are
// compiled out when false.
const debugAssertions = false

// arc is a single directed edge of the witness digraph, recorded while
// walking a path during the pebble search so it can be reversed later.
type arc struct {
	tail, head int
}

// redirectEdgeToHead turns the arc (tail, head) into (head, tail). If
// that arc is not currently present — which cannot happen for a path
// just walked by dfsFindPebble, but can in principle be handed a stale
// arc — the call is a silent no-op rather than a panic, mirroring the
// reference implementation's behavior for a redirect whose target is
// not an endpoint of the edge. Only when debugAssertions is set to true
// does a missing arc panic instead.
func (d *PebbleDigraph) redirectEdgeToHead(tail, head int) {
	out := d.vertices[tail].out
	pos := -1
	for i, h := range out {
		if h == head {
			pos = i
			break
		}
	}
	if pos == -1 {
		if debugAssertions {
			panic("pebble: redirectEdgeToHead on an arc that is not present")
		}
		return
	}
	d.vertices[tail].out = append(out[:pos], out[pos+1:]...)
	d.vertices[head].out = append(d.vertices[head].out, tail)
}

func (d *PebbleDigraph) reversePath(path []arc) {
	for _, e := range path {
		d.redirectEdgeToHead(e.tail, e.head)
	}
}
