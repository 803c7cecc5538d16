// Package graph implements the plain undirected simple graph that the
// rest of this module's rigidity-theory components consume and produce.
//
// A Graph is a vertex set V and an unordered edge set E over V, with no
// self-loops and no parallel edges. Vertex identity is a plain string:
// opaque, hashable, totally ordered.
//
// Storage is an arena: vertices live in an append-only slice of records,
// indexed by a side map from external ID to slice index, and edges are
// stored as a symmetric adjacency set keyed by slot index, so {u, v}
// and {v, u} collide; Edges reports each pair lower ID first.
// This avoids the ownership-graph / pointer-cycle pitfalls that an
// inheritance-from-a-library-graph design would invite, while keeping
// iteration order stable for reproducibility.
//
// Graph is not safe for concurrent use: it is single-threaded and
// synchronous by design, so no locking is carried here.
package graph
