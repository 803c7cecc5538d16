// Package pebble implements the (K, L)-pebble game: an incremental
// matroid oracle that decides whether a stream of undirected edges is
// (K, L)-sparse, maintaining an oriented witness digraph of the
// sparsity certified so far.
//
// The witness is a directed multigraph D over the same vertex set as
// the candidate edges, satisfying two invariants at all times:
//
//   - pebble count: every vertex has out-degree <= K.
//   - pair bound: for every pair (u, v) accepted as independent,
//     out_degree(u) + out_degree(v) <= 2K - L - 1 held at the moment
//     that edge was inserted.
//
// Accepting a new edge {u, v} whose current combined out-degree
// exceeds the pair bound requires freeing up an outgoing slot on u or
// v first. PebbleDigraph does this by searching for a vertex with
// spare pebble capacity reachable by following existing out-edges, and
// reversing every edge along that path (path reversal): the reversal
// is an in-place exchange that preserves the pebble-count invariant
// everywhere and keeps the accepted edge set's undirected support
// unchanged while moving one unit of out-degree from u (or v) to the
// vertex found.
//
// PebbleDigraph is not safe for concurrent use, and changing K or L
// invalidates all current orientations.
package pebble
