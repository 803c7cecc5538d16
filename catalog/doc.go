// Package catalog builds named reference graphs used as fixtures by
// this module's tests and by callers who want a canonical instance
// without hand-writing an edge list: complete graphs, complete
// bipartite graphs, cycles, paths, and a handful of small graphs from
// rigidity-theory folklore (the diamond, the 3-prism and its
// edge-augmented variant, K3,3 plus an edge, and the smallest
// flexible minimally rigid graph).
//
// Every constructor returns a fresh *graph.Graph with vertex IDs
// "0".."n-1" (or the concatenation of two such ranges for bipartite
// graphs) in deterministic construction order, so two calls with the
// same arguments always produce graphs that compare equal under
// ToInteger.
package catalog
