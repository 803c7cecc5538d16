// Package sparsity decides (K, L)-sparsity and (K, L)-tightness of an
// undirected graph, either by the brute-force subset definition or by
// feeding the edge set through a fresh pebble.PebbleDigraph. Both
// implementations must agree on every input; the pebble-based one is
// the one to prefer for anything beyond the smallest graphs, since the
// brute-force check enumerates every vertex subset.
package sparsity
