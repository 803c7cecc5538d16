// Package flow provides Dinic's maximum-flow algorithm and the
// vertex-connectivity query built on top of it: split every vertex
// into an in-node and an out-node joined by a unit-capacity arc,
// add an arc of unlimited capacity from each vertex's out-node to the
// in-node of every vertex it shares an original edge with, and read off the min s-t cut
// as the maximum flow between the out-node of s and the in-node of t.
// By Menger's theorem that value is the number of internally
// vertex-disjoint paths between s and t, i.e. the local vertex
// connectivity of the pair.
package flow
