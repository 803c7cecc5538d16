// Package search provides the two exhaustive searches the rigidity
// frontend needs but cannot answer on its own: graph isomorphism
// (IsIsomorphic, a correctness-first VF2-style backtracking matcher)
// and vertex-maximal/vertex-minimal rigid subgraph enumeration
// (MaximalRigidSubgraphs, MinimalRigidSubgraphs), both necessarily
// exponential in the worst case since they recurse over every
// (|V|-1)-vertex induced subgraph and deduplicate the results by
// isomorphism.
package search
