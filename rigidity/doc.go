// Package rigidity interprets the (K, L)-sparsity oracle as generic
// rigidity in dimension 1 or 2: is_rigid, is_min_rigid,
// is_redundantly_rigid, is_globally_rigid, and their k-redundant
// variants. Dimension 1 reduces to plain connectivity; dimension 2
// reduces to the (2, 3)-sparsity matroid, with a deficiency-based
// edge-removal search standing in for the matrix-rank computation a
// numeric implementation would use instead.
//
// Every predicate in this package rejects a graph containing a
// self-loop with gerr.ErrGraphHasLoop before doing any other work:
// self-loops have no meaning in a rigidity framework.
package rigidity
