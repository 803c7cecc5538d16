// Command pebblegame evaluates (K, L)-sparsity and generic rigidity
// predicates against an edge list read from a file or stdin.
package main

import "os"

func main() {
	if err := Execute(); err != nil {
		os.Exit(1)
	}
}
