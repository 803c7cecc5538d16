package flow

import "fmt"

// ErrSourceNotFound is returned when the specified source vertex is missing.
var ErrSourceNotFound = fmt.Errorf("flow: %w", errSourceNotFound)
var errSourceNotFound = fmt.Errorf("source vertex not found")

// ErrSinkNotFound is returned when the specified sink vertex is missing.
var ErrSinkNotFound = fmt.Errorf("flow: %w", errSinkNotFound)
var errSinkNotFound = fmt.Errorf("sink vertex not found")

// FlowOptions configures Dinic.
//   - Epsilon: treat capacities <= Epsilon as zero (default 1e-9).
//   - LevelRebuildInterval: rebuild the level graph every N augmentations
//     instead of after every blocking-flow phase exhausts itself; 0 means
//     "rebuild only when a phase is exhausted" (the standard algorithm).
type FlowOptions struct {
	Epsilon              float64
	LevelRebuildInterval int
}

func (o *FlowOptions) normalize() {
	if o.Epsilon <= 0 {
		o.Epsilon = 1e-9
	}
}
