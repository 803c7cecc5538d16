// dinic.go — Dinic's algorithm (level graph + blocking flow): the same
// level-graph BFS plus iterator-indexed DFS blocking-flow shape as a
// classic max-flow engine, but operating directly on a capacity map
// instead of a generic multi-mode graph container, since this module's
// only caller (vertex-split connectivity) builds exactly one capacity
// map per query and never needs a persisted residual graph type of
// its own.
package flow

import "math"

// Dinic computes the maximum flow from source to sink in the capacity
// network described by cap (cap[u][v] = capacity of arc u->v; absent
// or non-positive entries mean no arc). cap is mutated into its own
// residual network in place, so callers that want to inspect which
// arcs remain saturated can read the map they passed in.
//
// Complexity: O(V^2 * E) in general, O(E * sqrt(V)) on unit-capacity
// networks such as the vertex-split gadget a vertex-connectivity query
// builds.
func Dinic(cap map[string]map[string]float64, source, sink string, opts FlowOptions) (float64, error) {
	opts.normalize()
	if _, ok := cap[source]; !ok {
		return 0, ErrSourceNotFound
	}
	if _, ok := cap[sink]; !ok {
		return 0, ErrSinkNotFound
	}
	if source == sink {
		return 0, nil
	}

	var maxFlow float64
	augmentations := 0
	for {
		level := bfsLevels(cap, source)
		if level[sink] < 0 {
			break
		}
		next := buildLevelAdjacency(cap, level, opts.Epsilon)
		iter := make(map[string]int, len(next))
		for {
			pushed := dfsBlockingFlow(cap, next, iter, source, sink, math.Inf(1), opts.Epsilon)
			if pushed <= opts.Epsilon {
				break
			}
			maxFlow += pushed
			augmentations++
			if opts.LevelRebuildInterval > 0 && augmentations%opts.LevelRebuildInterval == 0 {
				break
			}
		}
	}
	return maxFlow, nil
}

func bfsLevels(cap map[string]map[string]float64, source string) map[string]int {
	level := make(map[string]int, len(cap))
	for u := range cap {
		level[u] = -1
	}
	level[source] = 0
	queue := []string{source}
	for i := 0; i < len(queue); i++ {
		u := queue[i]
		for v, c := range cap[u] {
			if c > 0 && level[v] < 0 {
				level[v] = level[u] + 1
				queue = append(queue, v)
			}
		}
	}
	return level
}

func buildLevelAdjacency(cap map[string]map[string]float64, level map[string]int, eps float64) map[string][]string {
	next := make(map[string][]string, len(cap))
	for u, nbrs := range cap {
		for v, c := range nbrs {
			if c > eps && level[v] == level[u]+1 {
				next[u] = append(next[u], v)
			}
		}
	}
	return next
}

func dfsBlockingFlow(cap map[string]map[string]float64, next map[string][]string, iter map[string]int, u, sink string, available, eps float64) float64 {
	if u == sink {
		return available
	}
	for i := iter[u]; i < len(next[u]); i++ {
		iter[u] = i + 1
		v := next[u][i]
		c := cap[u][v]
		if c <= eps {
			continue
		}
		send := math.Min(available, c)
		pushed := dfsBlockingFlow(cap, next, iter, v, sink, send, eps)
		if pushed > eps {
			cap[u][v] -= pushed
			if cap[v] == nil {
				cap[v] = make(map[string]float64)
			}
			cap[v][u] += pushed
			return pushed
		}
	}
	return 0
}
