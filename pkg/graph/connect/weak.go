package connect

import (
	"cmp"
	"slices"

	"github.com/mbeckers/waveplan/pkg/graph"
)

// WeaklyConnected returns the weakly connected components of g: the
// components of the graph with edge directions ignored.
//
// The traversal is an iterative depth-first search over both forward and
// reverse adjacency, with nodes taken in globally sorted order. Because each
// component is first entered at its minimum member, components come out
// ordered by minimum member without a final sort. Members are sorted.
// Runs in O(V+E) time, O(V) space; an empty graph yields no components.
func WeaklyConnected[K cmp.Ordered](g *graph.Graph[K]) [][]K {
	visited := make(map[K]bool, g.NodeCount())
	var comps [][]K

	for _, start := range g.Nodes() {
		if visited[start] {
			continue
		}
		var comp []K
		stack := []K{start}
		visited[start] = true

		for len(stack) > 0 {
			curr := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			comp = append(comp, curr)

			for _, next := range undirectedNeighbors(g, curr) {
				if !visited[next] {
					visited[next] = true
					stack = append(stack, next)
				}
			}
		}

		slices.Sort(comp)
		comps = append(comps, comp)
	}

	return comps
}

// undirectedNeighbors merges a node's dependencies and dependents into one
// sorted, duplicate-free neighbor list.
func undirectedNeighbors[K cmp.Ordered](g *graph.Graph[K], n K) []K {
	deps := g.DirectDependencies(n)
	dependents := g.DirectDependents(n)
	merged := make([]K, 0, len(deps)+len(dependents))
	merged = append(merged, deps...)
	merged = append(merged, dependents...)
	slices.Sort(merged)
	return slices.Compact(merged)
}
