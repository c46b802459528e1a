package graph

import (
	"cmp"
	"slices"
)

// Info carries external metadata attached to a node. The planner never
// interprets these fields beyond equality checks in heuristics (category
// leveling, tier detection); they are opaque labels supplied by the caller.
type Info struct {
	Category         string `json:"category"`
	Technology       string `json:"technology,omitempty"`
	ConversionStatus string `json:"conversion_status,omitempty"`
}

// Graph is a directed dependency graph over keys of type K.
//
// An edge (caller, referenced) means the caller depends on the referenced
// node. Forward adjacency therefore holds a node's dependencies and reverse
// adjacency its dependents. Edges have set semantics: duplicates collapse and
// self-edges are dropped on insertion.
//
// The zero value is not usable - use [New] to create a valid instance.
// Graph is not safe for concurrent mutation; once fully built it can be
// read from multiple goroutines.
type Graph[K cmp.Ordered] struct {
	nodes map[K]struct{}
	info  map[K]Info
	out   map[K]map[K]struct{} // node -> dependencies (referenced nodes)
	in    map[K]map[K]struct{} // node -> dependents (callers)
	edges int
}

// New creates an empty graph.
func New[K cmp.Ordered]() *Graph[K] {
	return &Graph[K]{
		nodes: make(map[K]struct{}),
		info:  make(map[K]Info),
		out:   make(map[K]map[K]struct{}),
		in:    make(map[K]map[K]struct{}),
	}
}

// AddNode registers a node without any edges. Adding an existing node is a
// no-op. Isolated nodes participate in partitioning like any other node.
func (g *Graph[K]) AddNode(n K) {
	g.nodes[n] = struct{}{}
}

// AddEdge records that caller depends on referenced, registering both
// endpoints. Self-edges are dropped and duplicate edges collapse, so the
// call is idempotent.
func (g *Graph[K]) AddEdge(caller, referenced K) {
	g.nodes[caller] = struct{}{}
	g.nodes[referenced] = struct{}{}
	if caller == referenced {
		return
	}
	if _, dup := g.out[caller][referenced]; dup {
		return
	}
	if g.out[caller] == nil {
		g.out[caller] = make(map[K]struct{})
	}
	if g.in[referenced] == nil {
		g.in[referenced] = make(map[K]struct{})
	}
	g.out[caller][referenced] = struct{}{}
	g.in[referenced][caller] = struct{}{}
	g.edges++
}

// SetInfo attaches or overwrites metadata for a node, registering the node
// if it has no edges yet. Metadata is independent of graph structure.
func (g *Graph[K]) SetInfo(n K, info Info) {
	g.nodes[n] = struct{}{}
	g.info[n] = info
}

// Info returns the metadata attached to a node. The second return value
// reports whether metadata was ever set for it.
func (g *Graph[K]) Info(n K) (Info, bool) {
	info, ok := g.info[n]
	return info, ok
}

// HasNode reports whether the node is registered.
func (g *Graph[K]) HasNode(n K) bool {
	_, ok := g.nodes[n]
	return ok
}

// HasEdge reports whether the dependency edge caller -> referenced exists.
func (g *Graph[K]) HasEdge(caller, referenced K) bool {
	_, ok := g.out[caller][referenced]
	return ok
}

// NodeCount returns the number of registered nodes.
func (g *Graph[K]) NodeCount() int { return len(g.nodes) }

// EdgeCount returns the number of distinct edges.
func (g *Graph[K]) EdgeCount() int { return g.edges }

// Nodes returns all registered nodes in sorted order.
func (g *Graph[K]) Nodes() []K {
	nodes := make([]K, 0, len(g.nodes))
	for n := range g.nodes {
		nodes = append(nodes, n)
	}
	slices.Sort(nodes)
	return nodes
}

// DirectDependencies returns the nodes this node directly depends on, in
// sorted order. Unknown nodes yield an empty slice, never an error.
func (g *Graph[K]) DirectDependencies(n K) []K {
	return sortedKeys(g.out[n])
}

// DirectDependents returns the nodes that directly depend on this node, in
// sorted order. Unknown nodes yield an empty slice, never an error.
func (g *Graph[K]) DirectDependents(n K) []K {
	return sortedKeys(g.in[n])
}

// DependencyCount returns the out-degree of the node.
func (g *Graph[K]) DependencyCount(n K) int { return len(g.out[n]) }

// DependentCount returns the in-degree of the node.
func (g *Graph[K]) DependentCount(n K) int { return len(g.in[n]) }

// TransitiveDependencies returns every node reachable from n by following
// dependency edges, excluding n itself, in sorted order. A maxDepth of zero
// or less means unbounded; positive values bound the BFS to that many hops,
// which keeps queries cheap on very large graphs.
func (g *Graph[K]) TransitiveDependencies(n K, maxDepth int) []K {
	return g.bfs(n, maxDepth, g.out)
}

// TransitiveDependents returns every node that transitively depends on n,
// excluding n itself, in sorted order. Depth handling matches
// [Graph.TransitiveDependencies].
func (g *Graph[K]) TransitiveDependents(n K, maxDepth int) []K {
	return g.bfs(n, maxDepth, g.in)
}

// Roots returns the nodes no other node depends on (empty reverse
// adjacency), in sorted order. These are deployment end-consumers.
func (g *Graph[K]) Roots() []K {
	var roots []K
	for n := range g.nodes {
		if len(g.in[n]) == 0 {
			roots = append(roots, n)
		}
	}
	slices.Sort(roots)
	return roots
}

// Leaves returns the nodes that depend on nothing (empty forward
// adjacency), in sorted order. These are safe to deploy first.
func (g *Graph[K]) Leaves() []K {
	var leaves []K
	for n := range g.nodes {
		if len(g.out[n]) == 0 {
			leaves = append(leaves, n)
		}
	}
	slices.Sort(leaves)
	return leaves
}

// bfs walks adj breadth-first from start, excluding start from the result.
// Runs in O(V+E) time unbounded; maxDepth > 0 limits the frontier.
func (g *Graph[K]) bfs(start K, maxDepth int, adj map[K]map[K]struct{}) []K {
	if _, ok := g.nodes[start]; !ok {
		return nil
	}

	type item struct {
		node  K
		depth int
	}
	visited := map[K]struct{}{start: {}}
	queue := []item{{start, 0}}
	var result []K

	for len(queue) > 0 {
		curr := queue[0]
		queue = queue[1:]
		if maxDepth > 0 && curr.depth >= maxDepth {
			continue
		}
		for next := range adj[curr.node] {
			if _, seen := visited[next]; seen {
				continue
			}
			visited[next] = struct{}{}
			result = append(result, next)
			queue = append(queue, item{next, curr.depth + 1})
		}
	}

	slices.Sort(result)
	return result
}

func sortedKeys[K cmp.Ordered](set map[K]struct{}) []K {
	keys := make([]K, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}
