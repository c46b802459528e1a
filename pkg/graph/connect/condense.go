package connect

import (
	"cmp"

	"github.com/mbeckers/waveplan/pkg/graph"
)

// Condensation is the acyclic unit graph obtained by collapsing each
// strongly connected component of a dependency graph into a single node.
// Unit indices follow component discovery order and are meaningful only for
// comparison and lookup. Member keys are stored by value, so the original
// graph may be discarded after condensation.
//
// The fields form a consistent triple: Members[i] lists the sorted member
// nodes of unit i, ByNode inverts that mapping, and Units holds one node
// per unit index with an edge (i, j) for every original inter-component
// edge (a, b) with a in unit i and b in unit j. Self-loops are dropped and
// duplicate unit edges collapse.
type Condensation[K cmp.Ordered] struct {
	Members [][]K
	ByNode  map[K]int
	Units   *graph.Graph[int]
}

// Condense builds the condensation of g. The result is acyclic by
// construction: any cycle between units would contradict the maximality of
// the underlying strongly connected components.
func Condense[K cmp.Ordered](g *graph.Graph[K]) *Condensation[K] {
	comps := StronglyConnected(g)

	c := &Condensation[K]{
		Members: comps,
		ByNode:  make(map[K]int, g.NodeCount()),
		Units:   graph.New[int](),
	}
	for i, comp := range comps {
		c.Units.AddNode(i)
		for _, n := range comp {
			c.ByNode[n] = i
		}
	}

	for _, a := range g.Nodes() {
		i := c.ByNode[a]
		for _, b := range g.DirectDependencies(a) {
			if j := c.ByNode[b]; i != j {
				c.Units.AddEdge(i, j)
			}
		}
	}

	return c
}

// UnitCount returns the number of units.
func (c *Condensation[K]) UnitCount() int { return len(c.Members) }

// Size returns the number of member nodes in unit i.
func (c *Condensation[K]) Size(i int) int { return len(c.Members[i]) }

// UnitOf returns the unit index containing node n.
func (c *Condensation[K]) UnitOf(n K) (int, bool) {
	i, ok := c.ByNode[n]
	return i, ok
}

// MinMember returns the smallest member node of unit i. Members are kept
// sorted, so this is a constant-time lookup used for deterministic
// tie-breaking.
func (c *Condensation[K]) MinMember(i int) K { return c.Members[i][0] }
