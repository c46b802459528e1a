package connect

import (
	"cmp"
	"slices"

	"github.com/mbeckers/waveplan/pkg/graph"
)

// frameKind tags entries on the explicit Tarjan work stack. The three kinds
// translate the textbook recursion into an iterative state machine, so SCC
// discovery cannot blow the call stack on long dependency chains.
type frameKind int

const (
	// frameVisit assigns index and lowlink and begins neighbor iteration.
	frameVisit frameKind = iota
	// frameProcess advances the neighbor cursor and closes the component
	// when the node's lowlink equals its index.
	frameProcess
	// frameUpdateLowlink folds a completed child's lowlink into its parent.
	frameUpdateLowlink
)

type frame[K cmp.Ordered] struct {
	kind   frameKind
	node   K
	cursor int // next neighbor index, frameProcess only
	child  K   // completed child, frameUpdateLowlink only
}

// StronglyConnected returns the strongly connected components of g.
//
// The implementation is Tarjan's algorithm driven by an explicit tagged
// work stack instead of recursion; depth is bounded by heap, not by the
// goroutine stack. Nodes are visited in globally sorted order and each
// component's members are sorted, so the output is fully deterministic:
// components are ordered by their minimum member. Runs in O(V+E) time and
// O(V) space. An empty graph yields no components.
func StronglyConnected[K cmp.Ordered](g *graph.Graph[K]) [][]K {
	index := make(map[K]int, g.NodeCount())
	lowlink := make(map[K]int, g.NodeCount())
	onStack := make(map[K]bool)
	var sccStack []K
	var counter int
	var comps [][]K

	var work []frame[K]

	for _, start := range g.Nodes() {
		if _, visited := index[start]; visited {
			continue
		}
		work = append(work[:0], frame[K]{kind: frameVisit, node: start})

		for len(work) > 0 {
			f := work[len(work)-1]
			work = work[:len(work)-1]

			switch f.kind {
			case frameVisit:
				if _, visited := index[f.node]; visited {
					continue
				}
				index[f.node] = counter
				lowlink[f.node] = counter
				counter++
				sccStack = append(sccStack, f.node)
				onStack[f.node] = true
				work = append(work, frame[K]{kind: frameProcess, node: f.node})

			case frameProcess:
				deps := g.DirectDependencies(f.node)
				if f.cursor < len(deps) {
					next := deps[f.cursor]
					work = append(work, frame[K]{kind: frameProcess, node: f.node, cursor: f.cursor + 1})
					if _, visited := index[next]; !visited {
						work = append(work,
							frame[K]{kind: frameUpdateLowlink, node: f.node, child: next},
							frame[K]{kind: frameVisit, node: next},
						)
					} else if onStack[next] {
						lowlink[f.node] = min(lowlink[f.node], index[next])
					}
					continue
				}

				if lowlink[f.node] == index[f.node] {
					var comp []K
					for {
						top := sccStack[len(sccStack)-1]
						sccStack = sccStack[:len(sccStack)-1]
						onStack[top] = false
						comp = append(comp, top)
						if top == f.node {
							break
						}
					}
					slices.Sort(comp)
					comps = append(comps, comp)
				}

			case frameUpdateLowlink:
				lowlink[f.node] = min(lowlink[f.node], lowlink[f.child])
			}
		}
	}

	slices.SortFunc(comps, func(a, b []K) int { return cmp.Compare(a[0], b[0]) })
	return comps
}

// Cycles returns the strongly connected components with more than one
// member. Each such component is a true dependency cycle and must be
// deployed as a single atomic unit.
func Cycles[K cmp.Ordered](g *graph.Graph[K]) [][]K {
	var cycles [][]K
	for _, comp := range StronglyConnected(g) {
		if len(comp) > 1 {
			cycles = append(cycles, comp)
		}
	}
	return cycles
}
