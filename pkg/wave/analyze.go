package wave

import (
	"cmp"
	"slices"

	"github.com/mbeckers/waveplan/pkg/graph"
)

// MatrixEntry is one nonzero cell of the sparse inter-partition dependency
// matrix: Count dependency edges run from nodes in partition From to nodes
// in the strictly earlier partition To.
type MatrixEntry struct {
	From  int `json:"from"`
	To    int `json:"to"`
	Count int `json:"count"`
}

// Analyze computes per-partition statistics in place and returns the
// sparse inter-partition matrix, sorted by (From, To).
//
// Root and leaf membership is judged against whole-graph root/leaf status.
// A dependency edge counts as internal when both endpoints share a
// partition and as external when it points to an earlier partition, with
// external counts additionally broken down by source partition number.
// Only nonzero matrix entries are emitted.
func Analyze[K cmp.Ordered](g *graph.Graph[K], parts []Partition[K]) []MatrixEntry {
	pos := make(map[K]int, g.NodeCount())
	for idx, p := range parts {
		for _, n := range p.Nodes {
			pos[n] = idx
		}
	}

	globalRoots := toSet(g.Roots())
	globalLeaves := toSet(g.Leaves())
	cells := make(map[[2]int]int)

	for idx := range parts {
		p := &parts[idx]
		st := Stats[K]{
			ExternalBySource: make(map[int]int),
			Categories:       make(map[string]int),
		}

		for _, n := range p.Nodes {
			if globalRoots[n] {
				st.Roots = append(st.Roots, n)
			}
			if globalLeaves[n] {
				st.Leaves = append(st.Leaves, n)
			}
			if info, ok := g.Info(n); ok && info.Category != "" {
				st.Categories[info.Category]++
			}
			for _, d := range g.DirectDependencies(n) {
				dIdx := pos[d]
				if dIdx == idx {
					st.InternalDeps++
					continue
				}
				st.ExternalDeps++
				st.ExternalBySource[parts[dIdx].Number]++
				cells[[2]int{p.Number, parts[dIdx].Number}]++
			}
		}

		slices.Sort(st.Roots)
		slices.Sort(st.Leaves)
		p.Stats = st
	}

	entries := make([]MatrixEntry, 0, len(cells))
	for cell, count := range cells {
		entries = append(entries, MatrixEntry{From: cell[0], To: cell[1], Count: count})
	}
	slices.SortFunc(entries, func(a, b MatrixEntry) int {
		if c := cmp.Compare(a.From, b.From); c != 0 {
			return c
		}
		return cmp.Compare(a.To, b.To)
	})
	return entries
}

func toSet[K cmp.Ordered](keys []K) map[K]bool {
	set := make(map[K]bool, len(keys))
	for _, k := range keys {
		set[k] = true
	}
	return set
}
