package wave

import (
	"cmp"
	"slices"

	"github.com/mbeckers/waveplan/pkg/graph"
)

// Merge folds undersized partitions into dependency-safe neighbors and
// returns the renumbered result. The input slice is not modified.
//
// Passes repeat until one completes without change. Each pass first tries
// to merge every partition below minSize into its nearest preceding
// partition of the same type; only if no backward merge succeeded anywhere
// does the pass retry with forward merges under the symmetric safety
// condition. Simple-object waves are never merged, combined sizes never
// exceed maxSize, and a merge is validated safe before it is applied, so
// every partition in the result is trustworthy. After convergence the
// partitions are renumbered 1..N preserving relative order.
func Merge[K cmp.Ordered](g *graph.Graph[K], parts []Partition[K], minSize, maxSize int) []Partition[K] {
	merged := slices.Clone(parts)
	for {
		var changed bool
		merged, changed = mergePass(g, merged, minSize, maxSize, false)
		if !changed {
			merged, changed = mergePass(g, merged, minSize, maxSize, true)
		}
		if !changed {
			break
		}
	}
	for i := range merged {
		merged[i].Number = i + 1
	}
	return merged
}

// mergePass scans the partitions in order and applies every legal merge of
// an undersized partition into its nearest same-type neighbor (preceding,
// or following when forward is set). Reports whether anything changed.
func mergePass[K cmp.Ordered](g *graph.Graph[K], parts []Partition[K], minSize, maxSize int, forward bool) ([]Partition[K], bool) {
	changed := false
	for i := 0; i < len(parts); i++ {
		if parts[i].Type == TypeSimpleObject || len(parts[i].Nodes) >= minSize {
			continue
		}
		j := nearestSameType(parts, i, forward)
		if j < 0 {
			continue
		}
		if len(parts[i].Nodes)+len(parts[j].Nodes) > maxSize {
			continue
		}
		if !mergeSafe(g, parts, i, j) {
			continue
		}
		parts = applyMerge(parts, i, j)
		changed = true
		i-- // the removed slot now holds the next partition
	}
	return parts, changed
}

func nearestSameType[K cmp.Ordered](parts []Partition[K], i int, forward bool) int {
	if forward {
		for j := i + 1; j < len(parts); j++ {
			if parts[j].Type == parts[i].Type {
				return j
			}
		}
		return -1
	}
	for j := i - 1; j >= 0; j-- {
		if parts[j].Type == parts[i].Type {
			return j
		}
	}
	return -1
}

// mergeSafe validates the no-forward-dependency invariant for moving all of
// partition i into partition j. Moving backward (j < i), every dependency
// of a moved node must resolve within the moving set or a partition at or
// before j. Moving forward (j > i), symmetrically, every dependent of a
// moved node must sit within the moving set or at or after j.
func mergeSafe[K cmp.Ordered](g *graph.Graph[K], parts []Partition[K], i, j int) bool {
	pos := make(map[K]int)
	for idx, p := range parts {
		for _, n := range p.Nodes {
			pos[n] = idx
		}
	}

	for _, n := range parts[i].Nodes {
		if j < i {
			for _, d := range g.DirectDependencies(n) {
				if p, ok := pos[d]; ok && p != i && p > j {
					return false
				}
			}
		} else {
			for _, c := range g.DirectDependents(n) {
				if p, ok := pos[c]; ok && p != i && p < j {
					return false
				}
			}
		}
	}
	return true
}

// applyMerge moves partition i into partition j, keeping dependency order
// inside the combined node list, and drops slot i. The target keeps its
// type and seed.
func applyMerge[K cmp.Ordered](parts []Partition[K], i, j int) []Partition[K] {
	target := &parts[j]
	if j < i {
		target.Nodes = append(slices.Clone(target.Nodes), parts[i].Nodes...)
		target.Units = append(slices.Clone(target.Units), parts[i].Units...)
	} else {
		target.Nodes = append(slices.Clone(parts[i].Nodes), target.Nodes...)
		target.Units = append(slices.Clone(parts[i].Units), target.Units...)
	}
	target.Stats = Stats[K]{} // stale; Analyze recomputes after merging
	return slices.Delete(parts, i, i+1)
}
