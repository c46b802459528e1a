package wave

import (
	"cmp"
	"slices"

	"github.com/mbeckers/waveplan/pkg/errors"
	"github.com/mbeckers/waveplan/pkg/graph"
	"github.com/mbeckers/waveplan/pkg/graph/connect"
)

// Partitioner assigns condensation units to deployment waves. It is a
// sequential state machine over the assigned/unassigned unit set: phase 1
// levels simple object categories into uncapped waves, phase 2 bin-packs
// the remaining units in priority order. Terminal when every unit is
// assigned.
//
// A Partitioner is single-use per Run and not safe for concurrent use; each
// invocation exclusively owns its assignment state.
type Partitioner[K cmp.Ordered] struct {
	g     *graph.Graph[K]
	cond  *connect.Condensation[K]
	cfg   Config
	match *matcher

	// Per-unit priority signals, computed once at construction.
	tier       []int
	dependents []int // total direct dependents across member nodes
	transDeps  []int // condensation-level transitive dependency count

	assigned []bool
	parts    []Partition[K]
}

// NewPartitioner validates the configuration, compiles the prioritization
// patterns and precomputes per-unit priority signals. Malformed patterns
// surface immediately as MALFORMED_PATTERN; invalid size bounds as
// INVALID_CONFIG.
func NewPartitioner[K cmp.Ordered](g *graph.Graph[K], cond *connect.Condensation[K], cfg Config) (*Partitioner[K], error) {
	if cfg.MinSize <= 0 || cfg.MaxSize <= 0 {
		return nil, errors.New(errors.ErrCodeInvalidConfig,
			"wave sizes must be positive (min_size=%d, max_size=%d)", cfg.MinSize, cfg.MaxSize)
	}
	if cfg.MinSize > cfg.MaxSize {
		return nil, errors.New(errors.ErrCodeInvalidConfig,
			"min_size %d exceeds max_size %d", cfg.MinSize, cfg.MaxSize)
	}
	match, err := newMatcher(cfg.PrioritizePatterns)
	if err != nil {
		return nil, err
	}

	p := &Partitioner[K]{g: g, cond: cond, cfg: cfg, match: match}
	p.computeSignals()
	return p, nil
}

func (p *Partitioner[K]) computeSignals() {
	n := p.cond.UnitCount()
	p.tier = make([]int, n)
	p.dependents = make([]int, n)
	p.transDeps = make([]int, n)

	etl := make(map[string]bool, len(p.cfg.EtlCategories))
	for _, c := range p.cfg.EtlCategories {
		etl[c] = true
	}

	for u := 0; u < n; u++ {
		p.tier[u] = p.computeTier(u, etl)
		for _, m := range p.cond.Members[u] {
			p.dependents[u] += p.g.DependentCount(m)
		}
		p.transDeps[u] = len(p.cond.Units.TransitiveDependencies(u, 0))
	}
}

func (p *Partitioner[K]) computeTier(u int, etl map[string]bool) int {
	for _, m := range p.cond.Members[u] {
		if p.match.match(keyString(m)) {
			return tierPrioritized
		}
	}
	if len(etl) > 0 {
		allEtl := true
		for _, m := range p.cond.Members[u] {
			info, ok := p.g.Info(m)
			if !ok || !etl[info.Category] {
				allEtl = false
				break
			}
		}
		if allEtl {
			return tierEtl
		}
	}
	return tierRegular
}

// Run produces the ordered wave sequence. Empty input yields zero waves and
// a nil error. If phase 2 stalls with unassigned units remaining - which
// the acyclic condensation rules out for well-formed input - Run returns a
// GRAPH_INCONSISTENCY error alongside the partitions produced so far, all
// of which remain valid.
func (p *Partitioner[K]) Run() ([]Partition[K], error) {
	p.parts = nil
	p.assigned = make([]bool, p.cond.UnitCount())

	if p.cfg.CategoryWaves {
		p.levelCategories()
	}
	err := p.packWaves()

	for i := range p.parts {
		p.parts[i].Number = i + 1
	}
	return p.parts, err
}

// ready reports whether every condensation dependency of the unit has been
// assigned to a wave.
func (p *Partitioner[K]) ready(u int) bool {
	for _, d := range p.cond.Units.DirectDependencies(u) {
		if !p.assigned[d] {
			return false
		}
	}
	return true
}

// levelCategories is phase 1: per simple category in order, repeatedly
// collect every ready qualifying unit of that category into one uncapped
// simple-object wave. The outer loop re-runs the whole category list until
// a full pass places nothing, which resolves cross-category chains (a
// TABLE depending on a FUNCTION) by fixed-point iteration. Units that
// depend on non-simple units never become ready here and fall through to
// phase 2, keeping the no-forward-dependency invariant intact.
func (p *Partitioner[K]) levelCategories() {
	if len(p.cfg.SimpleCategories) == 0 {
		return
	}
	for {
		placed := false
		for _, cat := range p.cfg.SimpleCategories {
			for {
				var ready []int
				for u := 0; u < p.cond.UnitCount(); u++ {
					if !p.assigned[u] && p.unitInCategory(u, cat) && p.ready(u) {
						ready = append(ready, u)
					}
				}
				if len(ready) == 0 {
					break
				}
				// Ready units are mutually independent (all their
				// dependencies sit in earlier waves), so min-member order is
				// a valid deployment order.
				slices.SortFunc(ready, func(a, b int) int {
					return cmp.Compare(p.cond.MinMember(a), p.cond.MinMember(b))
				})
				p.appendWave(ready, TypeSimpleObject, -1)
				placed = true
			}
		}
		if !placed {
			return
		}
	}
}

// unitInCategory reports whether every member of the unit carries the given
// category. Members without metadata never qualify.
func (p *Partitioner[K]) unitInCategory(u int, cat string) bool {
	for _, m := range p.cond.Members[u] {
		info, ok := p.g.Info(m)
		if !ok || info.Category != cat {
			return false
		}
	}
	return true
}

// packWaves is phase 2: priority-ordered greedy bin-packing of the units
// phase 1 left unassigned.
func (p *Partitioner[K]) packWaves() error {
	for {
		var ready []int
		remaining := 0
		for u := 0; u < p.cond.UnitCount(); u++ {
			if p.assigned[u] {
				continue
			}
			remaining++
			if p.ready(u) {
				ready = append(ready, u)
			}
		}
		if remaining == 0 {
			return nil
		}
		if len(ready) == 0 {
			return errors.Wrap(errors.ErrCodeGraphInconsistency,
				&errors.InconsistencyError{Stuck: p.unassignedUnits()},
				"wave partitioning stalled")
		}

		p.sortByPriority(ready)

		seed := ready[0]
		units := []int{seed}
		inWave := map[int]bool{seed: true}
		size := p.cond.Size(seed)

		for _, u := range ready[1:] {
			if size >= p.cfg.MinSize {
				break
			}
			if size+p.cond.Size(u) <= p.cfg.MaxSize {
				units = append(units, u)
				inWave[u] = true
				size += p.cond.Size(u)
			}
		}
		// Top-up: min_size dominates max_size when the fitting units ran
		// out. A final wave may still finish short once ready units are
		// exhausted.
		for _, u := range ready[1:] {
			if size >= p.cfg.MinSize {
				break
			}
			if inWave[u] {
				continue
			}
			units = append(units, u)
			inWave[u] = true
			size += p.cond.Size(u)
		}

		typ := TypeRegular
		if p.tier[seed] == tierPrioritized {
			typ = TypeUserPrioritized
		}
		p.appendWave(p.orderWithinWave(units), typ, seed)
	}
}

// sortByPriority orders ready units ascending by admission key: tier,
// total direct dependents, transitive dependency count (descending), unit
// size, and finally the lexicographically smallest member.
func (p *Partitioner[K]) sortByPriority(units []int) {
	slices.SortFunc(units, func(a, b int) int {
		if c := cmp.Compare(p.tier[a], p.tier[b]); c != 0 {
			return c
		}
		if c := cmp.Compare(p.dependents[a], p.dependents[b]); c != 0 {
			return c
		}
		if c := cmp.Compare(p.transDeps[b], p.transDeps[a]); c != 0 {
			return c
		}
		if c := cmp.Compare(p.cond.Size(a), p.cond.Size(b)); c != 0 {
			return c
		}
		return cmp.Compare(p.cond.MinMember(a), p.cond.MinMember(b))
	})
}

// orderWithinWave runs Kahn's algorithm restricted to the wave's units,
// breaking ties by (unit size, minimum member), and returns the units in
// deployment order.
func (p *Partitioner[K]) orderWithinWave(units []int) []int {
	inWave := make(map[int]bool, len(units))
	for _, u := range units {
		inWave[u] = true
	}

	// In-wave in-degree: number of dependencies that must deploy first
	// within this wave.
	indeg := make(map[int]int, len(units))
	for _, u := range units {
		for _, d := range p.cond.Units.DirectDependencies(u) {
			if inWave[d] {
				indeg[u]++
			}
		}
	}

	var avail []int
	for _, u := range units {
		if indeg[u] == 0 {
			avail = append(avail, u)
		}
	}

	less := func(a, b int) int {
		if c := cmp.Compare(p.cond.Size(a), p.cond.Size(b)); c != 0 {
			return c
		}
		return cmp.Compare(p.cond.MinMember(a), p.cond.MinMember(b))
	}

	ordered := make([]int, 0, len(units))
	for len(avail) > 0 {
		slices.SortFunc(avail, less)
		next := avail[0]
		avail = avail[1:]
		ordered = append(ordered, next)

		for _, dep := range p.cond.Units.DirectDependents(next) {
			if !inWave[dep] {
				continue
			}
			indeg[dep]--
			if indeg[dep] == 0 {
				avail = append(avail, dep)
			}
		}
	}
	return ordered
}

// appendWave flattens the (already ordered) units into a partition and
// marks them assigned. seed < 0 means the wave has no seed unit.
func (p *Partitioner[K]) appendWave(units []int, typ Type, seed int) {
	part := Partition[K]{Type: typ, Units: slices.Clone(units)}
	for _, u := range units {
		part.Nodes = append(part.Nodes, p.cond.Members[u]...)
		p.assigned[u] = true
	}
	if seed >= 0 {
		part.Seed = slices.Clone(p.cond.Members[seed])
	}
	p.parts = append(p.parts, part)
}

func (p *Partitioner[K]) unassignedUnits() []int {
	var stuck []int
	for u := 0; u < p.cond.UnitCount(); u++ {
		if !p.assigned[u] {
			stuck = append(stuck, u)
		}
	}
	return stuck
}
