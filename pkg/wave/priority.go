package wave

import (
	"cmp"
	"fmt"
	"path"
	"slices"

	"github.com/mbeckers/waveplan/pkg/errors"
)

// Admission tiers. Lower tiers enter waves first.
const (
	tierPrioritized = 0 // a member matched a prioritization pattern
	tierRegular     = 1
	tierEtl         = 2 // every member is an ETL object
)

// matcher matches object names against the ordered prioritization patterns.
// Exact string matches are checked across the whole pattern list before any
// glob matching, so a literal name always wins over a wildcard.
type matcher struct {
	patterns []string
}

func newMatcher(patterns []string) (*matcher, error) {
	for _, p := range patterns {
		if _, err := path.Match(p, ""); err != nil {
			return nil, errors.Wrap(errors.ErrCodeMalformedPattern, err,
				"invalid prioritize pattern %q", p)
		}
	}
	return &matcher{patterns: patterns}, nil
}

func (m *matcher) match(name string) bool {
	for _, p := range m.patterns {
		if p == name {
			return true
		}
	}
	for _, p := range m.patterns {
		// Patterns were validated at construction; Match cannot fail here.
		if ok, _ := path.Match(p, name); ok {
			return true
		}
	}
	return false
}

// keyString renders a node key for pattern matching. For string keys this
// is the identity.
func keyString[K cmp.Ordered](k K) string {
	return fmt.Sprint(k)
}

// UnitRank records the priority signals of one condensation unit for
// diagnostics: its admission tier, the dependent and transitive dependency
// counts feeding the sort key, and the partition it was assigned to.
type UnitRank[K cmp.Ordered] struct {
	Unit           int `json:"unit"`
	Members        []K `json:"members"`
	Tier           int `json:"tier"`
	Dependents     int `json:"dependents"`
	TransitiveDeps int `json:"transitive_deps"`
	Size           int `json:"size"`
	Partition      int `json:"partition"`
}

// Ranking returns the full unit priority ranking, ordered by the same key
// used for wave admission. Partition numbers are taken from parts, which
// should be the final merged and renumbered partition list.
func (p *Partitioner[K]) Ranking(parts []Partition[K]) []UnitRank[K] {
	partOf := make(map[int]int, p.cond.UnitCount())
	for _, part := range parts {
		for _, u := range part.Units {
			partOf[u] = part.Number
		}
	}

	ranks := make([]UnitRank[K], p.cond.UnitCount())
	for u := range ranks {
		ranks[u] = UnitRank[K]{
			Unit:           u,
			Members:        slices.Clone(p.cond.Members[u]),
			Tier:           p.tier[u],
			Dependents:     p.dependents[u],
			TransitiveDeps: p.transDeps[u],
			Size:           p.cond.Size(u),
			Partition:      partOf[u],
		}
	}

	slices.SortFunc(ranks, func(a, b UnitRank[K]) int {
		if c := cmp.Compare(a.Tier, b.Tier); c != 0 {
			return c
		}
		if c := cmp.Compare(a.Dependents, b.Dependents); c != 0 {
			return c
		}
		if c := cmp.Compare(b.TransitiveDeps, a.TransitiveDeps); c != 0 {
			return c
		}
		if c := cmp.Compare(a.Size, b.Size); c != 0 {
			return c
		}
		return cmp.Compare(a.Members[0], b.Members[0])
	})
	return ranks
}
