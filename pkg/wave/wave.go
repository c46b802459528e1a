package wave

import "cmp"

// Type classifies how a partition was formed.
type Type string

const (
	// TypeSimpleObject marks an uncapped category-leveling wave produced by
	// phase 1 of the partitioner.
	TypeSimpleObject Type = "simple_object"
	// TypeUserPrioritized marks a phase-2 wave whose seed unit matched a
	// caller-supplied prioritization pattern.
	TypeUserPrioritized Type = "user_prioritized"
	// TypeRegular marks every other phase-2 wave.
	TypeRegular Type = "regular"
)

// Stats holds the per-partition statistics computed by [Analyze].
// Root and leaf membership is judged against whole-graph root/leaf status,
// not partition-local degrees.
type Stats[K cmp.Ordered] struct {
	Roots            []K            `json:"roots"`
	Leaves           []K            `json:"leaves"`
	InternalDeps     int            `json:"internal_deps"`
	ExternalDeps     int            `json:"external_deps"`
	ExternalBySource map[int]int    `json:"external_by_source"` // earlier partition number -> edge count
	Categories       map[string]int `json:"categories"`
}

// Partition is one deployment wave: an ordered group of objects that can be
// deployed together because every dependency of every member is satisfied
// by an earlier partition or by the partition itself.
//
// Nodes are flattened in deployment order. Units lists the condensation
// units backing the partition, also in deployment order; Seed holds the
// members of the unit that seeded a phase-2 wave (nil for simple-object
// waves). Stats is only populated after [Analyze] runs.
type Partition[K cmp.Ordered] struct {
	Number int      `json:"number"` // 1-based, frozen after merging
	Type   Type     `json:"type"`
	Nodes  []K      `json:"nodes"`
	Seed   []K      `json:"seed,omitempty"`
	Units  []int    `json:"units"`
	Stats  Stats[K] `json:"stats"`
}

// Size returns the number of objects in the partition.
func (p *Partition[K]) Size() int { return len(p.Nodes) }

// Config carries the partitioning tunables.
type Config struct {
	// MinSize and MaxSize bound phase-2 wave sizes. MinSize dominates: the
	// top-up pass may exceed MaxSize to reach MinSize, and a final wave may
	// legitimately stay below MinSize when ready units run out. Both must be
	// positive with MinSize <= MaxSize.
	MinSize int
	MaxSize int

	// PrioritizePatterns is an ordered list of exact object names or glob
	// patterns (path.Match syntax). A unit with any matching member is
	// admitted ahead of regular units.
	PrioritizePatterns []string

	// CategoryWaves toggles phase 1 (category leveling).
	CategoryWaves bool

	// SimpleCategories is the ordered list of object categories handled by
	// phase 1. A unit qualifies only if every member carries one of these
	// categories.
	SimpleCategories []string

	// EtlCategories identifies ETL objects: a unit whose members all carry
	// one of these categories sorts into the last admission tier.
	EtlCategories []string
}
