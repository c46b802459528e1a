package plan

import (
	"slices"

	"github.com/charmbracelet/log"

	"github.com/mbeckers/waveplan/pkg/errors"
	"github.com/mbeckers/waveplan/pkg/wave"
)

// =============================================================================
// Default Values - Single Source of Truth for Embedding Tools
// =============================================================================

const (
	// DefaultMinSize is the minimum object count a phase-2 wave aims for.
	DefaultMinSize = 10

	// DefaultMaxSize is the object count a phase-2 wave will not exceed
	// while fitting units (unsplittable cyclic units and the min-size
	// top-up pass may still push past it).
	DefaultMaxSize = 50
)

// DefaultSimpleCategories is the ordered category list used by phase-1
// category leveling when the caller supplies none.
var DefaultSimpleCategories = []string{"TABLE", "VIEW", "FUNCTION"}

// DefaultEtlCategories identifies ETL objects for tier detection when the
// caller supplies none.
var DefaultEtlCategories = []string{"ETL"}

// =============================================================================
// Options - Planner Configuration
// =============================================================================

// Options contains all configuration for the planning pipeline.
// This struct supports TOML (config files) and JSON (cache keys)
// serialization; see [LoadConfig].
type Options struct {
	MinSize            int      `toml:"min_size" json:"min_size"`
	MaxSize            int      `toml:"max_size" json:"max_size"`
	PrioritizePatterns []string `toml:"prioritize_patterns" json:"prioritize_patterns,omitempty"`
	CategoryWaves      bool     `toml:"category_waves" json:"category_waves"`
	SimpleCategories   []string `toml:"simple_categories" json:"simple_categories,omitempty"`
	EtlCategories      []string `toml:"etl_categories" json:"etl_categories,omitempty"`

	// Runtime options (not serialized)
	Logger *log.Logger `toml:"-" json:"-"`

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool `toml:"-" json:"-"`
}

// DefaultOptions returns Options with category leveling enabled and every
// other field left for [Options.ValidateAndSetDefaults] to fill.
func DefaultOptions() Options {
	return Options{CategoryWaves: true}
}

// ValidateAndSetDefaults checks required fields and applies defaults.
// This method is idempotent - calling it multiple times has the same effect
// as calling it once. Returns an INVALID_CONFIG error for non-positive or
// inverted size bounds.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if o.MinSize == 0 {
		o.MinSize = DefaultMinSize
	}
	if o.MaxSize == 0 {
		o.MaxSize = DefaultMaxSize
	}
	if o.MinSize < 0 || o.MaxSize < 0 {
		return errors.New(errors.ErrCodeInvalidConfig,
			"wave sizes must be positive (min_size=%d, max_size=%d)", o.MinSize, o.MaxSize)
	}
	if o.MinSize > o.MaxSize {
		return errors.New(errors.ErrCodeInvalidConfig,
			"min_size %d exceeds max_size %d", o.MinSize, o.MaxSize)
	}
	if o.SimpleCategories == nil {
		o.SimpleCategories = slices.Clone(DefaultSimpleCategories)
	}
	if o.EtlCategories == nil {
		o.EtlCategories = slices.Clone(DefaultEtlCategories)
	}
	o.validated = true
	return nil
}

// waveConfig translates the options into the partitioner configuration.
func (o *Options) waveConfig() wave.Config {
	return wave.Config{
		MinSize:            o.MinSize,
		MaxSize:            o.MaxSize,
		PrioritizePatterns: o.PrioritizePatterns,
		CategoryWaves:      o.CategoryWaves,
		SimpleCategories:   o.SimpleCategories,
		EtlCategories:      o.EtlCategories,
	}
}
