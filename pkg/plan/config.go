package plan

import (
	"os"

	"github.com/BurntSushi/toml"

	"github.com/mbeckers/waveplan/pkg/errors"
)

// fileConfig mirrors Options for TOML decoding. CategoryWaves is a pointer
// so an absent key can fall back to the default (enabled) instead of false.
type fileConfig struct {
	MinSize            int      `toml:"min_size"`
	MaxSize            int      `toml:"max_size"`
	PrioritizePatterns []string `toml:"prioritize_patterns"`
	CategoryWaves      *bool    `toml:"category_waves"`
	SimpleCategories   []string `toml:"simple_categories"`
	EtlCategories      []string `toml:"etl_categories"`
}

// LoadConfig reads planner options from a TOML file.
// Absent keys keep their defaults; see [Options.ValidateAndSetDefaults].
func LoadConfig(path string) (Options, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Options{}, errors.Wrap(errors.ErrCodeInvalidConfig, err, "read config %s", path)
	}
	return ParseConfig(data)
}

// ParseConfig decodes planner options from TOML data.
func ParseConfig(data []byte) (Options, error) {
	var fc fileConfig
	if err := toml.Unmarshal(data, &fc); err != nil {
		return Options{}, errors.Wrap(errors.ErrCodeInvalidConfig, err, "parse config")
	}

	opts := Options{
		MinSize:            fc.MinSize,
		MaxSize:            fc.MaxSize,
		PrioritizePatterns: fc.PrioritizePatterns,
		CategoryWaves:      true,
		SimpleCategories:   fc.SimpleCategories,
		EtlCategories:      fc.EtlCategories,
	}
	if fc.CategoryWaves != nil {
		opts.CategoryWaves = *fc.CategoryWaves
	}
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return Options{}, err
	}
	return opts, nil
}
