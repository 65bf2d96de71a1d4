// Package config loads the optimizer configuration from a YAML or JSON
// file with optional environment overrides.
package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/rkarim/schedule-optimizer/internal/optimizer"
)

// Config drives one optimization batch.
type Config struct {
	// Input is the scraped schedule CSV.
	Input string `json:"input"`
	// Output is the JSON file receiving the ranked schedules.
	Output string `json:"output"`
	// Courses lists the required course codes, one section each.
	Courses []string `json:"courses"`
	// Campuses maps campus names to desirability weights. Campuses not
	// listed weigh 0.
	Campuses map[string]int   `json:"campuses"`
	Rubric   optimizer.Rubric `json:"rubric"`
	// TopK bounds the number of ranked schedules kept.
	TopK int `json:"top_k"`
	// Display is how many of the top schedules are printed to the terminal.
	Display int `json:"display"`
	// Workers is the number of scoring goroutines; 0 uses all CPUs.
	Workers int `json:"workers"`
	// MaxCombinations aborts a run whose cross-product grows past it.
	MaxCombinations uint64 `json:"max_combinations"`
}

// Load reads the configuration file at path, chooses the parser from the
// extension, then applies SO_-prefixed environment overrides
// (SO_TOP_K=10 sets top_k, double underscores nest keys).
func Load(path string) (*Config, error) {
	k := koanf.New(".")
	var parser koanf.Parser
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		parser = yaml.Parser()
	case ".json":
		parser = json.Parser()
	default:
		return nil, fmt.Errorf("unsupported config format: %s", path)
	}
	if err := k.Load(file.Provider(path), parser); err != nil {
		return nil, err
	}
	if err := k.Load(env.Provider("SO_", "__", func(s string) string {
		s = strings.TrimPrefix(strings.ToLower(s), "so_")
		return strings.ReplaceAll(s, "__", ".")
	}), nil); err != nil {
		return nil, err
	}
	var cfg Config
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "json"}); err != nil {
		return nil, err
	}
	cfg.SetDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// SetDefaults fills the unset fields. The campus table defaults to commute
// distance from the Haymarket area the way the original planning run scored
// it.
func (c *Config) SetDefaults() {
	if c.Output == "" {
		c.Output = "optimized_schedules.json"
	}
	if c.Campuses == nil {
		c.Campuses = map[string]int{
			"Manassas":      100,
			"Woodbridge":    50,
			"Annandale":     30,
			"Alexandria":    10,
			"Loudoun":       5,
			"Reston Center": 5,
			"NOVA Online":   0,
		}
	}
	if c.Rubric == (optimizer.Rubric{}) {
		c.Rubric = optimizer.Rubric{
			EligibilityBonus: 200,
			ConflictPenalty:  500,
			AsyncBonus:       5,
		}
	}
	if c.TopK == 0 {
		c.TopK = 20
	}
	if c.Display == 0 {
		c.Display = 5
	}
	if c.MaxCombinations == 0 {
		c.MaxCombinations = 5_000_000
	}
}

// Validate checks mandatory fields.
func (c Config) Validate() error {
	if c.Input == "" {
		return fmt.Errorf("input file is required")
	}
	if len(c.Courses) == 0 {
		return fmt.Errorf("at least one required course is needed")
	}
	if c.TopK < 1 {
		return fmt.Errorf("top_k must be positive")
	}
	if c.Display < 0 {
		return fmt.Errorf("display must not be negative")
	}
	return nil
}
