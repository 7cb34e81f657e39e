// Package config loads a YAML run configuration and translates it into
// validated solver.Options, performing the boundary lookups (probe
// codes, resource names) the core itself never needs to know about.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/dshills/fnsolver/pkg/catalog"
	"github.com/dshills/fnsolver/pkg/score"
	"github.com/dshills/fnsolver/pkg/solver"
)

// ScoreConfig names one of the six score variants and its parameters.
// Unused fields are ignored for variants that don't take them.
type ScoreConfig struct {
	Type          string  `yaml:"type"`
	StorageFactor float64 `yaml:"storage_factor,omitempty"`
	Mining        float64 `yaml:"mining,omitempty"`
	Revenue       float64 `yaml:"revenue,omitempty"`
	Storage       float64 `yaml:"storage,omitempty"`
}

// LimitsConfig is the constrained-score minimums, keyed by human
// resource name for min_resources.
type LimitsConfig struct {
	MinProduction uint64            `yaml:"min_production"`
	MinRevenue    uint64            `yaml:"min_revenue"`
	MinStorage    uint64            `yaml:"min_storage"`
	MinResources  map[string]uint64 `yaml:"min_resources"`
}

// RunConfig is the full YAML shape the CLI reads: everything
// solver.Options needs, expressed with probe codes and resource names
// instead of catalog indices.
type RunConfig struct {
	PopulationSize  int     `yaml:"population_size"`
	NumOffspring    int     `yaml:"num_offspring"`
	MutationRate    float64 `yaml:"mutation_rate"`
	MaxAge          int     `yaml:"max_age"`
	Iterations      int     `yaml:"iterations"`
	BonusIterations int     `yaml:"bonus_iterations"`
	NumThreads      int     `yaml:"num_threads"`

	Inventory   map[string]uint32 `yaml:"inventory"`
	LockedSites []int             `yaml:"locked_sites"`
	Seed        map[int]string    `yaml:"seed"`
	ForceSeed   bool              `yaml:"force_seed"`

	Score      ScoreConfig  `yaml:"score"`
	Tiebreaker *ScoreConfig `yaml:"tiebreaker"`
	Limits     LimitsConfig `yaml:"limits"`
}

// ConfigError reports a problem in the run configuration itself (as
// opposed to an error from solver.Options validation).
type ConfigError struct {
	Message string
}

func (e *ConfigError) Error() string { return e.Message }

// Load reads and parses a YAML run configuration from path.
func Load(path string) (*RunConfig, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}
	var cfg RunConfig
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}
	return &cfg, nil
}

// ToOptions resolves every probe code and resource name against cat
// and builds solver.Options, ready for solver.New.
func (c *RunConfig) ToOptions(cat *catalog.Catalog) (solver.Options, error) {
	inventory := make(map[int]uint32, len(c.Inventory))
	for code, count := range c.Inventory {
		idx, ok := cat.ProbeIndexOf(code)
		if !ok {
			return solver.Options{}, &ConfigError{Message: fmt.Sprintf("config: unknown probe code %q in inventory", code)}
		}
		inventory[idx] = count
	}

	seed := make(map[int]int, len(c.Seed))
	for siteID, code := range c.Seed {
		idx, ok := cat.ProbeIndexOf(code)
		if !ok {
			return solver.Options{}, &ConfigError{Message: fmt.Sprintf("config: unknown probe code %q in seed for site %d", code, siteID)}
		}
		seed[siteID] = idx
	}

	scoreFn, err := buildScore(c.Score)
	if err != nil {
		return solver.Options{}, fmt.Errorf("config: score: %w", err)
	}

	var tiebreakFn score.Func
	if c.Tiebreaker != nil {
		tiebreakFn, err = buildScore(*c.Tiebreaker)
		if err != nil {
			return solver.Options{}, fmt.Errorf("config: tiebreaker: %w", err)
		}
	}

	var limits score.Limits
	limits.MinProduction = c.Limits.MinProduction
	limits.MinRevenue = c.Limits.MinRevenue
	limits.MinStorage = c.Limits.MinStorage
	for name, min := range c.Limits.MinResources {
		found := false
		for i, rname := range cat.PreciousResourceNames {
			if rname == name {
				limits.MinResources[i] = min
				found = true
				break
			}
		}
		if !found {
			return solver.Options{}, &ConfigError{Message: fmt.Sprintf("config: unknown precious resource %q in limits", name)}
		}
	}

	return solver.Options{
		Catalog:         cat,
		PopulationSize:  c.PopulationSize,
		NumOffspring:    c.NumOffspring,
		MutationRate:    c.MutationRate,
		MaxAge:          c.MaxAge,
		Iterations:      c.Iterations,
		BonusIterations: c.BonusIterations,
		NumThreads:      c.NumThreads,
		Inventory:       inventory,
		LockedSiteIDs:   c.LockedSites,
		Seed:            seed,
		ForceSeed:       c.ForceSeed,
		Score:           scoreFn,
		Tiebreaker:      tiebreakFn,
		Limits:          limits,
	}, nil
}

func buildScore(cfg ScoreConfig) (score.Func, error) {
	switch cfg.Type {
	case "max_mining":
		return score.NewMaxMining(), nil
	case "max_effective_mining":
		return score.NewMaxEffectiveMining(cfg.StorageFactor)
	case "max_revenue":
		return score.NewMaxRevenue(), nil
	case "max_storage":
		return score.NewMaxStorage(), nil
	case "ratio":
		return score.NewRatio(cfg.Mining, cfg.Revenue, cfg.Storage)
	case "weights":
		return score.NewWeights(cfg.Mining, cfg.Revenue, cfg.Storage)
	default:
		return nil, &ConfigError{Message: fmt.Sprintf("config: unknown score type %q", cfg.Type)}
	}
}
