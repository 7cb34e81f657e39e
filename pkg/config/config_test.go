package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/dshills/fnsolver/pkg/catalog"
	"github.com/dshills/fnsolver/pkg/config"
	"github.com/dshills/fnsolver/pkg/score"
)

func testCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	sites := []catalog.Site{
		{ID: 1, Production: 500, Revenue: 1000, Neighbors: []int{2}},
		{ID: 2, Production: 500, Revenue: 1000, Neighbors: []int{1}},
	}
	probes := []catalog.Probe{
		{ID: 0, Code: "X", Kind: catalog.ProbeNone},
		{ID: 1, Code: "-", Kind: catalog.ProbeBasic, ProductionFactor: 50, RevenueFactor: 50},
		{ID: 2, Code: "M1", Kind: catalog.ProbeMining, ProductionFactor: 100, RevenueFactor: 30},
	}
	cat, err := catalog.New(sites, probes, []string{"thorium"})
	if err != nil {
		t.Fatalf("catalog.New: %v", err)
	}
	return cat
}

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "run.yaml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	return path
}

func TestLoadAndToOptionsRoundTrip(t *testing.T) {
	path := writeConfig(t, `
population_size: 4
num_offspring: 8
mutation_rate: 0.2
max_age: 10
iterations: 50
bonus_iterations: 5
num_threads: 2
inventory:
  M1: 2
score:
  type: max_mining
limits:
  min_revenue: 100
  min_resources:
    thorium: 3
`)
	cfg, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	cat := testCatalog(t)
	opts, err := cfg.ToOptions(cat)
	if err != nil {
		t.Fatalf("ToOptions: %v", err)
	}

	m1Idx, _ := cat.ProbeIndexOf("M1")
	if opts.Inventory[m1Idx] != 2 {
		t.Errorf("inventory[M1] = %d, want 2", opts.Inventory[m1Idx])
	}
	if opts.Score.Kind() != score.MaxMining {
		t.Errorf("score kind = %v, want MaxMining", opts.Score.Kind())
	}
	if opts.Limits.MinRevenue != 100 {
		t.Errorf("limits.MinRevenue = %d, want 100", opts.Limits.MinRevenue)
	}
	if opts.Limits.MinResources[0] != 3 {
		t.Errorf("limits.MinResources[0] = %d, want 3", opts.Limits.MinResources[0])
	}
}

func TestToOptionsUnknownProbeCodeInInventory(t *testing.T) {
	cfg := &config.RunConfig{
		Inventory: map[string]uint32{"NOPE": 1},
		Score:     config.ScoreConfig{Type: "max_mining"},
	}
	if _, err := cfg.ToOptions(testCatalog(t)); err == nil {
		t.Error("expected error for unknown probe code")
	}
}

func TestToOptionsUnknownResourceNameInLimits(t *testing.T) {
	cfg := &config.RunConfig{
		Score: config.ScoreConfig{Type: "max_mining"},
		Limits: config.LimitsConfig{
			MinResources: map[string]uint64{"unobtainium": 1},
		},
	}
	if _, err := cfg.ToOptions(testCatalog(t)); err == nil {
		t.Error("expected error for unknown precious resource name")
	}
}

func TestToOptionsUnknownScoreType(t *testing.T) {
	cfg := &config.RunConfig{Score: config.ScoreConfig{Type: "bogus"}}
	if _, err := cfg.ToOptions(testCatalog(t)); err == nil {
		t.Error("expected error for unknown score type")
	}
}

func TestToOptionsWeightsScore(t *testing.T) {
	cfg := &config.RunConfig{
		Score: config.ScoreConfig{Type: "weights", Mining: 1, Revenue: 2, Storage: 0},
	}
	opts, err := cfg.ToOptions(testCatalog(t))
	if err != nil {
		t.Fatalf("ToOptions: %v", err)
	}
	if opts.Score.Kind() != score.Weights {
		t.Errorf("score kind = %v, want Weights", opts.Score.Kind())
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := config.Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}
