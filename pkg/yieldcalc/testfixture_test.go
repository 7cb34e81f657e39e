package yieldcalc_test

import "github.com/dshills/fnsolver/pkg/catalog"

// lineFixture builds the spec's 3-site line graph A-B-C: base
// production 500, base revenue 1000, zero territories, no precious
// resources, with the locked probe X plus the five probes the oracle
// scenarios name.
func lineFixture(t interface{ Fatalf(string, ...any) }) (*catalog.Catalog, map[string]int) {
	sites := []catalog.Site{
		{ID: 1, Production: 500, Revenue: 1000, Neighbors: []int{2}},
		{ID: 2, Production: 500, Revenue: 1000, Neighbors: []int{1, 3}},
		{ID: 3, Production: 500, Revenue: 1000, Neighbors: []int{2}},
	}
	probes := []catalog.Probe{
		{ID: 0, Code: "X", Kind: catalog.ProbeNone},
		{ID: 1, Code: "-", Kind: catalog.ProbeBasic, ProductionFactor: 50, RevenueFactor: 50},
		{ID: 2, Code: "M1", Kind: catalog.ProbeMining, ProductionFactor: 100, RevenueFactor: 30},
		{ID: 3, Code: "B1", Kind: catalog.ProbeBooster, ProductionFactor: 10, RevenueFactor: 10, BoostBonus: 50},
		{ID: 4, Code: "D", Kind: catalog.ProbeDuplicator},
		{ID: 5, Code: "S", Kind: catalog.ProbeStorage, ProductionFactor: 10, RevenueFactor: 10, Storage: 3000},
	}
	cat, err := catalog.New(sites, probes, nil)
	if err != nil {
		t.Fatalf("catalog.New: %v", err)
	}
	codes := make(map[string]int, len(probes))
	for i, p := range probes {
		codes[p.Code] = i
	}
	return cat, codes
}
