package resolver_test

import (
	"testing"

	"github.com/dshills/fnsolver/pkg/catalog"
	"github.com/dshills/fnsolver/pkg/resolver"
)

func lineFixture(t *testing.T) (*catalog.Catalog, map[string]int) {
	t.Helper()
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

func TestChainBonusByLength(t *testing.T) {
	cat, code := lineFixture(t)
	layout := []int{code["M1"], code["M1"], code["M1"]}
	resolved := resolver.Resolve(cat, layout)
	for _, rp := range resolved {
		if rp.ChainLen != 3 {
			t.Errorf("site %d ChainLen = %d, want 3", rp.SiteIdx, rp.ChainLen)
		}
		if rp.ChainBonus != 30 {
			t.Errorf("site %d ChainBonus = %d, want 30", rp.SiteIdx, rp.ChainBonus)
		}
	}
}

func TestNoneAndBasicChainsNeverBonus(t *testing.T) {
	cat, code := lineFixture(t)
	layout := []int{code["-"], code["-"], code["-"]}
	resolved := resolver.Resolve(cat, layout)
	for _, rp := range resolved {
		if rp.ChainBonus != 0 {
			t.Errorf("site %d ChainBonus = %d, want 0 for basic chain", rp.SiteIdx, rp.ChainBonus)
		}
	}
}

func TestDuplicatorEffectiveSet(t *testing.T) {
	cat, code := lineFixture(t)
	layout := []int{code["M1"], code["D"], code["M1"]}
	resolved := resolver.Resolve(cat, layout)

	b := resolved[1]
	if len(b.EffectiveProbeIdxs) != 3 {
		t.Fatalf("duplicator effective set len = %d, want 3", len(b.EffectiveProbeIdxs))
	}
	if b.EffectiveProbeIdxs[0] != code["D"] {
		t.Errorf("effective[0] = %d, want duplicator idx %d", b.EffectiveProbeIdxs[0], code["D"])
	}
}

func TestBoosterOutgoingFactor(t *testing.T) {
	cat, code := lineFixture(t)
	layout := []int{code["M1"], code["B1"], code["M1"]}
	resolved := resolver.Resolve(cat, layout)

	b := resolved[1]
	if len(b.OutgoingFactors) != 1 || b.OutgoingFactors[0] != 150 {
		t.Errorf("booster outgoing = %v, want [150]", b.OutgoingFactors)
	}
	for _, idx := range []int{0, 2} {
		rp := resolved[idx]
		if len(rp.Incoming) != 1 {
			t.Fatalf("site %d incoming = %v, want one entry", idx, rp.Incoming)
		}
		if rp.Incoming[0].Factors[0] != 150 {
			t.Errorf("site %d incoming factor = %d, want 150", idx, rp.Incoming[0].Factors[0])
		}
	}
}

func TestResolveIsPure(t *testing.T) {
	cat, code := lineFixture(t)
	layout := []int{code["M1"], code["B1"], code["M1"]}

	a := resolver.Resolve(cat, layout)
	b := resolver.Resolve(cat, layout)

	for i := range a {
		if a[i].ChainBonus != b[i].ChainBonus || a[i].ChainLen != b[i].ChainLen {
			t.Errorf("site %d: resolve not idempotent", i)
		}
	}
}
