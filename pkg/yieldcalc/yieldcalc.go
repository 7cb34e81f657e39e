// Package yieldcalc turns a resolver's per-site derived state into the
// scalar and vector yields a layout produces. All arithmetic is integer,
// truncating at every "/ 100" step; this truncation is observable and is
// reproduced exactly rather than rounded.
package yieldcalc

import (
	"github.com/dshills/fnsolver/pkg/catalog"
	"github.com/dshills/fnsolver/pkg/resolver"
)

// ResourceYield is the total yield bundle a layout produces: three
// scalar totals plus the elementwise sum of every site's precious
// resource contribution.
type ResourceYield struct {
	Mining    uint64
	Revenue   uint64
	Storage   uint64
	Resources [catalog.NumPreciousResources]uint64
}

// storageBase is the flat floor every layout's storage total starts
// from, representing capacity that exists with no storage probes
// placed at all.
const storageBase = 6000

// Evaluate sums the per-site yield of every resolved placement into a
// single ResourceYield. It is a pure function of cat, layout, and
// resolved.
func Evaluate(cat *catalog.Catalog, layout []int, resolved []resolver.ResolvedPlacement) ResourceYield {
	total := ResourceYield{Storage: storageBase}

	for _, rp := range resolved {
		site := cat.Sites[rp.SiteIdx]
		siteMining, siteRevenue, siteStorage := siteYield(cat, site, rp)

		total.Mining += siteMining
		// The catalog's revenue values are stored at twice the
		// displayed rate; the original implementation halves each
		// site's revenue individually rather than the aggregate.
		total.Revenue += siteRevenue / 2
		total.Storage += siteStorage

		ownProbe := cat.Probes[rp.ProbeIdx]
		if ownProbe.Kind == catalog.ProbeBasic || ownProbe.Kind == catalog.ProbeMining {
			for i := 0; i < catalog.NumPreciousResources; i++ {
				total.Resources[i] += uint64(site.Resources[i])
			}
		}
	}

	return total
}

// siteYield evaluates every effective probe at a site. Each probe
// contributes to Mining and to Revenue independently: a mining probe
// gets the chain/boost-adjusted Mining formula and a flat Revenue
// contribution, a research probe gets a flat Mining contribution and
// the adjusted Revenue formula, and every other non-duplicator kind
// gets the flat formula on both. Only a storage probe contributes to
// Storage at all. A duplicator contributes nothing to any channel
// directly; its neighbors' probes are evaluated here a second time via
// EffectiveProbeIdxs instead.
func siteYield(cat *catalog.Catalog, site catalog.Site, rp resolver.ResolvedPlacement) (mining, revenue, storage uint64) {
	for _, probeIdx := range rp.EffectiveProbeIdxs {
		probe := cat.Probes[probeIdx]
		if probe.Kind == catalog.ProbeDuplicator {
			continue
		}

		if probe.Kind == catalog.ProbeMining {
			v := uint64(site.Production) * uint64(probe.ProductionFactor) / 100
			mining += applyChainAndBoosts(v, rp)
		} else {
			mining += uint64(site.Production) * uint64(probe.ProductionFactor) / 100
		}

		if probe.Kind == catalog.ProbeResearch {
			base := uint64(site.Revenue) + 2000*uint64(site.Territories)
			v := base * uint64(probe.RevenueFactor) / 100
			revenue += applyChainAndBoosts(v, rp)
		} else {
			revenue += uint64(site.Revenue) * uint64(probe.RevenueFactor) / 100
		}

		if probe.Kind == catalog.ProbeStorage {
			storage += applyChainAndBoosts(uint64(probe.Storage), rp)
		}
	}
	return mining, revenue, storage
}

// applyChainAndBoosts applies a site's own chain bonus, then each
// incoming boost's factors followed by that neighbor's chain bonus,
// truncating at every step.
func applyChainAndBoosts(v uint64, rp resolver.ResolvedPlacement) uint64 {
	v = v * (100 + uint64(rp.ChainBonus)) / 100
	for _, inc := range rp.Incoming {
		for _, f := range inc.Factors {
			v = v * uint64(f) / 100
		}
		v = v * (100 + uint64(inc.ChainBonus)) / 100
	}
	return v
}
