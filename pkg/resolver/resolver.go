// Package resolver computes per-site derived placement state: effective
// probe sets (after duplication), chain membership and chain bonuses, and
// boost factors flowing between neighboring sites. Resolve is a pure
// function of a layout; it holds no state of its own.
package resolver

import "github.com/dshills/fnsolver/pkg/catalog"

// chainStartSiteID is the fixed, well-connected interior node the chain
// traversal begins from. The choice does not affect any observable
// yield (every valid partition preserves each site's chain membership
// and length), but determinism requires picking one.
const chainStartSiteID = 111

// IncomingBoost pairs a neighbor's outgoing boost factors with that
// neighbor's own chain bonus. The chain bonus multiplies the
// neighbor's contribution once, not once per factor.
type IncomingBoost struct {
	Factors    []uint32
	ChainBonus uint32
}

// ResolvedPlacement is the per-site derived state the yield evaluator
// consumes. It never outlives the layout it was resolved from.
type ResolvedPlacement struct {
	SiteIdx int
	// ProbeIdx is the probe actually placed at this site (drives
	// outgoing factors, chain membership, and the precious-resource
	// rule, which all care about the site's own probe).
	ProbeIdx int
	// EffectiveProbeIdxs are the probes evaluated for yield at this
	// site: just ProbeIdx, unless the site's own probe is a
	// duplicator, in which case it is the duplicator plus every
	// direct neighbor's probe.
	EffectiveProbeIdxs []int
	// OutgoingFactors are the boost factors this site emits to its
	// neighbors.
	OutgoingFactors []uint32
	// ChainBonus is this site's own chain's bonus percentage (0, 30,
	// 50, or 80).
	ChainBonus uint32
	ChainLen   int
	// Incoming holds one entry per neighbor that emits a nonempty
	// outgoing factor list.
	Incoming []IncomingBoost
}

// Resolve computes the resolved placement for every site given a full
// layout: layout[i] is the probe index (into cat.Probes) placed at
// cat.Sites[i]. Resolve never mutates cat or layout.
func Resolve(cat *catalog.Catalog, layout []int) []ResolvedPlacement {
	n := len(cat.Sites)
	resolved := make([]ResolvedPlacement, n)

	outgoing := make([][]uint32, n)
	for i, site := range cat.Sites {
		probe := cat.Probes[layout[i]]
		switch probe.Kind {
		case catalog.ProbeBooster:
			outgoing[i] = []uint32{100 + probe.BoostBonus}
		case catalog.ProbeDuplicator:
			var factors []uint32
			for _, nidx := range site.NeighborIdxs {
				nprobe := cat.Probes[layout[nidx]]
				if nprobe.Kind == catalog.ProbeBooster {
					factors = append(factors, 100+nprobe.BoostBonus)
				}
			}
			outgoing[i] = factors
		}
	}

	chainID, chainLen := resolveChains(cat, layout)

	for i, site := range cat.Sites {
		probe := cat.Probes[layout[i]]

		effective := []int{layout[i]}
		if probe.Kind == catalog.ProbeDuplicator {
			for _, nidx := range site.NeighborIdxs {
				effective = append(effective, layout[nidx])
			}
		}

		var incoming []IncomingBoost
		for _, nidx := range site.NeighborIdxs {
			if len(outgoing[nidx]) == 0 {
				continue
			}
			incoming = append(incoming, IncomingBoost{
				Factors:    outgoing[nidx],
				ChainBonus: chainBonusFor(cat, layout, chainID, chainLen, nidx),
			})
		}

		resolved[i] = ResolvedPlacement{
			SiteIdx:            i,
			ProbeIdx:           layout[i],
			EffectiveProbeIdxs: effective,
			OutgoingFactors:    outgoing[i],
			ChainBonus:         chainBonusFor(cat, layout, chainID, chainLen, i),
			ChainLen:           chainLen[chainID[i]],
			Incoming:           incoming,
		}
	}

	return resolved
}

// resolveChains partitions the sites into maximal connected subgraphs
// sharing the same placed probe identity, via an explicit-stack
// traversal starting at chainStartSiteID. It returns, per site index,
// the chain id it belongs to and, per chain id, the chain's length.
func resolveChains(cat *catalog.Catalog, layout []int) (chainID []int, chainLen []int) {
	n := len(cat.Sites)
	chainID = make([]int, n)
	for i := range chainID {
		chainID[i] = -1
	}
	visited := make([]bool, n)
	nextChain := 0

	type frame struct {
		site, prevSite, prevChain int
	}

	visitOrder := make([]int, 0, n)
	startIdx, ok := cat.SiteIndexOf(chainStartSiteID)
	if !ok {
		startIdx = 0
	}
	visitOrder = append(visitOrder, startIdx)
	for i := range cat.Sites {
		if i != startIdx {
			visitOrder = append(visitOrder, i)
		}
	}

	for _, start := range visitOrder {
		if visited[start] {
			continue
		}
		stack := []frame{{site: start, prevSite: -1, prevChain: -1}}
		for len(stack) > 0 {
			f := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			if visited[f.site] {
				continue
			}
			visited[f.site] = true

			if f.prevSite != -1 && layout[f.site] == layout[f.prevSite] {
				chainID[f.site] = f.prevChain
				chainLen[f.prevChain]++
			} else {
				chainID[f.site] = nextChain
				chainLen = append(chainLen, 1)
				nextChain++
			}

			for _, nidx := range cat.Sites[f.site].NeighborIdxs {
				if !visited[nidx] {
					stack = append(stack, frame{site: nidx, prevSite: f.site, prevChain: chainID[f.site]})
				}
			}
		}
	}

	return chainID, chainLen
}

func chainBonusFor(cat *catalog.Catalog, layout []int, chainID []int, chainLen []int, siteIdx int) uint32 {
	probe := cat.Probes[layout[siteIdx]]
	if probe.Kind == catalog.ProbeNone || probe.Kind == catalog.ProbeBasic {
		return 0
	}
	length := chainLen[chainID[siteIdx]]
	switch {
	case length >= 8:
		return 80
	case length >= 5:
		return 50
	case length >= 3:
		return 30
	default:
		return 0
	}
}
