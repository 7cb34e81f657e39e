package solver

import (
	"github.com/dshills/fnsolver/pkg/catalog"
	"github.com/dshills/fnsolver/pkg/score"
)

// Options is the full evolutionary-run configuration: population shape,
// inventory, seed/locked constraints, and the scoring rule.
type Options struct {
	Catalog *catalog.Catalog

	PopulationSize  int     // P >= 1
	NumOffspring    int     // lambda >= 1
	MutationRate    float64 // mu in [0,1]
	MaxAge          int     // A >= 1
	Iterations      int     // N >= 1
	BonusIterations int     // B >= 0
	NumThreads      int     // T >= 1

	// Inventory maps catalog probe index to available count, before
	// seed correction.
	Inventory map[int]uint32
	// LockedSiteIDs are sites that always carry the "none" probe and
	// are never written by the solver.
	LockedSiteIDs []int
	// Seed maps a site id to the catalog probe index it starts with.
	Seed      map[int]int
	ForceSeed bool

	Score      score.Func
	Tiebreaker score.Func // nil if no tiebreaker configured
	Limits     score.Limits
}

// correctedState is the outcome of validating and preprocessing
// Options, ready for population initialization.
type correctedState struct {
	n         int
	locked    []bool
	seeded    []bool
	pinned    []bool
	siteProbe []int // seedProbeIdx per site (locked: none-probe idx; seeded: seed probe idx; else -1)
	inventory []int // flat multiset of probe indices, ready to shuffle
}

func (o *Options) validateAndCorrect() (*correctedState, error) {
	cat := o.Catalog
	n := len(cat.Sites)

	if o.Tiebreaker != nil {
		if !score.IsTiebreakerEligible(o.Tiebreaker.Kind()) {
			return nil, ErrTiebreakerNotEligible
		}
		if o.Tiebreaker.Kind() == o.Score.Kind() {
			return nil, ErrTiebreakerSameAsScore
		}
	}
	if o.ForceSeed && len(o.Seed) == 0 {
		return nil, ErrForceSeedWithoutSeed
	}

	locked := make([]bool, n)
	for _, siteID := range o.LockedSiteIDs {
		idx, ok := cat.SiteIndexOf(siteID)
		if !ok {
			continue
		}
		locked[idx] = true
	}

	seeded := make([]bool, n)
	siteProbe := make([]int, n)
	for i := range siteProbe {
		siteProbe[i] = -1
	}
	for siteID, probeIdx := range o.Seed {
		idx, ok := cat.SiteIndexOf(siteID)
		if !ok {
			continue
		}
		if locked[idx] {
			return nil, &SeedConflictError{SiteID: siteID}
		}
		seeded[idx] = true
		siteProbe[idx] = probeIdx
	}

	noneIdx, _ := cat.ProbeIndexOf("X")
	for i, isLocked := range locked {
		if isLocked {
			siteProbe[i] = noneIdx
		}
	}

	inv := make(map[int]uint32, len(o.Inventory))
	for k, v := range o.Inventory {
		inv[k] = v
	}
	basicIdx, _ := cat.ProbeIndexOf("-")
	seedNeed := make(map[int]uint32)
	for siteID, probeIdx := range o.Seed {
		if _, ok := cat.SiteIndexOf(siteID); !ok {
			continue
		}
		if probeIdx == basicIdx {
			continue
		}
		seedNeed[probeIdx]++
	}
	for probeIdx, need := range seedNeed {
		if inv[probeIdx] < need {
			return nil, &InventoryInsufficientError{ProbeCode: cat.Probes[probeIdx].Code, Required: need - inv[probeIdx]}
		}
		inv[probeIdx] -= need
	}

	lockedCount := 0
	for _, v := range locked {
		if v {
			lockedCount++
		}
	}
	freeSites := n - lockedCount - len(o.Seed)

	var nonBasicSum uint32
	for probeIdx, count := range inv {
		if probeIdx != basicIdx {
			nonBasicSum += count
		}
	}
	if needed := freeSites - int(nonBasicSum); needed > int(inv[basicIdx]) {
		inv[basicIdx] = uint32(needed)
	}

	var flat []int
	for probeIdx, count := range inv {
		for c := uint32(0); c < count; c++ {
			flat = append(flat, probeIdx)
		}
	}

	pinned := make([]bool, n)
	for i := range pinned {
		pinned[i] = locked[i] || (seeded[i] && o.ForceSeed)
	}

	return &correctedState{
		n:         n,
		locked:    locked,
		seeded:    seeded,
		pinned:    pinned,
		siteProbe: siteProbe,
		inventory: flat,
	}, nil
}
