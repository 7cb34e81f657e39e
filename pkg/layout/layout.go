// Package layout is the shared data model: a Layout is a full
// site-to-probe assignment, a Solution adds the bookkeeping (unused
// probes, score, tiebreaker, age) the evolutionary solver maintains per
// population member. Layout glues the resolver, yield evaluator, and
// score layer together behind a small read-only API.
package layout

import (
	"github.com/dshills/fnsolver/pkg/catalog"
	"github.com/dshills/fnsolver/pkg/resolver"
	"github.com/dshills/fnsolver/pkg/yieldcalc"
)

// Layout is a full assignment of one probe to every site, stored in the
// catalog's site order (ascending site id, per the invariant the
// resolver and the solver's index-based mutation both rely on).
type Layout struct {
	cat       *catalog.Catalog
	ProbeIdxs []int // len == len(cat.Sites); ProbeIdxs[i] is the probe at cat.Sites[i]
}

// FromPlacements builds a Layout from a per-site probe index slice. The
// slice is copied; callers may reuse or mutate their own copy freely.
func FromPlacements(cat *catalog.Catalog, probeIdxs []int) *Layout {
	cp := make([]int, len(probeIdxs))
	copy(cp, probeIdxs)
	return &Layout{cat: cat, ProbeIdxs: cp}
}

// Resolve runs the placement resolver over this layout.
func (l *Layout) Resolve() []resolver.ResolvedPlacement {
	return resolver.Resolve(l.cat, l.ProbeIdxs)
}

// ResourceYield resolves and evaluates this layout's total yield.
func (l *Layout) ResourceYield() yieldcalc.ResourceYield {
	return yieldcalc.Evaluate(l.cat, l.ProbeIdxs, l.Resolve())
}

// TotalMining is a convenience accessor equivalent to
// ResourceYield().Mining, for UI callers that want a single scalar.
func (l *Layout) TotalMining() uint64 { return l.ResourceYield().Mining }

// TotalRevenue is a convenience accessor equivalent to
// ResourceYield().Revenue.
func (l *Layout) TotalRevenue() uint64 { return l.ResourceYield().Revenue }

// TotalStorage is a convenience accessor equivalent to
// ResourceYield().Storage.
func (l *Layout) TotalStorage() uint64 { return l.ResourceYield().Storage }

// Clone returns a deep copy safe to mutate independently of l.
func (l *Layout) Clone() *Layout {
	return FromPlacements(l.cat, l.ProbeIdxs)
}
