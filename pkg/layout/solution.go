package layout

import (
	"github.com/dshills/fnsolver/pkg/catalog"
	"github.com/dshills/fnsolver/pkg/score"
)

// Solution is one population member: a Layout, the inventory items that
// didn't fit anywhere, and the score/tiebreaker/age bookkeeping the
// evolutionary solver drives selection with.
type Solution struct {
	Layout *Layout
	// Unused holds probe indices (into the catalog, duplicates
	// allowed) that inventory supplied but no free site received.
	Unused []int

	Score         float64
	Tiebreaker    float64
	HasTiebreaker bool

	Age int
}

// Evaluate builds a Solution from a layout and its unused leftover
// probes, scoring it with scoreFn and, if non-nil, tiebreakFn.
func Evaluate(cat *catalog.Catalog, scoreFn, tiebreakFn score.Func, l *Layout, unused []int) *Solution {
	yield := l.ResourceYield()
	s := &Solution{
		Layout: l,
		Unused: append([]int(nil), unused...),
		Score:  scoreFn.Evaluate(yield),
	}
	if tiebreakFn != nil {
		s.Tiebreaker = tiebreakFn.Evaluate(yield)
		s.HasTiebreaker = true
	}
	return s
}

// Greater reports whether s is strictly better than other: by score
// first, then by tiebreaker if both carry one. Equal scores with no
// tiebreaker (or equal tiebreakers) compare as "neither greater", which
// the solver treats as no improvement. NaN scores never compare
// greater, so they are likewise treated as no improvement.
func (s *Solution) Greater(other *Solution) bool {
	if s.Score != other.Score {
		return s.Score > other.Score
	}
	if s.HasTiebreaker && other.HasTiebreaker && s.Tiebreaker != other.Tiebreaker {
		return s.Tiebreaker > other.Tiebreaker
	}
	return false
}

// Clone deep-copies s, including its Layout, so the copy can be mutated
// independently.
func (s *Solution) Clone() *Solution {
	return &Solution{
		Layout:        s.Layout.Clone(),
		Unused:        append([]int(nil), s.Unused...),
		Score:         s.Score,
		Tiebreaker:    s.Tiebreaker,
		HasTiebreaker: s.HasTiebreaker,
		Age:           s.Age,
	}
}
