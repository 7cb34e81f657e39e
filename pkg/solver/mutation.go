package solver

import (
	"github.com/dshills/fnsolver/pkg/layout"
	"github.com/dshills/fnsolver/pkg/rng"
)

// mutate produces one offspring of parent via mutation-only
// reproduction. The flat index space is the parent's site placements
// (0..n-1) followed by its unused probes (n..m-1). If no swap occurs
// the parent value is returned unchanged so its known score is reused
// instead of re-resolving and re-scoring for nothing.
func (s *Solver) mutate(parent *layout.Solution, r *rng.RNG) *layout.Solution {
	n := s.state.n
	m := n + len(parent.Unused)

	flat := make([]int, m)
	copy(flat, parent.Layout.ProbeIdxs)
	copy(flat[n:], parent.Unused)

	pinned := func(idx int) bool {
		return idx < n && s.state.pinned[idx]
	}

	mutated := false
	for i := 0; i < m; i++ {
		if pinned(i) {
			continue
		}
		if r.Float64() >= s.opts.MutationRate {
			continue
		}
		j := r.Intn(m)
		if pinned(j) {
			continue
		}
		if flat[i] == flat[j] {
			continue
		}
		flat[i], flat[j] = flat[j], flat[i]
		mutated = true
	}

	if !mutated {
		return parent
	}

	l := layout.FromPlacements(s.cat, flat[:n])
	unused := append([]int(nil), flat[n:]...)
	return layout.Evaluate(s.cat, s.scoreFn, s.opts.Tiebreaker, l, unused)
}
