package solver

import (
	"github.com/dshills/fnsolver/pkg/layout"
	"github.com/dshills/fnsolver/pkg/rng"
)

// randomSolution builds a fresh Solution: shuffle a copy of the
// corrected inventory, walk sites in id (catalog) order assigning
// locked sites the none probe, seeded sites their seed probe, and free
// sites the next shuffled inventory element; leftover inventory becomes
// unused_probes.
func (s *Solver) randomSolution(r *rng.RNG) *layout.Solution {
	st := s.state
	pool := make([]int, len(st.inventory))
	copy(pool, st.inventory)
	r.Shuffle(len(pool), func(i, j int) { pool[i], pool[j] = pool[j], pool[i] })

	probeIdxs := make([]int, st.n)
	next := 0
	for i := 0; i < st.n; i++ {
		switch {
		case st.locked[i], st.seeded[i]:
			probeIdxs[i] = st.siteProbe[i]
		default:
			probeIdxs[i] = pool[next]
			next++
		}
	}
	unused := pool[next:]

	l := layout.FromPlacements(s.cat, probeIdxs)
	sol := layout.Evaluate(s.cat, s.scoreFn, s.opts.Tiebreaker, l, unused)
	sol.Age = 0
	return sol
}
