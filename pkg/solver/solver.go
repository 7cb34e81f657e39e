// Package solver implements the age-based (µ,λ) evolutionary search:
// a population of Solutions evolves by mutation-only reproduction,
// partitioned across worker goroutines each iteration, until a
// termination rule fires.
package solver

import (
	"sync"

	"github.com/dshills/fnsolver/pkg/catalog"
	"github.com/dshills/fnsolver/pkg/layout"
	"github.com/dshills/fnsolver/pkg/rng"
	"github.com/dshills/fnsolver/pkg/score"
)

// IterationStatus is reported to the caller's progress callback once
// per completed iteration.
type IterationStatus struct {
	Iteration       int
	BestScore       float64
	NumKilled       int
	LastImprovement int
	BestLayout      *layout.Layout
}

// Solver holds validated, preprocessed Options and drives Run.
type Solver struct {
	opts    Options
	cat     *catalog.Catalog
	state   *correctedState
	scoreFn score.Func
}

// New validates opts, performs the initial inventory correction, and
// returns a ready-to-run Solver.
func New(opts Options) (*Solver, error) {
	state, err := opts.validateAndCorrect()
	if err != nil {
		return nil, err
	}
	return &Solver{
		opts:    opts,
		cat:     opts.Catalog,
		state:   state,
		scoreFn: score.Constrained{Base: opts.Score, Limits: opts.Limits},
	}, nil
}

// Run executes the evolutionary loop until stop returns true or the
// iteration/bonus-iteration termination rule fires, emitting exactly
// one progress event per completed iteration. It runs at least one
// iteration before ever checking for termination.
func (s *Solver) Run(progress func(IterationStatus), stop func() bool) *layout.Solution {
	initRNG := rng.NewEntropySeeded("solver-init")
	population := make([]*layout.Solution, s.opts.PopulationSize)
	for i := range population {
		population[i] = s.randomSolution(initRNG)
	}

	best := population[0]
	for _, sol := range population[1:] {
		if sol.Greater(best) {
			best = sol
		}
	}

	iteration := 0
	lastImprovement := 0
	for {
		iteration++
		newPopulation, killed := s.runIteration(population, best)
		population = newPopulation

		for _, sol := range population {
			if sol.Greater(best) {
				best = sol
				lastImprovement = iteration
			}
		}

		if progress != nil {
			progress(IterationStatus{
				Iteration:       iteration,
				BestScore:       best.Score,
				NumKilled:       killed,
				LastImprovement: lastImprovement,
				BestLayout:      best.Layout,
			})
		}

		if stop != nil && stop() {
			break
		}
		if iteration >= s.opts.Iterations && (iteration-lastImprovement) >= s.opts.BonusIterations {
			break
		}
	}

	return best
}

// runIteration partitions population into T contiguous slices, each
// evolved on its own goroutine with its own PRNG, and returns the
// assembled new population plus the total number of solutions killed
// (aged to MaxAge or beyond and replaced).
func (s *Solver) runIteration(population []*layout.Solution, globalBest *layout.Solution) ([]*layout.Solution, int) {
	threads := s.opts.NumThreads
	if threads < 1 {
		threads = 1
	}
	if threads > len(population) {
		threads = len(population)
	}

	newPopulation := make([]*layout.Solution, len(population))
	killed := make([]int, threads)

	bounds := partitionBounds(len(population), threads)

	var wg sync.WaitGroup
	for w := 0; w < threads; w++ {
		lo, hi := bounds[w][0], bounds[w][1]
		if lo >= hi {
			continue
		}
		wg.Add(1)
		go func(w, lo, hi int) {
			defer wg.Done()
			workerRNG := rng.NewEntropySeeded("solver-worker")
			localKills := 0
			for i := lo; i < hi; i++ {
				evolved, wasKilled := s.evolveOne(population[i], globalBest, workerRNG)
				newPopulation[i] = evolved
				if wasKilled {
					localKills++
				}
			}
			killed[w] = localKills
		}(w, lo, hi)
	}
	wg.Wait()

	total := 0
	for _, k := range killed {
		total += k
	}
	return newPopulation, total
}

func partitionBounds(n, threads int) [][2]int {
	bounds := make([][2]int, threads)
	base := n / threads
	rem := n % threads
	pos := 0
	for w := 0; w < threads; w++ {
		size := base
		if w < rem {
			size++
		}
		bounds[w] = [2]int{pos, pos + size}
		pos += size
	}
	return bounds
}

// evolveOne applies one generation step to a single parent: produce
// NumOffspring mutated children, keep the best one if it beats the
// parent, bump age, and kill-and-replace once age reaches MaxAge.
func (s *Solver) evolveOne(parent *layout.Solution, globalBest *layout.Solution, r *rng.RNG) (_ *layout.Solution, killed bool) {
	var bestOffspring *layout.Solution
	for i := 0; i < s.opts.NumOffspring; i++ {
		child := s.mutate(parent, r)
		if bestOffspring == nil || child.Greater(bestOffspring) {
			bestOffspring = child
		}
	}

	carried := parent
	improved := false
	if bestOffspring != nil && bestOffspring.Greater(parent) {
		carried = bestOffspring
		carried.Age = 0
		improved = true
	}

	switch {
	case carried.Score == 0:
		carried.Age += 5
	case !improved && !carried.Greater(globalBest):
		carried.Age++
	}

	if carried.Age >= s.opts.MaxAge {
		return s.randomSolution(r), true
	}
	return carried, false
}
