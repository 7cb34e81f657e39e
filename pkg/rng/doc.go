// Package rng provides per-worker random number generation for the
// FrontierNav evolutionary solver.
//
// # Overview
//
// The solver partitions its population across T worker goroutines each
// iteration (see pkg/solver). Each worker needs its own independent
// random sequence for shuffling inventory and driving mutation, with no
// coordination or shared state between workers. RNG instances are
// created from system entropy rather than a shared seed, since the
// search is not required to be reproducible run-to-run.
//
// # Usage
//
//	r := rng.NewEntropySeeded("solver-worker")
//	if r.Float64() < mutationRate {
//	    j := r.Intn(n)
//	    // ...
//	}
//
// # Thread Safety
//
// RNG instances are NOT thread-safe. Each goroutine must use its own
// instance; each solver worker goroutine creates its own when it starts,
// and no RNG is ever shared across goroutines.
package rng
