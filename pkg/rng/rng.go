package rng

import (
	cryptorand "crypto/rand"
	"encoding/binary"
	"math/rand"
	"time"
)

// RNG wraps a math/rand source with a stage label for debugging which
// call site produced a given instance.
type RNG struct {
	stageName string
	source    *rand.Rand
}

// NewEntropySeeded creates an RNG seeded from crypto/rand, falling back
// to the wall clock if the system entropy source is unavailable.
// stageName identifies the call site (e.g. "solver-init",
// "solver-worker") for logging.
func NewEntropySeeded(stageName string) *RNG {
	var buf [8]byte
	if _, err := cryptorand.Read(buf[:]); err != nil {
		binary.BigEndian.PutUint64(buf[:], uint64(time.Now().UnixNano()))
	}
	seed := binary.BigEndian.Uint64(buf[:])
	return &RNG{
		stageName: stageName,
		source:    rand.New(rand.NewSource(int64(seed))),
	}
}

// Intn returns a pseudo-random integer in [0, n). It panics if n <= 0.
func (r *RNG) Intn(n int) int {
	return r.source.Intn(n)
}

// Float64 returns a pseudo-random float64 in [0.0, 1.0).
func (r *RNG) Float64() float64 {
	return r.source.Float64()
}

// Shuffle pseudo-randomizes the order of elements in slice.
func (r *RNG) Shuffle(n int, swap func(i, j int)) {
	r.source.Shuffle(n, swap)
}

// StageName returns the label this RNG was created with.
func (r *RNG) StageName() string {
	return r.stageName
}
