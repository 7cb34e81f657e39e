package rng_test

import (
	"testing"

	"github.com/dshills/fnsolver/pkg/rng"
)

func TestNewEntropySeededStageName(t *testing.T) {
	r := rng.NewEntropySeeded("solver-worker")
	if got := r.StageName(); got != "solver-worker" {
		t.Errorf("StageName() = %q, want %q", got, "solver-worker")
	}
}

func TestFloat64InUnitRange(t *testing.T) {
	r := rng.NewEntropySeeded("t")
	for i := 0; i < 1000; i++ {
		v := r.Float64()
		if v < 0 || v >= 1 {
			t.Fatalf("Float64() = %v, want in [0, 1)", v)
		}
	}
}

func TestIntnInRange(t *testing.T) {
	r := rng.NewEntropySeeded("t")
	for i := 0; i < 1000; i++ {
		v := r.Intn(7)
		if v < 0 || v >= 7 {
			t.Fatalf("Intn(7) = %d, want in [0, 7)", v)
		}
	}
}

func TestShufflePermutes(t *testing.T) {
	r := rng.NewEntropySeeded("t")
	s := []int{0, 1, 2, 3, 4, 5, 6, 7}
	r.Shuffle(len(s), func(i, j int) { s[i], s[j] = s[j], s[i] })

	seen := make(map[int]bool, len(s))
	for _, v := range s {
		seen[v] = true
	}
	if len(seen) != 8 {
		t.Fatalf("Shuffle produced %d distinct values, want 8 (no duplication or loss)", len(seen))
	}
}
