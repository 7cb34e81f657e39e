// Package score implements the six scoring-rule variants a layout is
// judged by, plus the constrained wrapper that zeroes a score when
// configured minimums are unmet. Variants are a small tagged-interface
// family, mirroring the teacher's PacingCurve family in pkg/synthesis.
package score

import (
	"math"

	"github.com/dshills/fnsolver/pkg/catalog"
	"github.com/dshills/fnsolver/pkg/yieldcalc"
)

// Kind identifies which scoring variant a Func is, so configuration can
// inspect it (the tiebreaker-equals-primary check needs this).
type Kind int

const (
	MaxMining Kind = iota
	MaxEffectiveMining
	MaxRevenue
	MaxStorage
	Ratio
	Weights
)

func (k Kind) String() string {
	switch k {
	case MaxMining:
		return "max_mining"
	case MaxEffectiveMining:
		return "max_effective_mining"
	case MaxRevenue:
		return "max_revenue"
	case MaxStorage:
		return "max_storage"
	case Ratio:
		return "ratio"
	case Weights:
		return "weights"
	default:
		return "unknown"
	}
}

// Func scores a layout's yield as a single float64. All six variants
// and the Constrained wrapper implement it.
type Func interface {
	Evaluate(y yieldcalc.ResourceYield) float64
	Kind() Kind
}

// ScoreError reports an invalid score-function argument (negative or
// NaN factor or weight).
type ScoreError struct {
	Message string
}

func (e *ScoreError) Error() string { return e.Message }

var ErrInvalidArgument = &ScoreError{Message: "score: argument must be a non-negative, non-NaN number"}

func validateArg(v float64) error {
	if math.IsNaN(v) || v < 0 {
		return ErrInvalidArgument
	}
	return nil
}

type maxMining struct{}

func NewMaxMining() Func                                     { return maxMining{} }
func (maxMining) Evaluate(y yieldcalc.ResourceYield) float64 { return float64(y.Mining) }
func (maxMining) Kind() Kind                                 { return MaxMining }

type maxEffectiveMining struct{ storageFactor float64 }

// NewMaxEffectiveMining scores min(storageFactor*production, storage).
func NewMaxEffectiveMining(storageFactor float64) (Func, error) {
	if err := validateArg(storageFactor); err != nil {
		return nil, err
	}
	return maxEffectiveMining{storageFactor: storageFactor}, nil
}

func (f maxEffectiveMining) Evaluate(y yieldcalc.ResourceYield) float64 {
	effective := f.storageFactor * float64(y.Mining)
	if storage := float64(y.Storage); effective > storage {
		effective = storage
	}
	return effective
}
func (maxEffectiveMining) Kind() Kind { return MaxEffectiveMining }

type maxRevenue struct{}

func NewMaxRevenue() Func                                      { return maxRevenue{} }
func (maxRevenue) Evaluate(y yieldcalc.ResourceYield) float64 { return float64(y.Revenue) }
func (maxRevenue) Kind() Kind                                 { return MaxRevenue }

type maxStorage struct{}

func NewMaxStorage() Func                                      { return maxStorage{} }
func (maxStorage) Evaluate(y yieldcalc.ResourceYield) float64 { return float64(y.Storage) }
func (maxStorage) Kind() Kind                                 { return MaxStorage }

type ratio struct{ m, r, s float64 }

// NewRatio scores min over nonzero weights i of (value_i/weight_i),
// scaled by the largest weight. All three weights zero scores 0 for
// every layout.
func NewRatio(m, r, s float64) (Func, error) {
	for _, v := range []float64{m, r, s} {
		if err := validateArg(v); err != nil {
			return nil, err
		}
	}
	return ratio{m: m, r: r, s: s}, nil
}

func (f ratio) Evaluate(y yieldcalc.ResourceYield) float64 {
	if f.m == 0 && f.r == 0 && f.s == 0 {
		return 0
	}
	max := math.Max(f.m, math.Max(f.r, f.s))
	best := math.Inf(1)
	if f.m != 0 {
		best = math.Min(best, float64(y.Mining)/f.m)
	}
	if f.r != 0 {
		best = math.Min(best, float64(y.Revenue)/f.r)
	}
	if f.s != 0 {
		best = math.Min(best, float64(y.Storage)/f.s)
	}
	return best * max
}
func (ratio) Kind() Kind { return Ratio }

type weights struct{ m, r, s float64 }

// NewWeights scores m*production + r*revenue + s*storage.
func NewWeights(m, r, s float64) (Func, error) {
	for _, v := range []float64{m, r, s} {
		if err := validateArg(v); err != nil {
			return nil, err
		}
	}
	return weights{m: m, r: r, s: s}, nil
}

func (f weights) Evaluate(y yieldcalc.ResourceYield) float64 {
	return f.m*float64(y.Mining) + f.r*float64(y.Revenue) + f.s*float64(y.Storage)
}
func (weights) Kind() Kind { return Weights }

// Limits holds the configured minimums a Constrained score checks
// before delegating to its base function. A zero precious-resource
// minimum is treated as "unconfigured" and never fails the layout; the
// three yield minimums are checked unconditionally (a zero minimum is
// trivially satisfied since yields are never negative).
type Limits struct {
	MinProduction uint64
	MinRevenue    uint64
	MinStorage    uint64
	MinResources  [catalog.NumPreciousResources]uint64
}

// Constrained wraps a base Func with Limits: if any configured minimum
// is unmet the score is 0, otherwise the base score is returned.
type Constrained struct {
	Base   Func
	Limits Limits
}

func (c Constrained) Evaluate(y yieldcalc.ResourceYield) float64 {
	if y.Mining < c.Limits.MinProduction || y.Revenue < c.Limits.MinRevenue || y.Storage < c.Limits.MinStorage {
		return 0
	}
	for i, min := range c.Limits.MinResources {
		if min != 0 && y.Resources[i] < min {
			return 0
		}
	}
	return c.Base.Evaluate(y)
}

func (c Constrained) Kind() Kind { return c.Base.Kind() }

// IsTiebreakerEligible reports whether k is one of the three variants a
// tiebreaker is allowed to use.
func IsTiebreakerEligible(k Kind) bool {
	return k == MaxMining || k == MaxRevenue || k == MaxStorage
}
