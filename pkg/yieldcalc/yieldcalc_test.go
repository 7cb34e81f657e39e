package yieldcalc_test

import (
	"testing"

	"github.com/dshills/fnsolver/pkg/resolver"
	"github.com/dshills/fnsolver/pkg/yieldcalc"
)

func TestOracleScenarios(t *testing.T) {
	cat, code := lineFixture(t)

	tests := []struct {
		name        string
		layout      []string // probe code per site, in A,B,C order
		wantMining  uint64
		wantRevenue uint64
		wantStorage uint64
	}{
		{"all_basic", []string{"-", "-", "-"}, 750, 750, 6000},
		{"one_mining", []string{"M1", "-", "-"}, 1000, 650, 6000},
		{"mining_booster_mining", []string{"M1", "B1", "M1"}, 1550, 0, 0},
		{"mining_duplicator_mining", []string{"M1", "D", "M1"}, 2000, 0, 0},
		{"all_mining_chain", []string{"M1", "M1", "M1"}, 1950, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			layout := make([]int, len(tt.layout))
			for i, c := range tt.layout {
				layout[i] = code[c]
			}
			resolved := resolver.Resolve(cat, layout)
			yield := yieldcalc.Evaluate(cat, layout, resolved)

			if yield.Mining != tt.wantMining {
				t.Errorf("Mining = %d, want %d", yield.Mining, tt.wantMining)
			}
			if tt.wantRevenue != 0 && yield.Revenue != tt.wantRevenue {
				t.Errorf("Revenue = %d, want %d", yield.Revenue, tt.wantRevenue)
			}
			if tt.wantStorage != 0 && yield.Storage != tt.wantStorage {
				t.Errorf("Storage = %d, want %d", yield.Storage, tt.wantStorage)
			}
		})
	}
}

func TestResolvePurity(t *testing.T) {
	cat, code := lineFixture(t)
	layout := []int{code["M1"], code["D"], code["M1"]}

	a := resolver.Resolve(cat, layout)
	b := resolver.Resolve(cat, layout)

	ay := yieldcalc.Evaluate(cat, layout, a)
	by := yieldcalc.Evaluate(cat, layout, b)
	if ay != by {
		t.Errorf("Resolve/Evaluate not idempotent: %+v vs %+v", ay, by)
	}
}
