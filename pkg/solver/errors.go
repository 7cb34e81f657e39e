package solver

import "fmt"

// OptionsError reports a configuration-time problem with Options that
// has no per-instance data to report.
type OptionsError struct {
	Message string
}

func (e *OptionsError) Error() string { return e.Message }

var (
	// ErrForceSeedWithoutSeed is returned when ForceSeed is set but Seed
	// is empty.
	ErrForceSeedWithoutSeed = &OptionsError{Message: "solver: force_seed is set but seed is empty"}
	// ErrTiebreakerSameAsScore is returned when the tiebreaker function
	// is the same variant as the primary score function.
	ErrTiebreakerSameAsScore = &OptionsError{Message: "solver: tiebreaker must differ from the primary score function"}
	// ErrTiebreakerNotEligible is returned when the tiebreaker is not
	// one of max_mining, max_revenue, or max_storage.
	ErrTiebreakerNotEligible = &OptionsError{Message: "solver: tiebreaker must be max_mining, max_revenue, or max_storage"}
)

// InventoryInsufficientError reports that the seed consumed more of a
// probe than the configured inventory held.
type InventoryInsufficientError struct {
	ProbeCode string
	Required  uint32
}

func (e *InventoryInsufficientError) Error() string {
	return fmt.Sprintf("solver: inventory insufficient for probe %q: %d more required", e.ProbeCode, e.Required)
}

// SeedConflictError reports that a site id appears in both the locked
// sites list and the seed.
type SeedConflictError struct {
	SiteID int
}

func (e *SeedConflictError) Error() string {
	return fmt.Sprintf("solver: site %d is both locked and seeded", e.SiteID)
}
