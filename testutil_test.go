package palns

import "math/rand"

// newTestRand returns a deterministic RNG for white-box unit tests in this
// package; tests that need engine-level determinism use WithSeed instead.
func newTestRand(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

// numSolution is a minimal Solution used across this package's white-box
// tests: an objective value with no other state, so Clone is a trivial value
// copy (Go's value-type Clone already satisfies the "independent deep copy"
// contract when there is no reference-typed field to alias).
type numSolution struct {
	v float64
}

func (n numSolution) Objective() float64 { return n.v }
func (n numSolution) Clone() Solution    { return numSolution{v: n.v} }
