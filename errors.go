// errors.go — sentinel errors for the palns package.
//
// Error policy (explicit and strict):
//   - Only sentinel variables (package-level) are exposed for configuration and
//     runtime governance failures.
//   - Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   - Sentinels are never wrapped with formatted strings at definition site;
//     call sites attach context via fmt.Errorf("%w", ...).
//   - Option constructors (WithX) panic only on programmer error (nil function
//     arguments); numeric policy violations are deferred to New, which returns
//     an error, since validity depends on the fully-resolved configuration.
package palns

import "errors"

// Configuration errors — surfaced by New, fatal to construction.
var (
	// ErrNonPositiveTemperature indicates InitialTemperature <= 0.
	ErrNonPositiveTemperature = errors.New("palns: initial temperature must be > 0")

	// ErrInvalidAlpha indicates the cooling factor is outside (0,1).
	ErrInvalidAlpha = errors.New("palns: alpha must be in (0,1)")

	// ErrNonPositiveInitialWeight indicates InitialWeight <= 0.
	ErrNonPositiveInitialWeight = errors.New("palns: initial weight must be > 0")

	// ErrInvalidDecay indicates Decay is outside [0,1].
	ErrInvalidDecay = errors.New("palns: decay must be in [0,1]")

	// ErrNegativePrecision indicates Precision (epsilon) is < 0.
	ErrNegativePrecision = errors.New("palns: precision must be >= 0")

	// ErrNonPositiveWorkers indicates NumWorkers <= 0 was explicitly requested.
	ErrNonPositiveWorkers = errors.New("palns: number of workers must be >= 1")

	// ErrNoDestroyOperators indicates zero destroy operators were registered.
	ErrNoDestroyOperators = errors.New("palns: at least one destroy operator is required")

	// ErrNoRepairOperators indicates zero repair operators were registered.
	ErrNoRepairOperators = errors.New("palns: at least one repair operator is required")

	// ErrNilBuildFunc indicates no construction heuristic was provided.
	ErrNilBuildFunc = errors.New("palns: a build function is required")

	// ErrNilAbortFunc indicates no abort predicate was provided.
	ErrNilAbortFunc = errors.New("palns: an abort predicate is required")
)

// Runtime errors — surfaced by Solve.
var (
	// ErrInvalidClassification indicates the internal state machine produced an
	// unrecognized classification tag. This is a programmer error (e.g. a
	// corrupted Classification constant) and is also raised via panic at the
	// one call site that can observe it; the sentinel exists so that any
	// recovered panic can still be compared with errors.Is.
	ErrInvalidClassification = errors.New("palns: invalid classification tag")
)
