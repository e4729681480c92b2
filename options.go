// options.go — functional configuration for the palns engine.
//
// Contract (mirrors the teacher's functional-options discipline):
//   - Options are functional: type Option func(*config).
//   - Option constructors validate and panic only on programmer error (nil
//     function arguments supplied where a function is mandatory); numeric
//     policy violations (T0<=0, alpha outside (0,1), ...) are deferred to
//     New, which resolves all options first and then validates the whole
//     configuration once, returning a sentinel error.
//   - No hidden globals: everything flows through config.
package palns

import (
	"runtime"

	"github.com/rs/zerolog"
)

// Defaults — single source of truth for zero-value behavior.
const (
	// DefaultInitialWeight seeds every operator pair's weight uniformly.
	DefaultInitialWeight = 1.0

	// DefaultDecay freezes nothing and forgets nothing: a 50/50 blend of
	// history and the latest reward, a neutral starting point for decay.
	DefaultDecay = 0.5

	// DefaultPrecision is the objective-comparison tolerance epsilon.
	DefaultPrecision = 1e-9

	// DefaultAlpha is the per-iteration cooling factor.
	DefaultAlpha = 0.999

	// DefaultInitialTemperature seeds each worker's local annealing schedule.
	DefaultInitialTemperature = 1.0
)

// config is the fully-resolved, unexported engine configuration. Option
// values mutate it; New validates the result exactly once.
type config struct {
	build   BuildFunc
	destroy []DestroyFunc
	repair  []RepairFunc
	abort   AbortFunc
	progress ProgressFunc

	t0            float64
	alpha         float64
	initialWeight float64
	rewards       rewards
	decay         float64
	precision     float64
	numWorkers    int
	randomSeed    int64
	logger        zerolog.Logger
}

// defaultConfig returns a config pre-populated with every documented default,
// so that New(opts...) only needs to validate, never to zero-check.
func defaultConfig() *config {
	return &config{
		t0:            DefaultInitialTemperature,
		alpha:         DefaultAlpha,
		initialWeight: DefaultInitialWeight,
		rewards:       rewards{reject: 1, accept: 2, better: 4, best: 8},
		decay:         DefaultDecay,
		precision:     DefaultPrecision,
		numWorkers:    defaultNumWorkers(),
		logger:        zerolog.Nop(),
	}
}

// defaultNumWorkers implements spec §6's "default: half the hardware
// concurrency", floored at 1 so the engine is usable on a single-core host.
func defaultNumWorkers() int {
	n := runtime.NumCPU() / 2
	if n < 1 {
		return 1
	}
	return n
}

// Option configures an Engine before construction.
type Option func(*config)

// WithBuild sets the construction heuristic. Mandatory; New fails without one.
func WithBuild(f BuildFunc) Option {
	if f == nil {
		panic("palns: WithBuild(nil)")
	}
	return func(c *config) { c.build = f }
}

// WithDestroyOperators appends destroy operators to the engine's library, in
// the order given — this order fixes the destroy index d used by the pair
// linearization k = d*R + r (spec §3).
func WithDestroyOperators(fs ...DestroyFunc) Option {
	for _, f := range fs {
		if f == nil {
			panic("palns: WithDestroyOperators(nil)")
		}
	}
	return func(c *config) { c.destroy = append(c.destroy, fs...) }
}

// WithRepairOperators appends repair operators to the engine's library, in
// the order given — this order fixes the repair index r.
func WithRepairOperators(fs ...RepairFunc) Option {
	for _, f := range fs {
		if f == nil {
			panic("palns: WithRepairOperators(nil)")
		}
	}
	return func(c *config) { c.repair = append(c.repair, fs...) }
}

// WithAbort sets the termination predicate. Mandatory; New fails without one.
func WithAbort(f AbortFunc) Option {
	if f == nil {
		panic("palns: WithAbort(nil)")
	}
	return func(c *config) { c.abort = f }
}

// WithProgress sets an optional callback invoked with the current best after
// every iteration of every worker.
func WithProgress(f ProgressFunc) Option {
	if f == nil {
		panic("palns: WithProgress(nil)")
	}
	return func(c *config) { c.progress = f }
}

// WithTemperature sets the initial per-worker annealing temperature T0.
func WithTemperature(t0 float64) Option {
	return func(c *config) { c.t0 = t0 }
}

// WithAlpha sets the per-iteration cooling factor alpha.
func WithAlpha(alpha float64) Option {
	return func(c *config) { c.alpha = alpha }
}

// WithInitialWeight sets the starting value for every operator pair's weight.
func WithInitialWeight(w float64) Option {
	return func(c *config) { c.initialWeight = w }
}

// WithRewards sets the four reward constants used by the weight updater (spec
// §4.3). Typical policy (not an invariant): best >= better >= accept >= reject
// >= 0.
func WithRewards(best, better, accept, reject float64) Option {
	return func(c *config) {
		c.rewards = rewards{reject: reject, accept: accept, better: better, best: best}
	}
}

// WithDecay sets the weight exponential-smoothing factor in [0,1]; decay=1
// freezes weights, decay=0 makes them memoryless.
func WithDecay(decay float64) Option {
	return func(c *config) { c.decay = decay }
}

// WithPrecision sets the objective-comparison tolerance epsilon (>= 0).
func WithPrecision(eps float64) Option {
	return func(c *config) { c.precision = eps }
}

// WithWorkers sets the number of parallel workers N (>= 1). Omit to use the
// default heuristic (half the hardware concurrency).
func WithWorkers(n int) Option {
	return func(c *config) { c.numWorkers = n }
}

// WithSeed sets the master random seed; workers derive independent streams
// from it (internal/xrand.Derive), so changing N changes how the master seed
// is consumed and is not expected to reproduce identical runs (spec's
// non-goal: "no guarantee of ... deterministic reproducibility across thread
// counts"). With N=1 the run is fully reproducible for a fixed seed.
func WithSeed(seed int64) Option {
	return func(c *config) { c.randomSeed = seed }
}

// WithLogger attaches a zerolog.Logger for coordinator/worker lifecycle
// events (worker start/stop, new-global-best, operator/abort errors). The
// default is a disabled logger: the engine never logs unless asked to.
func WithLogger(logger zerolog.Logger) Option {
	return func(c *config) { c.logger = logger }
}

// resolve applies opts over the documented defaults and validates the result,
// returning the first configuration error encountered (spec §7's
// "Configuration error ... surfaced at construction time; fatal").
func resolve(opts ...Option) (*config, error) {
	c := defaultConfig()
	for _, opt := range opts {
		opt(c)
	}

	switch {
	case c.build == nil:
		return nil, ErrNilBuildFunc
	case c.abort == nil:
		return nil, ErrNilAbortFunc
	case len(c.destroy) == 0:
		return nil, ErrNoDestroyOperators
	case len(c.repair) == 0:
		return nil, ErrNoRepairOperators
	case c.t0 <= 0:
		return nil, ErrNonPositiveTemperature
	case c.alpha <= 0 || c.alpha >= 1:
		return nil, ErrInvalidAlpha
	case c.initialWeight <= 0:
		return nil, ErrNonPositiveInitialWeight
	case c.decay < 0 || c.decay > 1:
		return nil, ErrInvalidDecay
	case c.precision < 0:
		return nil, ErrNegativePrecision
	case c.numWorkers <= 0:
		return nil, ErrNonPositiveWorkers
	}
	return c, nil
}
