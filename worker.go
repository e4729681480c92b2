// worker.go — the seven-stage worker iteration pipeline (spec §4.4) and the
// per-worker annealing temperature (spec §3: "Temperature is per-worker — not
// shared — so each worker follows an independent annealing schedule").
package palns

import (
	"context"
	"fmt"
	"math/rand"

	"github.com/katalvlaran/palns/internal/xrand"
	"github.com/rs/zerolog"
)

// worker runs the pipeline in a loop until the abort predicate fires or an
// operator/abort error occurs. Each worker owns its own rng and temperature;
// everything else it touches is shared state reached through weightTable's
// and sharedState's lock accessors.
type worker struct {
	id int

	destroy []DestroyFunc
	repair  []RepairFunc
	r       int // number of repair operators; pair k -> (k/r, k%r)

	weights *weightTable
	state   *sharedState

	rng         *rand.Rand
	temperature float64
	alpha       float64
	precision   float64
	decay       float64
	rewards     rewards

	abort    AbortFunc
	progress ProgressFunc
	log      zerolog.Logger
}

// run executes the pipeline until ctx is cancelled, the abort predicate
// returns true, or an operator/abort error occurs (in which case the error is
// returned so Engine.Solve can cancel the remaining workers and re-surface it
// per spec §7's propagation policy).
func (w *worker) run(ctx context.Context) error {
	w.log.Debug().Int("worker", w.id).Msg("worker started")
	for {
		if err := ctx.Err(); err != nil {
			w.log.Debug().Int("worker", w.id).Msg("worker stopped: context done")
			return nil
		}

		if err := w.iterate(ctx); err != nil {
			w.log.Error().Int("worker", w.id).Err(err).Msg("worker stopping on error")
			return err
		}

		best := w.state.Best()
		stop, err := w.checkAbort(best)
		if err != nil {
			return err
		}
		if stop {
			w.log.Debug().Int("worker", w.id).Msg("worker stopped: abort predicate")
			return nil
		}
	}
}

// checkAbort calls the abort predicate, converting a panic into an error per
// spec §7's "Abort-predicate error — propagated identically to operator
// errors" (the AbortFunc signature itself has no error return, so a panic is
// the only channel through which an abort predicate can signal failure).
func (w *worker) checkAbort(best Solution) (stop bool, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("palns: abort predicate panicked: %v", r)
		}
	}()
	return w.abort(best), nil
}

// iterate runs one pass of stages 1-7. Returns a non-nil error only for
// operator failures (destroy/repair) or an invalid-classification programmer
// error recovered from a panic; both terminate the search per spec §7.
func (w *worker) iterate(ctx context.Context) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %v", ErrInvalidClassification, r)
		}
	}()

	// Stage 1 - select pair under the weight lock; the draw and the CDF read
	// are both made while holding it (spec §9 open question (c)).
	w.weights.rlock()
	u1 := xrand.Float64(w.rng)
	k := selectPair(w.weights.snapshotCDF(), u1)
	w.weights.runlock()

	d := k / w.r
	rp := k % w.r

	// Stage 2 - snapshot the incumbent under the clone lock.
	candidate := w.state.cloneCurrent()

	// Stage 3 - transform, entirely outside any lock: this is the expensive
	// step and the reason for parallelism (spec §4.4).
	candidate, err = w.destroy[d](ctx, candidate)
	if err != nil {
		return fmt.Errorf("palns: destroy operator %d: %w", d, err)
	}
	candidate, err = w.repair[rp](ctx, candidate)
	if err != nil {
		return fmt.Errorf("palns: repair operator %d: %w", rp, err)
	}

	// Stage 4 - reconsider the incumbent under the clone lock, which
	// reconsiderCurrent takes itself. The acceptance draw comes from this
	// worker's own rng, which no other goroutine touches, so it is made just
	// before that lock is taken rather than inside it.
	u2 := xrand.Float64(w.rng)
	class := w.state.reconsiderCurrent(candidate, w.temperature, w.precision, u2)

	// Stage 5 - reconsider the best solution under the best lock; upgrade the
	// classification if x* was replaced (spec §4.4 stage 5, §8 invariant 5).
	if w.state.reconsiderBest(candidate, w.precision) {
		class = NewGlobalBest
		w.log.Info().Int("worker", w.id).Float64("objective", candidate.Objective()).Msg("new global best")
	}

	// Stage 6 - update weights under the weight lock.
	w.weights.lock()
	w.weights.update(k, class, w.decay, w.rewards)
	w.weights.unlock()

	// Stage 7 - cool and report.
	w.temperature *= w.alpha
	if w.progress != nil {
		w.progress(w.state.Best())
	}

	return nil
}
