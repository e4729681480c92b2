// engine.go — the coordinator (spec §4.5): constructs the initial solution,
// spawns N workers, enforces termination, exposes the best solution via Best.
package palns

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/katalvlaran/palns/internal/xrand"
)

// Engine is a configured PALNS search, ready to run via Solve. An Engine may
// be reused across multiple Solve calls; each call builds a fresh initial
// solution, weight table, and shared state (spec §3: "W and C live for the
// duration of a Solve call").
type Engine struct {
	cfg *config

	mu      sync.RWMutex
	state   *sharedState // latest run's shared state; nil before the first Solve
	weights *weightTable // latest run's weight table; nil before the first Solve
}

// New validates opts and returns a ready-to-run Engine, or a configuration
// error (spec §7: "Configuration error ... surfaced at construction time;
// fatal").
func New(opts ...Option) (*Engine, error) {
	cfg, err := resolve(opts...)
	if err != nil {
		return nil, err
	}
	return &Engine{cfg: cfg}, nil
}

// Solve runs the coordinator contract (spec §4.5):
//   - invokes the construction heuristic, assigning x = x* = x0;
//   - launches N workers against shared state;
//   - blocks until all workers terminate (by abort, ctx cancellation, or the
//     first operator/abort-predicate error);
//   - returns x*.
//
// On the first worker error, the coordinator requests cancellation of the
// rest and re-surfaces that error; x* is not returned on failure (spec §7).
func (e *Engine) Solve(ctx context.Context) (Solution, error) {
	cfg := e.cfg

	x0, err := cfg.build(ctx)
	if err != nil {
		return nil, fmt.Errorf("palns: build: %w", err)
	}

	state := newSharedState(x0)
	p := len(cfg.destroy) * len(cfg.repair)
	weights := newWeightTable(p, cfg.initialWeight)

	e.mu.Lock()
	e.state = state
	e.weights = weights
	e.mu.Unlock()

	master := xrand.New(cfg.randomSeed)

	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	var (
		wg       sync.WaitGroup
		errOnce  sync.Once
		firstErr error
	)

	cfg.logger.Info().Int("workers", cfg.numWorkers).Int("pairs", p).Msg("palns: solve starting")

	wg.Add(cfg.numWorkers)
	for i := 0; i < cfg.numWorkers; i++ {
		w := &worker{
			id:          i,
			destroy:     cfg.destroy,
			repair:      cfg.repair,
			r:           len(cfg.repair),
			weights:     weights,
			state:       state,
			rng:         xrand.Derive(master, uint64(i)),
			temperature: cfg.t0,
			alpha:       cfg.alpha,
			precision:   cfg.precision,
			decay:       cfg.decay,
			rewards:     cfg.rewards,
			abort:       cfg.abort,
			progress:    cfg.progress,
			log:         cfg.logger,
		}
		go func() {
			defer wg.Done()
			if err := w.run(runCtx); err != nil && !errors.Is(err, context.Canceled) {
				errOnce.Do(func() {
					firstErr = err
					cancel()
				})
			}
		}()
	}

	wg.Wait()

	if firstErr != nil {
		cfg.logger.Error().Err(firstErr).Msg("palns: solve failed")
		return nil, firstErr
	}

	best := state.Best()
	cfg.logger.Info().Float64("objective", best.Objective()).Msg("palns: solve finished")
	return best, nil
}

// Best returns the best solution observed by the most recent or in-progress
// Solve call, or nil if Solve has never been called (spec §6's "read-accessor
// for the current best").
func (e *Engine) Best() Solution {
	e.mu.RLock()
	st := e.state
	e.mu.RUnlock()
	if st == nil {
		return nil
	}
	return st.Best()
}
