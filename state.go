// state.go — the shared incumbent x and best x*, each behind its own lock
// (spec §5's "clone lock" and "best lock").
//
// Concurrency:
//   - cloneMu guards current; bestMu guards best. They are acquired in
//     different, non-overlapping pipeline stages (worker.go stages 2/4 vs
//     stage 5) and never nested — deadlock is structurally impossible (spec
//     §5: "each stage acquires at most one lock").
package palns

import "sync"

// sharedState holds the engine's two mutable Solution slots. It is
// constructed once by Engine.Solve with current==best==x0 (the coordinator's
// construction-heuristic output) and is the sole piece of state workers
// mutate after the coordinator hands off control.
type sharedState struct {
	cloneMu sync.RWMutex
	current Solution

	bestMu sync.RWMutex
	best   Solution
}

// newSharedState seeds current and best with x0, per spec §4.5: "seeds
// x = x* = x0".
func newSharedState(x0 Solution) *sharedState {
	return &sharedState{current: x0, best: x0}
}

// cloneCurrent returns a private deep copy of the incumbent, taken under the
// clone lock (spec §4.4 stage 2). Optimization note from spec §4.4: with a
// single worker there is no concurrent writer to race, but Engine.Solve does
// not special-case numWorkers==1 here — the lock is uncontended in that case
// and the clone is cheap relative to the destroy+repair transform it feeds,
// so the extra branch would add complexity without a measurable benefit.
func (s *sharedState) cloneCurrent() Solution {
	s.cloneMu.RLock()
	defer s.cloneMu.RUnlock()
	return s.current.Clone()
}

// reconsiderCurrent runs the acceptance oracle against the live incumbent and,
// if the classification is Accepted or better, replaces it with candidate.
// It takes the clone lock for writing itself (spec §4.4 stage 4), so the
// caller must not hold it; the caller supplies the RNG draw so the lock
// window stays narrow and explicit.
func (s *sharedState) reconsiderCurrent(candidate Solution, t, eps, u float64) Classification {
	s.cloneMu.Lock()
	defer s.cloneMu.Unlock()
	c := classify(s.current, candidate, t, eps, u)
	if c >= Accepted {
		s.current = candidate
	}
	return c
}

// reconsiderBest promotes candidate to the best solution if it strictly
// improves on x* by more than eps (spec §4.4 stage 5), returning true if the
// promotion happened.
func (s *sharedState) reconsiderBest(candidate Solution, eps float64) bool {
	s.bestMu.Lock()
	defer s.bestMu.Unlock()
	if s.best.Objective()-candidate.Objective() > eps {
		s.best = candidate
		return true
	}
	return false
}

// Best returns the best solution observed so far. Safe for concurrent use
// with an in-progress Solve (e.g. from a ProgressFunc or another goroutine
// polling progress), matching spec §6's "read-accessor for the current best".
func (s *sharedState) Best() Solution {
	s.bestMu.RLock()
	defer s.bestMu.RUnlock()
	return s.best
}

// Current exposes the live incumbent; used by tests asserting invariant 3
// (spec §8: x*.objective <= x.objective after iteration start).
func (s *sharedState) Current() Solution {
	s.cloneMu.RLock()
	defer s.cloneMu.RUnlock()
	return s.current
}
