package palns

import (
	"context"
	"math"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// decrementSolution decreases its objective by one step, never below zero —
// scenario 1 from spec §8 ("Trivial monotone").
type decrementSolution struct{ v float64 }

func (d decrementSolution) Objective() float64 { return d.v }
func (d decrementSolution) Clone() Solution    { return decrementSolution{v: d.v} }

func decrementRepair(ctx context.Context, s Solution) (Solution, error) {
	d := s.(decrementSolution)
	if d.v > 0 {
		d.v--
	}
	return d, nil
}

func identityDestroy(ctx context.Context, s Solution) (Solution, error) { return s, nil }

func newTestWorker(id int, x0 Solution) (*worker, *sharedState) {
	state := newSharedState(x0)
	wt := newWeightTable(1, 1)
	w := &worker{
		id:          id,
		destroy:     []DestroyFunc{identityDestroy},
		repair:      []RepairFunc{decrementRepair},
		r:           1,
		weights:     wt,
		state:       state,
		rng:         newTestRand(int64(id) + 1),
		temperature: 1,
		alpha:       0.99,
		precision:   1e-9,
		decay:       0.5,
		rewards:     rewards{reject: 1, accept: 2, better: 4, best: 8},
		abort:       func(Solution) bool { return false },
		log:         zerolog.Nop(),
	}
	return w, state
}

func TestWorker_BestNeverWorseThanCurrent(t *testing.T) {
	w, state := newTestWorker(0, decrementSolution{v: 50})
	for i := 0; i < 100; i++ {
		require.NoError(t, w.iterate(context.Background()))
		assert.LessOrEqual(t, state.Best().Objective(), state.Current().Objective())
	}
}

func TestWorker_ClassificationMatchesBestReplacement(t *testing.T) {
	w, state := newTestWorker(0, decrementSolution{v: 50})
	for i := 0; i < 100; i++ {
		bestBefore := state.Best().Objective()
		wBefore := w.weights.weightsSnapshot()[0]
		require.NoError(t, w.iterate(context.Background()))
		bestAfter := state.Best().Objective()
		// Stage 6 sets W[0] = decay*W[0] + (1-decay)*reward(class) and the four
		// rewards are distinct, so the reward recovered from the weight change
		// identifies this iteration's final classification.
		gotReward := (w.weights.weightsSnapshot()[0] - w.decay*wBefore) / (1 - w.decay)
		// Monotone decrement always strictly improves at T0=1, alpha=0.99, so
		// every accepted candidate is also a new best until v hits 0.
		assert.Equal(t, bestAfter < bestBefore, math.Abs(gotReward-w.rewards.best) < 1e-9,
			"iteration %d: NewGlobalBest must be reported iff x* was replaced", i)
	}
	assert.Equal(t, 0.0, state.Best().Objective())
}

func TestWorker_AbortPredicatePanicBecomesError(t *testing.T) {
	w, _ := newTestWorker(0, decrementSolution{v: 1})
	w.abort = func(Solution) bool { panic("boom") }
	err := w.run(context.Background())
	assert.Error(t, err)
}

func TestWorker_DestroyOperatorErrorPropagates(t *testing.T) {
	w, _ := newTestWorker(0, decrementSolution{v: 1})
	w.destroy = []DestroyFunc{func(ctx context.Context, s Solution) (Solution, error) {
		return nil, assert.AnError
	}}
	err := w.iterate(context.Background())
	assert.ErrorIs(t, err, assert.AnError)
}
