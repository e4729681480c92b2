package palns

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWeightTable_Shape(t *testing.T) {
	wt := newWeightTable(6, 2.5)
	require.Equal(t, 6, wt.len())
	for _, w := range wt.weightsSnapshot() {
		assert.True(t, w > 0, "weight must be strictly positive")
		assert.Equal(t, 2.5, w)
	}
}

func TestWeightTable_CDFMonotone(t *testing.T) {
	wt := newWeightTable(4, 1)
	wt.lock()
	wt.update(0, NewGlobalBest, 0.5, rewards{reject: 1, accept: 2, better: 4, best: 8})
	wt.unlock()

	c := wt.snapshotCDF()
	prev := -1.0
	for _, ci := range c {
		assert.GreaterOrEqual(t, ci, prev)
		prev = ci
	}
	assert.InDelta(t, 1.0, c[len(c)-1], 1e-12)
}

func TestWeightTable_ConvergesToReward(t *testing.T) {
	wt := newWeightTable(1, 1)
	r := rewards{reject: 1, accept: 2, better: 4, best: 8}
	for i := 0; i < 500; i++ {
		wt.lock()
		wt.update(0, NewGlobalBest, 0.9, r)
		wt.unlock()
	}
	ws := wt.weightsSnapshot()
	assert.InDelta(t, r.best, ws[0], 1e-3)
}

func TestWeightTable_RewardPanicsOnInvalidClassification(t *testing.T) {
	r := rewards{reject: 1, accept: 2, better: 4, best: 8}
	assert.Panics(t, func() {
		_ = r.reward(Classification(99))
	})
}
