package tspop_test

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/palns"
	"github.com/katalvlaran/palns/tspop"
)

// squareDist builds a symmetric distance matrix for n cities placed on a
// unit circle, so the optimal tour is the natural cyclic order and every
// local-search operator has a known-good answer to converge toward.
func squareDist(n int) tspop.DistanceMatrix {
	xs := make([]float64, n)
	ys := make([]float64, n)
	for i := 0; i < n; i++ {
		theta := 2 * math.Pi * float64(i) / float64(n)
		xs[i], ys[i] = math.Cos(theta), math.Sin(theta)
	}
	m := make(tspop.DistanceMatrix, n)
	for i := range m {
		m[i] = make([]float64, n)
		for j := range m[i] {
			dx, dy := xs[i]-xs[j], ys[i]-ys[j]
			m[i][j] = math.Sqrt(dx*dx + dy*dy)
		}
	}
	return m
}

func TestNewTour_RejectsMalformedOrder(t *testing.T) {
	dist := squareDist(4)
	_, err := tspop.NewTour(dist, []int{0, 1, 1, 3})
	assert.ErrorIs(t, err, tspop.ErrDimensionMismatch)
}

func TestTour_CloneIsIndependent(t *testing.T) {
	dist := squareDist(5)
	tour, err := tspop.NewTour(dist, []int{0, 1, 2, 3, 4})
	require.NoError(t, err)

	clone := tour.Clone().(*tspop.Tour)
	clone.Order[0] = 4
	assert.NotEqual(t, clone.Order[0], tour.Order[0])
}

func TestNearestNeighborBuild_ProducesValidTour(t *testing.T) {
	dist := squareDist(8)
	build := tspop.NearestNeighborBuild(dist, 42)
	sol, err := build(context.Background())
	require.NoError(t, err)

	tour := sol.(*tspop.Tour)
	assert.Len(t, tour.Order, 8)
	seen := make(map[int]bool)
	for _, c := range tour.Order {
		assert.False(t, seen[c], "city %d visited twice", c)
		seen[c] = true
	}
}

func TestSegmentReversalDestroy_PreservesCityMultiset(t *testing.T) {
	dist := squareDist(6)
	tour, err := tspop.NewTour(dist, []int{0, 1, 2, 3, 4, 5})
	require.NoError(t, err)

	destroy := tspop.SegmentReversalDestroy(2, 4)
	var sol palns.Solution = tour
	sol, err = destroy(context.Background(), sol)
	require.NoError(t, err)

	out := sol.(*tspop.Tour)
	assert.Len(t, out.Order, 6)
	seen := make(map[int]bool)
	for _, c := range out.Order {
		seen[c] = true
	}
	assert.Len(t, seen, 6)
}

func TestRandomRemovalAndCheapestInsertion_RoundTrip(t *testing.T) {
	dist := squareDist(10)
	tour, err := tspop.NewTour(dist, []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9})
	require.NoError(t, err)

	destroy := tspop.RandomRemovalDestroy(3)
	repair := tspop.CheapestInsertionRepair()

	var sol palns.Solution = tour
	sol, err = destroy(context.Background(), sol)
	require.NoError(t, err)
	assert.Len(t, sol.(*tspop.Tour).Order, 7)
	assert.Len(t, sol.(*tspop.Tour).Removed, 3)

	sol, err = repair(context.Background(), sol)
	require.NoError(t, err)
	out := sol.(*tspop.Tour)
	assert.Len(t, out.Order, 10)

	seen := make(map[int]bool)
	for _, c := range out.Order {
		seen[c] = true
	}
	assert.Len(t, seen, 10)
}

func TestRandomRemovalDestroy_AnyRepairRestoresFullTour(t *testing.T) {
	// The engine may pair any destroy index with any repair index (adaptive
	// pairing), so a removal-style destroy must come out whole even when
	// matched with a repair that wasn't written with it in mind.
	dist := squareDist(9)
	tour, err := tspop.NewTour(dist, []int{0, 1, 2, 3, 4, 5, 6, 7, 8})
	require.NoError(t, err)

	destroy := tspop.RandomRemovalDestroy(4)
	repair := tspop.TwoOptRepair(1e-9, 0)

	var sol palns.Solution = tour
	sol, err = destroy(context.Background(), sol)
	require.NoError(t, err)

	sol, err = repair(context.Background(), sol)
	require.NoError(t, err)

	out := sol.(*tspop.Tour)
	assert.Len(t, out.Order, 9)
	assert.Empty(t, out.Removed)
	seen := make(map[int]bool)
	for _, c := range out.Order {
		seen[c] = true
	}
	assert.Len(t, seen, 9)
}

func TestTwoOptRepair_NeverWorsensObjective(t *testing.T) {
	dist := squareDist(12)
	// Start from a scrambled order; circular distances make 0..n-1 optimal,
	// so a scrambled start gives 2-opt something real to fix.
	scrambled := []int{0, 5, 1, 6, 2, 7, 3, 8, 4, 9, 10, 11}
	tour, err := tspop.NewTour(dist, scrambled)
	require.NoError(t, err)
	before := tour.Objective()

	repair := tspop.TwoOptRepair(1e-9, 0)
	var sol palns.Solution = tour
	sol, err = repair(context.Background(), sol)
	require.NoError(t, err)

	assert.LessOrEqual(t, sol.Objective(), before)
}
