package tspop

import (
	"math"

	"github.com/katalvlaran/palns"
)

// roundScale stabilizes costs to 1e-9 absolute precision, matching the
// teacher's practice (tsp/cost.go's round1e9) of avoiding cross-platform FP
// drift in comparisons that feed into acceptance decisions.
const roundScale = 1e9

func round1e9(x float64) float64 { return math.Round(x*roundScale) / roundScale }

// DistanceMatrix is a dense, symmetric n×n distance matrix. dist[i][i] must
// be 0; dist[i][j] must equal dist[j][i] and be non-negative or +Inf (no
// edge). Operators never mutate a DistanceMatrix; Tour values share one by
// reference since it is immutable for the lifetime of a Solve call.
type DistanceMatrix [][]float64

// validate checks the shape invariants tspop relies on. Cheap enough to call
// once per construction rather than threading validation through every
// caller.
func (m DistanceMatrix) validate() error {
	n := len(m)
	if n < 2 {
		return ErrTooFewCities
	}
	for i := range m {
		if len(m[i]) != n {
			return ErrNonSquare
		}
	}
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			w := m[i][j]
			if math.IsNaN(w) {
				return ErrDimensionMismatch
			}
			if w < 0 {
				return ErrNegativeWeight
			}
			if w != m[j][i] && !(math.IsInf(w, 1) && math.IsInf(m[j][i], 1)) {
				return ErrDimensionMismatch
			}
		}
	}
	return nil
}

// Tour is a Hamiltonian cycle over a shared DistanceMatrix, implementing
// palns.Solution. Order holds city indices in visiting order (length n, not
// closed); the cycle's closing edge Order[n-1]->Order[0] is implicit.
//
// Removed holds cities a destroy operator has pulled out of Order but not
// yet reinserted. It travels with the Tour value (rather than through a
// side-channel pointer shared across workers) so that any repair operator,
// regardless of which destroy operator produced the candidate, can drain it
// before returning — every destroy/repair pair must independently leave the
// Tour with exactly n cities, since the engine may combine any destroy index
// with any repair index (spec's adaptive pairing).
type Tour struct {
	Dist    DistanceMatrix
	Order   []int
	Removed []int
	cost    float64 // cached total cycle length, kept in lock-step with Order
}

// NewTour builds a Tour from an explicit visiting order and computes its
// cost. Use NearestNeighborBuild for a from-scratch nearest-neighbor seed instead of
// calling this directly with an arbitrary permutation.
func NewTour(dist DistanceMatrix, order []int) (*Tour, error) {
	if err := dist.validate(); err != nil {
		return nil, err
	}
	n := len(dist)
	if len(order) != n {
		return nil, ErrDimensionMismatch
	}
	seen := make([]bool, n)
	for _, c := range order {
		if c < 0 || c >= n || seen[c] {
			return nil, ErrDimensionMismatch
		}
		seen[c] = true
	}
	t := &Tour{Dist: dist, Order: append([]int(nil), order...)}
	cost, err := t.recompute()
	if err != nil {
		return nil, err
	}
	t.cost = cost
	return t, nil
}

// recompute sums the cycle's edge weights, rejecting +Inf edges (no route)
// the way tsp/cost.go's TourCost does.
func (t *Tour) recompute() (float64, error) {
	n := len(t.Order)
	var sum float64
	for i := 0; i < n; i++ {
		u := t.Order[i]
		v := t.Order[(i+1)%n]
		w := t.Dist[u][v]
		if math.IsInf(w, 0) {
			return 0, ErrIncompleteGraph
		}
		sum += w
	}
	return round1e9(sum), nil
}

// Objective implements palns.Solution: total cycle length, lower is better.
func (t *Tour) Objective() float64 { return t.cost }

// Clone implements palns.Solution with an independent copy of Order so that
// destroy/repair operators may mutate their working copy freely (spec's
// "destroy/repair operate on a private clone" contract).
func (t *Tour) Clone() palns.Solution {
	return &Tour{
		Dist:    t.Dist,
		Order:   append([]int(nil), t.Order...),
		Removed: append([]int(nil), t.Removed...),
		cost:    t.cost,
	}
}
