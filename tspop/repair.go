package tspop

import (
	"context"
	"math"

	"github.com/katalvlaran/palns"
)

// drainRemoved reinserts every pending city on t.Removed at its cheapest
// position, regardless of which destroy operator put them there. Every
// repair operator calls this first, so that any destroy/repair pairing the
// engine tries leaves a full, feasible tour (spec's adaptive pairing allows
// any destroy index to combine with any repair index).
func drainRemoved(t *Tour) {
	for _, c := range t.Removed {
		insertCheapest(t, c)
	}
	t.Removed = nil
}

// CheapestInsertionRepair returns a palns.RepairFunc that reinserts every
// city pending on Tour.Removed, each at the position along the current tour
// that adds the least cost.
func CheapestInsertionRepair() palns.RepairFunc {
	return func(ctx context.Context, s palns.Solution) (palns.Solution, error) {
		t := s.(*Tour)
		drainRemoved(t)
		cost, err := t.recompute()
		if err != nil {
			return nil, err
		}
		t.cost = cost
		return t, nil
	}
}

// insertCheapest inserts city c at the position in t.Order that minimizes the
// added edge cost, breaking the single edge it is spliced into.
func insertCheapest(t *Tour, c int) {
	n := len(t.Order)
	if n == 0 {
		t.Order = []int{c}
		return
	}
	bestPos := 0
	bestDelta := math.Inf(1)
	for i := 0; i < n; i++ {
		u := t.Order[i]
		v := t.Order[(i+1)%n]
		delta := t.Dist[u][c] + t.Dist[c][v] - t.Dist[u][v]
		if delta < bestDelta {
			bestDelta, bestPos = delta, i+1
		}
	}
	t.Order = append(t.Order[:bestPos:bestPos], append([]int{c}, t.Order[bestPos:]...)...)
}

// TwoOptRepair returns a palns.RepairFunc that runs deterministic
// first-improvement 2-opt to a local optimum, adapted from tsp/two_opt.go's
// symmetric reversal move. maxMoves bounds the number of accepted moves (0 =
// unlimited), matching Options.TwoOptMaxIters's role as a safety valve rather
// than a stopping criterion.
func TwoOptRepair(eps float64, maxMoves int) palns.RepairFunc {
	return func(ctx context.Context, s palns.Solution) (palns.Solution, error) {
		t := s.(*Tour)
		drainRemoved(t)
		n := len(t.Order)
		if n < 4 {
			cost, err := t.recompute()
			if err != nil {
				return nil, err
			}
			t.cost = cost
			return t, nil
		}

		accepted := 0
		for {
			improved := false
			for i := 0; i < n-1; i++ {
				for k := i + 1; k < n; k++ {
					a := t.Order[i]
					b := t.Order[(i+1)%n]
					c := t.Order[k]
					d := t.Order[(k+1)%n]
					if a == c || a == d || b == c {
						continue
					}
					delta := (t.Dist[a][c] + t.Dist[b][d]) - (t.Dist[a][b] + t.Dist[c][d])
					if delta < -eps {
						reverseSegment(t.Order, i+1, k)
						accepted++
						improved = true
						break
					}
				}
				if improved {
					break
				}
			}
			if !improved {
				break
			}
			if maxMoves > 0 && accepted >= maxMoves {
				break
			}
			if ctx.Err() != nil {
				break
			}
		}

		cost, err := t.recompute()
		if err != nil {
			return nil, err
		}
		t.cost = cost
		return t, nil
	}
}
