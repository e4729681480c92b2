// acceptance.go — the simulated-annealing acceptance oracle (spec §4.2).
package palns

import "math"

// classify classifies candidate relative to incumbent under temperature t,
// precision tolerance eps, and uniform draw u in [0,1):
//
//  1. If incumbent.Objective()-candidate.Objective() > eps: BetterThanCurrent.
//  2. Otherwise let delta = candidate.Objective()-incumbent.Objective()
//     (non-negative within eps); p = exp(-delta/t). Accepted if u <= p, else
//     Rejected.
//
// t starts > 0 (New rejects T0 <= 0) and worker.go multiplies it by alpha in
// (0,1) every iteration. In float64 that product can underflow to exactly 0
// after enough iterations when alpha is 0.5 or smaller.
//
// The eps tolerance absorbs float noise from operators that may return
// numerically-equivalent solutions (spec §4.2's design note). delta <= 0 is
// accepted without evaluating exp(-delta/t) (for t > 0 that gives p >= 1
// anyway), so strictly-equal candidates are always accepted, even at t == 0.
func classify(incumbent, candidate Solution, t, eps, u float64) Classification {
	improvement := incumbent.Objective() - candidate.Objective()
	if improvement > eps {
		return BetterThanCurrent
	}
	delta := candidate.Objective() - incumbent.Objective()
	if delta <= 0 {
		return Accepted
	}
	p := math.Exp(-delta / t)
	if u <= p {
		return Accepted
	}
	return Rejected
}
