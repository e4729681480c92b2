package tspop

import (
	"context"
	"math/rand"

	"github.com/katalvlaran/palns"
)

// These operators use math/rand's top-level functions rather than a private
// *rand.Rand: the engine runs every worker's destroy/repair calls
// concurrently with no lock held (by design, so the expensive transform
// step doesn't serialize workers), and the top-level math/rand functions are
// the only RNG in this package's call path safe to share across goroutines
// without a lock of its own.

// SegmentReversalDestroy returns a palns.DestroyFunc that reverses a random
// contiguous segment of the tour, the same move two_opt.go applies on accept
// but invoked unconditionally here as a perturbation rather than a local-
// search step. minLen/maxLen bound the segment length (inclusive).
func SegmentReversalDestroy(minLen, maxLen int) palns.DestroyFunc {
	return func(ctx context.Context, s palns.Solution) (palns.Solution, error) {
		t := s.(*Tour)
		n := len(t.Order)
		if n < 3 {
			return t, nil
		}
		length := minLen
		if maxLen > minLen {
			length = minLen + rand.Intn(maxLen-minLen+1)
		}
		if length > n {
			length = n
		}
		i := rand.Intn(n)
		j := (i + length - 1) % n
		reverseSegment(t.Order, i, j)
		cost, err := t.recompute()
		if err != nil {
			return nil, err
		}
		t.cost = cost
		return t, nil
	}
}

// reverseSegment reverses the cyclic segment [i..j] (inclusive, wrapping
// modulo len(order)) in place.
func reverseSegment(order []int, i, j int) {
	n := len(order)
	length := j - i
	if length < 0 {
		length += n
	}
	length++
	for k := 0; k < length/2; k++ {
		a := (i + k) % n
		b := (j - k + n) % n
		order[a], order[b] = order[b], order[a]
	}
}

// RandomRemovalDestroy returns a palns.DestroyFunc that removes count random
// cities from the tour and stashes them on Tour.Removed for a repair
// operator to reinsert (any repair operator — see Tour.Removed's doc comment
// for why this must not rely on a side channel shared across workers).
func RandomRemovalDestroy(count int) palns.DestroyFunc {
	return func(ctx context.Context, s palns.Solution) (palns.Solution, error) {
		t := s.(*Tour)
		n := len(t.Order)
		k := count
		if k > n-2 {
			k = n - 2
		}
		if k <= 0 {
			return t, nil
		}

		idx := rand.Perm(n)[:k]
		drop := make(map[int]bool, k)
		for _, i := range idx {
			drop[i] = true
		}

		kept := make([]int, 0, n-k)
		pulled := make([]int, 0, k)
		for i, c := range t.Order {
			if drop[i] {
				pulled = append(pulled, c)
			} else {
				kept = append(kept, c)
			}
		}

		t.Order = kept
		t.Removed = append(t.Removed, pulled...)
		return t, nil
	}
}
