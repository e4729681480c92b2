// selector.go — inverse-CDF operator-pair selection (spec §4.1).
package palns

// selectPair returns the smallest index i such that c[i] > u; if no such
// index exists (e.g. u == c[len(c)-1] == 1 due to rounding), it returns
// len(c)-1. c must be a valid, non-decreasing cumulative distribution with
// c[len(c)-1] == 1 (weight.go's recomputeLocked guarantees this).
//
// Strict-greater comparison, combined with the last-index fallback, ensures
// termination under any floating-point rounding of the cumulative sum (spec
// §4.1's rationale) without requiring c's last entry to compare exactly equal
// to 1 under every possible u.
//
// Complexity: O(P) linear scan. P is the number of destroy*repair pairs,
// expected small; a Fenwick-tree index is called out in spec §9 as an option
// for large P but is not needed at this scale.
func selectPair(c []float64, u float64) int {
	for i, ci := range c {
		if ci > u {
			return i
		}
	}
	return len(c) - 1
}
