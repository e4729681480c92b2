// weightlog.go — optional, pure formatting of the weight table (spec §6:
// "not part of the search contract"). Not used internally by the engine;
// callers may render diagnostics between or after a Solve call via
// Engine.WeightLog.
package palns

import (
	"fmt"
	"strings"
	"text/tabwriter"
)

// PairLabel names an operator pair for diagnostics. Destroy and Repair are
// the fixed destroy/repair indices that produced pair index
// Destroy*numRepair+Repair (spec §3's linearization).
type PairLabel struct {
	Destroy int
	Repair  int
}

// WeightLog renders a human-readable table of pair weights, their normalized
// share of the total (the implied selection probability), and the cumulative
// distribution value, for the most recent or in-progress Solve call. Returns
// an empty string if Solve has never been called.
//
// This is a pure function of a snapshot of W, taken under the weight lock; it
// performs no engine mutation, matching spec §6's characterization of the
// weight log as an optional formatting utility, not part of the search
// contract.
func (e *Engine) WeightLog(labels []PairLabel) string {
	e.mu.RLock()
	wt := e.weights
	e.mu.RUnlock()
	if wt == nil {
		return ""
	}
	return renderWeightLog(wt.weightsSnapshot(), labels, len(e.cfg.repair))
}

// renderWeightLog is the pure formatter behind Engine.WeightLog; kept
// separate so it can be exercised directly against a synthetic weight slice,
// without a full Engine/Solve round trip. Pairs without a label get their
// destroy/repair indices from the linearization k = d*numRepair + r.
func renderWeightLog(weights []float64, labels []PairLabel, numRepair int) string {
	var sum float64
	for _, w := range weights {
		sum += w
	}

	var b strings.Builder
	tw := tabwriter.NewWriter(&b, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "PAIR\tDESTROY\tREPAIR\tWEIGHT\tSHARE\tCUMUL")
	var running float64
	for i, w := range weights {
		var share float64
		if sum > 0 {
			share = w / sum
		}
		running += share
		d, r := i/numRepair, i%numRepair
		if i < len(labels) {
			d, r = labels[i].Destroy, labels[i].Repair
		}
		fmt.Fprintf(tw, "%d\t%d\t%d\t%.6f\t%.4f\t%.4f\n", i, d, r, w, share, running)
	}
	tw.Flush()
	return b.String()
}
