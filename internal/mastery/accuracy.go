// Package mastery tracks per-item accuracy with recency-weighted moving
// averages and derives a discrete mastery stage from accuracy and memory
// stability. The stage is recomputed from scratch on every update, never
// incrementally mutated.
package mastery

// Averages holds the two recency-weighted accuracy trackers for one
// (learner, item) pair. Cue-free and cue-assisted accuracies are updated
// only by responses of the matching type.
type Averages struct {
	CueFree     float64 `json:"cue_free"`
	CueAssisted float64 `json:"cue_assisted"`
	Exposures   int     `json:"exposures"`
}

// Record folds one response into the matching accuracy average using the
// recency weight 1/(exposures·0.3+1). Early responses weigh more; this is
// intentional, so early signal dominates before the average stabilizes.
func (a *Averages) Record(correct, cueUsed bool) {
	w := 1.0 / (float64(a.Exposures)*0.3 + 1.0)
	x := 0.0
	if correct {
		x = 1.0
	}
	if cueUsed {
		a.CueAssisted += (x - a.CueAssisted) * w
	} else {
		a.CueFree += (x - a.CueFree) * w
	}
	a.Exposures++
}

// ScaffoldingGap is how much better the learner performs with cues than
// without: max(0, cueAssisted − cueFree).
func (a Averages) ScaffoldingGap() float64 {
	gap := a.CueAssisted - a.CueFree
	if gap < 0 {
		return 0
	}
	return gap
}
