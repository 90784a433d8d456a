package mastery

import (
	"math"
	"testing"
)

const epsilon = 1e-9

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < epsilon
}

func TestRecord_FirstResponseDominates(t *testing.T) {
	// Weight at zero exposures is 1, so the first response sets the
	// matching average outright.
	var a Averages
	a.Record(true, false)
	if !almostEqual(a.CueFree, 1.0) {
		t.Errorf("CueFree after first correct = %f, want 1.0", a.CueFree)
	}
	if a.CueAssisted != 0 {
		t.Errorf("CueAssisted touched by a cue-free response: %f", a.CueAssisted)
	}
	if a.Exposures != 1 {
		t.Errorf("Exposures = %d, want 1", a.Exposures)
	}
}

func TestRecord_MatchingTypeOnly(t *testing.T) {
	var a Averages
	a.Record(true, true)  // cue-assisted
	a.Record(false, true) // cue-assisted
	a.Record(true, false) // cue-free

	// The weight uses the shared exposure count, so the first cue-free
	// response lands with weight 1/(2·0.3+1) = 0.625, not 1.
	if !almostEqual(a.CueFree, 0.625) {
		t.Errorf("CueFree = %f, want 0.625 at the shared-count weight", a.CueFree)
	}
	if a.CueAssisted >= 1.0 || a.CueAssisted <= 0 {
		t.Errorf("CueAssisted = %f, want strictly between 0 and 1", a.CueAssisted)
	}
	if a.Exposures != 3 {
		t.Errorf("Exposures = %d, want 3", a.Exposures)
	}
}

func TestRecord_WeightShrinksWithExposure(t *testing.T) {
	// Second response carries weight 1/1.3; the average after
	// correct-then-incorrect is 1 - 1/1.3.
	var a Averages
	a.Record(true, false)
	a.Record(false, false)

	want := 1.0 - 1.0/1.3
	if !almostEqual(a.CueFree, want) {
		t.Errorf("CueFree = %f, want %f", a.CueFree, want)
	}
}

func TestRecord_StaysWithinUnitInterval(t *testing.T) {
	var a Averages
	pattern := []bool{true, true, false, true, false, false, true, true, true, false}
	for i, correct := range pattern {
		a.Record(correct, i%2 == 0)
		if a.CueFree < 0 || a.CueFree > 1 || a.CueAssisted < 0 || a.CueAssisted > 1 {
			t.Fatalf("step %d: averages left [0,1]: %f / %f", i, a.CueFree, a.CueAssisted)
		}
	}
}

func TestScaffoldingGap(t *testing.T) {
	a := Averages{CueFree: 0.5, CueAssisted: 0.8}
	if !almostEqual(a.ScaffoldingGap(), 0.3) {
		t.Errorf("gap = %f, want 0.3", a.ScaffoldingGap())
	}

	inverted := Averages{CueFree: 0.9, CueAssisted: 0.4}
	if inverted.ScaffoldingGap() != 0 {
		t.Errorf("inverted gap = %f, want 0", inverted.ScaffoldingGap())
	}
}
