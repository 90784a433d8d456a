package mastery

import "testing"

func TestRecord_UpdateRecomputesStage(t *testing.T) {
	rec := NewRecord("item-1")
	if rec.Stage != StageUnknown || rec.CueLevel() != 3 {
		t.Fatalf("fresh record: stage %v, cue level %d; want unknown, 3", rec.Stage, rec.CueLevel())
	}

	// A run of correct cue-free answers with decent stability climbs the
	// stages without ever touching them directly.
	for i := 0; i < 6; i++ {
		rec = rec.Update(true, false, 12)
	}
	if rec.Stage != StageProficient {
		t.Errorf("stage after streak = %v, want proficient", rec.Stage)
	}
}

func TestRecord_UpdateDoesNotMutateInput(t *testing.T) {
	rec := NewRecord("item-1")
	rec.Update(true, false, 5)
	if rec.Averages.Exposures != 0 || rec.Stage != StageUnknown {
		t.Error("input record was mutated")
	}
}

func TestRecord_StageRegression(t *testing.T) {
	rec := NewRecord("item-1")
	for i := 0; i < 6; i++ {
		rec = rec.Update(true, false, 12)
	}
	if rec.Stage < StageProficient {
		t.Fatalf("precondition: stage = %v, want proficient", rec.Stage)
	}

	// A failure streak with collapsed stability regresses the stage.
	// Stages are derived, so regression needs no special casing.
	for i := 0; i < 8; i++ {
		rec = rec.Update(false, false, 0.5)
	}
	if rec.Stage >= StageProficient {
		t.Errorf("stage after failure streak = %v, want regression below proficient", rec.Stage)
	}
}
