package engine

import (
	"strings"
	"testing"
	"time"

	"github.com/tomatokenizer-web/LOGOSproject-sub002/internal/ability"
	"github.com/tomatokenizer-web/LOGOSproject-sub002/internal/config"
	"github.com/tomatokenizer-web/LOGOSproject-sub002/internal/dimension"
	"github.com/tomatokenizer-web/LOGOSproject-sub002/internal/priority"
	"github.com/tomatokenizer-web/LOGOSproject-sub002/internal/spacedrep"
)

func TestSnapshotRoundTrip(t *testing.T) {
	e, err := New(config.Default())
	if err != nil {
		t.Fatal(err)
	}
	ls := NewLearner(priority.BandAdvanced, ability.Prior{Mean: 0.5, SD: 1.2})
	now := time.Date(2026, 5, 10, 8, 0, 0, 0, time.UTC)

	for i, id := range []string{"w1", "w2", "w3"} {
		resp := correctResponse(id, float64(i)-1, now.Add(time.Duration(i)*time.Minute))
		if _, err := e.ProcessResponse(ls, resp); err != nil {
			t.Fatal(err)
		}
	}

	data, err := ls.Export()
	if err != nil {
		t.Fatalf("Export: %v", err)
	}
	restored, warnings, err := Import(data)
	if err != nil {
		t.Fatalf("Import: %v", err)
	}
	if len(warnings) != 0 {
		t.Fatalf("clean snapshot produced warnings: %v", warnings)
	}

	if restored.LearnerID != ls.LearnerID {
		t.Error("learner id lost")
	}
	if restored.Band != ls.Band || restored.Prior != ls.Prior {
		t.Error("band or prior lost")
	}
	if restored.Abilities != ls.Abilities {
		t.Errorf("abilities = %+v, want %+v", restored.Abilities, ls.Abilities)
	}
	if len(restored.Memory) != 3 || len(restored.Mastery) != 3 {
		t.Errorf("records lost: %d memory, %d mastery", len(restored.Memory), len(restored.Mastery))
	}
	if len(restored.History[dimension.Vocabulary]) != 3 || len(restored.History[dimension.Global]) != 3 {
		t.Error("response history lost")
	}

	// The restored aggregate keeps working.
	if _, err := e.ProcessResponse(restored, correctResponse("w4", 0, now.Add(time.Hour))); err != nil {
		t.Fatalf("ProcessResponse on restored state: %v", err)
	}
}

func TestImport_NormalizesCorruptMemory(t *testing.T) {
	ls := NewLearner(priority.BandBeginner, ability.DefaultPrior())
	last := time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)
	ls.Memory["bad"] = spacedrep.MemoryRecord{
		ItemID:     "bad",
		Stability:  -2, // corrupt: must be clamped, not crash the loop
		Difficulty: 5,
		LastReview: &last,
		Due:        last.AddDate(0, 0, 5),
		State:      spacedrep.StateReview,
	}

	data, err := ls.Export()
	if err != nil {
		t.Fatal(err)
	}
	restored, warnings, err := Import(data)
	if err != nil {
		t.Fatalf("Import: %v", err)
	}
	if len(warnings) == 0 {
		t.Fatal("corrupt stability imported without a warning")
	}
	if !strings.Contains(warnings[0], "bad") {
		t.Errorf("warning %q does not name the item", warnings[0])
	}
	if restored.Memory["bad"].Stability < spacedrep.MinStability {
		t.Errorf("stability = %f, want clamped to at least %g",
			restored.Memory["bad"].Stability, spacedrep.MinStability)
	}
}

func TestImport_RejectsGarbage(t *testing.T) {
	if _, _, err := Import([]byte("not json")); err == nil {
		t.Error("expected error for malformed snapshot")
	}
	if _, _, err := Import([]byte(`{"abilities": {"telekinesis": {"theta": 0}}}`)); err == nil {
		t.Error("expected error for unknown dimension name")
	}
}
