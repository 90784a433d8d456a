package spacedrep

import (
	"math"
	"testing"
	"time"
)

func reviewedRecord(stability float64, lastReview time.Time) MemoryRecord {
	return MemoryRecord{
		ItemID:     "item-1",
		Stability:  stability,
		Difficulty: 5,
		LastReview: &lastReview,
		Due:        lastReview.AddDate(0, 0, int(stability)),
		State:      StateReview,
	}
}

func TestRetrievability_One_AtReviewTime(t *testing.T) {
	at := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	rec := reviewedRecord(10, at)

	if got := rec.Retrievability(at); math.Abs(got-1.0) > 1e-9 {
		t.Errorf("Retrievability(t=0) = %f, want 1.0", got)
	}
}

func TestRetrievability_AtStability(t *testing.T) {
	at := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	rec := reviewedRecord(10, at)

	// After exactly S days retrievability is 1/e.
	got := rec.Retrievability(at.Add(10 * 24 * time.Hour))
	if math.Abs(got-0.3679) > 1e-3 {
		t.Errorf("Retrievability(t=S) = %f, want ~0.3679", got)
	}
}

func TestRetrievability_StrictlyDecreasing(t *testing.T) {
	at := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	rec := reviewedRecord(6, at)

	prev := 2.0
	for d := 0; d <= 30; d++ {
		r := rec.Retrievability(at.Add(time.Duration(d) * 24 * time.Hour))
		if r >= prev {
			t.Fatalf("retrievability not strictly decreasing at day %d", d)
		}
		prev = r
	}
}

func TestRetrievability_NeverReviewed(t *testing.T) {
	rec := NewRecord("item-1")
	if got := rec.Retrievability(time.Now()); got != 0 {
		t.Errorf("Retrievability(new) = %f, want 0", got)
	}
}

func TestIsDueAndOverdue(t *testing.T) {
	at := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	rec := reviewedRecord(5, at)

	if rec.IsDue(at.AddDate(0, 0, 2)) {
		t.Error("record due before its due date")
	}
	if !rec.IsDue(rec.Due) {
		t.Error("record not due at its due date")
	}
	if got := rec.OverdueDays(rec.Due.AddDate(0, 0, 3)); math.Abs(got-3) > 1e-9 {
		t.Errorf("OverdueDays = %f, want 3", got)
	}
	if got := rec.OverdueDays(at); got != 0 {
		t.Errorf("OverdueDays before due = %f, want 0", got)
	}
}

func TestNormalize_RepairsBadState(t *testing.T) {
	at := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

	rec := MemoryRecord{
		ItemID:      "item-1",
		Stability:   -2,
		Difficulty:  14,
		LastReview:  &at,
		Repetitions: -1,
		Lapses:      -3,
		State:       State("zombie"),
	}

	warnings := rec.Normalize()
	if len(warnings) == 0 {
		t.Fatal("expected warnings for out-of-range persisted state")
	}
	if rec.Stability != MinStability {
		t.Errorf("Stability = %f, want floor %g", rec.Stability, MinStability)
	}
	if rec.Difficulty != 10 {
		t.Errorf("Difficulty = %f, want 10", rec.Difficulty)
	}
	if rec.Repetitions != 0 || rec.Lapses != 0 {
		t.Errorf("counters = %d/%d, want 0/0", rec.Repetitions, rec.Lapses)
	}
	if rec.State != StateReview {
		t.Errorf("State = %q, want review", rec.State)
	}
}

func TestNormalize_NewStateInvariant(t *testing.T) {
	// state must be new exactly when there is no last review.
	rec := MemoryRecord{ItemID: "a", State: StateReview}
	if w := rec.Normalize(); len(w) != 1 || rec.State != StateNew {
		t.Errorf("unreviewed record: state %q, %d warnings; want new, 1", rec.State, len(w))
	}

	at := time.Now()
	rec = MemoryRecord{ItemID: "b", Stability: 4, Difficulty: 5, LastReview: &at, State: StateNew}
	if w := rec.Normalize(); rec.State != StateReview || len(w) != 1 {
		t.Errorf("reviewed record: state %q, %d warnings; want review, 1", rec.State, len(w))
	}
}

func TestNormalize_CleanRecordUntouched(t *testing.T) {
	at := time.Now()
	rec := reviewedRecord(5, at)
	before := rec
	if w := rec.Normalize(); len(w) != 0 {
		t.Errorf("clean record produced warnings: %v", w)
	}
	if rec != before {
		t.Error("clean record mutated by Normalize")
	}
}
