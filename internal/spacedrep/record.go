package spacedrep

import (
	"fmt"
	"math"
	"time"
)

// State is an item's position in the review lifecycle.
// Invariant: State == StateNew exactly when LastReview is nil.
type State string

const (
	StateNew        State = "new"
	StateLearning   State = "learning"
	StateReview     State = "review"
	StateRelearning State = "relearning"
)

// IsValid reports whether s is one of the four defined states.
func (s State) IsValid() bool {
	switch s {
	case StateNew, StateLearning, StateReview, StateRelearning:
		return true
	}
	return false
}

// MemoryRecord is the per (learner, item) memory state under the
// exponential forgetting-curve model.
type MemoryRecord struct {
	ItemID      string     `json:"item_id"`
	Stability   float64    `json:"stability"`  // days, > 0 once reviewed
	Difficulty  float64    `json:"difficulty"` // 1-10 scale
	LastReview  *time.Time `json:"last_review"`
	Due         time.Time  `json:"due"`
	Repetitions int        `json:"repetitions"`
	Lapses      int        `json:"lapses"`
	State       State      `json:"state"`
}

// NewRecord creates a record for an item with no exposure yet.
func NewRecord(itemID string) MemoryRecord {
	return MemoryRecord{ItemID: itemID, State: StateNew}
}

// Retrievability returns the modeled recall probability at the given
// time: exp(−elapsedDays/stability). A never-reviewed record has no
// memory trace and returns 0.
func (r MemoryRecord) Retrievability(now time.Time) float64 {
	if r.LastReview == nil || r.Stability <= 0 {
		return 0
	}
	elapsed := now.Sub(*r.LastReview).Hours() / 24.0
	if elapsed < 0 {
		elapsed = 0
	}
	return math.Exp(-elapsed / r.Stability)
}

// IsDue reports whether the record is at or past its due date.
// A never-reviewed record is always due.
func (r MemoryRecord) IsDue(now time.Time) bool {
	if r.LastReview == nil {
		return true
	}
	return !now.Before(r.Due)
}

// OverdueDays returns how many days past due the record is, or 0.
func (r MemoryRecord) OverdueDays(now time.Time) float64 {
	if r.LastReview == nil || now.Before(r.Due) {
		return 0
	}
	return now.Sub(r.Due).Hours() / 24.0
}

// Normalize repairs out-of-range persisted state in place, clamping each
// field to its nearest valid value, and returns one warning per repair.
// Bad storage data must not crash the live scheduling loop, but the
// repairs need operational visibility.
func (r *MemoryRecord) Normalize() []string {
	var warnings []string

	if r.LastReview != nil && r.Stability < MinStability {
		warnings = append(warnings, fmt.Sprintf("item %s: stability %f clamped to %g", r.ItemID, r.Stability, MinStability))
		r.Stability = MinStability
	}
	if r.LastReview != nil && (r.Difficulty < 1 || r.Difficulty > 10) {
		warnings = append(warnings, fmt.Sprintf("item %s: difficulty %f clamped to [1, 10]", r.ItemID, r.Difficulty))
		r.Difficulty = clampDifficulty(r.Difficulty)
	}
	if r.Repetitions < 0 {
		warnings = append(warnings, fmt.Sprintf("item %s: negative repetition count %d reset", r.ItemID, r.Repetitions))
		r.Repetitions = 0
	}
	if r.Lapses < 0 {
		warnings = append(warnings, fmt.Sprintf("item %s: negative lapse count %d reset", r.ItemID, r.Lapses))
		r.Lapses = 0
	}
	if !r.State.IsValid() {
		warnings = append(warnings, fmt.Sprintf("item %s: unknown state %q reset", r.ItemID, r.State))
		if r.LastReview == nil {
			r.State = StateNew
		} else {
			r.State = StateReview
		}
	}

	// state = new iff never reviewed.
	if r.LastReview == nil && r.State != StateNew {
		warnings = append(warnings, fmt.Sprintf("item %s: state %q without a last review reset to new", r.ItemID, r.State))
		r.State = StateNew
	}
	if r.LastReview != nil && r.State == StateNew {
		warnings = append(warnings, fmt.Sprintf("item %s: reviewed record still marked new, promoted to review", r.ItemID))
		r.State = StateReview
	}

	return warnings
}
