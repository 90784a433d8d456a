package priority

import (
	"math"
	"testing"
	"time"
)

const epsilon = 1e-9

func f(v float64) *float64 { return &v }

func newTestEngine(t *testing.T) *Engine {
	t.Helper()
	e, err := NewEngine(Config{})
	if err != nil {
		t.Fatalf("NewEngine: %v", err)
	}
	return e
}

func TestNewEngine_RejectsBadWeights(t *testing.T) {
	missing := BandWeights{
		BandBeginner: {Frequency: 1},
	}
	if _, err := NewEngine(Config{Weights: missing}); err == nil {
		t.Error("expected error for missing bands")
	}

	unnormalized := DefaultBandWeights()
	unnormalized[BandAdvanced] = WeightTable{Frequency: 0.5, Relational: 0.5, Contextual: 0.5}
	if _, err := NewEngine(Config{Weights: unnormalized}); err == nil {
		t.Error("expected error for weights not summing to 1")
	}
}

func TestScore_HigherValueWins(t *testing.T) {
	// Identical cost, strictly higher value metrics: priority must be
	// strictly higher.
	e := newTestEngine(t)
	now := time.Now()

	low := Item{Difficulty: 0, Metrics: ItemMetrics{Frequency: f(0.2), Relational: f(0.2), Contextual: f(0.2), TransferGain: f(0.5)}}
	high := Item{Difficulty: 0, Metrics: ItemMetrics{Frequency: f(0.9), Relational: f(0.9), Contextual: f(0.9), TransferGain: f(0.5)}}

	lowRec := e.Score(low, 0, BandIntermediate, now)
	highRec := e.Score(high, 0, BandIntermediate, now)

	if !(highRec.CostScore == lowRec.CostScore) {
		t.Fatalf("costs differ: %f vs %f", highRec.CostScore, lowRec.CostScore)
	}
	if highRec.Priority <= lowRec.Priority {
		t.Errorf("priority %f not above %f for higher value", highRec.Priority, lowRec.Priority)
	}
}

func TestScore_MissingMetricsDefaultToMidpoint(t *testing.T) {
	e := newTestEngine(t)
	now := time.Now()

	missing := e.Score(Item{Difficulty: 0}, 0, BandBeginner, now)
	explicit := e.Score(Item{
		Difficulty: 0,
		Metrics:    ItemMetrics{Frequency: f(0.5), Relational: f(0.5), Contextual: f(0.5), TransferGain: f(0.5)},
	}, 0, BandBeginner, now)

	if math.Abs(missing.FinalScore-explicit.FinalScore) > epsilon {
		t.Errorf("missing metrics scored %f, explicit midpoints %f", missing.FinalScore, explicit.FinalScore)
	}
}

func TestScore_BandShiftsValue(t *testing.T) {
	e := newTestEngine(t)
	now := time.Now()

	// High-frequency, low-context item: worth more to a beginner.
	item := Item{Difficulty: 0, Metrics: ItemMetrics{Frequency: f(1.0), Relational: f(0.3), Contextual: f(0.1)}}

	beginner := e.Score(item, 0, BandBeginner, now)
	advanced := e.Score(item, 0, BandAdvanced, now)
	if beginner.ValueScore <= advanced.ValueScore {
		t.Errorf("beginner value %f not above advanced %f for a frequency-heavy item",
			beginner.ValueScore, advanced.ValueScore)
	}
}

func TestCostScore_FloorAndAbilityGap(t *testing.T) {
	e := newTestEngine(t)
	now := time.Now()

	// Easy item with full transfer benefit bottoms out at the floor.
	free := e.Score(Item{
		Difficulty: -3,
		Metrics:    ItemMetrics{TransferGain: f(1.0)},
	}, 2, BandIntermediate, now)
	if free.CostScore != costFloor {
		t.Errorf("CostScore = %f, want floor %g", free.CostScore, costFloor)
	}

	// A larger gap between item difficulty and ability raises cost.
	hardForLearner := e.Score(Item{Difficulty: 2, Metrics: ItemMetrics{TransferGain: f(0.5)}}, -2, BandIntermediate, now)
	matched := e.Score(Item{Difficulty: 2, Metrics: ItemMetrics{TransferGain: f(0.5)}}, 2, BandIntermediate, now)
	if hardForLearner.CostScore <= matched.CostScore {
		t.Errorf("cost %f for mismatched ability not above %f for matched",
			hardForLearner.CostScore, matched.CostScore)
	}
}

func TestUrgency(t *testing.T) {
	e := newTestEngine(t)
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	t.Run("no due date", func(t *testing.T) {
		if got := e.Urgency(nil, now); got != 1.5 {
			t.Errorf("Urgency(nil) = %f, want 1.5", got)
		}
	})

	t.Run("overdue 48 hours", func(t *testing.T) {
		due := now.Add(-48 * time.Hour)
		if got := e.Urgency(&due, now); math.Abs(got-2.0) > epsilon {
			t.Errorf("Urgency(overdue 2d) = %f, want exactly 2.0", got)
		}
	})

	t.Run("capped at 3", func(t *testing.T) {
		due := now.AddDate(0, 0, -30)
		if got := e.Urgency(&due, now); got != 3.0 {
			t.Errorf("Urgency(overdue 30d) = %f, want cap 3.0", got)
		}
	})

	t.Run("due exactly now", func(t *testing.T) {
		due := now
		if got := e.Urgency(&due, now); math.Abs(got-1.0) > epsilon {
			t.Errorf("Urgency(due now) = %f, want 1.0", got)
		}
	})

	t.Run("not due decays toward floor", func(t *testing.T) {
		soon := now.Add(12 * time.Hour)
		farOut := now.Add(21 * 24 * time.Hour)

		nearUrgency := e.Urgency(&soon, now)
		farUrgency := e.Urgency(&farOut, now)

		if nearUrgency <= farUrgency {
			t.Errorf("urgency should rise as due approaches: near %f, far %f", nearUrgency, farUrgency)
		}
		if farUrgency != 0.1 {
			t.Errorf("far-out urgency = %f, want floor 0.1", farUrgency)
		}
	})

	t.Run("bounded", func(t *testing.T) {
		for _, hours := range []float64{-2000, -100, -1, 0, 1, 100, 2000} {
			due := now.Add(time.Duration(hours * float64(time.Hour)))
			u := e.Urgency(&due, now)
			if u < 0 || u > 3 {
				t.Errorf("Urgency at %+.0fh = %f outside [0, 3]", hours, u)
			}
		}
	})
}

func TestFinalScore_Multiplicative(t *testing.T) {
	e := newTestEngine(t)
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	overdue := now.Add(-48 * time.Hour)
	rec := e.Score(Item{Difficulty: 0, Due: &overdue}, 0, BandIntermediate, now)

	want := rec.Priority * (1 + rec.Urgency)
	if math.Abs(rec.FinalScore-want) > epsilon {
		t.Errorf("FinalScore = %f, want priority*(1+urgency) = %f", rec.FinalScore, want)
	}

	// Urgency boosts but cannot let a low-value stale item beat a
	// high-value fresh one across the cap.
	lowStale := e.Score(Item{
		Difficulty: 0,
		Due:        &overdue,
		Metrics:    ItemMetrics{Frequency: f(0.05), Relational: f(0.05), Contextual: f(0.05), TransferGain: f(0.5)},
	}, 0, BandIntermediate, now)
	freshDue := now
	highFresh := e.Score(Item{
		Difficulty: 0,
		Due:        &freshDue,
		Metrics:    ItemMetrics{Frequency: f(0.95), Relational: f(0.95), Contextual: f(0.95), TransferGain: f(0.5)},
	}, 0, BandIntermediate, now)

	if lowStale.FinalScore >= highFresh.FinalScore {
		t.Errorf("stale low-value item (%f) outranked fresh high-value item (%f)",
			lowStale.FinalScore, highFresh.FinalScore)
	}
}
