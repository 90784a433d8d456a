package spacedrep

import (
	"math"
	"testing"
	"time"
)

func newTestScheduler(t *testing.T, cfg SchedulerConfig) *Scheduler {
	t.Helper()
	s, err := NewScheduler(cfg)
	if err != nil {
		t.Fatalf("NewScheduler: %v", err)
	}
	return s
}

func TestNewScheduler_Validation(t *testing.T) {
	if _, err := NewScheduler(SchedulerConfig{TargetRetention: 1.5}); err == nil {
		t.Error("expected error for retention > 1")
	}
	if _, err := NewScheduler(SchedulerConfig{MaximumInterval: -1}); err == nil {
		t.Error("expected error for negative maximum interval")
	}
	bad := DefaultWeights()
	bad.EasyBonus = 0.2
	if _, err := NewScheduler(SchedulerConfig{Weights: &bad}); err == nil {
		t.Error("expected error for out-of-bounds weights")
	}
}

func TestReview_FirstExposure(t *testing.T) {
	s := newTestScheduler(t, SchedulerConfig{})
	now := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

	rec, rating := s.Review(NewRecord("item-1"), Outcome{Correct: true, LatencyMs: 9000}, now)

	if rating != Good {
		t.Fatalf("rating = %v, want good", rating)
	}
	w := DefaultWeights()
	if rec.Stability != w.InitStability[Good-1] {
		t.Errorf("Stability = %f, want seed %f", rec.Stability, w.InitStability[Good-1])
	}
	if rec.Difficulty != w.InitDifficulty[Good-1] {
		t.Errorf("Difficulty = %f, want seed %f", rec.Difficulty, w.InitDifficulty[Good-1])
	}
	if rec.State != StateReview {
		t.Errorf("State = %q, want review", rec.State)
	}
	if rec.LastReview == nil || !rec.LastReview.Equal(now) {
		t.Error("LastReview not set to review time")
	}
	if rec.Repetitions != 1 || rec.Lapses != 0 {
		t.Errorf("counters = %d/%d, want 1/0", rec.Repetitions, rec.Lapses)
	}
}

func TestReview_InputNotMutated(t *testing.T) {
	s := newTestScheduler(t, SchedulerConfig{})
	now := time.Now()

	orig := NewRecord("item-1")
	s.Review(orig, Outcome{Correct: true, LatencyMs: 1000}, now)

	if orig.State != StateNew || orig.LastReview != nil || orig.Repetitions != 0 {
		t.Error("input record was mutated")
	}
}

func TestReview_SuccessGrowsStability(t *testing.T) {
	s := newTestScheduler(t, SchedulerConfig{})
	now := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

	rec := s.ReviewRated(NewRecord("item-1"), Good, now)
	seed := rec.Stability

	later := now.AddDate(0, 0, s.NextIntervalDays(seed))
	rec = s.ReviewRated(rec, Good, later)

	if rec.Stability <= seed {
		t.Errorf("stability %f did not grow from %f after successful recall", rec.Stability, seed)
	}
	if rec.State != StateReview {
		t.Errorf("State = %q, want review", rec.State)
	}
}

func TestReview_RatingOrderOnGrowth(t *testing.T) {
	// For the same starting record, Hard < Good < Easy stability growth.
	s := newTestScheduler(t, SchedulerConfig{})
	now := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

	base := s.ReviewRated(NewRecord("item-1"), Good, now)
	later := now.AddDate(0, 0, 3)

	hard := s.ReviewRated(base, Hard, later)
	good := s.ReviewRated(base, Good, later)
	easy := s.ReviewRated(base, Easy, later)

	if !(hard.Stability < good.Stability && good.Stability < easy.Stability) {
		t.Errorf("growth ordering violated: hard=%f good=%f easy=%f",
			hard.Stability, good.Stability, easy.Stability)
	}
	if easy.Difficulty >= base.Difficulty {
		t.Errorf("Easy should decrease difficulty: %f -> %f", base.Difficulty, easy.Difficulty)
	}
}

func TestReview_TenConsecutiveLapses(t *testing.T) {
	s := newTestScheduler(t, SchedulerConfig{})
	now := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

	rec := NewRecord("item-1")
	var peak float64
	for i := 0; i < 10; i++ {
		rec = s.ReviewRated(rec, Again, now)
		peak = math.Max(peak, rec.Stability)
		now = now.AddDate(0, 0, 1)
	}

	if rec.Lapses != 10 {
		t.Errorf("Lapses = %d, want 10", rec.Lapses)
	}
	if rec.State != StateRelearning {
		t.Errorf("State = %q, want relearning", rec.State)
	}
	if rec.Stability <= 0 {
		t.Errorf("Stability = %f, must stay positive", rec.Stability)
	}
	// Repeated failure keeps stability pinned near the short end of the
	// scale instead of growing toward review-grade intervals.
	if peak > 3 {
		t.Errorf("stability reached %f under constant failure, want it to stay small", peak)
	}
	if rec.Difficulty != 10 {
		t.Errorf("Difficulty = %f, want pinned at 10 after repeated failure", rec.Difficulty)
	}
}

func TestReview_BoundsAlwaysHold(t *testing.T) {
	s := newTestScheduler(t, SchedulerConfig{})
	now := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

	rec := NewRecord("item-1")
	ratings := []Rating{Good, Easy, Easy, Again, Hard, Good, Again, Easy, Good, Good, Again, Easy}
	for i, r := range ratings {
		rec = s.ReviewRated(rec, r, now)
		if rec.Stability < MinStability {
			t.Fatalf("step %d: stability %f below floor", i, rec.Stability)
		}
		if rec.Difficulty < 1 || rec.Difficulty > 10 {
			t.Fatalf("step %d: difficulty %f outside [1, 10]", i, rec.Difficulty)
		}
		if rec.State != StateReview && rec.State != StateRelearning {
			t.Fatalf("step %d: unexpected state %q", i, rec.State)
		}
		now = now.AddDate(0, 0, s.NextIntervalDays(rec.Stability))
	}
	if rec.Repetitions != len(ratings) {
		t.Errorf("Repetitions = %d, want %d", rec.Repetitions, len(ratings))
	}
}

func TestNextIntervalDays(t *testing.T) {
	// At the default 0.9 target retention the interval equals stability.
	s := newTestScheduler(t, SchedulerConfig{})
	if got := s.NextIntervalDays(5); got != 5 {
		t.Errorf("interval(S=5) = %d, want 5", got)
	}
	if got := s.NextIntervalDays(0.1); got != 1 {
		t.Errorf("interval floor = %d, want 1", got)
	}
	if got := s.NextIntervalDays(1e6); got != 36500 {
		t.Errorf("interval cap = %d, want 36500", got)
	}

	// A lower target retention allows longer intervals.
	relaxed := newTestScheduler(t, SchedulerConfig{TargetRetention: 0.8})
	if got := relaxed.NextIntervalDays(5); got <= 5 {
		t.Errorf("interval at 0.8 retention = %d, want > 5", got)
	}
}

func TestPreview_CoversAllRatings(t *testing.T) {
	s := newTestScheduler(t, SchedulerConfig{})
	now := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	rec := s.ReviewRated(NewRecord("item-1"), Good, now)

	preview := s.Preview(rec, now.AddDate(0, 0, 2))
	if len(preview) != 4 {
		t.Fatalf("preview size = %d, want 4", len(preview))
	}
	if preview[Again].State != StateRelearning {
		t.Error("Again preview should land in relearning")
	}
	if preview[Easy].Stability <= preview[Hard].Stability {
		t.Error("Easy preview should out-grow Hard preview")
	}
}
