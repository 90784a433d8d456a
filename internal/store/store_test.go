package store

import (
	"context"
	"encoding/json"
	"testing"
	"time"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so journal_mode is only meaningful with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestSnapshotSaveAndLatest(t *testing.T) {
	s := openTestStore(t)
	repo := s.SnapshotRepo()
	ctx := context.Background()

	// No snapshot yet.
	snap, err := repo.Latest(ctx, "learner-1")
	if err != nil {
		t.Fatalf("latest (empty): %v", err)
	}
	if snap != nil {
		t.Fatal("expected nil snapshot when none exist")
	}

	now := time.Now().UTC().Truncate(time.Second)
	err = repo.Save(ctx, &Snapshot{
		LearnerID: "learner-1",
		Sequence:  42,
		Timestamp: now,
		Data:      json.RawMessage(`{"band":"beginner"}`),
	})
	if err != nil {
		t.Fatalf("save: %v", err)
	}

	snap, err = repo.Latest(ctx, "learner-1")
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if snap == nil {
		t.Fatal("expected non-nil snapshot")
	}
	if snap.Sequence != 42 {
		t.Errorf("sequence = %d, want 42", snap.Sequence)
	}
	var decoded map[string]any
	if err := json.Unmarshal(snap.Data, &decoded); err != nil {
		t.Fatalf("decode data: %v", err)
	}
	if decoded["band"] != "beginner" {
		t.Errorf("data.band = %v, want beginner", decoded["band"])
	}

	// Other learners never see it.
	snap, err = repo.Latest(ctx, "learner-2")
	if err != nil {
		t.Fatalf("latest (other learner): %v", err)
	}
	if snap != nil {
		t.Fatal("snapshot leaked across learners")
	}
}

func TestSnapshotLatestReturnsNewest(t *testing.T) {
	s := openTestStore(t)
	repo := s.SnapshotRepo()
	ctx := context.Background()

	base := time.Now().UTC().Truncate(time.Second)
	for i := 0; i < 3; i++ {
		err := repo.Save(ctx, &Snapshot{
			LearnerID: "learner-1",
			Sequence:  int64(i + 1),
			Timestamp: base.Add(time.Duration(i) * time.Minute),
			Data:      json.RawMessage(`{}`),
		})
		if err != nil {
			t.Fatalf("save %d: %v", i, err)
		}
	}

	snap, err := repo.Latest(ctx, "learner-1")
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if snap.Sequence != 3 {
		t.Errorf("sequence = %d, want 3", snap.Sequence)
	}
}

func TestSnapshotPrune(t *testing.T) {
	s := openTestStore(t)
	repo := s.SnapshotRepo()
	ctx := context.Background()

	base := time.Now().UTC().Truncate(time.Second)
	for i := 0; i < 7; i++ {
		err := repo.Save(ctx, &Snapshot{
			LearnerID: "learner-1",
			Sequence:  int64(i + 1),
			Timestamp: base.Add(time.Duration(i) * time.Minute),
			Data:      json.RawMessage(`{}`),
		})
		if err != nil {
			t.Fatalf("save %d: %v", i, err)
		}
	}

	if err := repo.Prune(ctx, "learner-1", 5); err != nil {
		t.Fatalf("prune: %v", err)
	}

	count, err := s.Client().Snapshot.Query().Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 5 {
		t.Errorf("remaining snapshots = %d, want 5", count)
	}

	snap, err := repo.Latest(ctx, "learner-1")
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if snap.Sequence != 7 {
		t.Errorf("latest sequence = %d, want 7", snap.Sequence)
	}
}

func TestSnapshotPruneWithFewerThanKeep(t *testing.T) {
	s := openTestStore(t)
	repo := s.SnapshotRepo()
	ctx := context.Background()

	base := time.Now().UTC().Truncate(time.Second)
	for i := 0; i < 2; i++ {
		err := repo.Save(ctx, &Snapshot{
			LearnerID: "learner-1",
			Sequence:  int64(i + 1),
			Timestamp: base.Add(time.Duration(i) * time.Minute),
			Data:      json.RawMessage(`{}`),
		})
		if err != nil {
			t.Fatalf("save %d: %v", i, err)
		}
	}

	// Prune with keep=5 should be a no-op.
	if err := repo.Prune(ctx, "learner-1", 5); err != nil {
		t.Fatalf("prune: %v", err)
	}

	count, err := s.Client().Snapshot.Query().Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 2 {
		t.Errorf("remaining snapshots = %d, want 2", count)
	}
}

func TestSequenceCounter(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	seq, err := newSequenceCounter(s.DB())
	if err != nil {
		t.Fatalf("new counter: %v", err)
	}

	var prev int64
	for i := 0; i < 5; i++ {
		n, err := seq.Next(ctx)
		if err != nil {
			t.Fatalf("next %d: %v", i, err)
		}
		if i > 0 && n != prev+1 {
			t.Errorf("sequence %d after %d, want strictly increasing by 1", n, prev)
		}
		prev = n
	}
}

func TestEventAppendAndQuery(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	reviews := []ReviewEventData{
		{LearnerID: "l1", ItemID: "w1", Dimension: "vocabulary", Rating: "good", Correct: true, Stability: 2.3, Difficulty: 5, State: "review"},
		{LearnerID: "l1", ItemID: "w2", Dimension: "vocabulary", Rating: "again", Correct: false, Stability: 0.5, Difficulty: 6, State: "relearning"},
		{LearnerID: "l2", ItemID: "w1", Dimension: "grammar", Rating: "easy", Correct: true, CueUsed: false, Stability: 8.1, Difficulty: 3, State: "review"},
	}
	for i, rd := range reviews {
		if err := repo.AppendReview(ctx, rd); err != nil {
			t.Fatalf("append review %d: %v", i, err)
		}
	}

	obs, err := repo.ReviewObservations(ctx)
	if err != nil {
		t.Fatalf("observations: %v", err)
	}
	if len(obs) != 3 {
		t.Fatalf("got %d observations, want 3", len(obs))
	}
	if obs[0].ItemID != "w1" || obs[1].ItemID != "w2" {
		t.Error("observations not in append order")
	}

	acc, n, err := repo.ItemAccuracy(ctx, "w1")
	if err != nil {
		t.Fatalf("item accuracy: %v", err)
	}
	if n != 2 || acc != 1.0 {
		t.Errorf("accuracy = %f over %d, want 1.0 over 2", acc, n)
	}

	when, err := repo.LatestReviewTime(ctx, "l1")
	if err != nil {
		t.Fatalf("latest review time: %v", err)
	}
	if when.IsZero() {
		t.Error("expected non-zero latest review time")
	}
	none, err := repo.LatestReviewTime(ctx, "nobody")
	if err != nil {
		t.Fatalf("latest review time (none): %v", err)
	}
	if !none.IsZero() {
		t.Error("expected zero time for learner with no reviews")
	}
}

func TestAbilityTrajectory(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	thetas := []float64{-0.2, 0.1, 0.4}
	for i, th := range thetas {
		err := repo.AppendAbility(ctx, AbilityEventData{
			LearnerID:     "l1",
			Dimension:     "vocabulary",
			Theta:         th,
			StdErr:        1.0 - float64(i)*0.1,
			ResponseCount: i + 1,
		})
		if err != nil {
			t.Fatalf("append ability %d: %v", i, err)
		}
	}

	traj, err := repo.AbilityTrajectory(ctx, "l1", "vocabulary")
	if err != nil {
		t.Fatalf("trajectory: %v", err)
	}
	if len(traj) != 3 {
		t.Fatalf("got %d events, want 3", len(traj))
	}
	for i, th := range thetas {
		if traj[i].Theta != th {
			t.Errorf("theta[%d] = %f, want %f", i, traj[i].Theta, th)
		}
	}

	other, err := repo.AbilityTrajectory(ctx, "l1", "grammar")
	if err != nil {
		t.Fatalf("trajectory (other dim): %v", err)
	}
	if len(other) != 0 {
		t.Error("trajectory leaked across dimensions")
	}
}

func TestCalibrationAndSessionEvents(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	err := repo.AppendCalibration(ctx, CalibrationEventData{
		LearnerCount:  4,
		ItemCount:     20,
		ResponseCount: 300,
		Iterations:    12,
		Converged:     true,
	})
	if err != nil {
		t.Fatalf("append calibration: %v", err)
	}

	err = repo.AppendSession(ctx, SessionEventData{
		LearnerID:      "l1",
		SessionID:      "s1",
		Action:         "finish",
		ItemsServed:    20,
		CorrectAnswers: 15,
		NewItems:       6,
		DurationSecs:   480,
	})
	if err != nil {
		t.Fatalf("append session: %v", err)
	}

	if n, err := s.Client().CalibrationEvent.Query().Count(ctx); err != nil || n != 1 {
		t.Errorf("calibration events = %d (%v), want 1", n, err)
	}
	if n, err := s.Client().SessionEvent.Query().Count(ctx); err != nil || n != 1 {
		t.Errorf("session events = %d (%v), want 1", n, err)
	}
}
