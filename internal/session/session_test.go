package session

import (
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/tomatokenizer-web/LOGOSproject-sub002/internal/queue"
)

func testSlice() []queue.Entry {
	return []queue.Entry{
		{ItemID: "a", FinalScore: 3},
		{ItemID: "b", FinalScore: 2, New: true},
		{ItemID: "c", FinalScore: 1},
	}
}

func TestSessionLifecycle(t *testing.T) {
	start := time.Date(2026, 6, 1, 9, 0, 0, 0, time.UTC)
	s := Start(uuid.New(), testSlice(), start)

	results := []bool{true, false, true}
	for i, correct := range results {
		entry, ok := s.Current()
		if !ok {
			t.Fatalf("slice exhausted at %d", i)
		}
		if entry.ItemID != testSlice()[i].ItemID {
			t.Errorf("entry %d = %s, want %s", i, entry.ItemID, testSlice()[i].ItemID)
		}
		s.RecordResult(correct)
	}

	if !s.Done() {
		t.Error("session should be done after serving every entry")
	}
	if _, ok := s.Current(); ok {
		t.Error("Current should report exhaustion when done")
	}

	sum := s.Summarize(start.Add(5 * time.Minute))
	if sum.Served != 3 || sum.Correct != 2 || sum.NewItems != 1 {
		t.Errorf("summary = %+v, want 3 served, 2 correct, 1 new", sum)
	}
	if sum.Accuracy != 2.0/3.0 {
		t.Errorf("accuracy = %f, want 2/3", sum.Accuracy)
	}
	if sum.Duration != 5*time.Minute {
		t.Errorf("duration = %s, want 5m", sum.Duration)
	}
}

func TestRecordResultPastEnd(t *testing.T) {
	s := Start(uuid.New(), nil, time.Now())
	s.RecordResult(true) // no-op
	if s.Served() != 0 {
		t.Errorf("served = %d, want 0", s.Served())
	}
}

func TestEventData(t *testing.T) {
	start := time.Date(2026, 6, 1, 9, 0, 0, 0, time.UTC)
	learner := uuid.New()
	s := Start(learner, testSlice(), start)
	s.RecordResult(true)

	data := s.EventData(ActionAbandon, start.Add(90*time.Second))
	if data.LearnerID != learner.String() {
		t.Error("learner id not propagated")
	}
	if data.Action != ActionAbandon {
		t.Errorf("action = %s, want abandon", data.Action)
	}
	if data.ItemsServed != 1 || data.DurationSecs != 90 {
		t.Errorf("served = %d duration = %d, want 1 and 90", data.ItemsServed, data.DurationSecs)
	}
}

func TestEmptySliceIsImmediatelyDone(t *testing.T) {
	s := Start(uuid.New(), nil, time.Now())
	if !s.Done() {
		t.Error("empty session should start done")
	}
	sum := s.Summarize(time.Now())
	if sum.Accuracy != 0 {
		t.Errorf("accuracy = %f, want 0 with no answers", sum.Accuracy)
	}
}
