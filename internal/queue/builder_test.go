package queue

import (
	"fmt"
	"math"
	"reflect"
	"testing"
	"time"

	"github.com/tomatokenizer-web/LOGOSproject-sub002/internal/priority"
	"github.com/tomatokenizer-web/LOGOSproject-sub002/internal/spacedrep"
)

func f(v float64) *float64 { return &v }

func newTestBuilder(t *testing.T) *Builder {
	t.Helper()
	engine, err := priority.NewEngine(priority.Config{})
	if err != nil {
		t.Fatalf("NewEngine: %v", err)
	}
	return NewBuilder(engine)
}

func reviewedRecord(itemID string, due time.Time) spacedrep.MemoryRecord {
	last := due.AddDate(0, 0, -5)
	return spacedrep.MemoryRecord{
		ItemID:     itemID,
		Stability:  5,
		Difficulty: 5,
		LastReview: &last,
		Due:        due,
		State:      spacedrep.StateReview,
	}
}

func TestBuild_SortedDescending(t *testing.T) {
	b := newTestBuilder(t)
	now := time.Date(2026, 4, 1, 9, 0, 0, 0, time.UTC)

	candidates := []Candidate{
		{ItemID: "low", Metrics: priority.ItemMetrics{Frequency: f(0.1), Relational: f(0.1), Contextual: f(0.1)}},
		{ItemID: "high", Metrics: priority.ItemMetrics{Frequency: f(0.9), Relational: f(0.9), Contextual: f(0.9)}},
		{ItemID: "mid", Metrics: priority.ItemMetrics{Frequency: f(0.5), Relational: f(0.5), Contextual: f(0.5)}},
	}

	queue := b.Build(candidates, 0, priority.BandIntermediate, nil, now)
	if len(queue) != 3 {
		t.Fatalf("got %d entries, want 3", len(queue))
	}
	for i := 1; i < len(queue); i++ {
		if queue[i].FinalScore > queue[i-1].FinalScore {
			t.Fatalf("queue not sorted at %d: %f after %f", i, queue[i].FinalScore, queue[i-1].FinalScore)
		}
	}
	if queue[0].ItemID != "high" || queue[2].ItemID != "low" {
		t.Errorf("order = %s,%s,%s", queue[0].ItemID, queue[1].ItemID, queue[2].ItemID)
	}
}

func TestBuild_TiesKeepInputOrder(t *testing.T) {
	b := newTestBuilder(t)
	now := time.Now()

	// Identical candidates score identically; rank must follow input order.
	candidates := []Candidate{{ItemID: "a"}, {ItemID: "b"}, {ItemID: "c"}}
	queue := b.Build(candidates, 0, priority.BandIntermediate, nil, now)

	got := []string{queue[0].ItemID, queue[1].ItemID, queue[2].ItemID}
	if !reflect.DeepEqual(got, []string{"a", "b", "c"}) {
		t.Errorf("tie order = %v, want input order", got)
	}
}

func TestBuild_Deterministic(t *testing.T) {
	b := newTestBuilder(t)
	now := time.Date(2026, 4, 1, 9, 0, 0, 0, time.UTC)

	candidates := make([]Candidate, 40)
	memory := make(map[string]spacedrep.MemoryRecord)
	for i := range candidates {
		id := fmt.Sprintf("item-%02d", i)
		candidates[i] = Candidate{
			ItemID:     id,
			Difficulty: float64(i%9)/2.0 - 2,
			Metrics: priority.ItemMetrics{
				Frequency:  f(float64(i%11) / 10),
				Relational: f(float64(i%7) / 6),
			},
		}
		if i%3 == 0 {
			memory[id] = reviewedRecord(id, now.AddDate(0, 0, i%5-2))
		}
	}

	first := b.Build(candidates, 0.5, priority.BandAdvanced, memory, now)
	second := b.Build(candidates, 0.5, priority.BandAdvanced, memory, now)
	if !reflect.DeepEqual(first, second) {
		t.Error("two builds over identical inputs diverged")
	}
}

func TestBuild_MemoryStateSetsNewFlag(t *testing.T) {
	b := newTestBuilder(t)
	now := time.Now()

	memory := map[string]spacedrep.MemoryRecord{
		"seen":   reviewedRecord("seen", now.AddDate(0, 0, -1)),
		"unseen": spacedrep.NewRecord("unseen"),
	}
	queue := b.Build([]Candidate{{ItemID: "seen"}, {ItemID: "unseen"}, {ItemID: "absent"}},
		0, priority.BandBeginner, memory, now)

	flags := map[string]bool{}
	for _, e := range queue {
		flags[e.ItemID] = e.New
	}
	if flags["seen"] {
		t.Error("reviewed item flagged new")
	}
	if !flags["unseen"] || !flags["absent"] {
		t.Error("never-reviewed items must be flagged new")
	}
}

func sessionQueue(nDue, nNew int) []Entry {
	var entries []Entry
	for i := 0; i < nDue; i++ {
		entries = append(entries, Entry{ItemID: fmt.Sprintf("due-%d", i), FinalScore: float64(100 - i)})
	}
	for i := 0; i < nNew; i++ {
		entries = append(entries, Entry{ItemID: fmt.Sprintf("new-%d", i), FinalScore: float64(50 - i), New: true})
	}
	return entries
}

func TestSessionSlice_Mix(t *testing.T) {
	session := SessionSlice(sessionQueue(20, 20), 10, 0.3)
	if len(session) != 10 {
		t.Fatalf("got %d slots, want 10", len(session))
	}
	newCount := 0
	for _, e := range session {
		if e.New {
			newCount++
		}
	}
	if newCount != 3 {
		t.Errorf("new items = %d, want 3 of 10 at ratio 0.3", newCount)
	}
}

func TestSessionSlice_MixIsExactForDecimalRatios(t *testing.T) {
	// Summing a decimal ratio slot by slot rounds below the exact
	// product (0.3 ten times is just short of 3); the slice must still
	// land on round(ratio * size) new items.
	tests := []struct {
		size  int
		ratio float64
	}{
		{10, 0.3},
		{20, 0.3},
		{10, 0.1},
		{50, 0.2},
		{100, 0.7},
	}
	for _, tt := range tests {
		session := SessionSlice(sessionQueue(tt.size, tt.size), tt.size, tt.ratio)
		if len(session) != tt.size {
			t.Fatalf("size %d ratio %.1f: got %d slots", tt.size, tt.ratio, len(session))
		}
		newCount := 0
		for _, e := range session {
			if e.New {
				newCount++
			}
		}
		want := int(math.Round(tt.ratio * float64(tt.size)))
		if newCount != want {
			t.Errorf("size %d ratio %.1f: new items = %d, want %d", tt.size, tt.ratio, newCount, want)
		}
	}
}

func TestSessionSlice_RankOrderWithinKind(t *testing.T) {
	session := SessionSlice(sessionQueue(20, 20), 12, 0.5)
	lastDue, lastNew := -1.0, -1.0
	for _, e := range session {
		if e.New {
			if lastNew >= 0 && e.FinalScore > lastNew {
				t.Fatalf("new items out of rank order")
			}
			lastNew = e.FinalScore
		} else {
			if lastDue >= 0 && e.FinalScore > lastDue {
				t.Fatalf("due items out of rank order")
			}
			lastDue = e.FinalScore
		}
	}
}

func TestSessionSlice_GracefulExhaustion(t *testing.T) {
	t.Run("no new items", func(t *testing.T) {
		session := SessionSlice(sessionQueue(8, 0), 10, 0.3)
		if len(session) != 8 {
			t.Errorf("got %d, want all 8 due items", len(session))
		}
	})
	t.Run("no due items", func(t *testing.T) {
		session := SessionSlice(sessionQueue(0, 8), 10, 0.3)
		if len(session) != 8 {
			t.Errorf("got %d, want all 8 new items", len(session))
		}
	})
	t.Run("new exhausted mid-session", func(t *testing.T) {
		session := SessionSlice(sessionQueue(10, 1), 10, 0.5)
		if len(session) != 10 {
			t.Fatalf("got %d slots, want 10", len(session))
		}
		newCount := 0
		for _, e := range session {
			if e.New {
				newCount++
			}
		}
		if newCount != 1 {
			t.Errorf("new items = %d, want the single available one", newCount)
		}
	})
	t.Run("empty queue", func(t *testing.T) {
		if got := SessionSlice(nil, 10, 0.3); got != nil {
			t.Errorf("got %v, want nil", got)
		}
	})
	t.Run("zero size", func(t *testing.T) {
		if got := SessionSlice(sessionQueue(5, 5), 0, 0.3); got != nil {
			t.Errorf("got %v, want nil", got)
		}
	})
}
