package spacedrep

import "testing"

func TestDeriveRating(t *testing.T) {
	const fast = 3000

	tests := []struct {
		name    string
		outcome Outcome
		want    Rating
	}{
		{"incorrect", Outcome{Correct: false, LatencyMs: 1000}, Again},
		{"incorrect with cue", Outcome{Correct: false, CueUsed: true}, Again},
		{"correct with cue", Outcome{Correct: true, CueUsed: true, LatencyMs: 1000}, Hard},
		{"correct slow", Outcome{Correct: true, LatencyMs: 8000}, Good},
		{"correct fast", Outcome{Correct: true, LatencyMs: 1200}, Easy},
		{"correct at threshold", Outcome{Correct: true, LatencyMs: fast}, Easy},
		{"cue takes precedence over speed", Outcome{Correct: true, CueUsed: true, LatencyMs: 500}, Hard},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DeriveRating(tt.outcome, fast); got != tt.want {
				t.Errorf("DeriveRating = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRating_TextRoundTrip(t *testing.T) {
	for _, r := range []Rating{Again, Hard, Good, Easy} {
		text, err := r.MarshalText()
		if err != nil {
			t.Fatalf("MarshalText(%v): %v", r, err)
		}
		var back Rating
		if err := back.UnmarshalText(text); err != nil {
			t.Fatalf("UnmarshalText(%q): %v", text, err)
		}
		if back != r {
			t.Errorf("round trip %v -> %q -> %v", r, text, back)
		}
	}
}

func TestRating_Invalid(t *testing.T) {
	if Rating(0).IsValid() || Rating(5).IsValid() {
		t.Error("out-of-range ratings reported valid")
	}
	if _, err := Rating(9).MarshalText(); err == nil {
		t.Error("expected error marshaling invalid rating")
	}
	var r Rating
	if err := r.UnmarshalText([]byte("meh")); err == nil {
		t.Error("expected error for unknown rating name")
	}
}
