package ability

import (
	"testing"

	"github.com/tomatokenizer-web/LOGOSproject-sub002/internal/irt"
)

func TestStrategy_TextRoundTrip(t *testing.T) {
	for _, s := range []Strategy{FisherInformation, KLDivergence} {
		text, err := s.MarshalText()
		if err != nil {
			t.Fatalf("MarshalText(%v): %v", s, err)
		}
		var back Strategy
		if err := back.UnmarshalText(text); err != nil {
			t.Fatalf("UnmarshalText(%q): %v", text, err)
		}
		if back != s {
			t.Errorf("round trip %v -> %q -> %v", s, text, back)
		}
	}

	var s Strategy
	if err := s.UnmarshalText([]byte("bogus")); err == nil {
		t.Error("expected error for unknown strategy name")
	}
}

func TestSelectNext_FisherPicksMatchedDifficulty(t *testing.T) {
	e := NewEstimator(Config{}, nil)
	est := Estimate{Theta: 1.0, StdErr: 0.4}

	candidates := []irt.ItemParameter{
		{ID: "far-low", Discrimination: 1.2, Difficulty: -2},
		{ID: "matched", Discrimination: 1.2, Difficulty: 1.0},
		{ID: "far-high", Discrimination: 1.2, Difficulty: 3.5},
	}

	got := e.SelectNext(FisherInformation, candidates, nil, est, DefaultPrior())
	if got != 1 {
		t.Errorf("SelectNext = %d (%s), want 1 (matched)", got, candidates[got].ID)
	}
}

func TestSelectNext_FisherPrefersDiscrimination(t *testing.T) {
	e := NewEstimator(Config{}, nil)
	est := Estimate{Theta: 0}

	candidates := []irt.ItemParameter{
		{ID: "flat", Discrimination: 0.5, Difficulty: 0},
		{ID: "sharp", Discrimination: 2.0, Difficulty: 0},
	}

	if got := e.SelectNext(FisherInformation, candidates, nil, est, DefaultPrior()); got != 1 {
		t.Errorf("SelectNext = %d, want 1 (sharp)", got)
	}
}

func TestSelectNext_KLAccountsForUncertainty(t *testing.T) {
	e := NewEstimator(Config{}, nil)
	prior := DefaultPrior()

	// Two responses only: wide posterior.
	responses := []Response{
		{Item: item(1.0, 0), Correct: true},
		{Item: item(1.0, 0.5), Correct: false},
	}
	est := e.EAP(responses, prior)

	candidates := []irt.ItemParameter{
		{ID: "near", Discrimination: 1.5, Difficulty: est.Theta},
		{ID: "off", Discrimination: 1.5, Difficulty: 3.8},
	}

	got := e.SelectNext(KLDivergence, candidates, responses, est, prior)
	if got != 0 {
		t.Errorf("SelectNext(KL) = %d (%s), want 0 (near)", got, candidates[got].ID)
	}
}

func TestSelectNext_Empty(t *testing.T) {
	e := NewEstimator(Config{}, nil)
	if got := e.SelectNext(FisherInformation, nil, nil, Estimate{}, DefaultPrior()); got != -1 {
		t.Errorf("SelectNext(empty) = %d, want -1", got)
	}
}
