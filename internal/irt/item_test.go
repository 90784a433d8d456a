package irt

import (
	"errors"
	"math"
	"testing"
)

const epsilon = 1e-9

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < epsilon
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		item    ItemParameter
		wantErr error
	}{
		{"valid 2PL", ItemParameter{ID: "w1", Discrimination: 1.2, Difficulty: 0.5}, nil},
		{"valid 3PL", ItemParameter{ID: "w2", Discrimination: 0.8, Difficulty: -2, Guessing: 0.25}, nil},
		{"zero discrimination", ItemParameter{ID: "w3", Difficulty: 0}, ErrNonPositiveDiscrimination},
		{"negative discrimination", ItemParameter{ID: "w4", Discrimination: -1, Difficulty: 0}, ErrNonPositiveDiscrimination},
		{"difficulty too high", ItemParameter{ID: "w5", Discrimination: 1, Difficulty: 4.5}, ErrDifficultyOutOfRange},
		{"difficulty too low", ItemParameter{ID: "w6", Discrimination: 1, Difficulty: -4.5}, ErrDifficultyOutOfRange},
		{"guessing at ceiling", ItemParameter{ID: "w7", Discrimination: 1, Difficulty: 0, Guessing: 0.35}, ErrGuessingOutOfRange},
		{"guessing negative", ItemParameter{ID: "w8", Discrimination: 1, Difficulty: 0, Guessing: -0.1}, ErrGuessingOutOfRange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.item.Validate()
			if tt.wantErr == nil {
				if err != nil {
					t.Fatalf("Validate() = %v, want nil", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Validate() = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestProbability_AtDifficulty(t *testing.T) {
	// At theta = b a 2PL item gives exactly 0.5.
	item := ItemParameter{Discrimination: 1.7, Difficulty: 1.2}
	if got := item.Probability(1.2); !almostEqual(got, 0.5) {
		t.Errorf("Probability(b) = %f, want 0.5", got)
	}
}

func TestProbability_GuessingFloor(t *testing.T) {
	item := ItemParameter{Discrimination: 2.0, Difficulty: 0, Guessing: 0.2}
	// Far below difficulty the probability approaches the guessing floor.
	if got := item.Probability(-4); got < 0.2 || got > 0.21 {
		t.Errorf("Probability(-4) = %f, want just above 0.2", got)
	}
	// Far above difficulty it approaches 1.
	if got := item.Probability(4); got < 0.99 {
		t.Errorf("Probability(4) = %f, want near 1", got)
	}
}

func TestProbability_Monotone(t *testing.T) {
	item := ItemParameter{Discrimination: 1.0, Difficulty: 0.3, Guessing: 0.1}
	prev := -1.0
	for theta := -4.0; theta <= 4.0; theta += 0.25 {
		p := item.Probability(theta)
		if p <= prev {
			t.Fatalf("Probability not strictly increasing at theta = %f", theta)
		}
		prev = p
	}
}

func TestInformation_PeaksNearDifficulty(t *testing.T) {
	item := ItemParameter{Discrimination: 1.5, Difficulty: 0.8}
	atB := item.Information(0.8)
	for _, theta := range []float64{-3, -1, 2.5, 4} {
		if item.Information(theta) >= atB {
			t.Errorf("Information(%f) >= Information(b); expected peak at difficulty", theta)
		}
	}
}

func TestInformation_Reduces2PL(t *testing.T) {
	// With c = 0 information must equal a²·P·Q.
	item := ItemParameter{Discrimination: 1.3, Difficulty: -0.5}
	theta := 0.7
	p := item.Probability(theta)
	want := item.Discrimination * item.Discrimination * p * (1 - p)
	if got := item.Information(theta); !almostEqual(got, want) {
		t.Errorf("Information = %f, want a²PQ = %f", got, want)
	}
}

func TestClampTheta(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{0, 0},
		{3.99, 3.99},
		{5, 4},
		{-7, -4},
		{math.Inf(1), 4},
		{math.Inf(-1), -4},
	}
	for _, tt := range tests {
		if got := ClampTheta(tt.in); got != tt.want {
			t.Errorf("ClampTheta(%f) = %f, want %f", tt.in, got, tt.want)
		}
	}
}
