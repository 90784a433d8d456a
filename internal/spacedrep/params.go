package spacedrep

import (
	"errors"
	"fmt"
	"math"
)

// MinStability is the floor applied to every stability update. A
// zero-or-negative stability would break the forgetting curve, so the
// failure formula and loaded state are both clamped here.
const MinStability = 0.001

var ErrInvalidWeights = errors.New("spacedrep: weights out of bounds")

// Weights parametrizes the forgetting-curve update rules. Indices follow
// the rating scale where arrays appear: position 0 is Again, 3 is Easy.
type Weights struct {
	// InitStability seeds stability (days) on first exposure, by rating.
	InitStability [4]float64 `json:"init_stability"`
	// InitDifficulty seeds difficulty (1-10) on first exposure, by rating.
	InitDifficulty [4]float64 `json:"init_difficulty"`

	// DifficultyStep scales the per-review difficulty drift (k₆).
	DifficultyStep float64 `json:"difficulty_step"`

	// Successful-recall growth parameters (k₈, k₉, k₁₀).
	RecallScale        float64 `json:"recall_scale"`
	StabilityDecay     float64 `json:"stability_decay"`
	RetrievabilityGain float64 `json:"retrievability_gain"`

	// Post-lapse parameters (k₁₁, k₁₂, k₁₃).
	ForgetScale         float64 `json:"forget_scale"`
	ForgetDifficultyExp float64 `json:"forget_difficulty_exp"`
	ForgetStabilityExp  float64 `json:"forget_stability_exp"`

	// HardPenalty dampens growth on Hard; EasyBonus amplifies it on Easy.
	HardPenalty float64 `json:"hard_penalty"`
	EasyBonus   float64 `json:"easy_bonus"`
}

// DefaultWeights returns the stock parameter set.
func DefaultWeights() Weights {
	return Weights{
		InitStability:       [4]float64{0.212, 1.2931, 2.3065, 8.2956},
		InitDifficulty:      [4]float64{7.0, 5.5, 4.0, 2.5},
		DifficultyStep:      0.8,
		RecallScale:         1.8722,
		StabilityDecay:      0.1666,
		RetrievabilityGain:  0.796,
		ForgetScale:         1.4835,
		ForgetDifficultyExp: 0.0614,
		ForgetStabilityExp:  0.2629,
		HardPenalty:         0.6014,
		EasyBonus:           1.8729,
	}
}

// Validate checks every weight against its bounds.
func (w Weights) Validate() error {
	for i, s := range w.InitStability {
		if s < MinStability || s > 100 {
			return fmt.Errorf("%w: init_stability[%d] = %f", ErrInvalidWeights, i, s)
		}
	}
	for i, d := range w.InitDifficulty {
		if d < 1 || d > 10 {
			return fmt.Errorf("%w: init_difficulty[%d] = %f", ErrInvalidWeights, i, d)
		}
	}
	checks := []struct {
		name   string
		v      float64
		lo, hi float64
	}{
		{"difficulty_step", w.DifficultyStep, 0, 4},
		{"recall_scale", w.RecallScale, 0, 4.5},
		{"stability_decay", w.StabilityDecay, 0, 0.8},
		{"retrievability_gain", w.RetrievabilityGain, 0.001, 3.5},
		{"forget_scale", w.ForgetScale, 0.001, 5},
		{"forget_difficulty_exp", w.ForgetDifficultyExp, 0.001, 0.25},
		{"forget_stability_exp", w.ForgetStabilityExp, 0.001, 0.9},
		{"hard_penalty", w.HardPenalty, 0, 1},
		{"easy_bonus", w.EasyBonus, 1, 6},
	}
	for _, c := range checks {
		if c.v < c.lo || c.v > c.hi || math.IsNaN(c.v) {
			return fmt.Errorf("%w: %s = %f, bounds [%g, %g]", ErrInvalidWeights, c.name, c.v, c.lo, c.hi)
		}
	}
	return nil
}

func clampStability(s float64) float64 {
	return math.Max(s, MinStability)
}

func clampDifficulty(d float64) float64 {
	return math.Min(math.Max(d, 1), 10)
}
