// Package irt provides the item response theory primitives shared by
// ability estimation and batch calibration: the 3PL logistic model,
// Fisher information, and item parameter validation.
package irt

import (
	"errors"
	"fmt"
	"math"
)

// Theta scale bounds. Estimates are conventionally clamped to this range.
const (
	ThetaMin = -4.0
	ThetaMax = 4.0
)

// Guessing floor upper bound. A 3PL guessing parameter at or above this
// value indicates a miscalibrated item.
const GuessMax = 0.35

var (
	ErrNonPositiveDiscrimination = errors.New("irt: discrimination must be positive")
	ErrDifficultyOutOfRange      = errors.New("irt: difficulty out of range")
	ErrGuessingOutOfRange        = errors.New("irt: guessing out of range")
)

// ItemParameter is the calibration triple for a single learning item.
// Guessing is zero for the 2PL model variant.
type ItemParameter struct {
	ID             string  `json:"id"`
	Discrimination float64 `json:"discrimination"` // a > 0
	Difficulty     float64 `json:"difficulty"`     // b in [-4, 4]
	Guessing       float64 `json:"guessing"`       // c in [0, 0.35)
}

// Validate checks the calibration triple against its contract.
// A violation indicates a broken upstream calibration, not a recoverable
// condition, so callers should treat an error here as fatal.
func (p ItemParameter) Validate() error {
	if p.Discrimination <= 0 {
		return fmt.Errorf("%w: item %q has a = %f", ErrNonPositiveDiscrimination, p.ID, p.Discrimination)
	}
	if p.Difficulty < ThetaMin || p.Difficulty > ThetaMax {
		return fmt.Errorf("%w: item %q has b = %f, bounds [%g, %g]", ErrDifficultyOutOfRange, p.ID, p.Difficulty, ThetaMin, ThetaMax)
	}
	if p.Guessing < 0 || p.Guessing >= GuessMax {
		return fmt.Errorf("%w: item %q has c = %f, bounds [0, %g)", ErrGuessingOutOfRange, p.ID, p.Guessing, GuessMax)
	}
	return nil
}

// Probability returns P(correct | theta) under the 3PL model:
//
//	P = c + (1-c) / (1 + e^(-a(theta-b)))
func (p ItemParameter) Probability(theta float64) float64 {
	logistic := 1.0 / (1.0 + math.Exp(-p.Discrimination*(theta-p.Difficulty)))
	return p.Guessing + (1-p.Guessing)*logistic
}

// Information returns the Fisher information the item carries at theta.
// For the 3PL model:
//
//	I = a² * (Q/P) * ((P-c)/(1-c))²
//
// which reduces to a²·P·Q when c = 0.
func (p ItemParameter) Information(theta float64) float64 {
	prob := p.Probability(theta)
	if prob <= 0 || prob >= 1 {
		return 0
	}
	q := 1 - prob
	adj := (prob - p.Guessing) / (1 - p.Guessing)
	return p.Discrimination * p.Discrimination * (q / prob) * adj * adj
}

// ClampTheta clamps an ability value to the representable theta range.
func ClampTheta(theta float64) float64 {
	return math.Min(math.Max(theta, ThetaMin), ThetaMax)
}
