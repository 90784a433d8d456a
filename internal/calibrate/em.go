// Package calibrate re-estimates item parameters from a response matrix
// across many learners using an EM-style alternation: the E-step computes
// every learner's ability by Bayesian expectation holding item parameters
// fixed, and the M-step maximizes each item's Bernoulli log-likelihood by
// gradient ascent holding abilities fixed.
//
// Calibration is an offline batch operation; it shares the probability
// model primitives with the per-turn estimation loop but is never part
// of it.
package calibrate

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/tomatokenizer-web/LOGOSproject-sub002/internal/ability"
	"github.com/tomatokenizer-web/LOGOSproject-sub002/internal/irt"
)

var (
	ErrNoResponses   = errors.New("calibrate: no responses provided")
	ErrIndexOutOfRange = errors.New("calibrate: response index out of range")
)

// Bounds for the M-step parameter search. Discrimination is kept strictly
// positive and away from the flat region; guessing stays below the 3PL
// contract ceiling.
var (
	discBounds  = [2]float64{0.2, 3.0}
	diffBounds  = [2]float64{irt.ThetaMin, irt.ThetaMax}
	guessBounds = [2]float64{0.0, 0.34}
)

// Response is one cell of the calibration matrix: learner L answered
// item I with the given correctness.
type Response struct {
	Learner int
	Item    int
	Correct bool
}

// Config holds the EM settings. Zero values are replaced with defaults.
type Config struct {
	MaxIterations  int     `json:"max_iterations"`   // zero → 30 EM cycles
	Tolerance      float64 `json:"tolerance"`        // zero → 1e-3 max parameter change
	MStepSteps     int     `json:"m_step_steps"`     // zero → 40 gradient steps per item
	LearningRate   float64 `json:"learning_rate"`    // zero → 0.05
	ThreeParameter bool    `json:"three_parameter"`  // estimate the guessing floor
}

// Result carries the calibrated parameters and run diagnostics.
type Result struct {
	Items      []irt.ItemParameter
	Abilities  []ability.Estimate
	Iterations int
	Converged  bool
}

// Calibrator runs EM calibration using the shared ability estimator for
// its E-step.
type Calibrator struct {
	cfg Config
	est *ability.Estimator
}

// New creates a Calibrator. A nil estimator gets a default one.
func New(cfg Config, est *ability.Estimator) *Calibrator {
	if cfg.MaxIterations == 0 {
		cfg.MaxIterations = 30
	}
	if cfg.Tolerance == 0 {
		cfg.Tolerance = 1e-3
	}
	if cfg.MStepSteps == 0 {
		cfg.MStepSteps = 40
	}
	if cfg.LearningRate == 0 {
		cfg.LearningRate = 0.05
	}
	if est == nil {
		est = ability.NewEstimator(ability.Config{}, nil)
	}
	return &Calibrator{cfg: cfg, est: est}
}

// Run alternates E and M steps starting from the given item parameters
// until the maximum parameter change falls below tolerance or the
// iteration cap is hit. The context cancels a long-running calibration;
// on cancellation the best parameters so far are returned with the error.
func (c *Calibrator) Run(ctx context.Context, numLearners int, items []irt.ItemParameter, responses []Response) (Result, error) {
	if len(responses) == 0 {
		return Result{}, ErrNoResponses
	}
	for _, r := range responses {
		if r.Learner < 0 || r.Learner >= numLearners || r.Item < 0 || r.Item >= len(items) {
			return Result{}, fmt.Errorf("%w: learner %d item %d", ErrIndexOutOfRange, r.Learner, r.Item)
		}
	}

	params := make([]irt.ItemParameter, len(items))
	copy(params, items)

	byLearner := groupByLearner(numLearners, responses)
	byItem := groupByItem(len(items), responses)
	prior := ability.DefaultPrior()

	result := Result{Items: params}

	for iter := 0; iter < c.cfg.MaxIterations; iter++ {
		if err := ctx.Err(); err != nil {
			return result, err
		}

		// E-step: per-learner EAP holding item parameters fixed.
		abilities := make([]ability.Estimate, numLearners)
		for l := 0; l < numLearners; l++ {
			rs := make([]ability.Response, 0, len(byLearner[l]))
			for _, cell := range byLearner[l] {
				rs = append(rs, ability.Response{Item: params[cell.Item], Correct: cell.Correct})
			}
			abilities[l] = c.est.Estimate(rs, prior)
		}

		// M-step: per-item gradient ascent holding abilities fixed.
		maxChange := 0.0
		for i := range params {
			if len(byItem[i]) == 0 {
				continue
			}
			updated := c.fitItem(params[i], byItem[i], abilities)
			maxChange = math.Max(maxChange, paramDelta(params[i], updated))
			params[i] = updated
		}

		result.Items = params
		result.Abilities = abilities
		result.Iterations = iter + 1

		if maxChange < c.cfg.Tolerance {
			result.Converged = true
			break
		}
	}

	return result, nil
}

// fitItem maximizes the item's log-likelihood over its responses by Adam
// gradient ascent with numerical central-difference gradients, clamping
// each parameter to its bounds after every step.
func (c *Calibrator) fitItem(item irt.ItemParameter, cells []Response, abilities []ability.Estimate) irt.ItemParameter {
	p := [paramCount]float64{item.Discrimination, item.Difficulty, item.Guessing}
	opt := newAdam(c.cfg.LearningRate)

	for step := 0; step < c.cfg.MStepSteps; step++ {
		grad := c.negLogLikGradient(p, cells, abilities)
		p = opt.update(p, grad)
		p = clampItemParams(p, c.cfg.ThreeParameter)
	}

	return irt.ItemParameter{
		ID:             item.ID,
		Discrimination: p[0],
		Difficulty:     p[1],
		Guessing:       p[2],
	}
}

const gradEps = 1e-5

// negLogLikGradient computes d(-logL)/d(a,b,c) by central differences.
func (c *Calibrator) negLogLikGradient(p [paramCount]float64, cells []Response, abilities []ability.Estimate) [paramCount]float64 {
	var grad [paramCount]float64
	n := paramCount
	if !c.cfg.ThreeParameter {
		n = 2 // guessing is held at zero in the 2PL variant
	}
	for i := 0; i < n; i++ {
		plus := p
		plus[i] += gradEps
		minus := p
		minus[i] -= gradEps
		grad[i] = (negLogLik(plus, cells, abilities) - negLogLik(minus, cells, abilities)) / (2 * gradEps)
	}
	return grad
}

// llClamp keeps probabilities away from log(0).
const llClamp = 1e-9

// negLogLik is the negative Bernoulli log-likelihood of the item's
// responses at the learners' current ability estimates.
func negLogLik(p [paramCount]float64, cells []Response, abilities []ability.Estimate) float64 {
	item := irt.ItemParameter{Discrimination: p[0], Difficulty: p[1], Guessing: p[2]}
	var ll float64
	for _, cell := range cells {
		prob := item.Probability(abilities[cell.Learner].Theta)
		prob = math.Min(math.Max(prob, llClamp), 1-llClamp)
		if cell.Correct {
			ll += math.Log(prob)
		} else {
			ll += math.Log(1 - prob)
		}
	}
	return -ll
}

func clampItemParams(p [paramCount]float64, threeParam bool) [paramCount]float64 {
	p[0] = math.Min(math.Max(p[0], discBounds[0]), discBounds[1])
	p[1] = math.Min(math.Max(p[1], diffBounds[0]), diffBounds[1])
	if threeParam {
		p[2] = math.Min(math.Max(p[2], guessBounds[0]), guessBounds[1])
	} else {
		p[2] = 0
	}
	return p
}

func paramDelta(a, b irt.ItemParameter) float64 {
	d := math.Abs(a.Discrimination - b.Discrimination)
	d = math.Max(d, math.Abs(a.Difficulty-b.Difficulty))
	return math.Max(d, math.Abs(a.Guessing-b.Guessing))
}

func groupByLearner(n int, responses []Response) [][]Response {
	out := make([][]Response, n)
	for _, r := range responses {
		out[r.Learner] = append(out[r.Learner], r)
	}
	return out
}

func groupByItem(n int, responses []Response) [][]Response {
	out := make([][]Response, n)
	for _, r := range responses {
		out[r.Item] = append(out[r.Item], r)
	}
	return out
}
