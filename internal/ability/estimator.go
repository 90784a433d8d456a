// Package ability estimates a learner's latent ability from scored
// responses against calibrated items, and selects the most informative
// item to administer next.
//
// Two point estimators are provided: maximum likelihood (Newton-Raphson),
// used once a response set is large and mixed enough to support it, and
// Bayesian expectation over a quadrature grid (EAP), used for small or
// degenerate response sets where MLE is undefined.
package ability

import (
	"errors"
	"math"

	"github.com/tomatokenizer-web/LOGOSproject-sub002/internal/irt"
)

var (
	ErrNoResponses         = errors.New("ability: no responses")
	ErrDegenerateResponses = errors.New("ability: all responses identical, MLE undefined")
)

// Response pairs a calibrated item with the correctness of one scored answer.
type Response struct {
	Item    irt.ItemParameter `json:"item"`
	Correct bool              `json:"correct"`
}

// Estimate is a point ability estimate with its confidence.
// Flagged marks an estimate produced without full convergence; callers
// must treat it as lower-confidence, not invalid.
type Estimate struct {
	Theta   float64 `json:"theta"`
	StdErr  float64 `json:"std_err"`
	Flagged bool    `json:"flagged,omitempty"`
}

// Prior is the Gaussian prior over ability used by the EAP estimator.
type Prior struct {
	Mean float64 `json:"mean"`
	SD   float64 `json:"sd"`
}

// DefaultPrior returns the standard normal prior.
func DefaultPrior() Prior {
	return Prior{Mean: 0, SD: 1}
}

// Config holds the numerical settings for estimation.
// Zero values are replaced with defaults by NewEstimator.
type Config struct {
	MaxIterations   int     `json:"max_iterations"`    // zero → 50
	Tolerance       float64 `json:"tolerance"`         // zero → 1e-4
	QuadPoints      int     `json:"quad_points"`       // zero → 40
	QuadSpread      float64 `json:"quad_spread"`       // zero → 2.0 (prior sd units)
	MinMLEResponses int     `json:"min_mle_responses"` // zero → 5
}

// derivFloor guards the Newton step against division by a numerically
// zero derivative.
const derivFloor = 1e-10

// Estimator computes ability estimates. Safe for concurrent use across
// learners: it holds no per-learner state, only configuration and the
// shared grid cache.
type Estimator struct {
	cfg   Config
	grids *GridCache
}

// NewEstimator creates an Estimator. A nil cache gets a private one.
func NewEstimator(cfg Config, grids *GridCache) *Estimator {
	if cfg.MaxIterations == 0 {
		cfg.MaxIterations = 50
	}
	if cfg.Tolerance == 0 {
		cfg.Tolerance = 1e-4
	}
	if cfg.QuadPoints == 0 {
		cfg.QuadPoints = 40
	}
	if cfg.QuadSpread == 0 {
		cfg.QuadSpread = 2.0
	}
	if cfg.MinMLEResponses == 0 {
		cfg.MinMLEResponses = 5
	}
	if grids == nil {
		grids = NewGridCache(0)
	}
	return &Estimator{cfg: cfg, grids: grids}
}

// Estimate returns the ability estimate for the response set. It is total
// over its input domain: an empty history returns the prior, a small or
// degenerate history falls back to EAP, and MLE non-convergence returns
// the last finite estimate flagged with elevated standard error.
func (e *Estimator) Estimate(responses []Response, prior Prior) Estimate {
	if len(responses) == 0 {
		return Estimate{Theta: prior.Mean, StdErr: prior.SD}
	}
	if len(responses) < e.cfg.MinMLEResponses || isDegenerate(responses) {
		return e.EAP(responses, prior)
	}
	est, err := e.MLE(responses)
	if err != nil {
		return e.EAP(responses, prior)
	}
	return est
}

// MLE computes the maximum-likelihood ability estimate via Newton-Raphson.
// Returns ErrDegenerateResponses for all-correct or all-incorrect sets,
// which drive the estimate toward ±infinity.
func (e *Estimator) MLE(responses []Response) (Estimate, error) {
	if len(responses) == 0 {
		return Estimate{}, ErrNoResponses
	}
	if isDegenerate(responses) {
		return Estimate{}, ErrDegenerateResponses
	}

	theta := 0.0
	converged := false

	for i := 0; i < e.cfg.MaxIterations; i++ {
		score, deriv := scoreAndDerivative(responses, theta)
		if math.Abs(deriv) < derivFloor {
			// Flat likelihood: stop with the last finite estimate.
			break
		}
		delta := score / deriv
		theta = irt.ClampTheta(theta - delta)
		if math.Abs(delta) < e.cfg.Tolerance {
			converged = true
			break
		}
	}

	return Estimate{
		Theta:   theta,
		StdErr:  standardError(responses, theta),
		Flagged: !converged,
	}, nil
}

// EAP computes the Bayesian expected a posteriori estimate over a fixed
// quadrature grid spanning prior.Mean ± QuadSpread·prior.SD. If the total
// weighted likelihood underflows to zero, the prior mean is returned
// unchanged; the result is never NaN or Inf.
func (e *Estimator) EAP(responses []Response, prior Prior) Estimate {
	grid := e.grids.get(prior.Mean, prior.SD, e.cfg.QuadSpread, e.cfg.QuadPoints)

	var total, weightedSum float64
	posterior := make([]float64, len(grid.points))

	for i, theta := range grid.points {
		like := likelihood(responses, theta)
		w := like * grid.density[i]
		posterior[i] = w
		total += w
		weightedSum += w * theta
	}

	if total <= 0 || math.IsNaN(total) || math.IsInf(total, 0) {
		return Estimate{Theta: prior.Mean, StdErr: prior.SD, Flagged: true}
	}

	mean := weightedSum / total

	var variance float64
	for i, theta := range grid.points {
		d := theta - mean
		variance += posterior[i] / total * d * d
	}

	return Estimate{
		Theta:  irt.ClampTheta(mean),
		StdErr: math.Sqrt(variance),
	}
}

// scoreAndDerivative computes the log-likelihood score function
// Σ a_i(u_i − P_i) and its derivative −Σ a_i²·P_i·(1−P_i) at theta.
func scoreAndDerivative(responses []Response, theta float64) (score, deriv float64) {
	for _, r := range responses {
		p := r.Item.Probability(theta)
		u := 0.0
		if r.Correct {
			u = 1.0
		}
		a := r.Item.Discrimination
		score += a * (u - p)
		deriv -= a * a * p * (1 - p)
	}
	return score, deriv
}

// likelihood is the product-of-Bernoulli likelihood of the responses at theta.
func likelihood(responses []Response, theta float64) float64 {
	like := 1.0
	for _, r := range responses {
		p := r.Item.Probability(theta)
		if r.Correct {
			like *= p
		} else {
			like *= 1 - p
		}
	}
	return like
}

// standardError is 1/√I(theta) over the administered items. A zero test
// information yields the theta scale width rather than Inf.
func standardError(responses []Response, theta float64) float64 {
	var info float64
	for _, r := range responses {
		info += r.Item.Information(theta)
	}
	if info <= 0 {
		return irt.ThetaMax - irt.ThetaMin
	}
	return 1 / math.Sqrt(info)
}

// isDegenerate reports whether every response has the same correctness.
func isDegenerate(responses []Response) bool {
	for i := 1; i < len(responses); i++ {
		if responses[i].Correct != responses[0].Correct {
			return false
		}
	}
	return true
}
