package ability

import (
	"errors"
	"fmt"
	"math"

	"github.com/tomatokenizer-web/LOGOSproject-sub002/internal/irt"
)

// Strategy selects which adaptive item-selection criterion to use.
type Strategy int

const (
	// FisherInformation picks the item with maximum Fisher information at
	// the point estimate. Fast, but blind to estimation uncertainty.
	FisherInformation Strategy = iota + 1

	// KLDivergence picks the item maximizing the posterior-weighted KL
	// divergence between response distributions across the quadrature grid
	// and at the point estimate. Preferred while standard error is large.
	KLDivergence
)

var strategyNames = map[Strategy]string{
	FisherInformation: "fisher",
	KLDivergence:      "kl",
}

var strategyByName = map[string]Strategy{
	"fisher": FisherInformation,
	"kl":     KLDivergence,
}

var ErrUnknownStrategy = errors.New("ability: unknown selection strategy")

// IsValid reports whether s is a defined strategy.
func (s Strategy) IsValid() bool {
	_, ok := strategyNames[s]
	return ok
}

func (s Strategy) String() string {
	if name, ok := strategyNames[s]; ok {
		return name
	}
	return fmt.Sprintf("Strategy(%d)", int(s))
}

// MarshalText implements encoding.TextMarshaler.
func (s Strategy) MarshalText() ([]byte, error) {
	name, ok := strategyNames[s]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrUnknownStrategy, int(s))
	}
	return []byte(name), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *Strategy) UnmarshalText(text []byte) error {
	v, ok := strategyByName[string(text)]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownStrategy, text)
	}
	*s = v
	return nil
}

// SelectNext returns the index into candidates of the most informative item
// to administer next, under the given strategy. Candidates already
// administered should be excluded by the caller. Returns -1 for an empty
// candidate set.
func (e *Estimator) SelectNext(strategy Strategy, candidates []irt.ItemParameter, responses []Response, est Estimate, prior Prior) int {
	if len(candidates) == 0 {
		return -1
	}
	switch strategy {
	case KLDivergence:
		return e.selectByKL(candidates, responses, est, prior)
	default:
		return selectByInformation(candidates, est.Theta)
	}
}

// selectByInformation maximizes a²·P(θ)·(1−P(θ)) at the point estimate.
func selectByInformation(candidates []irt.ItemParameter, theta float64) int {
	best := 0
	bestInfo := math.Inf(-1)
	for i, item := range candidates {
		if info := item.Information(theta); info > bestInfo {
			bestInfo = info
			best = i
		}
	}
	return best
}

// selectByKL maximizes the expected KL divergence between the item's
// response distribution at each quadrature point and at the point
// estimate, weighted by the (unnormalized) posterior density.
func (e *Estimator) selectByKL(candidates []irt.ItemParameter, responses []Response, est Estimate, prior Prior) int {
	grid := e.grids.get(prior.Mean, prior.SD, e.cfg.QuadSpread, e.cfg.QuadPoints)

	posterior := make([]float64, len(grid.points))
	var total float64
	for i, theta := range grid.points {
		posterior[i] = likelihood(responses, theta) * grid.density[i]
		total += posterior[i]
	}
	if total <= 0 {
		// No usable posterior: fall back to the point-estimate criterion.
		return selectByInformation(candidates, est.Theta)
	}

	best := 0
	bestKL := math.Inf(-1)
	for i, item := range candidates {
		pHat := item.Probability(est.Theta)
		var kl float64
		for q, theta := range grid.points {
			p := item.Probability(theta)
			kl += posterior[q] / total * bernoulliKL(p, pHat)
		}
		if kl > bestKL {
			bestKL = kl
			best = i
		}
	}
	return best
}

// klProbFloor keeps Bernoulli KL terms away from log(0).
const klProbFloor = 1e-9

// bernoulliKL is KL(p || q) for Bernoulli distributions.
func bernoulliKL(p, q float64) float64 {
	p = math.Min(math.Max(p, klProbFloor), 1-klProbFloor)
	q = math.Min(math.Max(q, klProbFloor), 1-klProbFloor)
	return p*math.Log(p/q) + (1-p)*math.Log((1-p)/(1-q))
}
