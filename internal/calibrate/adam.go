package calibrate

import "math"

// paramCount is the length of the flat (a, b, c) vector optimized per
// item in the M-step.
const paramCount = 3

// adam implements the Adam update rule with bias correction for a single
// item's parameter vector.
//
//	m[i] = β1·m[i] + (1-β1)·g[i]
//	v[i] = β2·v[i] + (1-β2)·g[i]²
//	w[i] = w[i] - lr · m̂[i] / (√v̂[i] + ε)
type adam struct {
	lr           float64
	beta1, beta2 float64
	eps          float64
	m, v         [paramCount]float64
	step         int
}

// newAdam creates an Adam optimizer with standard defaults:
// β1=0.9, β2=0.999, ε=1e-8.
func newAdam(lr float64) *adam {
	return &adam{
		lr:    lr,
		beta1: 0.9,
		beta2: 0.999,
		eps:   1e-8,
	}
}

// update applies one Adam step and returns the updated parameters.
func (a *adam) update(params, grads [paramCount]float64) [paramCount]float64 {
	a.step++

	for i := 0; i < paramCount; i++ {
		g := grads[i]
		if g == 0 {
			continue
		}

		a.m[i] = a.beta1*a.m[i] + (1-a.beta1)*g
		a.v[i] = a.beta2*a.v[i] + (1-a.beta2)*g*g

		mHat := a.m[i] / (1 - math.Pow(a.beta1, float64(a.step)))
		vHat := a.v[i] / (1 - math.Pow(a.beta2, float64(a.step)))

		params[i] -= a.lr * mHat / (math.Sqrt(vHat) + a.eps)
	}

	return params
}
