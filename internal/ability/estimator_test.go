package ability

import (
	"errors"
	"math"
	"testing"

	"github.com/tomatokenizer-web/LOGOSproject-sub002/internal/irt"
)

func item(a, b float64) irt.ItemParameter {
	return irt.ItemParameter{Discrimination: a, Difficulty: b}
}

// mixedResponses builds a response set for a learner of the given true
// ability: correct on items below it, incorrect on items above it.
func mixedResponses(trueTheta float64, difficulties ...float64) []Response {
	rs := make([]Response, len(difficulties))
	for i, b := range difficulties {
		rs[i] = Response{Item: item(1.2, b), Correct: b < trueTheta}
	}
	return rs
}

func TestMLE_RecoversAbilityRegion(t *testing.T) {
	e := NewEstimator(Config{}, nil)
	rs := mixedResponses(0.5, -2, -1.5, -1, -0.5, 0, 1, 1.5, 2, 2.5, 3)

	est, err := e.MLE(rs)
	if err != nil {
		t.Fatalf("MLE: %v", err)
	}
	if est.Flagged {
		t.Error("expected converged estimate")
	}
	if est.Theta < -0.5 || est.Theta > 1.5 {
		t.Errorf("Theta = %f, want near 0.5", est.Theta)
	}
	if est.StdErr <= 0 {
		t.Errorf("StdErr = %f, want positive", est.StdErr)
	}
}

func TestMLE_Degenerate(t *testing.T) {
	e := NewEstimator(Config{}, nil)

	allCorrect := []Response{
		{Item: item(1, -1), Correct: true},
		{Item: item(1, 0), Correct: true},
		{Item: item(1, 1), Correct: true},
	}
	if _, err := e.MLE(allCorrect); !errors.Is(err, ErrDegenerateResponses) {
		t.Errorf("all-correct MLE err = %v, want ErrDegenerateResponses", err)
	}

	allWrong := []Response{
		{Item: item(1, -1), Correct: false},
		{Item: item(1, 0), Correct: false},
	}
	if _, err := e.MLE(allWrong); !errors.Is(err, ErrDegenerateResponses) {
		t.Errorf("all-incorrect MLE err = %v, want ErrDegenerateResponses", err)
	}

	if _, err := e.MLE(nil); !errors.Is(err, ErrNoResponses) {
		t.Errorf("empty MLE err = %v, want ErrNoResponses", err)
	}
}

func TestMLE_BoundedResult(t *testing.T) {
	e := NewEstimator(Config{}, nil)
	// Highly discriminating items with one stray incorrect answer push the
	// working estimate hard; it must stay clamped and finite.
	rs := []Response{
		{Item: item(2.5, -3.5), Correct: false},
		{Item: item(2.5, 3.5), Correct: true},
		{Item: item(2.5, 3.8), Correct: true},
		{Item: item(2.5, 3.9), Correct: true},
		{Item: item(2.5, 3.2), Correct: true},
	}
	est, err := e.MLE(rs)
	if err != nil {
		t.Fatalf("MLE: %v", err)
	}
	if math.IsNaN(est.Theta) || math.IsInf(est.Theta, 0) {
		t.Fatalf("Theta = %f, want finite", est.Theta)
	}
	if est.Theta < irt.ThetaMin || est.Theta > irt.ThetaMax {
		t.Errorf("Theta = %f, outside [%g, %g]", est.Theta, irt.ThetaMin, irt.ThetaMax)
	}
}

func TestEAP_Idempotent(t *testing.T) {
	e := NewEstimator(Config{}, nil)
	rs := []Response{
		{Item: item(1.1, -0.5), Correct: true},
		{Item: item(0.9, 0.5), Correct: false},
		{Item: item(1.4, 0), Correct: true},
	}
	prior := DefaultPrior()

	first := e.EAP(rs, prior)
	second := e.EAP(rs, prior)
	if first != second {
		t.Errorf("EAP not idempotent: %+v vs %+v", first, second)
	}
}

func TestEAP_ShiftsWithEvidence(t *testing.T) {
	e := NewEstimator(Config{}, nil)
	prior := DefaultPrior()

	up := e.EAP([]Response{
		{Item: item(1.5, 0.5), Correct: true},
		{Item: item(1.5, 1.0), Correct: true},
	}, prior)
	down := e.EAP([]Response{
		{Item: item(1.5, -0.5), Correct: false},
		{Item: item(1.5, -1.0), Correct: false},
	}, prior)

	if up.Theta <= prior.Mean {
		t.Errorf("correct answers should raise the estimate, got %f", up.Theta)
	}
	if down.Theta >= prior.Mean {
		t.Errorf("incorrect answers should lower the estimate, got %f", down.Theta)
	}
}

func TestEstimate_EmptyHistoryReturnsPrior(t *testing.T) {
	e := NewEstimator(Config{}, nil)
	prior := Prior{Mean: -0.3, SD: 0.8}

	est := e.Estimate(nil, prior)
	if est.Theta != prior.Mean || est.StdErr != prior.SD {
		t.Errorf("Estimate(empty) = %+v, want prior", est)
	}
}

func TestEstimate_AllCorrectFallsBackToEAP(t *testing.T) {
	e := NewEstimator(Config{}, nil)
	rs := []Response{
		{Item: item(1, -1), Correct: true},
		{Item: item(1, -0.5), Correct: true},
		{Item: item(1, 0), Correct: true},
		{Item: item(1, 0.5), Correct: true},
		{Item: item(1, 1), Correct: true},
	}

	est := e.Estimate(rs, DefaultPrior())
	if math.IsNaN(est.Theta) || math.IsInf(est.Theta, 0) {
		t.Fatalf("Theta = %f, want finite EAP fallback", est.Theta)
	}
	if est.Theta < irt.ThetaMin || est.Theta > irt.ThetaMax {
		t.Errorf("Theta = %f, outside theta bounds", est.Theta)
	}
	if est.Theta <= 0 {
		t.Errorf("Theta = %f, want positive after five correct answers", est.Theta)
	}
}

func TestEstimate_SmallSetUsesEAP(t *testing.T) {
	e := NewEstimator(Config{}, nil)
	rs := []Response{
		{Item: item(1, 0), Correct: true},
		{Item: item(1, 0.5), Correct: false},
	}

	// Below MinMLEResponses the dispatcher must route to EAP; the result
	// equals calling EAP directly.
	want := e.EAP(rs, DefaultPrior())
	got := e.Estimate(rs, DefaultPrior())
	if got != want {
		t.Errorf("Estimate = %+v, want EAP result %+v", got, want)
	}
}

func TestEAP_UnderflowReturnsPriorMean(t *testing.T) {
	e := NewEstimator(Config{}, nil)

	// A long contradictory history of extreme items drives the likelihood
	// to numerical zero at every grid point.
	var rs []Response
	for i := 0; i < 400; i++ {
		rs = append(rs, Response{Item: item(2.5, 3.9), Correct: true})
		rs = append(rs, Response{Item: item(2.5, -3.9), Correct: false})
	}

	prior := Prior{Mean: 0.25, SD: 1}
	est := e.EAP(rs, prior)
	if math.IsNaN(est.Theta) || math.IsInf(est.Theta, 0) {
		t.Fatalf("Theta = %f, want finite", est.Theta)
	}
	if est.Theta != prior.Mean {
		t.Errorf("Theta = %f, want prior mean %f on underflow", est.Theta, prior.Mean)
	}
	if !est.Flagged {
		t.Error("underflow estimate should be flagged")
	}
}
