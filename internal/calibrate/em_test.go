package calibrate

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/tomatokenizer-web/LOGOSproject-sub002/internal/irt"
)

// syntheticMatrix builds a deterministic response matrix: learner l has
// true ability trueTheta[l] and answers item i correctly iff the model
// probability at the true ability exceeds 0.5.
func syntheticMatrix(trueTheta []float64, items []irt.ItemParameter) []Response {
	var rs []Response
	for l, theta := range trueTheta {
		for i, item := range items {
			rs = append(rs, Response{
				Learner: l,
				Item:    i,
				Correct: item.Probability(theta) > 0.5,
			})
		}
	}
	return rs
}

func startingItems() []irt.ItemParameter {
	return []irt.ItemParameter{
		{ID: "i0", Discrimination: 1.0, Difficulty: 0},
		{ID: "i1", Discrimination: 1.0, Difficulty: 0},
		{ID: "i2", Discrimination: 1.0, Difficulty: 0},
	}
}

func TestRun_EmptyMatrix(t *testing.T) {
	c := New(Config{}, nil)
	if _, err := c.Run(context.Background(), 1, startingItems(), nil); !errors.Is(err, ErrNoResponses) {
		t.Fatalf("err = %v, want ErrNoResponses", err)
	}
}

func TestRun_IndexValidation(t *testing.T) {
	c := New(Config{}, nil)
	rs := []Response{{Learner: 5, Item: 0, Correct: true}}
	if _, err := c.Run(context.Background(), 2, startingItems(), rs); !errors.Is(err, ErrIndexOutOfRange) {
		t.Fatalf("err = %v, want ErrIndexOutOfRange", err)
	}
}

func TestRun_ParametersStayBounded(t *testing.T) {
	trueTheta := []float64{-2, -1, -0.5, 0, 0.5, 1, 2}
	trueItems := []irt.ItemParameter{
		{ID: "easy", Discrimination: 1.2, Difficulty: -1.5},
		{ID: "mid", Discrimination: 1.0, Difficulty: 0},
		{ID: "hard", Discrimination: 1.4, Difficulty: 1.5},
	}
	rs := syntheticMatrix(trueTheta, trueItems)

	c := New(Config{MaxIterations: 5}, nil)
	result, err := c.Run(context.Background(), len(trueTheta), startingItems(), rs)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	for _, item := range result.Items {
		if item.Discrimination < discBounds[0] || item.Discrimination > discBounds[1] {
			t.Errorf("item %s discrimination %f outside bounds", item.ID, item.Discrimination)
		}
		if item.Difficulty < irt.ThetaMin || item.Difficulty > irt.ThetaMax {
			t.Errorf("item %s difficulty %f outside theta range", item.ID, item.Difficulty)
		}
		if item.Guessing != 0 {
			t.Errorf("item %s guessing %f, want 0 in 2PL mode", item.ID, item.Guessing)
		}
	}
	for _, est := range result.Abilities {
		if math.IsNaN(est.Theta) || est.Theta < irt.ThetaMin || est.Theta > irt.ThetaMax {
			t.Errorf("ability %f outside theta range", est.Theta)
		}
	}
}

func TestRun_RecoversDifficultyOrdering(t *testing.T) {
	trueTheta := []float64{-2.5, -1.5, -0.75, 0, 0.75, 1.5, 2.5}
	trueItems := []irt.ItemParameter{
		{ID: "easy", Discrimination: 1.2, Difficulty: -1.8},
		{ID: "hard", Discrimination: 1.2, Difficulty: 1.8},
	}
	rs := syntheticMatrix(trueTheta, trueItems)

	start := []irt.ItemParameter{
		{ID: "easy", Discrimination: 1.0, Difficulty: 0},
		{ID: "hard", Discrimination: 1.0, Difficulty: 0},
	}

	c := New(Config{MaxIterations: 10}, nil)
	result, err := c.Run(context.Background(), len(trueTheta), start, rs)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	easy, hard := result.Items[0], result.Items[1]
	if easy.Difficulty >= hard.Difficulty {
		t.Errorf("calibration lost difficulty ordering: easy b = %f, hard b = %f", easy.Difficulty, hard.Difficulty)
	}
}

func TestRun_Deterministic(t *testing.T) {
	trueTheta := []float64{-1, 0, 1}
	trueItems := []irt.ItemParameter{
		{ID: "a", Discrimination: 1.0, Difficulty: -0.5},
		{ID: "b", Discrimination: 1.0, Difficulty: 0.5},
	}
	rs := syntheticMatrix(trueTheta, trueItems)
	start := []irt.ItemParameter{
		{ID: "a", Discrimination: 1.0, Difficulty: 0},
		{ID: "b", Discrimination: 1.0, Difficulty: 0},
	}

	c := New(Config{MaxIterations: 3}, nil)
	first, err := c.Run(context.Background(), 3, start, rs)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	second, err := c.Run(context.Background(), 3, start, rs)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	for i := range first.Items {
		if first.Items[i] != second.Items[i] {
			t.Errorf("item %d differs across identical runs: %+v vs %+v", i, first.Items[i], second.Items[i])
		}
	}
}

func TestRun_ContextCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	rs := syntheticMatrix([]float64{0}, startingItems())
	c := New(Config{}, nil)
	_, err := c.Run(ctx, 1, startingItems(), rs)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("err = %v, want context.Canceled", err)
	}
}
