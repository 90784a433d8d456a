package engine

import (
	"errors"
	"testing"
	"time"

	"github.com/tomatokenizer-web/LOGOSproject-sub002/internal/ability"
	"github.com/tomatokenizer-web/LOGOSproject-sub002/internal/config"
	"github.com/tomatokenizer-web/LOGOSproject-sub002/internal/dimension"
	"github.com/tomatokenizer-web/LOGOSproject-sub002/internal/irt"
	"github.com/tomatokenizer-web/LOGOSproject-sub002/internal/priority"
	"github.com/tomatokenizer-web/LOGOSproject-sub002/internal/queue"
	"github.com/tomatokenizer-web/LOGOSproject-sub002/internal/spacedrep"
)

func newTestEngine(t *testing.T) *Engine {
	t.Helper()
	e, err := New(config.Default())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return e
}

func testItem(id string, difficulty float64) irt.ItemParameter {
	return irt.ItemParameter{ID: id, Discrimination: 1.2, Difficulty: difficulty}
}

func correctResponse(id string, difficulty float64, at time.Time) Response {
	return Response{
		ItemID:    id,
		Item:      testItem(id, difficulty),
		Dimension: dimension.Vocabulary,
		Outcome:   spacedrep.Outcome{Correct: true, LatencyMs: 2000},
		At:        at,
	}
}

func TestNew_RejectsInvalidConfig(t *testing.T) {
	cfg := config.Default()
	cfg.NewItemRatio = 2
	if _, err := New(cfg); !errors.Is(err, config.ErrBadNewItemRatio) {
		t.Errorf("New = %v, want ErrBadNewItemRatio", err)
	}
}

func TestProcessResponse_UpdatesAllState(t *testing.T) {
	e := newTestEngine(t)
	ls := NewLearner(priority.BandBeginner, ability.DefaultPrior())
	now := time.Date(2026, 5, 1, 10, 0, 0, 0, time.UTC)

	upd, err := e.ProcessResponse(ls, correctResponse("w1", -0.5, now))
	if err != nil {
		t.Fatalf("ProcessResponse: %v", err)
	}

	if upd.Memory.State != spacedrep.StateReview {
		t.Errorf("memory state = %s, want review after a correct answer", upd.Memory.State)
	}
	if upd.Memory.Stability <= 0 {
		t.Errorf("stability = %f, want positive", upd.Memory.Stability)
	}
	if upd.Mastery.Averages.Exposures != 1 {
		t.Errorf("exposures = %d, want 1", upd.Mastery.Averages.Exposures)
	}
	if got := ls.Memory["w1"]; got != upd.Memory {
		t.Error("learner memory map not updated with the returned record")
	}
	if ls.Abilities[dimension.Vocabulary] != upd.Ability {
		t.Error("dimension ability not stored")
	}
	if ls.Abilities[dimension.Global] != upd.Global {
		t.Error("global ability not stored")
	}
	if len(ls.History[dimension.Vocabulary]) != 1 || len(ls.History[dimension.Global]) != 1 {
		t.Error("response not appended to dimension and global histories")
	}
}

func TestProcessResponse_CorrectAnswersRaiseAbility(t *testing.T) {
	e := newTestEngine(t)
	ls := NewLearner(priority.BandIntermediate, ability.DefaultPrior())
	now := time.Now()

	difficulties := []float64{-1, -0.5, 0, 0.5, 1}
	var last Update
	for i, d := range difficulties {
		upd, err := e.ProcessResponse(ls, correctResponse("item", d, now.Add(time.Duration(i)*time.Hour)))
		if err != nil {
			t.Fatalf("ProcessResponse %d: %v", i, err)
		}
		last = upd
	}
	if last.Ability.Theta <= 0 {
		t.Errorf("theta = %f after five correct answers, want above the prior mean", last.Ability.Theta)
	}
}

func TestProcessResponse_Rejections(t *testing.T) {
	e := newTestEngine(t)
	ls := NewLearner(priority.BandBeginner, ability.DefaultPrior())
	now := time.Now()

	t.Run("nil learner", func(t *testing.T) {
		if _, err := e.ProcessResponse(nil, correctResponse("w", 0, now)); !errors.Is(err, ErrNilLearner) {
			t.Errorf("got %v, want ErrNilLearner", err)
		}
	})
	t.Run("global dimension", func(t *testing.T) {
		resp := correctResponse("w", 0, now)
		resp.Dimension = dimension.Global
		if _, err := e.ProcessResponse(ls, resp); !errors.Is(err, ErrInvalidDimension) {
			t.Errorf("got %v, want ErrInvalidDimension", err)
		}
	})
	t.Run("malformed item leaves state untouched", func(t *testing.T) {
		resp := correctResponse("w", 0, now)
		resp.Item.Discrimination = -1
		if _, err := e.ProcessResponse(ls, resp); err == nil {
			t.Fatal("expected error for non-positive discrimination")
		}
		if len(ls.Memory) != 0 || len(ls.History[dimension.Vocabulary]) != 0 {
			t.Error("state mutated despite rejected response")
		}
	})
}

func TestProcessResponse_LapseGoesToRelearning(t *testing.T) {
	e := newTestEngine(t)
	ls := NewLearner(priority.BandBeginner, ability.DefaultPrior())
	now := time.Now()

	if _, err := e.ProcessResponse(ls, correctResponse("w", 0, now)); err != nil {
		t.Fatal(err)
	}
	miss := Response{
		ItemID:    "w",
		Item:      testItem("w", 0),
		Dimension: dimension.Vocabulary,
		Outcome:   spacedrep.Outcome{Correct: false},
		At:        now.AddDate(0, 0, 3),
	}
	upd, err := e.ProcessResponse(ls, miss)
	if err != nil {
		t.Fatal(err)
	}
	if upd.Rating != spacedrep.Again {
		t.Errorf("rating = %s, want again", upd.Rating)
	}
	if upd.Memory.State != spacedrep.StateRelearning || upd.Memory.Lapses != 1 {
		t.Errorf("state = %s lapses = %d, want relearning with one lapse", upd.Memory.State, upd.Memory.Lapses)
	}
}

func TestNextSession_RespectsConfiguredSize(t *testing.T) {
	cfg := config.Default()
	cfg.SessionSize = 5
	e, err := New(cfg)
	if err != nil {
		t.Fatal(err)
	}
	ls := NewLearner(priority.BandIntermediate, ability.DefaultPrior())
	now := time.Now()

	var candidates []queue.Candidate
	for i := 0; i < 30; i++ {
		candidates = append(candidates, queue.Candidate{ItemID: string(rune('a' + i))})
	}
	session := e.NextSession(ls, candidates, now)
	if len(session) != 5 {
		t.Errorf("session size = %d, want 5", len(session))
	}
}

func TestSelectNext_UsesConfiguredStrategy(t *testing.T) {
	e := newTestEngine(t)
	ls := NewLearner(priority.BandIntermediate, ability.DefaultPrior())

	candidates := []irt.ItemParameter{
		testItem("far", 3),
		testItem("near", 0),
	}
	if got := e.SelectNext(ls, dimension.Grammar, candidates); got != 1 {
		t.Errorf("SelectNext = %d, want the ability-matched item", got)
	}
	if got := e.SelectNext(ls, dimension.Grammar, nil); got != -1 {
		t.Errorf("SelectNext on empty pool = %d, want -1", got)
	}
}
