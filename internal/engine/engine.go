// Package engine drives the per-turn feedback loop: build a queue, show
// an item, capture the response, then update memory, mastery, and
// ability strictly in that order so each component's output feeds the
// next pass.
package engine

import (
	"errors"
	"fmt"
	"time"

	"github.com/tomatokenizer-web/LOGOSproject-sub002/internal/ability"
	"github.com/tomatokenizer-web/LOGOSproject-sub002/internal/config"
	"github.com/tomatokenizer-web/LOGOSproject-sub002/internal/dimension"
	"github.com/tomatokenizer-web/LOGOSproject-sub002/internal/irt"
	"github.com/tomatokenizer-web/LOGOSproject-sub002/internal/mastery"
	"github.com/tomatokenizer-web/LOGOSproject-sub002/internal/priority"
	"github.com/tomatokenizer-web/LOGOSproject-sub002/internal/queue"
	"github.com/tomatokenizer-web/LOGOSproject-sub002/internal/spacedrep"
)

var (
	ErrNilLearner       = errors.New("engine: nil learner state")
	ErrInvalidDimension = errors.New("engine: invalid dimension")
)

// Response is one scored learner answer to an item presentation.
type Response struct {
	ItemID    string
	Item      irt.ItemParameter
	Dimension dimension.Dimension
	Outcome   spacedrep.Outcome
	At        time.Time
}

// Update reports the state produced by one processed response.
type Update struct {
	Rating  spacedrep.Rating
	Memory  spacedrep.MemoryRecord
	Mastery mastery.Record
	Ability ability.Estimate
	Global  ability.Estimate
}

// Engine wires the four scheduling components behind one configuration.
// Stateless across learners; all per-learner state lives in the
// LearnerState the caller passes in.
type Engine struct {
	cfg       config.Config
	estimator *ability.Estimator
	scheduler *spacedrep.Scheduler
	builder   *queue.Builder
}

// New builds an Engine from a validated configuration.
func New(cfg config.Config) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	scheduler, err := spacedrep.NewScheduler(cfg.Scheduler)
	if err != nil {
		return nil, err
	}
	prioEngine, err := priority.NewEngine(cfg.Priority)
	if err != nil {
		return nil, err
	}
	return &Engine{
		cfg:       cfg,
		estimator: ability.NewEstimator(cfg.Ability, nil),
		scheduler: scheduler,
		builder:   queue.NewBuilder(prioEngine),
	}, nil
}

// ProcessResponse applies one response to the learner aggregate:
// memory update, then mastery recomputation from the fresh stability,
// then ability re-estimation for the response's dimension and the
// global aggregate. A malformed item parameter is a contract violation
// and fails hard; the learner state is left untouched on error.
func (e *Engine) ProcessResponse(ls *LearnerState, resp Response) (Update, error) {
	if ls == nil {
		return Update{}, ErrNilLearner
	}
	if resp.Dimension == dimension.Global || !resp.Dimension.IsValid() {
		return Update{}, fmt.Errorf("%w: %s", ErrInvalidDimension, resp.Dimension)
	}
	if err := resp.Item.Validate(); err != nil {
		return Update{}, err
	}

	mem, rating := e.scheduler.Review(ls.MemoryFor(resp.ItemID), resp.Outcome, resp.At)
	mas := ls.MasteryFor(resp.ItemID).
		Update(resp.Outcome.Correct, resp.Outcome.CueUsed, mem.Stability)

	abilityResp := ability.Response{Item: resp.Item, Correct: resp.Outcome.Correct}
	dimHistory := append(ls.History[resp.Dimension], abilityResp)
	globalHistory := append(ls.History[dimension.Global], abilityResp)
	dimEst := e.estimator.Estimate(dimHistory, ls.Prior)
	globalEst := e.estimator.Estimate(globalHistory, ls.Prior)

	ls.Memory[resp.ItemID] = mem
	ls.Mastery[resp.ItemID] = mas
	ls.History[resp.Dimension] = dimHistory
	ls.History[dimension.Global] = globalHistory
	ls.Abilities[resp.Dimension] = dimEst
	ls.Abilities[dimension.Global] = globalEst

	return Update{
		Rating:  rating,
		Memory:  mem,
		Mastery: mas,
		Ability: dimEst,
		Global:  globalEst,
	}, nil
}

// BuildQueue ranks the full candidate pool for the learner at the given
// time using the global ability aggregate.
func (e *Engine) BuildQueue(ls *LearnerState, candidates []queue.Candidate, now time.Time) []queue.Entry {
	theta := ls.Abilities[dimension.Global].Theta
	return e.builder.Build(candidates, theta, ls.Band, ls.Memory, now)
}

// NextSession builds the queue and carves the configured session slice
// out of it.
func (e *Engine) NextSession(ls *LearnerState, candidates []queue.Candidate, now time.Time) []queue.Entry {
	full := e.BuildQueue(ls, candidates, now)
	return queue.SessionSlice(full, e.cfg.SessionSize, e.cfg.NewItemRatio)
}

// SelectNext picks the most informative next item for one dimension
// under the configured selection strategy. Returns -1 when candidates
// is empty.
func (e *Engine) SelectNext(ls *LearnerState, d dimension.Dimension, candidates []irt.ItemParameter) int {
	if !d.IsValid() {
		d = dimension.Global
	}
	return e.estimator.SelectNext(e.cfg.Strategy, candidates, ls.History[d], ls.Abilities[d], ls.Prior)
}

// Preview returns the what-if memory record for each rating, for
// external display.
func (e *Engine) Preview(ls *LearnerState, itemID string, now time.Time) map[spacedrep.Rating]spacedrep.MemoryRecord {
	return e.scheduler.Preview(ls.MemoryFor(itemID), now)
}
