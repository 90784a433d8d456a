package engine

import (
	"github.com/google/uuid"

	"github.com/tomatokenizer-web/LOGOSproject-sub002/internal/ability"
	"github.com/tomatokenizer-web/LOGOSproject-sub002/internal/dimension"
	"github.com/tomatokenizer-web/LOGOSproject-sub002/internal/mastery"
	"github.com/tomatokenizer-web/LOGOSproject-sub002/internal/priority"
	"github.com/tomatokenizer-web/LOGOSproject-sub002/internal/spacedrep"
)

// LearnerState is the full per-learner scheduling aggregate. It is owned
// exclusively by one processing context at a time; callers must
// serialize updates per learner id. Ability estimates are array-backed,
// indexed by dimension.
type LearnerState struct {
	LearnerID uuid.UUID
	Band      priority.Band
	Prior     ability.Prior

	Abilities [dimension.Count]ability.Estimate
	History   [dimension.Count][]ability.Response

	Memory  map[string]spacedrep.MemoryRecord
	Mastery map[string]mastery.Record
}

// NewLearner creates an onboarding-state learner: every dimension starts
// at the prior mean with the prior's spread as its standard error.
func NewLearner(band priority.Band, prior ability.Prior) *LearnerState {
	ls := &LearnerState{
		LearnerID: uuid.New(),
		Band:      band,
		Prior:     prior,
		Memory:    make(map[string]spacedrep.MemoryRecord),
		Mastery:   make(map[string]mastery.Record),
	}
	for d := range ls.Abilities {
		ls.Abilities[d] = ability.Estimate{Theta: prior.Mean, StdErr: prior.SD}
	}
	return ls
}

// Ability returns the current estimate for one dimension, or the global
// aggregate for dimension.Global.
func (ls *LearnerState) Ability(d dimension.Dimension) ability.Estimate {
	if !d.IsValid() {
		return ls.Abilities[dimension.Global]
	}
	return ls.Abilities[d]
}

// MemoryFor returns the item's memory record, creating a new-state
// record on first exposure.
func (ls *LearnerState) MemoryFor(itemID string) spacedrep.MemoryRecord {
	if rec, ok := ls.Memory[itemID]; ok {
		return rec
	}
	return spacedrep.NewRecord(itemID)
}

// MasteryFor returns the item's mastery record, creating a stage-zero
// record on first exposure.
func (ls *LearnerState) MasteryFor(itemID string) mastery.Record {
	if rec, ok := ls.Mastery[itemID]; ok {
		return rec
	}
	return mastery.NewRecord(itemID)
}
