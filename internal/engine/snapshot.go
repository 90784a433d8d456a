package engine

import (
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"github.com/tomatokenizer-web/LOGOSproject-sub002/internal/ability"
	"github.com/tomatokenizer-web/LOGOSproject-sub002/internal/dimension"
	"github.com/tomatokenizer-web/LOGOSproject-sub002/internal/mastery"
	"github.com/tomatokenizer-web/LOGOSproject-sub002/internal/priority"
	"github.com/tomatokenizer-web/LOGOSproject-sub002/internal/spacedrep"
)

// Snapshot is the serialized form of a learner aggregate. Dimension
// arrays are keyed by dimension name so a snapshot stays readable after
// the dimension set grows.
type Snapshot struct {
	LearnerID uuid.UUID     `json:"learner_id"`
	Band      priority.Band `json:"band"`
	Prior     ability.Prior `json:"prior"`

	Abilities map[string]ability.Estimate   `json:"abilities"`
	History   map[string][]ability.Response `json:"history,omitempty"`

	Memory  map[string]spacedrep.MemoryRecord `json:"memory"`
	Mastery map[string]mastery.Record         `json:"mastery"`
}

// Export serializes the learner aggregate for persistence.
func (ls *LearnerState) Export() ([]byte, error) {
	if ls == nil {
		return nil, ErrNilLearner
	}
	snap := Snapshot{
		LearnerID: ls.LearnerID,
		Band:      ls.Band,
		Prior:     ls.Prior,
		Abilities: make(map[string]ability.Estimate, dimension.Count),
		History:   make(map[string][]ability.Response),
		Memory:    ls.Memory,
		Mastery:   ls.Mastery,
	}
	for _, d := range dimension.All() {
		snap.Abilities[d.String()] = ls.Abilities[d]
		if len(ls.History[d]) > 0 {
			snap.History[d.String()] = ls.History[d]
		}
	}
	return json.Marshal(snap)
}

// Import rebuilds a learner aggregate from a snapshot. Out-of-range
// persisted memory state is clamped rather than rejected; every repair
// is reported as a warning so bad storage data stays visible without
// crashing the scheduling loop.
func Import(data []byte) (*LearnerState, []string, error) {
	var snap Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, nil, fmt.Errorf("engine: decode snapshot: %w", err)
	}

	ls := &LearnerState{
		LearnerID: snap.LearnerID,
		Band:      snap.Band,
		Prior:     snap.Prior,
		Memory:    snap.Memory,
		Mastery:   snap.Mastery,
	}
	if ls.Memory == nil {
		ls.Memory = make(map[string]spacedrep.MemoryRecord)
	}
	if ls.Mastery == nil {
		ls.Mastery = make(map[string]mastery.Record)
	}
	if !ls.Band.IsValid() {
		ls.Band = priority.BandBeginner
	}

	for name, est := range snap.Abilities {
		d, err := dimension.Parse(name)
		if err != nil {
			return nil, nil, err
		}
		ls.Abilities[d] = est
	}
	for name, history := range snap.History {
		d, err := dimension.Parse(name)
		if err != nil {
			return nil, nil, err
		}
		ls.History[d] = history
	}

	var warnings []string
	for id, rec := range ls.Memory {
		repairs := rec.Normalize()
		if len(repairs) > 0 {
			ls.Memory[id] = rec
			for _, w := range repairs {
				warnings = append(warnings, fmt.Sprintf("memory %s: %s", id, w))
			}
		}
	}
	return ls, warnings, nil
}
