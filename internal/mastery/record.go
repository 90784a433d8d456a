package mastery

// Record is the per (learner, item) mastery state.
type Record struct {
	ItemID   string   `json:"item_id"`
	Stage    Stage    `json:"stage"`
	Averages Averages `json:"averages"`
}

// NewRecord creates an empty mastery record at stage 0.
func NewRecord(itemID string) Record {
	return Record{ItemID: itemID, Stage: StageUnknown}
}

// Update folds one response into the accuracy averages and recomputes the
// stage against the item's current memory stability. The input record is
// not mutated.
func (r Record) Update(correct, cueUsed bool, stabilityDays float64) Record {
	out := r
	out.Averages.Record(correct, cueUsed)
	out.Stage = DetermineStage(out.Averages, stabilityDays)
	return out
}

// CueLevel returns the scaffolding level for the next presentation.
func (r Record) CueLevel() int {
	return CueLevel(r.Averages)
}
