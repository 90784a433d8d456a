package mastery

// Stage is the ordinal mastery category: 0 unknown through 4 automatic.
type Stage int

const (
	StageUnknown    Stage = iota // No exposure yet.
	StageRecognized              // Recognized with heavy cueing.
	StageAssisted                // Reliable with assistance.
	StageProficient              // Reliable cue-free over a week's retention.
	StageAutomatic               // Near-perfect cue-free over a month's retention.
)

// Stage thresholds. Checks run from the highest stage down and the first
// satisfied condition wins, so momentary stage-4 performance is never
// miscategorized by an earlier partial match. Note that a stability
// regression can drop an item from stage 4 past 3 straight to 2 in one
// update; that skip is part of the model's behavior.
const (
	automaticCueFreeAccuracy  = 0.9
	automaticStabilityDays    = 30.0
	automaticMaxGap           = 0.1
	proficientCueFreeAccuracy = 0.75
	proficientStabilityDays   = 7.0
	assistedCueFreeAccuracy   = 0.6
	assistedCueAccuracy       = 0.8
	recognizedCueAccuracy     = 0.5
)

// DetermineStage derives the mastery stage from the accuracy averages and
// the memory stability in days. Pure function: the same inputs always
// yield the same stage.
func DetermineStage(a Averages, stabilityDays float64) Stage {
	switch {
	case a.Exposures == 0:
		return StageUnknown
	case a.CueFree >= automaticCueFreeAccuracy &&
		stabilityDays > automaticStabilityDays &&
		a.CueAssisted-a.CueFree < automaticMaxGap:
		return StageAutomatic
	case a.CueFree >= proficientCueFreeAccuracy && stabilityDays > proficientStabilityDays:
		return StageProficient
	case a.CueFree >= assistedCueFreeAccuracy || a.CueAssisted >= assistedCueAccuracy:
		return StageAssisted
	case a.CueAssisted >= recognizedCueAccuracy:
		return StageRecognized
	default:
		return StageUnknown
	}
}

// Cue level thresholds: below minExposures the learner always gets full
// scaffolding; past that the scaffolding gap decides.
const (
	cueLevelMinExposures = 3
	cueLevelHighGap      = 0.30
	cueLevelLowGap       = 0.15
)

// CueLevel derives how much hinting the next presentation should carry,
// from 0 (none) to 3 (full scaffolding).
func CueLevel(a Averages) int {
	if a.Exposures < cueLevelMinExposures {
		return 3
	}
	gap := a.ScaffoldingGap()
	switch {
	case gap >= cueLevelHighGap:
		return 2
	case gap >= cueLevelLowGap:
		return 1
	default:
		return 0
	}
}
