package store

import (
	"context"
	"encoding/json"
	"time"
)

// ReviewEventData captures one scored item review for the log.
type ReviewEventData struct {
	LearnerID  string
	ItemID     string
	Dimension  string
	Rating     string
	Correct    bool
	CueUsed    bool
	LatencyMs  int64
	Stability  float64
	Difficulty float64
	State      string
	SessionID  string
}

// ReviewObservation is the calibration-facing projection of a review
// event: who answered what, and whether they got it right.
type ReviewObservation struct {
	LearnerID string
	ItemID    string
	Correct   bool
}

// AbilityEventData captures one ability re-estimation.
type AbilityEventData struct {
	LearnerID     string
	Dimension     string
	Theta         float64
	StdErr        float64
	Flagged       bool
	ResponseCount int
}

// CalibrationEventData records one batch calibration run.
type CalibrationEventData struct {
	LearnerCount   int
	ItemCount      int
	ResponseCount  int
	Iterations     int
	Converged      bool
	ThreeParameter bool
}

// SessionEventData records a session lifecycle action.
type SessionEventData struct {
	LearnerID      string
	SessionID      string
	Action         string
	ItemsServed    int
	CorrectAnswers int
	NewItems       int
	DurationSecs   int64
}

// EventRepo provides append and query access to the event log.
type EventRepo interface {
	AppendReview(ctx context.Context, data ReviewEventData) error
	AppendAbility(ctx context.Context, data AbilityEventData) error
	AppendCalibration(ctx context.Context, data CalibrationEventData) error
	AppendSession(ctx context.Context, data SessionEventData) error

	// ReviewObservations returns every logged review in sequence order,
	// projected down to what batch calibration consumes.
	ReviewObservations(ctx context.Context) ([]ReviewObservation, error)

	// ItemAccuracy returns the overall accuracy for one item across all
	// learners and the number of reviews it is based on.
	ItemAccuracy(ctx context.Context, itemID string) (float64, int, error)

	// LatestReviewTime returns the timestamp of the learner's most recent
	// review, or the zero time if none exist.
	LatestReviewTime(ctx context.Context, learnerID string) (time.Time, error)

	// AbilityTrajectory returns the learner's logged estimates for one
	// dimension, oldest first.
	AbilityTrajectory(ctx context.Context, learnerID, dim string) ([]AbilityEventData, error)
}

// Snapshot is a point-in-time capture of one learner's aggregate.
// Data holds the engine's exported JSON form.
type Snapshot struct {
	ID        int
	LearnerID string
	Sequence  int64
	Timestamp time.Time
	Data      json.RawMessage
}

// SnapshotRepo manages learner state snapshots.
type SnapshotRepo interface {
	// Save stores a new snapshot.
	Save(ctx context.Context, snap *Snapshot) error

	// Latest returns the learner's most recent snapshot, or nil if none
	// exist.
	Latest(ctx context.Context, learnerID string) (*Snapshot, error)

	// Prune deletes all but the learner's N most recent snapshots.
	Prune(ctx context.Context, learnerID string, keep int) error
}
