// Package session tracks the runtime state of one learner session over
// a queue slice: which entry is active, running tallies, and the
// summary reported to the event log when the session ends.
package session

import (
	"time"

	"github.com/google/uuid"

	"github.com/tomatokenizer-web/LOGOSproject-sub002/internal/queue"
	"github.com/tomatokenizer-web/LOGOSproject-sub002/internal/store"
)

// Session lifecycle actions recorded to the event log.
const (
	ActionStart   = "start"
	ActionFinish  = "finish"
	ActionAbandon = "abandon"
)

// Session is the runtime state of one active session. Not safe for
// concurrent use; the scheduling model is single-threaded per learner.
type Session struct {
	ID        uuid.UUID
	LearnerID uuid.UUID
	StartedAt time.Time

	slice    []queue.Entry
	cursor   int
	correct  int
	newItems int
}

// Start begins a session over the given slice.
func Start(learnerID uuid.UUID, slice []queue.Entry, now time.Time) *Session {
	return &Session{
		ID:        uuid.New(),
		LearnerID: learnerID,
		StartedAt: now,
		slice:     slice,
	}
}

// Current returns the active entry, or false when the slice is exhausted.
func (s *Session) Current() (queue.Entry, bool) {
	if s.cursor >= len(s.slice) {
		return queue.Entry{}, false
	}
	return s.slice[s.cursor], true
}

// RecordResult tallies the active entry's outcome and advances to the
// next one. Calling it past the end of the slice is a no-op.
func (s *Session) RecordResult(correct bool) {
	entry, ok := s.Current()
	if !ok {
		return
	}
	if correct {
		s.correct++
	}
	if entry.New {
		s.newItems++
	}
	s.cursor++
}

// Done reports whether every entry in the slice has been served.
func (s *Session) Done() bool {
	return s.cursor >= len(s.slice)
}

// Served returns how many entries have been answered so far.
func (s *Session) Served() int {
	return s.cursor
}

// Summary is the end-of-session report.
type Summary struct {
	Served   int
	Correct  int
	Accuracy float64
	NewItems int
	Duration time.Duration
}

// Summarize computes the session summary at the given time.
func (s *Session) Summarize(now time.Time) Summary {
	sum := Summary{
		Served:   s.cursor,
		Correct:  s.correct,
		NewItems: s.newItems,
		Duration: now.Sub(s.StartedAt),
	}
	if sum.Served > 0 {
		sum.Accuracy = float64(sum.Correct) / float64(sum.Served)
	}
	return sum
}

// EventData projects the session into its event-log record for the
// given lifecycle action.
func (s *Session) EventData(action string, now time.Time) store.SessionEventData {
	sum := s.Summarize(now)
	return store.SessionEventData{
		LearnerID:      s.LearnerID.String(),
		SessionID:      s.ID.String(),
		Action:         action,
		ItemsServed:    sum.Served,
		CorrectAnswers: sum.Correct,
		NewItems:       sum.NewItems,
		DurationSecs:   int64(sum.Duration.Seconds()),
	}
}
