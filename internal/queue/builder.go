// Package queue turns scored candidates into an ordered review queue
// and carves bounded session slices out of it with a configurable mix
// of due and new items.
package queue

import (
	"math"
	"sort"
	"time"

	"github.com/tomatokenizer-web/LOGOSproject-sub002/internal/priority"
	"github.com/tomatokenizer-web/LOGOSproject-sub002/internal/spacedrep"
)

// DefaultNewItemRatio is the fraction of session slots given to items
// the learner has never reviewed.
const DefaultNewItemRatio = 0.3

// Candidate is one item eligible for scheduling. Difficulty and metrics
// come from calibration and content analysis; the memory side is looked
// up by ID at build time.
type Candidate struct {
	ItemID     string
	Difficulty float64
	Metrics    priority.ItemMetrics
}

// Entry is one ranked queue position. FinalScore is opaque ranking
// information for consumers, not a user-facing metric.
type Entry struct {
	ItemID     string
	FinalScore float64
	New        bool
}

// Builder composes the priority engine over a candidate pool.
type Builder struct {
	engine *priority.Engine
}

// NewBuilder wraps a configured priority engine.
func NewBuilder(engine *priority.Engine) *Builder {
	return &Builder{engine: engine}
}

// Build scores every candidate and returns the queue sorted by final
// score descending. Ties keep the candidates' input order, so two runs
// over the same inputs produce identical queues.
func (b *Builder) Build(
	candidates []Candidate,
	ability float64,
	band priority.Band,
	memory map[string]spacedrep.MemoryRecord,
	now time.Time,
) []Entry {
	entries := make([]Entry, 0, len(candidates))
	for _, c := range candidates {
		item := priority.Item{Difficulty: c.Difficulty, Metrics: c.Metrics}

		isNew := true
		if rec, ok := memory[c.ItemID]; ok && rec.State != spacedrep.StateNew {
			isNew = false
			due := rec.Due
			item.Due = &due
		}

		score := b.engine.Score(item, ability, band, now)
		entries = append(entries, Entry{
			ItemID:     c.ItemID,
			FinalScore: score.FinalScore,
			New:        isNew,
		})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].FinalScore > entries[j].FinalScore
	})
	return entries
}

// SessionSlice fills up to sessionSize slots from the queue with
// approximately newItemRatio new items and the rest due items, keeping
// rank order within each kind. When either kind runs out the other
// fills the remaining slots, so a short queue still yields a session.
func SessionSlice(entries []Entry, sessionSize int, newItemRatio float64) []Entry {
	if sessionSize <= 0 || len(entries) == 0 {
		return nil
	}
	newItemRatio = math.Min(1, math.Max(0, newItemRatio))

	var due, fresh []Entry
	for _, e := range entries {
		if e.New {
			fresh = append(fresh, e)
		} else {
			due = append(due, e)
		}
	}

	// Bresenham-style interleave: the accumulator crosses 1 once per
	// 1/newItemRatio slots, placing new items evenly through the slice.
	// The crossing check carries a tolerance so accumulated rounding
	// (0.3 summed ten times is just short of 3) cannot drop a slot.
	const ratioTolerance = 1e-9
	session := make([]Entry, 0, sessionSize)
	acc := 0.0
	for len(session) < sessionSize && (len(due) > 0 || len(fresh) > 0) {
		acc += newItemRatio
		takeNew := acc >= 1-ratioTolerance
		if takeNew {
			acc -= 1
		}
		switch {
		case takeNew && len(fresh) > 0:
			session = append(session, fresh[0])
			fresh = fresh[1:]
		case !takeNew && len(due) > 0:
			session = append(session, due[0])
			due = due[1:]
		case len(due) > 0:
			session = append(session, due[0])
			due = due[1:]
		default:
			session = append(session, fresh[0])
			fresh = fresh[1:]
		}
	}
	return session
}
