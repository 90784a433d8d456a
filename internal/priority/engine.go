// Package priority computes a single dimensionless priority score per
// candidate item from its intrinsic value metrics, its difficulty
// relative to the learner's ability, and a due-date urgency multiplier.
// Scoring is a pure function with no side effects; all inputs are
// resolved by the caller.
package priority

import (
	"math"
	"time"
)

// neutralMetric substitutes for an absent external metric so an
// incomplete content record cannot silently vanish from scheduling.
const neutralMetric = 0.5

// costFloor prevents division blow-up when an item is essentially free.
const costFloor = 0.1

// ItemMetrics carries the externally supplied value metrics for one
// candidate, each in [0,1]. Nil fields default to the neutral midpoint.
type ItemMetrics struct {
	Frequency    *float64 `json:"frequency"`
	Relational   *float64 `json:"relational"`
	Contextual   *float64 `json:"contextual"`
	TransferGain *float64 `json:"transfer_gain"`
}

// Item is one scoring candidate: calibrated difficulty, value metrics,
// and the scheduling due date (nil for a never-reviewed item).
type Item struct {
	Difficulty float64
	Metrics    ItemMetrics
	Due        *time.Time
}

// Record is the scoring breakdown for one candidate. Ephemeral: it is
// recomputed on every queue build and never persisted.
type Record struct {
	ValueScore float64
	CostScore  float64
	Priority   float64
	Urgency    float64
	FinalScore float64
}

// Config holds the urgency constants and band weight tables.
// Zero values produce the documented defaults.
type Config struct {
	Weights          BandWeights `json:"weights,omitempty"`    // nil → DefaultBandWeights
	NewItemUrgency   float64     `json:"new_item_urgency"`     // zero → 1.5
	OverdueSlope     float64     `json:"overdue_slope"`        // zero → 0.5 per day
	UrgencyCap       float64     `json:"urgency_cap"`          // zero → 3
	NotDueBase       float64     `json:"not_due_base"`         // zero → 0.5
	NotDueFloor      float64     `json:"not_due_floor"`        // zero → 0.1
	NotDueDecayHours float64     `json:"not_due_decay_hours"`  // zero → 168 (one week)
}

// Engine scores candidates. Stateless after construction; safe for
// concurrent use.
type Engine struct {
	weights          BandWeights
	newItemUrgency   float64
	overdueSlope     float64
	urgencyCap       float64
	notDueBase       float64
	notDueFloor      float64
	notDueDecayHours float64
}

// NewEngine creates an Engine, validating the weight tables.
func NewEngine(cfg Config) (*Engine, error) {
	w := cfg.Weights
	if w == nil {
		w = DefaultBandWeights()
	}
	if err := w.Validate(); err != nil {
		return nil, err
	}

	e := &Engine{
		weights:          w,
		newItemUrgency:   cfg.NewItemUrgency,
		overdueSlope:     cfg.OverdueSlope,
		urgencyCap:       cfg.UrgencyCap,
		notDueBase:       cfg.NotDueBase,
		notDueFloor:      cfg.NotDueFloor,
		notDueDecayHours: cfg.NotDueDecayHours,
	}
	if e.newItemUrgency == 0 {
		e.newItemUrgency = 1.5
	}
	if e.overdueSlope == 0 {
		e.overdueSlope = 0.5
	}
	if e.urgencyCap == 0 {
		e.urgencyCap = 3
	}
	if e.notDueBase == 0 {
		e.notDueBase = 0.5
	}
	if e.notDueFloor == 0 {
		e.notDueFloor = 0.1
	}
	if e.notDueDecayHours == 0 {
		e.notDueDecayHours = 168
	}
	return e, nil
}

// Score computes the full priority record for one candidate against the
// learner's ability and band at the given time.
func (e *Engine) Score(item Item, ability float64, band Band, now time.Time) Record {
	value := e.valueScore(item.Metrics, band)
	cost := e.costScore(item, ability)
	urgency := e.Urgency(item.Due, now)

	prio := value / cost
	return Record{
		ValueScore: value,
		CostScore:  cost,
		Priority:   prio,
		Urgency:    urgency,
		FinalScore: prio * (1 + urgency),
	}
}

// valueScore = w_f·F + w_r·R + w_e·E under the band's weight table.
func (e *Engine) valueScore(m ItemMetrics, band Band) float64 {
	wt, ok := e.weights[band]
	if !ok {
		// Validate guarantees totality for known bands; an unknown band
		// from a caller degrades to the intermediate profile.
		wt = e.weights[BandIntermediate]
	}
	return wt.Frequency*metric(m.Frequency) +
		wt.Relational*metric(m.Relational) +
		wt.Contextual*metric(m.Contextual)
}

// costScore = max(0.1, baseDifficulty − transferGain + exposureNeed).
func (e *Engine) costScore(item Item, ability float64) float64 {
	baseDifficulty := (item.Difficulty + 3) / 6
	exposureNeed := clamp((item.Difficulty-ability)/3, 0, 1)
	return math.Max(costFloor, baseDifficulty-metric(item.Metrics.TransferGain)+exposureNeed)
}

// Urgency derives the scheduling multiplier from the due date: 1.5 for a
// never-scheduled item, a capped linear ramp once overdue, and a decay
// toward the floor while the due date is still out.
func (e *Engine) Urgency(due *time.Time, now time.Time) float64 {
	if due == nil {
		return e.newItemUrgency
	}
	if !now.Before(*due) {
		overdueDays := now.Sub(*due).Hours() / 24.0
		return math.Min(e.urgencyCap, 1+overdueDays*e.overdueSlope)
	}
	hoursUntil := due.Sub(now).Hours()
	return math.Max(e.notDueFloor, e.notDueBase-hoursUntil/e.notDueDecayHours)
}

func metric(v *float64) float64 {
	if v == nil {
		return neutralMetric
	}
	return *v
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
