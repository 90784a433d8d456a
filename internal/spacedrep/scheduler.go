// Package spacedrep models per-item memory under an exponential
// forgetting curve and schedules the next review date. A review outcome
// is graded onto a 4-point rating scale, the rating drives stability and
// difficulty updates, and the updated stability fixes the next interval.
package spacedrep

import (
	"fmt"
	"math"
	"time"
)

// SchedulerConfig configures a Scheduler.
// Zero values produce the documented defaults.
type SchedulerConfig struct {
	Weights         *Weights `json:"weights,omitempty"`  // nil → DefaultWeights
	TargetRetention float64  `json:"target_retention"`   // zero → 0.9
	MaximumInterval int      `json:"maximum_interval"`   // zero → 36500 days
	FastLatencyMs   int      `json:"fast_latency_ms"`    // zero → 3000
}

// Scheduler applies the memory-model update rules. It is pure over its
// inputs and safe for concurrent use across learners.
type Scheduler struct {
	w               Weights
	targetRetention float64
	maximumInterval int
	fastLatencyMs   int
	intervalScale   float64 // ln(targetRetention)/ln(0.9), precomputed
}

// NewScheduler creates a Scheduler from the given config.
// Zero-value fields are filled with defaults; invalid values return an error.
func NewScheduler(cfg SchedulerConfig) (*Scheduler, error) {
	w := DefaultWeights()
	if cfg.Weights != nil {
		w = *cfg.Weights
	}
	if err := w.Validate(); err != nil {
		return nil, err
	}

	tr := cfg.TargetRetention
	if tr == 0 {
		tr = 0.9
	}
	if tr <= 0 || tr >= 1 {
		return nil, fmt.Errorf("spacedrep: target retention %f out of range (0, 1)", tr)
	}

	maxIvl := cfg.MaximumInterval
	if maxIvl == 0 {
		maxIvl = 36500
	}
	if maxIvl < 1 {
		return nil, fmt.Errorf("spacedrep: maximum interval %d must be at least 1 day", maxIvl)
	}

	fast := cfg.FastLatencyMs
	if fast == 0 {
		fast = 3000
	}
	if fast < 0 {
		return nil, fmt.Errorf("spacedrep: fast latency %d must be non-negative", fast)
	}

	return &Scheduler{
		w:               w,
		targetRetention: tr,
		maximumInterval: maxIvl,
		fastLatencyMs:   fast,
		intervalScale:   math.Log(tr) / math.Log(0.9),
	}, nil
}

// Review grades the outcome and applies one review at the given time.
// The input record is not mutated; the derived rating is returned with
// the updated record.
func (s *Scheduler) Review(rec MemoryRecord, o Outcome, now time.Time) (MemoryRecord, Rating) {
	rating := DeriveRating(o, s.fastLatencyMs)
	return s.ReviewRated(rec, rating, now), rating
}

// ReviewRated applies one review with an already-derived rating.
func (s *Scheduler) ReviewRated(rec MemoryRecord, rating Rating, now time.Time) MemoryRecord {
	c := rec

	if c.LastReview == nil {
		// First exposure: seed stability and difficulty from the
		// rating-indexed constants; there is no prior state to blend.
		c.Stability = clampStability(s.w.InitStability[rating-1])
		c.Difficulty = clampDifficulty(s.w.InitDifficulty[rating-1])
	} else {
		elapsed := now.Sub(*c.LastReview).Hours() / 24.0
		if elapsed < 0 {
			elapsed = 0
		}
		retr := math.Exp(-elapsed / c.Stability)

		if rating == Again {
			c.Stability = s.forgetStability(c.Difficulty, c.Stability)
		} else {
			c.Stability = s.recallStability(c.Difficulty, c.Stability, retr, rating)
		}
		c.Difficulty = clampDifficulty(c.Difficulty - s.w.DifficultyStep*float64(rating-3))
	}

	c.Repetitions++
	if rating == Again {
		c.Lapses++
		c.State = StateRelearning
	} else {
		c.State = StateReview
	}

	days := s.NextIntervalDays(c.Stability)
	c.Due = now.Add(time.Duration(days) * 24 * time.Hour)
	c.LastReview = &now

	return c
}

// Preview returns the result of reviewing the record under each of the
// four ratings, for what-if display by external consumers.
func (s *Scheduler) Preview(rec MemoryRecord, now time.Time) map[Rating]MemoryRecord {
	out := make(map[Rating]MemoryRecord, 4)
	for _, r := range []Rating{Again, Hard, Good, Easy} {
		out[r] = s.ReviewRated(rec, r, now)
	}
	return out
}

// NextIntervalDays converts a stability into the next review interval:
// round(S · ln(targetRetention)/ln(0.9)), clamped to [1, maximumInterval].
func (s *Scheduler) NextIntervalDays(stability float64) int {
	days := int(math.Round(stability * s.intervalScale))
	if days < 1 {
		days = 1
	}
	if days > s.maximumInterval {
		days = s.maximumInterval
	}
	return days
}

// FastLatencyMs returns the Good/Easy latency threshold in use.
func (s *Scheduler) FastLatencyMs() int {
	return s.fastLatencyMs
}

// recallStability grows stability after a successful recall:
//
//	S' = S · (1 + e^k₈ · (11−D) · S^(−k₉) · (e^((1−R)·k₁₀)−1) · H · E)
//
// H applies only on Hard, E only on Easy.
func (s *Scheduler) recallStability(d, stab, retr float64, rating Rating) float64 {
	hardPenalty := 1.0
	if rating == Hard {
		hardPenalty = s.w.HardPenalty
	}
	easyBonus := 1.0
	if rating == Easy {
		easyBonus = s.w.EasyBonus
	}
	grown := stab * (1 + math.Exp(s.w.RecallScale)*
		(11-d)*
		math.Pow(stab, -s.w.StabilityDecay)*
		(math.Exp((1-retr)*s.w.RetrievabilityGain)-1)*
		hardPenalty*easyBonus)
	return clampStability(grown)
}

// forgetStability recomputes stability after a lapse:
//
//	S' = k₁₁ · D^(−k₁₂) · (S+1)^k₁₃
//
// floored to MinStability.
func (s *Scheduler) forgetStability(d, stab float64) float64 {
	return clampStability(s.w.ForgetScale *
		math.Pow(d, -s.w.ForgetDifficultyExp) *
		math.Pow(stab+1, s.w.ForgetStabilityExp))
}
