package spacedrep

import (
	"errors"
	"fmt"
)

// Rating is the 4-point review grade derived from a raw response.
type Rating int

const (
	Again Rating = iota + 1 // Incorrect answer.
	Hard                    // Correct, but a cue was needed.
	Good                    // Correct without a cue, slower than the fast threshold.
	Easy                    // Correct without a cue, at or under the fast threshold.
)

var ratingNames = [...]string{Again: "again", Hard: "hard", Good: "good", Easy: "easy"}

var ratingByName = map[string]Rating{
	"again": Again,
	"hard":  Hard,
	"good":  Good,
	"easy":  Easy,
}

var ErrInvalidRating = errors.New("spacedrep: invalid rating")

// String returns the rating name, or "Rating(n)" for invalid values.
func (r Rating) String() string {
	if r.IsValid() {
		return ratingNames[r]
	}
	return fmt.Sprintf("Rating(%d)", int(r))
}

// IsValid reports whether r is one of the four defined ratings.
func (r Rating) IsValid() bool {
	return r >= Again && r <= Easy
}

// MarshalText implements encoding.TextMarshaler.
func (r Rating) MarshalText() ([]byte, error) {
	if !r.IsValid() {
		return nil, fmt.Errorf("%w: %d", ErrInvalidRating, int(r))
	}
	return []byte(ratingNames[r]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (r *Rating) UnmarshalText(text []byte) error {
	v, ok := ratingByName[string(text)]
	if !ok {
		return fmt.Errorf("%w: %q", ErrInvalidRating, text)
	}
	*r = v
	return nil
}

// Outcome is the raw response as captured by the presentation layer.
type Outcome struct {
	Correct   bool
	CueUsed   bool
	LatencyMs int
}

// DeriveRating maps a raw outcome to the 4-point rating scale.
// fastLatencyMs is the latency threshold separating Good from Easy.
func DeriveRating(o Outcome, fastLatencyMs int) Rating {
	switch {
	case !o.Correct:
		return Again
	case o.CueUsed:
		return Hard
	case o.LatencyMs <= fastLatencyMs:
		return Easy
	default:
		return Good
	}
}
