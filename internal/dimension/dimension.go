// Package dimension enumerates the tracked skill dimensions. The set is
// small and fixed, so ability state is held in a flat array indexed by
// Dimension rather than a map.
package dimension

import (
	"errors"
	"fmt"
)

// Dimension identifies one tracked skill axis. Global is the aggregate
// over all axes and is always index 0.
type Dimension uint8

const (
	Global Dimension = iota
	Vocabulary
	Grammar
	Listening
	Reading
	Production

	count
)

// Count is the number of dimensions including the global aggregate,
// sized for array-backed per-dimension state.
const Count = int(count)

var ErrUnknownDimension = errors.New("dimension: unknown dimension")

var names = [count]string{
	Global:     "global",
	Vocabulary: "vocabulary",
	Grammar:    "grammar",
	Listening:  "listening",
	Reading:    "reading",
	Production: "production",
}

// All returns every dimension in index order, Global first.
func All() []Dimension {
	out := make([]Dimension, Count)
	for i := range out {
		out[i] = Dimension(i)
	}
	return out
}

// IsValid reports whether d indexes a defined dimension.
func (d Dimension) IsValid() bool { return d < count }

func (d Dimension) String() string {
	if !d.IsValid() {
		return fmt.Sprintf("dimension(%d)", uint8(d))
	}
	return names[d]
}

// Parse resolves a dimension name as it appears in configuration and
// persisted events.
func Parse(s string) (Dimension, error) {
	for i, name := range names {
		if s == name {
			return Dimension(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownDimension, s)
}

func (d Dimension) MarshalText() ([]byte, error) {
	if !d.IsValid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownDimension, uint8(d))
	}
	return []byte(names[d]), nil
}

func (d *Dimension) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
