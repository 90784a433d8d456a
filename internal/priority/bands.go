package priority

import (
	"errors"
	"fmt"
	"math"
)

// Band is the learner's proficiency band, used to select value weights.
type Band string

const (
	BandBeginner     Band = "beginner"
	BandIntermediate Band = "intermediate"
	BandAdvanced     Band = "advanced"
)

// AllBands returns every band in progression order.
func AllBands() []Band {
	return []Band{BandBeginner, BandIntermediate, BandAdvanced}
}

// IsValid reports whether b is a defined band.
func (b Band) IsValid() bool {
	switch b {
	case BandBeginner, BandIntermediate, BandAdvanced:
		return true
	}
	return false
}

// WeightTable holds the value-score weights for one band. The three
// weights apply to frequency, relational density, and contextual
// contribution respectively and should sum to 1.
type WeightTable struct {
	Frequency  float64 `json:"frequency"`
	Relational float64 `json:"relational"`
	Contextual float64 `json:"contextual"`
}

// BandWeights maps every band to its weight table. The mapping must be
// total: a missing band is a configuration fault caught at load time,
// never at scoring time.
type BandWeights map[Band]WeightTable

var (
	ErrMissingBand      = errors.New("priority: weight table missing a band")
	ErrUnknownBand      = errors.New("priority: unknown band in weight table")
	ErrWeightsNotNormal = errors.New("priority: band weights must sum to 1")
)

// DefaultBandWeights returns the stock tables: beginners lean on raw
// frequency, advanced learners on contextual contribution.
func DefaultBandWeights() BandWeights {
	return BandWeights{
		BandBeginner:     {Frequency: 0.6, Relational: 0.25, Contextual: 0.15},
		BandIntermediate: {Frequency: 0.4, Relational: 0.35, Contextual: 0.25},
		BandAdvanced:     {Frequency: 0.2, Relational: 0.35, Contextual: 0.45},
	}
}

// Validate checks that the mapping covers every band, names no unknown
// bands, and that each table is normalized.
func (bw BandWeights) Validate() error {
	for band := range bw {
		if !band.IsValid() {
			return fmt.Errorf("%w: %q", ErrUnknownBand, band)
		}
	}
	for _, band := range AllBands() {
		wt, ok := bw[band]
		if !ok {
			return fmt.Errorf("%w: %q", ErrMissingBand, band)
		}
		sum := wt.Frequency + wt.Relational + wt.Contextual
		if math.Abs(sum-1) > 1e-6 {
			return fmt.Errorf("%w: %q sums to %f", ErrWeightsNotNormal, band, sum)
		}
		if wt.Frequency < 0 || wt.Relational < 0 || wt.Contextual < 0 {
			return fmt.Errorf("%w: %q has a negative weight", ErrWeightsNotNormal, band)
		}
	}
	return nil
}
