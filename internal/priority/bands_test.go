package priority

import (
	"errors"
	"testing"
)

func TestBandIsValid(t *testing.T) {
	for _, b := range AllBands() {
		if !b.IsValid() {
			t.Errorf("%q should be valid", b)
		}
	}
	if Band("expert").IsValid() {
		t.Error("undefined band accepted")
	}
}

func TestDefaultBandWeights_Valid(t *testing.T) {
	if err := DefaultBandWeights().Validate(); err != nil {
		t.Fatalf("default weights invalid: %v", err)
	}
}

func TestBandWeightsValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(BandWeights)
		wantErr error
	}{
		{
			name:    "missing band",
			mutate:  func(bw BandWeights) { delete(bw, BandAdvanced) },
			wantErr: ErrMissingBand,
		},
		{
			name:    "unknown band",
			mutate:  func(bw BandWeights) { bw[Band("expert")] = WeightTable{Frequency: 1} },
			wantErr: ErrUnknownBand,
		},
		{
			name: "sum above one",
			mutate: func(bw BandWeights) {
				bw[BandBeginner] = WeightTable{Frequency: 0.6, Relational: 0.3, Contextual: 0.3}
			},
			wantErr: ErrWeightsNotNormal,
		},
		{
			name: "negative weight",
			mutate: func(bw BandWeights) {
				bw[BandBeginner] = WeightTable{Frequency: 1.2, Relational: -0.1, Contextual: -0.1}
			},
			wantErr: ErrWeightsNotNormal,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bw := DefaultBandWeights()
			tt.mutate(bw)
			err := bw.Validate()
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Validate() = %v, want %v", err, tt.wantErr)
			}
		})
	}
}
