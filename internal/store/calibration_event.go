package store

import (
	"context"
	"fmt"
)

func (r *eventRepo) AppendCalibration(ctx context.Context, data CalibrationEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.CalibrationEvent.Create().
		SetSequence(seqNum).
		SetLearnerCount(data.LearnerCount).
		SetItemCount(data.ItemCount).
		SetResponseCount(data.ResponseCount).
		SetIterations(data.Iterations).
		SetConverged(data.Converged).
		SetThreeParameter(data.ThreeParameter).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save calibration event: %w", err)
	}
	return nil
}
