package store

import (
	"context"
	"fmt"

	"github.com/tomatokenizer-web/LOGOSproject-sub002/ent"
	"github.com/tomatokenizer-web/LOGOSproject-sub002/ent/abilityevent"
)

func (r *eventRepo) AppendAbility(ctx context.Context, data AbilityEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.AbilityEvent.Create().
		SetSequence(seqNum).
		SetLearnerID(data.LearnerID).
		SetDimension(data.Dimension).
		SetTheta(data.Theta).
		SetStdErr(data.StdErr).
		SetFlagged(data.Flagged).
		SetResponseCount(data.ResponseCount).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save ability event: %w", err)
	}
	return nil
}

func (r *eventRepo) AbilityTrajectory(ctx context.Context, learnerID, dim string) ([]AbilityEventData, error) {
	events, err := r.client.AbilityEvent.Query().
		Where(
			abilityevent.LearnerID(learnerID),
			abilityevent.Dimension(dim),
		).
		Order(ent.Asc(abilityevent.FieldSequence)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query ability trajectory: %w", err)
	}

	out := make([]AbilityEventData, 0, len(events))
	for _, e := range events {
		out = append(out, AbilityEventData{
			LearnerID:     e.LearnerID,
			Dimension:     e.Dimension,
			Theta:         e.Theta,
			StdErr:        e.StdErr,
			Flagged:       e.Flagged,
			ResponseCount: e.ResponseCount,
		})
	}
	return out, nil
}
