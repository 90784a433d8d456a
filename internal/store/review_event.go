package store

import (
	"context"
	"fmt"
	"time"

	"github.com/tomatokenizer-web/LOGOSproject-sub002/ent"
	"github.com/tomatokenizer-web/LOGOSproject-sub002/ent/reviewevent"
)

func (r *eventRepo) AppendReview(ctx context.Context, data ReviewEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	builder := r.client.ReviewEvent.Create().
		SetSequence(seqNum).
		SetLearnerID(data.LearnerID).
		SetItemID(data.ItemID).
		SetDimension(data.Dimension).
		SetRating(data.Rating).
		SetCorrect(data.Correct).
		SetCueUsed(data.CueUsed).
		SetLatencyMs(data.LatencyMs).
		SetStability(data.Stability).
		SetDifficulty(data.Difficulty).
		SetState(data.State)

	if data.SessionID != "" {
		builder = builder.SetSessionID(data.SessionID)
	}

	_, err = builder.Save(ctx)
	if err != nil {
		return fmt.Errorf("save review event: %w", err)
	}
	return nil
}

func (r *eventRepo) ReviewObservations(ctx context.Context) ([]ReviewObservation, error) {
	events, err := r.client.ReviewEvent.Query().
		Order(ent.Asc(reviewevent.FieldSequence)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query review events: %w", err)
	}

	obs := make([]ReviewObservation, 0, len(events))
	for _, e := range events {
		obs = append(obs, ReviewObservation{
			LearnerID: e.LearnerID,
			ItemID:    e.ItemID,
			Correct:   e.Correct,
		})
	}
	return obs, nil
}

func (r *eventRepo) ItemAccuracy(ctx context.Context, itemID string) (float64, int, error) {
	events, err := r.client.ReviewEvent.Query().
		Where(reviewevent.ItemID(itemID)).
		All(ctx)
	if err != nil {
		return 0, 0, fmt.Errorf("query item reviews: %w", err)
	}
	if len(events) == 0 {
		return 0, 0, nil
	}

	correct := 0
	for _, e := range events {
		if e.Correct {
			correct++
		}
	}
	return float64(correct) / float64(len(events)), len(events), nil
}

func (r *eventRepo) LatestReviewTime(ctx context.Context, learnerID string) (time.Time, error) {
	e, err := r.client.ReviewEvent.Query().
		Where(reviewevent.LearnerID(learnerID)).
		Order(ent.Desc(reviewevent.FieldTimestamp)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return time.Time{}, nil
		}
		return time.Time{}, fmt.Errorf("query latest review time: %w", err)
	}
	return e.Timestamp, nil
}
