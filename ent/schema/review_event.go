package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ReviewEvent records one scored item review: the raw outcome, the
// derived rating, and the memory state the scheduler produced from it.
// This log is the input to batch calibration.
type ReviewEvent struct {
	ent.Schema
}

func (ReviewEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (ReviewEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("learner_id").NotEmpty(),
		field.String("item_id").NotEmpty(),
		field.String("dimension").NotEmpty(),
		field.String("rating").NotEmpty(),
		field.Bool("correct"),
		field.Bool("cue_used"),
		field.Int64("latency_ms"),
		field.Float("stability"),
		field.Float("difficulty"),
		field.String("state").NotEmpty(),
		field.String("session_id").Optional(),
	}
}

func (ReviewEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("learner_id"),
		index.Fields("item_id"),
		index.Fields("learner_id", "item_id"),
	}
}
