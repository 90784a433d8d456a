package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AbilityEvent records one ability re-estimation for a learner and
// dimension. Estimates are never destroyed, only superseded; the log
// keeps the full trajectory.
type AbilityEvent struct {
	ent.Schema
}

func (AbilityEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (AbilityEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("learner_id").NotEmpty(),
		field.String("dimension").NotEmpty(),
		field.Float("theta"),
		field.Float("std_err"),
		field.Bool("flagged"),
		field.Int("response_count"),
	}
}

func (AbilityEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("learner_id", "dimension"),
	}
}
