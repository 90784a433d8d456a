package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
)

// CalibrationEvent records one batch EM calibration run over the
// review log, for audit of when item parameters changed.
type CalibrationEvent struct {
	ent.Schema
}

func (CalibrationEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (CalibrationEvent) Fields() []ent.Field {
	return []ent.Field{
		field.Int("learner_count"),
		field.Int("item_count"),
		field.Int("response_count"),
		field.Int("iterations"),
		field.Bool("converged"),
		field.Bool("three_parameter"),
	}
}
