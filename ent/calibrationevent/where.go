// Code generated by ent, DO NOT EDIT.

package calibrationevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/tomatokenizer-web/LOGOSproject-sub002/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.CalibrationEvent {
	return predicate.CalibrationEvent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.CalibrationEvent {
	return predicate.CalibrationEvent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.CalibrationEvent {
	return predicate.CalibrationEvent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.CalibrationEvent {
	return predicate.CalibrationEvent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.CalibrationEvent {
	return predicate.CalibrationEvent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.CalibrationEvent {
	return predicate.CalibrationEvent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.CalibrationEvent {
	return predicate.CalibrationEvent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.CalibrationEvent {
	return predicate.CalibrationEvent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.CalibrationEvent {
	return predicate.CalibrationEvent(sql.FieldLTE(FieldID, id))
}

// Sequence applies equality check predicate on the "sequence" field. It's identical to SequenceEQ.
func Sequence(v int64) predicate.CalibrationEvent {
	return predicate.CalibrationEvent(sql.FieldEQ(FieldSequence, v))
}

// Timestamp applies equality check predicate on the "timestamp" field. It's identical to TimestampEQ.
func Timestamp(v time.Time) predicate.CalibrationEvent {
	return predicate.CalibrationEvent(sql.FieldEQ(FieldTimestamp, v))
}

// LearnerCount applies equality check predicate on the "learner_count" field. It's identical to LearnerCountEQ.
func LearnerCount(v int) predicate.CalibrationEvent {
	return predicate.CalibrationEvent(sql.FieldEQ(FieldLearnerCount, v))
}

// ItemCount applies equality check predicate on the "item_count" field. It's identical to ItemCountEQ.
func ItemCount(v int) predicate.CalibrationEvent {
	return predicate.CalibrationEvent(sql.FieldEQ(FieldItemCount, v))
}

// ResponseCount applies equality check predicate on the "response_count" field. It's identical to ResponseCountEQ.
func ResponseCount(v int) predicate.CalibrationEvent {
	return predicate.CalibrationEvent(sql.FieldEQ(FieldResponseCount, v))
}

// Iterations applies equality check predicate on the "iterations" field. It's identical to IterationsEQ.
func Iterations(v int) predicate.CalibrationEvent {
	return predicate.CalibrationEvent(sql.FieldEQ(FieldIterations, v))
}

// Converged applies equality check predicate on the "converged" field. It's identical to ConvergedEQ.
func Converged(v bool) predicate.CalibrationEvent {
	return predicate.CalibrationEvent(sql.FieldEQ(FieldConverged, v))
}

// ThreeParameter applies equality check predicate on the "three_parameter" field. It's identical to ThreeParameterEQ.
func ThreeParameter(v bool) predicate.CalibrationEvent {
	return predicate.CalibrationEvent(sql.FieldEQ(FieldThreeParameter, v))
}

// SequenceEQ applies the EQ predicate on the "sequence" field.
func SequenceEQ(v int64) predicate.CalibrationEvent {
	return predicate.CalibrationEvent(sql.FieldEQ(FieldSequence, v))
}

// SequenceNEQ applies the NEQ predicate on the "sequence" field.
func SequenceNEQ(v int64) predicate.CalibrationEvent {
	return predicate.CalibrationEvent(sql.FieldNEQ(FieldSequence, v))
}

// SequenceIn applies the In predicate on the "sequence" field.
func SequenceIn(vs ...int64) predicate.CalibrationEvent {
	return predicate.CalibrationEvent(sql.FieldIn(FieldSequence, vs...))
}

// SequenceNotIn applies the NotIn predicate on the "sequence" field.
func SequenceNotIn(vs ...int64) predicate.CalibrationEvent {
	return predicate.CalibrationEvent(sql.FieldNotIn(FieldSequence, vs...))
}

// SequenceGT applies the GT predicate on the "sequence" field.
func SequenceGT(v int64) predicate.CalibrationEvent {
	return predicate.CalibrationEvent(sql.FieldGT(FieldSequence, v))
}

// SequenceGTE applies the GTE predicate on the "sequence" field.
func SequenceGTE(v int64) predicate.CalibrationEvent {
	return predicate.CalibrationEvent(sql.FieldGTE(FieldSequence, v))
}

// SequenceLT applies the LT predicate on the "sequence" field.
func SequenceLT(v int64) predicate.CalibrationEvent {
	return predicate.CalibrationEvent(sql.FieldLT(FieldSequence, v))
}

// SequenceLTE applies the LTE predicate on the "sequence" field.
func SequenceLTE(v int64) predicate.CalibrationEvent {
	return predicate.CalibrationEvent(sql.FieldLTE(FieldSequence, v))
}

// TimestampEQ applies the EQ predicate on the "timestamp" field.
func TimestampEQ(v time.Time) predicate.CalibrationEvent {
	return predicate.CalibrationEvent(sql.FieldEQ(FieldTimestamp, v))
}

// TimestampNEQ applies the NEQ predicate on the "timestamp" field.
func TimestampNEQ(v time.Time) predicate.CalibrationEvent {
	return predicate.CalibrationEvent(sql.FieldNEQ(FieldTimestamp, v))
}

// TimestampIn applies the In predicate on the "timestamp" field.
func TimestampIn(vs ...time.Time) predicate.CalibrationEvent {
	return predicate.CalibrationEvent(sql.FieldIn(FieldTimestamp, vs...))
}

// TimestampNotIn applies the NotIn predicate on the "timestamp" field.
func TimestampNotIn(vs ...time.Time) predicate.CalibrationEvent {
	return predicate.CalibrationEvent(sql.FieldNotIn(FieldTimestamp, vs...))
}

// TimestampGT applies the GT predicate on the "timestamp" field.
func TimestampGT(v time.Time) predicate.CalibrationEvent {
	return predicate.CalibrationEvent(sql.FieldGT(FieldTimestamp, v))
}

// TimestampGTE applies the GTE predicate on the "timestamp" field.
func TimestampGTE(v time.Time) predicate.CalibrationEvent {
	return predicate.CalibrationEvent(sql.FieldGTE(FieldTimestamp, v))
}

// TimestampLT applies the LT predicate on the "timestamp" field.
func TimestampLT(v time.Time) predicate.CalibrationEvent {
	return predicate.CalibrationEvent(sql.FieldLT(FieldTimestamp, v))
}

// TimestampLTE applies the LTE predicate on the "timestamp" field.
func TimestampLTE(v time.Time) predicate.CalibrationEvent {
	return predicate.CalibrationEvent(sql.FieldLTE(FieldTimestamp, v))
}

// LearnerCountEQ applies the EQ predicate on the "learner_count" field.
func LearnerCountEQ(v int) predicate.CalibrationEvent {
	return predicate.CalibrationEvent(sql.FieldEQ(FieldLearnerCount, v))
}

// LearnerCountNEQ applies the NEQ predicate on the "learner_count" field.
func LearnerCountNEQ(v int) predicate.CalibrationEvent {
	return predicate.CalibrationEvent(sql.FieldNEQ(FieldLearnerCount, v))
}

// LearnerCountIn applies the In predicate on the "learner_count" field.
func LearnerCountIn(vs ...int) predicate.CalibrationEvent {
	return predicate.CalibrationEvent(sql.FieldIn(FieldLearnerCount, vs...))
}

// LearnerCountNotIn applies the NotIn predicate on the "learner_count" field.
func LearnerCountNotIn(vs ...int) predicate.CalibrationEvent {
	return predicate.CalibrationEvent(sql.FieldNotIn(FieldLearnerCount, vs...))
}

// LearnerCountGT applies the GT predicate on the "learner_count" field.
func LearnerCountGT(v int) predicate.CalibrationEvent {
	return predicate.CalibrationEvent(sql.FieldGT(FieldLearnerCount, v))
}

// LearnerCountGTE applies the GTE predicate on the "learner_count" field.
func LearnerCountGTE(v int) predicate.CalibrationEvent {
	return predicate.CalibrationEvent(sql.FieldGTE(FieldLearnerCount, v))
}

// LearnerCountLT applies the LT predicate on the "learner_count" field.
func LearnerCountLT(v int) predicate.CalibrationEvent {
	return predicate.CalibrationEvent(sql.FieldLT(FieldLearnerCount, v))
}

// LearnerCountLTE applies the LTE predicate on the "learner_count" field.
func LearnerCountLTE(v int) predicate.CalibrationEvent {
	return predicate.CalibrationEvent(sql.FieldLTE(FieldLearnerCount, v))
}

// ItemCountEQ applies the EQ predicate on the "item_count" field.
func ItemCountEQ(v int) predicate.CalibrationEvent {
	return predicate.CalibrationEvent(sql.FieldEQ(FieldItemCount, v))
}

// ItemCountNEQ applies the NEQ predicate on the "item_count" field.
func ItemCountNEQ(v int) predicate.CalibrationEvent {
	return predicate.CalibrationEvent(sql.FieldNEQ(FieldItemCount, v))
}

// ItemCountIn applies the In predicate on the "item_count" field.
func ItemCountIn(vs ...int) predicate.CalibrationEvent {
	return predicate.CalibrationEvent(sql.FieldIn(FieldItemCount, vs...))
}

// ItemCountNotIn applies the NotIn predicate on the "item_count" field.
func ItemCountNotIn(vs ...int) predicate.CalibrationEvent {
	return predicate.CalibrationEvent(sql.FieldNotIn(FieldItemCount, vs...))
}

// ItemCountGT applies the GT predicate on the "item_count" field.
func ItemCountGT(v int) predicate.CalibrationEvent {
	return predicate.CalibrationEvent(sql.FieldGT(FieldItemCount, v))
}

// ItemCountGTE applies the GTE predicate on the "item_count" field.
func ItemCountGTE(v int) predicate.CalibrationEvent {
	return predicate.CalibrationEvent(sql.FieldGTE(FieldItemCount, v))
}

// ItemCountLT applies the LT predicate on the "item_count" field.
func ItemCountLT(v int) predicate.CalibrationEvent {
	return predicate.CalibrationEvent(sql.FieldLT(FieldItemCount, v))
}

// ItemCountLTE applies the LTE predicate on the "item_count" field.
func ItemCountLTE(v int) predicate.CalibrationEvent {
	return predicate.CalibrationEvent(sql.FieldLTE(FieldItemCount, v))
}

// ResponseCountEQ applies the EQ predicate on the "response_count" field.
func ResponseCountEQ(v int) predicate.CalibrationEvent {
	return predicate.CalibrationEvent(sql.FieldEQ(FieldResponseCount, v))
}

// ResponseCountNEQ applies the NEQ predicate on the "response_count" field.
func ResponseCountNEQ(v int) predicate.CalibrationEvent {
	return predicate.CalibrationEvent(sql.FieldNEQ(FieldResponseCount, v))
}

// ResponseCountIn applies the In predicate on the "response_count" field.
func ResponseCountIn(vs ...int) predicate.CalibrationEvent {
	return predicate.CalibrationEvent(sql.FieldIn(FieldResponseCount, vs...))
}

// ResponseCountNotIn applies the NotIn predicate on the "response_count" field.
func ResponseCountNotIn(vs ...int) predicate.CalibrationEvent {
	return predicate.CalibrationEvent(sql.FieldNotIn(FieldResponseCount, vs...))
}

// ResponseCountGT applies the GT predicate on the "response_count" field.
func ResponseCountGT(v int) predicate.CalibrationEvent {
	return predicate.CalibrationEvent(sql.FieldGT(FieldResponseCount, v))
}

// ResponseCountGTE applies the GTE predicate on the "response_count" field.
func ResponseCountGTE(v int) predicate.CalibrationEvent {
	return predicate.CalibrationEvent(sql.FieldGTE(FieldResponseCount, v))
}

// ResponseCountLT applies the LT predicate on the "response_count" field.
func ResponseCountLT(v int) predicate.CalibrationEvent {
	return predicate.CalibrationEvent(sql.FieldLT(FieldResponseCount, v))
}

// ResponseCountLTE applies the LTE predicate on the "response_count" field.
func ResponseCountLTE(v int) predicate.CalibrationEvent {
	return predicate.CalibrationEvent(sql.FieldLTE(FieldResponseCount, v))
}

// IterationsEQ applies the EQ predicate on the "iterations" field.
func IterationsEQ(v int) predicate.CalibrationEvent {
	return predicate.CalibrationEvent(sql.FieldEQ(FieldIterations, v))
}

// IterationsNEQ applies the NEQ predicate on the "iterations" field.
func IterationsNEQ(v int) predicate.CalibrationEvent {
	return predicate.CalibrationEvent(sql.FieldNEQ(FieldIterations, v))
}

// IterationsIn applies the In predicate on the "iterations" field.
func IterationsIn(vs ...int) predicate.CalibrationEvent {
	return predicate.CalibrationEvent(sql.FieldIn(FieldIterations, vs...))
}

// IterationsNotIn applies the NotIn predicate on the "iterations" field.
func IterationsNotIn(vs ...int) predicate.CalibrationEvent {
	return predicate.CalibrationEvent(sql.FieldNotIn(FieldIterations, vs...))
}

// IterationsGT applies the GT predicate on the "iterations" field.
func IterationsGT(v int) predicate.CalibrationEvent {
	return predicate.CalibrationEvent(sql.FieldGT(FieldIterations, v))
}

// IterationsGTE applies the GTE predicate on the "iterations" field.
func IterationsGTE(v int) predicate.CalibrationEvent {
	return predicate.CalibrationEvent(sql.FieldGTE(FieldIterations, v))
}

// IterationsLT applies the LT predicate on the "iterations" field.
func IterationsLT(v int) predicate.CalibrationEvent {
	return predicate.CalibrationEvent(sql.FieldLT(FieldIterations, v))
}

// IterationsLTE applies the LTE predicate on the "iterations" field.
func IterationsLTE(v int) predicate.CalibrationEvent {
	return predicate.CalibrationEvent(sql.FieldLTE(FieldIterations, v))
}

// ConvergedEQ applies the EQ predicate on the "converged" field.
func ConvergedEQ(v bool) predicate.CalibrationEvent {
	return predicate.CalibrationEvent(sql.FieldEQ(FieldConverged, v))
}

// ConvergedNEQ applies the NEQ predicate on the "converged" field.
func ConvergedNEQ(v bool) predicate.CalibrationEvent {
	return predicate.CalibrationEvent(sql.FieldNEQ(FieldConverged, v))
}

// ThreeParameterEQ applies the EQ predicate on the "three_parameter" field.
func ThreeParameterEQ(v bool) predicate.CalibrationEvent {
	return predicate.CalibrationEvent(sql.FieldEQ(FieldThreeParameter, v))
}

// ThreeParameterNEQ applies the NEQ predicate on the "three_parameter" field.
func ThreeParameterNEQ(v bool) predicate.CalibrationEvent {
	return predicate.CalibrationEvent(sql.FieldNEQ(FieldThreeParameter, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.CalibrationEvent) predicate.CalibrationEvent {
	return predicate.CalibrationEvent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.CalibrationEvent) predicate.CalibrationEvent {
	return predicate.CalibrationEvent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.CalibrationEvent) predicate.CalibrationEvent {
	return predicate.CalibrationEvent(sql.NotPredicates(p))
}
