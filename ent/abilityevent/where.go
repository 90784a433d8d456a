// Code generated by ent, DO NOT EDIT.

package abilityevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/tomatokenizer-web/LOGOSproject-sub002/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.AbilityEvent {
	return predicate.AbilityEvent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.AbilityEvent {
	return predicate.AbilityEvent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.AbilityEvent {
	return predicate.AbilityEvent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.AbilityEvent {
	return predicate.AbilityEvent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.AbilityEvent {
	return predicate.AbilityEvent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.AbilityEvent {
	return predicate.AbilityEvent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.AbilityEvent {
	return predicate.AbilityEvent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.AbilityEvent {
	return predicate.AbilityEvent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.AbilityEvent {
	return predicate.AbilityEvent(sql.FieldLTE(FieldID, id))
}

// Sequence applies equality check predicate on the "sequence" field. It's identical to SequenceEQ.
func Sequence(v int64) predicate.AbilityEvent {
	return predicate.AbilityEvent(sql.FieldEQ(FieldSequence, v))
}

// Timestamp applies equality check predicate on the "timestamp" field. It's identical to TimestampEQ.
func Timestamp(v time.Time) predicate.AbilityEvent {
	return predicate.AbilityEvent(sql.FieldEQ(FieldTimestamp, v))
}

// LearnerID applies equality check predicate on the "learner_id" field. It's identical to LearnerIDEQ.
func LearnerID(v string) predicate.AbilityEvent {
	return predicate.AbilityEvent(sql.FieldEQ(FieldLearnerID, v))
}

// Dimension applies equality check predicate on the "dimension" field. It's identical to DimensionEQ.
func Dimension(v string) predicate.AbilityEvent {
	return predicate.AbilityEvent(sql.FieldEQ(FieldDimension, v))
}

// Theta applies equality check predicate on the "theta" field. It's identical to ThetaEQ.
func Theta(v float64) predicate.AbilityEvent {
	return predicate.AbilityEvent(sql.FieldEQ(FieldTheta, v))
}

// StdErr applies equality check predicate on the "std_err" field. It's identical to StdErrEQ.
func StdErr(v float64) predicate.AbilityEvent {
	return predicate.AbilityEvent(sql.FieldEQ(FieldStdErr, v))
}

// Flagged applies equality check predicate on the "flagged" field. It's identical to FlaggedEQ.
func Flagged(v bool) predicate.AbilityEvent {
	return predicate.AbilityEvent(sql.FieldEQ(FieldFlagged, v))
}

// ResponseCount applies equality check predicate on the "response_count" field. It's identical to ResponseCountEQ.
func ResponseCount(v int) predicate.AbilityEvent {
	return predicate.AbilityEvent(sql.FieldEQ(FieldResponseCount, v))
}

// SequenceEQ applies the EQ predicate on the "sequence" field.
func SequenceEQ(v int64) predicate.AbilityEvent {
	return predicate.AbilityEvent(sql.FieldEQ(FieldSequence, v))
}

// SequenceNEQ applies the NEQ predicate on the "sequence" field.
func SequenceNEQ(v int64) predicate.AbilityEvent {
	return predicate.AbilityEvent(sql.FieldNEQ(FieldSequence, v))
}

// SequenceIn applies the In predicate on the "sequence" field.
func SequenceIn(vs ...int64) predicate.AbilityEvent {
	return predicate.AbilityEvent(sql.FieldIn(FieldSequence, vs...))
}

// SequenceNotIn applies the NotIn predicate on the "sequence" field.
func SequenceNotIn(vs ...int64) predicate.AbilityEvent {
	return predicate.AbilityEvent(sql.FieldNotIn(FieldSequence, vs...))
}

// SequenceGT applies the GT predicate on the "sequence" field.
func SequenceGT(v int64) predicate.AbilityEvent {
	return predicate.AbilityEvent(sql.FieldGT(FieldSequence, v))
}

// SequenceGTE applies the GTE predicate on the "sequence" field.
func SequenceGTE(v int64) predicate.AbilityEvent {
	return predicate.AbilityEvent(sql.FieldGTE(FieldSequence, v))
}

// SequenceLT applies the LT predicate on the "sequence" field.
func SequenceLT(v int64) predicate.AbilityEvent {
	return predicate.AbilityEvent(sql.FieldLT(FieldSequence, v))
}

// SequenceLTE applies the LTE predicate on the "sequence" field.
func SequenceLTE(v int64) predicate.AbilityEvent {
	return predicate.AbilityEvent(sql.FieldLTE(FieldSequence, v))
}

// TimestampEQ applies the EQ predicate on the "timestamp" field.
func TimestampEQ(v time.Time) predicate.AbilityEvent {
	return predicate.AbilityEvent(sql.FieldEQ(FieldTimestamp, v))
}

// TimestampNEQ applies the NEQ predicate on the "timestamp" field.
func TimestampNEQ(v time.Time) predicate.AbilityEvent {
	return predicate.AbilityEvent(sql.FieldNEQ(FieldTimestamp, v))
}

// TimestampIn applies the In predicate on the "timestamp" field.
func TimestampIn(vs ...time.Time) predicate.AbilityEvent {
	return predicate.AbilityEvent(sql.FieldIn(FieldTimestamp, vs...))
}

// TimestampNotIn applies the NotIn predicate on the "timestamp" field.
func TimestampNotIn(vs ...time.Time) predicate.AbilityEvent {
	return predicate.AbilityEvent(sql.FieldNotIn(FieldTimestamp, vs...))
}

// TimestampGT applies the GT predicate on the "timestamp" field.
func TimestampGT(v time.Time) predicate.AbilityEvent {
	return predicate.AbilityEvent(sql.FieldGT(FieldTimestamp, v))
}

// TimestampGTE applies the GTE predicate on the "timestamp" field.
func TimestampGTE(v time.Time) predicate.AbilityEvent {
	return predicate.AbilityEvent(sql.FieldGTE(FieldTimestamp, v))
}

// TimestampLT applies the LT predicate on the "timestamp" field.
func TimestampLT(v time.Time) predicate.AbilityEvent {
	return predicate.AbilityEvent(sql.FieldLT(FieldTimestamp, v))
}

// TimestampLTE applies the LTE predicate on the "timestamp" field.
func TimestampLTE(v time.Time) predicate.AbilityEvent {
	return predicate.AbilityEvent(sql.FieldLTE(FieldTimestamp, v))
}

// LearnerIDEQ applies the EQ predicate on the "learner_id" field.
func LearnerIDEQ(v string) predicate.AbilityEvent {
	return predicate.AbilityEvent(sql.FieldEQ(FieldLearnerID, v))
}

// LearnerIDNEQ applies the NEQ predicate on the "learner_id" field.
func LearnerIDNEQ(v string) predicate.AbilityEvent {
	return predicate.AbilityEvent(sql.FieldNEQ(FieldLearnerID, v))
}

// LearnerIDIn applies the In predicate on the "learner_id" field.
func LearnerIDIn(vs ...string) predicate.AbilityEvent {
	return predicate.AbilityEvent(sql.FieldIn(FieldLearnerID, vs...))
}

// LearnerIDNotIn applies the NotIn predicate on the "learner_id" field.
func LearnerIDNotIn(vs ...string) predicate.AbilityEvent {
	return predicate.AbilityEvent(sql.FieldNotIn(FieldLearnerID, vs...))
}

// LearnerIDGT applies the GT predicate on the "learner_id" field.
func LearnerIDGT(v string) predicate.AbilityEvent {
	return predicate.AbilityEvent(sql.FieldGT(FieldLearnerID, v))
}

// LearnerIDGTE applies the GTE predicate on the "learner_id" field.
func LearnerIDGTE(v string) predicate.AbilityEvent {
	return predicate.AbilityEvent(sql.FieldGTE(FieldLearnerID, v))
}

// LearnerIDLT applies the LT predicate on the "learner_id" field.
func LearnerIDLT(v string) predicate.AbilityEvent {
	return predicate.AbilityEvent(sql.FieldLT(FieldLearnerID, v))
}

// LearnerIDLTE applies the LTE predicate on the "learner_id" field.
func LearnerIDLTE(v string) predicate.AbilityEvent {
	return predicate.AbilityEvent(sql.FieldLTE(FieldLearnerID, v))
}

// LearnerIDContains applies the Contains predicate on the "learner_id" field.
func LearnerIDContains(v string) predicate.AbilityEvent {
	return predicate.AbilityEvent(sql.FieldContains(FieldLearnerID, v))
}

// LearnerIDHasPrefix applies the HasPrefix predicate on the "learner_id" field.
func LearnerIDHasPrefix(v string) predicate.AbilityEvent {
	return predicate.AbilityEvent(sql.FieldHasPrefix(FieldLearnerID, v))
}

// LearnerIDHasSuffix applies the HasSuffix predicate on the "learner_id" field.
func LearnerIDHasSuffix(v string) predicate.AbilityEvent {
	return predicate.AbilityEvent(sql.FieldHasSuffix(FieldLearnerID, v))
}

// LearnerIDEqualFold applies the EqualFold predicate on the "learner_id" field.
func LearnerIDEqualFold(v string) predicate.AbilityEvent {
	return predicate.AbilityEvent(sql.FieldEqualFold(FieldLearnerID, v))
}

// LearnerIDContainsFold applies the ContainsFold predicate on the "learner_id" field.
func LearnerIDContainsFold(v string) predicate.AbilityEvent {
	return predicate.AbilityEvent(sql.FieldContainsFold(FieldLearnerID, v))
}

// DimensionEQ applies the EQ predicate on the "dimension" field.
func DimensionEQ(v string) predicate.AbilityEvent {
	return predicate.AbilityEvent(sql.FieldEQ(FieldDimension, v))
}

// DimensionNEQ applies the NEQ predicate on the "dimension" field.
func DimensionNEQ(v string) predicate.AbilityEvent {
	return predicate.AbilityEvent(sql.FieldNEQ(FieldDimension, v))
}

// DimensionIn applies the In predicate on the "dimension" field.
func DimensionIn(vs ...string) predicate.AbilityEvent {
	return predicate.AbilityEvent(sql.FieldIn(FieldDimension, vs...))
}

// DimensionNotIn applies the NotIn predicate on the "dimension" field.
func DimensionNotIn(vs ...string) predicate.AbilityEvent {
	return predicate.AbilityEvent(sql.FieldNotIn(FieldDimension, vs...))
}

// DimensionGT applies the GT predicate on the "dimension" field.
func DimensionGT(v string) predicate.AbilityEvent {
	return predicate.AbilityEvent(sql.FieldGT(FieldDimension, v))
}

// DimensionGTE applies the GTE predicate on the "dimension" field.
func DimensionGTE(v string) predicate.AbilityEvent {
	return predicate.AbilityEvent(sql.FieldGTE(FieldDimension, v))
}

// DimensionLT applies the LT predicate on the "dimension" field.
func DimensionLT(v string) predicate.AbilityEvent {
	return predicate.AbilityEvent(sql.FieldLT(FieldDimension, v))
}

// DimensionLTE applies the LTE predicate on the "dimension" field.
func DimensionLTE(v string) predicate.AbilityEvent {
	return predicate.AbilityEvent(sql.FieldLTE(FieldDimension, v))
}

// DimensionContains applies the Contains predicate on the "dimension" field.
func DimensionContains(v string) predicate.AbilityEvent {
	return predicate.AbilityEvent(sql.FieldContains(FieldDimension, v))
}

// DimensionHasPrefix applies the HasPrefix predicate on the "dimension" field.
func DimensionHasPrefix(v string) predicate.AbilityEvent {
	return predicate.AbilityEvent(sql.FieldHasPrefix(FieldDimension, v))
}

// DimensionHasSuffix applies the HasSuffix predicate on the "dimension" field.
func DimensionHasSuffix(v string) predicate.AbilityEvent {
	return predicate.AbilityEvent(sql.FieldHasSuffix(FieldDimension, v))
}

// DimensionEqualFold applies the EqualFold predicate on the "dimension" field.
func DimensionEqualFold(v string) predicate.AbilityEvent {
	return predicate.AbilityEvent(sql.FieldEqualFold(FieldDimension, v))
}

// DimensionContainsFold applies the ContainsFold predicate on the "dimension" field.
func DimensionContainsFold(v string) predicate.AbilityEvent {
	return predicate.AbilityEvent(sql.FieldContainsFold(FieldDimension, v))
}

// ThetaEQ applies the EQ predicate on the "theta" field.
func ThetaEQ(v float64) predicate.AbilityEvent {
	return predicate.AbilityEvent(sql.FieldEQ(FieldTheta, v))
}

// ThetaNEQ applies the NEQ predicate on the "theta" field.
func ThetaNEQ(v float64) predicate.AbilityEvent {
	return predicate.AbilityEvent(sql.FieldNEQ(FieldTheta, v))
}

// ThetaIn applies the In predicate on the "theta" field.
func ThetaIn(vs ...float64) predicate.AbilityEvent {
	return predicate.AbilityEvent(sql.FieldIn(FieldTheta, vs...))
}

// ThetaNotIn applies the NotIn predicate on the "theta" field.
func ThetaNotIn(vs ...float64) predicate.AbilityEvent {
	return predicate.AbilityEvent(sql.FieldNotIn(FieldTheta, vs...))
}

// ThetaGT applies the GT predicate on the "theta" field.
func ThetaGT(v float64) predicate.AbilityEvent {
	return predicate.AbilityEvent(sql.FieldGT(FieldTheta, v))
}

// ThetaGTE applies the GTE predicate on the "theta" field.
func ThetaGTE(v float64) predicate.AbilityEvent {
	return predicate.AbilityEvent(sql.FieldGTE(FieldTheta, v))
}

// ThetaLT applies the LT predicate on the "theta" field.
func ThetaLT(v float64) predicate.AbilityEvent {
	return predicate.AbilityEvent(sql.FieldLT(FieldTheta, v))
}

// ThetaLTE applies the LTE predicate on the "theta" field.
func ThetaLTE(v float64) predicate.AbilityEvent {
	return predicate.AbilityEvent(sql.FieldLTE(FieldTheta, v))
}

// StdErrEQ applies the EQ predicate on the "std_err" field.
func StdErrEQ(v float64) predicate.AbilityEvent {
	return predicate.AbilityEvent(sql.FieldEQ(FieldStdErr, v))
}

// StdErrNEQ applies the NEQ predicate on the "std_err" field.
func StdErrNEQ(v float64) predicate.AbilityEvent {
	return predicate.AbilityEvent(sql.FieldNEQ(FieldStdErr, v))
}

// StdErrIn applies the In predicate on the "std_err" field.
func StdErrIn(vs ...float64) predicate.AbilityEvent {
	return predicate.AbilityEvent(sql.FieldIn(FieldStdErr, vs...))
}

// StdErrNotIn applies the NotIn predicate on the "std_err" field.
func StdErrNotIn(vs ...float64) predicate.AbilityEvent {
	return predicate.AbilityEvent(sql.FieldNotIn(FieldStdErr, vs...))
}

// StdErrGT applies the GT predicate on the "std_err" field.
func StdErrGT(v float64) predicate.AbilityEvent {
	return predicate.AbilityEvent(sql.FieldGT(FieldStdErr, v))
}

// StdErrGTE applies the GTE predicate on the "std_err" field.
func StdErrGTE(v float64) predicate.AbilityEvent {
	return predicate.AbilityEvent(sql.FieldGTE(FieldStdErr, v))
}

// StdErrLT applies the LT predicate on the "std_err" field.
func StdErrLT(v float64) predicate.AbilityEvent {
	return predicate.AbilityEvent(sql.FieldLT(FieldStdErr, v))
}

// StdErrLTE applies the LTE predicate on the "std_err" field.
func StdErrLTE(v float64) predicate.AbilityEvent {
	return predicate.AbilityEvent(sql.FieldLTE(FieldStdErr, v))
}

// FlaggedEQ applies the EQ predicate on the "flagged" field.
func FlaggedEQ(v bool) predicate.AbilityEvent {
	return predicate.AbilityEvent(sql.FieldEQ(FieldFlagged, v))
}

// FlaggedNEQ applies the NEQ predicate on the "flagged" field.
func FlaggedNEQ(v bool) predicate.AbilityEvent {
	return predicate.AbilityEvent(sql.FieldNEQ(FieldFlagged, v))
}

// ResponseCountEQ applies the EQ predicate on the "response_count" field.
func ResponseCountEQ(v int) predicate.AbilityEvent {
	return predicate.AbilityEvent(sql.FieldEQ(FieldResponseCount, v))
}

// ResponseCountNEQ applies the NEQ predicate on the "response_count" field.
func ResponseCountNEQ(v int) predicate.AbilityEvent {
	return predicate.AbilityEvent(sql.FieldNEQ(FieldResponseCount, v))
}

// ResponseCountIn applies the In predicate on the "response_count" field.
func ResponseCountIn(vs ...int) predicate.AbilityEvent {
	return predicate.AbilityEvent(sql.FieldIn(FieldResponseCount, vs...))
}

// ResponseCountNotIn applies the NotIn predicate on the "response_count" field.
func ResponseCountNotIn(vs ...int) predicate.AbilityEvent {
	return predicate.AbilityEvent(sql.FieldNotIn(FieldResponseCount, vs...))
}

// ResponseCountGT applies the GT predicate on the "response_count" field.
func ResponseCountGT(v int) predicate.AbilityEvent {
	return predicate.AbilityEvent(sql.FieldGT(FieldResponseCount, v))
}

// ResponseCountGTE applies the GTE predicate on the "response_count" field.
func ResponseCountGTE(v int) predicate.AbilityEvent {
	return predicate.AbilityEvent(sql.FieldGTE(FieldResponseCount, v))
}

// ResponseCountLT applies the LT predicate on the "response_count" field.
func ResponseCountLT(v int) predicate.AbilityEvent {
	return predicate.AbilityEvent(sql.FieldLT(FieldResponseCount, v))
}

// ResponseCountLTE applies the LTE predicate on the "response_count" field.
func ResponseCountLTE(v int) predicate.AbilityEvent {
	return predicate.AbilityEvent(sql.FieldLTE(FieldResponseCount, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.AbilityEvent) predicate.AbilityEvent {
	return predicate.AbilityEvent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.AbilityEvent) predicate.AbilityEvent {
	return predicate.AbilityEvent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.AbilityEvent) predicate.AbilityEvent {
	return predicate.AbilityEvent(sql.NotPredicates(p))
}
