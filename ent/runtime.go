// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/tomatokenizer-web/LOGOSproject-sub002/ent/abilityevent"
	"github.com/tomatokenizer-web/LOGOSproject-sub002/ent/calibrationevent"
	"github.com/tomatokenizer-web/LOGOSproject-sub002/ent/reviewevent"
	"github.com/tomatokenizer-web/LOGOSproject-sub002/ent/schema"
	"github.com/tomatokenizer-web/LOGOSproject-sub002/ent/sessionevent"
	"github.com/tomatokenizer-web/LOGOSproject-sub002/ent/snapshot"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	abilityeventMixin := schema.AbilityEvent{}.Mixin()
	abilityeventMixinFields0 := abilityeventMixin[0].Fields()
	_ = abilityeventMixinFields0
	abilityeventFields := schema.AbilityEvent{}.Fields()
	_ = abilityeventFields
	// abilityeventDescTimestamp is the schema descriptor for timestamp field.
	abilityeventDescTimestamp := abilityeventMixinFields0[1].Descriptor()
	// abilityevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	abilityevent.DefaultTimestamp = abilityeventDescTimestamp.Default.(func() time.Time)
	// abilityeventDescLearnerID is the schema descriptor for learner_id field.
	abilityeventDescLearnerID := abilityeventFields[0].Descriptor()
	// abilityevent.LearnerIDValidator is a validator for the "learner_id" field. It is called by the builders before save.
	abilityevent.LearnerIDValidator = abilityeventDescLearnerID.Validators[0].(func(string) error)
	// abilityeventDescDimension is the schema descriptor for dimension field.
	abilityeventDescDimension := abilityeventFields[1].Descriptor()
	// abilityevent.DimensionValidator is a validator for the "dimension" field. It is called by the builders before save.
	abilityevent.DimensionValidator = abilityeventDescDimension.Validators[0].(func(string) error)
	calibrationeventMixin := schema.CalibrationEvent{}.Mixin()
	calibrationeventMixinFields0 := calibrationeventMixin[0].Fields()
	_ = calibrationeventMixinFields0
	calibrationeventFields := schema.CalibrationEvent{}.Fields()
	_ = calibrationeventFields
	// calibrationeventDescTimestamp is the schema descriptor for timestamp field.
	calibrationeventDescTimestamp := calibrationeventMixinFields0[1].Descriptor()
	// calibrationevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	calibrationevent.DefaultTimestamp = calibrationeventDescTimestamp.Default.(func() time.Time)
	revieweventMixin := schema.ReviewEvent{}.Mixin()
	revieweventMixinFields0 := revieweventMixin[0].Fields()
	_ = revieweventMixinFields0
	revieweventFields := schema.ReviewEvent{}.Fields()
	_ = revieweventFields
	// revieweventDescTimestamp is the schema descriptor for timestamp field.
	revieweventDescTimestamp := revieweventMixinFields0[1].Descriptor()
	// reviewevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	reviewevent.DefaultTimestamp = revieweventDescTimestamp.Default.(func() time.Time)
	// revieweventDescLearnerID is the schema descriptor for learner_id field.
	revieweventDescLearnerID := revieweventFields[0].Descriptor()
	// reviewevent.LearnerIDValidator is a validator for the "learner_id" field. It is called by the builders before save.
	reviewevent.LearnerIDValidator = revieweventDescLearnerID.Validators[0].(func(string) error)
	// revieweventDescItemID is the schema descriptor for item_id field.
	revieweventDescItemID := revieweventFields[1].Descriptor()
	// reviewevent.ItemIDValidator is a validator for the "item_id" field. It is called by the builders before save.
	reviewevent.ItemIDValidator = revieweventDescItemID.Validators[0].(func(string) error)
	// revieweventDescDimension is the schema descriptor for dimension field.
	revieweventDescDimension := revieweventFields[2].Descriptor()
	// reviewevent.DimensionValidator is a validator for the "dimension" field. It is called by the builders before save.
	reviewevent.DimensionValidator = revieweventDescDimension.Validators[0].(func(string) error)
	// revieweventDescRating is the schema descriptor for rating field.
	revieweventDescRating := revieweventFields[3].Descriptor()
	// reviewevent.RatingValidator is a validator for the "rating" field. It is called by the builders before save.
	reviewevent.RatingValidator = revieweventDescRating.Validators[0].(func(string) error)
	// revieweventDescState is the schema descriptor for state field.
	revieweventDescState := revieweventFields[9].Descriptor()
	// reviewevent.StateValidator is a validator for the "state" field. It is called by the builders before save.
	reviewevent.StateValidator = revieweventDescState.Validators[0].(func(string) error)
	sessioneventMixin := schema.SessionEvent{}.Mixin()
	sessioneventMixinFields0 := sessioneventMixin[0].Fields()
	_ = sessioneventMixinFields0
	sessioneventFields := schema.SessionEvent{}.Fields()
	_ = sessioneventFields
	// sessioneventDescTimestamp is the schema descriptor for timestamp field.
	sessioneventDescTimestamp := sessioneventMixinFields0[1].Descriptor()
	// sessionevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	sessionevent.DefaultTimestamp = sessioneventDescTimestamp.Default.(func() time.Time)
	// sessioneventDescLearnerID is the schema descriptor for learner_id field.
	sessioneventDescLearnerID := sessioneventFields[0].Descriptor()
	// sessionevent.LearnerIDValidator is a validator for the "learner_id" field. It is called by the builders before save.
	sessionevent.LearnerIDValidator = sessioneventDescLearnerID.Validators[0].(func(string) error)
	// sessioneventDescSessionID is the schema descriptor for session_id field.
	sessioneventDescSessionID := sessioneventFields[1].Descriptor()
	// sessionevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	sessionevent.SessionIDValidator = sessioneventDescSessionID.Validators[0].(func(string) error)
	// sessioneventDescAction is the schema descriptor for action field.
	sessioneventDescAction := sessioneventFields[2].Descriptor()
	// sessionevent.ActionValidator is a validator for the "action" field. It is called by the builders before save.
	sessionevent.ActionValidator = sessioneventDescAction.Validators[0].(func(string) error)
	snapshotFields := schema.Snapshot{}.Fields()
	_ = snapshotFields
	// snapshotDescLearnerID is the schema descriptor for learner_id field.
	snapshotDescLearnerID := snapshotFields[0].Descriptor()
	// snapshot.LearnerIDValidator is a validator for the "learner_id" field. It is called by the builders before save.
	snapshot.LearnerIDValidator = snapshotDescLearnerID.Validators[0].(func(string) error)
	// snapshotDescTimestamp is the schema descriptor for timestamp field.
	snapshotDescTimestamp := snapshotFields[2].Descriptor()
	// snapshot.DefaultTimestamp holds the default value on creation for the timestamp field.
	snapshot.DefaultTimestamp = snapshotDescTimestamp.Default.(func() time.Time)
}
