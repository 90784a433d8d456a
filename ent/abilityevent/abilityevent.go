// Code generated by ent, DO NOT EDIT.

package abilityevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the abilityevent type in the database.
	Label = "ability_event"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldSequence holds the string denoting the sequence field in the database.
	FieldSequence = "sequence"
	// FieldTimestamp holds the string denoting the timestamp field in the database.
	FieldTimestamp = "timestamp"
	// FieldLearnerID holds the string denoting the learner_id field in the database.
	FieldLearnerID = "learner_id"
	// FieldDimension holds the string denoting the dimension field in the database.
	FieldDimension = "dimension"
	// FieldTheta holds the string denoting the theta field in the database.
	FieldTheta = "theta"
	// FieldStdErr holds the string denoting the std_err field in the database.
	FieldStdErr = "std_err"
	// FieldFlagged holds the string denoting the flagged field in the database.
	FieldFlagged = "flagged"
	// FieldResponseCount holds the string denoting the response_count field in the database.
	FieldResponseCount = "response_count"
	// Table holds the table name of the abilityevent in the database.
	Table = "ability_events"
)

// Columns holds all SQL columns for abilityevent fields.
var Columns = []string{
	FieldID,
	FieldSequence,
	FieldTimestamp,
	FieldLearnerID,
	FieldDimension,
	FieldTheta,
	FieldStdErr,
	FieldFlagged,
	FieldResponseCount,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultTimestamp holds the default value on creation for the "timestamp" field.
	DefaultTimestamp func() time.Time
	// LearnerIDValidator is a validator for the "learner_id" field. It is called by the builders before save.
	LearnerIDValidator func(string) error
	// DimensionValidator is a validator for the "dimension" field. It is called by the builders before save.
	DimensionValidator func(string) error
)

// OrderOption defines the ordering options for the AbilityEvent queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// BySequence orders the results by the sequence field.
func BySequence(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSequence, opts...).ToFunc()
}

// ByTimestamp orders the results by the timestamp field.
func ByTimestamp(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTimestamp, opts...).ToFunc()
}

// ByLearnerID orders the results by the learner_id field.
func ByLearnerID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLearnerID, opts...).ToFunc()
}

// ByDimension orders the results by the dimension field.
func ByDimension(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDimension, opts...).ToFunc()
}

// ByTheta orders the results by the theta field.
func ByTheta(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTheta, opts...).ToFunc()
}

// ByStdErr orders the results by the std_err field.
func ByStdErr(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStdErr, opts...).ToFunc()
}

// ByFlagged orders the results by the flagged field.
func ByFlagged(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFlagged, opts...).ToFunc()
}

// ByResponseCount orders the results by the response_count field.
func ByResponseCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldResponseCount, opts...).ToFunc()
}
