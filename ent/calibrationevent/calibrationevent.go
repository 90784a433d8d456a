// Code generated by ent, DO NOT EDIT.

package calibrationevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the calibrationevent type in the database.
	Label = "calibration_event"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldSequence holds the string denoting the sequence field in the database.
	FieldSequence = "sequence"
	// FieldTimestamp holds the string denoting the timestamp field in the database.
	FieldTimestamp = "timestamp"
	// FieldLearnerCount holds the string denoting the learner_count field in the database.
	FieldLearnerCount = "learner_count"
	// FieldItemCount holds the string denoting the item_count field in the database.
	FieldItemCount = "item_count"
	// FieldResponseCount holds the string denoting the response_count field in the database.
	FieldResponseCount = "response_count"
	// FieldIterations holds the string denoting the iterations field in the database.
	FieldIterations = "iterations"
	// FieldConverged holds the string denoting the converged field in the database.
	FieldConverged = "converged"
	// FieldThreeParameter holds the string denoting the three_parameter field in the database.
	FieldThreeParameter = "three_parameter"
	// Table holds the table name of the calibrationevent in the database.
	Table = "calibration_events"
)

// Columns holds all SQL columns for calibrationevent fields.
var Columns = []string{
	FieldID,
	FieldSequence,
	FieldTimestamp,
	FieldLearnerCount,
	FieldItemCount,
	FieldResponseCount,
	FieldIterations,
	FieldConverged,
	FieldThreeParameter,
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
)

// OrderOption defines the ordering options for the CalibrationEvent queries.
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

// ByLearnerCount orders the results by the learner_count field.
func ByLearnerCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLearnerCount, opts...).ToFunc()
}

// ByItemCount orders the results by the item_count field.
func ByItemCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldItemCount, opts...).ToFunc()
}

// ByResponseCount orders the results by the response_count field.
func ByResponseCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldResponseCount, opts...).ToFunc()
}

// ByIterations orders the results by the iterations field.
func ByIterations(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIterations, opts...).ToFunc()
}

// ByConverged orders the results by the converged field.
func ByConverged(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldConverged, opts...).ToFunc()
}

// ByThreeParameter orders the results by the three_parameter field.
func ByThreeParameter(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldThreeParameter, opts...).ToFunc()
}
