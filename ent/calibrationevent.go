// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/tomatokenizer-web/LOGOSproject-sub002/ent/calibrationevent"
)

// CalibrationEvent is the model entity for the CalibrationEvent schema.
type CalibrationEvent struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Monotonically increasing global sequence number
	Sequence int64 `json:"sequence,omitempty"`
	// UTC wall-clock time of the event
	Timestamp time.Time `json:"timestamp,omitempty"`
	// LearnerCount holds the value of the "learner_count" field.
	LearnerCount int `json:"learner_count,omitempty"`
	// ItemCount holds the value of the "item_count" field.
	ItemCount int `json:"item_count,omitempty"`
	// ResponseCount holds the value of the "response_count" field.
	ResponseCount int `json:"response_count,omitempty"`
	// Iterations holds the value of the "iterations" field.
	Iterations int `json:"iterations,omitempty"`
	// Converged holds the value of the "converged" field.
	Converged bool `json:"converged,omitempty"`
	// ThreeParameter holds the value of the "three_parameter" field.
	ThreeParameter bool `json:"three_parameter,omitempty"`
	selectValues   sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*CalibrationEvent) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case calibrationevent.FieldConverged, calibrationevent.FieldThreeParameter:
			values[i] = new(sql.NullBool)
		case calibrationevent.FieldID, calibrationevent.FieldSequence, calibrationevent.FieldLearnerCount, calibrationevent.FieldItemCount, calibrationevent.FieldResponseCount, calibrationevent.FieldIterations:
			values[i] = new(sql.NullInt64)
		case calibrationevent.FieldTimestamp:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the CalibrationEvent fields.
func (ce *CalibrationEvent) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case calibrationevent.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			ce.ID = int(value.Int64)
		case calibrationevent.FieldSequence:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field sequence", values[i])
			} else if value.Valid {
				ce.Sequence = value.Int64
			}
		case calibrationevent.FieldTimestamp:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field timestamp", values[i])
			} else if value.Valid {
				ce.Timestamp = value.Time
			}
		case calibrationevent.FieldLearnerCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field learner_count", values[i])
			} else if value.Valid {
				ce.LearnerCount = int(value.Int64)
			}
		case calibrationevent.FieldItemCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field item_count", values[i])
			} else if value.Valid {
				ce.ItemCount = int(value.Int64)
			}
		case calibrationevent.FieldResponseCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field response_count", values[i])
			} else if value.Valid {
				ce.ResponseCount = int(value.Int64)
			}
		case calibrationevent.FieldIterations:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field iterations", values[i])
			} else if value.Valid {
				ce.Iterations = int(value.Int64)
			}
		case calibrationevent.FieldConverged:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field converged", values[i])
			} else if value.Valid {
				ce.Converged = value.Bool
			}
		case calibrationevent.FieldThreeParameter:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field three_parameter", values[i])
			} else if value.Valid {
				ce.ThreeParameter = value.Bool
			}
		default:
			ce.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the CalibrationEvent.
// This includes values selected through modifiers, order, etc.
func (ce *CalibrationEvent) Value(name string) (ent.Value, error) {
	return ce.selectValues.Get(name)
}

// Update returns a builder for updating this CalibrationEvent.
// Note that you need to call CalibrationEvent.Unwrap() before calling this method if this CalibrationEvent
// was returned from a transaction, and the transaction was committed or rolled back.
func (ce *CalibrationEvent) Update() *CalibrationEventUpdateOne {
	return NewCalibrationEventClient(ce.config).UpdateOne(ce)
}

// Unwrap unwraps the CalibrationEvent entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (ce *CalibrationEvent) Unwrap() *CalibrationEvent {
	_tx, ok := ce.config.driver.(*txDriver)
	if !ok {
		panic("ent: CalibrationEvent is not a transactional entity")
	}
	ce.config.driver = _tx.drv
	return ce
}

// String implements the fmt.Stringer.
func (ce *CalibrationEvent) String() string {
	var builder strings.Builder
	builder.WriteString("CalibrationEvent(")
	builder.WriteString(fmt.Sprintf("id=%v, ", ce.ID))
	builder.WriteString("sequence=")
	builder.WriteString(fmt.Sprintf("%v", ce.Sequence))
	builder.WriteString(", ")
	builder.WriteString("timestamp=")
	builder.WriteString(ce.Timestamp.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("learner_count=")
	builder.WriteString(fmt.Sprintf("%v", ce.LearnerCount))
	builder.WriteString(", ")
	builder.WriteString("item_count=")
	builder.WriteString(fmt.Sprintf("%v", ce.ItemCount))
	builder.WriteString(", ")
	builder.WriteString("response_count=")
	builder.WriteString(fmt.Sprintf("%v", ce.ResponseCount))
	builder.WriteString(", ")
	builder.WriteString("iterations=")
	builder.WriteString(fmt.Sprintf("%v", ce.Iterations))
	builder.WriteString(", ")
	builder.WriteString("converged=")
	builder.WriteString(fmt.Sprintf("%v", ce.Converged))
	builder.WriteString(", ")
	builder.WriteString("three_parameter=")
	builder.WriteString(fmt.Sprintf("%v", ce.ThreeParameter))
	builder.WriteByte(')')
	return builder.String()
}

// CalibrationEvents is a parsable slice of CalibrationEvent.
type CalibrationEvents []*CalibrationEvent
