// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/tomatokenizer-web/LOGOSproject-sub002/ent/abilityevent"
)

// AbilityEvent is the model entity for the AbilityEvent schema.
type AbilityEvent struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Monotonically increasing global sequence number
	Sequence int64 `json:"sequence,omitempty"`
	// UTC wall-clock time of the event
	Timestamp time.Time `json:"timestamp,omitempty"`
	// LearnerID holds the value of the "learner_id" field.
	LearnerID string `json:"learner_id,omitempty"`
	// Dimension holds the value of the "dimension" field.
	Dimension string `json:"dimension,omitempty"`
	// Theta holds the value of the "theta" field.
	Theta float64 `json:"theta,omitempty"`
	// StdErr holds the value of the "std_err" field.
	StdErr float64 `json:"std_err,omitempty"`
	// Flagged holds the value of the "flagged" field.
	Flagged bool `json:"flagged,omitempty"`
	// ResponseCount holds the value of the "response_count" field.
	ResponseCount int `json:"response_count,omitempty"`
	selectValues  sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*AbilityEvent) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case abilityevent.FieldFlagged:
			values[i] = new(sql.NullBool)
		case abilityevent.FieldTheta, abilityevent.FieldStdErr:
			values[i] = new(sql.NullFloat64)
		case abilityevent.FieldID, abilityevent.FieldSequence, abilityevent.FieldResponseCount:
			values[i] = new(sql.NullInt64)
		case abilityevent.FieldLearnerID, abilityevent.FieldDimension:
			values[i] = new(sql.NullString)
		case abilityevent.FieldTimestamp:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the AbilityEvent fields.
func (ae *AbilityEvent) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case abilityevent.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			ae.ID = int(value.Int64)
		case abilityevent.FieldSequence:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field sequence", values[i])
			} else if value.Valid {
				ae.Sequence = value.Int64
			}
		case abilityevent.FieldTimestamp:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field timestamp", values[i])
			} else if value.Valid {
				ae.Timestamp = value.Time
			}
		case abilityevent.FieldLearnerID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field learner_id", values[i])
			} else if value.Valid {
				ae.LearnerID = value.String
			}
		case abilityevent.FieldDimension:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field dimension", values[i])
			} else if value.Valid {
				ae.Dimension = value.String
			}
		case abilityevent.FieldTheta:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field theta", values[i])
			} else if value.Valid {
				ae.Theta = value.Float64
			}
		case abilityevent.FieldStdErr:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field std_err", values[i])
			} else if value.Valid {
				ae.StdErr = value.Float64
			}
		case abilityevent.FieldFlagged:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field flagged", values[i])
			} else if value.Valid {
				ae.Flagged = value.Bool
			}
		case abilityevent.FieldResponseCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field response_count", values[i])
			} else if value.Valid {
				ae.ResponseCount = int(value.Int64)
			}
		default:
			ae.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the AbilityEvent.
// This includes values selected through modifiers, order, etc.
func (ae *AbilityEvent) Value(name string) (ent.Value, error) {
	return ae.selectValues.Get(name)
}

// Update returns a builder for updating this AbilityEvent.
// Note that you need to call AbilityEvent.Unwrap() before calling this method if this AbilityEvent
// was returned from a transaction, and the transaction was committed or rolled back.
func (ae *AbilityEvent) Update() *AbilityEventUpdateOne {
	return NewAbilityEventClient(ae.config).UpdateOne(ae)
}

// Unwrap unwraps the AbilityEvent entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (ae *AbilityEvent) Unwrap() *AbilityEvent {
	_tx, ok := ae.config.driver.(*txDriver)
	if !ok {
		panic("ent: AbilityEvent is not a transactional entity")
	}
	ae.config.driver = _tx.drv
	return ae
}

// String implements the fmt.Stringer.
func (ae *AbilityEvent) String() string {
	var builder strings.Builder
	builder.WriteString("AbilityEvent(")
	builder.WriteString(fmt.Sprintf("id=%v, ", ae.ID))
	builder.WriteString("sequence=")
	builder.WriteString(fmt.Sprintf("%v", ae.Sequence))
	builder.WriteString(", ")
	builder.WriteString("timestamp=")
	builder.WriteString(ae.Timestamp.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("learner_id=")
	builder.WriteString(ae.LearnerID)
	builder.WriteString(", ")
	builder.WriteString("dimension=")
	builder.WriteString(ae.Dimension)
	builder.WriteString(", ")
	builder.WriteString("theta=")
	builder.WriteString(fmt.Sprintf("%v", ae.Theta))
	builder.WriteString(", ")
	builder.WriteString("std_err=")
	builder.WriteString(fmt.Sprintf("%v", ae.StdErr))
	builder.WriteString(", ")
	builder.WriteString("flagged=")
	builder.WriteString(fmt.Sprintf("%v", ae.Flagged))
	builder.WriteString(", ")
	builder.WriteString("response_count=")
	builder.WriteString(fmt.Sprintf("%v", ae.ResponseCount))
	builder.WriteByte(')')
	return builder.String()
}

// AbilityEvents is a parsable slice of AbilityEvent.
type AbilityEvents []*AbilityEvent
