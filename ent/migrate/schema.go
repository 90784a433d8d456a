// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AbilityEventsColumns holds the columns for the "ability_events" table.
	AbilityEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "learner_id", Type: field.TypeString},
		{Name: "dimension", Type: field.TypeString},
		{Name: "theta", Type: field.TypeFloat64},
		{Name: "std_err", Type: field.TypeFloat64},
		{Name: "flagged", Type: field.TypeBool},
		{Name: "response_count", Type: field.TypeInt},
	}
	// AbilityEventsTable holds the schema information for the "ability_events" table.
	AbilityEventsTable = &schema.Table{
		Name:       "ability_events",
		Columns:    AbilityEventsColumns,
		PrimaryKey: []*schema.Column{AbilityEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "abilityevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{AbilityEventsColumns[1]},
			},
			{
				Name:    "abilityevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{AbilityEventsColumns[2]},
			},
			{
				Name:    "abilityevent_learner_id_dimension",
				Unique:  false,
				Columns: []*schema.Column{AbilityEventsColumns[3], AbilityEventsColumns[4]},
			},
		},
	}
	// CalibrationEventsColumns holds the columns for the "calibration_events" table.
	CalibrationEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "learner_count", Type: field.TypeInt},
		{Name: "item_count", Type: field.TypeInt},
		{Name: "response_count", Type: field.TypeInt},
		{Name: "iterations", Type: field.TypeInt},
		{Name: "converged", Type: field.TypeBool},
		{Name: "three_parameter", Type: field.TypeBool},
	}
	// CalibrationEventsTable holds the schema information for the "calibration_events" table.
	CalibrationEventsTable = &schema.Table{
		Name:       "calibration_events",
		Columns:    CalibrationEventsColumns,
		PrimaryKey: []*schema.Column{CalibrationEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "calibrationevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{CalibrationEventsColumns[1]},
			},
			{
				Name:    "calibrationevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{CalibrationEventsColumns[2]},
			},
		},
	}
	// ReviewEventsColumns holds the columns for the "review_events" table.
	ReviewEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "learner_id", Type: field.TypeString},
		{Name: "item_id", Type: field.TypeString},
		{Name: "dimension", Type: field.TypeString},
		{Name: "rating", Type: field.TypeString},
		{Name: "correct", Type: field.TypeBool},
		{Name: "cue_used", Type: field.TypeBool},
		{Name: "latency_ms", Type: field.TypeInt64},
		{Name: "stability", Type: field.TypeFloat64},
		{Name: "difficulty", Type: field.TypeFloat64},
		{Name: "state", Type: field.TypeString},
		{Name: "session_id", Type: field.TypeString, Nullable: true},
	}
	// ReviewEventsTable holds the schema information for the "review_events" table.
	ReviewEventsTable = &schema.Table{
		Name:       "review_events",
		Columns:    ReviewEventsColumns,
		PrimaryKey: []*schema.Column{ReviewEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "reviewevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{ReviewEventsColumns[1]},
			},
			{
				Name:    "reviewevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{ReviewEventsColumns[2]},
			},
			{
				Name:    "reviewevent_learner_id",
				Unique:  false,
				Columns: []*schema.Column{ReviewEventsColumns[3]},
			},
			{
				Name:    "reviewevent_item_id",
				Unique:  false,
				Columns: []*schema.Column{ReviewEventsColumns[4]},
			},
			{
				Name:    "reviewevent_learner_id_item_id",
				Unique:  false,
				Columns: []*schema.Column{ReviewEventsColumns[3], ReviewEventsColumns[4]},
			},
		},
	}
	// SessionEventsColumns holds the columns for the "session_events" table.
	SessionEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "learner_id", Type: field.TypeString},
		{Name: "session_id", Type: field.TypeString},
		{Name: "action", Type: field.TypeString},
		{Name: "items_served", Type: field.TypeInt},
		{Name: "correct_answers", Type: field.TypeInt},
		{Name: "new_items", Type: field.TypeInt},
		{Name: "duration_secs", Type: field.TypeInt64},
	}
	// SessionEventsTable holds the schema information for the "session_events" table.
	SessionEventsTable = &schema.Table{
		Name:       "session_events",
		Columns:    SessionEventsColumns,
		PrimaryKey: []*schema.Column{SessionEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "sessionevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{SessionEventsColumns[1]},
			},
			{
				Name:    "sessionevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{SessionEventsColumns[2]},
			},
			{
				Name:    "sessionevent_learner_id",
				Unique:  false,
				Columns: []*schema.Column{SessionEventsColumns[3]},
			},
			{
				Name:    "sessionevent_session_id",
				Unique:  false,
				Columns: []*schema.Column{SessionEventsColumns[4]},
			},
		},
	}
	// SnapshotsColumns holds the columns for the "snapshots" table.
	SnapshotsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "learner_id", Type: field.TypeString},
		{Name: "sequence", Type: field.TypeInt64},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "data", Type: field.TypeJSON},
	}
	// SnapshotsTable holds the schema information for the "snapshots" table.
	SnapshotsTable = &schema.Table{
		Name:       "snapshots",
		Columns:    SnapshotsColumns,
		PrimaryKey: []*schema.Column{SnapshotsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "snapshot_learner_id_timestamp",
				Unique:  false,
				Columns: []*schema.Column{SnapshotsColumns[1], SnapshotsColumns[3]},
			},
			{
				Name:    "snapshot_sequence",
				Unique:  false,
				Columns: []*schema.Column{SnapshotsColumns[2]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AbilityEventsTable,
		CalibrationEventsTable,
		ReviewEventsTable,
		SessionEventsTable,
		SnapshotsTable,
	}
)

func init() {
}
