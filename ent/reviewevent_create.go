// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/tomatokenizer-web/LOGOSproject-sub002/ent/reviewevent"
)

// ReviewEventCreate is the builder for creating a ReviewEvent entity.
type ReviewEventCreate struct {
	config
	mutation *ReviewEventMutation
	hooks    []Hook
}

// SetSequence sets the "sequence" field.
func (rec *ReviewEventCreate) SetSequence(i int64) *ReviewEventCreate {
	rec.mutation.SetSequence(i)
	return rec
}

// SetTimestamp sets the "timestamp" field.
func (rec *ReviewEventCreate) SetTimestamp(t time.Time) *ReviewEventCreate {
	rec.mutation.SetTimestamp(t)
	return rec
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (rec *ReviewEventCreate) SetNillableTimestamp(t *time.Time) *ReviewEventCreate {
	if t != nil {
		rec.SetTimestamp(*t)
	}
	return rec
}

// SetLearnerID sets the "learner_id" field.
func (rec *ReviewEventCreate) SetLearnerID(s string) *ReviewEventCreate {
	rec.mutation.SetLearnerID(s)
	return rec
}

// SetItemID sets the "item_id" field.
func (rec *ReviewEventCreate) SetItemID(s string) *ReviewEventCreate {
	rec.mutation.SetItemID(s)
	return rec
}

// SetDimension sets the "dimension" field.
func (rec *ReviewEventCreate) SetDimension(s string) *ReviewEventCreate {
	rec.mutation.SetDimension(s)
	return rec
}

// SetRating sets the "rating" field.
func (rec *ReviewEventCreate) SetRating(s string) *ReviewEventCreate {
	rec.mutation.SetRating(s)
	return rec
}

// SetCorrect sets the "correct" field.
func (rec *ReviewEventCreate) SetCorrect(b bool) *ReviewEventCreate {
	rec.mutation.SetCorrect(b)
	return rec
}

// SetCueUsed sets the "cue_used" field.
func (rec *ReviewEventCreate) SetCueUsed(b bool) *ReviewEventCreate {
	rec.mutation.SetCueUsed(b)
	return rec
}

// SetLatencyMs sets the "latency_ms" field.
func (rec *ReviewEventCreate) SetLatencyMs(i int64) *ReviewEventCreate {
	rec.mutation.SetLatencyMs(i)
	return rec
}

// SetStability sets the "stability" field.
func (rec *ReviewEventCreate) SetStability(f float64) *ReviewEventCreate {
	rec.mutation.SetStability(f)
	return rec
}

// SetDifficulty sets the "difficulty" field.
func (rec *ReviewEventCreate) SetDifficulty(f float64) *ReviewEventCreate {
	rec.mutation.SetDifficulty(f)
	return rec
}

// SetState sets the "state" field.
func (rec *ReviewEventCreate) SetState(s string) *ReviewEventCreate {
	rec.mutation.SetState(s)
	return rec
}

// SetSessionID sets the "session_id" field.
func (rec *ReviewEventCreate) SetSessionID(s string) *ReviewEventCreate {
	rec.mutation.SetSessionID(s)
	return rec
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (rec *ReviewEventCreate) SetNillableSessionID(s *string) *ReviewEventCreate {
	if s != nil {
		rec.SetSessionID(*s)
	}
	return rec
}

// Mutation returns the ReviewEventMutation object of the builder.
func (rec *ReviewEventCreate) Mutation() *ReviewEventMutation {
	return rec.mutation
}

// Save creates the ReviewEvent in the database.
func (rec *ReviewEventCreate) Save(ctx context.Context) (*ReviewEvent, error) {
	rec.defaults()
	return withHooks(ctx, rec.sqlSave, rec.mutation, rec.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (rec *ReviewEventCreate) SaveX(ctx context.Context) *ReviewEvent {
	v, err := rec.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (rec *ReviewEventCreate) Exec(ctx context.Context) error {
	_, err := rec.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (rec *ReviewEventCreate) ExecX(ctx context.Context) {
	if err := rec.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (rec *ReviewEventCreate) defaults() {
	if _, ok := rec.mutation.Timestamp(); !ok {
		v := reviewevent.DefaultTimestamp()
		rec.mutation.SetTimestamp(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (rec *ReviewEventCreate) check() error {
	if _, ok := rec.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "ReviewEvent.sequence"`)}
	}
	if _, ok := rec.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "ReviewEvent.timestamp"`)}
	}
	if _, ok := rec.mutation.LearnerID(); !ok {
		return &ValidationError{Name: "learner_id", err: errors.New(`ent: missing required field "ReviewEvent.learner_id"`)}
	}
	if v, ok := rec.mutation.LearnerID(); ok {
		if err := reviewevent.LearnerIDValidator(v); err != nil {
			return &ValidationError{Name: "learner_id", err: fmt.Errorf(`ent: validator failed for field "ReviewEvent.learner_id": %w`, err)}
		}
	}
	if _, ok := rec.mutation.ItemID(); !ok {
		return &ValidationError{Name: "item_id", err: errors.New(`ent: missing required field "ReviewEvent.item_id"`)}
	}
	if v, ok := rec.mutation.ItemID(); ok {
		if err := reviewevent.ItemIDValidator(v); err != nil {
			return &ValidationError{Name: "item_id", err: fmt.Errorf(`ent: validator failed for field "ReviewEvent.item_id": %w`, err)}
		}
	}
	if _, ok := rec.mutation.Dimension(); !ok {
		return &ValidationError{Name: "dimension", err: errors.New(`ent: missing required field "ReviewEvent.dimension"`)}
	}
	if v, ok := rec.mutation.Dimension(); ok {
		if err := reviewevent.DimensionValidator(v); err != nil {
			return &ValidationError{Name: "dimension", err: fmt.Errorf(`ent: validator failed for field "ReviewEvent.dimension": %w`, err)}
		}
	}
	if _, ok := rec.mutation.Rating(); !ok {
		return &ValidationError{Name: "rating", err: errors.New(`ent: missing required field "ReviewEvent.rating"`)}
	}
	if v, ok := rec.mutation.Rating(); ok {
		if err := reviewevent.RatingValidator(v); err != nil {
			return &ValidationError{Name: "rating", err: fmt.Errorf(`ent: validator failed for field "ReviewEvent.rating": %w`, err)}
		}
	}
	if _, ok := rec.mutation.Correct(); !ok {
		return &ValidationError{Name: "correct", err: errors.New(`ent: missing required field "ReviewEvent.correct"`)}
	}
	if _, ok := rec.mutation.CueUsed(); !ok {
		return &ValidationError{Name: "cue_used", err: errors.New(`ent: missing required field "ReviewEvent.cue_used"`)}
	}
	if _, ok := rec.mutation.LatencyMs(); !ok {
		return &ValidationError{Name: "latency_ms", err: errors.New(`ent: missing required field "ReviewEvent.latency_ms"`)}
	}
	if _, ok := rec.mutation.Stability(); !ok {
		return &ValidationError{Name: "stability", err: errors.New(`ent: missing required field "ReviewEvent.stability"`)}
	}
	if _, ok := rec.mutation.Difficulty(); !ok {
		return &ValidationError{Name: "difficulty", err: errors.New(`ent: missing required field "ReviewEvent.difficulty"`)}
	}
	if _, ok := rec.mutation.State(); !ok {
		return &ValidationError{Name: "state", err: errors.New(`ent: missing required field "ReviewEvent.state"`)}
	}
	if v, ok := rec.mutation.State(); ok {
		if err := reviewevent.StateValidator(v); err != nil {
			return &ValidationError{Name: "state", err: fmt.Errorf(`ent: validator failed for field "ReviewEvent.state": %w`, err)}
		}
	}
	return nil
}

func (rec *ReviewEventCreate) sqlSave(ctx context.Context) (*ReviewEvent, error) {
	if err := rec.check(); err != nil {
		return nil, err
	}
	_node, _spec := rec.createSpec()
	if err := sqlgraph.CreateNode(ctx, rec.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	rec.mutation.id = &_node.ID
	rec.mutation.done = true
	return _node, nil
}

func (rec *ReviewEventCreate) createSpec() (*ReviewEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &ReviewEvent{config: rec.config}
		_spec = sqlgraph.NewCreateSpec(reviewevent.Table, sqlgraph.NewFieldSpec(reviewevent.FieldID, field.TypeInt))
	)
	if value, ok := rec.mutation.Sequence(); ok {
		_spec.SetField(reviewevent.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := rec.mutation.Timestamp(); ok {
		_spec.SetField(reviewevent.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := rec.mutation.LearnerID(); ok {
		_spec.SetField(reviewevent.FieldLearnerID, field.TypeString, value)
		_node.LearnerID = value
	}
	if value, ok := rec.mutation.ItemID(); ok {
		_spec.SetField(reviewevent.FieldItemID, field.TypeString, value)
		_node.ItemID = value
	}
	if value, ok := rec.mutation.Dimension(); ok {
		_spec.SetField(reviewevent.FieldDimension, field.TypeString, value)
		_node.Dimension = value
	}
	if value, ok := rec.mutation.Rating(); ok {
		_spec.SetField(reviewevent.FieldRating, field.TypeString, value)
		_node.Rating = value
	}
	if value, ok := rec.mutation.Correct(); ok {
		_spec.SetField(reviewevent.FieldCorrect, field.TypeBool, value)
		_node.Correct = value
	}
	if value, ok := rec.mutation.CueUsed(); ok {
		_spec.SetField(reviewevent.FieldCueUsed, field.TypeBool, value)
		_node.CueUsed = value
	}
	if value, ok := rec.mutation.LatencyMs(); ok {
		_spec.SetField(reviewevent.FieldLatencyMs, field.TypeInt64, value)
		_node.LatencyMs = value
	}
	if value, ok := rec.mutation.Stability(); ok {
		_spec.SetField(reviewevent.FieldStability, field.TypeFloat64, value)
		_node.Stability = value
	}
	if value, ok := rec.mutation.Difficulty(); ok {
		_spec.SetField(reviewevent.FieldDifficulty, field.TypeFloat64, value)
		_node.Difficulty = value
	}
	if value, ok := rec.mutation.State(); ok {
		_spec.SetField(reviewevent.FieldState, field.TypeString, value)
		_node.State = value
	}
	if value, ok := rec.mutation.SessionID(); ok {
		_spec.SetField(reviewevent.FieldSessionID, field.TypeString, value)
		_node.SessionID = value
	}
	return _node, _spec
}

// ReviewEventCreateBulk is the builder for creating many ReviewEvent entities in bulk.
type ReviewEventCreateBulk struct {
	config
	err      error
	builders []*ReviewEventCreate
}

// Save creates the ReviewEvent entities in the database.
func (recb *ReviewEventCreateBulk) Save(ctx context.Context) ([]*ReviewEvent, error) {
	if recb.err != nil {
		return nil, recb.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(recb.builders))
	nodes := make([]*ReviewEvent, len(recb.builders))
	mutators := make([]Mutator, len(recb.builders))
	for i := range recb.builders {
		func(i int, root context.Context) {
			builder := recb.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ReviewEventMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, recb.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, recb.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, recb.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (recb *ReviewEventCreateBulk) SaveX(ctx context.Context) []*ReviewEvent {
	v, err := recb.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (recb *ReviewEventCreateBulk) Exec(ctx context.Context) error {
	_, err := recb.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (recb *ReviewEventCreateBulk) ExecX(ctx context.Context) {
	if err := recb.Exec(ctx); err != nil {
		panic(err)
	}
}
