// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/tomatokenizer-web/LOGOSproject-sub002/ent/calibrationevent"
)

// CalibrationEventCreate is the builder for creating a CalibrationEvent entity.
type CalibrationEventCreate struct {
	config
	mutation *CalibrationEventMutation
	hooks    []Hook
}

// SetSequence sets the "sequence" field.
func (cec *CalibrationEventCreate) SetSequence(i int64) *CalibrationEventCreate {
	cec.mutation.SetSequence(i)
	return cec
}

// SetTimestamp sets the "timestamp" field.
func (cec *CalibrationEventCreate) SetTimestamp(t time.Time) *CalibrationEventCreate {
	cec.mutation.SetTimestamp(t)
	return cec
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (cec *CalibrationEventCreate) SetNillableTimestamp(t *time.Time) *CalibrationEventCreate {
	if t != nil {
		cec.SetTimestamp(*t)
	}
	return cec
}

// SetLearnerCount sets the "learner_count" field.
func (cec *CalibrationEventCreate) SetLearnerCount(i int) *CalibrationEventCreate {
	cec.mutation.SetLearnerCount(i)
	return cec
}

// SetItemCount sets the "item_count" field.
func (cec *CalibrationEventCreate) SetItemCount(i int) *CalibrationEventCreate {
	cec.mutation.SetItemCount(i)
	return cec
}

// SetResponseCount sets the "response_count" field.
func (cec *CalibrationEventCreate) SetResponseCount(i int) *CalibrationEventCreate {
	cec.mutation.SetResponseCount(i)
	return cec
}

// SetIterations sets the "iterations" field.
func (cec *CalibrationEventCreate) SetIterations(i int) *CalibrationEventCreate {
	cec.mutation.SetIterations(i)
	return cec
}

// SetConverged sets the "converged" field.
func (cec *CalibrationEventCreate) SetConverged(b bool) *CalibrationEventCreate {
	cec.mutation.SetConverged(b)
	return cec
}

// SetThreeParameter sets the "three_parameter" field.
func (cec *CalibrationEventCreate) SetThreeParameter(b bool) *CalibrationEventCreate {
	cec.mutation.SetThreeParameter(b)
	return cec
}

// Mutation returns the CalibrationEventMutation object of the builder.
func (cec *CalibrationEventCreate) Mutation() *CalibrationEventMutation {
	return cec.mutation
}

// Save creates the CalibrationEvent in the database.
func (cec *CalibrationEventCreate) Save(ctx context.Context) (*CalibrationEvent, error) {
	cec.defaults()
	return withHooks(ctx, cec.sqlSave, cec.mutation, cec.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (cec *CalibrationEventCreate) SaveX(ctx context.Context) *CalibrationEvent {
	v, err := cec.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (cec *CalibrationEventCreate) Exec(ctx context.Context) error {
	_, err := cec.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (cec *CalibrationEventCreate) ExecX(ctx context.Context) {
	if err := cec.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (cec *CalibrationEventCreate) defaults() {
	if _, ok := cec.mutation.Timestamp(); !ok {
		v := calibrationevent.DefaultTimestamp()
		cec.mutation.SetTimestamp(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (cec *CalibrationEventCreate) check() error {
	if _, ok := cec.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "CalibrationEvent.sequence"`)}
	}
	if _, ok := cec.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "CalibrationEvent.timestamp"`)}
	}
	if _, ok := cec.mutation.LearnerCount(); !ok {
		return &ValidationError{Name: "learner_count", err: errors.New(`ent: missing required field "CalibrationEvent.learner_count"`)}
	}
	if _, ok := cec.mutation.ItemCount(); !ok {
		return &ValidationError{Name: "item_count", err: errors.New(`ent: missing required field "CalibrationEvent.item_count"`)}
	}
	if _, ok := cec.mutation.ResponseCount(); !ok {
		return &ValidationError{Name: "response_count", err: errors.New(`ent: missing required field "CalibrationEvent.response_count"`)}
	}
	if _, ok := cec.mutation.Iterations(); !ok {
		return &ValidationError{Name: "iterations", err: errors.New(`ent: missing required field "CalibrationEvent.iterations"`)}
	}
	if _, ok := cec.mutation.Converged(); !ok {
		return &ValidationError{Name: "converged", err: errors.New(`ent: missing required field "CalibrationEvent.converged"`)}
	}
	if _, ok := cec.mutation.ThreeParameter(); !ok {
		return &ValidationError{Name: "three_parameter", err: errors.New(`ent: missing required field "CalibrationEvent.three_parameter"`)}
	}
	return nil
}

func (cec *CalibrationEventCreate) sqlSave(ctx context.Context) (*CalibrationEvent, error) {
	if err := cec.check(); err != nil {
		return nil, err
	}
	_node, _spec := cec.createSpec()
	if err := sqlgraph.CreateNode(ctx, cec.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	cec.mutation.id = &_node.ID
	cec.mutation.done = true
	return _node, nil
}

func (cec *CalibrationEventCreate) createSpec() (*CalibrationEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &CalibrationEvent{config: cec.config}
		_spec = sqlgraph.NewCreateSpec(calibrationevent.Table, sqlgraph.NewFieldSpec(calibrationevent.FieldID, field.TypeInt))
	)
	if value, ok := cec.mutation.Sequence(); ok {
		_spec.SetField(calibrationevent.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := cec.mutation.Timestamp(); ok {
		_spec.SetField(calibrationevent.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := cec.mutation.LearnerCount(); ok {
		_spec.SetField(calibrationevent.FieldLearnerCount, field.TypeInt, value)
		_node.LearnerCount = value
	}
	if value, ok := cec.mutation.ItemCount(); ok {
		_spec.SetField(calibrationevent.FieldItemCount, field.TypeInt, value)
		_node.ItemCount = value
	}
	if value, ok := cec.mutation.ResponseCount(); ok {
		_spec.SetField(calibrationevent.FieldResponseCount, field.TypeInt, value)
		_node.ResponseCount = value
	}
	if value, ok := cec.mutation.Iterations(); ok {
		_spec.SetField(calibrationevent.FieldIterations, field.TypeInt, value)
		_node.Iterations = value
	}
	if value, ok := cec.mutation.Converged(); ok {
		_spec.SetField(calibrationevent.FieldConverged, field.TypeBool, value)
		_node.Converged = value
	}
	if value, ok := cec.mutation.ThreeParameter(); ok {
		_spec.SetField(calibrationevent.FieldThreeParameter, field.TypeBool, value)
		_node.ThreeParameter = value
	}
	return _node, _spec
}

// CalibrationEventCreateBulk is the builder for creating many CalibrationEvent entities in bulk.
type CalibrationEventCreateBulk struct {
	config
	err      error
	builders []*CalibrationEventCreate
}

// Save creates the CalibrationEvent entities in the database.
func (cecb *CalibrationEventCreateBulk) Save(ctx context.Context) ([]*CalibrationEvent, error) {
	if cecb.err != nil {
		return nil, cecb.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(cecb.builders))
	nodes := make([]*CalibrationEvent, len(cecb.builders))
	mutators := make([]Mutator, len(cecb.builders))
	for i := range cecb.builders {
		func(i int, root context.Context) {
			builder := cecb.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*CalibrationEventMutation)
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
					_, err = mutators[i+1].Mutate(root, cecb.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, cecb.driver, spec); err != nil {
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
		if _, err := mutators[0].Mutate(ctx, cecb.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (cecb *CalibrationEventCreateBulk) SaveX(ctx context.Context) []*CalibrationEvent {
	v, err := cecb.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (cecb *CalibrationEventCreateBulk) Exec(ctx context.Context) error {
	_, err := cecb.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (cecb *CalibrationEventCreateBulk) ExecX(ctx context.Context) {
	if err := cecb.Exec(ctx); err != nil {
		panic(err)
	}
}
