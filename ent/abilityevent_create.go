// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/tomatokenizer-web/LOGOSproject-sub002/ent/abilityevent"
)

// AbilityEventCreate is the builder for creating a AbilityEvent entity.
type AbilityEventCreate struct {
	config
	mutation *AbilityEventMutation
	hooks    []Hook
}

// SetSequence sets the "sequence" field.
func (aec *AbilityEventCreate) SetSequence(i int64) *AbilityEventCreate {
	aec.mutation.SetSequence(i)
	return aec
}

// SetTimestamp sets the "timestamp" field.
func (aec *AbilityEventCreate) SetTimestamp(t time.Time) *AbilityEventCreate {
	aec.mutation.SetTimestamp(t)
	return aec
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (aec *AbilityEventCreate) SetNillableTimestamp(t *time.Time) *AbilityEventCreate {
	if t != nil {
		aec.SetTimestamp(*t)
	}
	return aec
}

// SetLearnerID sets the "learner_id" field.
func (aec *AbilityEventCreate) SetLearnerID(s string) *AbilityEventCreate {
	aec.mutation.SetLearnerID(s)
	return aec
}

// SetDimension sets the "dimension" field.
func (aec *AbilityEventCreate) SetDimension(s string) *AbilityEventCreate {
	aec.mutation.SetDimension(s)
	return aec
}

// SetTheta sets the "theta" field.
func (aec *AbilityEventCreate) SetTheta(f float64) *AbilityEventCreate {
	aec.mutation.SetTheta(f)
	return aec
}

// SetStdErr sets the "std_err" field.
func (aec *AbilityEventCreate) SetStdErr(f float64) *AbilityEventCreate {
	aec.mutation.SetStdErr(f)
	return aec
}

// SetFlagged sets the "flagged" field.
func (aec *AbilityEventCreate) SetFlagged(b bool) *AbilityEventCreate {
	aec.mutation.SetFlagged(b)
	return aec
}

// SetResponseCount sets the "response_count" field.
func (aec *AbilityEventCreate) SetResponseCount(i int) *AbilityEventCreate {
	aec.mutation.SetResponseCount(i)
	return aec
}

// Mutation returns the AbilityEventMutation object of the builder.
func (aec *AbilityEventCreate) Mutation() *AbilityEventMutation {
	return aec.mutation
}

// Save creates the AbilityEvent in the database.
func (aec *AbilityEventCreate) Save(ctx context.Context) (*AbilityEvent, error) {
	aec.defaults()
	return withHooks(ctx, aec.sqlSave, aec.mutation, aec.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (aec *AbilityEventCreate) SaveX(ctx context.Context) *AbilityEvent {
	v, err := aec.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (aec *AbilityEventCreate) Exec(ctx context.Context) error {
	_, err := aec.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (aec *AbilityEventCreate) ExecX(ctx context.Context) {
	if err := aec.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (aec *AbilityEventCreate) defaults() {
	if _, ok := aec.mutation.Timestamp(); !ok {
		v := abilityevent.DefaultTimestamp()
		aec.mutation.SetTimestamp(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (aec *AbilityEventCreate) check() error {
	if _, ok := aec.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "AbilityEvent.sequence"`)}
	}
	if _, ok := aec.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "AbilityEvent.timestamp"`)}
	}
	if _, ok := aec.mutation.LearnerID(); !ok {
		return &ValidationError{Name: "learner_id", err: errors.New(`ent: missing required field "AbilityEvent.learner_id"`)}
	}
	if v, ok := aec.mutation.LearnerID(); ok {
		if err := abilityevent.LearnerIDValidator(v); err != nil {
			return &ValidationError{Name: "learner_id", err: fmt.Errorf(`ent: validator failed for field "AbilityEvent.learner_id": %w`, err)}
		}
	}
	if _, ok := aec.mutation.Dimension(); !ok {
		return &ValidationError{Name: "dimension", err: errors.New(`ent: missing required field "AbilityEvent.dimension"`)}
	}
	if v, ok := aec.mutation.Dimension(); ok {
		if err := abilityevent.DimensionValidator(v); err != nil {
			return &ValidationError{Name: "dimension", err: fmt.Errorf(`ent: validator failed for field "AbilityEvent.dimension": %w`, err)}
		}
	}
	if _, ok := aec.mutation.Theta(); !ok {
		return &ValidationError{Name: "theta", err: errors.New(`ent: missing required field "AbilityEvent.theta"`)}
	}
	if _, ok := aec.mutation.StdErr(); !ok {
		return &ValidationError{Name: "std_err", err: errors.New(`ent: missing required field "AbilityEvent.std_err"`)}
	}
	if _, ok := aec.mutation.Flagged(); !ok {
		return &ValidationError{Name: "flagged", err: errors.New(`ent: missing required field "AbilityEvent.flagged"`)}
	}
	if _, ok := aec.mutation.ResponseCount(); !ok {
		return &ValidationError{Name: "response_count", err: errors.New(`ent: missing required field "AbilityEvent.response_count"`)}
	}
	return nil
}

func (aec *AbilityEventCreate) sqlSave(ctx context.Context) (*AbilityEvent, error) {
	if err := aec.check(); err != nil {
		return nil, err
	}
	_node, _spec := aec.createSpec()
	if err := sqlgraph.CreateNode(ctx, aec.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	aec.mutation.id = &_node.ID
	aec.mutation.done = true
	return _node, nil
}

func (aec *AbilityEventCreate) createSpec() (*AbilityEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &AbilityEvent{config: aec.config}
		_spec = sqlgraph.NewCreateSpec(abilityevent.Table, sqlgraph.NewFieldSpec(abilityevent.FieldID, field.TypeInt))
	)
	if value, ok := aec.mutation.Sequence(); ok {
		_spec.SetField(abilityevent.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := aec.mutation.Timestamp(); ok {
		_spec.SetField(abilityevent.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := aec.mutation.LearnerID(); ok {
		_spec.SetField(abilityevent.FieldLearnerID, field.TypeString, value)
		_node.LearnerID = value
	}
	if value, ok := aec.mutation.Dimension(); ok {
		_spec.SetField(abilityevent.FieldDimension, field.TypeString, value)
		_node.Dimension = value
	}
	if value, ok := aec.mutation.Theta(); ok {
		_spec.SetField(abilityevent.FieldTheta, field.TypeFloat64, value)
		_node.Theta = value
	}
	if value, ok := aec.mutation.StdErr(); ok {
		_spec.SetField(abilityevent.FieldStdErr, field.TypeFloat64, value)
		_node.StdErr = value
	}
	if value, ok := aec.mutation.Flagged(); ok {
		_spec.SetField(abilityevent.FieldFlagged, field.TypeBool, value)
		_node.Flagged = value
	}
	if value, ok := aec.mutation.ResponseCount(); ok {
		_spec.SetField(abilityevent.FieldResponseCount, field.TypeInt, value)
		_node.ResponseCount = value
	}
	return _node, _spec
}

// AbilityEventCreateBulk is the builder for creating many AbilityEvent entities in bulk.
type AbilityEventCreateBulk struct {
	config
	err      error
	builders []*AbilityEventCreate
}

// Save creates the AbilityEvent entities in the database.
func (aecb *AbilityEventCreateBulk) Save(ctx context.Context) ([]*AbilityEvent, error) {
	if aecb.err != nil {
		return nil, aecb.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(aecb.builders))
	nodes := make([]*AbilityEvent, len(aecb.builders))
	mutators := make([]Mutator, len(aecb.builders))
	for i := range aecb.builders {
		func(i int, root context.Context) {
			builder := aecb.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*AbilityEventMutation)
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
					_, err = mutators[i+1].Mutate(root, aecb.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, aecb.driver, spec); err != nil {
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
		if _, err := mutators[0].Mutate(ctx, aecb.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (aecb *AbilityEventCreateBulk) SaveX(ctx context.Context) []*AbilityEvent {
	v, err := aecb.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (aecb *AbilityEventCreateBulk) Exec(ctx context.Context) error {
	_, err := aecb.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (aecb *AbilityEventCreateBulk) ExecX(ctx context.Context) {
	if err := aecb.Exec(ctx); err != nil {
		panic(err)
	}
}
