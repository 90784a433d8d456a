// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/tomatokenizer-web/LOGOSproject-sub002/ent/abilityevent"
	"github.com/tomatokenizer-web/LOGOSproject-sub002/ent/predicate"
)

// AbilityEventUpdate is the builder for updating AbilityEvent entities.
type AbilityEventUpdate struct {
	config
	hooks    []Hook
	mutation *AbilityEventMutation
}

// Where appends a list predicates to the AbilityEventUpdate builder.
func (aeu *AbilityEventUpdate) Where(ps ...predicate.AbilityEvent) *AbilityEventUpdate {
	aeu.mutation.Where(ps...)
	return aeu
}

// SetLearnerID sets the "learner_id" field.
func (aeu *AbilityEventUpdate) SetLearnerID(s string) *AbilityEventUpdate {
	aeu.mutation.SetLearnerID(s)
	return aeu
}

// SetNillableLearnerID sets the "learner_id" field if the given value is not nil.
func (aeu *AbilityEventUpdate) SetNillableLearnerID(s *string) *AbilityEventUpdate {
	if s != nil {
		aeu.SetLearnerID(*s)
	}
	return aeu
}

// SetDimension sets the "dimension" field.
func (aeu *AbilityEventUpdate) SetDimension(s string) *AbilityEventUpdate {
	aeu.mutation.SetDimension(s)
	return aeu
}

// SetNillableDimension sets the "dimension" field if the given value is not nil.
func (aeu *AbilityEventUpdate) SetNillableDimension(s *string) *AbilityEventUpdate {
	if s != nil {
		aeu.SetDimension(*s)
	}
	return aeu
}

// SetTheta sets the "theta" field.
func (aeu *AbilityEventUpdate) SetTheta(f float64) *AbilityEventUpdate {
	aeu.mutation.ResetTheta()
	aeu.mutation.SetTheta(f)
	return aeu
}

// SetNillableTheta sets the "theta" field if the given value is not nil.
func (aeu *AbilityEventUpdate) SetNillableTheta(f *float64) *AbilityEventUpdate {
	if f != nil {
		aeu.SetTheta(*f)
	}
	return aeu
}

// AddTheta adds f to the "theta" field.
func (aeu *AbilityEventUpdate) AddTheta(f float64) *AbilityEventUpdate {
	aeu.mutation.AddTheta(f)
	return aeu
}

// SetStdErr sets the "std_err" field.
func (aeu *AbilityEventUpdate) SetStdErr(f float64) *AbilityEventUpdate {
	aeu.mutation.ResetStdErr()
	aeu.mutation.SetStdErr(f)
	return aeu
}

// SetNillableStdErr sets the "std_err" field if the given value is not nil.
func (aeu *AbilityEventUpdate) SetNillableStdErr(f *float64) *AbilityEventUpdate {
	if f != nil {
		aeu.SetStdErr(*f)
	}
	return aeu
}

// AddStdErr adds f to the "std_err" field.
func (aeu *AbilityEventUpdate) AddStdErr(f float64) *AbilityEventUpdate {
	aeu.mutation.AddStdErr(f)
	return aeu
}

// SetFlagged sets the "flagged" field.
func (aeu *AbilityEventUpdate) SetFlagged(b bool) *AbilityEventUpdate {
	aeu.mutation.SetFlagged(b)
	return aeu
}

// SetNillableFlagged sets the "flagged" field if the given value is not nil.
func (aeu *AbilityEventUpdate) SetNillableFlagged(b *bool) *AbilityEventUpdate {
	if b != nil {
		aeu.SetFlagged(*b)
	}
	return aeu
}

// SetResponseCount sets the "response_count" field.
func (aeu *AbilityEventUpdate) SetResponseCount(i int) *AbilityEventUpdate {
	aeu.mutation.ResetResponseCount()
	aeu.mutation.SetResponseCount(i)
	return aeu
}

// SetNillableResponseCount sets the "response_count" field if the given value is not nil.
func (aeu *AbilityEventUpdate) SetNillableResponseCount(i *int) *AbilityEventUpdate {
	if i != nil {
		aeu.SetResponseCount(*i)
	}
	return aeu
}

// AddResponseCount adds i to the "response_count" field.
func (aeu *AbilityEventUpdate) AddResponseCount(i int) *AbilityEventUpdate {
	aeu.mutation.AddResponseCount(i)
	return aeu
}

// Mutation returns the AbilityEventMutation object of the builder.
func (aeu *AbilityEventUpdate) Mutation() *AbilityEventMutation {
	return aeu.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (aeu *AbilityEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, aeu.sqlSave, aeu.mutation, aeu.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (aeu *AbilityEventUpdate) SaveX(ctx context.Context) int {
	affected, err := aeu.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (aeu *AbilityEventUpdate) Exec(ctx context.Context) error {
	_, err := aeu.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (aeu *AbilityEventUpdate) ExecX(ctx context.Context) {
	if err := aeu.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (aeu *AbilityEventUpdate) check() error {
	if v, ok := aeu.mutation.LearnerID(); ok {
		if err := abilityevent.LearnerIDValidator(v); err != nil {
			return &ValidationError{Name: "learner_id", err: fmt.Errorf(`ent: validator failed for field "AbilityEvent.learner_id": %w`, err)}
		}
	}
	if v, ok := aeu.mutation.Dimension(); ok {
		if err := abilityevent.DimensionValidator(v); err != nil {
			return &ValidationError{Name: "dimension", err: fmt.Errorf(`ent: validator failed for field "AbilityEvent.dimension": %w`, err)}
		}
	}
	return nil
}

func (aeu *AbilityEventUpdate) sqlSave(ctx context.Context) (n int, err error) {
	if err := aeu.check(); err != nil {
		return n, err
	}
	_spec := sqlgraph.NewUpdateSpec(abilityevent.Table, abilityevent.Columns, sqlgraph.NewFieldSpec(abilityevent.FieldID, field.TypeInt))
	if ps := aeu.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := aeu.mutation.LearnerID(); ok {
		_spec.SetField(abilityevent.FieldLearnerID, field.TypeString, value)
	}
	if value, ok := aeu.mutation.Dimension(); ok {
		_spec.SetField(abilityevent.FieldDimension, field.TypeString, value)
	}
	if value, ok := aeu.mutation.Theta(); ok {
		_spec.SetField(abilityevent.FieldTheta, field.TypeFloat64, value)
	}
	if value, ok := aeu.mutation.AddedTheta(); ok {
		_spec.AddField(abilityevent.FieldTheta, field.TypeFloat64, value)
	}
	if value, ok := aeu.mutation.StdErr(); ok {
		_spec.SetField(abilityevent.FieldStdErr, field.TypeFloat64, value)
	}
	if value, ok := aeu.mutation.AddedStdErr(); ok {
		_spec.AddField(abilityevent.FieldStdErr, field.TypeFloat64, value)
	}
	if value, ok := aeu.mutation.Flagged(); ok {
		_spec.SetField(abilityevent.FieldFlagged, field.TypeBool, value)
	}
	if value, ok := aeu.mutation.ResponseCount(); ok {
		_spec.SetField(abilityevent.FieldResponseCount, field.TypeInt, value)
	}
	if value, ok := aeu.mutation.AddedResponseCount(); ok {
		_spec.AddField(abilityevent.FieldResponseCount, field.TypeInt, value)
	}
	if n, err = sqlgraph.UpdateNodes(ctx, aeu.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{abilityevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	aeu.mutation.done = true
	return n, nil
}

// AbilityEventUpdateOne is the builder for updating a single AbilityEvent entity.
type AbilityEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AbilityEventMutation
}

// SetLearnerID sets the "learner_id" field.
func (aeuo *AbilityEventUpdateOne) SetLearnerID(s string) *AbilityEventUpdateOne {
	aeuo.mutation.SetLearnerID(s)
	return aeuo
}

// SetNillableLearnerID sets the "learner_id" field if the given value is not nil.
func (aeuo *AbilityEventUpdateOne) SetNillableLearnerID(s *string) *AbilityEventUpdateOne {
	if s != nil {
		aeuo.SetLearnerID(*s)
	}
	return aeuo
}

// SetDimension sets the "dimension" field.
func (aeuo *AbilityEventUpdateOne) SetDimension(s string) *AbilityEventUpdateOne {
	aeuo.mutation.SetDimension(s)
	return aeuo
}

// SetNillableDimension sets the "dimension" field if the given value is not nil.
func (aeuo *AbilityEventUpdateOne) SetNillableDimension(s *string) *AbilityEventUpdateOne {
	if s != nil {
		aeuo.SetDimension(*s)
	}
	return aeuo
}

// SetTheta sets the "theta" field.
func (aeuo *AbilityEventUpdateOne) SetTheta(f float64) *AbilityEventUpdateOne {
	aeuo.mutation.ResetTheta()
	aeuo.mutation.SetTheta(f)
	return aeuo
}

// SetNillableTheta sets the "theta" field if the given value is not nil.
func (aeuo *AbilityEventUpdateOne) SetNillableTheta(f *float64) *AbilityEventUpdateOne {
	if f != nil {
		aeuo.SetTheta(*f)
	}
	return aeuo
}

// AddTheta adds f to the "theta" field.
func (aeuo *AbilityEventUpdateOne) AddTheta(f float64) *AbilityEventUpdateOne {
	aeuo.mutation.AddTheta(f)
	return aeuo
}

// SetStdErr sets the "std_err" field.
func (aeuo *AbilityEventUpdateOne) SetStdErr(f float64) *AbilityEventUpdateOne {
	aeuo.mutation.ResetStdErr()
	aeuo.mutation.SetStdErr(f)
	return aeuo
}

// SetNillableStdErr sets the "std_err" field if the given value is not nil.
func (aeuo *AbilityEventUpdateOne) SetNillableStdErr(f *float64) *AbilityEventUpdateOne {
	if f != nil {
		aeuo.SetStdErr(*f)
	}
	return aeuo
}

// AddStdErr adds f to the "std_err" field.
func (aeuo *AbilityEventUpdateOne) AddStdErr(f float64) *AbilityEventUpdateOne {
	aeuo.mutation.AddStdErr(f)
	return aeuo
}

// SetFlagged sets the "flagged" field.
func (aeuo *AbilityEventUpdateOne) SetFlagged(b bool) *AbilityEventUpdateOne {
	aeuo.mutation.SetFlagged(b)
	return aeuo
}

// SetNillableFlagged sets the "flagged" field if the given value is not nil.
func (aeuo *AbilityEventUpdateOne) SetNillableFlagged(b *bool) *AbilityEventUpdateOne {
	if b != nil {
		aeuo.SetFlagged(*b)
	}
	return aeuo
}

// SetResponseCount sets the "response_count" field.
func (aeuo *AbilityEventUpdateOne) SetResponseCount(i int) *AbilityEventUpdateOne {
	aeuo.mutation.ResetResponseCount()
	aeuo.mutation.SetResponseCount(i)
	return aeuo
}

// SetNillableResponseCount sets the "response_count" field if the given value is not nil.
func (aeuo *AbilityEventUpdateOne) SetNillableResponseCount(i *int) *AbilityEventUpdateOne {
	if i != nil {
		aeuo.SetResponseCount(*i)
	}
	return aeuo
}

// AddResponseCount adds i to the "response_count" field.
func (aeuo *AbilityEventUpdateOne) AddResponseCount(i int) *AbilityEventUpdateOne {
	aeuo.mutation.AddResponseCount(i)
	return aeuo
}

// Mutation returns the AbilityEventMutation object of the builder.
func (aeuo *AbilityEventUpdateOne) Mutation() *AbilityEventMutation {
	return aeuo.mutation
}

// Where appends a list predicates to the AbilityEventUpdate builder.
func (aeuo *AbilityEventUpdateOne) Where(ps ...predicate.AbilityEvent) *AbilityEventUpdateOne {
	aeuo.mutation.Where(ps...)
	return aeuo
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (aeuo *AbilityEventUpdateOne) Select(field string, fields ...string) *AbilityEventUpdateOne {
	aeuo.fields = append([]string{field}, fields...)
	return aeuo
}

// Save executes the query and returns the updated AbilityEvent entity.
func (aeuo *AbilityEventUpdateOne) Save(ctx context.Context) (*AbilityEvent, error) {
	return withHooks(ctx, aeuo.sqlSave, aeuo.mutation, aeuo.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (aeuo *AbilityEventUpdateOne) SaveX(ctx context.Context) *AbilityEvent {
	node, err := aeuo.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (aeuo *AbilityEventUpdateOne) Exec(ctx context.Context) error {
	_, err := aeuo.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (aeuo *AbilityEventUpdateOne) ExecX(ctx context.Context) {
	if err := aeuo.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (aeuo *AbilityEventUpdateOne) check() error {
	if v, ok := aeuo.mutation.LearnerID(); ok {
		if err := abilityevent.LearnerIDValidator(v); err != nil {
			return &ValidationError{Name: "learner_id", err: fmt.Errorf(`ent: validator failed for field "AbilityEvent.learner_id": %w`, err)}
		}
	}
	if v, ok := aeuo.mutation.Dimension(); ok {
		if err := abilityevent.DimensionValidator(v); err != nil {
			return &ValidationError{Name: "dimension", err: fmt.Errorf(`ent: validator failed for field "AbilityEvent.dimension": %w`, err)}
		}
	}
	return nil
}

func (aeuo *AbilityEventUpdateOne) sqlSave(ctx context.Context) (_node *AbilityEvent, err error) {
	if err := aeuo.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(abilityevent.Table, abilityevent.Columns, sqlgraph.NewFieldSpec(abilityevent.FieldID, field.TypeInt))
	id, ok := aeuo.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "AbilityEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := aeuo.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, abilityevent.FieldID)
		for _, f := range fields {
			if !abilityevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != abilityevent.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := aeuo.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := aeuo.mutation.LearnerID(); ok {
		_spec.SetField(abilityevent.FieldLearnerID, field.TypeString, value)
	}
	if value, ok := aeuo.mutation.Dimension(); ok {
		_spec.SetField(abilityevent.FieldDimension, field.TypeString, value)
	}
	if value, ok := aeuo.mutation.Theta(); ok {
		_spec.SetField(abilityevent.FieldTheta, field.TypeFloat64, value)
	}
	if value, ok := aeuo.mutation.AddedTheta(); ok {
		_spec.AddField(abilityevent.FieldTheta, field.TypeFloat64, value)
	}
	if value, ok := aeuo.mutation.StdErr(); ok {
		_spec.SetField(abilityevent.FieldStdErr, field.TypeFloat64, value)
	}
	if value, ok := aeuo.mutation.AddedStdErr(); ok {
		_spec.AddField(abilityevent.FieldStdErr, field.TypeFloat64, value)
	}
	if value, ok := aeuo.mutation.Flagged(); ok {
		_spec.SetField(abilityevent.FieldFlagged, field.TypeBool, value)
	}
	if value, ok := aeuo.mutation.ResponseCount(); ok {
		_spec.SetField(abilityevent.FieldResponseCount, field.TypeInt, value)
	}
	if value, ok := aeuo.mutation.AddedResponseCount(); ok {
		_spec.AddField(abilityevent.FieldResponseCount, field.TypeInt, value)
	}
	_node = &AbilityEvent{config: aeuo.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, aeuo.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{abilityevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	aeuo.mutation.done = true
	return _node, nil
}
