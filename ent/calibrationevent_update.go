// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/tomatokenizer-web/LOGOSproject-sub002/ent/calibrationevent"
	"github.com/tomatokenizer-web/LOGOSproject-sub002/ent/predicate"
)

// CalibrationEventUpdate is the builder for updating CalibrationEvent entities.
type CalibrationEventUpdate struct {
	config
	hooks    []Hook
	mutation *CalibrationEventMutation
}

// Where appends a list predicates to the CalibrationEventUpdate builder.
func (ceu *CalibrationEventUpdate) Where(ps ...predicate.CalibrationEvent) *CalibrationEventUpdate {
	ceu.mutation.Where(ps...)
	return ceu
}

// SetLearnerCount sets the "learner_count" field.
func (ceu *CalibrationEventUpdate) SetLearnerCount(i int) *CalibrationEventUpdate {
	ceu.mutation.ResetLearnerCount()
	ceu.mutation.SetLearnerCount(i)
	return ceu
}

// SetNillableLearnerCount sets the "learner_count" field if the given value is not nil.
func (ceu *CalibrationEventUpdate) SetNillableLearnerCount(i *int) *CalibrationEventUpdate {
	if i != nil {
		ceu.SetLearnerCount(*i)
	}
	return ceu
}

// AddLearnerCount adds i to the "learner_count" field.
func (ceu *CalibrationEventUpdate) AddLearnerCount(i int) *CalibrationEventUpdate {
	ceu.mutation.AddLearnerCount(i)
	return ceu
}

// SetItemCount sets the "item_count" field.
func (ceu *CalibrationEventUpdate) SetItemCount(i int) *CalibrationEventUpdate {
	ceu.mutation.ResetItemCount()
	ceu.mutation.SetItemCount(i)
	return ceu
}

// SetNillableItemCount sets the "item_count" field if the given value is not nil.
func (ceu *CalibrationEventUpdate) SetNillableItemCount(i *int) *CalibrationEventUpdate {
	if i != nil {
		ceu.SetItemCount(*i)
	}
	return ceu
}

// AddItemCount adds i to the "item_count" field.
func (ceu *CalibrationEventUpdate) AddItemCount(i int) *CalibrationEventUpdate {
	ceu.mutation.AddItemCount(i)
	return ceu
}

// SetResponseCount sets the "response_count" field.
func (ceu *CalibrationEventUpdate) SetResponseCount(i int) *CalibrationEventUpdate {
	ceu.mutation.ResetResponseCount()
	ceu.mutation.SetResponseCount(i)
	return ceu
}

// SetNillableResponseCount sets the "response_count" field if the given value is not nil.
func (ceu *CalibrationEventUpdate) SetNillableResponseCount(i *int) *CalibrationEventUpdate {
	if i != nil {
		ceu.SetResponseCount(*i)
	}
	return ceu
}

// AddResponseCount adds i to the "response_count" field.
func (ceu *CalibrationEventUpdate) AddResponseCount(i int) *CalibrationEventUpdate {
	ceu.mutation.AddResponseCount(i)
	return ceu
}

// SetIterations sets the "iterations" field.
func (ceu *CalibrationEventUpdate) SetIterations(i int) *CalibrationEventUpdate {
	ceu.mutation.ResetIterations()
	ceu.mutation.SetIterations(i)
	return ceu
}

// SetNillableIterations sets the "iterations" field if the given value is not nil.
func (ceu *CalibrationEventUpdate) SetNillableIterations(i *int) *CalibrationEventUpdate {
	if i != nil {
		ceu.SetIterations(*i)
	}
	return ceu
}

// AddIterations adds i to the "iterations" field.
func (ceu *CalibrationEventUpdate) AddIterations(i int) *CalibrationEventUpdate {
	ceu.mutation.AddIterations(i)
	return ceu
}

// SetConverged sets the "converged" field.
func (ceu *CalibrationEventUpdate) SetConverged(b bool) *CalibrationEventUpdate {
	ceu.mutation.SetConverged(b)
	return ceu
}

// SetNillableConverged sets the "converged" field if the given value is not nil.
func (ceu *CalibrationEventUpdate) SetNillableConverged(b *bool) *CalibrationEventUpdate {
	if b != nil {
		ceu.SetConverged(*b)
	}
	return ceu
}

// SetThreeParameter sets the "three_parameter" field.
func (ceu *CalibrationEventUpdate) SetThreeParameter(b bool) *CalibrationEventUpdate {
	ceu.mutation.SetThreeParameter(b)
	return ceu
}

// SetNillableThreeParameter sets the "three_parameter" field if the given value is not nil.
func (ceu *CalibrationEventUpdate) SetNillableThreeParameter(b *bool) *CalibrationEventUpdate {
	if b != nil {
		ceu.SetThreeParameter(*b)
	}
	return ceu
}

// Mutation returns the CalibrationEventMutation object of the builder.
func (ceu *CalibrationEventUpdate) Mutation() *CalibrationEventMutation {
	return ceu.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (ceu *CalibrationEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, ceu.sqlSave, ceu.mutation, ceu.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (ceu *CalibrationEventUpdate) SaveX(ctx context.Context) int {
	affected, err := ceu.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (ceu *CalibrationEventUpdate) Exec(ctx context.Context) error {
	_, err := ceu.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (ceu *CalibrationEventUpdate) ExecX(ctx context.Context) {
	if err := ceu.Exec(ctx); err != nil {
		panic(err)
	}
}

func (ceu *CalibrationEventUpdate) sqlSave(ctx context.Context) (n int, err error) {
	_spec := sqlgraph.NewUpdateSpec(calibrationevent.Table, calibrationevent.Columns, sqlgraph.NewFieldSpec(calibrationevent.FieldID, field.TypeInt))
	if ps := ceu.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := ceu.mutation.LearnerCount(); ok {
		_spec.SetField(calibrationevent.FieldLearnerCount, field.TypeInt, value)
	}
	if value, ok := ceu.mutation.AddedLearnerCount(); ok {
		_spec.AddField(calibrationevent.FieldLearnerCount, field.TypeInt, value)
	}
	if value, ok := ceu.mutation.ItemCount(); ok {
		_spec.SetField(calibrationevent.FieldItemCount, field.TypeInt, value)
	}
	if value, ok := ceu.mutation.AddedItemCount(); ok {
		_spec.AddField(calibrationevent.FieldItemCount, field.TypeInt, value)
	}
	if value, ok := ceu.mutation.ResponseCount(); ok {
		_spec.SetField(calibrationevent.FieldResponseCount, field.TypeInt, value)
	}
	if value, ok := ceu.mutation.AddedResponseCount(); ok {
		_spec.AddField(calibrationevent.FieldResponseCount, field.TypeInt, value)
	}
	if value, ok := ceu.mutation.Iterations(); ok {
		_spec.SetField(calibrationevent.FieldIterations, field.TypeInt, value)
	}
	if value, ok := ceu.mutation.AddedIterations(); ok {
		_spec.AddField(calibrationevent.FieldIterations, field.TypeInt, value)
	}
	if value, ok := ceu.mutation.Converged(); ok {
		_spec.SetField(calibrationevent.FieldConverged, field.TypeBool, value)
	}
	if value, ok := ceu.mutation.ThreeParameter(); ok {
		_spec.SetField(calibrationevent.FieldThreeParameter, field.TypeBool, value)
	}
	if n, err = sqlgraph.UpdateNodes(ctx, ceu.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{calibrationevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	ceu.mutation.done = true
	return n, nil
}

// CalibrationEventUpdateOne is the builder for updating a single CalibrationEvent entity.
type CalibrationEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *CalibrationEventMutation
}

// SetLearnerCount sets the "learner_count" field.
func (ceuo *CalibrationEventUpdateOne) SetLearnerCount(i int) *CalibrationEventUpdateOne {
	ceuo.mutation.ResetLearnerCount()
	ceuo.mutation.SetLearnerCount(i)
	return ceuo
}

// SetNillableLearnerCount sets the "learner_count" field if the given value is not nil.
func (ceuo *CalibrationEventUpdateOne) SetNillableLearnerCount(i *int) *CalibrationEventUpdateOne {
	if i != nil {
		ceuo.SetLearnerCount(*i)
	}
	return ceuo
}

// AddLearnerCount adds i to the "learner_count" field.
func (ceuo *CalibrationEventUpdateOne) AddLearnerCount(i int) *CalibrationEventUpdateOne {
	ceuo.mutation.AddLearnerCount(i)
	return ceuo
}

// SetItemCount sets the "item_count" field.
func (ceuo *CalibrationEventUpdateOne) SetItemCount(i int) *CalibrationEventUpdateOne {
	ceuo.mutation.ResetItemCount()
	ceuo.mutation.SetItemCount(i)
	return ceuo
}

// SetNillableItemCount sets the "item_count" field if the given value is not nil.
func (ceuo *CalibrationEventUpdateOne) SetNillableItemCount(i *int) *CalibrationEventUpdateOne {
	if i != nil {
		ceuo.SetItemCount(*i)
	}
	return ceuo
}

// AddItemCount adds i to the "item_count" field.
func (ceuo *CalibrationEventUpdateOne) AddItemCount(i int) *CalibrationEventUpdateOne {
	ceuo.mutation.AddItemCount(i)
	return ceuo
}

// SetResponseCount sets the "response_count" field.
func (ceuo *CalibrationEventUpdateOne) SetResponseCount(i int) *CalibrationEventUpdateOne {
	ceuo.mutation.ResetResponseCount()
	ceuo.mutation.SetResponseCount(i)
	return ceuo
}

// SetNillableResponseCount sets the "response_count" field if the given value is not nil.
func (ceuo *CalibrationEventUpdateOne) SetNillableResponseCount(i *int) *CalibrationEventUpdateOne {
	if i != nil {
		ceuo.SetResponseCount(*i)
	}
	return ceuo
}

// AddResponseCount adds i to the "response_count" field.
func (ceuo *CalibrationEventUpdateOne) AddResponseCount(i int) *CalibrationEventUpdateOne {
	ceuo.mutation.AddResponseCount(i)
	return ceuo
}

// SetIterations sets the "iterations" field.
func (ceuo *CalibrationEventUpdateOne) SetIterations(i int) *CalibrationEventUpdateOne {
	ceuo.mutation.ResetIterations()
	ceuo.mutation.SetIterations(i)
	return ceuo
}

// SetNillableIterations sets the "iterations" field if the given value is not nil.
func (ceuo *CalibrationEventUpdateOne) SetNillableIterations(i *int) *CalibrationEventUpdateOne {
	if i != nil {
		ceuo.SetIterations(*i)
	}
	return ceuo
}

// AddIterations adds i to the "iterations" field.
func (ceuo *CalibrationEventUpdateOne) AddIterations(i int) *CalibrationEventUpdateOne {
	ceuo.mutation.AddIterations(i)
	return ceuo
}

// SetConverged sets the "converged" field.
func (ceuo *CalibrationEventUpdateOne) SetConverged(b bool) *CalibrationEventUpdateOne {
	ceuo.mutation.SetConverged(b)
	return ceuo
}

// SetNillableConverged sets the "converged" field if the given value is not nil.
func (ceuo *CalibrationEventUpdateOne) SetNillableConverged(b *bool) *CalibrationEventUpdateOne {
	if b != nil {
		ceuo.SetConverged(*b)
	}
	return ceuo
}

// SetThreeParameter sets the "three_parameter" field.
func (ceuo *CalibrationEventUpdateOne) SetThreeParameter(b bool) *CalibrationEventUpdateOne {
	ceuo.mutation.SetThreeParameter(b)
	return ceuo
}

// SetNillableThreeParameter sets the "three_parameter" field if the given value is not nil.
func (ceuo *CalibrationEventUpdateOne) SetNillableThreeParameter(b *bool) *CalibrationEventUpdateOne {
	if b != nil {
		ceuo.SetThreeParameter(*b)
	}
	return ceuo
}

// Mutation returns the CalibrationEventMutation object of the builder.
func (ceuo *CalibrationEventUpdateOne) Mutation() *CalibrationEventMutation {
	return ceuo.mutation
}

// Where appends a list predicates to the CalibrationEventUpdate builder.
func (ceuo *CalibrationEventUpdateOne) Where(ps ...predicate.CalibrationEvent) *CalibrationEventUpdateOne {
	ceuo.mutation.Where(ps...)
	return ceuo
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (ceuo *CalibrationEventUpdateOne) Select(field string, fields ...string) *CalibrationEventUpdateOne {
	ceuo.fields = append([]string{field}, fields...)
	return ceuo
}

// Save executes the query and returns the updated CalibrationEvent entity.
func (ceuo *CalibrationEventUpdateOne) Save(ctx context.Context) (*CalibrationEvent, error) {
	return withHooks(ctx, ceuo.sqlSave, ceuo.mutation, ceuo.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (ceuo *CalibrationEventUpdateOne) SaveX(ctx context.Context) *CalibrationEvent {
	node, err := ceuo.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (ceuo *CalibrationEventUpdateOne) Exec(ctx context.Context) error {
	_, err := ceuo.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (ceuo *CalibrationEventUpdateOne) ExecX(ctx context.Context) {
	if err := ceuo.Exec(ctx); err != nil {
		panic(err)
	}
}

func (ceuo *CalibrationEventUpdateOne) sqlSave(ctx context.Context) (_node *CalibrationEvent, err error) {
	_spec := sqlgraph.NewUpdateSpec(calibrationevent.Table, calibrationevent.Columns, sqlgraph.NewFieldSpec(calibrationevent.FieldID, field.TypeInt))
	id, ok := ceuo.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "CalibrationEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := ceuo.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, calibrationevent.FieldID)
		for _, f := range fields {
			if !calibrationevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != calibrationevent.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := ceuo.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := ceuo.mutation.LearnerCount(); ok {
		_spec.SetField(calibrationevent.FieldLearnerCount, field.TypeInt, value)
	}
	if value, ok := ceuo.mutation.AddedLearnerCount(); ok {
		_spec.AddField(calibrationevent.FieldLearnerCount, field.TypeInt, value)
	}
	if value, ok := ceuo.mutation.ItemCount(); ok {
		_spec.SetField(calibrationevent.FieldItemCount, field.TypeInt, value)
	}
	if value, ok := ceuo.mutation.AddedItemCount(); ok {
		_spec.AddField(calibrationevent.FieldItemCount, field.TypeInt, value)
	}
	if value, ok := ceuo.mutation.ResponseCount(); ok {
		_spec.SetField(calibrationevent.FieldResponseCount, field.TypeInt, value)
	}
	if value, ok := ceuo.mutation.AddedResponseCount(); ok {
		_spec.AddField(calibrationevent.FieldResponseCount, field.TypeInt, value)
	}
	if value, ok := ceuo.mutation.Iterations(); ok {
		_spec.SetField(calibrationevent.FieldIterations, field.TypeInt, value)
	}
	if value, ok := ceuo.mutation.AddedIterations(); ok {
		_spec.AddField(calibrationevent.FieldIterations, field.TypeInt, value)
	}
	if value, ok := ceuo.mutation.Converged(); ok {
		_spec.SetField(calibrationevent.FieldConverged, field.TypeBool, value)
	}
	if value, ok := ceuo.mutation.ThreeParameter(); ok {
		_spec.SetField(calibrationevent.FieldThreeParameter, field.TypeBool, value)
	}
	_node = &CalibrationEvent{config: ceuo.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, ceuo.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{calibrationevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	ceuo.mutation.done = true
	return _node, nil
}
