// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/tomatokenizer-web/LOGOSproject-sub002/ent/predicate"
	"github.com/tomatokenizer-web/LOGOSproject-sub002/ent/sessionevent"
)

// SessionEventUpdate is the builder for updating SessionEvent entities.
type SessionEventUpdate struct {
	config
	hooks    []Hook
	mutation *SessionEventMutation
}

// Where appends a list predicates to the SessionEventUpdate builder.
func (seu *SessionEventUpdate) Where(ps ...predicate.SessionEvent) *SessionEventUpdate {
	seu.mutation.Where(ps...)
	return seu
}

// SetLearnerID sets the "learner_id" field.
func (seu *SessionEventUpdate) SetLearnerID(s string) *SessionEventUpdate {
	seu.mutation.SetLearnerID(s)
	return seu
}

// SetNillableLearnerID sets the "learner_id" field if the given value is not nil.
func (seu *SessionEventUpdate) SetNillableLearnerID(s *string) *SessionEventUpdate {
	if s != nil {
		seu.SetLearnerID(*s)
	}
	return seu
}

// SetSessionID sets the "session_id" field.
func (seu *SessionEventUpdate) SetSessionID(s string) *SessionEventUpdate {
	seu.mutation.SetSessionID(s)
	return seu
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (seu *SessionEventUpdate) SetNillableSessionID(s *string) *SessionEventUpdate {
	if s != nil {
		seu.SetSessionID(*s)
	}
	return seu
}

// SetAction sets the "action" field.
func (seu *SessionEventUpdate) SetAction(s string) *SessionEventUpdate {
	seu.mutation.SetAction(s)
	return seu
}

// SetNillableAction sets the "action" field if the given value is not nil.
func (seu *SessionEventUpdate) SetNillableAction(s *string) *SessionEventUpdate {
	if s != nil {
		seu.SetAction(*s)
	}
	return seu
}

// SetItemsServed sets the "items_served" field.
func (seu *SessionEventUpdate) SetItemsServed(i int) *SessionEventUpdate {
	seu.mutation.ResetItemsServed()
	seu.mutation.SetItemsServed(i)
	return seu
}

// SetNillableItemsServed sets the "items_served" field if the given value is not nil.
func (seu *SessionEventUpdate) SetNillableItemsServed(i *int) *SessionEventUpdate {
	if i != nil {
		seu.SetItemsServed(*i)
	}
	return seu
}

// AddItemsServed adds i to the "items_served" field.
func (seu *SessionEventUpdate) AddItemsServed(i int) *SessionEventUpdate {
	seu.mutation.AddItemsServed(i)
	return seu
}

// SetCorrectAnswers sets the "correct_answers" field.
func (seu *SessionEventUpdate) SetCorrectAnswers(i int) *SessionEventUpdate {
	seu.mutation.ResetCorrectAnswers()
	seu.mutation.SetCorrectAnswers(i)
	return seu
}

// SetNillableCorrectAnswers sets the "correct_answers" field if the given value is not nil.
func (seu *SessionEventUpdate) SetNillableCorrectAnswers(i *int) *SessionEventUpdate {
	if i != nil {
		seu.SetCorrectAnswers(*i)
	}
	return seu
}

// AddCorrectAnswers adds i to the "correct_answers" field.
func (seu *SessionEventUpdate) AddCorrectAnswers(i int) *SessionEventUpdate {
	seu.mutation.AddCorrectAnswers(i)
	return seu
}

// SetNewItems sets the "new_items" field.
func (seu *SessionEventUpdate) SetNewItems(i int) *SessionEventUpdate {
	seu.mutation.ResetNewItems()
	seu.mutation.SetNewItems(i)
	return seu
}

// SetNillableNewItems sets the "new_items" field if the given value is not nil.
func (seu *SessionEventUpdate) SetNillableNewItems(i *int) *SessionEventUpdate {
	if i != nil {
		seu.SetNewItems(*i)
	}
	return seu
}

// AddNewItems adds i to the "new_items" field.
func (seu *SessionEventUpdate) AddNewItems(i int) *SessionEventUpdate {
	seu.mutation.AddNewItems(i)
	return seu
}

// SetDurationSecs sets the "duration_secs" field.
func (seu *SessionEventUpdate) SetDurationSecs(i int64) *SessionEventUpdate {
	seu.mutation.ResetDurationSecs()
	seu.mutation.SetDurationSecs(i)
	return seu
}

// SetNillableDurationSecs sets the "duration_secs" field if the given value is not nil.
func (seu *SessionEventUpdate) SetNillableDurationSecs(i *int64) *SessionEventUpdate {
	if i != nil {
		seu.SetDurationSecs(*i)
	}
	return seu
}

// AddDurationSecs adds i to the "duration_secs" field.
func (seu *SessionEventUpdate) AddDurationSecs(i int64) *SessionEventUpdate {
	seu.mutation.AddDurationSecs(i)
	return seu
}

// Mutation returns the SessionEventMutation object of the builder.
func (seu *SessionEventUpdate) Mutation() *SessionEventMutation {
	return seu.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (seu *SessionEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, seu.sqlSave, seu.mutation, seu.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (seu *SessionEventUpdate) SaveX(ctx context.Context) int {
	affected, err := seu.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (seu *SessionEventUpdate) Exec(ctx context.Context) error {
	_, err := seu.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (seu *SessionEventUpdate) ExecX(ctx context.Context) {
	if err := seu.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (seu *SessionEventUpdate) check() error {
	if v, ok := seu.mutation.LearnerID(); ok {
		if err := sessionevent.LearnerIDValidator(v); err != nil {
			return &ValidationError{Name: "learner_id", err: fmt.Errorf(`ent: validator failed for field "SessionEvent.learner_id": %w`, err)}
		}
	}
	if v, ok := seu.mutation.SessionID(); ok {
		if err := sessionevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "SessionEvent.session_id": %w`, err)}
		}
	}
	if v, ok := seu.mutation.Action(); ok {
		if err := sessionevent.ActionValidator(v); err != nil {
			return &ValidationError{Name: "action", err: fmt.Errorf(`ent: validator failed for field "SessionEvent.action": %w`, err)}
		}
	}
	return nil
}

func (seu *SessionEventUpdate) sqlSave(ctx context.Context) (n int, err error) {
	if err := seu.check(); err != nil {
		return n, err
	}
	_spec := sqlgraph.NewUpdateSpec(sessionevent.Table, sessionevent.Columns, sqlgraph.NewFieldSpec(sessionevent.FieldID, field.TypeInt))
	if ps := seu.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := seu.mutation.LearnerID(); ok {
		_spec.SetField(sessionevent.FieldLearnerID, field.TypeString, value)
	}
	if value, ok := seu.mutation.SessionID(); ok {
		_spec.SetField(sessionevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := seu.mutation.Action(); ok {
		_spec.SetField(sessionevent.FieldAction, field.TypeString, value)
	}
	if value, ok := seu.mutation.ItemsServed(); ok {
		_spec.SetField(sessionevent.FieldItemsServed, field.TypeInt, value)
	}
	if value, ok := seu.mutation.AddedItemsServed(); ok {
		_spec.AddField(sessionevent.FieldItemsServed, field.TypeInt, value)
	}
	if value, ok := seu.mutation.CorrectAnswers(); ok {
		_spec.SetField(sessionevent.FieldCorrectAnswers, field.TypeInt, value)
	}
	if value, ok := seu.mutation.AddedCorrectAnswers(); ok {
		_spec.AddField(sessionevent.FieldCorrectAnswers, field.TypeInt, value)
	}
	if value, ok := seu.mutation.NewItems(); ok {
		_spec.SetField(sessionevent.FieldNewItems, field.TypeInt, value)
	}
	if value, ok := seu.mutation.AddedNewItems(); ok {
		_spec.AddField(sessionevent.FieldNewItems, field.TypeInt, value)
	}
	if value, ok := seu.mutation.DurationSecs(); ok {
		_spec.SetField(sessionevent.FieldDurationSecs, field.TypeInt64, value)
	}
	if value, ok := seu.mutation.AddedDurationSecs(); ok {
		_spec.AddField(sessionevent.FieldDurationSecs, field.TypeInt64, value)
	}
	if n, err = sqlgraph.UpdateNodes(ctx, seu.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{sessionevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	seu.mutation.done = true
	return n, nil
}

// SessionEventUpdateOne is the builder for updating a single SessionEvent entity.
type SessionEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *SessionEventMutation
}

// SetLearnerID sets the "learner_id" field.
func (seuo *SessionEventUpdateOne) SetLearnerID(s string) *SessionEventUpdateOne {
	seuo.mutation.SetLearnerID(s)
	return seuo
}

// SetNillableLearnerID sets the "learner_id" field if the given value is not nil.
func (seuo *SessionEventUpdateOne) SetNillableLearnerID(s *string) *SessionEventUpdateOne {
	if s != nil {
		seuo.SetLearnerID(*s)
	}
	return seuo
}

// SetSessionID sets the "session_id" field.
func (seuo *SessionEventUpdateOne) SetSessionID(s string) *SessionEventUpdateOne {
	seuo.mutation.SetSessionID(s)
	return seuo
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (seuo *SessionEventUpdateOne) SetNillableSessionID(s *string) *SessionEventUpdateOne {
	if s != nil {
		seuo.SetSessionID(*s)
	}
	return seuo
}

// SetAction sets the "action" field.
func (seuo *SessionEventUpdateOne) SetAction(s string) *SessionEventUpdateOne {
	seuo.mutation.SetAction(s)
	return seuo
}

// SetNillableAction sets the "action" field if the given value is not nil.
func (seuo *SessionEventUpdateOne) SetNillableAction(s *string) *SessionEventUpdateOne {
	if s != nil {
		seuo.SetAction(*s)
	}
	return seuo
}

// SetItemsServed sets the "items_served" field.
func (seuo *SessionEventUpdateOne) SetItemsServed(i int) *SessionEventUpdateOne {
	seuo.mutation.ResetItemsServed()
	seuo.mutation.SetItemsServed(i)
	return seuo
}

// SetNillableItemsServed sets the "items_served" field if the given value is not nil.
func (seuo *SessionEventUpdateOne) SetNillableItemsServed(i *int) *SessionEventUpdateOne {
	if i != nil {
		seuo.SetItemsServed(*i)
	}
	return seuo
}

// AddItemsServed adds i to the "items_served" field.
func (seuo *SessionEventUpdateOne) AddItemsServed(i int) *SessionEventUpdateOne {
	seuo.mutation.AddItemsServed(i)
	return seuo
}

// SetCorrectAnswers sets the "correct_answers" field.
func (seuo *SessionEventUpdateOne) SetCorrectAnswers(i int) *SessionEventUpdateOne {
	seuo.mutation.ResetCorrectAnswers()
	seuo.mutation.SetCorrectAnswers(i)
	return seuo
}

// SetNillableCorrectAnswers sets the "correct_answers" field if the given value is not nil.
func (seuo *SessionEventUpdateOne) SetNillableCorrectAnswers(i *int) *SessionEventUpdateOne {
	if i != nil {
		seuo.SetCorrectAnswers(*i)
	}
	return seuo
}

// AddCorrectAnswers adds i to the "correct_answers" field.
func (seuo *SessionEventUpdateOne) AddCorrectAnswers(i int) *SessionEventUpdateOne {
	seuo.mutation.AddCorrectAnswers(i)
	return seuo
}

// SetNewItems sets the "new_items" field.
func (seuo *SessionEventUpdateOne) SetNewItems(i int) *SessionEventUpdateOne {
	seuo.mutation.ResetNewItems()
	seuo.mutation.SetNewItems(i)
	return seuo
}

// SetNillableNewItems sets the "new_items" field if the given value is not nil.
func (seuo *SessionEventUpdateOne) SetNillableNewItems(i *int) *SessionEventUpdateOne {
	if i != nil {
		seuo.SetNewItems(*i)
	}
	return seuo
}

// AddNewItems adds i to the "new_items" field.
func (seuo *SessionEventUpdateOne) AddNewItems(i int) *SessionEventUpdateOne {
	seuo.mutation.AddNewItems(i)
	return seuo
}

// SetDurationSecs sets the "duration_secs" field.
func (seuo *SessionEventUpdateOne) SetDurationSecs(i int64) *SessionEventUpdateOne {
	seuo.mutation.ResetDurationSecs()
	seuo.mutation.SetDurationSecs(i)
	return seuo
}

// SetNillableDurationSecs sets the "duration_secs" field if the given value is not nil.
func (seuo *SessionEventUpdateOne) SetNillableDurationSecs(i *int64) *SessionEventUpdateOne {
	if i != nil {
		seuo.SetDurationSecs(*i)
	}
	return seuo
}

// AddDurationSecs adds i to the "duration_secs" field.
func (seuo *SessionEventUpdateOne) AddDurationSecs(i int64) *SessionEventUpdateOne {
	seuo.mutation.AddDurationSecs(i)
	return seuo
}

// Mutation returns the SessionEventMutation object of the builder.
func (seuo *SessionEventUpdateOne) Mutation() *SessionEventMutation {
	return seuo.mutation
}

// Where appends a list predicates to the SessionEventUpdate builder.
func (seuo *SessionEventUpdateOne) Where(ps ...predicate.SessionEvent) *SessionEventUpdateOne {
	seuo.mutation.Where(ps...)
	return seuo
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (seuo *SessionEventUpdateOne) Select(field string, fields ...string) *SessionEventUpdateOne {
	seuo.fields = append([]string{field}, fields...)
	return seuo
}

// Save executes the query and returns the updated SessionEvent entity.
func (seuo *SessionEventUpdateOne) Save(ctx context.Context) (*SessionEvent, error) {
	return withHooks(ctx, seuo.sqlSave, seuo.mutation, seuo.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (seuo *SessionEventUpdateOne) SaveX(ctx context.Context) *SessionEvent {
	node, err := seuo.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (seuo *SessionEventUpdateOne) Exec(ctx context.Context) error {
	_, err := seuo.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (seuo *SessionEventUpdateOne) ExecX(ctx context.Context) {
	if err := seuo.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (seuo *SessionEventUpdateOne) check() error {
	if v, ok := seuo.mutation.LearnerID(); ok {
		if err := sessionevent.LearnerIDValidator(v); err != nil {
			return &ValidationError{Name: "learner_id", err: fmt.Errorf(`ent: validator failed for field "SessionEvent.learner_id": %w`, err)}
		}
	}
	if v, ok := seuo.mutation.SessionID(); ok {
		if err := sessionevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "SessionEvent.session_id": %w`, err)}
		}
	}
	if v, ok := seuo.mutation.Action(); ok {
		if err := sessionevent.ActionValidator(v); err != nil {
			return &ValidationError{Name: "action", err: fmt.Errorf(`ent: validator failed for field "SessionEvent.action": %w`, err)}
		}
	}
	return nil
}

func (seuo *SessionEventUpdateOne) sqlSave(ctx context.Context) (_node *SessionEvent, err error) {
	if err := seuo.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(sessionevent.Table, sessionevent.Columns, sqlgraph.NewFieldSpec(sessionevent.FieldID, field.TypeInt))
	id, ok := seuo.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "SessionEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := seuo.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, sessionevent.FieldID)
		for _, f := range fields {
			if !sessionevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != sessionevent.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := seuo.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := seuo.mutation.LearnerID(); ok {
		_spec.SetField(sessionevent.FieldLearnerID, field.TypeString, value)
	}
	if value, ok := seuo.mutation.SessionID(); ok {
		_spec.SetField(sessionevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := seuo.mutation.Action(); ok {
		_spec.SetField(sessionevent.FieldAction, field.TypeString, value)
	}
	if value, ok := seuo.mutation.ItemsServed(); ok {
		_spec.SetField(sessionevent.FieldItemsServed, field.TypeInt, value)
	}
	if value, ok := seuo.mutation.AddedItemsServed(); ok {
		_spec.AddField(sessionevent.FieldItemsServed, field.TypeInt, value)
	}
	if value, ok := seuo.mutation.CorrectAnswers(); ok {
		_spec.SetField(sessionevent.FieldCorrectAnswers, field.TypeInt, value)
	}
	if value, ok := seuo.mutation.AddedCorrectAnswers(); ok {
		_spec.AddField(sessionevent.FieldCorrectAnswers, field.TypeInt, value)
	}
	if value, ok := seuo.mutation.NewItems(); ok {
		_spec.SetField(sessionevent.FieldNewItems, field.TypeInt, value)
	}
	if value, ok := seuo.mutation.AddedNewItems(); ok {
		_spec.AddField(sessionevent.FieldNewItems, field.TypeInt, value)
	}
	if value, ok := seuo.mutation.DurationSecs(); ok {
		_spec.SetField(sessionevent.FieldDurationSecs, field.TypeInt64, value)
	}
	if value, ok := seuo.mutation.AddedDurationSecs(); ok {
		_spec.AddField(sessionevent.FieldDurationSecs, field.TypeInt64, value)
	}
	_node = &SessionEvent{config: seuo.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, seuo.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{sessionevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	seuo.mutation.done = true
	return _node, nil
}
