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
	"github.com/tomatokenizer-web/LOGOSproject-sub002/ent/reviewevent"
)

// ReviewEventUpdate is the builder for updating ReviewEvent entities.
type ReviewEventUpdate struct {
	config
	hooks    []Hook
	mutation *ReviewEventMutation
}

// Where appends a list predicates to the ReviewEventUpdate builder.
func (reu *ReviewEventUpdate) Where(ps ...predicate.ReviewEvent) *ReviewEventUpdate {
	reu.mutation.Where(ps...)
	return reu
}

// SetLearnerID sets the "learner_id" field.
func (reu *ReviewEventUpdate) SetLearnerID(s string) *ReviewEventUpdate {
	reu.mutation.SetLearnerID(s)
	return reu
}

// SetNillableLearnerID sets the "learner_id" field if the given value is not nil.
func (reu *ReviewEventUpdate) SetNillableLearnerID(s *string) *ReviewEventUpdate {
	if s != nil {
		reu.SetLearnerID(*s)
	}
	return reu
}

// SetItemID sets the "item_id" field.
func (reu *ReviewEventUpdate) SetItemID(s string) *ReviewEventUpdate {
	reu.mutation.SetItemID(s)
	return reu
}

// SetNillableItemID sets the "item_id" field if the given value is not nil.
func (reu *ReviewEventUpdate) SetNillableItemID(s *string) *ReviewEventUpdate {
	if s != nil {
		reu.SetItemID(*s)
	}
	return reu
}

// SetDimension sets the "dimension" field.
func (reu *ReviewEventUpdate) SetDimension(s string) *ReviewEventUpdate {
	reu.mutation.SetDimension(s)
	return reu
}

// SetNillableDimension sets the "dimension" field if the given value is not nil.
func (reu *ReviewEventUpdate) SetNillableDimension(s *string) *ReviewEventUpdate {
	if s != nil {
		reu.SetDimension(*s)
	}
	return reu
}

// SetRating sets the "rating" field.
func (reu *ReviewEventUpdate) SetRating(s string) *ReviewEventUpdate {
	reu.mutation.SetRating(s)
	return reu
}

// SetNillableRating sets the "rating" field if the given value is not nil.
func (reu *ReviewEventUpdate) SetNillableRating(s *string) *ReviewEventUpdate {
	if s != nil {
		reu.SetRating(*s)
	}
	return reu
}

// SetCorrect sets the "correct" field.
func (reu *ReviewEventUpdate) SetCorrect(b bool) *ReviewEventUpdate {
	reu.mutation.SetCorrect(b)
	return reu
}

// SetNillableCorrect sets the "correct" field if the given value is not nil.
func (reu *ReviewEventUpdate) SetNillableCorrect(b *bool) *ReviewEventUpdate {
	if b != nil {
		reu.SetCorrect(*b)
	}
	return reu
}

// SetCueUsed sets the "cue_used" field.
func (reu *ReviewEventUpdate) SetCueUsed(b bool) *ReviewEventUpdate {
	reu.mutation.SetCueUsed(b)
	return reu
}

// SetNillableCueUsed sets the "cue_used" field if the given value is not nil.
func (reu *ReviewEventUpdate) SetNillableCueUsed(b *bool) *ReviewEventUpdate {
	if b != nil {
		reu.SetCueUsed(*b)
	}
	return reu
}

// SetLatencyMs sets the "latency_ms" field.
func (reu *ReviewEventUpdate) SetLatencyMs(i int64) *ReviewEventUpdate {
	reu.mutation.ResetLatencyMs()
	reu.mutation.SetLatencyMs(i)
	return reu
}

// SetNillableLatencyMs sets the "latency_ms" field if the given value is not nil.
func (reu *ReviewEventUpdate) SetNillableLatencyMs(i *int64) *ReviewEventUpdate {
	if i != nil {
		reu.SetLatencyMs(*i)
	}
	return reu
}

// AddLatencyMs adds i to the "latency_ms" field.
func (reu *ReviewEventUpdate) AddLatencyMs(i int64) *ReviewEventUpdate {
	reu.mutation.AddLatencyMs(i)
	return reu
}

// SetStability sets the "stability" field.
func (reu *ReviewEventUpdate) SetStability(f float64) *ReviewEventUpdate {
	reu.mutation.ResetStability()
	reu.mutation.SetStability(f)
	return reu
}

// SetNillableStability sets the "stability" field if the given value is not nil.
func (reu *ReviewEventUpdate) SetNillableStability(f *float64) *ReviewEventUpdate {
	if f != nil {
		reu.SetStability(*f)
	}
	return reu
}

// AddStability adds f to the "stability" field.
func (reu *ReviewEventUpdate) AddStability(f float64) *ReviewEventUpdate {
	reu.mutation.AddStability(f)
	return reu
}

// SetDifficulty sets the "difficulty" field.
func (reu *ReviewEventUpdate) SetDifficulty(f float64) *ReviewEventUpdate {
	reu.mutation.ResetDifficulty()
	reu.mutation.SetDifficulty(f)
	return reu
}

// SetNillableDifficulty sets the "difficulty" field if the given value is not nil.
func (reu *ReviewEventUpdate) SetNillableDifficulty(f *float64) *ReviewEventUpdate {
	if f != nil {
		reu.SetDifficulty(*f)
	}
	return reu
}

// AddDifficulty adds f to the "difficulty" field.
func (reu *ReviewEventUpdate) AddDifficulty(f float64) *ReviewEventUpdate {
	reu.mutation.AddDifficulty(f)
	return reu
}

// SetState sets the "state" field.
func (reu *ReviewEventUpdate) SetState(s string) *ReviewEventUpdate {
	reu.mutation.SetState(s)
	return reu
}

// SetNillableState sets the "state" field if the given value is not nil.
func (reu *ReviewEventUpdate) SetNillableState(s *string) *ReviewEventUpdate {
	if s != nil {
		reu.SetState(*s)
	}
	return reu
}

// SetSessionID sets the "session_id" field.
func (reu *ReviewEventUpdate) SetSessionID(s string) *ReviewEventUpdate {
	reu.mutation.SetSessionID(s)
	return reu
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (reu *ReviewEventUpdate) SetNillableSessionID(s *string) *ReviewEventUpdate {
	if s != nil {
		reu.SetSessionID(*s)
	}
	return reu
}

// ClearSessionID clears the value of the "session_id" field.
func (reu *ReviewEventUpdate) ClearSessionID() *ReviewEventUpdate {
	reu.mutation.ClearSessionID()
	return reu
}

// Mutation returns the ReviewEventMutation object of the builder.
func (reu *ReviewEventUpdate) Mutation() *ReviewEventMutation {
	return reu.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (reu *ReviewEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, reu.sqlSave, reu.mutation, reu.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (reu *ReviewEventUpdate) SaveX(ctx context.Context) int {
	affected, err := reu.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (reu *ReviewEventUpdate) Exec(ctx context.Context) error {
	_, err := reu.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (reu *ReviewEventUpdate) ExecX(ctx context.Context) {
	if err := reu.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (reu *ReviewEventUpdate) check() error {
	if v, ok := reu.mutation.LearnerID(); ok {
		if err := reviewevent.LearnerIDValidator(v); err != nil {
			return &ValidationError{Name: "learner_id", err: fmt.Errorf(`ent: validator failed for field "ReviewEvent.learner_id": %w`, err)}
		}
	}
	if v, ok := reu.mutation.ItemID(); ok {
		if err := reviewevent.ItemIDValidator(v); err != nil {
			return &ValidationError{Name: "item_id", err: fmt.Errorf(`ent: validator failed for field "ReviewEvent.item_id": %w`, err)}
		}
	}
	if v, ok := reu.mutation.Dimension(); ok {
		if err := reviewevent.DimensionValidator(v); err != nil {
			return &ValidationError{Name: "dimension", err: fmt.Errorf(`ent: validator failed for field "ReviewEvent.dimension": %w`, err)}
		}
	}
	if v, ok := reu.mutation.Rating(); ok {
		if err := reviewevent.RatingValidator(v); err != nil {
			return &ValidationError{Name: "rating", err: fmt.Errorf(`ent: validator failed for field "ReviewEvent.rating": %w`, err)}
		}
	}
	if v, ok := reu.mutation.State(); ok {
		if err := reviewevent.StateValidator(v); err != nil {
			return &ValidationError{Name: "state", err: fmt.Errorf(`ent: validator failed for field "ReviewEvent.state": %w`, err)}
		}
	}
	return nil
}

func (reu *ReviewEventUpdate) sqlSave(ctx context.Context) (n int, err error) {
	if err := reu.check(); err != nil {
		return n, err
	}
	_spec := sqlgraph.NewUpdateSpec(reviewevent.Table, reviewevent.Columns, sqlgraph.NewFieldSpec(reviewevent.FieldID, field.TypeInt))
	if ps := reu.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := reu.mutation.LearnerID(); ok {
		_spec.SetField(reviewevent.FieldLearnerID, field.TypeString, value)
	}
	if value, ok := reu.mutation.ItemID(); ok {
		_spec.SetField(reviewevent.FieldItemID, field.TypeString, value)
	}
	if value, ok := reu.mutation.Dimension(); ok {
		_spec.SetField(reviewevent.FieldDimension, field.TypeString, value)
	}
	if value, ok := reu.mutation.Rating(); ok {
		_spec.SetField(reviewevent.FieldRating, field.TypeString, value)
	}
	if value, ok := reu.mutation.Correct(); ok {
		_spec.SetField(reviewevent.FieldCorrect, field.TypeBool, value)
	}
	if value, ok := reu.mutation.CueUsed(); ok {
		_spec.SetField(reviewevent.FieldCueUsed, field.TypeBool, value)
	}
	if value, ok := reu.mutation.LatencyMs(); ok {
		_spec.SetField(reviewevent.FieldLatencyMs, field.TypeInt64, value)
	}
	if value, ok := reu.mutation.AddedLatencyMs(); ok {
		_spec.AddField(reviewevent.FieldLatencyMs, field.TypeInt64, value)
	}
	if value, ok := reu.mutation.Stability(); ok {
		_spec.SetField(reviewevent.FieldStability, field.TypeFloat64, value)
	}
	if value, ok := reu.mutation.AddedStability(); ok {
		_spec.AddField(reviewevent.FieldStability, field.TypeFloat64, value)
	}
	if value, ok := reu.mutation.Difficulty(); ok {
		_spec.SetField(reviewevent.FieldDifficulty, field.TypeFloat64, value)
	}
	if value, ok := reu.mutation.AddedDifficulty(); ok {
		_spec.AddField(reviewevent.FieldDifficulty, field.TypeFloat64, value)
	}
	if value, ok := reu.mutation.State(); ok {
		_spec.SetField(reviewevent.FieldState, field.TypeString, value)
	}
	if value, ok := reu.mutation.SessionID(); ok {
		_spec.SetField(reviewevent.FieldSessionID, field.TypeString, value)
	}
	if reu.mutation.SessionIDCleared() {
		_spec.ClearField(reviewevent.FieldSessionID, field.TypeString)
	}
	if n, err = sqlgraph.UpdateNodes(ctx, reu.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{reviewevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	reu.mutation.done = true
	return n, nil
}

// ReviewEventUpdateOne is the builder for updating a single ReviewEvent entity.
type ReviewEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ReviewEventMutation
}

// SetLearnerID sets the "learner_id" field.
func (reuo *ReviewEventUpdateOne) SetLearnerID(s string) *ReviewEventUpdateOne {
	reuo.mutation.SetLearnerID(s)
	return reuo
}

// SetNillableLearnerID sets the "learner_id" field if the given value is not nil.
func (reuo *ReviewEventUpdateOne) SetNillableLearnerID(s *string) *ReviewEventUpdateOne {
	if s != nil {
		reuo.SetLearnerID(*s)
	}
	return reuo
}

// SetItemID sets the "item_id" field.
func (reuo *ReviewEventUpdateOne) SetItemID(s string) *ReviewEventUpdateOne {
	reuo.mutation.SetItemID(s)
	return reuo
}

// SetNillableItemID sets the "item_id" field if the given value is not nil.
func (reuo *ReviewEventUpdateOne) SetNillableItemID(s *string) *ReviewEventUpdateOne {
	if s != nil {
		reuo.SetItemID(*s)
	}
	return reuo
}

// SetDimension sets the "dimension" field.
func (reuo *ReviewEventUpdateOne) SetDimension(s string) *ReviewEventUpdateOne {
	reuo.mutation.SetDimension(s)
	return reuo
}

// SetNillableDimension sets the "dimension" field if the given value is not nil.
func (reuo *ReviewEventUpdateOne) SetNillableDimension(s *string) *ReviewEventUpdateOne {
	if s != nil {
		reuo.SetDimension(*s)
	}
	return reuo
}

// SetRating sets the "rating" field.
func (reuo *ReviewEventUpdateOne) SetRating(s string) *ReviewEventUpdateOne {
	reuo.mutation.SetRating(s)
	return reuo
}

// SetNillableRating sets the "rating" field if the given value is not nil.
func (reuo *ReviewEventUpdateOne) SetNillableRating(s *string) *ReviewEventUpdateOne {
	if s != nil {
		reuo.SetRating(*s)
	}
	return reuo
}

// SetCorrect sets the "correct" field.
func (reuo *ReviewEventUpdateOne) SetCorrect(b bool) *ReviewEventUpdateOne {
	reuo.mutation.SetCorrect(b)
	return reuo
}

// SetNillableCorrect sets the "correct" field if the given value is not nil.
func (reuo *ReviewEventUpdateOne) SetNillableCorrect(b *bool) *ReviewEventUpdateOne {
	if b != nil {
		reuo.SetCorrect(*b)
	}
	return reuo
}

// SetCueUsed sets the "cue_used" field.
func (reuo *ReviewEventUpdateOne) SetCueUsed(b bool) *ReviewEventUpdateOne {
	reuo.mutation.SetCueUsed(b)
	return reuo
}

// SetNillableCueUsed sets the "cue_used" field if the given value is not nil.
func (reuo *ReviewEventUpdateOne) SetNillableCueUsed(b *bool) *ReviewEventUpdateOne {
	if b != nil {
		reuo.SetCueUsed(*b)
	}
	return reuo
}

// SetLatencyMs sets the "latency_ms" field.
func (reuo *ReviewEventUpdateOne) SetLatencyMs(i int64) *ReviewEventUpdateOne {
	reuo.mutation.ResetLatencyMs()
	reuo.mutation.SetLatencyMs(i)
	return reuo
}

// SetNillableLatencyMs sets the "latency_ms" field if the given value is not nil.
func (reuo *ReviewEventUpdateOne) SetNillableLatencyMs(i *int64) *ReviewEventUpdateOne {
	if i != nil {
		reuo.SetLatencyMs(*i)
	}
	return reuo
}

// AddLatencyMs adds i to the "latency_ms" field.
func (reuo *ReviewEventUpdateOne) AddLatencyMs(i int64) *ReviewEventUpdateOne {
	reuo.mutation.AddLatencyMs(i)
	return reuo
}

// SetStability sets the "stability" field.
func (reuo *ReviewEventUpdateOne) SetStability(f float64) *ReviewEventUpdateOne {
	reuo.mutation.ResetStability()
	reuo.mutation.SetStability(f)
	return reuo
}

// SetNillableStability sets the "stability" field if the given value is not nil.
func (reuo *ReviewEventUpdateOne) SetNillableStability(f *float64) *ReviewEventUpdateOne {
	if f != nil {
		reuo.SetStability(*f)
	}
	return reuo
}

// AddStability adds f to the "stability" field.
func (reuo *ReviewEventUpdateOne) AddStability(f float64) *ReviewEventUpdateOne {
	reuo.mutation.AddStability(f)
	return reuo
}

// SetDifficulty sets the "difficulty" field.
func (reuo *ReviewEventUpdateOne) SetDifficulty(f float64) *ReviewEventUpdateOne {
	reuo.mutation.ResetDifficulty()
	reuo.mutation.SetDifficulty(f)
	return reuo
}

// SetNillableDifficulty sets the "difficulty" field if the given value is not nil.
func (reuo *ReviewEventUpdateOne) SetNillableDifficulty(f *float64) *ReviewEventUpdateOne {
	if f != nil {
		reuo.SetDifficulty(*f)
	}
	return reuo
}

// AddDifficulty adds f to the "difficulty" field.
func (reuo *ReviewEventUpdateOne) AddDifficulty(f float64) *ReviewEventUpdateOne {
	reuo.mutation.AddDifficulty(f)
	return reuo
}

// SetState sets the "state" field.
func (reuo *ReviewEventUpdateOne) SetState(s string) *ReviewEventUpdateOne {
	reuo.mutation.SetState(s)
	return reuo
}

// SetNillableState sets the "state" field if the given value is not nil.
func (reuo *ReviewEventUpdateOne) SetNillableState(s *string) *ReviewEventUpdateOne {
	if s != nil {
		reuo.SetState(*s)
	}
	return reuo
}

// SetSessionID sets the "session_id" field.
func (reuo *ReviewEventUpdateOne) SetSessionID(s string) *ReviewEventUpdateOne {
	reuo.mutation.SetSessionID(s)
	return reuo
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (reuo *ReviewEventUpdateOne) SetNillableSessionID(s *string) *ReviewEventUpdateOne {
	if s != nil {
		reuo.SetSessionID(*s)
	}
	return reuo
}

// ClearSessionID clears the value of the "session_id" field.
func (reuo *ReviewEventUpdateOne) ClearSessionID() *ReviewEventUpdateOne {
	reuo.mutation.ClearSessionID()
	return reuo
}

// Mutation returns the ReviewEventMutation object of the builder.
func (reuo *ReviewEventUpdateOne) Mutation() *ReviewEventMutation {
	return reuo.mutation
}

// Where appends a list predicates to the ReviewEventUpdate builder.
func (reuo *ReviewEventUpdateOne) Where(ps ...predicate.ReviewEvent) *ReviewEventUpdateOne {
	reuo.mutation.Where(ps...)
	return reuo
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (reuo *ReviewEventUpdateOne) Select(field string, fields ...string) *ReviewEventUpdateOne {
	reuo.fields = append([]string{field}, fields...)
	return reuo
}

// Save executes the query and returns the updated ReviewEvent entity.
func (reuo *ReviewEventUpdateOne) Save(ctx context.Context) (*ReviewEvent, error) {
	return withHooks(ctx, reuo.sqlSave, reuo.mutation, reuo.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (reuo *ReviewEventUpdateOne) SaveX(ctx context.Context) *ReviewEvent {
	node, err := reuo.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (reuo *ReviewEventUpdateOne) Exec(ctx context.Context) error {
	_, err := reuo.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (reuo *ReviewEventUpdateOne) ExecX(ctx context.Context) {
	if err := reuo.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (reuo *ReviewEventUpdateOne) check() error {
	if v, ok := reuo.mutation.LearnerID(); ok {
		if err := reviewevent.LearnerIDValidator(v); err != nil {
			return &ValidationError{Name: "learner_id", err: fmt.Errorf(`ent: validator failed for field "ReviewEvent.learner_id": %w`, err)}
		}
	}
	if v, ok := reuo.mutation.ItemID(); ok {
		if err := reviewevent.ItemIDValidator(v); err != nil {
			return &ValidationError{Name: "item_id", err: fmt.Errorf(`ent: validator failed for field "ReviewEvent.item_id": %w`, err)}
		}
	}
	if v, ok := reuo.mutation.Dimension(); ok {
		if err := reviewevent.DimensionValidator(v); err != nil {
			return &ValidationError{Name: "dimension", err: fmt.Errorf(`ent: validator failed for field "ReviewEvent.dimension": %w`, err)}
		}
	}
	if v, ok := reuo.mutation.Rating(); ok {
		if err := reviewevent.RatingValidator(v); err != nil {
			return &ValidationError{Name: "rating", err: fmt.Errorf(`ent: validator failed for field "ReviewEvent.rating": %w`, err)}
		}
	}
	if v, ok := reuo.mutation.State(); ok {
		if err := reviewevent.StateValidator(v); err != nil {
			return &ValidationError{Name: "state", err: fmt.Errorf(`ent: validator failed for field "ReviewEvent.state": %w`, err)}
		}
	}
	return nil
}

func (reuo *ReviewEventUpdateOne) sqlSave(ctx context.Context) (_node *ReviewEvent, err error) {
	if err := reuo.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(reviewevent.Table, reviewevent.Columns, sqlgraph.NewFieldSpec(reviewevent.FieldID, field.TypeInt))
	id, ok := reuo.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ReviewEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := reuo.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, reviewevent.FieldID)
		for _, f := range fields {
			if !reviewevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != reviewevent.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := reuo.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := reuo.mutation.LearnerID(); ok {
		_spec.SetField(reviewevent.FieldLearnerID, field.TypeString, value)
	}
	if value, ok := reuo.mutation.ItemID(); ok {
		_spec.SetField(reviewevent.FieldItemID, field.TypeString, value)
	}
	if value, ok := reuo.mutation.Dimension(); ok {
		_spec.SetField(reviewevent.FieldDimension, field.TypeString, value)
	}
	if value, ok := reuo.mutation.Rating(); ok {
		_spec.SetField(reviewevent.FieldRating, field.TypeString, value)
	}
	if value, ok := reuo.mutation.Correct(); ok {
		_spec.SetField(reviewevent.FieldCorrect, field.TypeBool, value)
	}
	if value, ok := reuo.mutation.CueUsed(); ok {
		_spec.SetField(reviewevent.FieldCueUsed, field.TypeBool, value)
	}
	if value, ok := reuo.mutation.LatencyMs(); ok {
		_spec.SetField(reviewevent.FieldLatencyMs, field.TypeInt64, value)
	}
	if value, ok := reuo.mutation.AddedLatencyMs(); ok {
		_spec.AddField(reviewevent.FieldLatencyMs, field.TypeInt64, value)
	}
	if value, ok := reuo.mutation.Stability(); ok {
		_spec.SetField(reviewevent.FieldStability, field.TypeFloat64, value)
	}
	if value, ok := reuo.mutation.AddedStability(); ok {
		_spec.AddField(reviewevent.FieldStability, field.TypeFloat64, value)
	}
	if value, ok := reuo.mutation.Difficulty(); ok {
		_spec.SetField(reviewevent.FieldDifficulty, field.TypeFloat64, value)
	}
	if value, ok := reuo.mutation.AddedDifficulty(); ok {
		_spec.AddField(reviewevent.FieldDifficulty, field.TypeFloat64, value)
	}
	if value, ok := reuo.mutation.State(); ok {
		_spec.SetField(reviewevent.FieldState, field.TypeString, value)
	}
	if value, ok := reuo.mutation.SessionID(); ok {
		_spec.SetField(reviewevent.FieldSessionID, field.TypeString, value)
	}
	if reuo.mutation.SessionIDCleared() {
		_spec.ClearField(reviewevent.FieldSessionID, field.TypeString)
	}
	_node = &ReviewEvent{config: reuo.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, reuo.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{reviewevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	reuo.mutation.done = true
	return _node, nil
}
