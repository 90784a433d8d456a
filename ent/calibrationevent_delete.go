// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/tomatokenizer-web/LOGOSproject-sub002/ent/calibrationevent"
	"github.com/tomatokenizer-web/LOGOSproject-sub002/ent/predicate"
)

// CalibrationEventDelete is the builder for deleting a CalibrationEvent entity.
type CalibrationEventDelete struct {
	config
	hooks    []Hook
	mutation *CalibrationEventMutation
}

// Where appends a list predicates to the CalibrationEventDelete builder.
func (ced *CalibrationEventDelete) Where(ps ...predicate.CalibrationEvent) *CalibrationEventDelete {
	ced.mutation.Where(ps...)
	return ced
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (ced *CalibrationEventDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, ced.sqlExec, ced.mutation, ced.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (ced *CalibrationEventDelete) ExecX(ctx context.Context) int {
	n, err := ced.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (ced *CalibrationEventDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(calibrationevent.Table, sqlgraph.NewFieldSpec(calibrationevent.FieldID, field.TypeInt))
	if ps := ced.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, ced.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	ced.mutation.done = true
	return affected, err
}

// CalibrationEventDeleteOne is the builder for deleting a single CalibrationEvent entity.
type CalibrationEventDeleteOne struct {
	ced *CalibrationEventDelete
}

// Where appends a list predicates to the CalibrationEventDelete builder.
func (cedo *CalibrationEventDeleteOne) Where(ps ...predicate.CalibrationEvent) *CalibrationEventDeleteOne {
	cedo.ced.mutation.Where(ps...)
	return cedo
}

// Exec executes the deletion query.
func (cedo *CalibrationEventDeleteOne) Exec(ctx context.Context) error {
	n, err := cedo.ced.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{calibrationevent.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (cedo *CalibrationEventDeleteOne) ExecX(ctx context.Context) {
	if err := cedo.Exec(ctx); err != nil {
		panic(err)
	}
}
