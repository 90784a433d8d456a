// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/tomatokenizer-web/LOGOSproject-sub002/ent/abilityevent"
	"github.com/tomatokenizer-web/LOGOSproject-sub002/ent/predicate"
)

// AbilityEventDelete is the builder for deleting a AbilityEvent entity.
type AbilityEventDelete struct {
	config
	hooks    []Hook
	mutation *AbilityEventMutation
}

// Where appends a list predicates to the AbilityEventDelete builder.
func (aed *AbilityEventDelete) Where(ps ...predicate.AbilityEvent) *AbilityEventDelete {
	aed.mutation.Where(ps...)
	return aed
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (aed *AbilityEventDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, aed.sqlExec, aed.mutation, aed.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (aed *AbilityEventDelete) ExecX(ctx context.Context) int {
	n, err := aed.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (aed *AbilityEventDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(abilityevent.Table, sqlgraph.NewFieldSpec(abilityevent.FieldID, field.TypeInt))
	if ps := aed.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, aed.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	aed.mutation.done = true
	return affected, err
}

// AbilityEventDeleteOne is the builder for deleting a single AbilityEvent entity.
type AbilityEventDeleteOne struct {
	aed *AbilityEventDelete
}

// Where appends a list predicates to the AbilityEventDelete builder.
func (aedo *AbilityEventDeleteOne) Where(ps ...predicate.AbilityEvent) *AbilityEventDeleteOne {
	aedo.aed.mutation.Where(ps...)
	return aedo
}

// Exec executes the deletion query.
func (aedo *AbilityEventDeleteOne) Exec(ctx context.Context) error {
	n, err := aedo.aed.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{abilityevent.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (aedo *AbilityEventDeleteOne) ExecX(ctx context.Context) {
	if err := aedo.Exec(ctx); err != nil {
		panic(err)
	}
}
