// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/finlearn/finlearn/ent/groupdismissal"
	"github.com/finlearn/finlearn/ent/predicate"
)

// GroupDismissalDelete is the builder for deleting a GroupDismissal entity.
type GroupDismissalDelete struct {
	config
	hooks    []Hook
	mutation *GroupDismissalMutation
}

// Where appends a list predicates to the GroupDismissalDelete builder.
func (_d *GroupDismissalDelete) Where(ps ...predicate.GroupDismissal) *GroupDismissalDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *GroupDismissalDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *GroupDismissalDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *GroupDismissalDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(groupdismissal.Table, sqlgraph.NewFieldSpec(groupdismissal.FieldID, field.TypeInt))
	if ps := _d.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, _d.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	_d.mutation.done = true
	return affected, err
}

// GroupDismissalDeleteOne is the builder for deleting a single GroupDismissal entity.
type GroupDismissalDeleteOne struct {
	_d *GroupDismissalDelete
}

// Where appends a list predicates to the GroupDismissalDelete builder.
func (_d *GroupDismissalDeleteOne) Where(ps ...predicate.GroupDismissal) *GroupDismissalDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *GroupDismissalDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{groupdismissal.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *GroupDismissalDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
