// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/finlearn/finlearn/ent/groupdismissal"
	"github.com/finlearn/finlearn/ent/predicate"
)

// GroupDismissalUpdate is the builder for updating GroupDismissal entities.
type GroupDismissalUpdate struct {
	config
	hooks    []Hook
	mutation *GroupDismissalMutation
}

// Where appends a list predicates to the GroupDismissalUpdate builder.
func (_u *GroupDismissalUpdate) Where(ps ...predicate.GroupDismissal) *GroupDismissalUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetGroupID sets the "group_id" field.
func (_u *GroupDismissalUpdate) SetGroupID(v string) *GroupDismissalUpdate {
	_u.mutation.SetGroupID(v)
	return _u
}

// SetNillableGroupID sets the "group_id" field if the given value is not nil.
func (_u *GroupDismissalUpdate) SetNillableGroupID(v *string) *GroupDismissalUpdate {
	if v != nil {
		_u.SetGroupID(*v)
	}
	return _u
}

// SetDismissedAt sets the "dismissed_at" field.
func (_u *GroupDismissalUpdate) SetDismissedAt(v time.Time) *GroupDismissalUpdate {
	_u.mutation.SetDismissedAt(v)
	return _u
}

// SetNillableDismissedAt sets the "dismissed_at" field if the given value is not nil.
func (_u *GroupDismissalUpdate) SetNillableDismissedAt(v *time.Time) *GroupDismissalUpdate {
	if v != nil {
		_u.SetDismissedAt(*v)
	}
	return _u
}

// Mutation returns the GroupDismissalMutation object of the builder.
func (_u *GroupDismissalUpdate) Mutation() *GroupDismissalMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *GroupDismissalUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *GroupDismissalUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *GroupDismissalUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *GroupDismissalUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *GroupDismissalUpdate) check() error {
	if v, ok := _u.mutation.GroupID(); ok {
		if err := groupdismissal.GroupIDValidator(v); err != nil {
			return &ValidationError{Name: "group_id", err: fmt.Errorf(`ent: validator failed for field "GroupDismissal.group_id": %w`, err)}
		}
	}
	return nil
}

func (_u *GroupDismissalUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(groupdismissal.Table, groupdismissal.Columns, sqlgraph.NewFieldSpec(groupdismissal.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.GroupID(); ok {
		_spec.SetField(groupdismissal.FieldGroupID, field.TypeString, value)
	}
	if value, ok := _u.mutation.DismissedAt(); ok {
		_spec.SetField(groupdismissal.FieldDismissedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{groupdismissal.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// GroupDismissalUpdateOne is the builder for updating a single GroupDismissal entity.
type GroupDismissalUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *GroupDismissalMutation
}

// SetGroupID sets the "group_id" field.
func (_u *GroupDismissalUpdateOne) SetGroupID(v string) *GroupDismissalUpdateOne {
	_u.mutation.SetGroupID(v)
	return _u
}

// SetNillableGroupID sets the "group_id" field if the given value is not nil.
func (_u *GroupDismissalUpdateOne) SetNillableGroupID(v *string) *GroupDismissalUpdateOne {
	if v != nil {
		_u.SetGroupID(*v)
	}
	return _u
}

// SetDismissedAt sets the "dismissed_at" field.
func (_u *GroupDismissalUpdateOne) SetDismissedAt(v time.Time) *GroupDismissalUpdateOne {
	_u.mutation.SetDismissedAt(v)
	return _u
}

// SetNillableDismissedAt sets the "dismissed_at" field if the given value is not nil.
func (_u *GroupDismissalUpdateOne) SetNillableDismissedAt(v *time.Time) *GroupDismissalUpdateOne {
	if v != nil {
		_u.SetDismissedAt(*v)
	}
	return _u
}

// Mutation returns the GroupDismissalMutation object of the builder.
func (_u *GroupDismissalUpdateOne) Mutation() *GroupDismissalMutation {
	return _u.mutation
}

// Where appends a list predicates to the GroupDismissalUpdate builder.
func (_u *GroupDismissalUpdateOne) Where(ps ...predicate.GroupDismissal) *GroupDismissalUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *GroupDismissalUpdateOne) Select(field string, fields ...string) *GroupDismissalUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated GroupDismissal entity.
func (_u *GroupDismissalUpdateOne) Save(ctx context.Context) (*GroupDismissal, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *GroupDismissalUpdateOne) SaveX(ctx context.Context) *GroupDismissal {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *GroupDismissalUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *GroupDismissalUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *GroupDismissalUpdateOne) check() error {
	if v, ok := _u.mutation.GroupID(); ok {
		if err := groupdismissal.GroupIDValidator(v); err != nil {
			return &ValidationError{Name: "group_id", err: fmt.Errorf(`ent: validator failed for field "GroupDismissal.group_id": %w`, err)}
		}
	}
	return nil
}

func (_u *GroupDismissalUpdateOne) sqlSave(ctx context.Context) (_node *GroupDismissal, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(groupdismissal.Table, groupdismissal.Columns, sqlgraph.NewFieldSpec(groupdismissal.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "GroupDismissal.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, groupdismissal.FieldID)
		for _, f := range fields {
			if !groupdismissal.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != groupdismissal.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.GroupID(); ok {
		_spec.SetField(groupdismissal.FieldGroupID, field.TypeString, value)
	}
	if value, ok := _u.mutation.DismissedAt(); ok {
		_spec.SetField(groupdismissal.FieldDismissedAt, field.TypeTime, value)
	}
	_node = &GroupDismissal{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{groupdismissal.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
