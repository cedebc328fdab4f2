// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/finlearn/finlearn/ent/groupdismissal"
)

// GroupDismissalCreate is the builder for creating a GroupDismissal entity.
type GroupDismissalCreate struct {
	config
	mutation *GroupDismissalMutation
	hooks    []Hook
}

// SetGroupID sets the "group_id" field.
func (_c *GroupDismissalCreate) SetGroupID(v string) *GroupDismissalCreate {
	_c.mutation.SetGroupID(v)
	return _c
}

// SetDismissedAt sets the "dismissed_at" field.
func (_c *GroupDismissalCreate) SetDismissedAt(v time.Time) *GroupDismissalCreate {
	_c.mutation.SetDismissedAt(v)
	return _c
}

// SetNillableDismissedAt sets the "dismissed_at" field if the given value is not nil.
func (_c *GroupDismissalCreate) SetNillableDismissedAt(v *time.Time) *GroupDismissalCreate {
	if v != nil {
		_c.SetDismissedAt(*v)
	}
	return _c
}

// Mutation returns the GroupDismissalMutation object of the builder.
func (_c *GroupDismissalCreate) Mutation() *GroupDismissalMutation {
	return _c.mutation
}

// Save creates the GroupDismissal in the database.
func (_c *GroupDismissalCreate) Save(ctx context.Context) (*GroupDismissal, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *GroupDismissalCreate) SaveX(ctx context.Context) *GroupDismissal {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *GroupDismissalCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *GroupDismissalCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *GroupDismissalCreate) defaults() {
	if _, ok := _c.mutation.DismissedAt(); !ok {
		v := groupdismissal.DefaultDismissedAt()
		_c.mutation.SetDismissedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *GroupDismissalCreate) check() error {
	if _, ok := _c.mutation.GroupID(); !ok {
		return &ValidationError{Name: "group_id", err: errors.New(`ent: missing required field "GroupDismissal.group_id"`)}
	}
	if v, ok := _c.mutation.GroupID(); ok {
		if err := groupdismissal.GroupIDValidator(v); err != nil {
			return &ValidationError{Name: "group_id", err: fmt.Errorf(`ent: validator failed for field "GroupDismissal.group_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.DismissedAt(); !ok {
		return &ValidationError{Name: "dismissed_at", err: errors.New(`ent: missing required field "GroupDismissal.dismissed_at"`)}
	}
	return nil
}

func (_c *GroupDismissalCreate) sqlSave(ctx context.Context) (*GroupDismissal, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *GroupDismissalCreate) createSpec() (*GroupDismissal, *sqlgraph.CreateSpec) {
	var (
		_node = &GroupDismissal{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(groupdismissal.Table, sqlgraph.NewFieldSpec(groupdismissal.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.GroupID(); ok {
		_spec.SetField(groupdismissal.FieldGroupID, field.TypeString, value)
		_node.GroupID = value
	}
	if value, ok := _c.mutation.DismissedAt(); ok {
		_spec.SetField(groupdismissal.FieldDismissedAt, field.TypeTime, value)
		_node.DismissedAt = value
	}
	return _node, _spec
}

// GroupDismissalCreateBulk is the builder for creating many GroupDismissal entities in bulk.
type GroupDismissalCreateBulk struct {
	config
	err      error
	builders []*GroupDismissalCreate
}

// Save creates the GroupDismissal entities in the database.
func (_c *GroupDismissalCreateBulk) Save(ctx context.Context) ([]*GroupDismissal, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*GroupDismissal, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*GroupDismissalMutation)
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
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
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
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *GroupDismissalCreateBulk) SaveX(ctx context.Context) []*GroupDismissal {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *GroupDismissalCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *GroupDismissalCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
