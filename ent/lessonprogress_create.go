// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/finlearn/finlearn/ent/lessonprogress"
)

// LessonProgressCreate is the builder for creating a LessonProgress entity.
type LessonProgressCreate struct {
	config
	mutation *LessonProgressMutation
	hooks    []Hook
}

// SetLessonID sets the "lesson_id" field.
func (_c *LessonProgressCreate) SetLessonID(v string) *LessonProgressCreate {
	_c.mutation.SetLessonID(v)
	return _c
}

// SetCompletionRate sets the "completion_rate" field.
func (_c *LessonProgressCreate) SetCompletionRate(v int) *LessonProgressCreate {
	_c.mutation.SetCompletionRate(v)
	return _c
}

// SetNillableCompletionRate sets the "completion_rate" field if the given value is not nil.
func (_c *LessonProgressCreate) SetNillableCompletionRate(v *int) *LessonProgressCreate {
	if v != nil {
		_c.SetCompletionRate(*v)
	}
	return _c
}

// SetQuizScore sets the "quiz_score" field.
func (_c *LessonProgressCreate) SetQuizScore(v int) *LessonProgressCreate {
	_c.mutation.SetQuizScore(v)
	return _c
}

// SetNillableQuizScore sets the "quiz_score" field if the given value is not nil.
func (_c *LessonProgressCreate) SetNillableQuizScore(v *int) *LessonProgressCreate {
	if v != nil {
		_c.SetQuizScore(*v)
	}
	return _c
}

// SetMasteryLevel sets the "mastery_level" field.
func (_c *LessonProgressCreate) SetMasteryLevel(v int) *LessonProgressCreate {
	_c.mutation.SetMasteryLevel(v)
	return _c
}

// SetNillableMasteryLevel sets the "mastery_level" field if the given value is not nil.
func (_c *LessonProgressCreate) SetNillableMasteryLevel(v *int) *LessonProgressCreate {
	if v != nil {
		_c.SetMasteryLevel(*v)
	}
	return _c
}

// SetReviewCount sets the "review_count" field.
func (_c *LessonProgressCreate) SetReviewCount(v int) *LessonProgressCreate {
	_c.mutation.SetReviewCount(v)
	return _c
}

// SetNillableReviewCount sets the "review_count" field if the given value is not nil.
func (_c *LessonProgressCreate) SetNillableReviewCount(v *int) *LessonProgressCreate {
	if v != nil {
		_c.SetReviewCount(*v)
	}
	return _c
}

// SetNextReviewDate sets the "next_review_date" field.
func (_c *LessonProgressCreate) SetNextReviewDate(v time.Time) *LessonProgressCreate {
	_c.mutation.SetNextReviewDate(v)
	return _c
}

// SetNillableNextReviewDate sets the "next_review_date" field if the given value is not nil.
func (_c *LessonProgressCreate) SetNillableNextReviewDate(v *time.Time) *LessonProgressCreate {
	if v != nil {
		_c.SetNextReviewDate(*v)
	}
	return _c
}

// SetStartedAt sets the "started_at" field.
func (_c *LessonProgressCreate) SetStartedAt(v time.Time) *LessonProgressCreate {
	_c.mutation.SetStartedAt(v)
	return _c
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_c *LessonProgressCreate) SetNillableStartedAt(v *time.Time) *LessonProgressCreate {
	if v != nil {
		_c.SetStartedAt(*v)
	}
	return _c
}

// SetCompletedAt sets the "completed_at" field.
func (_c *LessonProgressCreate) SetCompletedAt(v time.Time) *LessonProgressCreate {
	_c.mutation.SetCompletedAt(v)
	return _c
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_c *LessonProgressCreate) SetNillableCompletedAt(v *time.Time) *LessonProgressCreate {
	if v != nil {
		_c.SetCompletedAt(*v)
	}
	return _c
}

// Mutation returns the LessonProgressMutation object of the builder.
func (_c *LessonProgressCreate) Mutation() *LessonProgressMutation {
	return _c.mutation
}

// Save creates the LessonProgress in the database.
func (_c *LessonProgressCreate) Save(ctx context.Context) (*LessonProgress, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *LessonProgressCreate) SaveX(ctx context.Context) *LessonProgress {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *LessonProgressCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *LessonProgressCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *LessonProgressCreate) defaults() {
	if _, ok := _c.mutation.CompletionRate(); !ok {
		v := lessonprogress.DefaultCompletionRate
		_c.mutation.SetCompletionRate(v)
	}
	if _, ok := _c.mutation.MasteryLevel(); !ok {
		v := lessonprogress.DefaultMasteryLevel
		_c.mutation.SetMasteryLevel(v)
	}
	if _, ok := _c.mutation.ReviewCount(); !ok {
		v := lessonprogress.DefaultReviewCount
		_c.mutation.SetReviewCount(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *LessonProgressCreate) check() error {
	if _, ok := _c.mutation.LessonID(); !ok {
		return &ValidationError{Name: "lesson_id", err: errors.New(`ent: missing required field "LessonProgress.lesson_id"`)}
	}
	if v, ok := _c.mutation.LessonID(); ok {
		if err := lessonprogress.LessonIDValidator(v); err != nil {
			return &ValidationError{Name: "lesson_id", err: fmt.Errorf(`ent: validator failed for field "LessonProgress.lesson_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CompletionRate(); !ok {
		return &ValidationError{Name: "completion_rate", err: errors.New(`ent: missing required field "LessonProgress.completion_rate"`)}
	}
	if _, ok := _c.mutation.MasteryLevel(); !ok {
		return &ValidationError{Name: "mastery_level", err: errors.New(`ent: missing required field "LessonProgress.mastery_level"`)}
	}
	if _, ok := _c.mutation.ReviewCount(); !ok {
		return &ValidationError{Name: "review_count", err: errors.New(`ent: missing required field "LessonProgress.review_count"`)}
	}
	return nil
}

func (_c *LessonProgressCreate) sqlSave(ctx context.Context) (*LessonProgress, error) {
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

func (_c *LessonProgressCreate) createSpec() (*LessonProgress, *sqlgraph.CreateSpec) {
	var (
		_node = &LessonProgress{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(lessonprogress.Table, sqlgraph.NewFieldSpec(lessonprogress.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.LessonID(); ok {
		_spec.SetField(lessonprogress.FieldLessonID, field.TypeString, value)
		_node.LessonID = value
	}
	if value, ok := _c.mutation.CompletionRate(); ok {
		_spec.SetField(lessonprogress.FieldCompletionRate, field.TypeInt, value)
		_node.CompletionRate = value
	}
	if value, ok := _c.mutation.QuizScore(); ok {
		_spec.SetField(lessonprogress.FieldQuizScore, field.TypeInt, value)
		_node.QuizScore = &value
	}
	if value, ok := _c.mutation.MasteryLevel(); ok {
		_spec.SetField(lessonprogress.FieldMasteryLevel, field.TypeInt, value)
		_node.MasteryLevel = value
	}
	if value, ok := _c.mutation.ReviewCount(); ok {
		_spec.SetField(lessonprogress.FieldReviewCount, field.TypeInt, value)
		_node.ReviewCount = value
	}
	if value, ok := _c.mutation.NextReviewDate(); ok {
		_spec.SetField(lessonprogress.FieldNextReviewDate, field.TypeTime, value)
		_node.NextReviewDate = &value
	}
	if value, ok := _c.mutation.StartedAt(); ok {
		_spec.SetField(lessonprogress.FieldStartedAt, field.TypeTime, value)
		_node.StartedAt = &value
	}
	if value, ok := _c.mutation.CompletedAt(); ok {
		_spec.SetField(lessonprogress.FieldCompletedAt, field.TypeTime, value)
		_node.CompletedAt = &value
	}
	return _node, _spec
}

// LessonProgressCreateBulk is the builder for creating many LessonProgress entities in bulk.
type LessonProgressCreateBulk struct {
	config
	err      error
	builders []*LessonProgressCreate
}

// Save creates the LessonProgress entities in the database.
func (_c *LessonProgressCreateBulk) Save(ctx context.Context) ([]*LessonProgress, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*LessonProgress, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*LessonProgressMutation)
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
func (_c *LessonProgressCreateBulk) SaveX(ctx context.Context) []*LessonProgress {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *LessonProgressCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *LessonProgressCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
