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
	"github.com/finlearn/finlearn/ent/lessonprogress"
	"github.com/finlearn/finlearn/ent/predicate"
)

// LessonProgressUpdate is the builder for updating LessonProgress entities.
type LessonProgressUpdate struct {
	config
	hooks    []Hook
	mutation *LessonProgressMutation
}

// Where appends a list predicates to the LessonProgressUpdate builder.
func (_u *LessonProgressUpdate) Where(ps ...predicate.LessonProgress) *LessonProgressUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetLessonID sets the "lesson_id" field.
func (_u *LessonProgressUpdate) SetLessonID(v string) *LessonProgressUpdate {
	_u.mutation.SetLessonID(v)
	return _u
}

// SetNillableLessonID sets the "lesson_id" field if the given value is not nil.
func (_u *LessonProgressUpdate) SetNillableLessonID(v *string) *LessonProgressUpdate {
	if v != nil {
		_u.SetLessonID(*v)
	}
	return _u
}

// SetCompletionRate sets the "completion_rate" field.
func (_u *LessonProgressUpdate) SetCompletionRate(v int) *LessonProgressUpdate {
	_u.mutation.ResetCompletionRate()
	_u.mutation.SetCompletionRate(v)
	return _u
}

// SetNillableCompletionRate sets the "completion_rate" field if the given value is not nil.
func (_u *LessonProgressUpdate) SetNillableCompletionRate(v *int) *LessonProgressUpdate {
	if v != nil {
		_u.SetCompletionRate(*v)
	}
	return _u
}

// AddCompletionRate adds value to the "completion_rate" field.
func (_u *LessonProgressUpdate) AddCompletionRate(v int) *LessonProgressUpdate {
	_u.mutation.AddCompletionRate(v)
	return _u
}

// SetQuizScore sets the "quiz_score" field.
func (_u *LessonProgressUpdate) SetQuizScore(v int) *LessonProgressUpdate {
	_u.mutation.ResetQuizScore()
	_u.mutation.SetQuizScore(v)
	return _u
}

// SetNillableQuizScore sets the "quiz_score" field if the given value is not nil.
func (_u *LessonProgressUpdate) SetNillableQuizScore(v *int) *LessonProgressUpdate {
	if v != nil {
		_u.SetQuizScore(*v)
	}
	return _u
}

// AddQuizScore adds value to the "quiz_score" field.
func (_u *LessonProgressUpdate) AddQuizScore(v int) *LessonProgressUpdate {
	_u.mutation.AddQuizScore(v)
	return _u
}

// ClearQuizScore clears the value of the "quiz_score" field.
func (_u *LessonProgressUpdate) ClearQuizScore() *LessonProgressUpdate {
	_u.mutation.ClearQuizScore()
	return _u
}

// SetMasteryLevel sets the "mastery_level" field.
func (_u *LessonProgressUpdate) SetMasteryLevel(v int) *LessonProgressUpdate {
	_u.mutation.ResetMasteryLevel()
	_u.mutation.SetMasteryLevel(v)
	return _u
}

// SetNillableMasteryLevel sets the "mastery_level" field if the given value is not nil.
func (_u *LessonProgressUpdate) SetNillableMasteryLevel(v *int) *LessonProgressUpdate {
	if v != nil {
		_u.SetMasteryLevel(*v)
	}
	return _u
}

// AddMasteryLevel adds value to the "mastery_level" field.
func (_u *LessonProgressUpdate) AddMasteryLevel(v int) *LessonProgressUpdate {
	_u.mutation.AddMasteryLevel(v)
	return _u
}

// SetReviewCount sets the "review_count" field.
func (_u *LessonProgressUpdate) SetReviewCount(v int) *LessonProgressUpdate {
	_u.mutation.ResetReviewCount()
	_u.mutation.SetReviewCount(v)
	return _u
}

// SetNillableReviewCount sets the "review_count" field if the given value is not nil.
func (_u *LessonProgressUpdate) SetNillableReviewCount(v *int) *LessonProgressUpdate {
	if v != nil {
		_u.SetReviewCount(*v)
	}
	return _u
}

// AddReviewCount adds value to the "review_count" field.
func (_u *LessonProgressUpdate) AddReviewCount(v int) *LessonProgressUpdate {
	_u.mutation.AddReviewCount(v)
	return _u
}

// SetNextReviewDate sets the "next_review_date" field.
func (_u *LessonProgressUpdate) SetNextReviewDate(v time.Time) *LessonProgressUpdate {
	_u.mutation.SetNextReviewDate(v)
	return _u
}

// SetNillableNextReviewDate sets the "next_review_date" field if the given value is not nil.
func (_u *LessonProgressUpdate) SetNillableNextReviewDate(v *time.Time) *LessonProgressUpdate {
	if v != nil {
		_u.SetNextReviewDate(*v)
	}
	return _u
}

// ClearNextReviewDate clears the value of the "next_review_date" field.
func (_u *LessonProgressUpdate) ClearNextReviewDate() *LessonProgressUpdate {
	_u.mutation.ClearNextReviewDate()
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *LessonProgressUpdate) SetStartedAt(v time.Time) *LessonProgressUpdate {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *LessonProgressUpdate) SetNillableStartedAt(v *time.Time) *LessonProgressUpdate {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// ClearStartedAt clears the value of the "started_at" field.
func (_u *LessonProgressUpdate) ClearStartedAt() *LessonProgressUpdate {
	_u.mutation.ClearStartedAt()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *LessonProgressUpdate) SetCompletedAt(v time.Time) *LessonProgressUpdate {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *LessonProgressUpdate) SetNillableCompletedAt(v *time.Time) *LessonProgressUpdate {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *LessonProgressUpdate) ClearCompletedAt() *LessonProgressUpdate {
	_u.mutation.ClearCompletedAt()
	return _u
}

// Mutation returns the LessonProgressMutation object of the builder.
func (_u *LessonProgressUpdate) Mutation() *LessonProgressMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *LessonProgressUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *LessonProgressUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *LessonProgressUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *LessonProgressUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *LessonProgressUpdate) check() error {
	if v, ok := _u.mutation.LessonID(); ok {
		if err := lessonprogress.LessonIDValidator(v); err != nil {
			return &ValidationError{Name: "lesson_id", err: fmt.Errorf(`ent: validator failed for field "LessonProgress.lesson_id": %w`, err)}
		}
	}
	return nil
}

func (_u *LessonProgressUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(lessonprogress.Table, lessonprogress.Columns, sqlgraph.NewFieldSpec(lessonprogress.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.LessonID(); ok {
		_spec.SetField(lessonprogress.FieldLessonID, field.TypeString, value)
	}
	if value, ok := _u.mutation.CompletionRate(); ok {
		_spec.SetField(lessonprogress.FieldCompletionRate, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCompletionRate(); ok {
		_spec.AddField(lessonprogress.FieldCompletionRate, field.TypeInt, value)
	}
	if value, ok := _u.mutation.QuizScore(); ok {
		_spec.SetField(lessonprogress.FieldQuizScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedQuizScore(); ok {
		_spec.AddField(lessonprogress.FieldQuizScore, field.TypeInt, value)
	}
	if _u.mutation.QuizScoreCleared() {
		_spec.ClearField(lessonprogress.FieldQuizScore, field.TypeInt)
	}
	if value, ok := _u.mutation.MasteryLevel(); ok {
		_spec.SetField(lessonprogress.FieldMasteryLevel, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMasteryLevel(); ok {
		_spec.AddField(lessonprogress.FieldMasteryLevel, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ReviewCount(); ok {
		_spec.SetField(lessonprogress.FieldReviewCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedReviewCount(); ok {
		_spec.AddField(lessonprogress.FieldReviewCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.NextReviewDate(); ok {
		_spec.SetField(lessonprogress.FieldNextReviewDate, field.TypeTime, value)
	}
	if _u.mutation.NextReviewDateCleared() {
		_spec.ClearField(lessonprogress.FieldNextReviewDate, field.TypeTime)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(lessonprogress.FieldStartedAt, field.TypeTime, value)
	}
	if _u.mutation.StartedAtCleared() {
		_spec.ClearField(lessonprogress.FieldStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(lessonprogress.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(lessonprogress.FieldCompletedAt, field.TypeTime)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{lessonprogress.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// LessonProgressUpdateOne is the builder for updating a single LessonProgress entity.
type LessonProgressUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *LessonProgressMutation
}

// SetLessonID sets the "lesson_id" field.
func (_u *LessonProgressUpdateOne) SetLessonID(v string) *LessonProgressUpdateOne {
	_u.mutation.SetLessonID(v)
	return _u
}

// SetNillableLessonID sets the "lesson_id" field if the given value is not nil.
func (_u *LessonProgressUpdateOne) SetNillableLessonID(v *string) *LessonProgressUpdateOne {
	if v != nil {
		_u.SetLessonID(*v)
	}
	return _u
}

// SetCompletionRate sets the "completion_rate" field.
func (_u *LessonProgressUpdateOne) SetCompletionRate(v int) *LessonProgressUpdateOne {
	_u.mutation.ResetCompletionRate()
	_u.mutation.SetCompletionRate(v)
	return _u
}

// SetNillableCompletionRate sets the "completion_rate" field if the given value is not nil.
func (_u *LessonProgressUpdateOne) SetNillableCompletionRate(v *int) *LessonProgressUpdateOne {
	if v != nil {
		_u.SetCompletionRate(*v)
	}
	return _u
}

// AddCompletionRate adds value to the "completion_rate" field.
func (_u *LessonProgressUpdateOne) AddCompletionRate(v int) *LessonProgressUpdateOne {
	_u.mutation.AddCompletionRate(v)
	return _u
}

// SetQuizScore sets the "quiz_score" field.
func (_u *LessonProgressUpdateOne) SetQuizScore(v int) *LessonProgressUpdateOne {
	_u.mutation.ResetQuizScore()
	_u.mutation.SetQuizScore(v)
	return _u
}

// SetNillableQuizScore sets the "quiz_score" field if the given value is not nil.
func (_u *LessonProgressUpdateOne) SetNillableQuizScore(v *int) *LessonProgressUpdateOne {
	if v != nil {
		_u.SetQuizScore(*v)
	}
	return _u
}

// AddQuizScore adds value to the "quiz_score" field.
func (_u *LessonProgressUpdateOne) AddQuizScore(v int) *LessonProgressUpdateOne {
	_u.mutation.AddQuizScore(v)
	return _u
}

// ClearQuizScore clears the value of the "quiz_score" field.
func (_u *LessonProgressUpdateOne) ClearQuizScore() *LessonProgressUpdateOne {
	_u.mutation.ClearQuizScore()
	return _u
}

// SetMasteryLevel sets the "mastery_level" field.
func (_u *LessonProgressUpdateOne) SetMasteryLevel(v int) *LessonProgressUpdateOne {
	_u.mutation.ResetMasteryLevel()
	_u.mutation.SetMasteryLevel(v)
	return _u
}

// SetNillableMasteryLevel sets the "mastery_level" field if the given value is not nil.
func (_u *LessonProgressUpdateOne) SetNillableMasteryLevel(v *int) *LessonProgressUpdateOne {
	if v != nil {
		_u.SetMasteryLevel(*v)
	}
	return _u
}

// AddMasteryLevel adds value to the "mastery_level" field.
func (_u *LessonProgressUpdateOne) AddMasteryLevel(v int) *LessonProgressUpdateOne {
	_u.mutation.AddMasteryLevel(v)
	return _u
}

// SetReviewCount sets the "review_count" field.
func (_u *LessonProgressUpdateOne) SetReviewCount(v int) *LessonProgressUpdateOne {
	_u.mutation.ResetReviewCount()
	_u.mutation.SetReviewCount(v)
	return _u
}

// SetNillableReviewCount sets the "review_count" field if the given value is not nil.
func (_u *LessonProgressUpdateOne) SetNillableReviewCount(v *int) *LessonProgressUpdateOne {
	if v != nil {
		_u.SetReviewCount(*v)
	}
	return _u
}

// AddReviewCount adds value to the "review_count" field.
func (_u *LessonProgressUpdateOne) AddReviewCount(v int) *LessonProgressUpdateOne {
	_u.mutation.AddReviewCount(v)
	return _u
}

// SetNextReviewDate sets the "next_review_date" field.
func (_u *LessonProgressUpdateOne) SetNextReviewDate(v time.Time) *LessonProgressUpdateOne {
	_u.mutation.SetNextReviewDate(v)
	return _u
}

// SetNillableNextReviewDate sets the "next_review_date" field if the given value is not nil.
func (_u *LessonProgressUpdateOne) SetNillableNextReviewDate(v *time.Time) *LessonProgressUpdateOne {
	if v != nil {
		_u.SetNextReviewDate(*v)
	}
	return _u
}

// ClearNextReviewDate clears the value of the "next_review_date" field.
func (_u *LessonProgressUpdateOne) ClearNextReviewDate() *LessonProgressUpdateOne {
	_u.mutation.ClearNextReviewDate()
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *LessonProgressUpdateOne) SetStartedAt(v time.Time) *LessonProgressUpdateOne {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *LessonProgressUpdateOne) SetNillableStartedAt(v *time.Time) *LessonProgressUpdateOne {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// ClearStartedAt clears the value of the "started_at" field.
func (_u *LessonProgressUpdateOne) ClearStartedAt() *LessonProgressUpdateOne {
	_u.mutation.ClearStartedAt()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *LessonProgressUpdateOne) SetCompletedAt(v time.Time) *LessonProgressUpdateOne {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *LessonProgressUpdateOne) SetNillableCompletedAt(v *time.Time) *LessonProgressUpdateOne {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *LessonProgressUpdateOne) ClearCompletedAt() *LessonProgressUpdateOne {
	_u.mutation.ClearCompletedAt()
	return _u
}

// Mutation returns the LessonProgressMutation object of the builder.
func (_u *LessonProgressUpdateOne) Mutation() *LessonProgressMutation {
	return _u.mutation
}

// Where appends a list predicates to the LessonProgressUpdate builder.
func (_u *LessonProgressUpdateOne) Where(ps ...predicate.LessonProgress) *LessonProgressUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *LessonProgressUpdateOne) Select(field string, fields ...string) *LessonProgressUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated LessonProgress entity.
func (_u *LessonProgressUpdateOne) Save(ctx context.Context) (*LessonProgress, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *LessonProgressUpdateOne) SaveX(ctx context.Context) *LessonProgress {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *LessonProgressUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *LessonProgressUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *LessonProgressUpdateOne) check() error {
	if v, ok := _u.mutation.LessonID(); ok {
		if err := lessonprogress.LessonIDValidator(v); err != nil {
			return &ValidationError{Name: "lesson_id", err: fmt.Errorf(`ent: validator failed for field "LessonProgress.lesson_id": %w`, err)}
		}
	}
	return nil
}

func (_u *LessonProgressUpdateOne) sqlSave(ctx context.Context) (_node *LessonProgress, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(lessonprogress.Table, lessonprogress.Columns, sqlgraph.NewFieldSpec(lessonprogress.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "LessonProgress.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, lessonprogress.FieldID)
		for _, f := range fields {
			if !lessonprogress.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != lessonprogress.FieldID {
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
	if value, ok := _u.mutation.LessonID(); ok {
		_spec.SetField(lessonprogress.FieldLessonID, field.TypeString, value)
	}
	if value, ok := _u.mutation.CompletionRate(); ok {
		_spec.SetField(lessonprogress.FieldCompletionRate, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCompletionRate(); ok {
		_spec.AddField(lessonprogress.FieldCompletionRate, field.TypeInt, value)
	}
	if value, ok := _u.mutation.QuizScore(); ok {
		_spec.SetField(lessonprogress.FieldQuizScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedQuizScore(); ok {
		_spec.AddField(lessonprogress.FieldQuizScore, field.TypeInt, value)
	}
	if _u.mutation.QuizScoreCleared() {
		_spec.ClearField(lessonprogress.FieldQuizScore, field.TypeInt)
	}
	if value, ok := _u.mutation.MasteryLevel(); ok {
		_spec.SetField(lessonprogress.FieldMasteryLevel, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMasteryLevel(); ok {
		_spec.AddField(lessonprogress.FieldMasteryLevel, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ReviewCount(); ok {
		_spec.SetField(lessonprogress.FieldReviewCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedReviewCount(); ok {
		_spec.AddField(lessonprogress.FieldReviewCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.NextReviewDate(); ok {
		_spec.SetField(lessonprogress.FieldNextReviewDate, field.TypeTime, value)
	}
	if _u.mutation.NextReviewDateCleared() {
		_spec.ClearField(lessonprogress.FieldNextReviewDate, field.TypeTime)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(lessonprogress.FieldStartedAt, field.TypeTime, value)
	}
	if _u.mutation.StartedAtCleared() {
		_spec.ClearField(lessonprogress.FieldStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(lessonprogress.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(lessonprogress.FieldCompletedAt, field.TypeTime)
	}
	_node = &LessonProgress{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{lessonprogress.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
