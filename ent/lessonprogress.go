// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/finlearn/finlearn/ent/lessonprogress"
)

// LessonProgress is the model entity for the LessonProgress schema.
type LessonProgress struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// LessonID holds the value of the "lesson_id" field.
	LessonID string `json:"lesson_id,omitempty"`
	// 0-100; 100 means completed
	CompletionRate int `json:"completion_rate,omitempty"`
	// Latest quiz score 0-100, unset until a quiz is taken
	QuizScore *int `json:"quiz_score,omitempty"`
	// 0=learning 1=familiar 2=proficient 3=mastered
	MasteryLevel int `json:"mastery_level,omitempty"`
	// ReviewCount holds the value of the "review_count" field.
	ReviewCount int `json:"review_count,omitempty"`
	// NextReviewDate holds the value of the "next_review_date" field.
	NextReviewDate *time.Time `json:"next_review_date,omitempty"`
	// StartedAt holds the value of the "started_at" field.
	StartedAt *time.Time `json:"started_at,omitempty"`
	// CompletedAt holds the value of the "completed_at" field.
	CompletedAt  *time.Time `json:"completed_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*LessonProgress) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case lessonprogress.FieldID, lessonprogress.FieldCompletionRate, lessonprogress.FieldQuizScore, lessonprogress.FieldMasteryLevel, lessonprogress.FieldReviewCount:
			values[i] = new(sql.NullInt64)
		case lessonprogress.FieldLessonID:
			values[i] = new(sql.NullString)
		case lessonprogress.FieldNextReviewDate, lessonprogress.FieldStartedAt, lessonprogress.FieldCompletedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the LessonProgress fields.
func (_m *LessonProgress) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case lessonprogress.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case lessonprogress.FieldLessonID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field lesson_id", values[i])
			} else if value.Valid {
				_m.LessonID = value.String
			}
		case lessonprogress.FieldCompletionRate:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field completion_rate", values[i])
			} else if value.Valid {
				_m.CompletionRate = int(value.Int64)
			}
		case lessonprogress.FieldQuizScore:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field quiz_score", values[i])
			} else if value.Valid {
				_m.QuizScore = new(int)
				*_m.QuizScore = int(value.Int64)
			}
		case lessonprogress.FieldMasteryLevel:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field mastery_level", values[i])
			} else if value.Valid {
				_m.MasteryLevel = int(value.Int64)
			}
		case lessonprogress.FieldReviewCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field review_count", values[i])
			} else if value.Valid {
				_m.ReviewCount = int(value.Int64)
			}
		case lessonprogress.FieldNextReviewDate:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field next_review_date", values[i])
			} else if value.Valid {
				_m.NextReviewDate = new(time.Time)
				*_m.NextReviewDate = value.Time
			}
		case lessonprogress.FieldStartedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field started_at", values[i])
			} else if value.Valid {
				_m.StartedAt = new(time.Time)
				*_m.StartedAt = value.Time
			}
		case lessonprogress.FieldCompletedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field completed_at", values[i])
			} else if value.Valid {
				_m.CompletedAt = new(time.Time)
				*_m.CompletedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the LessonProgress.
// This includes values selected through modifiers, order, etc.
func (_m *LessonProgress) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this LessonProgress.
// Note that you need to call LessonProgress.Unwrap() before calling this method if this LessonProgress
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *LessonProgress) Update() *LessonProgressUpdateOne {
	return NewLessonProgressClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the LessonProgress entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *LessonProgress) Unwrap() *LessonProgress {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: LessonProgress is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *LessonProgress) String() string {
	var builder strings.Builder
	builder.WriteString("LessonProgress(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("lesson_id=")
	builder.WriteString(_m.LessonID)
	builder.WriteString(", ")
	builder.WriteString("completion_rate=")
	builder.WriteString(fmt.Sprintf("%v", _m.CompletionRate))
	builder.WriteString(", ")
	if v := _m.QuizScore; v != nil {
		builder.WriteString("quiz_score=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("mastery_level=")
	builder.WriteString(fmt.Sprintf("%v", _m.MasteryLevel))
	builder.WriteString(", ")
	builder.WriteString("review_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.ReviewCount))
	builder.WriteString(", ")
	if v := _m.NextReviewDate; v != nil {
		builder.WriteString("next_review_date=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.StartedAt; v != nil {
		builder.WriteString("started_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.CompletedAt; v != nil {
		builder.WriteString("completed_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteByte(')')
	return builder.String()
}

// LessonProgresses is a parsable slice of LessonProgress.
type LessonProgresses []*LessonProgress
