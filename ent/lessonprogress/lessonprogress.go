// Code generated by ent, DO NOT EDIT.

package lessonprogress

import (
	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the lessonprogress type in the database.
	Label = "lesson_progress"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldLessonID holds the string denoting the lesson_id field in the database.
	FieldLessonID = "lesson_id"
	// FieldCompletionRate holds the string denoting the completion_rate field in the database.
	FieldCompletionRate = "completion_rate"
	// FieldQuizScore holds the string denoting the quiz_score field in the database.
	FieldQuizScore = "quiz_score"
	// FieldMasteryLevel holds the string denoting the mastery_level field in the database.
	FieldMasteryLevel = "mastery_level"
	// FieldReviewCount holds the string denoting the review_count field in the database.
	FieldReviewCount = "review_count"
	// FieldNextReviewDate holds the string denoting the next_review_date field in the database.
	FieldNextReviewDate = "next_review_date"
	// FieldStartedAt holds the string denoting the started_at field in the database.
	FieldStartedAt = "started_at"
	// FieldCompletedAt holds the string denoting the completed_at field in the database.
	FieldCompletedAt = "completed_at"
	// Table holds the table name of the lessonprogress in the database.
	Table = "lesson_progresses"
)

// Columns holds all SQL columns for lessonprogress fields.
var Columns = []string{
	FieldID,
	FieldLessonID,
	FieldCompletionRate,
	FieldQuizScore,
	FieldMasteryLevel,
	FieldReviewCount,
	FieldNextReviewDate,
	FieldStartedAt,
	FieldCompletedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// LessonIDValidator is a validator for the "lesson_id" field. It is called by the builders before save.
	LessonIDValidator func(string) error
	// DefaultCompletionRate holds the default value on creation for the "completion_rate" field.
	DefaultCompletionRate int
	// DefaultMasteryLevel holds the default value on creation for the "mastery_level" field.
	DefaultMasteryLevel int
	// DefaultReviewCount holds the default value on creation for the "review_count" field.
	DefaultReviewCount int
)

// OrderOption defines the ordering options for the LessonProgress queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByLessonID orders the results by the lesson_id field.
func ByLessonID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLessonID, opts...).ToFunc()
}

// ByCompletionRate orders the results by the completion_rate field.
func ByCompletionRate(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCompletionRate, opts...).ToFunc()
}

// ByQuizScore orders the results by the quiz_score field.
func ByQuizScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldQuizScore, opts...).ToFunc()
}

// ByMasteryLevel orders the results by the mastery_level field.
func ByMasteryLevel(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMasteryLevel, opts...).ToFunc()
}

// ByReviewCount orders the results by the review_count field.
func ByReviewCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldReviewCount, opts...).ToFunc()
}

// ByNextReviewDate orders the results by the next_review_date field.
func ByNextReviewDate(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNextReviewDate, opts...).ToFunc()
}

// ByStartedAt orders the results by the started_at field.
func ByStartedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStartedAt, opts...).ToFunc()
}

// ByCompletedAt orders the results by the completed_at field.
func ByCompletedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCompletedAt, opts...).ToFunc()
}
