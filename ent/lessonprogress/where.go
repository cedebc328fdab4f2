// Code generated by ent, DO NOT EDIT.

package lessonprogress

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/finlearn/finlearn/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.LessonProgress {
	return predicate.LessonProgress(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.LessonProgress {
	return predicate.LessonProgress(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.LessonProgress {
	return predicate.LessonProgress(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.LessonProgress {
	return predicate.LessonProgress(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.LessonProgress {
	return predicate.LessonProgress(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.LessonProgress {
	return predicate.LessonProgress(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.LessonProgress {
	return predicate.LessonProgress(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.LessonProgress {
	return predicate.LessonProgress(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.LessonProgress {
	return predicate.LessonProgress(sql.FieldLTE(FieldID, id))
}

// LessonID applies equality check predicate on the "lesson_id" field. It's identical to LessonIDEQ.
func LessonID(v string) predicate.LessonProgress {
	return predicate.LessonProgress(sql.FieldEQ(FieldLessonID, v))
}

// CompletionRate applies equality check predicate on the "completion_rate" field. It's identical to CompletionRateEQ.
func CompletionRate(v int) predicate.LessonProgress {
	return predicate.LessonProgress(sql.FieldEQ(FieldCompletionRate, v))
}

// QuizScore applies equality check predicate on the "quiz_score" field. It's identical to QuizScoreEQ.
func QuizScore(v int) predicate.LessonProgress {
	return predicate.LessonProgress(sql.FieldEQ(FieldQuizScore, v))
}

// MasteryLevel applies equality check predicate on the "mastery_level" field. It's identical to MasteryLevelEQ.
func MasteryLevel(v int) predicate.LessonProgress {
	return predicate.LessonProgress(sql.FieldEQ(FieldMasteryLevel, v))
}

// ReviewCount applies equality check predicate on the "review_count" field. It's identical to ReviewCountEQ.
func ReviewCount(v int) predicate.LessonProgress {
	return predicate.LessonProgress(sql.FieldEQ(FieldReviewCount, v))
}

// NextReviewDate applies equality check predicate on the "next_review_date" field. It's identical to NextReviewDateEQ.
func NextReviewDate(v time.Time) predicate.LessonProgress {
	return predicate.LessonProgress(sql.FieldEQ(FieldNextReviewDate, v))
}

// StartedAt applies equality check predicate on the "started_at" field. It's identical to StartedAtEQ.
func StartedAt(v time.Time) predicate.LessonProgress {
	return predicate.LessonProgress(sql.FieldEQ(FieldStartedAt, v))
}

// CompletedAt applies equality check predicate on the "completed_at" field. It's identical to CompletedAtEQ.
func CompletedAt(v time.Time) predicate.LessonProgress {
	return predicate.LessonProgress(sql.FieldEQ(FieldCompletedAt, v))
}

// LessonIDEQ applies the EQ predicate on the "lesson_id" field.
func LessonIDEQ(v string) predicate.LessonProgress {
	return predicate.LessonProgress(sql.FieldEQ(FieldLessonID, v))
}

// LessonIDNEQ applies the NEQ predicate on the "lesson_id" field.
func LessonIDNEQ(v string) predicate.LessonProgress {
	return predicate.LessonProgress(sql.FieldNEQ(FieldLessonID, v))
}

// LessonIDIn applies the In predicate on the "lesson_id" field.
func LessonIDIn(vs ...string) predicate.LessonProgress {
	return predicate.LessonProgress(sql.FieldIn(FieldLessonID, vs...))
}

// LessonIDNotIn applies the NotIn predicate on the "lesson_id" field.
func LessonIDNotIn(vs ...string) predicate.LessonProgress {
	return predicate.LessonProgress(sql.FieldNotIn(FieldLessonID, vs...))
}

// LessonIDGT applies the GT predicate on the "lesson_id" field.
func LessonIDGT(v string) predicate.LessonProgress {
	return predicate.LessonProgress(sql.FieldGT(FieldLessonID, v))
}

// LessonIDGTE applies the GTE predicate on the "lesson_id" field.
func LessonIDGTE(v string) predicate.LessonProgress {
	return predicate.LessonProgress(sql.FieldGTE(FieldLessonID, v))
}

// LessonIDLT applies the LT predicate on the "lesson_id" field.
func LessonIDLT(v string) predicate.LessonProgress {
	return predicate.LessonProgress(sql.FieldLT(FieldLessonID, v))
}

// LessonIDLTE applies the LTE predicate on the "lesson_id" field.
func LessonIDLTE(v string) predicate.LessonProgress {
	return predicate.LessonProgress(sql.FieldLTE(FieldLessonID, v))
}

// LessonIDContains applies the Contains predicate on the "lesson_id" field.
func LessonIDContains(v string) predicate.LessonProgress {
	return predicate.LessonProgress(sql.FieldContains(FieldLessonID, v))
}

// LessonIDHasPrefix applies the HasPrefix predicate on the "lesson_id" field.
func LessonIDHasPrefix(v string) predicate.LessonProgress {
	return predicate.LessonProgress(sql.FieldHasPrefix(FieldLessonID, v))
}

// LessonIDHasSuffix applies the HasSuffix predicate on the "lesson_id" field.
func LessonIDHasSuffix(v string) predicate.LessonProgress {
	return predicate.LessonProgress(sql.FieldHasSuffix(FieldLessonID, v))
}

// LessonIDEqualFold applies the EqualFold predicate on the "lesson_id" field.
func LessonIDEqualFold(v string) predicate.LessonProgress {
	return predicate.LessonProgress(sql.FieldEqualFold(FieldLessonID, v))
}

// LessonIDContainsFold applies the ContainsFold predicate on the "lesson_id" field.
func LessonIDContainsFold(v string) predicate.LessonProgress {
	return predicate.LessonProgress(sql.FieldContainsFold(FieldLessonID, v))
}

// CompletionRateEQ applies the EQ predicate on the "completion_rate" field.
func CompletionRateEQ(v int) predicate.LessonProgress {
	return predicate.LessonProgress(sql.FieldEQ(FieldCompletionRate, v))
}

// CompletionRateNEQ applies the NEQ predicate on the "completion_rate" field.
func CompletionRateNEQ(v int) predicate.LessonProgress {
	return predicate.LessonProgress(sql.FieldNEQ(FieldCompletionRate, v))
}

// CompletionRateIn applies the In predicate on the "completion_rate" field.
func CompletionRateIn(vs ...int) predicate.LessonProgress {
	return predicate.LessonProgress(sql.FieldIn(FieldCompletionRate, vs...))
}

// CompletionRateNotIn applies the NotIn predicate on the "completion_rate" field.
func CompletionRateNotIn(vs ...int) predicate.LessonProgress {
	return predicate.LessonProgress(sql.FieldNotIn(FieldCompletionRate, vs...))
}

// CompletionRateGT applies the GT predicate on the "completion_rate" field.
func CompletionRateGT(v int) predicate.LessonProgress {
	return predicate.LessonProgress(sql.FieldGT(FieldCompletionRate, v))
}

// CompletionRateGTE applies the GTE predicate on the "completion_rate" field.
func CompletionRateGTE(v int) predicate.LessonProgress {
	return predicate.LessonProgress(sql.FieldGTE(FieldCompletionRate, v))
}

// CompletionRateLT applies the LT predicate on the "completion_rate" field.
func CompletionRateLT(v int) predicate.LessonProgress {
	return predicate.LessonProgress(sql.FieldLT(FieldCompletionRate, v))
}

// CompletionRateLTE applies the LTE predicate on the "completion_rate" field.
func CompletionRateLTE(v int) predicate.LessonProgress {
	return predicate.LessonProgress(sql.FieldLTE(FieldCompletionRate, v))
}

// QuizScoreEQ applies the EQ predicate on the "quiz_score" field.
func QuizScoreEQ(v int) predicate.LessonProgress {
	return predicate.LessonProgress(sql.FieldEQ(FieldQuizScore, v))
}

// QuizScoreNEQ applies the NEQ predicate on the "quiz_score" field.
func QuizScoreNEQ(v int) predicate.LessonProgress {
	return predicate.LessonProgress(sql.FieldNEQ(FieldQuizScore, v))
}

// QuizScoreIn applies the In predicate on the "quiz_score" field.
func QuizScoreIn(vs ...int) predicate.LessonProgress {
	return predicate.LessonProgress(sql.FieldIn(FieldQuizScore, vs...))
}

// QuizScoreNotIn applies the NotIn predicate on the "quiz_score" field.
func QuizScoreNotIn(vs ...int) predicate.LessonProgress {
	return predicate.LessonProgress(sql.FieldNotIn(FieldQuizScore, vs...))
}

// QuizScoreGT applies the GT predicate on the "quiz_score" field.
func QuizScoreGT(v int) predicate.LessonProgress {
	return predicate.LessonProgress(sql.FieldGT(FieldQuizScore, v))
}

// QuizScoreGTE applies the GTE predicate on the "quiz_score" field.
func QuizScoreGTE(v int) predicate.LessonProgress {
	return predicate.LessonProgress(sql.FieldGTE(FieldQuizScore, v))
}

// QuizScoreLT applies the LT predicate on the "quiz_score" field.
func QuizScoreLT(v int) predicate.LessonProgress {
	return predicate.LessonProgress(sql.FieldLT(FieldQuizScore, v))
}

// QuizScoreLTE applies the LTE predicate on the "quiz_score" field.
func QuizScoreLTE(v int) predicate.LessonProgress {
	return predicate.LessonProgress(sql.FieldLTE(FieldQuizScore, v))
}

// QuizScoreIsNil applies the IsNil predicate on the "quiz_score" field.
func QuizScoreIsNil() predicate.LessonProgress {
	return predicate.LessonProgress(sql.FieldIsNull(FieldQuizScore))
}

// QuizScoreNotNil applies the NotNil predicate on the "quiz_score" field.
func QuizScoreNotNil() predicate.LessonProgress {
	return predicate.LessonProgress(sql.FieldNotNull(FieldQuizScore))
}

// MasteryLevelEQ applies the EQ predicate on the "mastery_level" field.
func MasteryLevelEQ(v int) predicate.LessonProgress {
	return predicate.LessonProgress(sql.FieldEQ(FieldMasteryLevel, v))
}

// MasteryLevelNEQ applies the NEQ predicate on the "mastery_level" field.
func MasteryLevelNEQ(v int) predicate.LessonProgress {
	return predicate.LessonProgress(sql.FieldNEQ(FieldMasteryLevel, v))
}

// MasteryLevelIn applies the In predicate on the "mastery_level" field.
func MasteryLevelIn(vs ...int) predicate.LessonProgress {
	return predicate.LessonProgress(sql.FieldIn(FieldMasteryLevel, vs...))
}

// MasteryLevelNotIn applies the NotIn predicate on the "mastery_level" field.
func MasteryLevelNotIn(vs ...int) predicate.LessonProgress {
	return predicate.LessonProgress(sql.FieldNotIn(FieldMasteryLevel, vs...))
}

// MasteryLevelGT applies the GT predicate on the "mastery_level" field.
func MasteryLevelGT(v int) predicate.LessonProgress {
	return predicate.LessonProgress(sql.FieldGT(FieldMasteryLevel, v))
}

// MasteryLevelGTE applies the GTE predicate on the "mastery_level" field.
func MasteryLevelGTE(v int) predicate.LessonProgress {
	return predicate.LessonProgress(sql.FieldGTE(FieldMasteryLevel, v))
}

// MasteryLevelLT applies the LT predicate on the "mastery_level" field.
func MasteryLevelLT(v int) predicate.LessonProgress {
	return predicate.LessonProgress(sql.FieldLT(FieldMasteryLevel, v))
}

// MasteryLevelLTE applies the LTE predicate on the "mastery_level" field.
func MasteryLevelLTE(v int) predicate.LessonProgress {
	return predicate.LessonProgress(sql.FieldLTE(FieldMasteryLevel, v))
}

// ReviewCountEQ applies the EQ predicate on the "review_count" field.
func ReviewCountEQ(v int) predicate.LessonProgress {
	return predicate.LessonProgress(sql.FieldEQ(FieldReviewCount, v))
}

// ReviewCountNEQ applies the NEQ predicate on the "review_count" field.
func ReviewCountNEQ(v int) predicate.LessonProgress {
	return predicate.LessonProgress(sql.FieldNEQ(FieldReviewCount, v))
}

// ReviewCountIn applies the In predicate on the "review_count" field.
func ReviewCountIn(vs ...int) predicate.LessonProgress {
	return predicate.LessonProgress(sql.FieldIn(FieldReviewCount, vs...))
}

// ReviewCountNotIn applies the NotIn predicate on the "review_count" field.
func ReviewCountNotIn(vs ...int) predicate.LessonProgress {
	return predicate.LessonProgress(sql.FieldNotIn(FieldReviewCount, vs...))
}

// ReviewCountGT applies the GT predicate on the "review_count" field.
func ReviewCountGT(v int) predicate.LessonProgress {
	return predicate.LessonProgress(sql.FieldGT(FieldReviewCount, v))
}

// ReviewCountGTE applies the GTE predicate on the "review_count" field.
func ReviewCountGTE(v int) predicate.LessonProgress {
	return predicate.LessonProgress(sql.FieldGTE(FieldReviewCount, v))
}

// ReviewCountLT applies the LT predicate on the "review_count" field.
func ReviewCountLT(v int) predicate.LessonProgress {
	return predicate.LessonProgress(sql.FieldLT(FieldReviewCount, v))
}

// ReviewCountLTE applies the LTE predicate on the "review_count" field.
func ReviewCountLTE(v int) predicate.LessonProgress {
	return predicate.LessonProgress(sql.FieldLTE(FieldReviewCount, v))
}

// NextReviewDateEQ applies the EQ predicate on the "next_review_date" field.
func NextReviewDateEQ(v time.Time) predicate.LessonProgress {
	return predicate.LessonProgress(sql.FieldEQ(FieldNextReviewDate, v))
}

// NextReviewDateNEQ applies the NEQ predicate on the "next_review_date" field.
func NextReviewDateNEQ(v time.Time) predicate.LessonProgress {
	return predicate.LessonProgress(sql.FieldNEQ(FieldNextReviewDate, v))
}

// NextReviewDateIn applies the In predicate on the "next_review_date" field.
func NextReviewDateIn(vs ...time.Time) predicate.LessonProgress {
	return predicate.LessonProgress(sql.FieldIn(FieldNextReviewDate, vs...))
}

// NextReviewDateNotIn applies the NotIn predicate on the "next_review_date" field.
func NextReviewDateNotIn(vs ...time.Time) predicate.LessonProgress {
	return predicate.LessonProgress(sql.FieldNotIn(FieldNextReviewDate, vs...))
}

// NextReviewDateGT applies the GT predicate on the "next_review_date" field.
func NextReviewDateGT(v time.Time) predicate.LessonProgress {
	return predicate.LessonProgress(sql.FieldGT(FieldNextReviewDate, v))
}

// NextReviewDateGTE applies the GTE predicate on the "next_review_date" field.
func NextReviewDateGTE(v time.Time) predicate.LessonProgress {
	return predicate.LessonProgress(sql.FieldGTE(FieldNextReviewDate, v))
}

// NextReviewDateLT applies the LT predicate on the "next_review_date" field.
func NextReviewDateLT(v time.Time) predicate.LessonProgress {
	return predicate.LessonProgress(sql.FieldLT(FieldNextReviewDate, v))
}

// NextReviewDateLTE applies the LTE predicate on the "next_review_date" field.
func NextReviewDateLTE(v time.Time) predicate.LessonProgress {
	return predicate.LessonProgress(sql.FieldLTE(FieldNextReviewDate, v))
}

// NextReviewDateIsNil applies the IsNil predicate on the "next_review_date" field.
func NextReviewDateIsNil() predicate.LessonProgress {
	return predicate.LessonProgress(sql.FieldIsNull(FieldNextReviewDate))
}

// NextReviewDateNotNil applies the NotNil predicate on the "next_review_date" field.
func NextReviewDateNotNil() predicate.LessonProgress {
	return predicate.LessonProgress(sql.FieldNotNull(FieldNextReviewDate))
}

// StartedAtEQ applies the EQ predicate on the "started_at" field.
func StartedAtEQ(v time.Time) predicate.LessonProgress {
	return predicate.LessonProgress(sql.FieldEQ(FieldStartedAt, v))
}

// StartedAtNEQ applies the NEQ predicate on the "started_at" field.
func StartedAtNEQ(v time.Time) predicate.LessonProgress {
	return predicate.LessonProgress(sql.FieldNEQ(FieldStartedAt, v))
}

// StartedAtIn applies the In predicate on the "started_at" field.
func StartedAtIn(vs ...time.Time) predicate.LessonProgress {
	return predicate.LessonProgress(sql.FieldIn(FieldStartedAt, vs...))
}

// StartedAtNotIn applies the NotIn predicate on the "started_at" field.
func StartedAtNotIn(vs ...time.Time) predicate.LessonProgress {
	return predicate.LessonProgress(sql.FieldNotIn(FieldStartedAt, vs...))
}

// StartedAtGT applies the GT predicate on the "started_at" field.
func StartedAtGT(v time.Time) predicate.LessonProgress {
	return predicate.LessonProgress(sql.FieldGT(FieldStartedAt, v))
}

// StartedAtGTE applies the GTE predicate on the "started_at" field.
func StartedAtGTE(v time.Time) predicate.LessonProgress {
	return predicate.LessonProgress(sql.FieldGTE(FieldStartedAt, v))
}

// StartedAtLT applies the LT predicate on the "started_at" field.
func StartedAtLT(v time.Time) predicate.LessonProgress {
	return predicate.LessonProgress(sql.FieldLT(FieldStartedAt, v))
}

// StartedAtLTE applies the LTE predicate on the "started_at" field.
func StartedAtLTE(v time.Time) predicate.LessonProgress {
	return predicate.LessonProgress(sql.FieldLTE(FieldStartedAt, v))
}

// StartedAtIsNil applies the IsNil predicate on the "started_at" field.
func StartedAtIsNil() predicate.LessonProgress {
	return predicate.LessonProgress(sql.FieldIsNull(FieldStartedAt))
}

// StartedAtNotNil applies the NotNil predicate on the "started_at" field.
func StartedAtNotNil() predicate.LessonProgress {
	return predicate.LessonProgress(sql.FieldNotNull(FieldStartedAt))
}

// CompletedAtEQ applies the EQ predicate on the "completed_at" field.
func CompletedAtEQ(v time.Time) predicate.LessonProgress {
	return predicate.LessonProgress(sql.FieldEQ(FieldCompletedAt, v))
}

// CompletedAtNEQ applies the NEQ predicate on the "completed_at" field.
func CompletedAtNEQ(v time.Time) predicate.LessonProgress {
	return predicate.LessonProgress(sql.FieldNEQ(FieldCompletedAt, v))
}

// CompletedAtIn applies the In predicate on the "completed_at" field.
func CompletedAtIn(vs ...time.Time) predicate.LessonProgress {
	return predicate.LessonProgress(sql.FieldIn(FieldCompletedAt, vs...))
}

// CompletedAtNotIn applies the NotIn predicate on the "completed_at" field.
func CompletedAtNotIn(vs ...time.Time) predicate.LessonProgress {
	return predicate.LessonProgress(sql.FieldNotIn(FieldCompletedAt, vs...))
}

// CompletedAtGT applies the GT predicate on the "completed_at" field.
func CompletedAtGT(v time.Time) predicate.LessonProgress {
	return predicate.LessonProgress(sql.FieldGT(FieldCompletedAt, v))
}

// CompletedAtGTE applies the GTE predicate on the "completed_at" field.
func CompletedAtGTE(v time.Time) predicate.LessonProgress {
	return predicate.LessonProgress(sql.FieldGTE(FieldCompletedAt, v))
}

// CompletedAtLT applies the LT predicate on the "completed_at" field.
func CompletedAtLT(v time.Time) predicate.LessonProgress {
	return predicate.LessonProgress(sql.FieldLT(FieldCompletedAt, v))
}

// CompletedAtLTE applies the LTE predicate on the "completed_at" field.
func CompletedAtLTE(v time.Time) predicate.LessonProgress {
	return predicate.LessonProgress(sql.FieldLTE(FieldCompletedAt, v))
}

// CompletedAtIsNil applies the IsNil predicate on the "completed_at" field.
func CompletedAtIsNil() predicate.LessonProgress {
	return predicate.LessonProgress(sql.FieldIsNull(FieldCompletedAt))
}

// CompletedAtNotNil applies the NotNil predicate on the "completed_at" field.
func CompletedAtNotNil() predicate.LessonProgress {
	return predicate.LessonProgress(sql.FieldNotNull(FieldCompletedAt))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.LessonProgress) predicate.LessonProgress {
	return predicate.LessonProgress(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.LessonProgress) predicate.LessonProgress {
	return predicate.LessonProgress(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.LessonProgress) predicate.LessonProgress {
	return predicate.LessonProgress(sql.NotPredicates(p))
}
