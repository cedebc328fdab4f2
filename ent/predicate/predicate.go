// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// ActivityEvent is the predicate function for activityevent builders.
type ActivityEvent func(*sql.Selector)

// ChatEvent is the predicate function for chatevent builders.
type ChatEvent func(*sql.Selector)

// GroupDismissal is the predicate function for groupdismissal builders.
type GroupDismissal func(*sql.Selector)

// LLMRequestEvent is the predicate function for llmrequestevent builders.
type LLMRequestEvent func(*sql.Selector)

// LessonProgress is the predicate function for lessonprogress builders.
type LessonProgress func(*sql.Selector)

// UserProfile is the predicate function for userprofile builders.
type UserProfile func(*sql.Selector)
