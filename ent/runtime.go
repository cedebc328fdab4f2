// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/finlearn/finlearn/ent/activityevent"
	"github.com/finlearn/finlearn/ent/chatevent"
	"github.com/finlearn/finlearn/ent/groupdismissal"
	"github.com/finlearn/finlearn/ent/lessonprogress"
	"github.com/finlearn/finlearn/ent/llmrequestevent"
	"github.com/finlearn/finlearn/ent/schema"
	"github.com/finlearn/finlearn/ent/userprofile"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	activityeventMixin := schema.ActivityEvent{}.Mixin()
	activityeventMixinFields0 := activityeventMixin[0].Fields()
	_ = activityeventMixinFields0
	activityeventFields := schema.ActivityEvent{}.Fields()
	_ = activityeventFields
	// activityeventDescTimestamp is the schema descriptor for timestamp field.
	activityeventDescTimestamp := activityeventMixinFields0[1].Descriptor()
	// activityevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	activityevent.DefaultTimestamp = activityeventDescTimestamp.Default.(func() time.Time)
	// activityeventDescKind is the schema descriptor for kind field.
	activityeventDescKind := activityeventFields[0].Descriptor()
	// activityevent.KindValidator is a validator for the "kind" field. It is called by the builders before save.
	activityevent.KindValidator = activityeventDescKind.Validators[0].(func(string) error)
	// activityeventDescLessonID is the schema descriptor for lesson_id field.
	activityeventDescLessonID := activityeventFields[1].Descriptor()
	// activityevent.DefaultLessonID holds the default value on creation for the lesson_id field.
	activityevent.DefaultLessonID = activityeventDescLessonID.Default.(string)
	chateventMixin := schema.ChatEvent{}.Mixin()
	chateventMixinFields0 := chateventMixin[0].Fields()
	_ = chateventMixinFields0
	chateventFields := schema.ChatEvent{}.Fields()
	_ = chateventFields
	// chateventDescTimestamp is the schema descriptor for timestamp field.
	chateventDescTimestamp := chateventMixinFields0[1].Descriptor()
	// chatevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	chatevent.DefaultTimestamp = chateventDescTimestamp.Default.(func() time.Time)
	// chateventDescSessionID is the schema descriptor for session_id field.
	chateventDescSessionID := chateventFields[0].Descriptor()
	// chatevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	chatevent.SessionIDValidator = chateventDescSessionID.Validators[0].(func(string) error)
	// chateventDescRole is the schema descriptor for role field.
	chateventDescRole := chateventFields[1].Descriptor()
	// chatevent.RoleValidator is a validator for the "role" field. It is called by the builders before save.
	chatevent.RoleValidator = chateventDescRole.Validators[0].(func(string) error)
	// chateventDescContent is the schema descriptor for content field.
	chateventDescContent := chateventFields[2].Descriptor()
	// chatevent.ContentValidator is a validator for the "content" field. It is called by the builders before save.
	chatevent.ContentValidator = chateventDescContent.Validators[0].(func(string) error)
	groupdismissalFields := schema.GroupDismissal{}.Fields()
	_ = groupdismissalFields
	// groupdismissalDescGroupID is the schema descriptor for group_id field.
	groupdismissalDescGroupID := groupdismissalFields[0].Descriptor()
	// groupdismissal.GroupIDValidator is a validator for the "group_id" field. It is called by the builders before save.
	groupdismissal.GroupIDValidator = groupdismissalDescGroupID.Validators[0].(func(string) error)
	// groupdismissalDescDismissedAt is the schema descriptor for dismissed_at field.
	groupdismissalDescDismissedAt := groupdismissalFields[1].Descriptor()
	// groupdismissal.DefaultDismissedAt holds the default value on creation for the dismissed_at field.
	groupdismissal.DefaultDismissedAt = groupdismissalDescDismissedAt.Default.(func() time.Time)
	llmrequesteventMixin := schema.LLMRequestEvent{}.Mixin()
	llmrequesteventMixinFields0 := llmrequesteventMixin[0].Fields()
	_ = llmrequesteventMixinFields0
	llmrequesteventFields := schema.LLMRequestEvent{}.Fields()
	_ = llmrequesteventFields
	// llmrequesteventDescTimestamp is the schema descriptor for timestamp field.
	llmrequesteventDescTimestamp := llmrequesteventMixinFields0[1].Descriptor()
	// llmrequestevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	llmrequestevent.DefaultTimestamp = llmrequesteventDescTimestamp.Default.(func() time.Time)
	// llmrequesteventDescInputTokens is the schema descriptor for input_tokens field.
	llmrequesteventDescInputTokens := llmrequesteventFields[3].Descriptor()
	// llmrequestevent.DefaultInputTokens holds the default value on creation for the input_tokens field.
	llmrequestevent.DefaultInputTokens = llmrequesteventDescInputTokens.Default.(int)
	// llmrequesteventDescOutputTokens is the schema descriptor for output_tokens field.
	llmrequesteventDescOutputTokens := llmrequesteventFields[4].Descriptor()
	// llmrequestevent.DefaultOutputTokens holds the default value on creation for the output_tokens field.
	llmrequestevent.DefaultOutputTokens = llmrequesteventDescOutputTokens.Default.(int)
	// llmrequesteventDescLatencyMs is the schema descriptor for latency_ms field.
	llmrequesteventDescLatencyMs := llmrequesteventFields[5].Descriptor()
	// llmrequestevent.DefaultLatencyMs holds the default value on creation for the latency_ms field.
	llmrequestevent.DefaultLatencyMs = llmrequesteventDescLatencyMs.Default.(int64)
	// llmrequesteventDescErrorMessage is the schema descriptor for error_message field.
	llmrequesteventDescErrorMessage := llmrequesteventFields[7].Descriptor()
	// llmrequestevent.DefaultErrorMessage holds the default value on creation for the error_message field.
	llmrequestevent.DefaultErrorMessage = llmrequesteventDescErrorMessage.Default.(string)
	// llmrequesteventDescRequestBody is the schema descriptor for request_body field.
	llmrequesteventDescRequestBody := llmrequesteventFields[8].Descriptor()
	// llmrequestevent.DefaultRequestBody holds the default value on creation for the request_body field.
	llmrequestevent.DefaultRequestBody = llmrequesteventDescRequestBody.Default.(string)
	// llmrequesteventDescResponseBody is the schema descriptor for response_body field.
	llmrequesteventDescResponseBody := llmrequesteventFields[9].Descriptor()
	// llmrequestevent.DefaultResponseBody holds the default value on creation for the response_body field.
	llmrequestevent.DefaultResponseBody = llmrequesteventDescResponseBody.Default.(string)
	lessonprogressFields := schema.LessonProgress{}.Fields()
	_ = lessonprogressFields
	// lessonprogressDescLessonID is the schema descriptor for lesson_id field.
	lessonprogressDescLessonID := lessonprogressFields[0].Descriptor()
	// lessonprogress.LessonIDValidator is a validator for the "lesson_id" field. It is called by the builders before save.
	lessonprogress.LessonIDValidator = lessonprogressDescLessonID.Validators[0].(func(string) error)
	// lessonprogressDescCompletionRate is the schema descriptor for completion_rate field.
	lessonprogressDescCompletionRate := lessonprogressFields[1].Descriptor()
	// lessonprogress.DefaultCompletionRate holds the default value on creation for the completion_rate field.
	lessonprogress.DefaultCompletionRate = lessonprogressDescCompletionRate.Default.(int)
	// lessonprogressDescMasteryLevel is the schema descriptor for mastery_level field.
	lessonprogressDescMasteryLevel := lessonprogressFields[3].Descriptor()
	// lessonprogress.DefaultMasteryLevel holds the default value on creation for the mastery_level field.
	lessonprogress.DefaultMasteryLevel = lessonprogressDescMasteryLevel.Default.(int)
	// lessonprogressDescReviewCount is the schema descriptor for review_count field.
	lessonprogressDescReviewCount := lessonprogressFields[4].Descriptor()
	// lessonprogress.DefaultReviewCount holds the default value on creation for the review_count field.
	lessonprogress.DefaultReviewCount = lessonprogressDescReviewCount.Default.(int)
	userprofileFields := schema.UserProfile{}.Fields()
	_ = userprofileFields
	// userprofileDescBusinessStructure is the schema descriptor for business_structure field.
	userprofileDescBusinessStructure := userprofileFields[0].Descriptor()
	// userprofile.DefaultBusinessStructure holds the default value on creation for the business_structure field.
	userprofile.DefaultBusinessStructure = userprofileDescBusinessStructure.Default.(string)
	// userprofileDescIndustry is the schema descriptor for industry field.
	userprofileDescIndustry := userprofileFields[1].Descriptor()
	// userprofile.DefaultIndustry holds the default value on creation for the industry field.
	userprofile.DefaultIndustry = userprofileDescIndustry.Default.(string)
	// userprofileDescExperienceLevel is the schema descriptor for experience_level field.
	userprofileDescExperienceLevel := userprofileFields[2].Descriptor()
	// userprofile.DefaultExperienceLevel holds the default value on creation for the experience_level field.
	userprofile.DefaultExperienceLevel = userprofileDescExperienceLevel.Default.(string)
	// userprofileDescPainPoint is the schema descriptor for pain_point field.
	userprofileDescPainPoint := userprofileFields[3].Descriptor()
	// userprofile.DefaultPainPoint holds the default value on creation for the pain_point field.
	userprofile.DefaultPainPoint = userprofileDescPainPoint.Default.(string)
	// userprofileDescLearningGoal is the schema descriptor for learning_goal field.
	userprofileDescLearningGoal := userprofileFields[4].Descriptor()
	// userprofile.DefaultLearningGoal holds the default value on creation for the learning_goal field.
	userprofile.DefaultLearningGoal = userprofileDescLearningGoal.Default.(string)
	// userprofileDescTimeCommitment is the schema descriptor for time_commitment field.
	userprofileDescTimeCommitment := userprofileFields[5].Descriptor()
	// userprofile.DefaultTimeCommitment holds the default value on creation for the time_commitment field.
	userprofile.DefaultTimeCommitment = userprofileDescTimeCommitment.Default.(string)
	// userprofileDescAnnualTurnover is the schema descriptor for annual_turnover field.
	userprofileDescAnnualTurnover := userprofileFields[6].Descriptor()
	// userprofile.DefaultAnnualTurnover holds the default value on creation for the annual_turnover field.
	userprofile.DefaultAnnualTurnover = userprofileDescAnnualTurnover.Default.(string)
	// userprofileDescVatRegistered is the schema descriptor for vat_registered field.
	userprofileDescVatRegistered := userprofileFields[7].Descriptor()
	// userprofile.DefaultVatRegistered holds the default value on creation for the vat_registered field.
	userprofile.DefaultVatRegistered = userprofileDescVatRegistered.Default.(bool)
	// userprofileDescMtdStatus is the schema descriptor for mtd_status field.
	userprofileDescMtdStatus := userprofileFields[8].Descriptor()
	// userprofile.DefaultMtdStatus holds the default value on creation for the mtd_status field.
	userprofile.DefaultMtdStatus = userprofileDescMtdStatus.Default.(string)
	// userprofileDescAccountingYearEnd is the schema descriptor for accounting_year_end field.
	userprofileDescAccountingYearEnd := userprofileFields[9].Descriptor()
	// userprofile.DefaultAccountingYearEnd holds the default value on creation for the accounting_year_end field.
	userprofile.DefaultAccountingYearEnd = userprofileDescAccountingYearEnd.Default.(string)
	// userprofileDescUpdatedAt is the schema descriptor for updated_at field.
	userprofileDescUpdatedAt := userprofileFields[12].Descriptor()
	// userprofile.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	userprofile.DefaultUpdatedAt = userprofileDescUpdatedAt.Default.(func() time.Time)
	// userprofile.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	userprofile.UpdateDefaultUpdatedAt = userprofileDescUpdatedAt.UpdateDefault.(func() time.Time)
}
