// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// ActivityEventsColumns holds the columns for the "activity_events" table.
	ActivityEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "kind", Type: field.TypeString},
		{Name: "lesson_id", Type: field.TypeString, Default: ""},
	}
	// ActivityEventsTable holds the schema information for the "activity_events" table.
	ActivityEventsTable = &schema.Table{
		Name:       "activity_events",
		Columns:    ActivityEventsColumns,
		PrimaryKey: []*schema.Column{ActivityEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "activityevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{ActivityEventsColumns[1]},
			},
			{
				Name:    "activityevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{ActivityEventsColumns[2]},
			},
			{
				Name:    "activityevent_kind",
				Unique:  false,
				Columns: []*schema.Column{ActivityEventsColumns[3]},
			},
			{
				Name:    "activityevent_lesson_id",
				Unique:  false,
				Columns: []*schema.Column{ActivityEventsColumns[4]},
			},
		},
	}
	// ChatEventsColumns holds the columns for the "chat_events" table.
	ChatEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "session_id", Type: field.TypeString},
		{Name: "role", Type: field.TypeString},
		{Name: "content", Type: field.TypeString, Size: 2147483647},
	}
	// ChatEventsTable holds the schema information for the "chat_events" table.
	ChatEventsTable = &schema.Table{
		Name:       "chat_events",
		Columns:    ChatEventsColumns,
		PrimaryKey: []*schema.Column{ChatEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "chatevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{ChatEventsColumns[1]},
			},
			{
				Name:    "chatevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{ChatEventsColumns[2]},
			},
			{
				Name:    "chatevent_session_id",
				Unique:  false,
				Columns: []*schema.Column{ChatEventsColumns[3]},
			},
		},
	}
	// GroupDismissalsColumns holds the columns for the "group_dismissals" table.
	GroupDismissalsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "group_id", Type: field.TypeString, Unique: true},
		{Name: "dismissed_at", Type: field.TypeTime},
	}
	// GroupDismissalsTable holds the schema information for the "group_dismissals" table.
	GroupDismissalsTable = &schema.Table{
		Name:       "group_dismissals",
		Columns:    GroupDismissalsColumns,
		PrimaryKey: []*schema.Column{GroupDismissalsColumns[0]},
	}
	// LlmRequestEventsColumns holds the columns for the "llm_request_events" table.
	LlmRequestEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "provider", Type: field.TypeString},
		{Name: "model", Type: field.TypeString},
		{Name: "purpose", Type: field.TypeString},
		{Name: "input_tokens", Type: field.TypeInt, Default: 0},
		{Name: "output_tokens", Type: field.TypeInt, Default: 0},
		{Name: "latency_ms", Type: field.TypeInt64, Default: 0},
		{Name: "success", Type: field.TypeBool},
		{Name: "error_message", Type: field.TypeString, Default: ""},
		{Name: "request_body", Type: field.TypeString, Size: 2147483647, Default: ""},
		{Name: "response_body", Type: field.TypeString, Size: 2147483647, Default: ""},
	}
	// LlmRequestEventsTable holds the schema information for the "llm_request_events" table.
	LlmRequestEventsTable = &schema.Table{
		Name:       "llm_request_events",
		Columns:    LlmRequestEventsColumns,
		PrimaryKey: []*schema.Column{LlmRequestEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "llmrequestevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[1]},
			},
			{
				Name:    "llmrequestevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[2]},
			},
			{
				Name:    "llmrequestevent_provider",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[3]},
			},
			{
				Name:    "llmrequestevent_purpose",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[5]},
			},
			{
				Name:    "llmrequestevent_success",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[9]},
			},
		},
	}
	// LessonProgressesColumns holds the columns for the "lesson_progresses" table.
	LessonProgressesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "lesson_id", Type: field.TypeString, Unique: true},
		{Name: "completion_rate", Type: field.TypeInt, Default: 0},
		{Name: "quiz_score", Type: field.TypeInt, Nullable: true},
		{Name: "mastery_level", Type: field.TypeInt, Default: 0},
		{Name: "review_count", Type: field.TypeInt, Default: 0},
		{Name: "next_review_date", Type: field.TypeTime, Nullable: true},
		{Name: "started_at", Type: field.TypeTime, Nullable: true},
		{Name: "completed_at", Type: field.TypeTime, Nullable: true},
	}
	// LessonProgressesTable holds the schema information for the "lesson_progresses" table.
	LessonProgressesTable = &schema.Table{
		Name:       "lesson_progresses",
		Columns:    LessonProgressesColumns,
		PrimaryKey: []*schema.Column{LessonProgressesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "lessonprogress_lesson_id",
				Unique:  false,
				Columns: []*schema.Column{LessonProgressesColumns[1]},
			},
			{
				Name:    "lessonprogress_next_review_date",
				Unique:  false,
				Columns: []*schema.Column{LessonProgressesColumns[6]},
			},
		},
	}
	// UserProfilesColumns holds the columns for the "user_profiles" table.
	UserProfilesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "business_structure", Type: field.TypeString, Default: ""},
		{Name: "industry", Type: field.TypeString, Default: ""},
		{Name: "experience_level", Type: field.TypeString, Default: ""},
		{Name: "pain_point", Type: field.TypeString, Default: ""},
		{Name: "learning_goal", Type: field.TypeString, Default: ""},
		{Name: "time_commitment", Type: field.TypeString, Default: ""},
		{Name: "annual_turnover", Type: field.TypeString, Default: ""},
		{Name: "vat_registered", Type: field.TypeBool, Default: false},
		{Name: "mtd_status", Type: field.TypeString, Default: ""},
		{Name: "accounting_year_end", Type: field.TypeString, Default: ""},
		{Name: "next_vat_return_due", Type: field.TypeTime, Nullable: true},
		{Name: "turnover_last_updated", Type: field.TypeTime, Nullable: true},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// UserProfilesTable holds the schema information for the "user_profiles" table.
	UserProfilesTable = &schema.Table{
		Name:       "user_profiles",
		Columns:    UserProfilesColumns,
		PrimaryKey: []*schema.Column{UserProfilesColumns[0]},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		ActivityEventsTable,
		ChatEventsTable,
		GroupDismissalsTable,
		LlmRequestEventsTable,
		LessonProgressesTable,
		UserProfilesTable,
	}
)

func init() {
}
