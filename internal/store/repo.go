package store

import (
	"context"
	"time"

	"github.com/finlearn/finlearn/internal/profile"
	"github.com/finlearn/finlearn/internal/progress"
)

// ProfileData is the raw persisted form of the business profile.
// Free-text fields stay as the user entered them; the profile package
// normalizes on read.
type ProfileData struct {
	BusinessStructure string
	Industry          string
	ExperienceLevel   string
	PainPoint         string
	LearningGoal      string
	TimeCommitment    string
	AnnualTurnover    string
	VATRegistered     bool
	MTDStatus         string
	AccountingYearEnd string

	NextVATReturnDue    *time.Time
	TurnoverLastUpdated *time.Time
}

// ProfileRepo manages the singleton business profile row.
type ProfileRepo interface {
	// Get returns the normalized profile. A missing row is not an
	// error: it returns the zero profile.
	Get(ctx context.Context) (profile.Profile, error)

	// Raw returns the stored profile fields as entered, or nil when no
	// profile has been saved yet.
	Raw(ctx context.Context) (*ProfileData, error)

	// Save upserts the profile row. When the turnover text changes,
	// turnover_last_updated is stamped so staleness checks work.
	Save(ctx context.Context, data ProfileData) error
}

// ProgressRepo manages per-lesson progress rows.
type ProgressRepo interface {
	// List returns all progress rows.
	List(ctx context.Context) ([]progress.Record, error)

	// Get returns the row for one lesson, or nil if none exists.
	Get(ctx context.Context, lessonID string) (*progress.Record, error)

	// Upsert writes the row for rec.LessonID, creating it if needed.
	Upsert(ctx context.Context, rec progress.Record) error
}

// DismissalRepo tracks dismissed seasonal groups.
type DismissalRepo interface {
	// Dismissed returns the set of dismissed group ids.
	Dismissed(ctx context.Context) (map[string]bool, error)

	// Dismiss marks a group id dismissed. Idempotent.
	Dismiss(ctx context.Context, groupID string) error
}

// LLMRequestEventData captures the data for a single LLM request event.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// LLMRequestRecord is a stored LLM request event read back for display.
type LLMRequestRecord struct {
	Timestamp time.Time
	LLMRequestEventData
}

// ActivityEventData records one learning action for streak tracking.
type ActivityEventData struct {
	Kind     string
	LessonID string
}

// ChatMessage is one stored tutor chat message.
type ChatMessage struct {
	SessionID string
	Role      string
	Content   string
	Timestamp time.Time
}

// EventRepo provides append and read access to the event tables.
type EventRepo interface {
	// AppendLLMRequest records an LLM API call event.
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error

	// RecentLLMRequests returns the newest limit LLM request events,
	// newest first.
	RecentLLMRequests(ctx context.Context, limit int) ([]LLMRequestRecord, error)

	// AppendActivity records a learning action.
	AppendActivity(ctx context.Context, data ActivityEventData) error

	// ActivityTimes returns the timestamps of all recorded activity,
	// oldest first. Input to the streak calculation.
	ActivityTimes(ctx context.Context) ([]time.Time, error)

	// AppendChat records one tutor chat message.
	AppendChat(ctx context.Context, msg ChatMessage) error

	// ChatHistory returns a session's messages in order.
	ChatHistory(ctx context.Context, sessionID string) ([]ChatMessage, error)
}
