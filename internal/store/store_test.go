package store

import (
	"context"
	"testing"
	"time"

	"github.com/finlearn/finlearn/internal/profile"
	"github.com/finlearn/finlearn/internal/progress"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so we skip journal_mode here.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestProfileGetWithoutRow(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	p, err := s.ProfileRepo().Get(ctx)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if p.BusinessStructure != profile.StructureUnknown {
		t.Errorf("structure = %q, want unknown", p.BusinessStructure)
	}
	if p.AnnualTurnover.Known() {
		t.Error("expected unknown turnover for empty profile")
	}
}

func TestProfileSaveAndNormalize(t *testing.T) {
	s := openTestStore(t)
	repo := s.ProfileRepo()
	ctx := context.Background()

	err := repo.Save(ctx, ProfileData{
		BusinessStructure: "Sole Trader",
		PainPoint:         "cash flow",
		TimeCommitment:    "30_minutes",
		AnnualTurnover:    "60k-85k",
		MTDStatus:         "required",
	})
	if err != nil {
		t.Fatalf("save: %v", err)
	}

	p, err := repo.Get(ctx)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if p.BusinessStructure != profile.SoleTrader {
		t.Errorf("structure = %q, want sole_trader", p.BusinessStructure)
	}
	if !p.AnnualTurnover.Known() || p.AnnualTurnover.Amount() != 72500 {
		t.Errorf("turnover amount = %v, want bucket midpoint 72500", p.AnnualTurnover.Amount())
	}
	if p.MTDStatus != profile.MTDRequired {
		t.Errorf("mtd status = %q, want required", p.MTDStatus)
	}
	if p.TurnoverLastUpdated == nil {
		t.Error("expected turnover_last_updated stamped on first save")
	}
}

func TestProfileSaveStampsTurnoverChange(t *testing.T) {
	s := openTestStore(t)
	repo := s.ProfileRepo()
	ctx := context.Background()

	if err := repo.Save(ctx, ProfileData{AnnualTurnover: "50000"}); err != nil {
		t.Fatalf("save: %v", err)
	}
	first, err := repo.Raw(ctx)
	if err != nil || first == nil {
		t.Fatalf("raw: %v", err)
	}

	// Unchanged turnover keeps the original stamp.
	if err := repo.Save(ctx, ProfileData{AnnualTurnover: "50000"}); err != nil {
		t.Fatalf("resave: %v", err)
	}
	second, _ := repo.Raw(ctx)
	if !second.TurnoverLastUpdated.Equal(*first.TurnoverLastUpdated) {
		t.Error("stamp moved on unchanged turnover")
	}

	// Changed turnover moves the stamp.
	time.Sleep(10 * time.Millisecond)
	if err := repo.Save(ctx, ProfileData{AnnualTurnover: "55000"}); err != nil {
		t.Fatalf("resave changed: %v", err)
	}
	third, _ := repo.Raw(ctx)
	if !third.TurnoverLastUpdated.After(*first.TurnoverLastUpdated) {
		t.Error("stamp did not move on changed turnover")
	}
}

func TestProgressUpsert(t *testing.T) {
	s := openTestStore(t)
	repo := s.ProgressRepo()
	ctx := context.Background()

	started := time.Now().UTC().Truncate(time.Second)
	err := repo.Upsert(ctx, progress.Record{
		LessonID:       "cashflow-basics",
		CompletionRate: 40,
		StartedAt:      &started,
	})
	if err != nil {
		t.Fatalf("upsert create: %v", err)
	}

	score := 85
	done := started.Add(time.Hour)
	err = repo.Upsert(ctx, progress.Record{
		LessonID:       "cashflow-basics",
		CompletionRate: 100,
		QuizScore:      &score,
		MasteryLevel:   1,
		ReviewCount:    1,
		StartedAt:      &started,
		CompletedAt:    &done,
	})
	if err != nil {
		t.Fatalf("upsert update: %v", err)
	}

	rows, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("rows = %d, want 1", len(rows))
	}
	got := rows[0]
	if got.CompletionRate != 100 {
		t.Errorf("completion = %d, want 100", got.CompletionRate)
	}
	if got.QuizScore == nil || *got.QuizScore != 85 {
		t.Errorf("quiz score = %v, want 85", got.QuizScore)
	}
	if !got.Complete() {
		t.Error("expected record to report complete")
	}
}

func TestProgressGetMissing(t *testing.T) {
	s := openTestStore(t)

	rec, err := s.ProgressRepo().Get(context.Background(), "nope")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if rec != nil {
		t.Error("expected nil record for unknown lesson")
	}
}

func TestDismissIdempotent(t *testing.T) {
	s := openTestStore(t)
	repo := s.DismissalRepo()
	ctx := context.Background()

	if err := repo.Dismiss(ctx, "self_assessment_2026"); err != nil {
		t.Fatalf("dismiss: %v", err)
	}
	if err := repo.Dismiss(ctx, "self_assessment_2026"); err != nil {
		t.Fatalf("dismiss again: %v", err)
	}

	ids, err := repo.Dismissed(ctx)
	if err != nil {
		t.Fatalf("dismissed: %v", err)
	}
	if !ids["self_assessment_2026"] || len(ids) != 1 {
		t.Errorf("dismissed set = %v", ids)
	}
}

func TestEventSequenceSharedAcrossTypes(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	if err := repo.AppendActivity(ctx, ActivityEventData{Kind: "lesson_completed", LessonID: "cashflow-basics"}); err != nil {
		t.Fatalf("append activity: %v", err)
	}
	if err := repo.AppendChat(ctx, ChatMessage{SessionID: "s1", Role: "user", Content: "hi"}); err != nil {
		t.Fatalf("append chat: %v", err)
	}
	if err := repo.AppendLLMRequest(ctx, LLMRequestEventData{Provider: "mock", Model: "mock", Purpose: "tutor", Success: true}); err != nil {
		t.Fatalf("append llm: %v", err)
	}

	times, err := repo.ActivityTimes(ctx)
	if err != nil {
		t.Fatalf("activity times: %v", err)
	}
	if len(times) != 1 {
		t.Errorf("activity times = %d, want 1", len(times))
	}

	reqs, err := repo.RecentLLMRequests(ctx, 10)
	if err != nil {
		t.Fatalf("recent llm: %v", err)
	}
	if len(reqs) != 1 || reqs[0].Purpose != "tutor" {
		t.Errorf("llm requests = %+v", reqs)
	}
}

func TestChatHistoryOrdered(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	msgs := []ChatMessage{
		{SessionID: "s1", Role: "user", Content: "what is vat?"},
		{SessionID: "s1", Role: "assistant", Content: "a sales tax"},
		{SessionID: "s2", Role: "user", Content: "other session"},
	}
	for _, m := range msgs {
		if err := repo.AppendChat(ctx, m); err != nil {
			t.Fatalf("append: %v", err)
		}
	}

	history, err := repo.ChatHistory(ctx, "s1")
	if err != nil {
		t.Fatalf("history: %v", err)
	}
	if len(history) != 2 {
		t.Fatalf("history = %d messages, want 2", len(history))
	}
	if history[0].Role != "user" || history[1].Role != "assistant" {
		t.Errorf("history order wrong: %+v", history)
	}
}

func TestSequenceCounter(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	var seqs []int64
	for i := 0; i < 5; i++ {
		seq, err := s.seq.Next(ctx)
		if err != nil {
			t.Fatalf("next %d: %v", i, err)
		}
		seqs = append(seqs, seq)
	}

	for i, seq := range seqs {
		expected := int64(i + 1)
		if seq != expected {
			t.Errorf("seq[%d] = %d, want %d", i, seq, expected)
		}
	}
}
