package store

import (
	"context"
	"fmt"
	"time"

	"github.com/finlearn/finlearn/ent"
	"github.com/finlearn/finlearn/ent/activityevent"
	"github.com/finlearn/finlearn/ent/chatevent"
	"github.com/finlearn/finlearn/ent/llmrequestevent"
)

// eventRepo implements EventRepo backed by ent and the global sequence counter.
type eventRepo struct {
	client *ent.Client
	seq    *sequenceCounter
}

func (r *eventRepo) AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.LLMRequestEvent.Create().
		SetSequence(seqNum).
		SetProvider(data.Provider).
		SetModel(data.Model).
		SetPurpose(data.Purpose).
		SetInputTokens(data.InputTokens).
		SetOutputTokens(data.OutputTokens).
		SetLatencyMs(data.LatencyMs).
		SetSuccess(data.Success).
		SetErrorMessage(data.ErrorMessage).
		SetRequestBody(data.RequestBody).
		SetResponseBody(data.ResponseBody).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save LLM request event: %w", err)
	}
	return nil
}

func (r *eventRepo) RecentLLMRequests(ctx context.Context, limit int) ([]LLMRequestRecord, error) {
	q := r.client.LLMRequestEvent.Query().
		Order(ent.Desc(llmrequestevent.FieldSequence))
	if limit > 0 {
		q = q.Limit(limit)
	}
	rows, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query LLM request events: %w", err)
	}

	out := make([]LLMRequestRecord, 0, len(rows))
	for _, row := range rows {
		out = append(out, LLMRequestRecord{
			Timestamp: row.Timestamp,
			LLMRequestEventData: LLMRequestEventData{
				Provider:     row.Provider,
				Model:        row.Model,
				Purpose:      row.Purpose,
				InputTokens:  row.InputTokens,
				OutputTokens: row.OutputTokens,
				LatencyMs:    row.LatencyMs,
				Success:      row.Success,
				ErrorMessage: row.ErrorMessage,
				RequestBody:  row.RequestBody,
				ResponseBody: row.ResponseBody,
			},
		})
	}
	return out, nil
}

func (r *eventRepo) AppendActivity(ctx context.Context, data ActivityEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.ActivityEvent.Create().
		SetSequence(seqNum).
		SetKind(data.Kind).
		SetLessonID(data.LessonID).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save activity event: %w", err)
	}
	return nil
}

func (r *eventRepo) ActivityTimes(ctx context.Context) ([]time.Time, error) {
	rows, err := r.client.ActivityEvent.Query().
		Order(ent.Asc(activityevent.FieldSequence)).
		Select(activityevent.FieldTimestamp).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query activity events: %w", err)
	}

	out := make([]time.Time, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.Timestamp)
	}
	return out, nil
}

func (r *eventRepo) AppendChat(ctx context.Context, msg ChatMessage) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.ChatEvent.Create().
		SetSequence(seqNum).
		SetSessionID(msg.SessionID).
		SetRole(msg.Role).
		SetContent(msg.Content).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save chat event: %w", err)
	}
	return nil
}

func (r *eventRepo) ChatHistory(ctx context.Context, sessionID string) ([]ChatMessage, error) {
	rows, err := r.client.ChatEvent.Query().
		Where(chatevent.SessionID(sessionID)).
		Order(ent.Asc(chatevent.FieldSequence)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query chat events: %w", err)
	}

	out := make([]ChatMessage, 0, len(rows))
	for _, row := range rows {
		out = append(out, ChatMessage{
			SessionID: row.SessionID,
			Role:      row.Role,
			Content:   row.Content,
			Timestamp: row.Timestamp,
		})
	}
	return out, nil
}
