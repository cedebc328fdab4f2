// Package tutor is the conversational finance tutor. It keeps a
// per-session transcript, persists every exchange to the event store,
// and runs a side-channel extraction pass that pulls structured profile
// facts out of what the user says.
package tutor

import (
	"context"
	"fmt"
	"strings"

	json "github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/finlearn/finlearn/internal/llm"
	"github.com/finlearn/finlearn/internal/profile"
	"github.com/finlearn/finlearn/internal/store"
)

const systemPromptTemplate = `You are a friendly, plain-spoken finance tutor for UK small-business owners: sole traders, partnerships and small limited companies. Explain concepts simply, use UK terms (HMRC, Self Assessment, VAT, Making Tax Digital, Companies House) and current UK rules. Keep answers short and practical. You are not a regulated adviser: for decisions with serious tax or legal consequences, suggest confirming with an accountant. Never invent thresholds, rates or deadlines.`

// Service runs one tutor chat session.
type Service struct {
	provider  llm.Provider
	events    store.EventRepo
	sessionID string
	system    string
	history   []llm.Message

	maxTokens int
}

// Option adjusts a tutor session.
type Option func(*Service)

// WithMaxTokens caps the length of each tutor reply.
func WithMaxTokens(n int) Option {
	return func(s *Service) {
		if n > 0 {
			s.maxTokens = n
		}
	}
}

// NewService starts a fresh session. The profile, when present, is
// summarized into the system prompt so answers fit the business.
func NewService(provider llm.Provider, events store.EventRepo, p profile.Profile, opts ...Option) *Service {
	s := &Service{
		provider:  provider,
		events:    events,
		sessionID: uuid.NewString(),
		system:    buildSystemPrompt(p),
		maxTokens: 1000,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// SessionID returns the session's transcript id.
func (s *Service) SessionID() string {
	return s.sessionID
}

// History returns the transcript so far.
func (s *Service) History() []llm.Message {
	return s.history
}

// Send submits one user message and returns the tutor's reply. The
// exchange is appended to the transcript and persisted; persistence
// failures are logged, never surfaced.
func (s *Service) Send(ctx context.Context, text string) (string, error) {
	ctx = llm.WithPurpose(ctx, llm.PurposeTutor)

	s.history = append(s.history, llm.Message{Role: llm.RoleUser, Content: text})

	resp, err := s.provider.Generate(ctx, llm.Request{
		System:    s.system,
		Messages:  s.history,
		MaxTokens: s.maxTokens,
	})
	if err != nil {
		// Keep the transcript consistent: the failed turn is removed.
		s.history = s.history[:len(s.history)-1]
		return "", fmt.Errorf("tutor generation: %w", err)
	}

	reply := decodeText(resp.Content)
	s.history = append(s.history, llm.Message{Role: llm.RoleAssistant, Content: reply})

	s.persist("user", text)
	s.persist("assistant", reply)

	return reply, nil
}

func (s *Service) persist(role, content string) {
	if s.events == nil {
		return
	}
	err := s.events.AppendChat(context.Background(), store.ChatMessage{
		SessionID: s.sessionID,
		Role:      role,
		Content:   content,
	})
	if err != nil {
		logrus.WithError(err).Warn("failed to persist chat message")
	}
}

// decodeText unwraps a schemaless response: raw text arrives as a JSON
// string. Anything that fails to decode is passed through as-is.
func decodeText(raw []byte) string {
	var text string
	if err := json.Unmarshal(raw, &text); err == nil {
		return text
	}
	return string(raw)
}

func buildSystemPrompt(p profile.Profile) string {
	var b strings.Builder
	b.WriteString(systemPromptTemplate)

	var facts []string
	if p.BusinessStructure != profile.StructureUnknown {
		facts = append(facts, fmt.Sprintf("business structure: %s", p.BusinessStructure))
	}
	if p.Industry != "" {
		facts = append(facts, fmt.Sprintf("industry: %s", p.Industry))
	}
	if p.AnnualTurnover.Known() {
		facts = append(facts, fmt.Sprintf("approximate annual turnover: £%.0f", p.AnnualTurnover.Amount()))
	}
	if p.VATRegistered {
		facts = append(facts, "VAT registered")
	}
	if p.PainPoint != "" {
		facts = append(facts, fmt.Sprintf("their stated struggle: %s", p.PainPoint))
	}

	if len(facts) > 0 {
		b.WriteString("\n\nWhat you know about this user's business: ")
		b.WriteString(strings.Join(facts, "; "))
		b.WriteString(".")
	}
	return b.String()
}
