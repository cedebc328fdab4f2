package tutor

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finlearn/finlearn/internal/llm"
	"github.com/finlearn/finlearn/internal/profile"
)

func textResponse(s string) llm.MockResponse {
	b, _ := json.Marshal(s)
	return llm.MockResponse{Content: b}
}

func TestSend_AppendsHistoryBothSides(t *testing.T) {
	mock := llm.NewMockProvider(textResponse("VAT is a tax on sales."))
	s := NewService(mock, nil, profile.Profile{})

	reply, err := s.Send(context.Background(), "what is vat?")
	require.NoError(t, err)
	assert.Equal(t, "VAT is a tax on sales.", reply)

	h := s.History()
	require.Len(t, h, 2)
	assert.Equal(t, llm.RoleUser, h[0].Role)
	assert.Equal(t, llm.RoleAssistant, h[1].Role)
}

func TestSend_FailureRollsBackTranscript(t *testing.T) {
	mock := llm.NewMockProvider() // empty queue
	s := NewService(mock, nil, profile.Profile{})

	_, err := s.Send(context.Background(), "hello?")
	assert.Error(t, err)
	assert.Empty(t, s.History())
}

func TestSend_CarriesFullTranscript(t *testing.T) {
	mock := llm.NewMockProvider(textResponse("first"), textResponse("second"))
	s := NewService(mock, nil, profile.Profile{})

	_, err := s.Send(context.Background(), "one")
	require.NoError(t, err)
	_, err = s.Send(context.Background(), "two")
	require.NoError(t, err)

	// Second request includes the whole conversation.
	require.Len(t, mock.Calls, 2)
	assert.Len(t, mock.Calls[1].Messages, 3)
}

func TestSystemPrompt_IncludesProfileFacts(t *testing.T) {
	mock := llm.NewMockProvider(textResponse("ok"))
	p := profile.Profile{
		BusinessStructure: profile.SoleTrader,
		Industry:          "plumbing",
		AnnualTurnover:    profile.ResolveTurnover("85000"),
		VATRegistered:     true,
	}
	s := NewService(mock, nil, p)

	_, err := s.Send(context.Background(), "hi")
	require.NoError(t, err)

	sys := mock.Calls[0].System
	assert.Contains(t, sys, "sole_trader")
	assert.Contains(t, sys, "plumbing")
	assert.Contains(t, sys, "£85000")
	assert.Contains(t, sys, "VAT registered")
}

func TestSystemPrompt_EmptyProfileHasNoFacts(t *testing.T) {
	mock := llm.NewMockProvider(textResponse("ok"))
	s := NewService(mock, nil, profile.Profile{})

	_, _ = s.Send(context.Background(), "hi")
	assert.NotContains(t, mock.Calls[0].System, "What you know about")
}

func TestExtract_ParsesFacts(t *testing.T) {
	content := `{"annual_turnover":"85000","vat_registered":"no","business_structure":"sole_trader","mtd_status":"","industry":"plumbing"}`
	mock := llm.NewMockProvider(
		textResponse("noted"),
		llm.MockResponse{Content: json.RawMessage(content)},
	)
	s := NewService(mock, nil, profile.Profile{})

	_, err := s.Send(context.Background(), "I'm a plumber turning over about 85000, not VAT registered yet")
	require.NoError(t, err)

	facts, err := s.Extract(context.Background())
	require.NoError(t, err)
	require.NotNil(t, facts.AnnualTurnover)
	assert.Equal(t, "85000", *facts.AnnualTurnover)
	require.NotNil(t, facts.VATRegistered)
	assert.False(t, *facts.VATRegistered)
	require.NotNil(t, facts.BusinessStructure)
	assert.Equal(t, "sole_trader", *facts.BusinessStructure)
	assert.Nil(t, facts.MTDStatus)
	assert.False(t, facts.Empty())

	// The extraction request used the schema.
	req := mock.Calls[1]
	require.NotNil(t, req.Schema)
	assert.Equal(t, "profile-extract", req.Schema.Name)
}

func TestExtract_EmptyHistoryIsNoop(t *testing.T) {
	mock := llm.NewMockProvider()
	s := NewService(mock, nil, profile.Profile{})

	facts, err := s.Extract(context.Background())
	require.NoError(t, err)
	assert.True(t, facts.Empty())
	assert.Zero(t, mock.CallCount())
}
