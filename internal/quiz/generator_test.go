package quiz

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finlearn/finlearn/internal/catalog"
	"github.com/finlearn/finlearn/internal/llm"
)

func TestRefresher_ParsesQuestions(t *testing.T) {
	content := `{"questions":[{"text":"When is the online Self Assessment deadline?","options":["5 April","31 October","31 January","1 December"],"correct_index":2,"explanation":"Online returns are due 31 January."}]}`
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(content)})
	g := NewGenerator(mock)

	lesson, _ := catalog.Get("self-assessment-first-return")
	questions, err := g.Refresher(context.Background(), lesson, 1)
	require.NoError(t, err)
	require.Len(t, questions, 1)
	assert.Equal(t, 2, questions[0].CorrectIndex)
	assert.Len(t, questions[0].Options, 4)

	// The request carried the schema and the lesson context.
	require.Len(t, mock.Calls, 1)
	req := mock.Calls[0]
	require.NotNil(t, req.Schema)
	assert.Equal(t, "quiz-question", req.Schema.Name)
	assert.Contains(t, req.Messages[0].Content, lesson.Title)
}

func TestRefresher_ProviderErrorPropagates(t *testing.T) {
	mock := llm.NewMockProvider() // empty queue -> unavailable
	g := NewGenerator(mock)

	lesson, _ := catalog.Get("cashflow-basics")
	_, err := g.Refresher(context.Background(), lesson, 2)
	assert.Error(t, err)
}

func TestRefresher_MalformedContentFails(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(`not json`)})
	g := NewGenerator(mock)

	lesson, _ := catalog.Get("cashflow-basics")
	_, err := g.Refresher(context.Background(), lesson, 2)
	assert.Error(t, err)
}
