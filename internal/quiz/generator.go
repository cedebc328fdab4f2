package quiz

import (
	"context"
	"fmt"
	"strings"

	json "github.com/goccy/go-json"

	"github.com/finlearn/finlearn/internal/catalog"
	"github.com/finlearn/finlearn/internal/llm"
)

// RefresherSchema defines the JSON schema for LLM-generated refresher
// questions used in review sessions.
var RefresherSchema = &llm.Schema{
	Name:        "quiz-question",
	Description: "Multiple-choice refresher questions on a UK small-business finance topic",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"questions": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"text": map[string]any{
							"type":        "string",
							"description": "The question, one or two sentences",
						},
						"options": map[string]any{
							"type":        "array",
							"items":       map[string]any{"type": "string"},
							"minItems":    4,
							"maxItems":    4,
							"description": "Exactly four answer options",
						},
						"correct_index": map[string]any{
							"type":        "integer",
							"minimum":     0,
							"maximum":     3,
							"description": "Index of the correct option",
						},
						"explanation": map[string]any{
							"type":        "string",
							"description": "One-sentence explanation of the correct answer",
						},
					},
					"required":             []any{"text", "options", "correct_index", "explanation"},
					"additionalProperties": false,
				},
			},
		},
		"required":             []any{"questions"},
		"additionalProperties": false,
	},
}

const generatorSystemPrompt = `You write short multiple-choice refresher questions about UK small-business finance for sole traders and small limited companies. Questions must reflect current UK rules (HMRC, VAT, Self Assessment, Making Tax Digital). Keep language plain and jargon-free. Never invent thresholds or dates; if unsure, ask about principles instead of figures.`

// Generator produces refresher questions for a lesson via the LLM.
type Generator struct {
	provider    llm.Provider
	maxTokens   int
	temperature float64
}

func NewGenerator(provider llm.Provider) *Generator {
	return &Generator{provider: provider, maxTokens: 1500, temperature: 0.4}
}

type refresherOutput struct {
	Questions []struct {
		Text         string   `json:"text"`
		Options      []string `json:"options"`
		CorrectIndex int      `json:"correct_index"`
		Explanation  string   `json:"explanation"`
	} `json:"questions"`
}

// Refresher generates count fresh questions for a lesson. The schema is
// validated by the provider layer before the content reaches us.
func (g *Generator) Refresher(ctx context.Context, lesson catalog.Lesson, count int) ([]Question, error) {
	ctx = llm.WithPurpose(ctx, llm.PurposeQuizGen)

	req := llm.Request{
		System: generatorSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildRefresherMessage(lesson, count)},
		},
		Schema:      RefresherSchema,
		MaxTokens:   g.maxTokens,
		Temperature: g.temperature,
	}

	resp, err := g.provider.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("refresher generation: %w", err)
	}

	var out refresherOutput
	if err := json.Unmarshal(resp.Content, &out); err != nil {
		return nil, fmt.Errorf("parse refresher response: %w", err)
	}

	questions := make([]Question, 0, len(out.Questions))
	for _, q := range out.Questions {
		questions = append(questions, Question{
			Text:         q.Text,
			Options:      q.Options,
			CorrectIndex: q.CorrectIndex,
			Explanation:  q.Explanation,
		})
	}
	return questions, nil
}

func buildRefresherMessage(lesson catalog.Lesson, count int) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Write %d refresher questions for someone who completed the lesson %q.\n", count, lesson.Title)
	fmt.Fprintf(&b, "Topic area: %s. Difficulty: %s.\n", lesson.Category, lesson.Difficulty)
	b.WriteString("Each question should test whether the key idea stuck, not trivia.")
	return b.String()
}
