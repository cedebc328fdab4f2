package llm

import (
	"encoding/json"
	"errors"
	"testing"
)

func questionSchema() *Schema {
	return &Schema{
		Name:        "quiz-question",
		Description: "A single quiz question",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"question":   map[string]any{"type": "string"},
				"answer":     map[string]any{"type": "integer", "minimum": 0},
				"difficulty": map[string]any{"type": "string", "enum": []any{"easy", "medium", "hard"}},
			},
			"required": []any{"question", "answer"},
		},
	}
}

func TestValidateResponseValidJSON(t *testing.T) {
	raw := json.RawMessage(`{"question":"What is the VAT threshold?","answer":1,"difficulty":"easy"}`)
	err := validateResponse(questionSchema(), raw)
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
}

func TestValidateResponseValidWithoutOptional(t *testing.T) {
	raw := json.RawMessage(`{"question":"When is Self Assessment due?","answer":2}`)
	err := validateResponse(questionSchema(), raw)
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
}

func TestValidateResponseMissingRequired(t *testing.T) {
	raw := json.RawMessage(`{"question":"What counts as a capital allowance?"}`)
	err := validateResponse(questionSchema(), raw)
	if err == nil {
		t.Fatal("expected error for missing required field")
	}
	var invErr *ErrInvalidResponse
	if !errors.As(err, &invErr) {
		t.Fatalf("expected ErrInvalidResponse, got: %T", err)
	}
}

func TestValidateResponseWrongType(t *testing.T) {
	raw := json.RawMessage(`{"question":"What is MTD?","answer":"two"}`)
	err := validateResponse(questionSchema(), raw)
	if err == nil {
		t.Fatal("expected error for wrong type")
	}
	var invErr *ErrInvalidResponse
	if !errors.As(err, &invErr) {
		t.Fatalf("expected ErrInvalidResponse, got: %T", err)
	}
}

func TestValidateResponseInvalidEnum(t *testing.T) {
	raw := json.RawMessage(`{"question":"What is a P60?","answer":0,"difficulty":"impossible"}`)
	err := validateResponse(questionSchema(), raw)
	if err == nil {
		t.Fatal("expected error for invalid enum value")
	}
	var invErr *ErrInvalidResponse
	if !errors.As(err, &invErr) {
		t.Fatalf("expected ErrInvalidResponse, got: %T", err)
	}
}

func TestValidateResponseMalformedJSON(t *testing.T) {
	raw := json.RawMessage(`{not json}`)
	err := validateResponse(questionSchema(), raw)
	if err == nil {
		t.Fatal("expected error for malformed JSON")
	}
	var invErr *ErrInvalidResponse
	if !errors.As(err, &invErr) {
		t.Fatalf("expected ErrInvalidResponse, got: %T", err)
	}
}

func TestValidateResponseEmptyResponse(t *testing.T) {
	raw := json.RawMessage(``)
	err := validateResponse(questionSchema(), raw)
	if err == nil {
		t.Fatal("expected error for empty response")
	}
}

func TestValidateResponseNilSchema(t *testing.T) {
	raw := json.RawMessage(`{"anything":"goes"}`)
	err := validateResponse(nil, raw)
	if err != nil {
		t.Fatalf("expected no error with nil schema, got: %v", err)
	}
}

func TestValidateResponseNestedObjects(t *testing.T) {
	schema := &Schema{
		Name:        "refresher-quiz",
		Description: "A refresher quiz with its questions",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"lesson": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"title": map[string]any{"type": "string"},
					},
					"required": []any{"title"},
				},
				"answers": map[string]any{
					"type":  "array",
					"items": map[string]any{"type": "integer"},
				},
			},
			"required": []any{"lesson", "answers"},
		},
	}

	valid := json.RawMessage(`{"lesson":{"title":"VAT basics"},"answers":[1,0,2]}`)
	if err := validateResponse(schema, valid); err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}

	invalid := json.RawMessage(`{"lesson":{"title":"VAT basics"},"answers":["not","ints"]}`)
	if err := validateResponse(schema, invalid); err == nil {
		t.Fatal("expected error for wrong array item type")
	}
}
