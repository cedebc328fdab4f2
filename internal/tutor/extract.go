package tutor

import (
	"context"
	"fmt"
	"strings"

	json "github.com/goccy/go-json"

	"github.com/finlearn/finlearn/internal/llm"
)

// ExtractSchema constrains the profile-fact extraction pass. Every
// property is optional: the model only reports facts the user actually
// stated.
var ExtractSchema = &llm.Schema{
	Name:        "profile-extract",
	Description: "Business profile facts explicitly stated by the user in a tutoring exchange",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"annual_turnover": map[string]any{
				"type":        "string",
				"description": "Turnover as stated, verbatim (e.g. '85000', '60k-85k'); empty if not mentioned",
			},
			"vat_registered": map[string]any{
				"type":        "string",
				"enum":        []any{"", "yes", "no"},
				"description": "Whether the user said they are VAT registered; empty if not mentioned",
			},
			"business_structure": map[string]any{
				"type":        "string",
				"enum":        []any{"", "sole_trader", "limited_company", "partnership"},
				"description": "Structure if stated; empty if not mentioned",
			},
			"mtd_status": map[string]any{
				"type":        "string",
				"enum":        []any{"", "not_required", "required", "compliant", "enrolled"},
				"description": "Making Tax Digital status if stated; empty if not mentioned",
			},
			"industry": map[string]any{
				"type":        "string",
				"description": "Industry or trade if stated; empty if not mentioned",
			},
		},
		"required":             []any{"annual_turnover", "vat_registered", "business_structure", "mtd_status", "industry"},
		"additionalProperties": false,
	},
}

const extractSystemPrompt = `You extract business facts a user explicitly stated in a conversation with their finance tutor. Only report facts the user said about their own business. Never infer, never guess, and leave a field empty unless it was clearly stated.`

// Facts are profile fields spotted in a conversation. Nil means the
// fact was not mentioned.
type Facts struct {
	AnnualTurnover    *string
	VATRegistered     *bool
	BusinessStructure *string
	MTDStatus         *string
	Industry          *string
}

// Empty reports whether no facts were extracted.
func (f Facts) Empty() bool {
	return f.AnnualTurnover == nil && f.VATRegistered == nil &&
		f.BusinessStructure == nil && f.MTDStatus == nil && f.Industry == nil
}

// Extract runs the side-channel extraction over the session so far.
// The caller decides whether to persist the facts to the profile.
func (s *Service) Extract(ctx context.Context) (Facts, error) {
	if len(s.history) == 0 {
		return Facts{}, nil
	}

	ctx = llm.WithPurpose(ctx, llm.PurposeProfileExtract)

	resp, err := s.provider.Generate(ctx, llm.Request{
		System: extractSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: transcriptForExtraction(s.history)},
		},
		Schema:    ExtractSchema,
		MaxTokens: 300,
	})
	if err != nil {
		return Facts{}, fmt.Errorf("profile extraction: %w", err)
	}

	var out struct {
		AnnualTurnover    string `json:"annual_turnover"`
		VATRegistered     string `json:"vat_registered"`
		BusinessStructure string `json:"business_structure"`
		MTDStatus         string `json:"mtd_status"`
		Industry          string `json:"industry"`
	}
	if err := json.Unmarshal(resp.Content, &out); err != nil {
		return Facts{}, fmt.Errorf("parse extraction response: %w", err)
	}

	var facts Facts
	if out.AnnualTurnover != "" {
		facts.AnnualTurnover = &out.AnnualTurnover
	}
	if out.VATRegistered != "" {
		v := out.VATRegistered == "yes"
		facts.VATRegistered = &v
	}
	if out.BusinessStructure != "" {
		facts.BusinessStructure = &out.BusinessStructure
	}
	if out.MTDStatus != "" {
		facts.MTDStatus = &out.MTDStatus
	}
	if out.Industry != "" {
		facts.Industry = &out.Industry
	}
	return facts, nil
}

func transcriptForExtraction(history []llm.Message) string {
	var b strings.Builder
	b.WriteString("Conversation transcript:\n\n")
	for _, m := range history {
		fmt.Fprintf(&b, "[%s] %s\n", m.Role, m.Content)
	}
	return b.String()
}
