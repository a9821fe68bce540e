package insight

import "github.com/abhisek/iqorum/internal/llm"

// InsightSchema defines the JSON schema for result-insight generation.
var InsightSchema = &llm.Schema{
	Name:        "result-insight",
	Description: "A short reflection on a person's self-assessment results",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"summary": map[string]any{
				"type":        "string",
				"description": "3-5 sentence reflection on the combined results",
			},
			"highlights": map[string]any{
				"type":        "array",
				"items":       map[string]any{"type": "string"},
				"description": "1-3 short observations (5-12 words each)",
			},
		},
		"required":             []any{"summary", "highlights"},
		"additionalProperties": false,
	},
}
