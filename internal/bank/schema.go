package bank

// feedSchema is the JSON Schema for the external question feed.
// Political options are objects carrying an axis value; cognitive
// options are plain strings paired with a correctAnswer field.
var feedSchema = map[string]any{
	"type":     "array",
	"minItems": 1,
	"items": map[string]any{
		"type": "object",
		"properties": map[string]any{
			"id": map[string]any{
				"type":    "integer",
				"minimum": 1,
			},
			"type": map[string]any{
				"type": "string",
				"enum": []any{"political", "cognitive"},
			},
			"text": map[string]any{
				"type":      "string",
				"minLength": 1,
			},
			"options": map[string]any{
				"type":     "array",
				"minItems": 2,
				"items": map[string]any{
					"oneOf": []any{
						map[string]any{
							"type":      "string",
							"minLength": 1,
						},
						map[string]any{
							"type": "object",
							"properties": map[string]any{
								"text": map[string]any{
									"type":      "string",
									"minLength": 1,
								},
								"value": map[string]any{
									"type": "string",
									"enum": []any{"left", "right", "auth", "lib", "neutral"},
								},
							},
							"required":             []any{"text", "value"},
							"additionalProperties": false,
						},
					},
				},
			},
			"correctAnswer": map[string]any{
				"type": "string",
			},
		},
		"required":             []any{"id", "type", "text", "options"},
		"additionalProperties": false,
	},
}
