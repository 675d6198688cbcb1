package catalog

// bankSchema is the JSON schema for the embedded question bank. Structural
// constraints that the schema cannot express (duplicate IDs, correct index
// in range of the options) are checked separately by validateQuestions.
var bankSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"questions": map[string]any{
			"type":     "array",
			"minItems": 1,
			"items": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"id": map[string]any{
						"type":      "string",
						"minLength": 1,
					},
					"prompt": map[string]any{
						"type":      "string",
						"minLength": 1,
					},
					"options": map[string]any{
						"type":     "array",
						"minItems": 2,
						"items":    map[string]any{"type": "string"},
					},
					"correctIndex": map[string]any{
						"type":    "integer",
						"minimum": 0,
					},
					"explanation": map[string]any{
						"type": "string",
					},
					"difficulty": map[string]any{
						"type": "string",
						"enum": []any{"easy", "medium", "hard"},
					},
					"category": map[string]any{
						"type": "string",
						"enum": []any{"basics", "advanced"},
					},
				},
				"required":             []any{"id", "prompt", "options", "correctIndex", "explanation", "difficulty"},
				"additionalProperties": false,
			},
		},
	},
	"required":             []any{"questions"},
	"additionalProperties": false,
}
