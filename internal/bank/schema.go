package bank

import "github.com/abhisek/quizplayer/internal/validate"

// QuestionSchemaDefinition returns the JSON Schema for one question record.
// The persistence layer embeds it for question snapshots.
func QuestionSchemaDefinition() map[string]any {
	return map[string]any{
		"type":     "object",
		"required": []string{"q", "type", "options", "correct"},
		"properties": map[string]any{
			"q":    map[string]any{"type": "string"},
			"type": map[string]any{"enum": []string{string(KindMultipleChoice)}},
			"options": map[string]any{
				"type":     "array",
				"minItems": 1,
				"items":    map[string]any{"type": "string"},
			},
			"correct": map[string]any{"type": "integer", "minimum": 0},
		},
	}
}

// documentSchema describes a question bank file: an object with an
// optional courseTitle and one member per tutorial.
var documentSchema = &validate.Schema{
	Name: "question-bank",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"courseTitle": map[string]any{"type": "string"},
		},
		"additionalProperties": map[string]any{
			"type":     "object",
			"required": []string{"data"},
			"properties": map[string]any{
				"title": map[string]any{"type": "string"},
				"data": map[string]any{
					"type":  "array",
					"items": QuestionSchemaDefinition(),
				},
			},
		},
	},
}
