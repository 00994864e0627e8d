package persist

import (
	"github.com/abhisek/quizplayer/internal/bank"
	"github.com/abhisek/quizplayer/internal/validate"
)

func pairOf(value map[string]any) map[string]any {
	return map[string]any{
		"type":        "array",
		"prefixItems": []any{map[string]any{"type": "string"}, value},
		"minItems":    2,
		"maxItems":    2,
	}
}

var mistakesSchema = &validate.Schema{
	Name: "slot-incorrect-answers",
	Definition: map[string]any{
		"type": "array",
		"items": pairOf(map[string]any{
			"type":     "object",
			"required": []string{"tutorialKey", "questionIndex", "question"},
			"properties": map[string]any{
				"tutorialKey":   map[string]any{"type": "string", "minLength": 1},
				"questionIndex": map[string]any{"type": "integer", "minimum": 0},
				"question":      bank.QuestionSchemaDefinition(),
				"userAnswer":    map[string]any{"type": []string{"integer", "string", "null"}},
			},
		}),
	},
}

var progressSchema = &validate.Schema{
	Name: "slot-user-progress",
	Definition: map[string]any{
		"type": "array",
		"items": pairOf(map[string]any{
			"type":     "object",
			"required": []string{"correct", "total", "completed"},
			"properties": map[string]any{
				"correct":   map[string]any{"type": "integer", "minimum": 0},
				"total":     map[string]any{"type": "integer", "minimum": 0},
				"completed": map[string]any{"type": "boolean"},
			},
		}),
	},
}

var currentQuizSchema = &validate.Schema{
	Name: "slot-current-quiz",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"tutorial":         map[string]any{"type": "string"},
			"incorrectAnswers": map[string]any{"type": "array"},
		},
	},
}

var historySchema = &validate.Schema{
	Name: "slot-attempt-history",
	Definition: map[string]any{
		"type": "array",
		"items": map[string]any{
			"type":     "object",
			"required": []string{"id", "tutorial", "score", "total", "gradedAt"},
			"properties": map[string]any{
				"id":        map[string]any{"type": "string"},
				"tutorial":  map[string]any{"type": "string"},
				"score":     map[string]any{"type": "integer", "minimum": 0},
				"total":     map[string]any{"type": "integer", "minimum": 0},
				"completed": map[string]any{"type": "boolean"},
				"mistakes":  map[string]any{"type": "integer", "minimum": 0},
				"gradedAt":  map[string]any{"type": "string"},
			},
		},
	},
}

var darkModeSchema = &validate.Schema{
	Name:       "slot-dark-mode",
	Definition: map[string]any{"type": "boolean"},
}
