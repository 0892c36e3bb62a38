package problemgen

import "github.com/abhisek/mathstudio/internal/llm"

// DraftSchema defines the JSON schema for LLM problem drafting responses.
var DraftSchema = &llm.Schema{
	Name:        "math-problem",
	Description: "A single middle-school math practice problem with accepted answers and hints",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"problem_text": map[string]any{
				"type":        "string",
				"minLength":   1,
				"description": "The problem statement shown to the learner, in Japanese",
			},
			"correct_answer": map[string]any{
				"type":        "string",
				"minLength":   1,
				"description": "The preferred answer using only digits, x, y, a, π, ≦ and + - * / = . , ( )",
			},
			"answer_variants": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "string",
				},
				"description": "Other spellings of the same answer a learner may type, e.g. with spaces or units",
			},
			"hints": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "string",
				},
				"minItems":    1,
				"maxItems":    4,
				"description": "Hints that reveal the solution step by step, first hint least revealing",
			},
			"chips": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "string",
				},
				"description": "Symbols and numbers useful for building the answer on a keypad",
			},
		},
		"required":             []any{"problem_text", "correct_answer", "answer_variants", "hints", "chips"},
		"additionalProperties": false,
	},
}
