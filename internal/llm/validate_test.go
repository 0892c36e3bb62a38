package llm

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testSchema() *Schema {
	return &Schema{
		Name:        "test-draft",
		Description: "A drafted problem",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"problem_text":   map[string]any{"type": "string", "minLength": 1},
				"correct_answer": map[string]any{"type": "string"},
				"tier":           map[string]any{"type": "string", "enum": []any{"easy", "normal", "hard", "expert"}},
				"hints": map[string]any{
					"type":     "array",
					"items":    map[string]any{"type": "string"},
					"minItems": 1,
				},
			},
			"required": []any{"problem_text", "correct_answer"},
		},
	}
}

func TestDecodeContent(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		want    string
		wantErr bool
	}{
		{"valid", `{"problem_text":"3x = 21","correct_answer":"7","tier":"easy","hints":["÷3"]}`,
			`{"problem_text":"3x = 21","correct_answer":"7","tier":"easy","hints":["÷3"]}`, false},
		{"without optional", `{"problem_text":"3x = 21","correct_answer":"7"}`, `{"problem_text":"3x = 21","correct_answer":"7"}`, false},
		{"fenced", "```json\n{\"problem_text\":\"3x = 21\",\"correct_answer\":\"7\"}\n```", `{"problem_text":"3x = 21","correct_answer":"7"}`, false},
		{"bare fence", "```\n{\"problem_text\":\"3x = 21\",\"correct_answer\":\"7\"}```", `{"problem_text":"3x = 21","correct_answer":"7"}`, false},
		{"missing required", `{"problem_text":"3x = 21"}`, "", true},
		{"wrong type", `{"problem_text":"3x = 21","correct_answer":7}`, "", true},
		{"invalid enum", `{"problem_text":"3x = 21","correct_answer":"7","tier":"legendary"}`, "", true},
		{"empty hints", `{"problem_text":"3x = 21","correct_answer":"7","hints":[]}`, "", true},
		{"empty text", `{"problem_text":"","correct_answer":"7"}`, "", true},
		{"malformed", `{not json}`, "", true},
		{"empty", ``, "", true},
		{"prose", `Here is a problem: 3x = 21`, "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := decodeContent(testSchema(), tt.text)
			if !tt.wantErr {
				require.NoError(t, err)
				assert.JSONEq(t, tt.want, string(got))
				return
			}

			require.ErrorIs(t, err, ErrInvalidResponse)
			var e *Error
			require.True(t, errors.As(err, &e))
			assert.Equal(t, tt.text, string(e.Content), "the original reply is kept")
		})
	}
}

func TestDecodeContent_NoSchema(t *testing.T) {
	got, err := decodeContent(nil, "```json\nplain text\n```")
	require.NoError(t, err)
	assert.Equal(t, "```json\nplain text\n```", string(got), "text passes through untouched")
}

func TestDecodeContent_NestedObjects(t *testing.T) {
	schema := &Schema{
		Name: "test-nested",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"params": map[string]any{
					"type":       "object",
					"properties": map[string]any{"a": map[string]any{"type": "integer"}},
					"required":   []any{"a"},
				},
				"chips": map[string]any{"type": "array", "items": map[string]any{"type": "string"}},
			},
			"required": []any{"params", "chips"},
		},
	}

	_, err := decodeContent(schema, `{"params":{"a":3},"chips":["x","=","7"]}`)
	assert.NoError(t, err)

	_, err = decodeContent(schema, `{"params":{"a":3.5},"chips":["x"]}`)
	assert.ErrorIs(t, err, ErrInvalidResponse, "3.5 is not an integer")

	_, err = decodeContent(schema, `{"params":{"a":3},"chips":[1,2]}`)
	assert.ErrorIs(t, err, ErrInvalidResponse)
}

func TestSchema_CompiledOnce(t *testing.T) {
	s := testSchema()
	first, err := s.compiled()
	require.NoError(t, err)
	second, err := s.compiled()
	require.NoError(t, err)
	assert.Same(t, first, second)

	// Same name, different definition: each Schema compiles its own.
	other := &Schema{Name: s.Name, Definition: map[string]any{"type": "string"}}
	_, err = decodeContent(other, `"just a string"`)
	assert.NoError(t, err)
}

func TestSchema_BadDefinition(t *testing.T) {
	s := &Schema{Name: "broken", Definition: map[string]any{"type": 12}}
	_, err := decodeContent(s, `{}`)
	assert.ErrorIs(t, err, ErrInvalidResponse)
}
