package llm

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// compiled returns the schema compiled once per Schema value.
func (s *Schema) compiled() (*jsonschema.Schema, error) {
	s.once.Do(func() {
		s.compiledSchema, s.compileErr = compileSchema(s)
	})
	return s.compiledSchema, s.compileErr
}

func compileSchema(s *Schema) (*jsonschema.Schema, error) {
	raw, err := json.Marshal(s.Definition)
	if err != nil {
		return nil, fmt.Errorf("marshal schema %q: %w", s.Name, err)
	}
	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("parse schema %q: %w", s.Name, err)
	}

	loc := "mem://llm/" + s.Name + ".json"
	c := jsonschema.NewCompiler()
	if err := c.AddResource(loc, doc); err != nil {
		return nil, fmt.Errorf("add schema %q: %w", s.Name, err)
	}
	return c.Compile(loc)
}

// decodeContent turns model text into Response content. Without a schema
// the text is passed through. With one, a surrounding Markdown code fence
// is dropped and the JSON must satisfy the schema.
func decodeContent(schema *Schema, text string) (json.RawMessage, error) {
	if schema == nil {
		return json.RawMessage(text), nil
	}

	body := stripCodeFence(text)
	inst, err := jsonschema.UnmarshalJSON(strings.NewReader(body))
	if err != nil {
		return nil, invalidResponse(json.RawMessage(text), fmt.Errorf("not JSON: %w", err))
	}

	compiled, err := schema.compiled()
	if err != nil {
		return nil, invalidResponse(json.RawMessage(text), err)
	}
	if err := compiled.Validate(inst); err != nil {
		return nil, invalidResponse(json.RawMessage(text), fmt.Errorf("schema %q: %w", schema.Name, err))
	}
	return json.RawMessage(body), nil
}

// stripCodeFence removes a ```json ... ``` wrapper.
func stripCodeFence(s string) string {
	s = strings.TrimSpace(s)
	rest, ok := strings.CutPrefix(s, "```")
	if !ok {
		return s
	}
	// Drop the info string ("json") on the opening line.
	_, rest, ok = strings.Cut(rest, "\n")
	if !ok {
		return s
	}
	rest = strings.TrimSpace(rest)
	rest = strings.TrimSuffix(rest, "```")
	return strings.TrimSpace(rest)
}
