package llm

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// Provider sends one prompt to a model and returns its reply.
type Provider interface {
	// Generate runs req. When req.Schema is set the reply is requested in
	// the provider's structured-output mode and checked against the schema
	// before it is returned. Failures of the call itself are *Error.
	Generate(ctx context.Context, req Request) (*Response, error)

	// ModelID is the model requests are sent to.
	ModelID() string
}

// Request is a single-turn or short multi-turn prompt.
type Request struct {
	System   string
	Messages []Message

	// Schema, when set, asks for JSON matching it.
	Schema *Schema

	MaxTokens int

	// Temperature in [0, 1]. Zero leaves the provider default.
	Temperature float64
}

type Message struct {
	Role    Role
	Content string
}

type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Schema is a JSON Schema for structured replies. Use it by pointer: the
// compiled form is cached on first use.
type Schema struct {
	// Name is sent as the tool or schema name, kebab-case.
	Name        string
	Description string
	Definition  map[string]any

	once           sync.Once
	compiledSchema *jsonschema.Schema
	compileErr     error
}

type Response struct {
	// Content is the reply. With a schema it is the validated JSON
	// object, otherwise the raw text.
	Content json.RawMessage
	Usage   Usage

	// Model is the model that actually served the request, which gateways
	// may report differently from ModelID.
	Model string

	// StopReason is StopEnd or StopMaxTokens.
	StopReason string
}

// Normalized stop reasons.
const (
	StopEnd       = "end"
	StopMaxTokens = "max_tokens"
)

type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}

func newUsage(in, out int) Usage {
	return Usage{InputTokens: in, OutputTokens: out, TotalTokens: in + out}
}

// finishContent decodes model text once generation stopped. A structured
// reply cut off at the token limit cannot be valid JSON, so it is reported
// as truncated rather than invalid.
func finishContent(schema *Schema, text, stop string) (json.RawMessage, error) {
	if schema != nil && stop == StopMaxTokens {
		return nil, truncated(json.RawMessage(text))
	}
	return decodeContent(schema, text)
}
