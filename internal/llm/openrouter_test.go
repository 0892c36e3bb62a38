package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenRouterProvider_SendsAttribution(t *testing.T) {
	var header http.Header
	var model string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header = r.Header.Clone()
		var body struct {
			Model string `json:"model"`
		}
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		model = body.Model
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(chatCompletion(`{"problem_text":"3x = 21","correct_answer":"x=7"}`, "stop"))
	}))
	t.Cleanup(server.Close)

	p, err := NewOpenRouterProvider(OpenRouterConfig{
		APIKey:  "sk-or-test",
		Model:   "anthropic/claude-3-haiku",
		BaseURL: server.URL,
		AppName: "mathstudio",
		SiteURL: "https://mathstudio.example",
	})
	require.NoError(t, err)

	_, err = p.Generate(context.Background(), draftRequest())
	require.NoError(t, err)

	assert.Equal(t, "anthropic/claude-3-haiku", model, "model IDs pass through unchanged")
	assert.Equal(t, "mathstudio", header.Get("X-Title"))
	assert.Equal(t, "https://mathstudio.example", header.Get("HTTP-Referer"))
	assert.Equal(t, "Bearer sk-or-test", header.Get("Authorization"))
}

func TestNewOpenRouterProvider(t *testing.T) {
	_, err := NewOpenRouterProvider(OpenRouterConfig{Model: "google/gemini-2.0-flash-001"})
	assert.Error(t, err, "missing key")

	_, err = NewOpenRouterProvider(OpenRouterConfig{APIKey: "sk-or-test"})
	assert.Error(t, err, "missing model")

	p, err := NewOpenRouterProvider(OpenRouterConfig{APIKey: "sk-or-test", Model: "gpt-4o"})
	require.NoError(t, err)
	assert.Equal(t, "gpt-4o", p.ModelID(), "no alias mapping")
}
