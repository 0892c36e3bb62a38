package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/mathstudio/internal/llm"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(New(), "")
	require.NoError(t, err)

	assert.Equal(t, "", cfg.DB)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "console", cfg.Log.Format)
	assert.Equal(t, ":8080", cfg.Server.Addr)
	assert.Equal(t, 10*time.Second, cfg.Server.ShutdownTimeout)
	assert.True(t, cfg.Extension.Enabled)
	assert.InDelta(t, 0.3, cfg.Extension.Ratio, 1e-9)
	assert.Equal(t, llm.DefaultConfig(), cfg.LLM)
}

func TestLoad_Env(t *testing.T) {
	t.Setenv("MATHSTUDIO_DB", "/tmp/x.db")
	t.Setenv("MATHSTUDIO_SEED", "42")
	t.Setenv("MATHSTUDIO_SERVER_ADDR", "127.0.0.1:9000")
	t.Setenv("MATHSTUDIO_EXTENSION_RATIO", "0.5")
	t.Setenv("MATHSTUDIO_LLM_PROVIDER", "openrouter")
	t.Setenv("MATHSTUDIO_LLM_OPENROUTER_API_KEY", "sk-or")
	t.Setenv("MATHSTUDIO_LLM_RETRY_INITIAL_WAIT", "250ms")

	cfg, err := Load(New(), "")
	require.NoError(t, err)

	assert.Equal(t, "/tmp/x.db", cfg.DB)
	assert.Equal(t, uint64(42), cfg.Seed)
	assert.Equal(t, "127.0.0.1:9000", cfg.Server.Addr)
	assert.InDelta(t, 0.5, cfg.Extension.Ratio, 1e-9)
	assert.Equal(t, "openrouter", cfg.LLM.Provider)
	assert.Equal(t, "sk-or", cfg.LLM.OpenRouter.APIKey)
	assert.Equal(t, 250*time.Millisecond, cfg.LLM.Retry.InitialWait)
}

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mathstudio.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
log:
  level: debug
  format: json
server:
  mode: debug
extension:
  enabled: false
llm:
  provider: gemini
  gemini:
    model: gemini-pro
`), 0o600))

	t.Setenv("MATHSTUDIO_LOG_LEVEL", "warn")

	cfg, err := Load(New(), path)
	require.NoError(t, err)
	assert.Equal(t, "warn", cfg.Log.Level, "env overrides file")
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, "debug", cfg.Server.Mode)
	assert.False(t, cfg.Extension.Enabled)
	assert.Equal(t, "gemini", cfg.LLM.Provider)
	assert.Equal(t, "gemini-pro", cfg.LLM.Gemini.Model)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(New(), filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	base := func() *Config {
		cfg, err := Load(New(), "")
		require.NoError(t, err)
		return cfg
	}

	tests := []struct {
		name   string
		mutate func(c *Config)
	}{
		{"bad level", func(c *Config) { c.Log.Level = "loud" }},
		{"bad format", func(c *Config) { c.Log.Format = "xml" }},
		{"bad mode", func(c *Config) { c.Server.Mode = "prod" }},
		{"ratio below zero", func(c *Config) { c.Extension.Ratio = -0.1 }},
		{"ratio above one", func(c *Config) { c.Extension.Ratio = 1.5 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := base()
			tt.mutate(c)
			assert.Error(t, c.Validate())
		})
	}
}

func TestLoadDotEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(path, []byte("MATHSTUDIO_TEST_DOTENV=from-file\n"), 0o600))
	t.Cleanup(func() { os.Unsetenv("MATHSTUDIO_TEST_DOTENV") })

	require.NoError(t, LoadDotEnv(filepath.Join(dir, "missing.env"), path))
	assert.Equal(t, "from-file", os.Getenv("MATHSTUDIO_TEST_DOTENV"))
}
