package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// clearEnv unsets the variables LoadConfig reads and restores them after the test.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"CONFIG_PATH", "OPENROUTER_API_KEY", "LLM_PROVIDER", "LLM_MODEL", "LLM_BASE_URL",
		"LLM_SERVER", "LLM_API_KEY", "LLM_TIMEOUT", "SERVER_PORT", "LOG_LEVEL", "ENV",
		"LOGGER_LEVEL", "LOGGER_ENV", "CORS_ALLOW_ORIGINS",
	} {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
}

func TestLoadConfig_Defaults(t *testing.T) {
	clearEnv(t)
	t.Chdir(t.TempDir())

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, 8000, cfg.Server.Port)
	assert.Equal(t, 60*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, ProviderOpenAI, cfg.LLM.Provider)
	assert.Equal(t, "openai/gpt-3.5-turbo", cfg.LLM.Model)
	assert.Equal(t, "https://openrouter.ai/api/v1", cfg.LLM.BaseURL)
	assert.Equal(t, time.Duration(0), cfg.LLM.Timeout)
	assert.Empty(t, cfg.LLM.APIKey)
	assert.Equal(t, "info", cfg.Logger.Level)
	assert.Equal(t, "*", cfg.CORS.AllowOrigins)
	assert.Equal(t, ":8000", cfg.Address())
}

func TestLoadConfig_FileAndEnvOverrides(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	t.Chdir(dir)

	writeFile(t, filepath.Join(dir, "config.yaml"), `
server:
  port: 9000
llm:
  provider: ollama
  model: llama3
  server: http://ollama:11434
  timeout: 30
logger:
  level: debug
`)
	t.Setenv("LLM_MODEL", "qwen3:0.6b")
	t.Setenv("OPENROUTER_API_KEY", "secret")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, 9000, cfg.Server.Port)
	assert.Equal(t, ProviderOllama, cfg.LLM.Provider)
	assert.Equal(t, "qwen3:0.6b", cfg.LLM.Model)
	assert.Equal(t, "http://ollama:11434", cfg.LLM.Server)
	assert.Equal(t, 30*time.Second, cfg.LLM.Timeout)
	assert.Equal(t, "secret", cfg.LLM.APIKey)
	assert.Equal(t, "debug", cfg.Logger.Level)
}

func TestLoadConfig_ExplicitConfigPath(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	t.Chdir(t.TempDir())

	path := filepath.Join(dir, "custom.yaml")
	writeFile(t, path, "server:\n  port: 8123\n")
	t.Setenv("CONFIG_PATH", path)

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, 8123, cfg.Server.Port)
}

func TestLoadConfig_DotEnv(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	t.Chdir(dir)

	writeFile(t, filepath.Join(dir, ".env"), "OPENROUTER_API_KEY=from-dotenv\nLLM_PROVIDER=OLLAMA\n")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "from-dotenv", cfg.LLM.APIKey)
	assert.Equal(t, ProviderOllama, cfg.LLM.Provider)
}

func TestLoadConfig_Invalid(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
		want string
	}{
		{"unknown provider", map[string]string{"LLM_PROVIDER": "gemini"}, "unsupported llm provider"},
		{"bad port", map[string]string{"SERVER_PORT": "70000"}, "invalid server port"},
		{"bad base url", map[string]string{"LLM_BASE_URL": "not a url"}, "invalid llm base url"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			t.Chdir(t.TempDir())
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			cfg, err := LoadConfig()
			assert.Nil(t, cfg)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestLoadConfig_MalformedFile(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	t.Chdir(dir)
	writeFile(t, filepath.Join(dir, "config.yaml"), "server: [unclosed")

	_, err := LoadConfig()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestLoadConfig_ServerPortFromEnvironment(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	t.Chdir(dir)

	writeFile(t, filepath.Join(dir, "config.yaml"), "server:\n  port: 9000\n")
	t.Setenv("SERVER_PORT", "9100")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, 9100, cfg.Server.Port)
	assert.Equal(t, ":9100", cfg.Address())
}

func TestLoad_DoesNotValidate(t *testing.T) {
	clearEnv(t)
	t.Chdir(t.TempDir())
	t.Setenv("LLM_PROVIDER", "Gemini")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "gemini", cfg.LLM.Provider)
	assert.Error(t, cfg.Validate())
}
