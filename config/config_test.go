package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Run("DefaultConfig", func(t *testing.T) {
		for _, key := range []string{"DATE_ENABLE_LLM_EXPAND", "DATE_LLM_MODEL", "DATE_ENABLE_ACTION", "AI_PLUGIN", "HOLIDAY_CACHE_BACKEND"} {
			t.Setenv(key, "")
			os.Unsetenv(key)
		}

		cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
		require.NoError(t, err)

		assert.True(t, cfg.Plugin.Enabled)
		assert.Equal(t, "1.0.0", cfg.Plugin.ConfigVersion)
		assert.False(t, cfg.Date.EnableLLMExpand)
		assert.Equal(t, "replyer", cfg.Date.LLMModel)
		assert.True(t, cfg.Date.EnableAction)
		assert.Equal(t, "file", cfg.Holiday.CacheBackend)
		assert.Equal(t, "data/holidays", cfg.Holiday.CacheDir)
		assert.Contains(t, cfg.Holiday.SourceURL, "{year}")
		assert.Equal(t, "ollama", cfg.AI.Plugin)
		assert.Equal(t, ":8000", cfg.Server.Addr)
	})

	t.Run("EnvironmentVariables", func(t *testing.T) {
		t.Setenv("DATE_ENABLE_LLM_EXPAND", "true")
		t.Setenv("DATE_LLM_MODEL", "planner")
		t.Setenv("DATE_ENABLE_ACTION", "false")

		cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
		require.NoError(t, err)
		assert.True(t, cfg.Date.EnableLLMExpand)
		assert.Equal(t, "planner", cfg.Date.LLMModel)
		assert.False(t, cfg.Date.EnableAction)
	})

	t.Run("YAMLFile", func(t *testing.T) {
		os.Unsetenv("DATE_LLM_MODEL")
		path := filepath.Join(t.TempDir(), "config.yaml")
		content := "date:\n  llm_model: summarizer\nholiday:\n  cache_backend: sqlite\n  dsn: /tmp/h.db\n"
		require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

		cfg, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, "summarizer", cfg.Date.LLMModel)
		assert.Equal(t, "sqlite", cfg.Holiday.CacheBackend)
		assert.Equal(t, "/tmp/h.db", cfg.Holiday.DSN)
		assert.True(t, cfg.Date.EnableAction)
	})

	t.Run("YAMLDisablesSwitches", func(t *testing.T) {
		os.Unsetenv("DATEAWARE_ENABLED")
		os.Unsetenv("DATE_ENABLE_ACTION")
		path := filepath.Join(t.TempDir(), "config.yaml")
		content := "plugin:\n  enabled: false\ndate:\n  enable_action: false\n"
		require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

		cfg, err := Load(path)
		require.NoError(t, err)
		assert.False(t, cfg.Plugin.Enabled)
		assert.False(t, cfg.Date.EnableAction)
		assert.Equal(t, "replyer", cfg.Date.LLMModel)
	})

	t.Run("EnvOverridesFileSwitch", func(t *testing.T) {
		t.Setenv("DATE_ENABLE_ACTION", "false")
		path := filepath.Join(t.TempDir(), "config.yaml")
		require.NoError(t, os.WriteFile(path, []byte("date:\n  enable_action: true\n"), 0o600))

		cfg, err := Load(path)
		require.NoError(t, err)
		assert.False(t, cfg.Date.EnableAction)
		assert.True(t, cfg.Plugin.Enabled)
	})

	t.Run("MalformedFile", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yaml")
		require.NoError(t, os.WriteFile(path, []byte("date: [unclosed"), 0o600))

		_, err := Load(path)
		assert.Error(t, err)
	})
}
