package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

// DefaultPath is the config file consulted when no explicit path is given
const DefaultPath = "config.yaml"

// Config aggregates all application configuration
type Config struct {
	Plugin  PluginConfig  `yaml:"plugin"`
	Date    DateConfig    `yaml:"date"`
	Holiday HolidayConfig `yaml:"holiday"`
	AI      AIConfig      `yaml:"ai"`
	Server  ServerConfig  `yaml:"server"`
	Log     LogConfig     `yaml:"log"`
}

type PluginConfig struct {
	Enabled       bool   `yaml:"enabled" env:"DATEAWARE_ENABLED"`
	ConfigVersion string `yaml:"config_version" env-default:"1.0.0"`
}

// DateConfig holds the three user-facing switches of the add-on
type DateConfig struct {
	EnableLLMExpand bool   `yaml:"enable_llm_expand" env:"DATE_ENABLE_LLM_EXPAND" env-default:"false"`
	LLMModel        string `yaml:"llm_model" env:"DATE_LLM_MODEL" env-default:"replyer"`
	EnableAction    bool   `yaml:"enable_action" env:"DATE_ENABLE_ACTION"`
}

type HolidayConfig struct {
	SourceURL      string `yaml:"source_url" env:"HOLIDAY_SOURCE_URL" env-default:"https://unpkg.com/holiday-calendar@1.3.0/data/CN/{year}.json"`
	CacheBackend   string `yaml:"cache_backend" env:"HOLIDAY_CACHE_BACKEND" env-default:"file"`
	CacheDir       string `yaml:"cache_dir" env:"HOLIDAY_CACHE_DIR" env-default:"data/holidays"`
	DSN            string `yaml:"dsn" env:"HOLIDAY_DSN" env-default:"data/holidays.db"`
	TimeoutSeconds int    `yaml:"timeout_seconds" env:"HOLIDAY_TIMEOUT" env-default:"0"`
}

type AIConfig struct {
	Plugin string       `yaml:"plugin" env:"AI_PLUGIN" env-default:"ollama"`
	Gemini GeminiConfig `yaml:"gemini"`
	Ollama OllamaConfig `yaml:"ollama"`
	Compat CompatConfig `yaml:"compat"`
}

type GeminiConfig struct {
	APIKey string `yaml:"api_key" env:"GEMINI_API_KEY"`
	Model  string `yaml:"model" env:"GEMINI_MODEL" env-default:"gemini-2.5-flash"`
}

type OllamaConfig struct {
	Model   string `yaml:"model" env:"OLLAMA_MODEL" env-default:"qwen3:4b"`
	BaseURL string `yaml:"base_url" env:"OLLAMA_BASE_URL" env-default:"http://localhost:11434"`
}

// CompatConfig describes any OpenAI-compatible endpoint (DeepSeek, Qwen, Z.ai, ...)
type CompatConfig struct {
	Provider string `yaml:"provider" env:"COMPAT_PROVIDER" env-default:"compat"`
	APIKey   string `yaml:"api_key" env:"COMPAT_API_KEY"`
	BaseURL  string `yaml:"base_url" env:"COMPAT_BASE_URL"`
	Model    string `yaml:"model" env:"COMPAT_MODEL"`
}

type ServerConfig struct {
	Addr string `yaml:"addr" env:"DATEAWARE_ADDR" env-default:":8000"`
}

type LogConfig struct {
	Level string `yaml:"level" env:"LOG_LEVEL" env-default:"info"`
}

// defaults seeds the switches that are on unless turned off. cleanenv
// re-applies env-default to zero fields, so a default of true would
// override an explicit false from the file.
func defaults() Config {
	return Config{
		Plugin: PluginConfig{Enabled: true},
		Date:   DateConfig{EnableAction: true},
	}
}

// Load reads configuration from path (DefaultPath when empty) and environment variables.
// Priority: Env Vars > Config File > Defaults. A missing file is not an error.
func Load(path string) (*Config, error) {
	if path == "" {
		path = DefaultPath
	}

	cfg := defaults()
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return nil, fmt.Errorf("failed to read env config: %w", err)
		}
		return &cfg, nil
	}

	if err := cleanenv.ReadConfig(path, &cfg); err != nil {
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	return &cfg, nil
}
