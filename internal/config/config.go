// Package config loads application configuration from a YAML file and
// FINLEARN_* environment variables.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/finlearn/finlearn/internal/llm"
)

// Config holds all file- and env-sourced settings.
type Config struct {
	Database DatabaseConfig `mapstructure:"database"`
	Log      LogConfig      `mapstructure:"log"`
	LLM      LLMConfig      `mapstructure:"llm"`
	Tutor    TutorConfig    `mapstructure:"tutor"`
}

// DatabaseConfig holds the SQLite database location. An empty path
// means the FINLEARN_DB / XDG resolution in the store package applies.
type DatabaseConfig struct {
	Path string `mapstructure:"path"`
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// LLMConfig holds provider selection and model overrides. API keys are
// env-only and never read from the config file.
type LLMConfig struct {
	Provider string `mapstructure:"provider"`
	Model    string `mapstructure:"model"`
}

// TutorConfig holds tutor session options.
type TutorConfig struct {
	MaxTokens int `mapstructure:"max_tokens"`
}

// Load reads configuration from $XDG_CONFIG_HOME/finlearn/config.yaml
// (falling back to ~/.config/finlearn) and environment variables. A
// missing config file is not an error.
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	if dir := configDir(); dir != "" {
		v.AddConfigPath(dir)
	}
	v.AddConfigPath(".")

	setDefaults(v)

	v.SetEnvPrefix("FINLEARN")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("database.path", "")

	v.SetDefault("log.level", "warn")
	v.SetDefault("log.format", "text")

	v.SetDefault("llm.provider", "")
	v.SetDefault("llm.model", "")

	v.SetDefault("tutor.max_tokens", 1000)
}

func configDir() string {
	if base := os.Getenv("XDG_CONFIG_HOME"); base != "" {
		return filepath.Join(base, "finlearn")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "finlearn")
}

// ApplyLLM overlays file-level provider and model choices onto an
// env-discovered LLM config. Env values win over the file.
func (c *Config) ApplyLLM(base llm.Config) llm.Config {
	if c.LLM.Provider != "" && os.Getenv("FINLEARN_LLM_PROVIDER") == "" {
		base.Provider = c.LLM.Provider
	}
	if c.LLM.Model != "" {
		switch base.Provider {
		case "anthropic":
			if os.Getenv("FINLEARN_ANTHROPIC_MODEL") == "" {
				base.Anthropic.Model = c.LLM.Model
			}
		case "openai":
			if os.Getenv("FINLEARN_OPENAI_MODEL") == "" {
				base.OpenAI.Model = c.LLM.Model
			}
		case "gemini":
			if os.Getenv("FINLEARN_GEMINI_MODEL") == "" {
				base.Gemini.Model = c.LLM.Model
			}
		case "openrouter":
			if os.Getenv("FINLEARN_OPENROUTER_MODEL") == "" {
				base.OpenRouter.Model = c.LLM.Model
			}
		}
	}
	return base
}
