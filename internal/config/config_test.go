package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/finlearn/finlearn/internal/llm"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Log.Level != "warn" {
		t.Errorf("Log.Level = %q, want %q", cfg.Log.Level, "warn")
	}
	if cfg.Tutor.MaxTokens != 1000 {
		t.Errorf("Tutor.MaxTokens = %d, want 1000", cfg.Tutor.MaxTokens)
	}
	if cfg.Database.Path != "" {
		t.Errorf("Database.Path = %q, want empty", cfg.Database.Path)
	}
}

func TestLoadFromFile(t *testing.T) {
	base := t.TempDir()
	dir := filepath.Join(base, "finlearn")
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatal(err)
	}
	yaml := "database:\n  path: /tmp/custom.db\nlog:\n  level: debug\nllm:\n  provider: openai\n"
	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(yaml), 0644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("XDG_CONFIG_HOME", base)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Database.Path != "/tmp/custom.db" {
		t.Errorf("Database.Path = %q", cfg.Database.Path)
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("Log.Level = %q", cfg.Log.Level)
	}
	if cfg.LLM.Provider != "openai" {
		t.Errorf("LLM.Provider = %q", cfg.LLM.Provider)
	}
}

func TestLoadEnvOverridesFile(t *testing.T) {
	base := t.TempDir()
	dir := filepath.Join(base, "finlearn")
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatal(err)
	}
	yaml := "log:\n  level: debug\n"
	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(yaml), 0644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("XDG_CONFIG_HOME", base)
	t.Setenv("FINLEARN_LOG_LEVEL", "error")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Log.Level != "error" {
		t.Errorf("Log.Level = %q, want %q", cfg.Log.Level, "error")
	}
}

func TestApplyLLM(t *testing.T) {
	t.Setenv("FINLEARN_LLM_PROVIDER", "")
	t.Setenv("FINLEARN_OPENAI_MODEL", "")

	cfg := &Config{LLM: LLMConfig{Provider: "openai", Model: "gpt-4o"}}
	got := cfg.ApplyLLM(llm.DefaultConfig())

	if got.Provider != "openai" {
		t.Errorf("Provider = %q, want %q", got.Provider, "openai")
	}
	if got.OpenAI.Model != "gpt-4o" {
		t.Errorf("OpenAI.Model = %q, want %q", got.OpenAI.Model, "gpt-4o")
	}
}

func TestApplyLLMEnvWins(t *testing.T) {
	t.Setenv("FINLEARN_LLM_PROVIDER", "anthropic")

	cfg := &Config{LLM: LLMConfig{Provider: "openai"}}
	base := llm.DefaultConfig()
	base.Provider = "anthropic"
	got := cfg.ApplyLLM(base)

	if got.Provider != "anthropic" {
		t.Errorf("Provider = %q, want %q", got.Provider, "anthropic")
	}
}
