package llm

import (
	"strings"
	"testing"
)

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr string
	}{
		{
			name:    "openai without key",
			cfg:     Config{Provider: "openai"},
			wantErr: "EDUTERM_OPENAI_API_KEY",
		},
		{
			name: "openai with key",
			cfg:  Config{Provider: "openai", OpenAI: OpenAIConfig{APIKey: "sk-test"}},
		},
		{
			name:    "anthropic without key",
			cfg:     Config{Provider: "anthropic"},
			wantErr: "EDUTERM_ANTHROPIC_API_KEY",
		},
		{
			name:    "gemini without key",
			cfg:     Config{Provider: "gemini"},
			wantErr: "EDUTERM_GEMINI_API_KEY",
		},
		{
			name: "mock needs no key",
			cfg:  Config{Provider: "mock"},
		},
		{
			name:    "unknown provider",
			cfg:     Config{Provider: "watson"},
			wantErr: "unknown completion provider",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Fatalf("err = %v, want containing %q", err, tt.wantErr)
			}
		})
	}
}

func TestConfigFromEnv(t *testing.T) {
	t.Setenv("EDUTERM_LLM_PROVIDER", "openrouter")
	t.Setenv("EDUTERM_OPENROUTER_API_KEY", "or-test")
	t.Setenv("EDUTERM_OPENROUTER_MODEL", "meta-llama/llama-3-8b")

	cfg := ConfigFromEnv()
	if cfg.Provider != "openrouter" {
		t.Errorf("provider = %q, want openrouter", cfg.Provider)
	}
	if cfg.OpenRouter.APIKey != "or-test" {
		t.Errorf("api key = %q", cfg.OpenRouter.APIKey)
	}
	if cfg.OpenRouter.Model != "meta-llama/llama-3-8b" {
		t.Errorf("model = %q", cfg.OpenRouter.Model)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("validate: %v", err)
	}
}

func TestDefaultConfigRetryIsSingleBoundedRetry(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Retry.MaxAttempts != 2 {
		t.Fatalf("MaxAttempts = %d, want 2", cfg.Retry.MaxAttempts)
	}
}

func TestResolveModel(t *testing.T) {
	if got := resolveModel("gemini-flash", geminiModels); got != "gemini-2.0-flash" {
		t.Errorf("friendly name resolved to %q", got)
	}
	if got := resolveModel("gemini-9.9-experimental", geminiModels); got != "gemini-9.9-experimental" {
		t.Errorf("direct model ID resolved to %q", got)
	}
}
