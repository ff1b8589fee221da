package ai

import "testing"

func TestConfigFromEnvDefaultsToMock(t *testing.T) {
	t.Setenv("EDUAI_BACKEND", "")
	cfg := ConfigFromEnv()
	if cfg.Backend != "mock" {
		t.Fatalf("default backend = %q, want mock", cfg.Backend)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("mock backend should validate without keys: %v", err)
	}
}

func TestConfigFromEnvOverrides(t *testing.T) {
	t.Setenv("EDUAI_BACKEND", "openai")
	t.Setenv("EDUAI_OPENAI_API_KEY", "sk-test")
	t.Setenv("EDUAI_OPENAI_MODEL", "gpt-4o")

	cfg := ConfigFromEnv()
	if cfg.Backend != "openai" {
		t.Errorf("backend = %q, want openai", cfg.Backend)
	}
	if cfg.OpenAI.APIKey != "sk-test" {
		t.Errorf("api key = %q", cfg.OpenAI.APIKey)
	}
	if cfg.OpenAI.Model != "gpt-4o" {
		t.Errorf("model = %q", cfg.OpenAI.Model)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate: %v", err)
	}
}

func TestValidateRejectsMissingKey(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Backend = "anthropic"
	if err := cfg.Validate(); err == nil {
		t.Error("anthropic backend without key should fail validation")
	}

	cfg.Backend = "nope"
	if err := cfg.Validate(); err == nil {
		t.Error("unknown backend should fail validation")
	}
}

func TestNewProviderMockByDefault(t *testing.T) {
	p, err := NewProvider(DefaultConfig())
	if err != nil {
		t.Fatalf("NewProvider: %v", err)
	}
	if p.ModelID() != "mock" {
		t.Errorf("ModelID = %q, want mock", p.ModelID())
	}
}
