package ai

import "fmt"

// NewProvider creates a Provider from configuration, wrapped with retry
// middleware. The mock backend is returned bare so tests and the default
// offline mode stay deterministic.
func NewProvider(cfg Config) (Provider, error) {
	var base Provider
	var err error

	switch cfg.Backend {
	case "openai":
		base, err = NewOpenAIProvider(cfg.OpenAI)
	case "anthropic":
		base, err = NewAnthropicProvider(cfg.Anthropic)
	case "mock", "":
		return NewMockProvider(), nil
	default:
		return nil, fmt.Errorf("unknown AI backend: %q", cfg.Backend)
	}
	if err != nil {
		return nil, fmt.Errorf("initializing %s backend: %w", cfg.Backend, err)
	}

	return WithRetry(base, cfg.Retry), nil
}
