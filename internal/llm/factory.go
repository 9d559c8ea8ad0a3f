package llm

import (
	"fmt"

	"github.com/olprint/backoffice/internal/config"
	"github.com/olprint/backoffice/internal/llm/generate"
	"github.com/olprint/backoffice/internal/types"
)

// ErrMissingAPIKey is returned when the provider needs a credential that is not configured.
var ErrMissingAPIKey = generate.ErrMissingAPIKey

// NewGenerator creates a generator based on configuration
func NewGenerator(cfg *config.LLMConfig) (types.Generator, error) {
	p := cfg.Generator
	switch p.Provider {
	case "gemini", "":
		g, err := generate.NewGeminiGenerator(p.Model, p.APIKeyEnv, p.APIKey)
		if err != nil {
			return nil, err
		}
		return g.WithBaseURL(p.BaseURL), nil
	case "openai":
		g, err := generate.NewOpenAIGenerator(p.Model, p.APIKeyEnv, p.APIKey)
		if err != nil {
			return nil, err
		}
		return g.WithBaseURL(p.BaseURL), nil
	case "anthropic":
		g, err := generate.NewAnthropicGenerator(p.Model, p.APIKeyEnv, p.APIKey)
		if err != nil {
			return nil, err
		}
		return g.WithBaseURL(p.BaseURL), nil
	case "mock":
		return generate.NewMockGenerator(p.Model), nil
	default:
		return nil, fmt.Errorf("unsupported generator provider: %s", p.Provider)
	}
}
