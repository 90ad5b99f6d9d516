package llmgateway

import (
	"context"
	"fmt"
	"strings"
)

// Provider names accepted by NewProvider.
const (
	ProviderOpenAI = "openai"
	ProviderOllama = "ollama"
	ProviderGemini = "gemini"
)

// ProviderConfig selects and configures one provider.
type ProviderConfig struct {
	Name     string
	APIKey   string
	BaseURL  string
	Thinking bool
}

// NewProvider builds the provider named by cfg.Name.
func NewProvider(ctx context.Context, cfg ProviderConfig) (Provider, error) {
	switch name := strings.ToLower(strings.TrimSpace(cfg.Name)); name {
	case ProviderOpenAI:
		return NewOpenAI(OpenAIConfig{APIKey: cfg.APIKey, BaseURL: cfg.BaseURL})
	case ProviderOllama:
		return NewOllama(OllamaConfig{BaseURL: cfg.BaseURL})
	case ProviderGemini:
		return NewGemini(ctx, GeminiConfig{APIKey: cfg.APIKey, Thinking: cfg.Thinking})
	default:
		return nil, fmt.Errorf("unknown provider %q", cfg.Name)
	}
}
