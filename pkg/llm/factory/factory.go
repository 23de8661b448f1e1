package factory

import (
	"fmt"

	"vendai-assistant-be/pkg/llm"
	"vendai-assistant-be/pkg/llm/deepseek"
	"vendai-assistant-be/pkg/llm/ollama"
)

// Config carries the per-provider connection settings. Each provider reads
// only its own base URL so switching providers never points one at the
// other's address.
type Config struct {
	Provider        string
	Model           string
	OllamaBaseURL   string
	DeepSeekBaseURL string
	DeepSeekAPIKey  string
}

func NewLLMProvider(cfg Config) (llm.LLMProvider, error) {
	switch cfg.Provider {
	case "ollama":
		baseURL := cfg.OllamaBaseURL
		if baseURL == "" {
			baseURL = "http://localhost:11434"
		}
		return ollama.NewProvider(baseURL, cfg.Model), nil
	case "deepseek":
		return deepseek.NewDeepSeekProvider(cfg.DeepSeekAPIKey, cfg.DeepSeekBaseURL, cfg.Model), nil
	default:
		return nil, fmt.Errorf("unsupported LLM provider: %s", cfg.Provider)
	}
}
