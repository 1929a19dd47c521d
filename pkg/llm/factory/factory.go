package factory

import (
	"fmt"

	"woodshop-assistant-be/pkg/llm"
	"woodshop-assistant-be/pkg/llm/ollama"
	"woodshop-assistant-be/pkg/llm/openai"
)

func NewLLMProvider(providerType, modelName, baseURL, openaiApiKey string) (llm.LLMProvider, error) {
	switch providerType {
	case "openai":
		if openaiApiKey == "" {
			return nil, fmt.Errorf("openai provider requires an API key")
		}
		return openai.NewOpenAIProvider(openaiApiKey, modelName), nil
	case "ollama":
		if baseURL == "" {
			baseURL = "http://localhost:11434" // Default
		}
		return ollama.NewOllamaProvider(baseURL, modelName), nil
	default:
		return nil, fmt.Errorf("unsupported LLM provider: %s", providerType)
	}
}
