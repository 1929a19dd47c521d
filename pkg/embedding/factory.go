package embedding

import "fmt"

func NewProvider(providerType, openaiApiKey, geminiApiKey string) (EmbeddingProvider, error) {
	switch providerType {
	case "openai":
		if openaiApiKey == "" {
			return nil, fmt.Errorf("openai embedding provider requires an API key")
		}
		return NewOpenAIProvider(openaiApiKey), nil
	case "gemini":
		if geminiApiKey == "" {
			return nil, fmt.Errorf("gemini embedding provider requires an API key")
		}
		return NewGeminiProvider(geminiApiKey), nil
	default:
		return nil, fmt.Errorf("unsupported embedding provider: %s", providerType)
	}
}
