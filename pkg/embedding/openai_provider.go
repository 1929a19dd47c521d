package embedding

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

const (
	openaiEmbeddingEndpoint = "https://api.openai.com/v1/embeddings"
	openaiEmbeddingModel    = "text-embedding-ada-002"
	openaiEmbeddingDim      = 1536
)

type OpenAIProvider struct {
	ApiKey string
	Client *http.Client
}

func NewOpenAIProvider(apiKey string) EmbeddingProvider {
	return &OpenAIProvider{
		ApiKey: apiKey,
		Client: &http.Client{},
	}
}

type openaiEmbeddingRequest struct {
	Model string `json:"model"`
	Input string `json:"input"`
}

type openaiEmbeddingResponse struct {
	Data []struct {
		Embedding []float32 `json:"embedding"`
	} `json:"data"`
}

func (p *OpenAIProvider) Embed(ctx context.Context, text string) ([]float32, error) {
	reqJson, err := json.Marshal(openaiEmbeddingRequest{
		Model: openaiEmbeddingModel,
		Input: text,
	})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, "POST", openaiEmbeddingEndpoint, bytes.NewBuffer(reqJson))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+p.ApiKey)
	req.Header.Set("Content-Type", "application/json")

	res, err := p.Client.Do(req)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	resByte, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, err
	}

	if res.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("error from openai embedding response, code %d, body %s", res.StatusCode, string(resByte))
	}

	var embeddingRes openaiEmbeddingResponse
	if err := json.Unmarshal(resByte, &embeddingRes); err != nil {
		return nil, err
	}
	if len(embeddingRes.Data) == 0 {
		return nil, fmt.Errorf("openai embedding response contained no data")
	}

	return embeddingRes.Data[0].Embedding, nil
}

func (p *OpenAIProvider) Dimension() int {
	return openaiEmbeddingDim
}
