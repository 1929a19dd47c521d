package rewrite

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"

	"woodshop-assistant-be/internal/constant"
	"woodshop-assistant-be/pkg/llm"
)

// Rewriter turns a raw question into a search-optimized query. It must never
// abort the pipeline: every failure falls back to the original question.
type Rewriter struct {
	llmProvider llm.LLMProvider
	logger      *log.Logger
}

func NewRewriter(llmProvider llm.LLMProvider, logger *log.Logger) *Rewriter {
	return &Rewriter{
		llmProvider: llmProvider,
		logger:      logger,
	}
}

// Rewrite consults the model with the full history (no windowing here).
func (r *Rewriter) Rewrite(ctx context.Context, query string, history []llm.Message) string {
	prompt := fmt.Sprintf(constant.RewritePromptTemplate, query, marshalHistory(history))

	raw, err := r.llmProvider.Chat(ctx,
		[]llm.Message{{Role: constant.ChatMessageRoleUser, Content: prompt}},
		llm.WithTemperature(0),
	)
	if err != nil {
		r.logger.Printf("[REWRITE] Falling back to original query: %v", err)
		return query
	}

	rewritten := strings.TrimSpace(strings.ReplaceAll(raw, constant.RewriteEchoPrefix, ""))
	if rewritten == "" {
		r.logger.Printf("[REWRITE] Empty rewrite, falling back to original query")
		return query
	}

	return rewritten
}

func marshalHistory(history []llm.Message) string {
	type turn struct {
		Role    string `json:"role"`
		Content string `json:"content"`
	}
	turns := make([]turn, len(history))
	for i, m := range history {
		turns[i] = turn{Role: m.Role, Content: m.Content}
	}
	data, err := json.Marshal(turns)
	if err != nil {
		return "[]"
	}
	return string(data)
}
