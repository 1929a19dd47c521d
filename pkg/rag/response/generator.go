package response

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"woodshop-assistant-be/internal/constant"
	"woodshop-assistant-be/pkg/llm"
	"woodshop-assistant-be/pkg/rag/classifier"
)

// Generator produces the streamed assistant answer. One strategy per
// relevance label; only RELEVANT consumes retrieved context.
type Generator struct {
	llmProvider llm.LLMProvider
	logger      *log.Logger
}

func NewGenerator(llmProvider llm.LLMProvider, logger *log.Logger) *Generator {
	return &Generator{
		llmProvider: llmProvider,
		logger:      logger,
	}
}

// Generate streams the answer token by token through onToken and returns the
// accumulated full text. INAPPROPRIATE never reaches the model: the fixed
// refusal is emitted as-is, so its exact wording is guaranteed.
func (g *Generator) Generate(
	ctx context.Context,
	label classifier.Label,
	question string,
	contextBlock string,
	history []llm.Message,
	onToken llm.TokenFunc,
) (string, error) {
	switch label {
	case classifier.LabelInappropriate:
		if err := onToken(constant.InappropriateReply); err != nil {
			return "", err
		}
		return constant.InappropriateReply, nil

	case classifier.LabelGreeting:
		prompt := fmt.Sprintf(constant.GreetingPromptTemplate, question)
		return g.llmProvider.ChatStream(ctx,
			[]llm.Message{{Role: constant.ChatMessageRoleUser, Content: prompt}},
			onToken,
		)

	case classifier.LabelNotRelevant:
		prompt := fmt.Sprintf(constant.NotRelevantPromptTemplate, question)
		return g.llmProvider.ChatStream(ctx,
			[]llm.Message{{Role: constant.ChatMessageRoleUser, Content: prompt}},
			onToken,
		)

	default:
		return g.generateRelevant(ctx, question, contextBlock, history, onToken)
	}
}

func (g *Generator) generateRelevant(
	ctx context.Context,
	question string,
	contextBlock string,
	history []llm.Message,
	onToken llm.TokenFunc,
) (string, error) {
	windowed := history
	if len(windowed) > constant.HistoryWindow {
		windowed = windowed[len(windowed)-constant.HistoryWindow:]
	}

	userPrompt := fmt.Sprintf(
		"Context:\n%s\n\nChat History: %s\n\nQuestion: %s",
		contextBlock, marshalHistory(windowed), question,
	)

	messages := []llm.Message{
		{Role: constant.ChatMessageRoleSystem, Content: constant.SystemInstructions},
		{Role: constant.ChatMessageRoleUser, Content: userPrompt},
	}

	full, err := g.llmProvider.ChatStream(ctx, messages, onToken)
	if err != nil {
		return "", fmt.Errorf("answer generation failed: %w", err)
	}

	g.logger.Printf("[RESPONSE] Generated %d characters", len(full))
	return full, nil
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
