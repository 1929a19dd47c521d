package classifier

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"

	"woodshop-assistant-be/internal/constant"
	"woodshop-assistant-be/pkg/llm"
)

// Label is the relevance category of an incoming question
type Label string

const (
	LabelGreeting      Label = "GREETING"
	LabelRelevant      Label = "RELEVANT"
	LabelInappropriate Label = "INAPPROPRIATE"
	LabelNotRelevant   Label = "NOT_RELEVANT"
)

// Classifier maps a question plus recent history to a Label
type Classifier struct {
	llmProvider llm.LLMProvider
	logger      *log.Logger
}

func NewClassifier(llmProvider llm.LLMProvider, logger *log.Logger) *Classifier {
	return &Classifier{
		llmProvider: llmProvider,
		logger:      logger,
	}
}

// Classify consults the model with the last few history turns. A model-call
// failure propagates; an unrecognized answer is coerced, not rejected.
func (c *Classifier) Classify(ctx context.Context, question string, history []llm.Message) (Label, error) {
	windowed := history
	if len(windowed) > constant.HistoryWindow {
		windowed = windowed[len(windowed)-constant.HistoryWindow:]
	}

	prompt := fmt.Sprintf(constant.RelevancePromptTemplate, marshalHistory(windowed), question)

	raw, err := c.llmProvider.Chat(ctx,
		[]llm.Message{{Role: constant.ChatMessageRoleUser, Content: prompt}},
		llm.WithTemperature(0),
	)
	if err != nil {
		return "", fmt.Errorf("relevance classification failed: %w", err)
	}

	label := Coerce(raw)
	c.logger.Printf("[CLASSIFIER] Question classified as %s", label)
	return label, nil
}

// Coerce normalizes a raw model answer to a Label. Anything outside the four
// known categories falls back to NOT_RELEVANT, the most conservative bucket.
func Coerce(raw string) Label {
	switch Label(strings.ToUpper(strings.TrimSpace(raw))) {
	case LabelGreeting:
		return LabelGreeting
	case LabelRelevant:
		return LabelRelevant
	case LabelInappropriate:
		return LabelInappropriate
	default:
		return LabelNotRelevant
	}
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
