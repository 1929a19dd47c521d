package response

import (
	"context"
	"io"
	"log"
	"strings"
	"testing"

	"woodshop-assistant-be/internal/constant"
	"woodshop-assistant-be/pkg/llm"
	"woodshop-assistant-be/pkg/rag/classifier"
)

type recordingLLM struct {
	tokens      []string
	calls       int
	lastHistory []llm.Message
}

func (r *recordingLLM) Chat(ctx context.Context, history []llm.Message, options ...llm.Option) (string, error) {
	r.calls++
	r.lastHistory = history
	return strings.Join(r.tokens, ""), nil
}

func (r *recordingLLM) ChatStream(ctx context.Context, history []llm.Message, onToken llm.TokenFunc, options ...llm.Option) (string, error) {
	r.calls++
	r.lastHistory = history
	var full strings.Builder
	for _, tok := range r.tokens {
		if err := onToken(tok); err != nil {
			return "", err
		}
		full.WriteString(tok)
	}
	return full.String(), nil
}

func (r *recordingLLM) Generate(ctx context.Context, prompt string, options ...llm.Option) (string, error) {
	r.calls++
	return strings.Join(r.tokens, ""), nil
}

func newTestGenerator(provider llm.LLMProvider) *Generator {
	return NewGenerator(provider, log.New(io.Discard, "", 0))
}

func collect(dst *[]string) llm.TokenFunc {
	return func(token string) error {
		*dst = append(*dst, token)
		return nil
	}
}

func TestInappropriateEmitsFixedReplyWithoutModelCall(t *testing.T) {
	provider := &recordingLLM{tokens: []string{"should", "not", "appear"}}
	g := newTestGenerator(provider)

	var streamed []string
	full, err := g.Generate(context.Background(), classifier.LabelInappropriate, "bad question", "", nil, collect(&streamed))
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	if provider.calls != 0 {
		t.Errorf("model called %d times, want 0", provider.calls)
	}
	if full != constant.InappropriateReply {
		t.Errorf("Generate() = %q, want the fixed refusal", full)
	}
	if len(streamed) != 1 || streamed[0] != constant.InappropriateReply {
		t.Errorf("streamed = %v, want a single fixed-refusal chunk", streamed)
	}
}

func TestGreetingStreamsThroughModel(t *testing.T) {
	provider := &recordingLLM{tokens: []string{"Hi ", "there!"}}
	g := newTestGenerator(provider)

	var streamed []string
	full, err := g.Generate(context.Background(), classifier.LabelGreeting, "hello", "", nil, collect(&streamed))
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	if full != "Hi there!" {
		t.Errorf("Generate() = %q", full)
	}
	if len(streamed) != 2 {
		t.Errorf("streamed %d chunks, want 2", len(streamed))
	}
	if !strings.Contains(provider.lastHistory[0].Content, "hello") {
		t.Errorf("greeting prompt missing the question: %q", provider.lastHistory[0].Content)
	}
}

func TestNotRelevantUsesRedirectPrompt(t *testing.T) {
	provider := &recordingLLM{tokens: []string{"redirect"}}
	g := newTestGenerator(provider)

	_, err := g.Generate(context.Background(), classifier.LabelNotRelevant, "stock tips", "", nil, collect(&[]string{}))
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	if !strings.Contains(provider.lastHistory[0].Content, "not directly related to woodworking") {
		t.Errorf("prompt = %q, want the redirect template", provider.lastHistory[0].Content)
	}
}

func TestRelevantIncludesSystemInstructionsAndContext(t *testing.T) {
	provider := &recordingLLM{tokens: []string{"### 1. **Answer**"}}
	g := newTestGenerator(provider)

	_, err := g.Generate(context.Background(), classifier.LabelRelevant, "how to sharpen",
		"Source: Workshop Basics\nContent: chisel sharpening\nURL: https://yt.com/abc",
		[]llm.Message{{Role: constant.ChatMessageRoleUser, Content: "earlier turn"}},
		collect(&[]string{}))
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	if provider.lastHistory[0].Role != constant.ChatMessageRoleSystem {
		t.Fatalf("first message role = %q, want system", provider.lastHistory[0].Role)
	}
	userMsg := provider.lastHistory[1].Content
	if !strings.Contains(userMsg, "Workshop Basics") {
		t.Errorf("user prompt missing retrieved context: %q", userMsg)
	}
	if !strings.Contains(userMsg, "earlier turn") {
		t.Errorf("user prompt missing chat history: %q", userMsg)
	}
	if !strings.Contains(userMsg, "how to sharpen") {
		t.Errorf("user prompt missing the question: %q", userMsg)
	}
}

func TestRelevantWindowsHistory(t *testing.T) {
	provider := &recordingLLM{tokens: []string{"answer"}}
	g := newTestGenerator(provider)

	history := make([]llm.Message, 0, 8)
	for _, content := range []string{"one", "two", "three", "four", "five", "six", "seven", "eight"} {
		history = append(history, llm.Message{Role: constant.ChatMessageRoleUser, Content: content})
	}

	_, err := g.Generate(context.Background(), classifier.LabelRelevant, "q", "", history, collect(&[]string{}))
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	userMsg := provider.lastHistory[1].Content
	if strings.Contains(userMsg, `"one"`) {
		t.Errorf("history window includes a turn older than the last %d", constant.HistoryWindow)
	}
	if !strings.Contains(userMsg, `"eight"`) {
		t.Errorf("history window missing the most recent turn")
	}
}
