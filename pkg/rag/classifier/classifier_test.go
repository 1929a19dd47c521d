package classifier

import (
	"context"
	"errors"
	"io"
	"log"
	"strings"
	"testing"

	"woodshop-assistant-be/pkg/llm"
)

type scriptedLLM struct {
	reply      string
	err        error
	lastPrompt string
}

func (s *scriptedLLM) Chat(_ context.Context, history []llm.Message, _ ...llm.Option) (string, error) {
	if len(history) > 0 {
		s.lastPrompt = history[len(history)-1].Content
	}
	return s.reply, s.err
}

func (s *scriptedLLM) ChatStream(ctx context.Context, history []llm.Message, onToken llm.TokenFunc, opts ...llm.Option) (string, error) {
	reply, err := s.Chat(ctx, history, opts...)
	if err != nil {
		return "", err
	}
	if onToken != nil {
		if err := onToken(reply); err != nil {
			return reply, err
		}
	}
	return reply, nil
}

func (s *scriptedLLM) Generate(ctx context.Context, prompt string, opts ...llm.Option) (string, error) {
	return s.Chat(ctx, []llm.Message{{Role: "user", Content: prompt}}, opts...)
}

func discardLogger() *log.Logger {
	return log.New(io.Discard, "", 0)
}

func TestCoerce(t *testing.T) {
	tests := []struct {
		raw  string
		want Label
	}{
		{"GREETING", LabelGreeting},
		{"RELEVANT", LabelRelevant},
		{"INAPPROPRIATE", LabelInappropriate},
		{"NOT_RELEVANT", LabelNotRelevant},
		{"relevant", LabelRelevant},
		{"  Greeting \n", LabelGreeting},
		{"MAYBE", LabelNotRelevant},
		{"I think this is RELEVANT to woodworking", LabelNotRelevant},
		{"", LabelNotRelevant},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			if got := Coerce(tt.raw); got != tt.want {
				t.Errorf("Coerce(%q) = %s, want %s", tt.raw, got, tt.want)
			}
		})
	}
}

func TestClassifyPropagatesModelError(t *testing.T) {
	provider := &scriptedLLM{err: errors.New("model unavailable")}
	c := NewClassifier(provider, discardLogger())

	_, err := c.Classify(context.Background(), "how do I sharpen a chisel?", nil)
	if err == nil {
		t.Fatal("Classify() should propagate the model error")
	}
}

func TestClassifyWindowsHistory(t *testing.T) {
	provider := &scriptedLLM{reply: "RELEVANT"}
	c := NewClassifier(provider, discardLogger())

	history := make([]llm.Message, 0, 8)
	for _, content := range []string{"one", "two", "three", "four", "five", "six", "seven", "eight"} {
		history = append(history, llm.Message{Role: "user", Content: content})
	}

	if _, err := c.Classify(context.Background(), "question", history); err != nil {
		t.Fatalf("Classify() error: %v", err)
	}

	if strings.Contains(provider.lastPrompt, `"one"`) {
		t.Error("prompt should not include turns older than the history window")
	}
	for _, recent := range []string{"four", "five", "six", "seven", "eight"} {
		if !strings.Contains(provider.lastPrompt, recent) {
			t.Errorf("prompt missing recent turn %q", recent)
		}
	}
}

func TestClassifyNormalizesAnswer(t *testing.T) {
	provider := &scriptedLLM{reply: "  greeting \n"}
	c := NewClassifier(provider, discardLogger())

	label, err := c.Classify(context.Background(), "hi there!", nil)
	if err != nil {
		t.Fatalf("Classify() error: %v", err)
	}
	if label != LabelGreeting {
		t.Errorf("label = %s, want %s", label, LabelGreeting)
	}
}
