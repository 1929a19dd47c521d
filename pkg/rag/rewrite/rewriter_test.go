package rewrite

import (
	"context"
	"errors"
	"io"
	"log"
	"testing"

	"woodshop-assistant-be/pkg/llm"
)

type fakeLLM struct {
	reply string
	err   error
}

func (f *fakeLLM) Chat(ctx context.Context, history []llm.Message, options ...llm.Option) (string, error) {
	return f.reply, f.err
}

func (f *fakeLLM) ChatStream(ctx context.Context, history []llm.Message, onToken llm.TokenFunc, options ...llm.Option) (string, error) {
	return f.reply, f.err
}

func (f *fakeLLM) Generate(ctx context.Context, prompt string, options ...llm.Option) (string, error) {
	return f.reply, f.err
}

func newTestRewriter(provider llm.LLMProvider) *Rewriter {
	return NewRewriter(provider, log.New(io.Discard, "", 0))
}

func TestRewriteStripsEchoPrefix(t *testing.T) {
	r := newTestRewriter(&fakeLLM{reply: "Rewritten query: mortise and tenon joint strength"})

	got := r.Rewrite(context.Background(), "how strong is it", nil)
	if got != "mortise and tenon joint strength" {
		t.Errorf("Rewrite() = %q", got)
	}
}

func TestRewriteTrimsWhitespace(t *testing.T) {
	r := newTestRewriter(&fakeLLM{reply: "  table saw fence alignment  \n"})

	got := r.Rewrite(context.Background(), "fence is off", nil)
	if got != "table saw fence alignment" {
		t.Errorf("Rewrite() = %q", got)
	}
}

func TestRewriteFallsBackOnError(t *testing.T) {
	r := newTestRewriter(&fakeLLM{err: errors.New("upstream timeout")})

	got := r.Rewrite(context.Background(), "original question", nil)
	if got != "original question" {
		t.Errorf("Rewrite() = %q, want the original question", got)
	}
}

func TestRewriteFallsBackOnEmptyReply(t *testing.T) {
	r := newTestRewriter(&fakeLLM{reply: "Rewritten query:   "})

	got := r.Rewrite(context.Background(), "original question", nil)
	if got != "original question" {
		t.Errorf("Rewrite() = %q, want the original question", got)
	}
}
