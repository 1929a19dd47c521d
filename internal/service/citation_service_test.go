package service

import (
	"context"
	"errors"
	"testing"

	"woodshop-assistant-be/internal/dto"
	"woodshop-assistant-be/internal/entity"
	"woodshop-assistant-be/pkg/llm"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type scriptedExtractor struct {
	reply     string
	err       error
	lastInput string
	calls     int
}

func (s *scriptedExtractor) Chat(ctx context.Context, history []llm.Message, options ...llm.Option) (string, error) {
	s.calls++
	return s.reply, s.err
}

func (s *scriptedExtractor) ChatStream(ctx context.Context, history []llm.Message, onToken llm.TokenFunc, options ...llm.Option) (string, error) {
	s.calls++
	return s.reply, s.err
}

func (s *scriptedExtractor) Generate(ctx context.Context, prompt string, options ...llm.Option) (string, error) {
	s.calls++
	s.lastInput = prompt
	return s.reply, s.err
}

type fakeProductRepository struct {
	products  []*entity.Product
	err       error
	gotTitles []string
}

func (f *fakeProductRepository) FindByVideoTitles(ctx context.Context, titles []string) ([]*entity.Product, error) {
	f.gotTitles = titles
	return f.products, f.err
}

type citationFixture struct {
	llm      *scriptedExtractor
	store    *fakeHandshakeStore
	products *fakeProductRepository
	service  ICitationService
}

func newCitationFixture() *citationFixture {
	f := &citationFixture{
		llm:      &scriptedExtractor{},
		store:    newFakeHandshakeStore(),
		products: &fakeProductRepository{},
	}
	f.service = NewCitationService(f.llm, f.store, f.products, &fakeAnalytics{}, nopLogger{})
	return f
}

const sampleTagLine = "{{timestamp:12:45}}{{title:Workshop Basics}}{{url:https://yt.com/abc}}{{description:Demonstration of chisel sharpening technique}}"

func TestStageContextAcknowledges(t *testing.T) {
	f := newCitationFixture()

	resp, err := f.service.StageContext(context.Background(), "session-1", &dto.LinksRequest{
		Context: "Source: Workshop Basics",
		Query:   "how to sharpen",
	})
	require.NoError(t, err)

	assert.Equal(t, "waiting_for_answer", resp.Status)
	assert.True(t, resp.HasContext)
	require.NotNil(t, f.store.entries["session-1"])
	assert.Equal(t, "Source: Workshop Basics", f.store.entries["session-1"].Context)
}

func TestExtractUsesStagedContext(t *testing.T) {
	f := newCitationFixture()
	f.llm.reply = sampleTagLine

	_, err := f.service.StageContext(context.Background(), "session-1", &dto.LinksRequest{
		Context: "At 12:45 in Workshop Basics Ben shows chisel sharpening.",
		Query:   "how to sharpen",
	})
	require.NoError(t, err)

	resp := f.service.ExtractCitations(context.Background(), "session-1", "Sharpen at a steady angle.")

	assert.Equal(t, "success", resp.Status)
	require.Len(t, resp.VideoReferences, 1)
	assert.Equal(t, "Workshop Basics", resp.VideoReferences["0"].VideoTitle)
	assert.Contains(t, f.llm.lastInput, "At 12:45 in Workshop Basics")
	assert.Contains(t, f.llm.lastInput, "how to sharpen")
	assert.Contains(t, f.llm.lastInput, "Sharpen at a steady angle.")
}

func TestExtractConsumesTheEntry(t *testing.T) {
	f := newCitationFixture()
	f.llm.reply = sampleTagLine

	_, err := f.service.StageContext(context.Background(), "session-1", &dto.LinksRequest{Context: "ctx", Query: "q"})
	require.NoError(t, err)

	first := f.service.ExtractCitations(context.Background(), "session-1", "answer")
	require.Len(t, first.VideoReferences, 1)

	second := f.service.ExtractCitations(context.Background(), "session-1", "answer")
	assert.Empty(t, second.VideoReferences)
	require.NotNil(t, second.HasContext)
	assert.False(t, *second.HasContext)
}

func TestExtractWithoutStagedContext(t *testing.T) {
	f := newCitationFixture()

	resp := f.service.ExtractCitations(context.Background(), "session-1", "answer")

	assert.Equal(t, "success", resp.Status)
	assert.Empty(t, resp.VideoReferences)
	assert.Empty(t, resp.RelatedProducts)
	require.NotNil(t, resp.HasContext)
	assert.False(t, *resp.HasContext)
	assert.Zero(t, f.llm.calls)
}

func TestExtractAbsorbsModelFailure(t *testing.T) {
	f := newCitationFixture()
	f.llm.err = errors.New("model unavailable")

	_, err := f.service.StageContext(context.Background(), "session-1", &dto.LinksRequest{Context: "ctx", Query: "q"})
	require.NoError(t, err)

	resp := f.service.ExtractCitations(context.Background(), "session-1", "answer")

	assert.Equal(t, "success", resp.Status)
	assert.Empty(t, resp.VideoReferences)
	assert.Empty(t, resp.RelatedProducts)
}

func TestExtractMapsRelatedProducts(t *testing.T) {
	f := newCitationFixture()
	f.llm.reply = sampleTagLine
	f.products.products = []*entity.Product{
		{Id: "p1", Title: "Sharpening Stone", Tags: []string{"workshop basics", "sharpening"}, Link: "https://shop/p1"},
	}

	_, err := f.service.StageContext(context.Background(), "session-1", &dto.LinksRequest{Context: "ctx", Query: "q"})
	require.NoError(t, err)

	resp := f.service.ExtractCitations(context.Background(), "session-1", "answer")

	require.Len(t, resp.RelatedProducts, 1)
	assert.Equal(t, "p1", resp.RelatedProducts[0].Id)
	assert.Equal(t, []string{"workshop basics", "sharpening"}, resp.RelatedProducts[0].Tags)
	assert.Equal(t, []string{"Workshop Basics"}, f.products.gotTitles)
}

func TestExtractProductFailureKeepsReferences(t *testing.T) {
	f := newCitationFixture()
	f.llm.reply = sampleTagLine
	f.products.err = errors.New("db down")

	_, err := f.service.StageContext(context.Background(), "session-1", &dto.LinksRequest{Context: "ctx", Query: "q"})
	require.NoError(t, err)

	resp := f.service.ExtractCitations(context.Background(), "session-1", "answer")

	assert.Equal(t, "success", resp.Status)
	assert.Len(t, resp.VideoReferences, 1)
	assert.Empty(t, resp.RelatedProducts)
}
