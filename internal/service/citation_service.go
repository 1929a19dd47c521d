package service

import (
	"context"
	"fmt"

	"woodshop-assistant-be/internal/constant"
	"woodshop-assistant-be/internal/dto"
	"woodshop-assistant-be/internal/entity"
	"woodshop-assistant-be/internal/pkg/logger"
	"woodshop-assistant-be/internal/repository/contract"
	"woodshop-assistant-be/pkg/citation"
	"woodshop-assistant-be/pkg/events"
	"woodshop-assistant-be/pkg/llm"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
)

type ICitationService interface {
	// StageContext stores the retrieval context for the session until the
	// rendered answer arrives in the second phase.
	StageContext(ctx context.Context, sessionKey string, request *dto.LinksRequest) (*dto.StageContextResponse, error)

	// ExtractCitations consumes the staged context and extracts video
	// references and related products from the answer. Every failure path
	// degrades to empty collections with a success status.
	ExtractCitations(ctx context.Context, sessionKey string, answer string) *dto.ExtractCitationsResponse
}

type citationService struct {
	llmProvider       llm.LLMProvider
	handshakeStore    contract.HandshakeStore
	productRepository contract.ProductRepository
	analyticsService  IAnalyticsService
	logger            logger.ILogger
}

func NewCitationService(
	llmProvider llm.LLMProvider,
	handshakeStore contract.HandshakeStore,
	productRepository contract.ProductRepository,
	analyticsService IAnalyticsService,
	logger logger.ILogger,
) ICitationService {
	return &citationService{
		llmProvider:       llmProvider,
		handshakeStore:    handshakeStore,
		productRepository: productRepository,
		analyticsService:  analyticsService,
		logger:            logger,
	}
}

var _ ICitationService = &citationService{}

func (s *citationService) StageContext(ctx context.Context, sessionKey string, request *dto.LinksRequest) (*dto.StageContextResponse, error) {
	entry := &entity.HandshakeEntry{
		Context: request.Context,
		Query:   request.Query,
	}
	if err := s.handshakeStore.Stage(ctx, sessionKey, entry); err != nil {
		return nil, err
	}

	s.logger.Info("CITATION", "Context staged", map[string]interface{}{
		"session_key":    sessionKey,
		"context_length": len(request.Context),
	})

	return &dto.StageContextResponse{
		Status:     "waiting_for_answer",
		HasContext: true,
	}, nil
}

func (s *citationService) ExtractCitations(ctx context.Context, sessionKey string, answer string) *dto.ExtractCitationsResponse {
	tracer := otel.Tracer("citation-service")
	ctx, span := tracer.Start(ctx, "video-reference-pipeline")
	defer span.End()
	span.SetAttributes(attribute.String("session.key", sessionKey))

	entry, err := s.handshakeStore.Consume(ctx, sessionKey)
	if err != nil {
		s.logger.Error("CITATION", "Handshake lookup failed", map[string]interface{}{"error": err.Error()})
		return dto.EmptyCitationsResponse(boolPtr(false))
	}
	if entry == nil {
		return dto.EmptyCitationsResponse(boolPtr(false))
	}

	references, err := s.extractReferences(ctx, entry, answer)
	if err != nil {
		s.logger.Error("CITATION", "Reference extraction failed", map[string]interface{}{"error": err.Error()})
		return dto.EmptyCitationsResponse(nil)
	}

	products := s.findRelatedProducts(ctx, references)

	s.analyticsService.Track(ctx, events.NewCitationsExtracted(sessionKey, len(references), len(products)))

	return &dto.ExtractCitationsResponse{
		VideoReferences: references,
		RelatedProducts: products,
		Status:          "success",
	}
}

func (s *citationService) extractReferences(ctx context.Context, entry *entity.HandshakeEntry, answer string) (map[string]citation.VideoReference, error) {
	prompt := fmt.Sprintf("%s\n\nContext: %s\n\nQuestion: %s\n\nAnswer: %s",
		constant.VideoExtractionPrompt, entry.Context, entry.Query, answer)

	raw, err := s.llmProvider.Generate(ctx, prompt, llm.WithTemperature(0.1))
	if err != nil {
		return nil, err
	}

	return citation.ParseVideoReferences(raw), nil
}

// findRelatedProducts never fails the pipeline: a product lookup error just
// means no products alongside the references.
func (s *citationService) findRelatedProducts(ctx context.Context, references map[string]citation.VideoReference) []dto.ProductDTO {
	titles := citation.Titles(references)
	if len(titles) == 0 {
		return []dto.ProductDTO{}
	}

	products, err := s.productRepository.FindByVideoTitles(ctx, titles)
	if err != nil {
		s.logger.Error("CITATION", "Product lookup failed", map[string]interface{}{"error": err.Error()})
		return []dto.ProductDTO{}
	}

	result := make([]dto.ProductDTO, 0, len(products))
	for _, product := range products {
		result = append(result, dto.ProductDTO{
			Id:    product.Id,
			Title: product.Title,
			Tags:  product.Tags,
			Link:  product.Link,
		})
	}
	return result
}

func boolPtr(b bool) *bool { return &b }
