package service

import (
	"context"
	"errors"

	"woodshop-assistant-be/internal/dto"
	"woodshop-assistant-be/internal/entity"
	"woodshop-assistant-be/internal/pkg/logger"
	"woodshop-assistant-be/internal/pkg/serverutils"
	"woodshop-assistant-be/internal/repository/contract"
	"woodshop-assistant-be/pkg/events"
	"woodshop-assistant-be/pkg/llm"
	"woodshop-assistant-be/pkg/rag/classifier"
	"woodshop-assistant-be/pkg/rag/search"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

var ErrNoUserMessage = errors.New("request contains no user message")

// Narrow pipeline-stage contracts so tests can swap each stage independently.
type relevanceClassifier interface {
	Classify(ctx context.Context, question string, history []llm.Message) (classifier.Label, error)
}

type queryRewriter interface {
	Rewrite(ctx context.Context, query string, history []llm.Message) string
}

type documentRetriever interface {
	Retrieve(ctx context.Context, query string) ([]*entity.RetrievedDocument, error)
}

type answerGenerator interface {
	Generate(ctx context.Context, label classifier.Label, question string, contextBlock string, history []llm.Message, onToken llm.TokenFunc) (string, error)
}

type profileLookup interface {
	GetProfile(ctx context.Context, userId string) (*entity.UserProfile, error)
}

type IChatService interface {
	// PrepareChat runs every stage that can still fail with a status code:
	// identity, classification, rewrite, retrieval, handshake staging. The
	// returned ChatRun only streams; once streaming starts the status is
	// already committed.
	PrepareChat(ctx context.Context, request *dto.ChatRequest, userId, sessionKey string) (*ChatRun, error)
}

type chatService struct {
	classifier       relevanceClassifier
	rewriter         queryRewriter
	retriever        documentRetriever
	generator        answerGenerator
	profiles         profileLookup
	handshakeStore   contract.HandshakeStore
	analyticsService IAnalyticsService
	logger           logger.ILogger
}

func NewChatService(
	classifier relevanceClassifier,
	rewriter queryRewriter,
	retriever documentRetriever,
	generator answerGenerator,
	profiles profileLookup,
	handshakeStore contract.HandshakeStore,
	analyticsService IAnalyticsService,
	logger logger.ILogger,
) IChatService {
	return &chatService{
		classifier:       classifier,
		rewriter:         rewriter,
		retriever:        retriever,
		generator:        generator,
		profiles:         profiles,
		handshakeStore:   handshakeStore,
		analyticsService: analyticsService,
		logger:           logger,
	}
}

var _ IChatService = &chatService{}

// ChatRun is a prepared pipeline ready to stream its answer.
type ChatRun struct {
	Label         classifier.Label
	Question      string
	ContextBlock  string
	DocumentCount int

	userId     string
	sessionKey string
	history    []llm.Message
	generator  answerGenerator
	analytics  IAnalyticsService
	logger     logger.ILogger
	span       trace.Span
}

func (s *chatService) PrepareChat(ctx context.Context, request *dto.ChatRequest, userId, sessionKey string) (*ChatRun, error) {
	tracer := otel.Tracer("chat-service")
	ctx, span := tracer.Start(ctx, "chat-pipeline")
	span.SetAttributes(
		attribute.String("user.id", userId),
		attribute.String("session.key", sessionKey),
	)

	question := request.LastUserMessage()
	if question == "" {
		span.End()
		return nil, ErrNoUserMessage
	}

	history := make([]llm.Message, len(request.Messages))
	for i, turn := range request.Messages {
		history[i] = llm.Message{Role: turn.Role, Content: turn.Content}
	}

	userInfo := s.lookupProfile(ctx, userId)

	label, err := s.classifier.Classify(ctx, question, history)
	if err != nil {
		span.End()
		return nil, err
	}
	span.SetAttributes(attribute.String("chat.label", string(label)))

	run := &ChatRun{
		Label:      label,
		Question:   question,
		userId:     userId,
		sessionKey: sessionKey,
		history:    history,
		generator:  s.generator,
		analytics:  s.analyticsService,
		logger:     s.logger,
		span:       span,
	}

	// Terminal labels skip rewrite, retrieval, and staging entirely.
	if label != classifier.LabelRelevant {
		return run, nil
	}

	rewritten := s.rewriter.Rewrite(ctx, question, history)
	documents, err := s.retriever.Retrieve(ctx, rewritten)
	if err != nil {
		span.End()
		return nil, err
	}

	run.Question = rewritten
	run.ContextBlock = search.BuildContext(documents)
	run.DocumentCount = len(documents)
	span.SetAttributes(attribute.Int("retrieval.documents", len(documents)))

	// Stage the context server-side so the second-phase citation call can
	// find it even if the client never sends phase 1.
	entry := &entity.HandshakeEntry{
		Context:  run.ContextBlock,
		Query:    question,
		UserInfo: userInfo,
	}
	if err := s.handshakeStore.Stage(ctx, sessionKey, entry); err != nil {
		s.logger.Warn("CHAT", "Failed to stage handshake context", map[string]interface{}{
			"session_key": sessionKey,
			"error":       err.Error(),
		})
	}

	return run, nil
}

func (s *chatService) lookupProfile(ctx context.Context, userId string) *entity.UserProfile {
	if userId == "" || userId == serverutils.AnonymousKey {
		return nil
	}
	profile, err := s.profiles.GetProfile(ctx, userId)
	if err != nil {
		// Identity is metadata only; the pipeline continues without it.
		s.logger.Warn("CHAT", "Identity lookup failed", map[string]interface{}{
			"user_id": userId,
			"error":   err.Error(),
		})
		return nil
	}
	return profile
}

// Stream generates the answer, delivering tokens through onToken. It ends the
// pipeline span and records the analytics event for the turn.
func (r *ChatRun) Stream(ctx context.Context, onToken llm.TokenFunc) (string, error) {
	defer r.span.End()

	full, err := r.generator.Generate(ctx, r.Label, r.Question, r.ContextBlock, r.history, onToken)
	if err != nil {
		r.logger.Error("CHAT", "Answer generation failed", map[string]interface{}{
			"session_key": r.sessionKey,
			"error":       err.Error(),
		})
		return "", err
	}

	if r.Label == classifier.LabelInappropriate {
		r.analytics.Track(ctx, events.NewChatRefused(r.userId, r.sessionKey))
	} else {
		r.analytics.Track(ctx, events.NewChatAnswered(r.userId, r.sessionKey, string(r.Label), r.DocumentCount, len(full)))
	}

	return full, nil
}
