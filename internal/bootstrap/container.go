package bootstrap

import (
	"context"
	"log"

	"woodshop-assistant-be/internal/config"
	"woodshop-assistant-be/internal/controller"
	"woodshop-assistant-be/internal/pkg/logger"
	"woodshop-assistant-be/internal/repository/contract"
	"woodshop-assistant-be/internal/repository/implementation"
	"woodshop-assistant-be/internal/repository/memory"
	"woodshop-assistant-be/internal/repository/redisstore"
	"woodshop-assistant-be/internal/service"
	"woodshop-assistant-be/pkg/embedding"
	"woodshop-assistant-be/pkg/identity"
	"woodshop-assistant-be/pkg/llm/factory"
	"woodshop-assistant-be/pkg/rag/classifier"
	"woodshop-assistant-be/pkg/rag/response"
	"woodshop-assistant-be/pkg/rag/rewrite"
	"woodshop-assistant-be/pkg/rag/search"

	pktNats "woodshop-assistant-be/pkg/nats"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	ChatController     controller.IChatController
	CitationController controller.ICitationController
	UserController     controller.IUserController
	AdminLogController controller.IAdminLogController

	// Background Services (Exposed for main.go to run)
	ConsumerService service.IConsumerService

	Logger logger.ILogger
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core Facades
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")
	stdLog := log.Default()

	// 2. Event Bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	// 3. AI Providers
	embeddingProvider, err := embedding.NewProvider(
		cfg.Ai.EmbeddingProvider,
		cfg.Keys.OpenAI,
		cfg.Keys.GoogleGemini,
	)
	if err != nil {
		log.Fatalf("[FATAL] Failed to initialize Embedding Provider: %v", err)
	}
	log.Printf("[INFO] Using Embedding Provider: %s", cfg.Ai.EmbeddingProvider)

	llmProvider, err := factory.NewLLMProvider(
		cfg.Ai.LLMProvider,
		cfg.Ai.LLMModel,
		cfg.Ai.OllamaBaseURL,
		cfg.Keys.OpenAI,
	)
	if err != nil {
		log.Fatalf("[FATAL] Failed to initialize LLM Provider: %v", err)
	}
	log.Printf("[INFO] Using LLM Provider: %s (%s)", cfg.Ai.LLMProvider, cfg.Ai.LLMModel)

	// 4. Infrastructure
	natsPub, err := pktNats.NewPublisher(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Publisher: %v", err)
		natsPub = nil
	}

	var handshakeStore contract.HandshakeStore
	if cfg.Handshake.Backend == "redis" {
		opt, err := redis.ParseURL(cfg.App.RedisURL)
		if err != nil {
			log.Printf("[WARN] Failed to parse Redis URL: %v. Using direct Addr", err)
			opt = &redis.Options{Addr: cfg.App.RedisURL}
		}
		rdb := redis.NewClient(opt)
		if _, err := rdb.Ping(context.Background()).Result(); err != nil {
			log.Printf("[WARN] Failed to connect to Redis: %v", err)
		}
		handshakeStore = redisstore.NewHandshakeStore(rdb, cfg.Handshake.TTL)
		log.Printf("[INFO] Using Handshake Store: REDIS")
	} else {
		handshakeStore = memory.NewHandshakeStore(cfg.Handshake.TTL)
		log.Printf("[INFO] Using Handshake Store: MEMORY")
	}

	// 5. Repositories
	documentRepo := implementation.NewDocumentRepository(db, cfg.Retrieval.AllowedTables)
	productRepo := implementation.NewProductRepository(db)
	eventRepo := implementation.NewTrackedEventRepository(db)

	// 6. Pipeline Stages
	relevance := classifier.NewClassifier(llmProvider, stdLog)
	rewriter := rewrite.NewRewriter(llmProvider, stdLog)
	retriever := search.NewOrchestrator(embeddingProvider, documentRepo, cfg.Retrieval.Table, cfg.Retrieval.TopK, stdLog)
	generator := response.NewGenerator(llmProvider, stdLog)

	identityClient := identity.NewClerkClient(cfg.Keys.ClerkSecret)

	// 7. Services
	analyticsService := service.NewAnalyticsService(cfg.Keys.AnalyticsTopic, pubSub)
	consumerService := service.NewConsumerService(pubSub, cfg.Keys.AnalyticsTopic, eventRepo, natsPub)

	userService := service.NewUserService(identityClient)
	chatService := service.NewChatService(
		relevance,
		rewriter,
		retriever,
		generator,
		userService,
		handshakeStore,
		analyticsService,
		sysLogger,
	)
	citationService := service.NewCitationService(
		llmProvider,
		handshakeStore,
		productRepo,
		analyticsService,
		sysLogger,
	)

	// 8. Controllers
	return &Container{
		ChatController:     controller.NewChatController(chatService),
		CitationController: controller.NewCitationController(citationService),
		UserController:     controller.NewUserController(userService),
		AdminLogController: controller.NewAdminLogController(sysLogger),

		ConsumerService: consumerService,
		Logger:          sysLogger,
	}
}
