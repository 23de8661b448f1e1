package bootstrap

import (
	"context"
	"log"
	"os"

	"vendai-assistant-be/internal/config"
	"vendai-assistant-be/internal/controller"
	"vendai-assistant-be/internal/pkg/logger"
	"vendai-assistant-be/internal/repository/memory"
	"vendai-assistant-be/internal/repository/unitofwork"
	"vendai-assistant-be/internal/repository/vector"
	"vendai-assistant-be/internal/service"
	"vendai-assistant-be/pkg/embedding"
	"vendai-assistant-be/pkg/engine"
	"vendai-assistant-be/pkg/intent"
	"vendai-assistant-be/pkg/inventory"
	"vendai-assistant-be/pkg/llm/factory"
	"vendai-assistant-be/pkg/retrieval"
	"vendai-assistant-be/pkg/store"

	pkgNats "vendai-assistant-be/pkg/nats"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	WebhookController   controller.IWebhookController
	CatalogController   controller.ICatalogController
	KnowledgeController controller.IKnowledgeController

	// Background Services (Exposed for main.go to run)
	ConsumerService service.IConsumerService

	// Shared infrastructure kept for shutdown
	Logger  logger.ILogger
	NatsPub *pkgNats.Publisher
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core Facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")
	stdLogger := log.New(os.Stdout, "", log.LstdFlags)

	// 2. Event Bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	// 3. Infrastructure
	natsPub, err := pkgNats.NewPublisher(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Publisher: %v", err)
		natsPub = nil
	}

	opt, err := redis.ParseURL(cfg.App.RedisURL)
	if err != nil {
		log.Printf("[WARN] Failed to parse Redis URL: %v. Using direct Addr", err)
		opt = &redis.Options{
			Addr: cfg.App.RedisURL,
		}
	}
	rdb := redis.NewClient(opt)
	redisAvailable := true
	if _, err := rdb.Ping(context.Background()).Result(); err != nil {
		log.Printf("[WARN] Failed to connect to Redis: %v", err)
		redisAvailable = false
	}

	// 4. AI Providers
	var embeddingProvider embedding.EmbeddingProvider
	if cfg.Ai.EmbeddingProvider == "gemini" {
		embeddingProvider = embedding.NewGeminiProvider(cfg.Ai.GeminiAPIKey)
		log.Printf("[INFO] Using Embedding Provider: GEMINI")
	} else {
		embeddingProvider = embedding.NewOllamaProvider(
			cfg.Ai.OllamaBaseURL,
			cfg.Ai.OllamaModel,
		)
		log.Printf("[INFO] Using Embedding Provider: OLLAMA (%s)", cfg.Ai.OllamaModel)
	}
	if redisAvailable {
		embeddingProvider = embedding.NewCachedProvider(embeddingProvider, rdb, cfg.Ai.EmbeddingCacheTTL)
		log.Printf("[INFO] Embedding cache enabled (ttl %s)", cfg.Ai.EmbeddingCacheTTL)
	}

	llmProvider, err := factory.NewLLMProvider(factory.Config{
		Provider:        cfg.Ai.LLMProvider,
		Model:           cfg.Ai.LLMModel,
		OllamaBaseURL:   cfg.Ai.OllamaBaseURL,
		DeepSeekBaseURL: cfg.Ai.DeepSeekBaseURL,
		DeepSeekAPIKey:  cfg.Ai.DeepSeekAPIKey,
	})
	if err != nil {
		log.Fatalf("[FATAL] Failed to initialize LLM Provider: %v", err)
	}
	log.Printf("[INFO] Using LLM Provider: %s (%s)", cfg.Ai.LLMProvider, cfg.Ai.LLMModel)

	// 5. Inventory
	index := inventory.NewIndex()
	rows, err := inventory.LoadCSVFile(cfg.Inventory.CSVPath)
	if err != nil {
		log.Printf("[WARN] Failed to load inventory from %s: %v", cfg.Inventory.CSVPath, err)
	} else {
		index.Load(rows)
		log.Printf("[INFO] Loaded %d inventory records", index.Len())
	}
	scorer := inventory.NewScorer(index)

	// 6. Retrieval
	vectorStore := vector.NewPgStore(uowFactory, cfg.Ai.SimilarityThreshold)
	retriever := retrieval.NewRetriever(embeddingProvider, vectorStore, stdLogger)

	// 7. Conversation engine
	intentResolver := intent.NewResolver(llmProvider, stdLogger)
	eng := engine.New(
		index,
		scorer,
		retriever,
		intentResolver,
		llmProvider,
		engine.NewNameValidator(),
		stdLogger,
		engine.Config{
			KnowledgeScope: cfg.Inventory.KnowledgeScope,
			TopK:           cfg.Ai.RetrievalTopK,
		},
	)

	// 8. Services
	sessionRepo := memory.NewSessionRepository()
	locks := store.NewKeyedMutex()

	chatService := service.NewChatService(eng, sessionRepo, locks, uowFactory, natsPub, sysLogger)
	catalogService := service.NewCatalogService(index, scorer)
	publisherService := service.NewPublisherService(pubSub, cfg.Ai.KnowledgeTopic)
	knowledgeService := service.NewKnowledgeService(uowFactory)
	consumerService := service.NewConsumerService(pubSub, cfg.Ai.KnowledgeTopic, uowFactory, embeddingProvider)

	// 9. Controllers
	return &Container{
		WebhookController:   controller.NewWebhookController(chatService, cfg.App.WebhookToken),
		CatalogController:   controller.NewCatalogController(catalogService),
		KnowledgeController: controller.NewKnowledgeController(publisherService, knowledgeService),
		ConsumerService:     consumerService,
		Logger:              sysLogger,
		NatsPub:             natsPub,
	}
}
