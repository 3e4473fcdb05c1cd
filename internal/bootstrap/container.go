package bootstrap

import (
	"log"

	"medisos-be/internal/config"
	"medisos-be/internal/controller"
	"medisos-be/internal/pkg/logger"
	"medisos-be/internal/pkg/mailer"
	"medisos-be/internal/repository/unitofwork"
	"medisos-be/internal/service"
	embeddingOpenrouter "medisos-be/pkg/embedding/openrouter"
	llmOpenrouter "medisos-be/pkg/llm/openrouter"
	"medisos-be/pkg/safety"

	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	AuthController      controller.IAuthController
	ChatController      controller.IChatController
	CounselorController controller.ICounselorController
	KnowledgeController controller.IKnowledgeController

	// Exposed for the standalone reindex command
	KnowledgeService service.IKnowledgeService

	Logger logger.ILogger
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core Facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	emailService := mailer.NewEmailService(
		cfg.SMTP.Host,
		cfg.SMTP.Port,
		cfg.SMTP.Email,
		cfg.SMTP.Password,
		cfg.SMTP.SenderName,
	)

	// 2. Model providers. Chat and embeddings share the OpenRouter gateway.
	llmProvider := llmOpenrouter.NewOpenRouterProvider(
		cfg.Ai.OpenRouterAPIKey,
		cfg.Ai.OpenRouterBaseURL,
		cfg.Ai.ChatModel,
	)
	embeddingProvider := embeddingOpenrouter.NewOpenRouterProvider(
		cfg.Ai.OpenRouterAPIKey,
		cfg.Ai.OpenRouterBaseURL,
		cfg.Ai.EmbeddingModel,
	)
	if cfg.Ai.OpenRouterAPIKey == "" {
		log.Printf("[WARN] OPENROUTER_API_KEY is not set; model-backed endpoints will report unavailable")
	}
	log.Printf("[INFO] Using chat model %s, embedding model %s", cfg.Ai.ChatModel, cfg.Ai.EmbeddingModel)

	classifier := safety.NewClassifier(llmProvider)

	// 3. Services
	authService := service.NewAuthService(uowFactory, cfg.Auth)
	counselorService := service.NewCounselorService(uowFactory)
	knowledgeService := service.NewKnowledgeService(uowFactory, embeddingProvider, cfg.Knowledge.SlideDeckPath, sysLogger)
	chatService := service.NewChatService(uowFactory, llmProvider, classifier, knowledgeService, cfg.Knowledge.TopK, sysLogger)
	summaryService := service.NewSummaryService(uowFactory, llmProvider, emailService, sysLogger)

	// 4. Controllers
	return &Container{
		AuthController:      controller.NewAuthController(authService),
		ChatController:      controller.NewChatController(chatService, summaryService),
		CounselorController: controller.NewCounselorController(counselorService),
		KnowledgeController: controller.NewKnowledgeController(knowledgeService),
		KnowledgeService:    knowledgeService,
		Logger:              sysLogger,
	}
}
