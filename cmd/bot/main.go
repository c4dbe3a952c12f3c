package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/samvidhan/constitution-bot/internal/config"
	"github.com/samvidhan/constitution-bot/internal/delivery/telegram"
	"github.com/samvidhan/constitution-bot/internal/infra/postgres"
	"github.com/samvidhan/constitution-bot/internal/kvstore"
	"github.com/samvidhan/constitution-bot/internal/logger"
	"github.com/samvidhan/constitution-bot/internal/repository"
	"github.com/samvidhan/constitution-bot/internal/service"
)

func main() {
	// Load .env if present; real environments set the variables directly.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	zapLogger, err := logger.New(cfg)
	if err != nil {
		log.Fatal(err)
	}
	defer func() { _ = zapLogger.Sync() }()

	bot, err := tgbotapi.NewBotAPI(cfg.TelegramToken)
	if err != nil {
		zapLogger.Fatal("failed to create bot", zap.Error(err))
	}
	zapLogger.Info("authorized", zap.String("account", bot.Self.UserName))

	commands := []tgbotapi.BotCommand{
		{Command: "start", Description: "Open the main menu"},
		{Command: "browse", Description: "Browse parts and key articles"},
		{Command: "search", Description: "Search articles (usage: /search equality)"},
		{Command: "cards", Description: "Review flashcards (usage: /cards or /cards III)"},
		{Command: "quiz", Description: "Take the quiz"},
		{Command: "progress", Description: "Show learning progress"},
		{Command: "history", Description: "Show past quiz results"},
		{Command: "reset", Description: "Reset progress or quiz history"},
		{Command: "help", Description: "Help"},
	}
	if _, err := bot.Request(tgbotapi.NewSetMyCommands(commands...)); err != nil {
		zapLogger.Warn("failed to set bot commands", zap.Error(err))
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	catalog, err := repository.NewCatalogRepository(cfg.CatalogPath)
	if err != nil {
		zapLogger.Fatal("failed to load catalog", zap.Error(err))
	}

	questions, err := repository.NewQuestionRepository(cfg.QuestionsPath)
	if err != nil {
		zapLogger.Fatal("failed to load question bank", zap.Error(err))
	}

	// Durable store: postgres when configured, in-memory otherwise.
	var store kvstore.Store
	if cfg.DB.URL != "" {
		pool, err := postgres.NewPool(ctx, cfg.DB.URL, postgres.PoolConfig{
			MaxConns:        int32(cfg.DB.MaxConnections),
			MaxConnLifetime: cfg.DB.MaxConnLifetime,
		})
		if err != nil {
			zapLogger.Fatal("failed to connect to database", zap.Error(err))
		}
		defer pool.Close()

		kv := postgres.NewKVStore(pool)
		if err := kv.Migrate(ctx); err != nil {
			zapLogger.Fatal("failed to migrate database", zap.Error(err))
		}
		store = kv
	} else {
		zapLogger.Warn("DATABASE_URL not set, learning state is kept in memory only")
		store = kvstore.NewMemoryStore()
	}

	reviewService := service.NewReviewService(catalog, store)
	quizService := service.NewQuizService(store, questions.Questions())
	progressService := service.NewProgressService(reviewService, quizService)

	handler := telegram.NewHandler(
		bot,
		zapLogger,
		catalog,
		reviewService,
		quizService,
		progressService,
	)

	if err := handler.Run(ctx); err != nil && ctx.Err() == nil {
		zapLogger.Fatal("handler stopped", zap.Error(err))
	}

	zapLogger.Info("shutdown signal received")
}
