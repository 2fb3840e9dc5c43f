package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/valyala/fasthttp/fasthttpadaptor"
	"go.uber.org/zap"

	"github.com/techmayne/photobot/internal/adapter/cache"
	"github.com/techmayne/photobot/internal/adapter/http/fiber/handlers"
	"github.com/techmayne/photobot/internal/adapter/http/fiber/middleware"
	"github.com/techmayne/photobot/internal/adapter/queue"
	"github.com/techmayne/photobot/internal/adapter/storage/postgres"
	"github.com/techmayne/photobot/internal/ports"
	"github.com/techmayne/photobot/internal/service/bot"
	"github.com/techmayne/photobot/internal/service/chat"
	"github.com/techmayne/photobot/internal/service/email"
	"github.com/techmayne/photobot/internal/service/faq"
	"github.com/techmayne/photobot/internal/service/lead"
	"github.com/techmayne/photobot/internal/service/notify"
	"github.com/techmayne/photobot/internal/service/onboarding"
	"github.com/techmayne/photobot/internal/service/sheets"
	"github.com/techmayne/photobot/pkg/config"
)

const (
	serviceName    = "photobot"
	serviceVersion = "v1.0.0"
)

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatal("Failed to initialize logger:", err)
	}
	defer logger.Sync()

	logger.Info("Starting PhotoBot",
		zap.String("service", serviceName),
		zap.String("version", serviceVersion),
	)

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Failed to load configuration", zap.Error(err))
	}

	// PostgreSQL
	db, err := postgres.NewConnection(cfg.Database.URL, logger)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer postgres.Close(db)

	if cfg.Database.AutoMigrate {
		if err := postgres.RunMigrations(db); err != nil {
			logger.Fatal("Failed to run migrations", zap.Error(err))
		}
	}

	// Redis, with in-memory fallback so a cache outage never blocks chat
	var appCache ports.Cache
	if cfg.Redis.URL != "" {
		appCache, err = cache.NewRedisCache(cfg.Redis.URL, logger)
		if err != nil {
			logger.Warn("Redis unavailable, falling back to local cache", zap.Error(err))
		}
	}
	if appCache == nil {
		appCache = cache.NewLocalCache(cfg.Cache.CleanupInterval, logger)
	}
	defer appCache.Close()

	// Message queue
	messageQueue, err := queue.New(cfg.Queue.Driver, cfg.Queue.URL, logger)
	if err != nil {
		logger.Warn("Message queue unavailable, events disabled", zap.Error(err))
		messageQueue = nil
	} else {
		defer messageQueue.Close()
	}

	// Repositories
	clientRepo := postgres.NewClientRepository(db, logger)
	convRepo := postgres.NewConversationRepository(db, logger)
	faqRepo := postgres.NewFAQRepository(db, logger)
	leadRepo := postgres.NewLeadRepository(db, logger)
	messageRepo := postgres.NewMessageRepository(db, logger)

	// Services
	emailService, err := email.NewService(&email.Config{
		Provider:       cfg.Email.Provider,
		FromEmail:      cfg.Email.FromEmail,
		FromName:       cfg.Email.FromName,
		SendGridAPIKey: cfg.Email.SendGridAPIKey,
		SMTPHost:       cfg.Email.SMTPHost,
		SMTPPort:       cfg.Email.SMTPPort,
		SMTPUsername:   cfg.Email.SMTPUsername,
		SMTPPassword:   cfg.Email.SMTPPassword,
		SMTPUseTLS:     cfg.Email.SMTPUseTLS,
	}, logger)
	if err != nil {
		logger.Fatal("Failed to initialize email service", zap.Error(err))
	}

	notifier := notify.NewService(emailService, cfg.Email.AdminEmail, logger)
	sheetLogger := sheets.NewLogger(cfg.Sheets.WebhookURL, logger)

	faqService := faq.NewService(faqRepo, logger)
	leadService := lead.NewService(leadRepo, convRepo, notifier, messageQueue, logger)
	onboardingService := onboarding.NewService(clientRepo, faqRepo, messageQueue, cfg.Widget.BaseURL, logger)

	engine := bot.NewEngine(convRepo, faqService, leadService, logger)
	chatService := chat.NewService(clientRepo, convRepo, messageRepo, appCache, engine, logger)

	// HTTP server
	app := fiber.New(fiber.Config{
		AppName:               serviceName,
		DisableStartupMessage: true,
		ReadTimeout:           cfg.HTTP.ReadTimeout,
		WriteTimeout:          cfg.HTTP.WriteTimeout,
		IdleTimeout:           cfg.HTTP.IdleTimeout,
		ErrorHandler:          middleware.ErrorHandler(logger),
	})

	app.Use(recover.New())
	app.Use(fiberlogger.New())
	app.Use(middleware.NewCORS(cfg.CORS))
	app.Use(middleware.CircuitBreaker(logger))

	healthHandler := handlers.NewHealthHandler(db, appCache, logger)
	app.Get("/health/live", healthHandler.Live)
	app.Get("/health/ready", healthHandler.Ready)

	app.Get("/metrics", func(c *fiber.Ctx) error {
		handler := fasthttpadaptor.NewFastHTTPHandler(promhttp.Handler())
		handler(c.Context())
		return nil
	})

	api := app.Group("/api")

	chatHandler := handlers.NewChatHandler(chatService, logger)
	api.Post("/chat/message", chatHandler.Message)

	widgetHandler := handlers.NewWidgetConfigHandler(chatService, logger)
	api.Get("/config/:clientToken", widgetHandler.Get)

	onboardingHandler := handlers.NewOnboardingHandler(onboardingService, logger)
	api.Post("/onboarding/create", onboardingHandler.Create)

	// Background workers
	if messageQueue != nil {
		startWorkers(messageQueue, clientRepo, notifier, sheetLogger, logger)
	}

	go func() {
		logger.Info("Starting HTTP Server", zap.Int("port", cfg.HTTP.Port))
		if err := app.Listen(fmt.Sprintf(":%d", cfg.HTTP.Port)); err != nil {
			logger.Fatal("HTTP Server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(ctx); err != nil {
		logger.Fatal("Server forced to shutdown", zap.Error(err))
	}

	logger.Info("Server exited gracefully")
}

// startWorkers wires the queue subscribers. Onboarding fan-out (admin
// email, spreadsheet row) runs here so the HTTP response never waits on
// slow external services.
func startWorkers(
	mq queue.MessageQueue,
	clients ports.ClientRepository,
	notifier ports.Notifier,
	sheetLogger ports.SheetLogger,
	logger *zap.Logger,
) {
	logger.Info("Starting background workers")

	if err := mq.Subscribe(onboarding.SubjectClientCreated, func(data []byte) error {
		var event onboarding.ClientCreatedEvent
		if err := json.Unmarshal(data, &event); err != nil {
			logger.Error("Invalid client event payload", zap.Error(err))
			return nil
		}

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		client, err := clients.FindByID(ctx, event.ClientID)
		if err != nil || client == nil {
			logger.Error("Client event for unknown client",
				zap.String("client_id", event.ClientID),
				zap.Error(err),
			)
			return nil
		}

		if err := notifier.NotifyNewClient(ctx, client); err != nil {
			logger.Warn("Admin notification failed",
				zap.String("client_id", client.ID),
				zap.Error(err),
			)
		}
		if err := sheetLogger.AppendClient(ctx, client, event.EmbedCode); err != nil {
			logger.Warn("Sheet append failed",
				zap.String("client_id", client.ID),
				zap.Error(err),
			)
		}
		return nil
	}); err != nil {
		logger.Error("Failed to subscribe to client events", zap.Error(err))
	}

	if err := mq.Subscribe(lead.SubjectLeadCreated, func(data []byte) error {
		logger.Info("Lead captured", zap.ByteString("lead", data))
		return nil
	}); err != nil {
		logger.Error("Failed to subscribe to lead events", zap.Error(err))
	}
}
