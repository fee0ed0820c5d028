// @title Quiz MCQ API
// @version 1.0
// @description Generates multiple choice questions on a topic using a language model.
// @license.name Apache 2.0
// @license.url http://www.apache.org/licenses/LICENSE-2.0.html
// @host localhost:8000
// @BasePath /
// @schemes http https
package main

import (
	"context"
	"errors"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "quiz-mcq/cmd/api/docs"
	"quiz-mcq/internal/adapter/llm"
	"quiz-mcq/internal/adapter/quizgen"
	"quiz-mcq/internal/config"
	"quiz-mcq/internal/handler"
	"quiz-mcq/internal/logger"
	"quiz-mcq/internal/middleware"
	"quiz-mcq/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 10 * time.Second

func newApp(cfg *config.Config, quizHandler *handler.QuizHandler) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:      "quiz-mcq",
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
		BodyLimit:    cfg.Server.BodyLimit,
		ErrorHandler: middleware.ErrorHandler(),
	})

	app.Use(recover.New())
	app.Use(middleware.RequestID())
	app.Use(middleware.RequestLogger())
	app.Use(cors.New(cors.Config{
		AllowOrigins:  cfg.CORS.AllowOrigins,
		AllowMethods:  "GET,POST,PUT,PATCH,DELETE,HEAD,OPTIONS",
		AllowHeaders:  "*",
		ExposeHeaders: middleware.RequestIDHeader,
		MaxAge:        300,
	}))

	app.Get("/swagger/*", swagger.HandlerDefault)
	app.Get("/health", quizHandler.Health)
	app.Post("/generate-quiz", quizHandler.GenerateQuiz)

	return app
}

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := logger.Initialize(cfg.Logger); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	appLogger := logger.Get()
	defer func() { _ = logger.Sync() }()

	model, err := llm.NewModel(cfg.LLM)
	if err != nil {
		appLogger.Fatal("Failed to create LLM client", zap.Error(err))
	}
	appLogger.Info("LLM client initialized",
		zap.String("provider", cfg.LLM.Provider),
		zap.String("model", cfg.LLM.Model),
	)

	client := llm.NewCompletionClient(model, cfg.LLM.Model, quizgen.Temperature, quizgen.MaxTokens, cfg.LLM.Timeout)
	quizService := service.NewQuizService(client, quizgen.NewParser(appLogger))
	quizHandler := handler.NewQuizHandler(quizService)

	app := newApp(cfg, quizHandler)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		appLogger.Info("Starting server", zap.String("addr", cfg.Address()), zap.String("env", cfg.Logger.Env))
		return app.Listen(cfg.Address())
	})
	g.Go(func() error {
		<-gctx.Done()
		appLogger.Info("Shutting down server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return app.ShutdownWithContext(shutdownCtx)
	})

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		appLogger.Fatal("Server stopped with error", zap.Error(err))
	}
	appLogger.Info("Server exited gracefully")
}
