package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"

	"talentflow/interview/internal/config"
	"talentflow/interview/internal/evaluation"
	"talentflow/interview/internal/handlers"
	"talentflow/interview/internal/interview"
	"talentflow/interview/internal/llm"
	_ "talentflow/interview/internal/llm/gemini"
	"talentflow/interview/internal/prompts"
	"talentflow/interview/internal/question"
	mongorepo "talentflow/interview/internal/repositories/mongo"
	"talentflow/interview/internal/resume"
	"talentflow/interview/internal/routers"
	"talentflow/interview/internal/ws"
)

func registerRoutes(router *chi.Mux, interviewHandler *handlers.InterviewHandler, candidateHandler *handlers.CandidateHandler, healthHandler *handlers.HealthHandler, pushHandler *ws.Handler) {
	routers.HealthRoutes(router, healthHandler)
	routers.InterviewRoutes(router, interviewHandler)
	routers.CandidateRoutes(router, candidateHandler)
	routers.PushRoutes(router, pushHandler)
}

func main() {
	logger, _ := zap.NewProduction()
	defer logger.Sync()

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Fatal("Failed to load configuration", zap.Error(err))
	}

	logger.Info("Configuration loaded",
		zap.String("provider", cfg.Provider),
		zap.String("topic", cfg.Topic))

	// prompt manager
	promptManager, err := prompts.NewPromptManager()
	if err != nil {
		logger.Fatal("Failed to initialize prompt manager", zap.Error(err))
	}

	// AI provider based on configuration
	aiProvider, err := llm.NewProvider(cfg.Provider)
	if err != nil {
		logger.Fatal("Failed to initialize AI provider", zap.Error(err))
	}

	// store
	storeCtx, storeCancel := context.WithTimeout(context.Background(), 15*time.Second)
	mongoClient, err := mongorepo.NewClient(storeCtx, cfg.MongoURI)
	storeCancel()
	if err != nil {
		logger.Fatal("Failed to connect to MongoDB", zap.Error(err))
	}
	db, err := mongoClient.Database(cfg.DatabaseName)
	if err != nil {
		logger.Fatal("Failed to open database", zap.Error(err))
	}
	candidateRepo := mongorepo.NewCandidateRepo(db)
	sessionRepo := mongorepo.NewSessionRepo(db)

	// adapters around the external model; both absorb their own failures
	generator := question.NewGenerator(aiProvider, promptManager, cfg.Topic, cfg.LLMTimeout, logger)
	evaluator := evaluation.NewEvaluator(aiProvider, promptManager, cfg.LLMTimeout, logger)
	summarizer := evaluation.NewSummarizer(aiProvider, promptManager, cfg.LLMTimeout, logger)

	interviewService := interview.NewService(candidateRepo, sessionRepo, generator, evaluator, summarizer, logger)
	candidateService := interview.NewCandidates(candidateRepo, sessionRepo, logger)

	interviewHandler := handlers.NewInterviewHandler(interviewService, candidateService, resume.NewRegexParser(), logger)
	candidateHandler := handlers.NewCandidateHandler(candidateService, logger)
	healthHandler := handlers.NewHealthHandler(aiProvider, promptManager, mongoClient, cfg)
	pushHandler := ws.NewHandler(ws.NewHub(), logger)

	router := chi.NewRouter()

	// cors middleware
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:5173"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	router.Use(middleware.RequestID, middleware.RealIP, middleware.Logger, middleware.Recoverer, middleware.Timeout(60*time.Second))

	registerRoutes(router, interviewHandler, candidateHandler, healthHandler, pushHandler)

	serverAddr := ":" + cfg.Port

	// http server with timeouts
	server := &http.Server{
		Addr:         serverAddr,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// starting server in a goroutine
	go func() {
		logger.Info("Interview service starting", zap.String("addr", serverAddr))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("failed to start server", zap.Error(err))
		}
	}()

	// wait for interrupt signal to gracefully shutdown the server
	shutdownChan := make(chan os.Signal, 1)
	signal.Notify(shutdownChan, syscall.SIGINT, syscall.SIGTERM)
	<-shutdownChan

	logger.Info("Interview service shutting down...")

	// graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logger.Fatal("server forced to shutdown", zap.Error(err))
	}

	if err := mongoClient.Disconnect(ctx); err != nil {
		logger.Error("Failed to disconnect from MongoDB", zap.Error(err))
	}

	logger.Info("Interview service exited")
}
