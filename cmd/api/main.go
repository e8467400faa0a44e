package main

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"swasthya-ai/internal/config"
	"swasthya-ai/internal/db"
	"swasthya-ai/internal/healthdata"
	apihttp "swasthya-ai/internal/http"
	"swasthya-ai/internal/llm"
	"swasthya-ai/internal/metrics"
	"swasthya-ai/internal/repository"
	"swasthya-ai/internal/service"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := godotenv.Load(); err != nil {
		log.Printf("warning: loading .env: %v", err)
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	logger, _ := zap.NewProduction()
	if cfg.LogDev {
		logger, _ = zap.NewDevelopment()
	}
	defer logger.Sync()

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	collector := metrics.New(reg)

	var redisClient *redis.Client
	if cfg.RedisAddr != "" {
		redisClient = redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		defer redisClient.Close()
		ctxPing, cancel := context.WithTimeout(ctx, 2*time.Second)
		if err := redisClient.Ping(ctxPing).Err(); err != nil {
			logger.Warn("redis ping failed", zap.Error(err))
		}
		cancel()
	}

	var transcripts *repository.PgTranscriptRepository
	var profileRepo repository.ProfileRepository
	if cfg.DatabaseURL != "" {
		pool, err := db.NewPool(ctx, cfg.DatabaseURL)
		if err != nil {
			logger.Fatal("db connect", zap.Error(err))
		}
		defer pool.Close()
		if err := db.EnsureSchema(ctx, pool); err != nil {
			logger.Fatal("db schema", zap.Error(err))
		}
		transcripts = repository.NewPgTranscriptRepository(pool)
		if cfg.ProfileStore == config.ProfileStorePostgres {
			profileRepo = repository.NewPgProfileRepository(pool)
		}
	}

	switch cfg.ProfileStore {
	case config.ProfileStoreBolt:
		boltRepo, err := repository.NewBoltProfileRepository(cfg.BoltPath)
		if err != nil {
			logger.Fatal("bolt open", zap.String("path", cfg.BoltPath), zap.Error(err))
		}
		defer boltRepo.Close()
		profileRepo = boltRepo
	case config.ProfileStoreRedis:
		profileRepo = repository.NewRedisProfileRepository(redisClient)
	case config.ProfileStoreMemory:
		profileRepo = repository.NewMemoryProfileRepository()
	}
	logger.Info("profile store ready", zap.String("store", cfg.ProfileStore))

	data := healthdata.Default()
	deps := service.SessionDeps{
		Resolver:  service.NewResponseResolver(data),
		Questions: data.Questions,
		Profiles:  service.NewProfileService(profileRepo, logger),
		Pacing: service.Pacing{
			ReplyDelayMin: cfg.ReplyDelayMin(),
			ReplyDelayMax: cfg.ReplyDelayMax(),
			QuestionDelay: cfg.QuestionDelay(),
		},
		Metrics: collector,
		Logger:  logger,
	}
	var archive service.TranscriptArchive
	if transcripts != nil {
		archive = transcripts
	}
	sessions := service.NewSessionManager(deps, archive)

	var tokenStore service.TokenStore
	var limiter service.RateLimiter
	if redisClient != nil {
		tokenStore = service.NewRedisTokenStore(redisClient)
		limiter = service.NewRedisRateLimiter(redisClient, time.Minute, cfg.AIRateLimitPerMinute)
	} else {
		limiter = service.NewMemoryRateLimiter(time.Minute, cfg.AIRateLimitPerMinute)
	}
	secret := cfg.JWTSecret
	if secret == "" {
		secret = rand.Text()
		logger.Warn("jwt secret not configured, session tokens will not survive a restart")
	}
	tokens := service.NewSessionTokenService(secret, cfg.SessionTokenTTL(), tokenStore)

	var llmClient llm.LLMClient
	if cfg.GeminiAPIKey != "" {
		gemini, err := llm.NewGeminiClient(ctx, cfg.GeminiAPIKey, cfg.GeminiTextModel, cfg.GeminiVisionModel, logger)
		if err != nil {
			logger.Fatal("gemini client", zap.Error(err))
		}
		llmClient = gemini
	} else {
		logger.Warn("GEMINI_API_KEY not set, AI routes will answer with an error")
	}
	aiOpts := service.AIOptions{Metrics: collector, Logger: logger, Timeout: cfg.AITimeout()}
	aiHandler := apihttp.NewAIHandler(
		logger,
		service.NewFoodAnalysisService(llmClient, aiOpts),
		service.NewMedicineInfoService(llmClient, cfg.MedicineCacheTTL(), aiOpts),
		service.NewPrescriptionService(llmClient, aiOpts),
		service.NewVoiceChatService(llmClient, aiOpts),
	)

	router := apihttp.NewRouter(logger, apihttp.RouterDeps{
		Chat:      apihttp.NewChatHandler(logger, sessions, tokens),
		Reference: apihttp.NewReferenceHandler(data),
		AI:        aiHandler,
		Tokens:    tokens,
		Limiter:   limiter,
		Metrics:   promhttp.HandlerFor(reg, promhttp.HandlerOpts{}),
	})

	server := &http.Server{
		Addr:              ":" + cfg.HTTPPort,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		ticker := time.NewTicker(time.Minute)
		defer ticker.Stop()
		for {
			select {
			case <-gctx.Done():
				return nil
			case <-ticker.C:
				sessions.Cleanup(cfg.SessionIdle())
			}
		}
	})

	g.Go(func() error {
		logger.Info("starting server", zap.String("port", cfg.HTTPPort))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("listen: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		logger.Error("server stopped with error", zap.Error(err))
	}
}
