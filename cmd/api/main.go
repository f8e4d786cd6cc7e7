package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"fed-sentiment/internal/artifact"
	"fed-sentiment/internal/config"
	apihttp "fed-sentiment/internal/http"
	"fed-sentiment/internal/service"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

func main() {
	ctx := context.Background()

	if err := godotenv.Load(); err != nil {
		log.Printf("warning: loading .env: %v", err)
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		panic(err)
	}

	logger, err := config.NewLogger(cfg)
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	manifest, err := config.LoadManifest(cfg)
	if err != nil {
		logger.Fatal("artifact manifest", zap.Error(err))
	}

	stateStore := service.NewMemorySurveyStateStore()
	if cfg.RedisAddr != "" {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		ctxPing, cancel := context.WithTimeout(ctx, 2*time.Second)
		if err := redisClient.Ping(ctxPing).Err(); err != nil {
			logger.Warn("redis ping failed, using in-memory survey state", zap.Error(err))
		} else {
			stateStore = service.NewRedisSurveyStateStore(redisClient)
			defer redisClient.Close()
		}
		cancel()
	}

	sessions := service.NewSessionTokenService(cfg.SessionSecret, cfg.SessionTTL())
	if cfg.SessionSecret == "" {
		logger.Warn("session secret not configured, sessions will not survive a restart")
	}

	loader := artifact.NewResolver(
		artifact.NewImageLoader(cfg.ArtifactFetchTimeout, logger),
		artifact.NewTableLoader(),
	)
	reportSvc := service.NewReportService(manifest, loader, cfg.ProjectURL, cfg.ArtifactConcurrency, logger)
	surveySvc := service.NewSurveyService(stateStore, cfg.SessionTTL(), logger)

	reportHandler := apihttp.NewReportHandler(logger, reportSvc, surveySvc)
	surveyHandler := apihttp.NewSurveyHandler(logger, surveySvc)
	router, err := apihttp.NewRouter(logger, sessions, cfg.SecureCookies(), reportHandler, surveyHandler)
	if err != nil {
		logger.Fatal("router init", zap.Error(err))
	}

	server := &http.Server{
		Addr:              ":" + cfg.HTTPPort,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	logger.Info("starting server",
		zap.String("port", cfg.HTTPPort),
		zap.String("artifact_base_url", cfg.ArtifactBaseURL),
		zap.Int("artifact_concurrency", cfg.ArtifactConcurrency),
	)

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Fatal("server error", zap.Error(err))
	}
}
