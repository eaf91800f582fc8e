package components

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"oceanwatch/internal/api"
	"oceanwatch/internal/classifier"
	"oceanwatch/internal/config"
	"oceanwatch/internal/observability"
	"oceanwatch/internal/redis"
	"oceanwatch/internal/service"
	"oceanwatch/internal/storage/postgres"
)

const alertQueueKey = "alerts:queue"

type Components struct {
	logger          *slog.Logger
	HttpServer      *api.Server
	AlertDispatcher *service.AlertDispatcher
	Postgres        *postgres.Postgres
	Redis           *redis.Redis
	Classifier      *classifier.Client
}

func InitComponents(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*Components, error) {
	metrics := observability.NewMetrics()

	logger.Info("initializing postgres")
	storage, err := postgres.NewPostgres(ctx, cfg, logger)
	if err != nil {
		logger.Error("failed to init postgres", slog.Any("error", err))
		return nil, fmt.Errorf("failed to init postgres: %w", err)
	}

	logger.Info("initializing redis")
	redisClient, err := redis.NewRedis(ctx, cfg, logger)
	if err != nil {
		storage.Close()
		return nil, fmt.Errorf("failed to init redis: %w", err)
	}

	alertQueue := redis.NewAlertQueue(redisClient.Client, alertQueueKey)

	gemini, err := classifier.NewClient(ctx, classifier.Config{
		APIKey: cfg.Gemini.APIKey,
		Model:  cfg.Gemini.Model,
	}, logger, metrics.ClassificationRequests, metrics.ClassificationFallbacks)
	if err != nil {
		storage.Close()
		_ = redisClient.Close()
		return nil, fmt.Errorf("failed to init classifier: %w", err)
	}

	reportSvc := service.NewReportService(service.ReportServiceDeps{
		Repo:       storage.Reports(),
		Classifier: gemini,
		Alerts:     alertQueue,
		Logger:     logger,
		Metrics:    metrics,
	})
	aggregationSvc := service.NewAggregationService(storage.Stats())
	weatherSvc := service.NewWeatherService(nil)

	svc := service.NewService(reportSvc, reportSvc, aggregationSvc, weatherSvc)

	httpServer := api.NewServer(cfg, logger, svc)
	dispatcher := service.NewAlertDispatcher(logger, cfg.Webhook, alertQueue)

	logger.Info("components initialized")

	return &Components{
		logger:          logger,
		HttpServer:      httpServer,
		AlertDispatcher: dispatcher,
		Postgres:        storage,
		Redis:           redisClient,
		Classifier:      gemini,
	}, nil
}

func SetupLogger(env string) *slog.Logger {
	switch env {
	case "local":
		return slog.New(
			slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
				Level: slog.LevelDebug,
			}),
		)
	case "dev":
		return slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
				Level: slog.LevelDebug,
			}),
		)
	default:
		return slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
				Level: slog.LevelInfo,
			}),
		)
	}
}

func (c *Components) ShutdownAll() {
	start := time.Now()
	c.logger.Info("shutting down components")

	c.Postgres.Close()
	if c.Redis != nil {
		if err := c.Redis.Close(); err != nil {
			c.logger.Error("redis close failed", slog.String("error", err.Error()))
		}
	}
	if c.Classifier != nil {
		if err := c.Classifier.Close(); err != nil {
			c.logger.Error("classifier close failed", slog.String("error", err.Error()))
		}
	}

	c.logger.Info("all components stopped", slog.Duration("latency", time.Since(start)))
}
