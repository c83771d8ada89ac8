package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	"seo_tracker/internal/api"
	"seo_tracker/internal/config"
	"seo_tracker/internal/metrics"
	"seo_tracker/internal/publisher"
	"seo_tracker/internal/service"
	"seo_tracker/internal/source/pagespeed"
	"seo_tracker/internal/storage/postgres"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	flag.Parse()

	logger := setupLogger("info")

	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid config", "error", err)
		os.Exit(1)
	}

	logger = setupLogger(cfg.LogLevel)
	gin.SetMode(cfg.Server.GinMode)

	db, err := sqlx.Connect("postgres", cfg.Database.DSN())
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		logger.Error("failed to ping database", "error", err)
		os.Exit(1)
	}
	logger.Info("connected to database")

	// Events are optional; a nil Publisher disables them.
	var events service.Publisher
	if cfg.RabbitMQ.Enabled {
		rabbitMQ, err := publisher.NewRabbitMQ(publisher.Config{
			URL:        cfg.RabbitMQ.URL,
			Exchange:   cfg.RabbitMQ.Exchange,
			RoutingKey: cfg.RabbitMQ.RoutingKey,
			QueueName:  cfg.RabbitMQ.QueueName,
		}, logger)
		if err != nil {
			logger.Error("failed to connect to rabbitmq", "error", err)
			os.Exit(1)
		}
		defer rabbitMQ.Close()
		events = rabbitMQ
	}

	websiteStore := postgres.NewWebsiteStore(db)
	metricsStore := postgres.NewMetricsStore(db)
	auditStore := postgres.NewAuditStore(db)
	txManager := postgres.NewTransactionManager(db)

	auditor := pagespeed.New(pagespeed.Config{
		BaseURL:           cfg.PageSpeed.BaseURL,
		APIKey:            cfg.PageSpeed.APIKey,
		Timeout:           cfg.PageSpeed.Timeout,
		RequestsPerMinute: cfg.PageSpeed.RequestsPerMinute,
	}, logger)
	if cfg.PageSpeed.APIKey == "" {
		logger.Warn("pagespeed api key is not set, requests are subject to anonymous quota")
	}

	promMetrics := metrics.New()

	websiteService := service.NewWebsiteService(
		websiteStore,
		metricsStore,
		auditStore,
		txManager,
		events,
		logger,
	)
	auditService := service.NewAuditService(
		websiteStore,
		auditStore,
		auditor,
		txManager,
		events,
		promMetrics,
		logger,
	)

	router := api.NewRouter(api.NewHandler(websiteService, auditService), api.RouterConfig{
		CORSOrigins: cfg.Server.CORSOrigins,
		Metrics:     promMetrics,
		HealthCheck: db.PingContext,
	}, logger)

	server := api.NewServer(cfg.Server.Addr(), router, logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		errCh <- server.Start()
	}()

	select {
	case err := <-errCh:
		if err != nil {
			logger.Error("http server error", "error", err)
			os.Exit(1)
		}
		return
	case <-ctx.Done():
		logger.Info("received shutdown signal")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown failed", "error", err)
	}
}

func setupLogger(level string) *slog.Logger {
	var logLevel slog.Level
	switch level {
	case "debug":
		logLevel = slog.LevelDebug
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: logLevel}
	handler := slog.NewJSONHandler(os.Stdout, opts)
	return slog.New(handler)
}
