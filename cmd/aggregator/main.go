package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"job_aggregator/internal/config"
	"job_aggregator/internal/domain"
	"job_aggregator/internal/metrics"
	"job_aggregator/internal/publisher"
	"job_aggregator/internal/scheduler"
	"job_aggregator/internal/service"
	"job_aggregator/internal/source"
	"job_aggregator/internal/storage/postgres"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	once := flag.Bool("once", false, "run a single aggregation cycle and exit")
	check := flag.Bool("check", false, "test connectivity of every enabled source and exit")
	flag.Parse()

	logger := setupLogger("info")

	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger = setupLogger(cfg.LogLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		sig := <-sigCh
		logger.Info("received shutdown signal", "signal", sig)
		cancel()
	}()

	extractors := source.Build(cfg, logger)

	if *check {
		if !checkSources(ctx, extractors, logger) {
			os.Exit(1)
		}
		return
	}

	db, err := sqlx.Connect("postgres", cfg.Database.DSN())
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()
	logger.Info("connected to database", "host", cfg.Database.Host, "dbname", cfg.Database.DBName)

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	m := metrics.New(registry)

	if cfg.Metrics.Addr != "" {
		srv := startMetricsServer(cfg.Metrics.Addr, registry, logger)
		defer func() {
			shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer shutdownCancel()
			_ = srv.Shutdown(shutdownCtx)
		}()
	}

	// A nil interface, not a typed nil, keeps the notifier from publishing.
	var pub service.Publisher
	if cfg.RabbitMQ.Enabled {
		kinds := make([]domain.AlertKind, 0, len(cfg.RabbitMQ.AlertKinds))
		for _, k := range cfg.RabbitMQ.AlertKinds {
			kinds = append(kinds, domain.AlertKind(k))
		}
		rabbitMQ, err := publisher.NewRabbitMQ(publisher.Config{
			URL:          cfg.RabbitMQ.URL,
			Exchange:     cfg.RabbitMQ.Exchange,
			ExchangeType: cfg.RabbitMQ.ExchangeType,
			RoutingKey:   cfg.RabbitMQ.RoutingKey,
			QueueName:    cfg.RabbitMQ.QueueName,
			Kinds:        kinds,
		}, logger)
		if err != nil {
			logger.Error("failed to connect to rabbitmq", "error", err)
			os.Exit(1)
		}
		defer rabbitMQ.Close()
		pub = rabbitMQ
	}

	postingStore := postgres.NewPostingStore(db)
	keywordStore := postgres.NewKeywordStore(db)
	alertStore := postgres.NewAlertStore(db)
	runLogStore := postgres.NewRunLogStore(db)
	txManager := postgres.NewTransactionManager(db)

	pipeline := service.NewPipeline(
		keywordStore,
		runLogStore,
		service.NewAggregator(extractors, runLogStore, cfg.Aggregation.Concurrency, m, logger),
		service.NewMerger(postingStore, txManager, m, logger),
		service.NewNotifier(postingStore, keywordStore, alertStore, pub, m, logger),
		cfg.Aggregation.MaxResultsPerSource,
		logger,
	)

	sched, err := scheduler.NewScheduler(pipeline, cfg.Schedule.Spec, cfg.Schedule.CycleTimeout, m, logger)
	if err != nil {
		logger.Error("invalid schedule", "error", err)
		os.Exit(1)
	}

	if *once {
		if _, err := sched.RunOnce(ctx); err != nil {
			logger.Error("cycle failed", "error", err)
			os.Exit(1)
		}
		return
	}

	logger.Info("starting job aggregator",
		"schedule", cfg.Schedule.Spec,
		"sources", len(extractors),
		"max_results_per_source", cfg.Aggregation.MaxResultsPerSource,
	)

	if err := sched.RunForever(ctx); err != nil && !errors.Is(err, context.Canceled) {
		logger.Error("scheduler error", "error", err)
		os.Exit(1)
	}
}

func checkSources(ctx context.Context, extractors []service.Extractor, logger *slog.Logger) bool {
	ok := true
	for _, e := range extractors {
		if !e.Enabled() {
			logger.Info("source disabled", "source", e.Name())
			continue
		}
		reachable := e.TestConnection(ctx)
		logger.Info("source connectivity", "source", e.Name(), "reachable", reachable)
		ok = ok && reachable
	}
	return ok
}

func startMetricsServer(addr string, registry *prometheus.Registry, logger *slog.Logger) *http.Server {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))

	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		logger.Info("metrics server listening", "addr", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("metrics server failed", "error", err)
		}
	}()

	return srv
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
