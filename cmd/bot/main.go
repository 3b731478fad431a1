package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Freeeeeet/class_highlighter/internal/app"
	"github.com/Freeeeeet/class_highlighter/internal/config"
	"github.com/Freeeeeet/class_highlighter/internal/controller"
	"github.com/Freeeeeet/class_highlighter/internal/metrics"
	"github.com/Freeeeeet/class_highlighter/internal/notifier"
	"github.com/Freeeeeet/class_highlighter/internal/render"
	"github.com/Freeeeeet/class_highlighter/internal/repository"
	"github.com/Freeeeeet/class_highlighter/internal/repository/base"
	"github.com/Freeeeeet/class_highlighter/internal/service"
	"github.com/Freeeeeet/class_highlighter/internal/source"
	"github.com/go-telegram/bot"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
)

const shutdownTimeout = 5 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger := app.NewLogger(cfg.Environment)

	code := run(cfg, logger)
	_ = logger.Sync()
	os.Exit(code)
}

func run(cfg *config.Config, logger *zap.Logger) int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info("Starting class highlighter",
		zap.String("environment", cfg.Environment),
		zap.String("timezone", cfg.Location.String()),
		zap.Bool("telegram", cfg.TelegramEnabled()),
		zap.Int("shoutrrr_urls", len(cfg.ShoutrrrURLs)),
	)

	// Хранилище настроек
	store, closeStore, err := openStore(ctx, cfg, logger)
	if err != nil {
		logger.Error("Failed to open settings store", zap.Error(err))
		return 1
	}
	defer closeStore()

	// Таблица расписания
	table := newTable(cfg)
	if code := probeTable(ctx, table, logger); code != 0 {
		return code
	}

	// Telegram
	var tgBot *bot.Bot
	if cfg.TelegramEnabled() {
		tgBot, err = bot.New(cfg.TelegramToken)
		if err != nil {
			logger.Error("Failed to create telegram bot", zap.Error(err))
			return 1
		}
	}

	// Каналы напоминаний
	var channels notifier.Multi
	if tgBot != nil {
		channels = append(channels, notifier.NewTelegram(tgBot, cfg.TelegramChatID))
	}
	if len(cfg.ShoutrrrURLs) > 0 {
		sh, err := notifier.NewShoutrrr(cfg.ShoutrrrURLs, cfg.HTTPTimeout)
		if err != nil {
			logger.Error("Failed to create shoutrrr sender", zap.Error(err))
			return 1
		}
		channels = append(channels, sh)
	}
	gate := notifier.NewGate(channels, logger)
	if tgBot == nil && len(channels) > 0 {
		// без чата управления разрешение выдано самой конфигурацией
		gate.Grant()
	}

	// Метрики
	registry := prometheus.NewRegistry()
	scanMetrics, err := metrics.NewScanMetrics(registry)
	if err != nil {
		logger.Error("Failed to register metrics", zap.Error(err))
		return 1
	}
	metricsServer := startMetricsServer(cfg.MetricsAddr, scanMetrics, logger)

	scheduler := app.NewTickerScheduler(ctx, logger)
	session := service.NewSession(service.SessionDeps{
		Settings:  service.NewSettingsService(store, logger),
		Source:    table,
		Sinks:     []service.Sink{render.NewLogSink(logger)},
		Notifier:  gate,
		Scheduler: scheduler,
		Clock:     service.SystemClock{Location: cfg.Location},
		Observer:  scanMetrics,
		Logger:    logger,
	})

	session.Start(ctx)
	if session.Settings().NotifyBeforeClass {
		gate.Request()
	}

	if tgBot != nil {
		botController := controller.NewBotController(tgBot, session, gate, cfg.TelegramChatID, logger)
		if err := botController.RegisterHandlers(ctx); err != nil {
			logger.Warn("⚠️ Bot commands menu not set", zap.Error(err))
		}
		// блокируется до сигнала
		_ = botController.Start(ctx)
	} else {
		<-ctx.Done()
	}

	logger.Info("Shutting down...")
	session.Stop()
	scheduler.Wait()

	if metricsServer != nil {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := metricsServer.Shutdown(shutdownCtx); err != nil {
			logger.Warn("Metrics server shutdown failed", zap.Error(err))
		}
	}

	logger.Info("✅ Stopped")
	return 0
}

// openStore подключает PostgreSQL и применяет миграции; без DB_DSN настройки живут в памяти
func openStore(ctx context.Context, cfg *config.Config, logger *zap.Logger) (service.SettingsStore, func(), error) {
	if cfg.DBDSN == "" {
		logger.Warn("⚠️  DB_DSN not set, settings are kept in memory")
		return repository.NewMemoryStore(), func() {}, nil
	}

	pool, err := base.Connect(ctx, cfg.DBDSN)
	if err != nil {
		return nil, nil, err
	}
	logger.Info("✅ Connected to database")

	migrator, err := app.NewMigrator(pool, cfg.MigrationsPath, logger)
	if err != nil {
		pool.Close()
		return nil, nil, err
	}
	defer migrator.Close()

	if err := migrator.Run(ctx); err != nil {
		pool.Close()
		return nil, nil, err
	}

	return repository.NewSettingsRepository(base.NewRepository(pool)), pool.Close, nil
}

func newTable(cfg *config.Config) *source.HTMLTable {
	if cfg.ScheduleURL != "" {
		return source.NewURLTable(cfg.ScheduleURL, cfg.TableSelector, &http.Client{Timeout: cfg.HTTPTimeout})
	}
	return source.NewFileTable(cfg.ScheduleFile, cfg.TableSelector)
}

// probeTable проверяет таблицу до старта: без неё работать нечему
func probeTable(ctx context.Context, table *source.HTMLTable, logger *zap.Logger) int {
	rows, err := table.Rows(ctx)
	switch {
	case errors.Is(err, source.ErrTableNotFound):
		logger.Error("Class table not found", zap.String("source", table.Describe()))
		return 1
	case errors.Is(err, source.ErrNoRows):
		logger.Warn("No class rows found", zap.String("source", table.Describe()))
		return 1
	case err != nil:
		logger.Error("Failed to read class table", zap.String("source", table.Describe()), zap.Error(err))
		return 1
	}

	logger.Info("✅ Class table found", zap.String("source", table.Describe()), zap.Int("rows", len(rows)))
	return 0
}

func startMetricsServer(addr string, m *metrics.ScanMetrics, logger *zap.Logger) *http.Server {
	if addr == "" {
		return nil
	}

	mux := http.NewServeMux()
	mux.Handle("/metrics", m.Handler())
	server := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		logger.Info("📈 Metrics server listening", zap.String("addr", addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("Metrics server failed", zap.Error(err))
		}
	}()

	return server
}
