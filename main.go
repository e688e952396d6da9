package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"golang.org/x/sync/errgroup"

	"github.com/vladimiradmaev/macrofit/internal/api"
	"github.com/vladimiradmaev/macrofit/internal/bot"
	"github.com/vladimiradmaev/macrofit/internal/bot/state"
	"github.com/vladimiradmaev/macrofit/internal/catalog"
	"github.com/vladimiradmaev/macrofit/internal/config"
	"github.com/vladimiradmaev/macrofit/internal/logger"
	"github.com/vladimiradmaev/macrofit/internal/services"
)

const shutdownTimeout = 10 * time.Second

func main() {
	if err := godotenv.Load(); err != nil {
		logger.Warn(".env file not found, using environment only")
	}

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Failed to load config", "error", err)
	}

	if err := logger.InitWithConfig(logger.Config{
		Level:      cfg.Logger.Level,
		OutputPath: cfg.Logger.OutputPath,
		Format:     cfg.Logger.Format,
	}); err != nil {
		logger.Fatal("Failed to initialize logger", "error", err)
	}
	defer logger.Close()

	logger.Info("Starting MacroFit...")

	meals := catalog.Default()
	nutritionService := services.NewNutritionService(meals)
	logger.Info("Services initialized", "catalog_size", meals.Len())

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)

	server := &http.Server{
		Addr:              cfg.HTTP.Addr(),
		Handler:           api.SetupRouter(nutritionService, cfg.HTTP),
		ReadHeaderTimeout: 5 * time.Second,
	}
	g.Go(func() error {
		logger.Info("HTTP API listening", "addr", server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})

	if cfg.BotEnabled() {
		stateManager, closeState, err := newStateManager(cfg)
		if err != nil {
			logger.Fatal("Failed to initialize session state", "backend", cfg.StateBackend, "error", err)
		}
		defer closeState()

		telegramBot, err := bot.NewBot(cfg.TelegramToken, nutritionService, stateManager)
		if err != nil {
			logger.Fatal("Failed to create bot", "error", err)
		}
		g.Go(func() error {
			return telegramBot.Start(ctx)
		})
	} else {
		logger.Info("TELEGRAM_BOT_TOKEN not set, bot disabled")
	}

	if err := g.Wait(); err != nil {
		logger.Fatal("Stopped with error", "error", err)
	}
	logger.Info("Shut down cleanly")
}

func newStateManager(cfg *config.Config) (state.StateManager, func(), error) {
	if cfg.StateBackend != config.StateBackendRedis {
		return state.NewManager(), func() {}, nil
	}

	m, err := state.NewRedisManager(cfg.Redis)
	if err != nil {
		return nil, nil, err
	}
	logger.Info("Using Redis session state", "host", cfg.Redis.Host, "ttl", cfg.Redis.SessionTTL)
	return m, func() {
		if err := m.Close(); err != nil {
			logger.Warn("Failed to close Redis", "error", err)
		}
	}, nil
}
