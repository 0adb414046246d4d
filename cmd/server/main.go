package main

import (
	"context"
	"net"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/rs/zerolog"

	"github.com/eruerumiru/makeshop-recotest/config"
	"github.com/eruerumiru/makeshop-recotest/internal/delivery/httpapi"
	"github.com/eruerumiru/makeshop-recotest/internal/delivery/telegram"
	"github.com/eruerumiru/makeshop-recotest/internal/domain/constants"
	"github.com/eruerumiru/makeshop-recotest/internal/domain/repository"
	"github.com/eruerumiru/makeshop-recotest/internal/infrastructure/gemini"
	"github.com/eruerumiru/makeshop-recotest/internal/infrastructure/imaging"
	"github.com/eruerumiru/makeshop-recotest/internal/infrastructure/storage"
	"github.com/eruerumiru/makeshop-recotest/internal/usecase"
)

func main() {
	logger := newLogger()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal().Err(err).Msg("config load failed")
	}
	logger = logger.Level(parseLogLevel(cfg.LogLevel))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Catalog source: database wins over file export.
	var catalog repository.CatalogRepository
	switch {
	case cfg.DatabaseURL != "":
		pg, err := storage.NewPostgresCatalogRepository(cfg.DatabaseURL)
		if err != nil {
			logger.Fatal().Err(err).Msg("postgres catalog unavailable")
		}
		defer pg.Close()
		// With both sources configured, the file seeds the database first.
		if cfg.CatalogFile != "" {
			n, err := storage.ImportCatalog(ctx, storage.NewFileCatalogRepository(cfg.CatalogFile), pg)
			if err != nil {
				logger.Fatal().Err(err).Msg("catalog import failed")
			}
			logger.Info().Int("rows", n).Str("file", cfg.CatalogFile).Msg("catalog imported")
		}
		catalog = pg
		logger.Info().Msg("catalog source: postgres")
	default:
		catalog = storage.NewFileCatalogRepository(cfg.CatalogFile)
		logger.Info().Str("file", cfg.CatalogFile).Msg("catalog source: file")
	}
	catalog = storage.NewCachedCatalogRepository(catalog, constants.CatalogCacheTTL)

	engine := usecase.NewRecommendUseCase(catalog, usecase.NewJapaneseSpecExtractor(), logger)

	if cfg.ImageLookup {
		engine.SetImageResolver(imaging.NewOGImageResolver(logger))
	}
	if cfg.GeminiAPIKey != "" {
		ai, err := gemini.NewGeminiClient(cfg.GeminiAPIKey)
		if err != nil {
			logger.Warn().Err(err).Msg("gemini unavailable, using template notes")
		} else {
			engine.SetAIRepository(ai)
			logger.Info().Str("model", constants.GeminiModelName).Msg("gemini advice enabled")
		}
	}

	var wg sync.WaitGroup

	handler := httpapi.NewHandler(engine, logger)
	server := httpapi.NewServer(net.JoinHostPort("", cfg.Port), handler.Router(), logger)
	wg.Add(1)
	go func() {
		defer wg.Done()
		if err := server.Run(ctx); err != nil {
			logger.Error().Err(err).Msg("http server exited")
			stop()
		}
	}()

	if cfg.TelegramToken != "" {
		bot, err := telegram.NewBotHandler(cfg.TelegramToken, engine, logger)
		if err != nil {
			logger.Fatal().Err(err).Msg("telegram bot init failed")
		}
		wg.Add(1)
		go func() {
			defer wg.Done()
			bot.Start(ctx)
		}()
	}

	<-ctx.Done()
	logger.Info().Msg("shutting down")
	wg.Wait()
}

func newLogger() zerolog.Logger {
	return zerolog.New(os.Stderr).With().Timestamp().Logger()
}

func parseLogLevel(raw string) zerolog.Level {
	level, err := zerolog.ParseLevel(raw)
	if err != nil || level == zerolog.NoLevel {
		return zerolog.InfoLevel
	}
	return level
}
