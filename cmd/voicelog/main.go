package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"
	"time"

	"github.com/alderwick/voicelog/internal/api"
	"github.com/alderwick/voicelog/internal/audio"
	"github.com/alderwick/voicelog/internal/config"
	"github.com/alderwick/voicelog/internal/db"
	"github.com/alderwick/voicelog/internal/services"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"go.uber.org/zap"
)

func main() {
	cfg := config.Load()

	zapLogger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("logger init failed: %v", err)
	}
	defer zapLogger.Sync()

	location := mustLoadLocation(cfg.Timezone, zapLogger)
	time.Local = location

	database, err := db.OpenSQLite(cfg.DBPath)
	if err != nil {
		zapLogger.Fatal("database init failed", zap.Error(err))
	}

	normalizer := audio.NewFFmpegNormalizer(cfg.FFmpegPath, zapLogger)
	transcriber := services.NewTranscriptionService(cfg.OpenAIKey, cfg.OpenAIModel, zapLogger)
	handler := api.NewHandler(database, cfg.SecretKey, cfg.MediaRoot, location, zapLogger, normalizer, transcriber)

	app := fiber.New(fiber.Config{
		AppName:               "Voicelog",
		DisableStartupMessage: true,
		BodyLimit:             audio.MaxPayloadBytes * 2,
	})

	app.Use(recover.New())
	app.Use(logger.New())
	api.RegisterRoutes(app, handler)

	sigCtx, stopSignals := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stopSignals()

	go func() {
		<-sigCtx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := app.ShutdownWithContext(shutdownCtx); err != nil {
			zapLogger.Error("server shutdown failed", zap.Error(err))
		}
	}()

	zapLogger.Info("voicelog listening",
		zap.String("port", cfg.Port),
		zap.String("db", cfg.DBPath),
		zap.String("media_root", cfg.MediaRoot),
		zap.String("tz", location.String()),
	)
	if err := app.Listen(":" + cfg.Port); err != nil {
		zapLogger.Fatal("server exited", zap.Error(err))
	}
}

func mustLoadLocation(name string, zapLogger *zap.Logger) *time.Location {
	location, err := time.LoadLocation(name)
	if err != nil {
		zapLogger.Warn("invalid TZ, falling back to UTC", zap.String("tz", name))
		return time.UTC
	}
	return location
}
