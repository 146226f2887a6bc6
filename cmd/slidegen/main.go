package main

import (
	"log"
	"log/slog"

	"slidegen/internal/config"
	"slidegen/internal/db"
	"slidegen/internal/export"
	"slidegen/internal/generator"
	claudegen "slidegen/internal/generator/claude"
	geminigen "slidegen/internal/generator/gemini"
	"slidegen/internal/imagestore"
	"slidegen/internal/logging"
	"slidegen/internal/session"
	"slidegen/internal/store"
	"slidegen/internal/web"
	"slidegen/internal/web/templates"
)

func main() {
	cfg := config.Load()

	logger, cleanup, err := logging.New(cfg.LogLevel, cfg.LogFormat, cfg.LogFile)
	if err != nil {
		log.Fatalf("failed to initialize logger: %v", err)
	}
	defer cleanup()

	database, err := db.Open(cfg.DBPath)
	if err != nil {
		logger.Error("failed to open database", "error", err)
		return
	}
	defer func() {
		if err := database.Close(); err != nil {
			logger.Error("failed to close database", "error", err)
		}
	}()

	contentGen, model := newContentGenerator(cfg, logger)
	if contentGen == nil {
		return
	}

	clipboard, err := export.DetectClipboard(cfg.ClipboardCmd)
	if err != nil {
		logger.Error("failed to find a clipboard command", "error", err)
		return
	}

	images, err := imagestore.NewLocalStore(cfg.ImagePath)
	if err != nil {
		logger.Error("failed to initialize image store", "error", err)
		return
	}

	history := store.NewGenerationStore(database)
	sess := session.NewManager(contentGen, clipboard, history, model, logger)
	server := web.NewServer(sess, history, images, templates.FS, logger)

	if err := server.ListenAndServe(cfg.ListenAddr); err != nil {
		logger.Error("server error", "error", err)
	}
}

func newContentGenerator(cfg *config.Config, logger *slog.Logger) (generator.ContentGenerator, string) {
	switch cfg.GeneratorBackend {
	case "claude":
		if cfg.ClaudeAPIKey == "" {
			logger.Error("CLAUDE_API_KEY is required when GENERATOR_BACKEND=claude")
			return nil, ""
		}
		logger.Info("using Claude generator backend", "model", cfg.ClaudeModel)
		return claudegen.NewClaudeGenerator(cfg.ClaudeAPIKey, cfg.ClaudeModel), cfg.ClaudeModel
	default:
		if cfg.GeminiAPIKey == "" {
			logger.Error("GEMINI_API_KEY is required when GENERATOR_BACKEND=gemini")
			return nil, ""
		}
		logger.Info("using Gemini generator backend", "model", cfg.GeminiModel)
		return geminigen.NewGeminiGenerator(cfg.GeminiAPIKey, cfg.GeminiModel), cfg.GeminiModel
	}
}
