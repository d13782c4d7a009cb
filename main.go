package main

import (
	"log/slog"
	"os"

	"invoice-scan/pkg/config"
	"invoice-scan/pkg/server"
	"invoice-scan/pkg/services/extract"
	"invoice-scan/pkg/services/llm"
	"invoice-scan/pkg/services/ocr"
	"invoice-scan/pkg/storage"

	"github.com/joho/godotenv"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	if err := godotenv.Load(); err != nil {
		logger.Info("no .env file found, using environment as-is")
	}

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	// Storage is optional: without DATABASE_URL the service runs stateless.
	var store *storage.Store
	if cfg.DatabaseURL != "" {
		var err error
		store, err = storage.Open(cfg.DatabaseURL)
		if err != nil {
			logger.Error("failed to open storage", "error", err)
			os.Exit(1)
		}
	}

	// The token source is expensive to construct; build it once here and
	// hand it to the server by reference.
	var source ocr.TokenSource
	switch cfg.OCREngine {
	case "azure":
		source = ocr.NewAzureSource(cfg.AzureEndpoint, cfg.AzureAPIKey)
	default:
		tess, err := ocr.NewTesseractSource()
		if err != nil {
			logger.Error("failed to initialize tesseract", "error", err)
			os.Exit(1)
		}
		defer tess.Close()
		source = tess
	}
	logger.Info("token source ready", "engine", source.Name())

	engine := extract.NewEngine(logger)
	llmClient := llm.NewClient(cfg.OllamaURL, cfg.OllamaModel)

	srv := server.New(engine, source, store, llmClient, logger, cfg.TempDir, cfg.MaxUploadBytes)

	logger.Info("starting invoice-scan", "port", cfg.Port, "engine", source.Name())
	if err := srv.Router().Run(":" + cfg.Port); err != nil {
		logger.Error("server error", "error", err)
		os.Exit(1)
	}
}
