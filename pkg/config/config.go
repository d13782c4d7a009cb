package config

import (
	"fmt"
	"os"
	"strconv"
)

// Config holds the service configuration, read from the environment.
type Config struct {
	Port string

	// Postgres connection string. Empty runs the service stateless:
	// scans still work, nothing is persisted.
	DatabaseURL string

	// OCR backend: "tesseract" or "azure".
	OCREngine     string
	AzureEndpoint string
	AzureAPIKey   string

	// LLM alternative extraction path
	OllamaURL   string
	OllamaModel string

	// Upload handling
	TempDir        string
	MaxUploadBytes int64
}

// Load reads configuration from the environment with defaults.
func Load() Config {
	return Config{
		Port: envOr("PORT", "8080"),

		DatabaseURL: os.Getenv("DATABASE_URL"),

		OCREngine:     envOr("OCR_ENGINE", "tesseract"),
		AzureEndpoint: os.Getenv("AZURE_OCR_ENDPOINT"),
		AzureAPIKey:   os.Getenv("AZURE_OCR_KEY"),

		OllamaURL:   envOr("OLLAMA_URL", "http://localhost:11434"),
		OllamaModel: envOr("OLLAMA_MODEL", "phi3:3.8b"),

		TempDir:        envOr("TEMP_DIR", "temp_uploads"),
		MaxUploadBytes: envInt64("MAX_UPLOAD_BYTES", 20<<20),
	}
}

// Validate checks that the selected OCR backend is usable.
func (c Config) Validate() error {
	switch c.OCREngine {
	case "tesseract":
	case "azure":
		if c.AzureEndpoint == "" || c.AzureAPIKey == "" {
			return fmt.Errorf("AZURE_OCR_ENDPOINT and AZURE_OCR_KEY are required when OCR_ENGINE=azure")
		}
	default:
		return fmt.Errorf("unknown OCR_ENGINE %q", c.OCREngine)
	}
	if c.MaxUploadBytes <= 0 {
		return fmt.Errorf("MAX_UPLOAD_BYTES must be positive")
	}
	return nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt64(key string, fallback int64) int64 {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			return n
		}
	}
	return fallback
}
