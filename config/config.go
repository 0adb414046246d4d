package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"github.com/eruerumiru/makeshop-recotest/internal/domain/constants"
)

// Config holds runtime settings. Catalog source is either a database or an
// export file; everything else is optional.
type Config struct {
	Port        string
	DatabaseURL string
	CatalogFile string

	TelegramToken string
	GeminiAPIKey  string

	ImageLookup bool
	LogLevel    string
}

// Load reads environment variables, honoring a .env file when present.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Port:          getEnv("PORT", constants.DefaultHTTPPort),
		DatabaseURL:   strings.TrimSpace(os.Getenv("DATABASE_URL")),
		CatalogFile:   strings.TrimSpace(os.Getenv("CATALOG_FILE")),
		TelegramToken: strings.TrimSpace(os.Getenv("TELEGRAM_BOT_TOKEN")),
		GeminiAPIKey:  strings.TrimSpace(os.Getenv("GEMINI_API_KEY")),
		ImageLookup:   getEnvBool("IMAGE_LOOKUP", true),
		LogLevel:      getEnv("LOG_LEVEL", "info"),
	}

	if cfg.DatabaseURL == "" && cfg.CatalogFile == "" {
		return nil, fmt.Errorf("DATABASE_URL or CATALOG_FILE is required")
	}
	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return fallback
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return fallback
	}
	return v
}
