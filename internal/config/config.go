package config

import (
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"gestor/internal/record"
)

// AppConfig holds the complete application configuration.
type AppConfig struct {
	FeedURL             string
	FeedPath            string
	DataPath            string
	LogDir              string
	DateBounds          record.DateBounds
	RequireKey          bool
	EnableMermaidCharts bool
}

// FeedSource returns the configured default feed: the explicit path when set,
// otherwise the URL. Empty when neither is configured.
func (c *AppConfig) FeedSource() string {
	if c.FeedPath != "" {
		return c.FeedPath
	}
	return c.FeedURL
}

// Load loads the configuration from .env files and environment variables.
func Load() (*AppConfig, error) {
	// 1. Try to load from the executable's directory (highest priority for stdio servers)
	exePath, err := os.Executable()
	exeDir := ""
	if err == nil {
		exeDir = filepath.Dir(exePath)
		envPath := filepath.Join(exeDir, ".env")
		if err := godotenv.Load(envPath); err == nil {
			log.Debug().Str("path", envPath).Msg("Loaded configuration from binary directory")
		}
	}

	// 2. Fallback to current working directory (useful for development/go run)
	if err := godotenv.Load(); err != nil {
		log.Debug().Msg("No .env file found in working directory, relying on environment variables or binary-relative .env")
	}

	// 3. Resolve Data Paths
	dataPath := os.Getenv("DATA_PATH")
	if dataPath == "" {
		if exeDir != "" {
			dataPath = exeDir
		} else {
			dataPath = "."
		}
	}

	logDir := filepath.Join(dataPath, "logs")
	if err := os.MkdirAll(logDir, 0755); err != nil {
		log.Warn().Err(err).Str("path", logDir).Msg("Failed to create log directory")
	}

	bounds := record.DefaultDateBounds
	bounds.MinYear = getEnvInt("FEED_MIN_YEAR", bounds.MinYear)
	bounds.MaxYear = getEnvInt("FEED_MAX_YEAR", bounds.MaxYear)

	cfg := &AppConfig{
		FeedURL:             getEnv("FEED_URL", ""),
		FeedPath:            getEnv("FEED_PATH", ""),
		DataPath:            dataPath,
		LogDir:              logDir,
		DateBounds:          bounds,
		RequireKey:          getEnvBool("REQUIRE_KEY", false),
		EnableMermaidCharts: getEnvBool("ENABLE_MERMAID_CHARTS", false),
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if value, ok := os.LookupEnv(key); ok {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if value, ok := os.LookupEnv(key); ok {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return fallback
}
