package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
)

// Price sources
const (
	PriceSourceFile     = "file"
	PriceSourcePostgres = "postgres"
)

// Config holds application configuration loaded from environment variables
type Config struct {
	DataDir          string
	CompanyListPath  string
	StockProfilePath string
	PriceDir         string
	PriceSource      string
	PGURL            string
	MergePolicy      string
	Port             string
	LogLevel         log.Level
	LogJSON          bool
}

// Load reads configuration from environment variables.
// A .env file in the working directory is read first; variables already set
// in the shell take precedence over it.
func Load() (*Config, error) {
	// Missing .env is fine, it only supplements the environment
	_ = godotenv.Load()

	dataDir := getEnv("DATA_DIR", "archive")

	level, err := log.ParseLevel(getEnv("LOG_LEVEL", "info"))
	if err != nil {
		return nil, fmt.Errorf("invalid LOG_LEVEL: %w", err)
	}

	logFormat := strings.ToLower(getEnv("LOG_FORMAT", "text"))
	if logFormat != "text" && logFormat != "json" {
		return nil, fmt.Errorf("LOG_FORMAT must be text or json, got %q", logFormat)
	}

	priceSource := strings.ToLower(getEnv("PRICE_SOURCE", PriceSourceFile))
	pgURL := os.Getenv("PG_URL")
	switch priceSource {
	case PriceSourceFile:
	case PriceSourcePostgres:
		if pgURL == "" {
			return nil, fmt.Errorf("PG_URL environment variable is required when PRICE_SOURCE=postgres")
		}
	default:
		return nil, fmt.Errorf("PRICE_SOURCE must be file or postgres, got %q", priceSource)
	}

	return &Config{
		DataDir:          dataDir,
		CompanyListPath:  inDir(dataDir, getEnv("COMPANY_LIST_FILE", "Company List.csv")),
		StockProfilePath: inDir(dataDir, getEnv("STOCK_PROFILE_FILE", "Stock Profile.csv")),
		PriceDir:         getEnv("PRICE_DIR", filepath.Join(dataDir, "stocks")),
		PriceSource:      priceSource,
		PGURL:            pgURL,
		MergePolicy:      getEnv("MERGE_POLICY", "warn"),
		Port:             getEnv("PORT", "8080"),
		LogLevel:         level,
		LogJSON:          logFormat == "json",
	}, nil
}

// ConfigureLogging applies the log level and format to the standard logrus logger
func (c *Config) ConfigureLogging() {
	log.SetLevel(c.LogLevel)
	if c.LogJSON {
		log.SetFormatter(&log.JSONFormatter{})
	} else {
		log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// inDir resolves a file name relative to dir unless it is already absolute
func inDir(dir, name string) string {
	if filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(dir, name)
}
