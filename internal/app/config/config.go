// Package config loads process configuration from the environment.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"pricing_backend/internal/platform/db"
)

// Store backends.
const (
	BackendGorm   = "gorm"
	BackendPgx    = "pgx"
	BackendMemory = "memory"
)

// Config is the configuration shared by cmd/server and cmd/ingest.
type Config struct {
	Port          string
	StoreBackend  string
	DB            db.Config
	ConnTimeout   time.Duration
	RunMigrations bool
	SeedReference bool
}

// Load reads .env (if present) and the process environment.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil {
		slog.Info(".env not found; using system environment variables")
	}

	cfg := Config{
		Port:          getEnv("PORT", "8080"),
		StoreBackend:  getEnv("STORE_BACKEND", BackendGorm),
		DB:            db.LoadConfigFromEnv(),
		ConnTimeout:   time.Duration(getEnvInt("DB_CONNECT_TIMEOUT_SECONDS", 60)) * time.Second,
		RunMigrations: getEnvBool("RUN_MIGRATIONS", false),
		SeedReference: getEnvBool("SEED_REFERENCE", false),
	}

	switch cfg.StoreBackend {
	case BackendGorm, BackendPgx, BackendMemory:
	default:
		return Config{}, fmt.Errorf("unsupported STORE_BACKEND %q (want gorm, pgx or memory)", cfg.StoreBackend)
	}
	if cfg.StoreBackend == BackendPgx && cfg.DB.URL == "" {
		return Config{}, fmt.Errorf("DATABASE_URL is required for STORE_BACKEND=%s", BackendPgx)
	}
	return cfg, nil
}

func getEnv(key, def string) string {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	return v
}

func getEnvInt(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}

func getEnvBool(key string, def bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return def
	}
	return b
}
