package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

const (
	BackendMemory = "memory"
	BackendRedis  = "redis"
)

type Config struct {
	Host         string
	Port         string
	StoreBackend string
	RedisAddr    string
	RedisPass    string
	RedisDB      int
	SeedFile     string
	CORSOrigins  []string
}

func envOrDefault(key, def string) string {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return def
	}

	return value
}

func parseOrigins(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return []string{"*"}
	}

	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))

	for _, part := range parts {
		if origin := strings.TrimSpace(part); origin != "" {
			origins = append(origins, origin)
		}
	}

	if len(origins) == 0 {
		return []string{"*"}
	}

	return origins
}

// Load reads configuration from the environment, honoring a local .env
// file when present.
func Load() (*Config, error) {
	// .env is optional; real environments set variables directly.
	_ = godotenv.Load()

	conf := &Config{
		Host:         envOrDefault("HOST", ""),
		Port:         envOrDefault("PORT", "8080"),
		StoreBackend: envOrDefault("STORE_BACKEND", BackendMemory),
		RedisAddr:    envOrDefault("REDIS_ADDR", "localhost:6379"),
		RedisPass:    os.Getenv("REDIS_PASSWORD"),
		SeedFile:     os.Getenv("SEED_FILE"),
		CORSOrigins:  parseOrigins(os.Getenv("CORS_ORIGINS")),
	}

	if conf.StoreBackend != BackendMemory && conf.StoreBackend != BackendRedis {
		return nil, fmt.Errorf("unknown STORE_BACKEND %q", conf.StoreBackend)
	}

	if raw := strings.TrimSpace(os.Getenv("REDIS_DB")); raw != "" {
		db, err := strconv.Atoi(raw)
		if err != nil {
			return nil, fmt.Errorf("parse REDIS_DB %q: %w", raw, err)
		}

		conf.RedisDB = db
	}

	return conf, nil
}
